/*
Package dynamics builds Go structs from loosely typed input and answers accessor
calls by name, driven by annotations declared on the struct.

Fields declare alternate input keys, required-ness and value formats in struct
tags. The embedded Object marker lists the accessor methods the type allows:

	type Country struct {
		dynamics.Object `methods:"string getName(); Country setTest(string test)"`

		ID           int    `json:"id"`
		Name         string `json:"name" required:"true"`
		CurrencyCode string `json:"currencyCode" accepts:"['currency_code', 'currency']"`
		Test         string `json:"test"`
	}

	engine := dynamics.NewEngine(dynamics.WithLogger(logger))

	country, err := dynamics.New[Country](engine, map[string]any{
		"id": 249, "name": "United States", "currency": "USD",
	})

	name, err := engine.Call(country, "getName")           // "United States"
	same, err := engine.Call(country, "setTest", "hello")  // country

Annotations are parsed once per type and cached in the engine's catalog.
Declarations can also come from a YAML manifest, see annotation.Manifest and
WithManifest.

Type-level calls go through CallStatic, which works on one shared instance per
type and runs the hooks that instance implements (BeforeFirstStaticCaller and
friends).

The package-level functions use a default engine; tests that change annotations
call Reset between cases.

Packages:
  - annotation: declarations, struct tag and manifest scanners
  - literal: the alias list grammar used by the accepts annotation
  - catalog: per-type metadata cache
  - hydrate: alias resolution and hydration
  - dispatch: accessor dispatch and type-level hooks
  - ddb: hydration from DynamoDB items
  - errors: typed errors
*/
package dynamics
