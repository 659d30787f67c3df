/*
Package hydrate builds structs from string-keyed input.

For every catalogued field the input is searched for the field's canonical
name, then for each of its declared aliases in order; the first key present
wins. Nothing else is tried: there is no partial or case-insensitive matching.

	h := hydrate.NewHydrator(reg)
	country, err := hydrate.New[Country](h, map[string]any{
	    "id":       249,
	    "name":     "United States",
	    "currency": "USD", // CurrencyCode accepts ['currency_code', 'currency']
	})

Values are converted to the field type where needed, see catalog.Convert.
*/
package hydrate
