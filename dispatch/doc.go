/*
Package dispatch answers accessor calls made by method name.

A struct opts in by declaring its accessors on the embedded annotation.Object
marker:

	type Country struct {
		annotation.Object `methods:"string getName(); Country setTest(string test)"`

		Name string `json:"name"`
		Test string `json:"test"`
	}

	d := dispatch.New(reg)
	name, err := d.Call(country, "getName")
	same, err := d.Call(country, "setTest", "hello")

A name is checked in this order: it must look like getX or setX
(UnknownAccessor), be declared (UndeclaredAccessor) and name an existing
field (MissingField). Methods the type really has are called directly and
never go through these checks.

CallStatic performs the same calls against one shared instance per type. If
that instance implements BeforeFirstStaticCaller, BeforeStaticCaller,
AfterFirstStaticCaller or AfterStaticCaller, the hooks wrap every accessor
call; the first-call hooks run once per type until Reset.
*/
package dispatch
