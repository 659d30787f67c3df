/*
Package annotation defines the declarations attached to struct types and the
scanners that produce them.

A declaration has a keyword, a raw value and a target: the type itself, one of
its fields, or one of its declared methods. Declarations usually come from
struct tags:

	type Country struct {
	    dynamics.Object `methods:"getName, getCode, getTest, setTest(test string)"`

	    ID           int    `json:"id"`
	    Name         string `json:"name" required:"true"`
	    CurrencyCode string `accepts:"['currency_code', 'currency']"`
	}

They can also be supplied from a YAML Manifest, or from any Scanner; Chain
combines several. Scanners only collect raw text; parsing values is left to the
catalog.
*/
package annotation
