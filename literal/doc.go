/*
Package literal parses the raw value of an alias declaration into the ordered
list of input keys a field accepts.

Three shapes are recognised:

	currency             -> ["currency"]
	'currency'           -> ["currency"]
	["currency_code", 1] -> ["currency_code", "1"]

Lists are read as a YAML flow sequence node tree and only string, number and
boolean scalars are kept. Nothing is evaluated.
*/
package literal
