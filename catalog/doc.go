/*
Package catalog caches the parsed annotations of struct types.

A Registry builds one Entry per type the first time the type is requested:

	reg := catalog.New(catalog.WithLogger(logger))
	entry, err := catalog.For[Country](reg)

Building runs the configured annotation.Scanner exactly once, groups the
declarations by target, parses alias lists, required flags and formats for
fields, and records the declared accessor methods. Later calls return the same
Entry without scanning again. Concurrent first calls for a type share a single
build and never observe a partially built entry.

Reset drops every entry and is meant for test isolation.
*/
package catalog
