/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package annotation

import (
	"fmt"
	"reflect"
	"regexp"
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Target identifies what kind of member a declaration is attached to.
type Target int

const (
	TargetClass Target = iota
	TargetField
	TargetMethod
)

// String returns the lower-case target name.
func (t Target) String() string {
	switch t {
	case TargetClass:
		return "class"
	case TargetField:
		return "field"
	case TargetMethod:
		return "method"
	default:
		return "unknown"
	}
}

// Declaration is one annotation occurrence on a type, one of its fields, or
// one of its declared methods.
type Declaration struct {
	// Keyword is the annotation name as written, e.g. "accepts" or "method".
	Keyword string
	// Value is the raw, unparsed text following the keyword.
	Value  string
	Target Target
	// Class is the owning type's name, see ClassName.
	Class string
	// Member is the canonical field name or the declared method name. Empty for class targets.
	Member string
}

// Scanner produces the declarations of a struct type. It is called at most
// once per type by the catalog.
type Scanner interface {
	Scan(t reflect.Type) ([]Declaration, error)
}

// ScannerFunc adapts a function to the Scanner interface.
type ScannerFunc func(t reflect.Type) ([]Declaration, error)

func (f ScannerFunc) Scan(t reflect.Type) ([]Declaration, error) {
	return f(t)
}

// Chain runs every scanner in order and concatenates their declarations.
type Chain []Scanner

func (c Chain) Scan(t reflect.Type) ([]Declaration, error) {
	var out []Declaration
	for _, s := range c {
		decls, err := s.Scan(t)
		if err != nil {
			return nil, err
		}
		out = append(out, decls...)
	}
	return out, nil
}

// Object is embedded in a struct to carry its type-level annotations in the
// field tag. The "methods" key declares the accessors the type allows:
//
//	type Country struct {
//	    dynamics.Object `methods:"getName, getCode, setTest(test string)"`
//	    ...
//	}
type Object struct{}

var objectType = reflect.TypeOf(Object{})

// IsObjectMarker reports whether sf is the embedded Object marker.
func IsObjectMarker(sf reflect.StructField) bool {
	return sf.Anonymous && sf.Type == objectType
}

// ClassName is the name a type is known by in declarations and errors.
func ClassName(t reflect.Type) string {
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.String()
}

// FieldName returns the canonical name of a struct field: its json name when
// one is set, otherwise the Go name with the first rune lower-cased. Fields
// that take no part in hydration or dispatch report false.
func FieldName(sf reflect.StructField) (string, bool) {
	if !sf.IsExported() || IsObjectMarker(sf) {
		return "", false
	}
	if tag, ok := sf.Tag.Lookup("json"); ok {
		name, _, _ := strings.Cut(tag, ",")
		if name == "-" {
			return "", false
		}
		if name != "" {
			return name, true
		}
	}
	return LowerFirst(sf.Name), true
}

// VisibleFields returns the fields of struct type t that take part in
// annotation scanning, in source order. Embedded structs without a json name
// are flattened as encoding/json does: the embedding field itself is dropped
// and its promoted fields follow Go's shadowing rules. Promoted fields behind
// an embedded pointer to an unexported type are dropped, since they could not
// be allocated on write. The Object marker is kept.
func VisibleFields(t reflect.Type) []reflect.StructField {
	var out []reflect.StructField
	var closed [][]int
	for _, sf := range reflect.VisibleFields(t) {
		if underPrefix(sf.Index, closed) {
			continue
		}
		if sf.Anonymous && !IsObjectMarker(sf) {
			et := sf.Type
			if et.Kind() == reflect.Ptr {
				et = et.Elem()
			}
			if et.Kind() == reflect.Struct {
				name, _, _ := strings.Cut(sf.Tag.Get("json"), ",")
				switch {
				case name == "-":
					closed = append(closed, sf.Index)
					continue
				case name != "":
					closed = append(closed, sf.Index)
				case sf.Type.Kind() == reflect.Ptr && !sf.IsExported():
					closed = append(closed, sf.Index)
					continue
				default:
					continue
				}
			}
		}
		out = append(out, sf)
	}
	return out
}

func underPrefix(index []int, prefixes [][]int) bool {
	for _, p := range prefixes {
		if len(index) > len(p) && slices.Equal(index[:len(p)], p) {
			return true
		}
	}
	return false
}

// LowerFirst lower-cases the first rune of s.
func LowerFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError || unicode.IsLower(r) {
		return s
	}
	return string(unicode.ToLower(r)) + s[size:]
}

var signaturePattern = regexp.MustCompile(`^(?:[\w|\[\]\\?*.]+\s+)*([A-Za-z_]\w*)\s*(?:\(.*\))?$`)

// MethodName extracts the method name from a declared signature such as
// "string|null getName()" or "setTest(test string)".
func MethodName(signature string) (string, error) {
	m := signaturePattern.FindStringSubmatch(strings.TrimSpace(signature))
	if m == nil {
		return "", fmt.Errorf("malformed method signature %q", signature)
	}
	return m[1], nil
}

// SplitSignatures splits a list of method signatures on commas and semicolons
// that are not inside parentheses.
func SplitSignatures(s string) []string {
	var (
		out   []string
		depth int
		start int
	)
	flush := func(end int) {
		if part := strings.TrimSpace(s[start:end]); part != "" {
			out = append(out, part)
		}
	}
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '(':
			depth++
		case ')':
			if depth > 0 {
				depth--
			}
		case ',', ';':
			if depth == 0 {
				flush(i)
				start = i + 1
			}
		}
	}
	flush(len(s))
	return out
}
