/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package catalog

import (
	"strings"

	"github.com/suparena/dynamics/annotation"
)

// Verb classifies an accessor method name.
type Verb int

const (
	VerbUnknown Verb = iota
	VerbGet
	VerbSet
)

func (v Verb) String() string {
	switch v {
	case VerbGet:
		return "get"
	case VerbSet:
		return "set"
	default:
		return "unknown"
	}
}

// Accessor is a method name split into its verb and target field.
type Accessor struct {
	Method string
	Verb   Verb
	// Field is the method name without the verb prefix, first rune lower-cased.
	Field string
}

// ParseAccessor classifies name by its get or set prefix. Any other name
// yields VerbUnknown and an empty Field.
func ParseAccessor(name string) Accessor {
	for _, v := range []Verb{VerbGet, VerbSet} {
		prefix := v.String()
		if strings.HasPrefix(name, prefix) {
			return Accessor{
				Method: name,
				Verb:   v,
				Field:  annotation.LowerFirst(name[len(prefix):]),
			}
		}
	}
	return Accessor{Method: name}
}
