/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package catalog

import (
	"errors"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-openapi/strfmt"
	"go.uber.org/zap"

	"github.com/suparena/dynamics/annotation"
	dynerrors "github.com/suparena/dynamics/errors"
	"github.com/suparena/dynamics/literal"
)

// Field keywords the catalog interprets. Each may appear at most once per field.
const (
	KeywordAccepts  = "accepts"
	KeywordRequired = "required"
	KeywordFormat   = "format"
)

// Field is a struct field known to the catalog together with its parsed
// annotations.
type Field struct {
	// Name is the canonical name used for input keys and accessor names.
	Name   string
	GoName string
	Index  []int
	Type   reflect.Type
	// Aliases are the alternate input keys, in declared order.
	Aliases  []string
	Required bool
	// Format is a strfmt format name values must satisfy, if set.
	Format string
}

// Keys returns the input keys tried for the field: the canonical name, then
// each alias.
func (f *Field) Keys() []string {
	keys := make([]string, 0, 1+len(f.Aliases))
	keys = append(keys, f.Name)
	return append(keys, f.Aliases...)
}

// Entry is the cached metadata of one struct type. It is immutable once
// returned by the registry.
type Entry struct {
	// Type is nil for entries built from declarations alone.
	Type reflect.Type
	Name string

	ClassDeclarations  []annotation.Declaration
	FieldDeclarations  map[string][]annotation.Declaration
	MethodDeclarations []annotation.Declaration

	fields    []*Field
	byName    map[string]*Field
	accessors map[string]Accessor
}

// Fields returns the catalogued fields in declaration order.
func (e *Entry) Fields() []*Field {
	return e.fields
}

// Field looks up a field by canonical name.
func (e *Entry) Field(name string) (*Field, bool) {
	f, ok := e.byName[name]
	return f, ok
}

// Accessor reports whether method is a declared accessor of the type.
func (e *Entry) Accessor(method string) (Accessor, bool) {
	a, ok := e.accessors[method]
	return a, ok
}

// Accessors returns the declared accessors in declaration order.
func (e *Entry) Accessors() []Accessor {
	out := make([]Accessor, 0, len(e.MethodDeclarations))
	seen := make(map[string]bool, len(e.MethodDeclarations))
	for _, d := range e.MethodDeclarations {
		if seen[d.Member] {
			continue
		}
		seen[d.Member] = true
		out = append(out, e.accessors[d.Member])
	}
	return out
}

// FromDeclarations compiles an entry without a Go type. Its fields are the
// members named by field declarations; they carry no storage, so the entry
// can be used for validation and alias resolution but not for assignment.
func FromDeclarations(class string, decls []annotation.Declaration) (*Entry, error) {
	e := newEntry(nil, class)
	for _, d := range decls {
		if d.Target == annotation.TargetField {
			e.addField(&Field{Name: d.Member})
		}
	}
	if err := e.compile(decls, zap.NewNop()); err != nil {
		return nil, err
	}
	return e, nil
}

func build(t reflect.Type, decls []annotation.Declaration, logger *zap.Logger) (*Entry, error) {
	e := newEntry(t, annotation.ClassName(t))
	for _, sf := range annotation.VisibleFields(t) {
		name, ok := annotation.FieldName(sf)
		if !ok {
			continue
		}
		if _, dup := e.byName[name]; dup {
			logger.Warn("field name collision, keeping the first field",
				zap.String("class", e.Name), zap.String("field", name), zap.String("ignored", sf.Name))
			continue
		}
		e.addField(&Field{Name: name, GoName: sf.Name, Index: sf.Index, Type: sf.Type})
	}
	if err := e.compile(decls, logger); err != nil {
		return nil, err
	}
	return e, nil
}

func newEntry(t reflect.Type, name string) *Entry {
	return &Entry{
		Type:              t,
		Name:              name,
		FieldDeclarations: make(map[string][]annotation.Declaration),
		byName:            make(map[string]*Field),
		accessors:         make(map[string]Accessor),
	}
}

func (e *Entry) addField(f *Field) {
	if _, ok := e.byName[f.Name]; ok {
		return
	}
	e.fields = append(e.fields, f)
	e.byName[f.Name] = f
}

func (e *Entry) compile(decls []annotation.Declaration, logger *zap.Logger) error {
	var order []string
	for _, d := range decls {
		switch d.Target {
		case annotation.TargetClass:
			e.ClassDeclarations = append(e.ClassDeclarations, d)
		case annotation.TargetMethod:
			e.MethodDeclarations = append(e.MethodDeclarations, d)
			if _, ok := e.accessors[d.Member]; !ok {
				e.accessors[d.Member] = ParseAccessor(d.Member)
			}
		case annotation.TargetField:
			if _, ok := e.FieldDeclarations[d.Member]; !ok {
				order = append(order, d.Member)
			}
			e.FieldDeclarations[d.Member] = append(e.FieldDeclarations[d.Member], d)
		}
	}

	for _, member := range order {
		f, ok := e.byName[member]
		if !ok {
			logger.Warn("declaration names an unknown field, ignoring",
				zap.String("class", e.Name), zap.String("field", member))
			continue
		}
		if err := e.applyField(f, e.FieldDeclarations[member]); err != nil {
			return err
		}
	}
	return nil
}

func (e *Entry) applyField(f *Field, decls []annotation.Declaration) error {
	seen := make(map[string]bool, len(decls))
	for _, d := range decls {
		keyword := strings.ToLower(d.Keyword)
		switch keyword {
		case KeywordAccepts, KeywordRequired, KeywordFormat:
		default:
			continue
		}
		if seen[keyword] {
			return dynerrors.NewDuplicateAnnotationError(e.Name, f.Name, d.Keyword)
		}
		seen[keyword] = true

		switch keyword {
		case KeywordAccepts:
			aliases, err := literal.Parse(d.Value)
			if err != nil {
				return dynerrors.NewParsingError(e.Name, f.Name, d.Keyword, d.Value, err)
			}
			f.Aliases = aliases

		case KeywordRequired:
			value := strings.TrimSpace(d.Value)
			if value == "" {
				f.Required = true
				continue
			}
			required, err := strconv.ParseBool(value)
			if err != nil {
				return dynerrors.NewParsingError(e.Name, f.Name, d.Keyword, d.Value, err)
			}
			f.Required = required

		case KeywordFormat:
			format := strings.TrimSpace(d.Value)
			if !strfmt.Default.ContainsName(format) {
				return dynerrors.NewParsingError(e.Name, f.Name, d.Keyword, d.Value, errors.New("unknown format"))
			}
			f.Format = format
		}
	}
	return nil
}
