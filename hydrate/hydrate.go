/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package hydrate

import (
	"fmt"
	"reflect"

	"github.com/go-openapi/strfmt"
	"go.uber.org/zap"

	"github.com/suparena/dynamics/catalog"
	"github.com/suparena/dynamics/errors"
)

// Resolve finds the input key that populates f: the canonical name first,
// then each alias in declared order. Matching is exact and case-sensitive.
func Resolve(f *catalog.Field, input map[string]any) (key string, value any, ok bool) {
	if v, found := input[f.Name]; found {
		return f.Name, v, true
	}
	for _, alias := range f.Aliases {
		if v, found := input[alias]; found {
			return alias, v, true
		}
	}
	return "", nil, false
}

// Hydrator populates structs from loosely typed input using catalog metadata.
type Hydrator struct {
	catalog *catalog.Registry
	logger  *zap.Logger
}

// Option configures a Hydrator.
type Option func(*Hydrator)

// WithLogger sets the logger. Defaults to a no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(h *Hydrator) {
		h.logger = l
	}
}

// NewHydrator creates a Hydrator reading metadata from reg.
func NewHydrator(reg *catalog.Registry, opts ...Option) *Hydrator {
	h := &Hydrator{
		catalog: reg,
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

type assignment struct {
	field *catalog.Field
	value reflect.Value
}

// Hydrate sets every field of target whose canonical name or alias is present
// in input. Fields with no match keep their current value unless they are
// required. Required checks, format checks and conversions all run before any field
// is written, so a failed call leaves target untouched.
func (h *Hydrator) Hydrate(target any, input map[string]any) error {
	rv := reflect.ValueOf(target)
	if rv.Kind() != reflect.Ptr || rv.IsNil() || rv.Elem().Kind() != reflect.Struct {
		return errors.NewValidationError("", fmt.Sprintf("hydration target must be a non-nil pointer to a struct, got %T", target))
	}

	entry, err := h.catalog.Get(rv.Type())
	if err != nil {
		return err
	}

	plan := make([]assignment, 0, len(entry.Fields()))
	for _, f := range entry.Fields() {
		key, value, ok := Resolve(f, input)
		if !ok {
			if f.Required {
				return errors.NewValidationError(f.Name, "required field missing")
			}
			continue
		}
		if err := CheckFormat(f, value); err != nil {
			return err
		}
		if key != f.Name {
			h.logger.Debug("field resolved through alias",
				zap.String("class", entry.Name), zap.String("field", f.Name), zap.String("key", key))
		}
		converted, err := catalog.Convert(value, f.Type)
		if err != nil {
			return errors.NewValidationError(f.Name, err.Error())
		}
		plan = append(plan, assignment{field: f, value: converted})
	}

	elem := rv.Elem()
	for _, a := range plan {
		fv, err := a.field.Settable(elem)
		if err != nil {
			return errors.NewValidationError(a.field.Name, err.Error())
		}
		fv.Set(a.value)
	}
	return nil
}

// CheckFormat validates a string value against the field's strfmt format.
// Fields without a format and non-string values always pass.
func CheckFormat(f *catalog.Field, value any) error {
	if f.Format == "" {
		return nil
	}
	s, ok := value.(string)
	if !ok {
		return nil
	}
	if !strfmt.Default.Validates(f.Format, s) {
		return errors.NewValidationError(f.Name, fmt.Sprintf("%q is not a valid %s", s, f.Format))
	}
	return nil
}

// New allocates a T and hydrates it from input.
func New[T any](h *Hydrator, input map[string]any) (*T, error) {
	out := new(T)
	if err := h.Hydrate(out, input); err != nil {
		return nil, err
	}
	return out, nil
}
