/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package catalog

import (
	"fmt"
	"reflect"
	"time"

	"github.com/go-openapi/strfmt"
	"github.com/mitchellh/mapstructure"
)

var dateTimeType = reflect.TypeOf(strfmt.DateTime{})

var decodeHook = mapstructure.ComposeDecodeHookFunc(
	dateTimeHook,
	mapstructure.StringToTimeHookFunc(time.RFC3339),
	mapstructure.StringToTimeDurationHookFunc(),
)

func dateTimeHook(_ reflect.Type, to reflect.Type, data interface{}) (interface{}, error) {
	if to != dateTimeType {
		return data, nil
	}
	switch v := data.(type) {
	case string:
		return strfmt.ParseDateTime(v)
	case time.Time:
		return strfmt.DateTime(v), nil
	}
	return data, nil
}

// Get returns the field of target, which must be an addressable struct value
// of the entry's type. A nil embedded pointer on the way yields the zero value
// of the field, which is not settable.
func (f *Field) Get(target reflect.Value) (reflect.Value, error) {
	if f.Index == nil {
		return reflect.Value{}, fmt.Errorf("field %q has no storage", f.Name)
	}
	v := target
	for i, x := range f.Index {
		if i > 0 && v.Kind() == reflect.Ptr {
			if v.IsNil() {
				return reflect.Zero(f.Type), nil
			}
			v = v.Elem()
		}
		v = v.Field(x)
	}
	return v, nil
}

// Settable returns the field of target for writing, allocating nil embedded
// pointers on the way.
func (f *Field) Settable(target reflect.Value) (reflect.Value, error) {
	if f.Index == nil {
		return reflect.Value{}, fmt.Errorf("field %q has no storage", f.Name)
	}
	v := target
	for i, x := range f.Index {
		if i > 0 && v.Kind() == reflect.Ptr {
			if v.IsNil() {
				if !v.CanSet() {
					return reflect.Value{}, fmt.Errorf("field %q is behind a nil pointer that cannot be set", f.Name)
				}
				v.Set(reflect.New(v.Type().Elem()))
			}
			v = v.Elem()
		}
		v = v.Field(x)
	}
	if !v.CanSet() {
		return reflect.Value{}, fmt.Errorf("field %q is not settable", f.Name)
	}
	return v, nil
}

// Assign stores value in the field of target, converting it with Convert.
func (f *Field) Assign(target reflect.Value, value any) error {
	if f.Index == nil {
		return fmt.Errorf("field %q has no storage", f.Name)
	}
	converted, err := Convert(value, f.Type)
	if err != nil {
		return fmt.Errorf("field %q: %w", f.Name, err)
	}
	fv, err := f.Settable(target)
	if err != nil {
		return err
	}
	fv.Set(converted)
	return nil
}

// Convert returns value as a t. Values that are not directly assignable are
// decoded through mapstructure, so float64 numbers from JSON land in integer
// types and RFC3339 strings in time types. A nil value yields the zero t.
func Convert(value any, t reflect.Type) (reflect.Value, error) {
	if value == nil {
		return reflect.Zero(t), nil
	}

	rv := reflect.ValueOf(value)
	if rv.Type().AssignableTo(t) {
		out := reflect.New(t).Elem()
		out.Set(rv)
		return out, nil
	}

	dst := reflect.New(t)
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook: decodeHook,
		Result:     dst.Interface(),
		TagName:    "json",
	})
	if err != nil {
		return reflect.Value{}, fmt.Errorf("failed to create decoder for %s: %w", t, err)
	}
	if err := dec.Decode(value); err != nil {
		return reflect.Value{}, fmt.Errorf("cannot convert %T to %s: %w", value, t, err)
	}
	return dst.Elem(), nil
}
