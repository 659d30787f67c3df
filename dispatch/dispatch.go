/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package dispatch

import (
	"fmt"
	"reflect"
	"sync"

	"go.uber.org/zap"

	"github.com/suparena/dynamics/annotation"
	"github.com/suparena/dynamics/catalog"
	"github.com/suparena/dynamics/errors"
)

// Dispatcher answers accessor calls by name on annotated structs.
type Dispatcher struct {
	catalog *catalog.Registry
	logger  *zap.Logger

	mu      sync.Mutex
	statics map[reflect.Type]*staticState
}

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithLogger sets the logger. Defaults to a no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(d *Dispatcher) {
		d.logger = l
	}
}

// New creates a Dispatcher reading metadata from reg.
func New(reg *catalog.Registry, opts ...Option) *Dispatcher {
	d := &Dispatcher{
		catalog: reg,
		logger:  zap.NewNop(),
		statics: make(map[reflect.Type]*staticState),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Call invokes method name on target, a non-nil pointer to a struct.
//
// A method the type really has is called directly. Otherwise name must be a
// declared get or set accessor whose field exists: a getter returns the field
// value, a setter assigns args[0] and returns target so calls can be chained.
func (d *Dispatcher) Call(target any, name string, args ...any) (result any, err error) {
	rv := reflect.ValueOf(target)
	if rv.Kind() != reflect.Ptr || rv.IsNil() || rv.Elem().Kind() != reflect.Struct {
		return nil, errors.NewValidationError("", fmt.Sprintf("call target must be a non-nil pointer to a struct, got %T", target))
	}
	class := annotation.ClassName(rv.Type())

	defer func() {
		if r := recover(); r != nil {
			result, err = nil, panicked(class, name, r)
		}
	}()

	if m := rv.MethodByName(name); m.IsValid() {
		return invoke(class, name, m, args)
	}

	_, field, acc, err := d.resolve(rv.Type(), name)
	if err != nil {
		return nil, err
	}

	elem := rv.Elem()
	switch acc.Verb {
	case catalog.VerbGet:
		fv, err := field.Get(elem)
		if err != nil {
			return nil, errors.NewInvocationError(class, name, "method", name, err)
		}
		return fv.Interface(), nil

	default:
		value, err := setterArgument(class, name, field, args)
		if err != nil {
			return nil, err
		}
		fv, err := field.Settable(elem)
		if err != nil {
			return nil, errors.NewInvocationError(class, name, "method", name, err)
		}
		fv.Set(value)
		return target, nil
	}
}

// resolve validates name against the catalog entry of t. The returned
// accessor always has a get or set verb.
func (d *Dispatcher) resolve(t reflect.Type, name string) (*catalog.Entry, *catalog.Field, catalog.Accessor, error) {
	entry, err := d.catalog.Get(t)
	if err != nil {
		return nil, nil, catalog.Accessor{}, err
	}

	acc := catalog.ParseAccessor(name)
	if acc.Verb == catalog.VerbUnknown {
		return nil, nil, acc, errors.NewUnknownAccessorError(entry.Name, name)
	}
	if _, ok := entry.Accessor(name); !ok {
		d.logger.Debug("accessor not declared", zap.String("class", entry.Name), zap.String("method", name))
		return nil, nil, acc, errors.NewUndeclaredAccessorError(entry.Name, name)
	}
	field, ok := entry.Field(acc.Field)
	if !ok {
		return nil, nil, acc, errors.NewMissingFieldError(entry.Name, acc.Field, name)
	}
	return entry, field, acc, nil
}

// setterArgument converts the first argument to the field type.
func setterArgument(class, name string, field *catalog.Field, args []any) (reflect.Value, error) {
	if len(args) == 0 {
		return reflect.Value{}, errors.NewInvocationError(class, name, "method", name, fmt.Errorf("setter requires a value"))
	}
	value, err := catalog.Convert(args[0], field.Type)
	if err != nil {
		return reflect.Value{}, errors.NewInvocationError(class, name, "method", name, err)
	}
	return value, nil
}

var errorType = reflect.TypeOf((*error)(nil)).Elem()

// invoke calls a concrete method with converted arguments. A trailing error
// result becomes the returned error and the first other result the value.
func invoke(class, name string, m reflect.Value, args []any) (any, error) {
	mt := m.Type()
	fixed := mt.NumIn()
	if mt.IsVariadic() {
		fixed--
	}
	if len(args) < fixed || (!mt.IsVariadic() && len(args) > fixed) {
		return nil, errors.NewInvocationError(class, name, "method", name,
			fmt.Errorf("expects %d arguments, got %d", mt.NumIn(), len(args)))
	}

	in := make([]reflect.Value, len(args))
	for i, arg := range args {
		pt := mt.In(min(i, mt.NumIn()-1))
		if mt.IsVariadic() && i >= fixed {
			pt = pt.Elem()
		}
		v, err := catalog.Convert(arg, pt)
		if err != nil {
			return nil, errors.NewInvocationError(class, name, "method", name, fmt.Errorf("argument %d: %w", i, err))
		}
		in[i] = v
	}

	out := m.Call(in)
	var err error
	if n := len(out); n > 0 && out[n-1].Type() == errorType {
		if e := out[n-1]; !e.IsNil() {
			err = e.Interface().(error)
		}
		out = out[:n-1]
	}
	if len(out) == 0 {
		return nil, err
	}
	return out[0].Interface(), err
}

func panicked(class, name string, r any) error {
	cause, ok := r.(error)
	if !ok {
		cause = fmt.Errorf("%v", r)
	}
	return errors.NewInvocationError(class, name, "method", name, fmt.Errorf("panic: %w", cause))
}
