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

// Type-level hooks. Each is optional and looked up on the shared instance.

// BeforeFirstStaticCaller runs once per type, before the first type-level accessor call.
type BeforeFirstStaticCaller interface {
	BeforeFirstStaticCall()
}

// BeforeStaticCaller runs before every type-level accessor call.
type BeforeStaticCaller interface {
	BeforeStaticCall()
}

// AfterFirstStaticCaller runs once per type, after the first type-level
// read or write, and may replace the returned value.
type AfterFirstStaticCaller interface {
	AfterFirstStaticCall(value any) any
}

// AfterStaticCaller runs after every type-level read or write and may replace
// the returned value.
type AfterStaticCaller interface {
	AfterStaticCall(value any) any
}

type staticState struct {
	mu       sync.Mutex
	instance reflect.Value

	beforeFirstDone bool
	afterFirstDone  bool
}

// CallStatic invokes method name on the shared instance of t. Accessor calls
// are wrapped in the type-level hooks; the value returned is the field value
// after the after-hooks have transformed it. A setter stores its argument as
// given, so the stored and returned values differ when an after-hook rewrites
// the value. Calls for one type are serialized, so hooks must not call
// CallStatic on the same type.
func (d *Dispatcher) CallStatic(t reflect.Type, name string, args ...any) (result any, err error) {
	t, err = structType(t)
	if err != nil {
		return nil, err
	}
	class := annotation.ClassName(t)

	st := d.state(t)
	st.mu.Lock()
	defer st.mu.Unlock()

	defer func() {
		if r := recover(); r != nil {
			result, err = nil, panicked(class, name, r)
		}
	}()

	inst := st.shared(t)
	if m := inst.MethodByName(name); m.IsValid() {
		return invoke(class, name, m, args)
	}

	_, field, acc, err := d.resolve(t, name)
	if err != nil {
		return nil, err
	}
	var value, fv reflect.Value
	if acc.Verb == catalog.VerbSet {
		if value, err = setterArgument(class, name, field, args); err != nil {
			return nil, err
		}
		fv, err = field.Settable(inst.Elem())
	} else {
		fv, err = field.Get(inst.Elem())
	}
	if err != nil {
		return nil, errors.NewInvocationError(class, name, "method", name, err)
	}

	obj := inst.Interface()
	if !st.beforeFirstDone {
		st.beforeFirstDone = true
		if h, ok := obj.(BeforeFirstStaticCaller); ok {
			d.logger.Debug("running first static call hook", zap.String("class", class), zap.String("method", name))
			h.BeforeFirstStaticCall()
		}
	}
	if h, ok := obj.(BeforeStaticCaller); ok {
		h.BeforeStaticCall()
	}

	if acc.Verb == catalog.VerbSet {
		fv.Set(value)
	}
	out := fv.Interface()

	if !st.afterFirstDone {
		st.afterFirstDone = true
		if h, ok := obj.(AfterFirstStaticCaller); ok {
			d.logger.Debug("running after first static call hook", zap.String("class", class), zap.String("method", name))
			out = h.AfterFirstStaticCall(out)
		}
	}
	if h, ok := obj.(AfterStaticCaller); ok {
		out = h.AfterStaticCall(out)
	}
	return out, nil
}

// Static returns the shared instance of t, a pointer, creating it if needed.
func (d *Dispatcher) Static(t reflect.Type) (any, error) {
	t, err := structType(t)
	if err != nil {
		return nil, err
	}
	st := d.state(t)
	st.mu.Lock()
	defer st.mu.Unlock()
	return st.shared(t).Interface(), nil
}

// Bind installs ptr, a pointer to a struct, as the shared instance of its
// type. It fails if the type already has one.
func (d *Dispatcher) Bind(ptr any) error {
	rv := reflect.ValueOf(ptr)
	if rv.Kind() != reflect.Ptr || rv.IsNil() || rv.Elem().Kind() != reflect.Struct {
		return errors.NewValidationError("", fmt.Sprintf("bind requires a non-nil pointer to a struct, got %T", ptr))
	}
	t := rv.Type().Elem()

	st := d.state(t)
	st.mu.Lock()
	defer st.mu.Unlock()
	if st.instance.IsValid() {
		return errors.NewAlreadyExistsError("static instance", annotation.ClassName(t))
	}
	st.instance = rv
	return nil
}

// Reset drops every shared instance together with its hook state.
func (d *Dispatcher) Reset() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.statics = make(map[reflect.Type]*staticState)
}

func (d *Dispatcher) state(t reflect.Type) *staticState {
	d.mu.Lock()
	defer d.mu.Unlock()

	st, ok := d.statics[t]
	if !ok {
		st = &staticState{}
		d.statics[t] = st
	}
	return st
}

// shared must be called with st.mu held.
func (st *staticState) shared(t reflect.Type) reflect.Value {
	if !st.instance.IsValid() {
		st.instance = reflect.New(t)
	}
	return st.instance
}

func structType(t reflect.Type) (reflect.Type, error) {
	if t == nil {
		return nil, errors.NewValidationError("", "nil type")
	}
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return nil, errors.NewValidationError("", fmt.Sprintf("%s is not a struct type", t))
	}
	return t, nil
}
