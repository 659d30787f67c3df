/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package dynamics

import (
	"reflect"
	"sync"

	"go.uber.org/zap"

	"github.com/suparena/dynamics/annotation"
	"github.com/suparena/dynamics/catalog"
	"github.com/suparena/dynamics/dispatch"
	"github.com/suparena/dynamics/hydrate"
)

// Object is embedded in a struct to declare its type-level annotations and
// accessor allow-list, see annotation.Object.
type Object = annotation.Object

// Type-level hooks implemented by the shared instance of a type.
type (
	BeforeFirstStaticCaller = dispatch.BeforeFirstStaticCaller
	BeforeStaticCaller      = dispatch.BeforeStaticCaller
	AfterFirstStaticCaller  = dispatch.AfterFirstStaticCaller
	AfterStaticCaller       = dispatch.AfterStaticCaller
)

// Engine bundles a metadata catalog with the hydrator and dispatcher that read it.
// It is safe for concurrent use.
type Engine struct {
	catalog    *catalog.Registry
	hydrator   *hydrate.Hydrator
	dispatcher *dispatch.Dispatcher
	logger     *zap.Logger
}

type options struct {
	scanner annotation.Scanner
	logger  *zap.Logger
}

// Option configures an Engine.
type Option func(*options)

// WithScanner sets where declarations are read from. Defaults to struct tags.
func WithScanner(s annotation.Scanner) Option {
	return func(o *options) {
		o.scanner = s
	}
}

// WithManifest reads declarations from struct tags and then from m.
func WithManifest(m *annotation.Manifest) Option {
	return WithScanner(annotation.Chain{annotation.TagScanner{}, m})
}

// WithLogger sets the logger shared by every component.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// NewEngine creates an Engine with an empty catalog.
func NewEngine(opts ...Option) *Engine {
	o := options{
		scanner: annotation.TagScanner{},
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(&o)
	}

	reg := catalog.New(catalog.WithScanner(o.scanner), catalog.WithLogger(o.logger))
	return &Engine{
		catalog:    reg,
		hydrator:   hydrate.NewHydrator(reg, hydrate.WithLogger(o.logger)),
		dispatcher: dispatch.New(reg, dispatch.WithLogger(o.logger)),
		logger:     o.logger,
	}
}

// Catalog returns the metadata catalog.
func (e *Engine) Catalog() *catalog.Registry {
	return e.catalog
}

// Hydrator returns the hydrator.
func (e *Engine) Hydrator() *hydrate.Hydrator {
	return e.hydrator
}

// Entry returns the catalog entry for the type of v, a struct or pointer to one.
func (e *Engine) Entry(v any) (*catalog.Entry, error) {
	return e.catalog.Get(reflect.TypeOf(v))
}

// Hydrate fills target from input, see hydrate.Hydrator.
func (e *Engine) Hydrate(target any, input map[string]any) error {
	return e.hydrator.Hydrate(target, input)
}

// Call invokes a declared accessor or concrete method on target.
func (e *Engine) Call(target any, name string, args ...any) (any, error) {
	return e.dispatcher.Call(target, name, args...)
}

// CallStatic invokes an accessor on the shared instance of t.
func (e *Engine) CallStatic(t reflect.Type, name string, args ...any) (any, error) {
	return e.dispatcher.CallStatic(t, name, args...)
}

// Static returns the shared instance of t.
func (e *Engine) Static(t reflect.Type) (any, error) {
	return e.dispatcher.Static(t)
}

// Bind installs ptr as the shared instance of its type.
func (e *Engine) Bind(ptr any) error {
	return e.dispatcher.Bind(ptr)
}

// Reset drops all cached metadata and shared instances.
func (e *Engine) Reset() {
	e.catalog.Reset()
	e.dispatcher.Reset()
	e.logger.Debug("engine reset")
}

// New allocates a T and hydrates it from input.
func New[T any](e *Engine, input map[string]any) (*T, error) {
	return hydrate.New[T](e.hydrator, input)
}

// CallStatic invokes an accessor on the shared instance of T.
func CallStatic[T any](e *Engine, name string, args ...any) (any, error) {
	return e.dispatcher.CallStatic(reflect.TypeOf((*T)(nil)).Elem(), name, args...)
}

// Static returns the shared instance of T.
func Static[T any](e *Engine) (*T, error) {
	inst, err := e.dispatcher.Static(reflect.TypeOf((*T)(nil)).Elem())
	if err != nil {
		return nil, err
	}
	return inst.(*T), nil
}

var (
	defaultMu     sync.RWMutex
	defaultEngine = NewEngine()
)

// Default returns the process-wide engine used by the package-level functions.
func Default() *Engine {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultEngine
}

// SetDefault replaces the process-wide engine.
func SetDefault(e *Engine) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultEngine = e
}

// Hydrate fills target from input using the default engine.
func Hydrate(target any, input map[string]any) error {
	return Default().Hydrate(target, input)
}

// Call invokes name on target using the default engine.
func Call(target any, name string, args ...any) (any, error) {
	return Default().Call(target, name, args...)
}

// Reset clears the default engine.
func Reset() {
	Default().Reset()
}
