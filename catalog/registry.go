/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package catalog

import (
	"fmt"
	"reflect"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/suparena/dynamics/annotation"
	"github.com/suparena/dynamics/errors"
)

// Registry caches one Entry per struct type. Entries are built on first use
// and never rebuilt until Reset.
type Registry struct {
	scanner annotation.Scanner
	logger  *zap.Logger

	mu    sync.Mutex
	slots map[reflect.Type]*slot
}

// slot guards the single build of one type's entry.
type slot struct {
	once  sync.Once
	done  atomic.Bool
	entry *Entry
	err   error
}

// Option configures a Registry.
type Option func(*Registry)

// WithScanner sets the scanner used to read declarations. Defaults to annotation.TagScanner.
func WithScanner(s annotation.Scanner) Option {
	return func(r *Registry) {
		r.scanner = s
	}
}

// WithLogger sets the logger. Defaults to a no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(r *Registry) {
		r.logger = l
	}
}

// New creates an empty Registry.
func New(opts ...Option) *Registry {
	r := &Registry{
		scanner: annotation.TagScanner{},
		logger:  zap.NewNop(),
		slots:   make(map[reflect.Type]*slot),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Get returns the entry for t, scanning and compiling it on the first call.
// Pointer types resolve to their element type. Concurrent first calls for the
// same type share a single build; a failed build is cached like a successful one.
func (r *Registry) Get(t reflect.Type) (*Entry, error) {
	t, err := structType(t)
	if err != nil {
		return nil, err
	}

	s := r.slot(t)
	s.once.Do(func() {
		s.entry, s.err = r.build(t)
		s.done.Store(true)
	})
	return s.entry, s.err
}

// For returns the entry of T.
func For[T any](r *Registry) (*Entry, error) {
	return r.Get(reflect.TypeOf((*T)(nil)).Elem())
}

// Lookup returns the entry for t if it has already been built successfully.
func (r *Registry) Lookup(t reflect.Type) (*Entry, bool) {
	t, err := structType(t)
	if err != nil {
		return nil, false
	}

	r.mu.Lock()
	s, ok := r.slots[t]
	r.mu.Unlock()

	if !ok || !s.done.Load() || s.err != nil {
		return nil, false
	}
	return s.entry, true
}

// Len returns the number of types with a cached entry or build in progress.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.slots)
}

// Reset drops every cached entry. Entries already handed out stay valid.
func (r *Registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.slots = make(map[reflect.Type]*slot)
}

func (r *Registry) slot(t reflect.Type) *slot {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.slots[t]
	if !ok {
		s = &slot{}
		r.slots[t] = s
	}
	return s
}

func (r *Registry) build(t reflect.Type) (*Entry, error) {
	decls, err := r.scanner.Scan(t)
	if err != nil {
		return nil, errors.NewParsingError(annotation.ClassName(t), "", "", "", err)
	}

	entry, err := build(t, decls, r.logger)
	if err != nil {
		r.logger.Debug("catalog build failed", zap.String("class", annotation.ClassName(t)), zap.Error(err))
		return nil, err
	}

	r.logger.Debug("catalog entry built",
		zap.String("class", entry.Name),
		zap.Int("declarations", len(decls)),
		zap.Int("fields", len(entry.fields)),
		zap.Int("accessors", len(entry.accessors)),
	)
	return entry, nil
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
