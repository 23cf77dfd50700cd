/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package entitystate

import (
	"fmt"
	"reflect"
	"sort"
	"sync"

	"github.com/rs/zerolog"
	"golang.org/x/sync/singleflight"

	"github.com/suparena/entitystate/registry"
)

// stateKey identifies a specialization: the entity type plus an optional name.
type stateKey struct {
	typ  reflect.Type
	name string
}

func (k stateKey) String() string {
	if k.name == "" {
		return k.typ.String()
	}
	return k.typ.String() + "#" + k.name
}

// flightKey is unique per key even when two types print the same name.
func (k stateKey) flightKey() string {
	return fmt.Sprintf("%p#%s", k.typ, k.name)
}

// Registry holds one State per specialization. It replaces per-type static
// fields with an explicit, thread-safe get-or-create lookup.
type Registry struct {
	mu       sync.Mutex
	inflight singleflight.Group
	states   map[stateKey]any
	failures map[stateKey]error
	logger   zerolog.Logger
	capacity int
}

// Option configures a Registry.
type Option func(*Registry)

// WithLogger sets the logger used for specialization lifecycle events.
func WithLogger(logger zerolog.Logger) Option {
	return func(r *Registry) {
		r.logger = logger
	}
}

// WithMapCapacity sets the initial capacity of newly allocated maps.
func WithMapCapacity(capacity int) Option {
	return func(r *Registry) {
		if capacity >= 0 {
			r.capacity = capacity
		}
	}
}

// NewRegistry creates an empty Registry.
func NewRegistry(opts ...Option) *Registry {
	r := &Registry{
		states:   make(map[stateKey]any),
		failures: make(map[stateKey]error),
		logger:   zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// StateFor returns the State for entity type T, initializing it on first use.
func StateFor[T any](r *Registry) (*State[T], error) {
	return StateForNamed[T](r, "")
}

// StateForNamed returns the State for entity type T under name, initializing it
// on first use. Different names give isolated specializations of the same type.
//
// Concurrent first callers share a single initialization. The entity factory
// runs without the registry lock, so it may request other specializations, but
// not its own. If the factory panics the failure is remembered and returned to
// every later caller.
func StateForNamed[T any](r *Registry, name string) (*State[T], error) {
	key := stateKey{typ: registry.TypeOf[T](), name: name}

	if s, ok, err := r.cached(key); ok {
		if err != nil {
			return nil, err
		}
		return s.(*State[T]), nil
	}

	v, err, _ := r.inflight.Do(key.flightKey(), func() (any, error) {
		if s, ok, err := r.cached(key); ok {
			return s, err
		}

		s := newState[T](key.String(), registry.DefaultFactory[T](), r.capacity, r.logger)
		if err := s.Construct(); err != nil {
			r.mu.Lock()
			r.failures[key] = err
			r.mu.Unlock()
			r.logger.Error().Err(err).Str("specialization", key.String()).Msg("specialization initialization failed")
			return nil, err
		}

		r.mu.Lock()
		r.states[key] = s
		r.mu.Unlock()
		r.logger.Debug().Str("specialization", key.String()).Msg("specialization initialized")
		return s, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*State[T]), nil
}

// cached returns the initialized state or the remembered failure for key.
func (r *Registry) cached(key stateKey) (any, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err, failed := r.failures[key]; failed {
		return nil, true, err
	}
	s, exists := r.states[key]
	return s, exists, nil
}

// Lookup returns the State for T if it has already been initialized.
func Lookup[T any](r *Registry) (*State[T], bool) {
	return LookupNamed[T](r, "")
}

// LookupNamed returns the named State for T if it has already been initialized.
func LookupNamed[T any](r *Registry, name string) (*State[T], bool) {
	key := stateKey{typ: registry.TypeOf[T](), name: name}

	r.mu.Lock()
	defer r.mu.Unlock()

	s, exists := r.states[key]
	if !exists {
		return nil, false
	}
	return s.(*State[T]), true
}

// ResetEntity replaces the shared entity of T with a fresh default value.
func ResetEntity[T any](r *Registry) error {
	s, err := StateFor[T](r)
	if err != nil {
		return err
	}
	return s.Reset()
}

// Types returns the names of all initialized specializations, sorted.
func (r *Registry) Types() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	names := make([]string, 0, len(r.states))
	for k := range r.states {
		names = append(names, k.String())
	}
	sort.Strings(names)
	return names
}

// Len returns the number of initialized specializations.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.states)
}
