/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package registry

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/suparena/entitystate/errors"
)

// Factory builds the default value of an entity type.
type Factory[T any] func() T

var (
	factoryRegistry = make(map[reflect.Type]any)
	mu              sync.RWMutex
)

// TypeOf returns the reflect.Type for T. Unlike reflect.TypeOf(zero) it is
// non-nil for interface types.
func TypeOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

// RegisterFactory associates a Go type T with the function that builds its default value.
// A second registration for the same type returns an AlreadyExistsError.
func RegisterFactory[T any](fn func() T) error {
	if fn == nil {
		return errors.NewValidationError("fn", "factory must not be nil")
	}
	t := TypeOf[T]()

	mu.Lock()
	defer mu.Unlock()
	if _, exists := factoryRegistry[t]; exists {
		return errors.NewAlreadyExistsError("factory", t.String())
	}
	factoryRegistry[t] = Factory[T](fn)
	return nil
}

// MustRegisterFactory is RegisterFactory for init() functions; it panics on error.
func MustRegisterFactory[T any](fn func() T) {
	if err := RegisterFactory(fn); err != nil {
		panic(fmt.Sprintf("factory registry: %v", err))
	}
}

// GetFactory retrieves the factory registered for type T, if any.
func GetFactory[T any]() (Factory[T], bool) {
	t := TypeOf[T]()

	mu.RLock()
	defer mu.RUnlock()
	fn, ok := factoryRegistry[t]
	if !ok {
		return nil, false
	}
	return fn.(Factory[T]), true
}

// UnregisterFactory removes the factory for type T. It reports whether one was registered.
func UnregisterFactory[T any]() bool {
	t := TypeOf[T]()

	mu.Lock()
	defer mu.Unlock()
	_, ok := factoryRegistry[t]
	delete(factoryRegistry, t)
	return ok
}

// DefaultFactory returns the factory used to build fresh values of T: the registered
// one if present, otherwise a structural default. Pointer types get a pointer to a new
// zero value, map types get an empty map, everything else gets its zero value.
func DefaultFactory[T any]() Factory[T] {
	if fn, ok := GetFactory[T](); ok {
		return fn
	}

	t := TypeOf[T]()
	switch t.Kind() {
	case reflect.Pointer:
		elem := t.Elem()
		return func() T {
			return reflect.New(elem).Interface().(T)
		}
	case reflect.Map:
		return func() T {
			return reflect.MakeMap(t).Interface().(T)
		}
	default:
		return func() T {
			var zero T
			return zero
		}
	}
}
