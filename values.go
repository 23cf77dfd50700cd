/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package entitystate

import (
	"fmt"
	"sort"
	"sync"

	"github.com/suparena/entitystate/errors"
	"github.com/suparena/entitystate/registry"
)

// Values is a thread-safe string-keyed map shared between every holder of a
// specialization. It backs both the search criteria and the values channel.
// Keys are unique; the last write wins.
type Values struct {
	mu sync.RWMutex
	m  map[string]any
}

// NewValues creates an empty Values with room for capacity keys.
func NewValues(capacity int) *Values {
	if capacity < 0 {
		capacity = 0
	}
	return &Values{
		m: make(map[string]any, capacity),
	}
}

// ValuesOf creates a Values holding a copy of m.
func ValuesOf(m map[string]any) *Values {
	v := NewValues(len(m))
	for k, val := range m {
		v.m[k] = val
	}
	return v
}

// Get returns the value stored under key.
func (v *Values) Get(key string) (any, bool) {
	v.mu.RLock()
	defer v.mu.RUnlock()

	val, ok := v.m[key]
	return val, ok
}

// Set stores val under key, replacing any previous value.
func (v *Values) Set(key string, val any) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.m[key] = val
}

// Delete removes key. It reports whether the key was present.
func (v *Values) Delete(key string) bool {
	v.mu.Lock()
	defer v.mu.Unlock()

	_, ok := v.m[key]
	delete(v.m, key)
	return ok
}

// Has reports whether key is present.
func (v *Values) Has(key string) bool {
	_, ok := v.Get(key)
	return ok
}

// Len returns the number of keys.
func (v *Values) Len() int {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return len(v.m)
}

// Keys returns all keys in sorted order.
func (v *Values) Keys() []string {
	v.mu.RLock()
	defer v.mu.RUnlock()

	keys := make([]string, 0, len(v.m))
	for k := range v.m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Snapshot returns a copy of the current contents.
func (v *Values) Snapshot() map[string]any {
	v.mu.RLock()
	defer v.mu.RUnlock()

	out := make(map[string]any, len(v.m))
	for k, val := range v.m {
		out[k] = val
	}
	return out
}

// Range calls fn for each key in sorted order until fn returns false.
// It iterates over a snapshot, so fn may modify v.
func (v *Values) Range(fn func(key string, val any) bool) {
	snap := v.Snapshot()
	keys := make([]string, 0, len(snap))
	for k := range snap {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		if !fn(k, snap[k]) {
			return
		}
	}
}

// Clear removes every key.
func (v *Values) Clear() {
	v.mu.Lock()
	defer v.mu.Unlock()
	clear(v.m)
}

// ValueAs reads key from vals and asserts it to V.
// A missing key yields a NotFoundError, a differently typed value a TypeMismatchError.
func ValueAs[V any](vals *Values, key string) (V, error) {
	var zero V
	if vals == nil {
		return zero, errors.NewNotFoundError("value", key)
	}

	raw, ok := vals.Get(key)
	if !ok {
		return zero, errors.NewNotFoundError("value", key)
	}

	typed, ok := raw.(V)
	if !ok {
		return zero, errors.NewTypeMismatchError(key, registry.TypeOf[V]().String(), fmt.Sprintf("%T", raw))
	}
	return typed, nil
}
