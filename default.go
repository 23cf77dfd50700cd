/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package entitystate

import "sync"

var (
	defaultRegistry *Registry
	defaultOnce     sync.Once
)

// Default returns the process-wide Registry, creating it on first call.
func Default() *Registry {
	defaultOnce.Do(func() {
		defaultRegistry = NewRegistry()
	})
	return defaultRegistry
}

// InitDefault installs r as the process-wide Registry. It only takes effect if
// called before the first Default; it reports whether r was installed.
func InitDefault(r *Registry) bool {
	installed := false
	defaultOnce.Do(func() {
		defaultRegistry = r
		installed = true
	})
	return installed
}

// For returns the State for T from the process-wide Registry.
func For[T any]() (*State[T], error) {
	return StateFor[T](Default())
}
