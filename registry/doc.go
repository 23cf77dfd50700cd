/*
Package registry manages default-value factories for entitystate specializations.

When a specialization is initialized, or its entity slot is reset, a fresh
default value of the entity type is needed. Go has no constructors, so the
registry lets a type declare how its default value is built:

	registry.MustRegisterFactory(func() Customer {
	    return Customer{Status: "active", Tags: map[string]string{}}
	})

Types without a registered factory fall back to a structural default:

	*Customer          -> &Customer{}
	map[string]string  -> map[string]string{}
	Customer           -> Customer{}

A factory that panics is how a type signals that it has no usable default;
the owning specialization then fails to initialize with ErrInitFailed.

The registry is thread-safe and should be populated during initialization,
typically in init() functions.
*/
package registry
