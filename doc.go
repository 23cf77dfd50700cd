/*
Package entitystate provides shared, per-type state for data-access types.

For every entity type T (a specialization) a Registry holds exactly one State:
a shared entity value plus two shared string-keyed maps, the search criteria
and the values. Every data-access object built for T sees the same State, so
a caller can fill the search criteria once and any number of DAOs created
afterwards will read them.

Lifecycle:
  - Uninitialized: nothing has asked for T yet.
  - Initialized: the first StateFor[T] builds a default entity and both maps.
    There is no way back short of dropping the Registry.

Construction semantics:
  - NewBase[T] resets the shared entity to a fresh default for all holders and
    allocates a map only when it is unset; existing map contents survive.
  - AttachBase[T] only attaches; Reset clears the entity explicitly.

Basic Usage:

	reg := entitystate.NewRegistry(entitystate.WithLogger(logger))

	dao, _ := entitystate.NewBase[Customer](reg)
	dao.SearchCriteria().Set("city", "Campinas")

	other, _ := entitystate.NewBase[Customer](reg)
	city, _ := other.SearchCriteria().Get("city") // "Campinas"

	page, err := entitystate.ValueAs[int](other.Values(), "page")

Concurrency:
Each accessor is atomic, but there is no transaction boundary across calls:
a NewBase in one goroutine resets the entity another goroutine is using.
Confine a specialization to one logical flow at a time, or wrap the
construct-use-read sequence in State.Exclusive.

Default values come from package registry: a registered factory if there is
one, otherwise a structural default (pointer to zero value, empty map, zero
value).
*/
package entitystate
