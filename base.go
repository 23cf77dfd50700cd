/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package entitystate

// Base is embedded by data-access types to reach the shared state of their
// entity type:
//
//	type CustomerDAO struct {
//	    *entitystate.Base[Customer]
//	}
//
//	func NewCustomerDAO(r *entitystate.Registry) (*CustomerDAO, error) {
//	    b, err := entitystate.NewBase[Customer](r)
//	    if err != nil {
//	        return nil, err
//	    }
//	    return &CustomerDAO{Base: b}, nil
//	}
//
// A Base only holds a reference to the State; all Bases of one specialization
// read and write the same entity and maps.
type Base[T any] struct {
	state *State[T]
}

// NewBase returns a Base for T and runs the construction steps on the shared
// state: the entity is replaced with a fresh default for every holder, and
// missing maps are allocated while existing ones keep their contents.
func NewBase[T any](r *Registry) (*Base[T], error) {
	s, err := StateFor[T](r)
	if err != nil {
		return nil, err
	}
	if err := s.Construct(); err != nil {
		return nil, err
	}
	return &Base[T]{state: s}, nil
}

// AttachBase returns a Base for T without touching the shared state beyond
// first-use initialization. Call Reset to clear the entity explicitly.
func AttachBase[T any](r *Registry) (*Base[T], error) {
	s, err := StateFor[T](r)
	if err != nil {
		return nil, err
	}
	return &Base[T]{state: s}, nil
}

// State returns the shared state behind b.
func (b *Base[T]) State() *State[T] {
	return b.state
}

// EntityDB returns the shared entity.
func (b *Base[T]) EntityDB() T {
	return b.state.EntityDB()
}

// SetEntityDB replaces the shared entity for every holder.
func (b *Base[T]) SetEntityDB(entity T) {
	b.state.SetEntityDB(entity)
}

// SearchCriteria returns the shared search criteria map.
func (b *Base[T]) SearchCriteria() *Values {
	return b.state.SearchCriteria()
}

// SetSearchCriteria replaces the shared search criteria map.
func (b *Base[T]) SetSearchCriteria(criteria *Values) {
	b.state.SetSearchCriteria(criteria)
}

// Values returns the shared values map.
func (b *Base[T]) Values() *Values {
	return b.state.Values()
}

// SetValues replaces the shared values map.
func (b *Base[T]) SetValues(values *Values) {
	b.state.SetValues(values)
}

// Reset replaces the shared entity with a fresh default value.
func (b *Base[T]) Reset() error {
	return b.state.Reset()
}
