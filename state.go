/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package entitystate

import (
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/suparena/entitystate/errors"
	"github.com/suparena/entitystate/registry"
)

// State is the shared state of one specialization: a single entity value and
// the search criteria and values maps. Every holder of the specialization sees
// the same State; nothing is copied.
//
// Each accessor is atomic on its own, but a sequence of calls is not. A
// Construct or Reset issued by one caller replaces the entity seen by all
// callers. Use Exclusive to serialize construct-use-read sequences.
type State[T any] struct {
	mu      sync.RWMutex
	session sync.Mutex

	name      string
	newEntity registry.Factory[T]
	capacity  int
	logger    zerolog.Logger

	entity     T
	criteria   *Values
	values     *Values
	generation uint64
}

func newState[T any](name string, factory registry.Factory[T], capacity int, logger zerolog.Logger) *State[T] {
	return &State[T]{
		name:      name,
		newEntity: factory,
		capacity:  capacity,
		logger:    logger.With().Str("specialization", name).Logger(),
	}
}

// Name returns the specialization name, e.g. "billing.Invoice" or "billing.Invoice#archive".
func (s *State[T]) Name() string {
	return s.name
}

// EntityDB returns the shared entity.
func (s *State[T]) EntityDB() T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.entity
}

// SetEntityDB replaces the shared entity for every holder.
func (s *State[T]) SetEntityDB(entity T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entity = entity
}

// SearchCriteria returns the shared search criteria map, or nil if it is unset.
func (s *State[T]) SearchCriteria() *Values {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.criteria
}

// SetSearchCriteria replaces the shared search criteria map. Passing nil unsets
// it; the next Construct allocates a fresh one.
func (s *State[T]) SetSearchCriteria(criteria *Values) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.criteria = criteria
}

// Values returns the shared values map, or nil if it is unset.
func (s *State[T]) Values() *Values {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.values
}

// SetValues replaces the shared values map. Passing nil unsets it.
func (s *State[T]) SetValues(values *Values) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values = values
}

// Initialized reports whether both maps are allocated.
func (s *State[T]) Initialized() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.criteria != nil && s.values != nil
}

// Generation returns how many times the entity has been reset.
func (s *State[T]) Generation() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.generation
}

// Construct replaces the entity with a fresh default value and allocates
// whichever of the two maps is unset. Maps that already exist keep their contents.
func (s *State[T]) Construct() error {
	entity, err := s.build()
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.entity = entity
	s.generation++
	if s.criteria == nil {
		s.criteria = NewValues(s.capacity)
	}
	if s.values == nil {
		s.values = NewValues(s.capacity)
	}
	gen := s.generation
	s.mu.Unlock()

	s.logger.Debug().Uint64("generation", gen).Msg("state constructed")
	return nil
}

// Reset replaces the entity with a fresh default value and leaves both maps untouched.
func (s *State[T]) Reset() error {
	entity, err := s.build()
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.entity = entity
	s.generation++
	gen := s.generation
	s.mu.Unlock()

	s.logger.Debug().Uint64("generation", gen).Msg("entity reset")
	return nil
}

// Exclusive runs fn while holding the specialization's session lock. Only
// callers that go through Exclusive are serialized against each other; plain
// accessor calls never wait on it.
func (s *State[T]) Exclusive(fn func() error) error {
	s.session.Lock()
	defer s.session.Unlock()
	return fn()
}

// build calls the factory, turning a panic into an InitError.
func (s *State[T]) build() (entity T, err error) {
	defer func() {
		if r := recover(); r != nil {
			cause, ok := r.(error)
			if !ok {
				cause = fmt.Errorf("%v", r)
			}
			err = errors.NewInitError(s.name, cause)
		}
	}()
	return s.newEntity(), nil
}
