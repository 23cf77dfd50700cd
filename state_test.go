/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package entitystate

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suparena/entitystate/errors"
)

type order struct {
	Number string
	Total  float64
}

func newTestState() *State[order] {
	return newState[order]("entitystate.order", func() order { return order{} }, 0, zerolog.Nop())
}

func TestStateLifecycle(t *testing.T) {
	s := newTestState()
	assert.False(t, s.Initialized())
	assert.Nil(t, s.SearchCriteria())
	assert.Nil(t, s.Values())
	assert.Equal(t, uint64(0), s.Generation())

	require.NoError(t, s.Construct())
	assert.True(t, s.Initialized())
	assert.NotNil(t, s.SearchCriteria())
	assert.NotNil(t, s.Values())
	assert.Equal(t, uint64(1), s.Generation())
	assert.Equal(t, "entitystate.order", s.Name())
}

func TestStateConstructKeepsExistingMaps(t *testing.T) {
	s := newTestState()
	require.NoError(t, s.Construct())

	criteria := s.SearchCriteria()
	criteria.Set("x", 1)
	values := s.Values()
	values.Set("y", 2)

	s.SetEntityDB(order{Number: "42"})
	require.NoError(t, s.Construct())

	assert.Same(t, criteria, s.SearchCriteria())
	assert.Same(t, values, s.Values())
	x, _ := criteria.Get("x")
	assert.Equal(t, 1, x)
	assert.Equal(t, order{}, s.EntityDB())
}

func TestStateConstructAllocatesUnsetMapOnly(t *testing.T) {
	s := newTestState()
	require.NoError(t, s.Construct())

	values := s.Values()
	values.Set("keep", true)
	s.SetSearchCriteria(nil)
	assert.False(t, s.Initialized())

	require.NoError(t, s.Construct())
	require.NotNil(t, s.SearchCriteria())
	assert.Equal(t, 0, s.SearchCriteria().Len())
	assert.Same(t, values, s.Values())
}

func TestStateResetLeavesMaps(t *testing.T) {
	s := newTestState()
	s.SetEntityDB(order{Number: "7"})

	require.NoError(t, s.Reset())
	assert.Equal(t, order{}, s.EntityDB())
	assert.Nil(t, s.SearchCriteria())
	assert.Equal(t, uint64(1), s.Generation())
}

func TestStateSetters(t *testing.T) {
	s := newTestState()
	criteria := ValuesOf(map[string]any{"status": "open"})

	s.SetSearchCriteria(criteria)
	s.SetValues(NewValues(0))
	s.SetEntityDB(order{Number: "1", Total: 10})

	assert.Same(t, criteria, s.SearchCriteria())
	assert.True(t, s.Initialized())
	assert.Equal(t, order{Number: "1", Total: 10}, s.EntityDB())
}

func TestStateFactoryPanic(t *testing.T) {
	calls := 0
	s := newState[order]("entitystate.order", func() order {
		calls++
		if calls > 1 {
			panic("out of sequence numbers")
		}
		return order{Number: "first"}
	}, 0, zerolog.Nop())

	require.NoError(t, s.Construct())
	s.SetEntityDB(order{Number: "kept"})

	err := s.Construct()
	require.Error(t, err)
	assert.True(t, errors.IsInitFailed(err))
	assert.Contains(t, err.Error(), "out of sequence numbers")
	assert.Equal(t, order{Number: "kept"}, s.EntityDB())
	assert.Equal(t, uint64(1), s.Generation())
}

func TestStateExclusive(t *testing.T) {
	s := newTestState()
	done := make(chan error)

	for i := 0; i < 10; i++ {
		go func(id int) {
			done <- s.Exclusive(func() error {
				if err := s.Construct(); err != nil {
					return err
				}
				want := order{Number: string(rune('a' + id))}
				s.SetEntityDB(want)
				if got := s.EntityDB(); got != want {
					t.Errorf("entity changed inside exclusive section: got %v, want %v", got, want)
				}
				return nil
			})
		}(i)
	}

	for i := 0; i < 10; i++ {
		require.NoError(t, <-done)
	}
	assert.Equal(t, uint64(10), s.Generation())
}
