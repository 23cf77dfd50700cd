/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package entitystate

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suparena/entitystate/datastore"
	"github.com/suparena/entitystate/datastore/mock"
	"github.com/suparena/entitystate/errors"
)

type customer struct {
	ID   string
	Name string
	City string
}

type product struct {
	SKU   string
	Price float64
}

// customerDAO is a data-access type built the way consumers of Base are expected to build them.
type customerDAO struct {
	*Base[customer]
	store datastore.DataStore[customer]
}

func newCustomerDAO(r *Registry, store datastore.DataStore[customer]) (*customerDAO, error) {
	b, err := NewBase[customer](r)
	if err != nil {
		return nil, err
	}
	return &customerDAO{Base: b, store: store}, nil
}

// Search filters the store by the "city" criterion, stores the first match as
// the entity and the match count under "count".
func (d *customerDAO) Search(ctx context.Context) error {
	city, err := ValueAs[string](d.SearchCriteria(), "city")
	if err != nil {
		return fmt.Errorf("search customers: %w", err)
	}

	rows, err := d.store.List(ctx)
	if err != nil {
		return fmt.Errorf("search customers: %w", err)
	}

	var matches []customer
	for _, c := range rows {
		if strings.EqualFold(c.City, city) {
			matches = append(matches, c)
		}
	}
	d.Values().Set("count", len(matches))
	if len(matches) > 0 {
		d.SetEntityDB(matches[0])
	}
	return nil
}

func TestBaseSharesMapsPerSpecialization(t *testing.T) {
	reg := NewRegistry()
	a, err := NewBase[customer](reg)
	require.NoError(t, err)
	b, err := NewBase[customer](reg)
	require.NoError(t, err)

	a.SearchCriteria().Set("city", "Campinas")
	b.Values().Set("page", 2)

	city, ok := b.SearchCriteria().Get("city")
	require.True(t, ok)
	assert.Equal(t, "Campinas", city)

	page, ok := a.Values().Get("page")
	require.True(t, ok)
	assert.Equal(t, 2, page)

	assert.Same(t, a.SearchCriteria(), b.SearchCriteria())
	assert.Same(t, a.Values(), b.Values())
	assert.Same(t, a.State(), b.State())
}

func TestBaseConstructionResetsEntity(t *testing.T) {
	reg := NewRegistry()
	a, err := NewBase[customer](reg)
	require.NoError(t, err)

	v := customer{ID: "1", Name: "Ana"}
	a.SetEntityDB(v)
	assert.Equal(t, v, a.EntityDB())

	b, err := NewBase[customer](reg)
	require.NoError(t, err)

	assert.NotEqual(t, v, a.EntityDB())
	assert.Equal(t, customer{}, a.EntityDB())
	assert.Equal(t, customer{}, b.EntityDB())
}

func TestBaseConstructionKeepsPopulatedMaps(t *testing.T) {
	reg := NewRegistry()
	a, err := NewBase[customer](reg)
	require.NoError(t, err)
	a.SearchCriteria().Set("x", 1)
	a.Values().Set("y", "z")

	_, err = NewBase[customer](reg)
	require.NoError(t, err)

	x, ok := a.SearchCriteria().Get("x")
	require.True(t, ok)
	assert.Equal(t, 1, x)
	assert.True(t, a.Values().Has("y"))
}

func TestBaseSpecializationIsolation(t *testing.T) {
	reg := NewRegistry()
	c, err := NewBase[customer](reg)
	require.NoError(t, err)
	p, err := NewBase[product](reg)
	require.NoError(t, err)

	c.SetEntityDB(customer{ID: "1"})
	c.SearchCriteria().Set("city", "Recife")
	c.Values().Set("count", 3)

	assert.Equal(t, product{}, p.EntityDB())
	assert.False(t, p.SearchCriteria().Has("city"))
	assert.False(t, p.Values().Has("count"))
	assert.NotSame(t, c.SearchCriteria(), p.SearchCriteria())

	_, err = NewBase[product](reg)
	require.NoError(t, err)
	assert.Equal(t, customer{ID: "1"}, c.EntityDB())
}

func TestBaseRegistriesAreIndependent(t *testing.T) {
	a, err := NewBase[customer](NewRegistry())
	require.NoError(t, err)
	b, err := NewBase[customer](NewRegistry())
	require.NoError(t, err)

	a.SearchCriteria().Set("city", "Natal")
	assert.False(t, b.SearchCriteria().Has("city"))
}

func TestAttachBaseDoesNotReset(t *testing.T) {
	reg := NewRegistry()
	a, err := NewBase[customer](reg)
	require.NoError(t, err)
	a.SetEntityDB(customer{ID: "7"})

	b, err := AttachBase[customer](reg)
	require.NoError(t, err)
	assert.Equal(t, customer{ID: "7"}, b.EntityDB())
	assert.Equal(t, uint64(2), b.State().Generation())

	require.NoError(t, b.Reset())
	assert.Equal(t, customer{}, a.EntityDB())
}

func TestAttachBaseInitializesOnFirstUse(t *testing.T) {
	reg := NewRegistry()
	b, err := AttachBase[product](reg)
	require.NoError(t, err)

	assert.True(t, b.State().Initialized())
	assert.Equal(t, product{}, b.EntityDB())
}

func TestBaseReplaceMaps(t *testing.T) {
	reg := NewRegistry()
	a, err := NewBase[customer](reg)
	require.NoError(t, err)
	b, err := AttachBase[customer](reg)
	require.NoError(t, err)

	replacement := ValuesOf(map[string]any{"uf": "PE"})
	a.SetSearchCriteria(replacement)
	assert.Same(t, replacement, b.SearchCriteria())

	a.SetValues(nil)
	assert.Nil(t, b.Values())

	_, err = NewBase[customer](reg)
	require.NoError(t, err)
	require.NotNil(t, b.Values())
	assert.Equal(t, 0, b.Values().Len())
	assert.Same(t, replacement, b.SearchCriteria())
}

func TestDerivedDAOSearch(t *testing.T) {
	ctx := context.Background()
	reg := NewRegistry()
	store := mock.New[customer]()
	store.SetData(map[string]customer{
		"1": {ID: "1", Name: "Ana", City: "Campinas"},
		"2": {ID: "2", Name: "Bruno", City: "Santos"},
		"3": {ID: "3", Name: "Carla", City: "campinas"},
	})

	caller, err := AttachBase[customer](reg)
	require.NoError(t, err)
	caller.SearchCriteria().Set("city", "CAMPINAS")

	dao, err := newCustomerDAO(reg, store)
	require.NoError(t, err)
	require.NoError(t, dao.Search(ctx))

	count, err := ValueAs[int](caller.Values(), "count")
	require.NoError(t, err)
	assert.Equal(t, 2, count)
	assert.Equal(t, "Ana", caller.EntityDB().Name)

	// A new DAO for the next call clears the entity but keeps the criteria.
	next, err := newCustomerDAO(reg, mock.New[customer]())
	require.NoError(t, err)
	assert.Equal(t, customer{}, caller.EntityDB())
	require.NoError(t, next.Search(ctx))
	count, _ = ValueAs[int](caller.Values(), "count")
	assert.Equal(t, 0, count)
}

func TestDerivedDAOSearchErrors(t *testing.T) {
	ctx := context.Background()

	dao, err := newCustomerDAO(NewRegistry(), mock.New[customer]())
	require.NoError(t, err)
	err = dao.Search(ctx)
	require.Error(t, err)
	assert.True(t, errors.IsNotFound(err))

	reg := NewRegistry()
	failing := mock.New[customer]().WithListError(fmt.Errorf("backend down"))
	dao, err = newCustomerDAO(reg, failing)
	require.NoError(t, err)
	dao.SearchCriteria().Set("city", "Recife")
	err = dao.Search(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "backend down")
	assert.False(t, dao.Values().Has("count"))
}

func TestBaseConcurrentConstruction(t *testing.T) {
	reg := NewRegistry()
	var wg sync.WaitGroup

	for i := 0; i < 25; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			b, err := NewBase[customer](reg)
			if err != nil {
				t.Errorf("NewBase failed: %v", err)
				return
			}
			b.SearchCriteria().Set(fmt.Sprintf("k%d", id), id)
			b.SetEntityDB(customer{ID: fmt.Sprint(id)})
		}(i)
	}
	wg.Wait()

	s, ok := Lookup[customer](reg)
	require.True(t, ok)
	assert.Equal(t, 25, s.SearchCriteria().Len())
	assert.Equal(t, uint64(26), s.Generation())
}
