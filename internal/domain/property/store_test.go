package property

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSeedStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore(seedCatalog(t))
	require.NoError(t, err)
	return store
}

func TestNewStore_KeepsInsertionOrder(t *testing.T) {
	store := newSeedStore(t)

	assert.Equal(t, 5, store.Len())
	assert.Equal(t, []string{"1", "2", "3", "4", "5"}, ids(store.List()))
}

func TestNewStore_RejectsDuplicateIDs(t *testing.T) {
	catalog := seedCatalog(t)
	catalog[1].ID = catalog[0].ID

	_, err := NewStore(catalog)

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidCatalog))
	assert.Contains(t, err.Error(), `"1"`)
}

func TestNewStore_RejectsInvalidRecords(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(p *Property)
		field  string
	}{
		{"zero price", func(p *Property) { p.Price = 0 }, "price"},
		{"zero surface", func(p *Property) { p.Features.Surface = 0 }, "features.surface"},
		{"unknown category", func(p *Property) { p.Category = "castle" }, "category"},
		{"unknown transaction type", func(p *Property) { p.Type = "lease" }, "type"},
		{"energy class out of range", func(p *Property) { p.Features.EnergyClass = "H" }, "features.energy_class"},
		{"agent rating above five", func(p *Property) { p.Agent.Rating = 5.5 }, "agent.rating"},
		{"missing city", func(p *Property) { p.Location.City = "" }, "location.city"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			catalog := seedCatalog(t)
			tt.mutate(&catalog[2])

			_, err := NewStore(catalog)

			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidCatalog))

			var verr *ValidationError
			require.True(t, errors.As(err, &verr))
			assert.Contains(t, verr.Fields, tt.field)
		})
	}
}

func TestStore_Get(t *testing.T) {
	store := newSeedStore(t)

	p, ok := store.Get("4")
	require.True(t, ok)
	assert.Equal(t, "Villa moderne avec piscine", p.Title)

	_, ok = store.Get("999")
	assert.False(t, ok)

	_, ok = store.Get("")
	assert.False(t, ok)
}

func TestStore_ReturnsCopies(t *testing.T) {
	store := newSeedStore(t)

	listed := store.List()
	listed[0].Title = "changed"
	listed[0].Images[0] = "changed.jpg"

	p, ok := store.Get(listed[0].ID)
	require.True(t, ok)
	assert.Equal(t, "Appartement T3 lumineux avec balcon", p.Title)
	assert.NotEqual(t, "changed.jpg", p.Images[0])
}

func TestStore_CopiesInput(t *testing.T) {
	catalog := seedCatalog(t)
	store, err := NewStore(catalog)
	require.NoError(t, err)

	catalog[0].Price = 1

	p, _ := store.Get(catalog[0].ID)
	assert.Equal(t, 285000.0, p.Price)
}

func TestStore_Agents(t *testing.T) {
	store := newSeedStore(t)

	agents := store.Agents()
	require.Len(t, agents, 3)
	assert.Equal(t, "1", agents[0].ID)
	assert.Equal(t, "2", agents[1].ID)
	assert.Equal(t, "3", agents[2].ID)

	a, ok := store.Agent("3")
	require.True(t, ok)
	assert.Equal(t, "Agence Centrale", a.Name)

	_, ok = store.Agent("42")
	assert.False(t, ok)

	assert.Equal(t, []string{"1", "4"}, ids(store.ByAgent("1")))
	assert.Empty(t, store.ByAgent("42"))
}

func TestNewStore_RejectsConflictingAgents(t *testing.T) {
	catalog := seedCatalog(t)
	require.Equal(t, catalog[0].Agent.ID, catalog[3].Agent.ID)
	catalog[3].Agent.Name = "Someone Else"

	_, err := NewStore(catalog)

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidCatalog))
	assert.Contains(t, err.Error(), "conflicting")
}

func TestNewStore_Empty(t *testing.T) {
	store, err := NewStore(nil)
	require.NoError(t, err)

	assert.Equal(t, 0, store.Len())
	assert.NotNil(t, store.List())
	assert.Empty(t, store.Agents())
}
