package store

import (
	"context"
	"testing"

	"github.com/AlexanderBarlow/catering-any/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seededItemStore(t *testing.T, src *fakeSource) *ItemStore {
	t.Helper()
	s := NewItemStore(src, nil)
	require.NoError(t, s.Load(context.Background()))
	return s
}

func TestItemStoreLoadFailure(t *testing.T) {
	src := &fakeSource{failRead: true}
	s := NewItemStore(src, nil)

	err := s.Load(context.Background())
	require.Error(t, err)
	assert.False(t, s.Loaded())
	assert.Empty(t, s.Items())
}

func TestItemStoreAddSuccess(t *testing.T) {
	src := &fakeSource{items: []models.CatalogItem{
		{ID: "1", Name: "Cookie", Price: 1.89, QtySold: 85},
	}}
	rec := &fakeRecorder{}
	s := NewItemStore(src, rec)
	require.NoError(t, s.Load(context.Background()))

	created, err := s.Add(context.Background(), ItemForm{
		Name:    "  Brownie ",
		Price:   "$2.50",
		Cost:    "0.75",
		QtySold: "12",
		Active:  true,
	})
	require.NoError(t, err)
	assert.Equal(t, "Brownie", created.Name)
	assert.InDelta(t, 2.5, created.Price, 1e-9)

	// The provisional row was replaced by the server's copy, appended
	// at the same position.
	items := s.Items()
	require.Len(t, items, 2)
	assert.Equal(t, created.ID, items[1].ID)
	assert.False(t, s.InFlight(created.ID))
	assert.Equal(t, []string{"item.create"}, rec.actions)
}

func TestItemStoreAddValidationSkipsSource(t *testing.T) {
	src := &fakeSource{}
	s := seededItemStore(t, src)

	_, err := s.Add(context.Background(), ItemForm{Name: "", Price: "2"})
	require.Error(t, err)
	assert.True(t, IsValidation(err))
	assert.Zero(t, src.createCalls)
	assert.Empty(t, s.Items())
}

func TestItemStoreAddFailureRollsBackByRefetch(t *testing.T) {
	src := &fakeSource{
		items:      []models.CatalogItem{{ID: "1", Name: "Cookie", Price: 1.89}},
		failCreate: true,
	}
	s := seededItemStore(t, src)

	_, err := s.Add(context.Background(), ItemForm{Name: "Brownie", Price: "2.50"})
	require.Error(t, err)

	// The optimistic row is gone and the list matches the source again.
	items := s.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "Cookie", items[0].Name)
	assert.True(t, s.Loaded())
}

func TestItemStoreEditPreservesPosition(t *testing.T) {
	src := &fakeSource{items: []models.CatalogItem{
		{ID: "1", Name: "Cookie", Price: 1.89},
		{ID: "2", Name: "Brownie", Price: 2.50},
		{ID: "3", Name: "Lemonade", Price: 2.00},
	}}
	s := seededItemStore(t, src)

	updated, err := s.Edit(context.Background(), "2", ItemForm{Name: "Fudge Brownie", Price: "2.75"})
	require.NoError(t, err)
	assert.Equal(t, "Fudge Brownie", updated.Name)

	items := s.Items()
	require.Len(t, items, 3)
	assert.Equal(t, "2", items[1].ID)
	assert.Equal(t, "Fudge Brownie", items[1].Name)
}

func TestItemStoreEditUnknownID(t *testing.T) {
	s := seededItemStore(t, &fakeSource{})
	_, err := s.Edit(context.Background(), "missing", ItemForm{Name: "X", Price: "1"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestItemStoreEditFailureRollsBack(t *testing.T) {
	src := &fakeSource{
		items:      []models.CatalogItem{{ID: "1", Name: "Cookie", Price: 1.89}},
		failUpdate: true,
	}
	s := seededItemStore(t, src)

	_, err := s.Edit(context.Background(), "1", ItemForm{Name: "Biscuit", Price: "2"})
	require.Error(t, err)

	items := s.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "Cookie", items[0].Name)
	assert.False(t, s.InFlight("1"))
}

func TestItemStoreRollbackRefetchFailureUnloads(t *testing.T) {
	src := &fakeSource{
		items:      []models.CatalogItem{{ID: "1", Name: "Cookie", Price: 1.89}},
		failUpdate: true,
	}
	s := seededItemStore(t, src)
	src.failRead = true

	_, err := s.Edit(context.Background(), "1", ItemForm{Name: "Biscuit", Price: "2"})
	require.Error(t, err)

	// When the rollback refetch also fails the store drops to unloaded
	// instead of keeping the optimistic value.
	assert.False(t, s.Loaded())
	assert.Empty(t, s.Items())
}

func TestItemStoreRemove(t *testing.T) {
	src := &fakeSource{items: []models.CatalogItem{
		{ID: "1", Name: "Cookie", Price: 1.89},
		{ID: "2", Name: "Brownie", Price: 2.50},
	}}
	rec := &fakeRecorder{}
	s := NewItemStore(src, rec)
	require.NoError(t, s.Load(context.Background()))

	require.NoError(t, s.Remove(context.Background(), "1"))
	items := s.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "2", items[0].ID)
	assert.Equal(t, []string{"item.delete"}, rec.actions)
}

func TestItemStoreRemoveFailureRestoresRow(t *testing.T) {
	src := &fakeSource{
		items:      []models.CatalogItem{{ID: "1", Name: "Cookie", Price: 1.89}},
		failDelete: true,
	}
	s := seededItemStore(t, src)

	err := s.Remove(context.Background(), "1")
	require.Error(t, err)
	assert.Len(t, s.Items(), 1)
}

func TestItemStoreRejectsConcurrentMutation(t *testing.T) {
	src := &fakeSource{items: []models.CatalogItem{{ID: "1", Name: "Cookie", Price: 1.89}}}
	s := seededItemStore(t, src)
	s.inFlight["1"] = struct{}{}

	_, err := s.Edit(context.Background(), "1", ItemForm{Name: "Biscuit", Price: "2"})
	assert.ErrorIs(t, err, ErrMutationInFlight)
	assert.ErrorIs(t, s.Remove(context.Background(), "1"), ErrMutationInFlight)
	assert.Zero(t, src.updateCalls)
	assert.Zero(t, src.deleteCalls)
}

func TestItemStoreFindByName(t *testing.T) {
	src := &fakeSource{items: []models.CatalogItem{{ID: "1", Name: "Gallon Sweet Tea"}}}
	s := seededItemStore(t, src)

	got, ok := s.FindByName("  gallon sweet tea ")
	require.True(t, ok)
	assert.Equal(t, "1", got.ID)

	_, ok = s.FindByName("nope")
	assert.False(t, ok)
}
