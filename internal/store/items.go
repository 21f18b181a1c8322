package store

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/AlexanderBarlow/catering-any/internal/models"
	"github.com/lucsky/cuid"
)

// ItemStore owns the catalog list for the items screen. Mutations
// follow the optimistic protocol: the local list is updated first, the
// source is called, and the optimistic entry is either replaced by the
// authoritative row or the whole list is rolled back by refetching.
type ItemStore struct {
	mu       sync.Mutex
	src      Source
	rec      Recorder
	items    []models.CatalogItem
	inFlight map[string]struct{}
	loaded   bool
}

func NewItemStore(src Source, rec Recorder) *ItemStore {
	return &ItemStore{
		src:      src,
		rec:      rec,
		inFlight: make(map[string]struct{}),
	}
}

// Load replaces the list with the source's authoritative state. A read
// failure leaves the store unloaded with no partial list.
func (s *ItemStore) Load(ctx context.Context) error {
	items, err := s.src.Items(ctx)
	if err != nil {
		s.mu.Lock()
		s.items = nil
		s.loaded = false
		s.mu.Unlock()
		return fmt.Errorf("loading items: %w", err)
	}
	s.mu.Lock()
	s.items = items
	s.loaded = true
	s.mu.Unlock()
	return nil
}

// Items returns a snapshot of the current list.
func (s *ItemStore) Items() []models.CatalogItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.CatalogItem, len(s.items))
	copy(out, s.items)
	return out
}

// Loaded reports whether the last load succeeded.
func (s *ItemStore) Loaded() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loaded
}

// InFlight reports whether a mutation for id is still saving; the UI
// disables that row's controls while it is.
func (s *ItemStore) InFlight(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.inFlight[id]
	return ok
}

// Add validates the form, appends a provisional row, then reconciles
// against the source's created row.
func (s *ItemStore) Add(ctx context.Context, form ItemForm) (models.CatalogItem, error) {
	candidate := parseItemForm(form)

	s.mu.Lock()
	if err := validateItem(s.items, candidate, ""); err != nil {
		s.mu.Unlock()
		return models.CatalogItem{}, err
	}
	candidate.ID = cuid.New()
	candidate.UpdatedAt = time.Now()
	s.items = append(s.items, candidate)
	s.inFlight[candidate.ID] = struct{}{}
	s.mu.Unlock()

	created, err := s.src.CreateItem(ctx, candidate)
	if err != nil {
		s.rollback(ctx, candidate.ID)
		return models.CatalogItem{}, fmt.Errorf("creating item: %w", err)
	}

	s.mu.Lock()
	s.replaceItem(candidate.ID, created)
	delete(s.inFlight, candidate.ID)
	s.mu.Unlock()

	s.record(ctx, "item.create", created.ID)
	return created, nil
}

// Edit validates the form against the other rows, swaps the row
// optimistically, then reconciles.
func (s *ItemStore) Edit(ctx context.Context, id string, form ItemForm) (models.CatalogItem, error) {
	candidate := parseItemForm(form)
	candidate.ID = id
	candidate.UpdatedAt = time.Now()

	s.mu.Lock()
	if _, busy := s.inFlight[id]; busy {
		s.mu.Unlock()
		return models.CatalogItem{}, ErrMutationInFlight
	}
	if err := validateItem(s.items, candidate, id); err != nil {
		s.mu.Unlock()
		return models.CatalogItem{}, err
	}
	if !s.replaceItem(id, candidate) {
		s.mu.Unlock()
		return models.CatalogItem{}, ErrNotFound
	}
	s.inFlight[id] = struct{}{}
	s.mu.Unlock()

	updated, err := s.src.UpdateItem(ctx, candidate)
	if err != nil {
		s.rollback(ctx, id)
		return models.CatalogItem{}, fmt.Errorf("updating item: %w", err)
	}

	s.mu.Lock()
	s.replaceItem(id, updated)
	delete(s.inFlight, id)
	s.mu.Unlock()

	s.record(ctx, "item.update", id)
	return updated, nil
}

// Remove deletes the row optimistically, then reconciles.
func (s *ItemStore) Remove(ctx context.Context, id string) error {
	s.mu.Lock()
	if _, busy := s.inFlight[id]; busy {
		s.mu.Unlock()
		return ErrMutationInFlight
	}
	idx := s.indexOf(id)
	if idx < 0 {
		s.mu.Unlock()
		return ErrNotFound
	}
	s.items = append(s.items[:idx], s.items[idx+1:]...)
	s.inFlight[id] = struct{}{}
	s.mu.Unlock()

	if err := s.src.DeleteItem(ctx, id); err != nil {
		s.rollback(ctx, id)
		return fmt.Errorf("deleting item: %w", err)
	}

	s.mu.Lock()
	delete(s.inFlight, id)
	s.mu.Unlock()

	s.record(ctx, "item.delete", id)
	return nil
}

// FindByName looks an item up by its case-insensitive unique name.
func (s *ItemStore) FindByName(name string) (models.CatalogItem, bool) {
	lowered := strings.ToLower(strings.TrimSpace(name))
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, it := range s.items {
		if strings.ToLower(it.Name) == lowered {
			return it, true
		}
	}
	return models.CatalogItem{}, false
}

// rollback discards optimistic state by refetching the authoritative
// list in full. A failed refetch leaves the store unloaded rather than
// keeping the optimistic value.
func (s *ItemStore) rollback(ctx context.Context, id string) {
	items, err := s.src.Items(ctx)
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.inFlight, id)
	if err != nil {
		s.items = nil
		s.loaded = false
		return
	}
	s.items = items
	s.loaded = true
}

// replaceItem swaps the row with the given id field-for-field,
// preserving its list position. Caller holds the lock.
func (s *ItemStore) replaceItem(id string, item models.CatalogItem) bool {
	idx := s.indexOf(id)
	if idx < 0 {
		return false
	}
	s.items[idx] = item
	return true
}

func (s *ItemStore) indexOf(id string) int {
	for i, it := range s.items {
		if it.ID == id {
			return i
		}
	}
	return -1
}

func (s *ItemStore) record(ctx context.Context, action, id string) {
	if s.rec != nil {
		s.rec.Record(ctx, action, "item", id)
	}
}
