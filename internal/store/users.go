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

// UserStore owns the account list for the user administration screen.
// It applies the same optimistic protocol as ItemStore, plus the local
// ADMIN protection: disable and remove are refused before any source
// call when the target is an admin.
type UserStore struct {
	mu       sync.Mutex
	src      Source
	rec      Recorder
	users    []models.UserAccount
	inFlight map[string]struct{}
	loaded   bool
}

func NewUserStore(src Source, rec Recorder) *UserStore {
	return &UserStore{
		src:      src,
		rec:      rec,
		inFlight: make(map[string]struct{}),
	}
}

// Load replaces the list with the source's authoritative state. A read
// failure leaves the store unloaded with no partial list.
func (s *UserStore) Load(ctx context.Context) error {
	users, err := s.src.Users(ctx)
	if err != nil {
		s.mu.Lock()
		s.users = nil
		s.loaded = false
		s.mu.Unlock()
		return fmt.Errorf("loading users: %w", err)
	}
	s.mu.Lock()
	s.users = users
	s.loaded = true
	s.mu.Unlock()
	return nil
}

// Users returns a snapshot of the current list.
func (s *UserStore) Users() []models.UserAccount {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.UserAccount, len(s.users))
	copy(out, s.users)
	return out
}

// Loaded reports whether the last load succeeded.
func (s *UserStore) Loaded() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loaded
}

// InFlight reports whether a mutation for id is still saving.
func (s *UserStore) InFlight(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.inFlight[id]
	return ok
}

// Add validates the form, appends a provisional account, then
// reconciles. The returned string is the one-time temporary password
// the source assigned, surfaced exactly once to the caller.
func (s *UserStore) Add(ctx context.Context, form UserForm) (models.UserAccount, string, error) {
	s.mu.Lock()
	if err := validateUser(s.users, form); err != nil {
		s.mu.Unlock()
		return models.UserAccount{}, "", err
	}
	candidate := models.UserAccount{
		ID:        cuid.New(),
		Name:      strings.TrimSpace(form.Name),
		Email:     strings.ToLower(strings.TrimSpace(form.Email)),
		Role:      form.Role,
		Active:    true,
		CreatedAt: time.Now(),
	}
	s.users = append(s.users, candidate)
	s.inFlight[candidate.ID] = struct{}{}
	s.mu.Unlock()

	created, tempPassword, err := s.src.CreateUser(ctx, candidate)
	if err != nil {
		s.rollback(ctx, candidate.ID)
		return models.UserAccount{}, "", fmt.Errorf("creating user: %w", err)
	}

	s.mu.Lock()
	s.replaceUser(candidate.ID, created)
	delete(s.inFlight, candidate.ID)
	s.mu.Unlock()

	s.record(ctx, "user.create", created.ID)
	return created, tempPassword, nil
}

// SetActive toggles the account's active flag. ADMIN targets are
// refused locally; the source is never called for them.
func (s *UserStore) SetActive(ctx context.Context, id string, active bool) (models.UserAccount, error) {
	s.mu.Lock()
	if _, busy := s.inFlight[id]; busy {
		s.mu.Unlock()
		return models.UserAccount{}, ErrMutationInFlight
	}
	idx := s.indexOf(id)
	if idx < 0 {
		s.mu.Unlock()
		return models.UserAccount{}, ErrNotFound
	}
	if s.users[idx].Role == models.RoleAdmin {
		s.mu.Unlock()
		return models.UserAccount{}, ErrAdminProtected
	}
	candidate := s.users[idx]
	candidate.Active = active
	s.users[idx] = candidate
	s.inFlight[id] = struct{}{}
	s.mu.Unlock()

	updated, err := s.src.UpdateUser(ctx, candidate)
	if err != nil {
		s.rollback(ctx, id)
		return models.UserAccount{}, fmt.Errorf("updating user: %w", err)
	}

	s.mu.Lock()
	s.replaceUser(id, updated)
	delete(s.inFlight, id)
	s.mu.Unlock()

	s.record(ctx, "user.update", id)
	return updated, nil
}

// Remove deletes the account optimistically, then reconciles. ADMIN
// targets are refused locally.
func (s *UserStore) Remove(ctx context.Context, id string) error {
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
	if s.users[idx].Role == models.RoleAdmin {
		s.mu.Unlock()
		return ErrAdminProtected
	}
	s.users = append(s.users[:idx], s.users[idx+1:]...)
	s.inFlight[id] = struct{}{}
	s.mu.Unlock()

	if err := s.src.DeleteUser(ctx, id); err != nil {
		s.rollback(ctx, id)
		return fmt.Errorf("deleting user: %w", err)
	}

	s.mu.Lock()
	delete(s.inFlight, id)
	s.mu.Unlock()

	s.record(ctx, "user.delete", id)
	return nil
}

func (s *UserStore) rollback(ctx context.Context, id string) {
	users, err := s.src.Users(ctx)
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.inFlight, id)
	if err != nil {
		s.users = nil
		s.loaded = false
		return
	}
	s.users = users
	s.loaded = true
}

func (s *UserStore) replaceUser(id string, user models.UserAccount) bool {
	idx := s.indexOf(id)
	if idx < 0 {
		return false
	}
	s.users[idx] = user
	return true
}

func (s *UserStore) indexOf(id string) int {
	for i, u := range s.users {
		if u.ID == id {
			return i
		}
	}
	return -1
}

func (s *UserStore) record(ctx context.Context, action, id string) {
	if s.rec != nil {
		s.rec.Record(ctx, action, "user", id)
	}
}
