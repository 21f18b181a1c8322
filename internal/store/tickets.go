package store

import (
	"context"
	"fmt"
	"sync"

	"github.com/AlexanderBarlow/catering-any/internal/models"
)

// TicketStore holds the operations ticket list. Tickets are read-only
// sample data in this scope; only loading is supported.
type TicketStore struct {
	mu      sync.Mutex
	src     Source
	tickets []models.Ticket
	loaded  bool
}

func NewTicketStore(src Source) *TicketStore {
	return &TicketStore{src: src}
}

// Load replaces the list with the source's authoritative state. A read
// failure leaves the store unloaded with no partial list.
func (s *TicketStore) Load(ctx context.Context) error {
	tickets, err := s.src.Tickets(ctx)
	if err != nil {
		s.mu.Lock()
		s.tickets = nil
		s.loaded = false
		s.mu.Unlock()
		return fmt.Errorf("loading tickets: %w", err)
	}
	s.mu.Lock()
	s.tickets = tickets
	s.loaded = true
	s.mu.Unlock()
	return nil
}

// Tickets returns a snapshot of the current list.
func (s *TicketStore) Tickets() []models.Ticket {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Ticket, len(s.tickets))
	copy(out, s.tickets)
	return out
}

// Loaded reports whether the last load succeeded.
func (s *TicketStore) Loaded() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loaded
}
