package source

import (
	"context"
	"sync"

	"github.com/AlexanderBarlow/catering-any/internal/factories"
	"github.com/AlexanderBarlow/catering-any/internal/models"
	"github.com/AlexanderBarlow/catering-any/internal/store"
	"github.com/lucsky/cuid"
)

// Mock is the fixture-backed data source: the same interface as the
// live API, fed by generated sample data. It plays the authoritative
// remote, so creates assign fresh identifiers the way a server would.
type Mock struct {
	mu      sync.Mutex
	fx      *factories.Fixtures
	tickets []models.Ticket
	items   []models.CatalogItem
	users   []models.UserAccount
}

var _ store.Source = (*Mock)(nil)

// NewMock builds a mock source seeded deterministically.
func NewMock(seed int64, nTickets, nItems, nUsers int) *Mock {
	fx := factories.New(seed)
	return &Mock{
		fx:      fx,
		tickets: fx.Tickets(nTickets),
		items:   fx.Items(nItems),
		users:   fx.Users(nUsers),
	}
}

func (m *Mock) Tickets(ctx context.Context) ([]models.Ticket, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]models.Ticket(nil), m.tickets...), nil
}

func (m *Mock) Items(ctx context.Context) ([]models.CatalogItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]models.CatalogItem(nil), m.items...), nil
}

func (m *Mock) Users(ctx context.Context) ([]models.UserAccount, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]models.UserAccount(nil), m.users...), nil
}

func (m *Mock) CreateItem(ctx context.Context, item models.CatalogItem) (models.CatalogItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	item.ID = cuid.New()
	m.items = append(m.items, item)
	return item, nil
}

func (m *Mock) UpdateItem(ctx context.Context, item models.CatalogItem) (models.CatalogItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, it := range m.items {
		if it.ID == item.ID {
			m.items[i] = item
			return item, nil
		}
	}
	return models.CatalogItem{}, store.ErrNotFound
}

func (m *Mock) DeleteItem(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, it := range m.items {
		if it.ID == id {
			m.items = append(m.items[:i], m.items[i+1:]...)
			return nil
		}
	}
	return store.ErrNotFound
}

func (m *Mock) CreateUser(ctx context.Context, user models.UserAccount) (models.UserAccount, string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	user.ID = cuid.New()
	m.users = append(m.users, user)
	return user, m.fx.TempPassword(), nil
}

func (m *Mock) UpdateUser(ctx context.Context, user models.UserAccount) (models.UserAccount, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, u := range m.users {
		if u.ID == user.ID {
			m.users[i] = user
			return user, nil
		}
	}
	return models.UserAccount{}, store.ErrNotFound
}

func (m *Mock) DeleteUser(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, u := range m.users {
		if u.ID == id {
			m.users = append(m.users[:i], m.users[i+1:]...)
			return nil
		}
	}
	return store.ErrNotFound
}
