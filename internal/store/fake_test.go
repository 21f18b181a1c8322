package store

import (
	"context"
	"errors"

	"github.com/AlexanderBarlow/catering-any/internal/models"
)

var errSourceDown = errors.New("source unavailable")

// fakeSource is an in-test Source that counts calls and can be made to
// fail per operation.
type fakeSource struct {
	tickets []models.Ticket
	items   []models.CatalogItem
	users   []models.UserAccount

	failCreate bool
	failUpdate bool
	failDelete bool
	failRead   bool

	createCalls int
	updateCalls int
	deleteCalls int
	readCalls   int
}

var _ Source = (*fakeSource)(nil)

func (f *fakeSource) Tickets(ctx context.Context) ([]models.Ticket, error) {
	f.readCalls++
	if f.failRead {
		return nil, errSourceDown
	}
	return append([]models.Ticket(nil), f.tickets...), nil
}

func (f *fakeSource) Items(ctx context.Context) ([]models.CatalogItem, error) {
	f.readCalls++
	if f.failRead {
		return nil, errSourceDown
	}
	return append([]models.CatalogItem(nil), f.items...), nil
}

func (f *fakeSource) Users(ctx context.Context) ([]models.UserAccount, error) {
	f.readCalls++
	if f.failRead {
		return nil, errSourceDown
	}
	return append([]models.UserAccount(nil), f.users...), nil
}

func (f *fakeSource) CreateItem(ctx context.Context, item models.CatalogItem) (models.CatalogItem, error) {
	f.createCalls++
	if f.failCreate {
		return models.CatalogItem{}, errSourceDown
	}
	item.ID = "srv-" + item.ID
	f.items = append(f.items, item)
	return item, nil
}

func (f *fakeSource) UpdateItem(ctx context.Context, item models.CatalogItem) (models.CatalogItem, error) {
	f.updateCalls++
	if f.failUpdate {
		return models.CatalogItem{}, errSourceDown
	}
	for i, it := range f.items {
		if it.ID == item.ID {
			f.items[i] = item
		}
	}
	return item, nil
}

func (f *fakeSource) DeleteItem(ctx context.Context, id string) error {
	f.deleteCalls++
	if f.failDelete {
		return errSourceDown
	}
	for i, it := range f.items {
		if it.ID == id {
			f.items = append(f.items[:i], f.items[i+1:]...)
			break
		}
	}
	return nil
}

func (f *fakeSource) CreateUser(ctx context.Context, user models.UserAccount) (models.UserAccount, string, error) {
	f.createCalls++
	if f.failCreate {
		return models.UserAccount{}, "", errSourceDown
	}
	user.ID = "srv-" + user.ID
	f.users = append(f.users, user)
	return user, "temp-pass-123", nil
}

func (f *fakeSource) UpdateUser(ctx context.Context, user models.UserAccount) (models.UserAccount, error) {
	f.updateCalls++
	if f.failUpdate {
		return models.UserAccount{}, errSourceDown
	}
	for i, u := range f.users {
		if u.ID == user.ID {
			f.users[i] = user
		}
	}
	return user, nil
}

func (f *fakeSource) DeleteUser(ctx context.Context, id string) error {
	f.deleteCalls++
	if f.failDelete {
		return errSourceDown
	}
	for i, u := range f.users {
		if u.ID == id {
			f.users = append(f.users[:i], f.users[i+1:]...)
			break
		}
	}
	return nil
}

// fakeRecorder captures audit calls.
type fakeRecorder struct {
	actions []string
}

func (f *fakeRecorder) Record(ctx context.Context, action, entity, id string) {
	f.actions = append(f.actions, action)
}
