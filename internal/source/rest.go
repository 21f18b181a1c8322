package source

import (
	"context"

	"github.com/AlexanderBarlow/catering-any/internal/api"
	"github.com/AlexanderBarlow/catering-any/internal/models"
	"github.com/AlexanderBarlow/catering-any/internal/store"
)

// REST adapts the API client to the Source interface: the "live"
// variant of the app.
type REST struct {
	client *api.Client
}

var _ store.Source = (*REST)(nil)

func NewREST(client *api.Client) *REST {
	return &REST{client: client}
}

func (r *REST) Tickets(ctx context.Context) ([]models.Ticket, error) {
	return r.client.ListTickets(ctx)
}

func (r *REST) Items(ctx context.Context) ([]models.CatalogItem, error) {
	return r.client.ListItems(ctx)
}

func (r *REST) Users(ctx context.Context) ([]models.UserAccount, error) {
	return r.client.ListUsers(ctx)
}

func (r *REST) CreateItem(ctx context.Context, item models.CatalogItem) (models.CatalogItem, error) {
	return r.client.CreateItem(ctx, item)
}

func (r *REST) UpdateItem(ctx context.Context, item models.CatalogItem) (models.CatalogItem, error) {
	return r.client.UpdateItem(ctx, item)
}

func (r *REST) DeleteItem(ctx context.Context, id string) error {
	return r.client.DeleteItem(ctx, id)
}

func (r *REST) CreateUser(ctx context.Context, user models.UserAccount) (models.UserAccount, string, error) {
	return r.client.CreateUser(ctx, user.Name, user.Email, user.Role)
}

func (r *REST) UpdateUser(ctx context.Context, user models.UserAccount) (models.UserAccount, error) {
	return r.client.UpdateUser(ctx, user.ID, user.Active)
}

func (r *REST) DeleteUser(ctx context.Context, id string) error {
	return r.client.DeleteUser(ctx, id)
}
