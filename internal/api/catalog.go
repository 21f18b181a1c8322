package api

import (
	"context"

	"github.com/AlexanderBarlow/catering-any/internal/models"
)

type itemListResponse struct {
	Data []models.CatalogItem `json:"data"`
}

type itemResponse struct {
	Data models.CatalogItem `json:"data"`
}

type ticketListResponse struct {
	Data []models.Ticket `json:"data"`
}

// ListItems fetches the full catalog.
func (c *Client) ListItems(ctx context.Context) ([]models.CatalogItem, error) {
	var resp itemListResponse
	if err := c.Get(ctx, "/items", &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

// CreateItem creates a catalog item; the server assigns the identifier.
func (c *Client) CreateItem(ctx context.Context, item models.CatalogItem) (models.CatalogItem, error) {
	var resp itemResponse
	if err := c.Post(ctx, "/items", item, &resp); err != nil {
		return models.CatalogItem{}, err
	}
	return resp.Data, nil
}

// UpdateItem edits a catalog item in place, identifier preserved.
func (c *Client) UpdateItem(ctx context.Context, item models.CatalogItem) (models.CatalogItem, error) {
	var resp itemResponse
	if err := c.Put(ctx, "/items/"+item.ID, item, &resp); err != nil {
		return models.CatalogItem{}, err
	}
	return resp.Data, nil
}

// DeleteItem removes a catalog item.
func (c *Client) DeleteItem(ctx context.Context, id string) error {
	return c.Delete(ctx, "/items/"+id)
}

// ListTickets fetches the operations ticket list.
func (c *Client) ListTickets(ctx context.Context) ([]models.Ticket, error) {
	var resp ticketListResponse
	if err := c.Get(ctx, "/tickets", &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}
