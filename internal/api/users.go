package api

import (
	"context"

	"github.com/AlexanderBarlow/catering-any/internal/models"
)

type userListResponse struct {
	Data []models.UserAccount `json:"data"`
}

type userResponse struct {
	Data         models.UserAccount `json:"data"`
	TempPassword string             `json:"tempPassword,omitempty"`
}

// ListUsers fetches the full user directory.
func (c *Client) ListUsers(ctx context.Context) ([]models.UserAccount, error) {
	var resp userListResponse
	if err := c.Get(ctx, "/users", &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

// CreateUser creates an account. The server assigns the identifier and
// returns a temporary password exactly once.
func (c *Client) CreateUser(ctx context.Context, name, email, role string) (models.UserAccount, string, error) {
	var resp userResponse
	err := c.Post(ctx, "/users", map[string]string{
		"name":  name,
		"email": email,
		"role":  role,
	}, &resp)
	if err != nil {
		return models.UserAccount{}, "", err
	}
	return resp.Data, resp.TempPassword, nil
}

// UpdateUser toggles the account's active flag.
func (c *Client) UpdateUser(ctx context.Context, id string, active bool) (models.UserAccount, error) {
	var resp userResponse
	err := c.Put(ctx, "/users/"+id, map[string]bool{
		"active": active,
	}, &resp)
	if err != nil {
		return models.UserAccount{}, err
	}
	return resp.Data, nil
}

// DeleteUser removes an account.
func (c *Client) DeleteUser(ctx context.Context, id string) error {
	return c.Delete(ctx, "/users/"+id)
}
