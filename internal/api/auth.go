package api

import (
	"context"
	"fmt"

	"github.com/AlexanderBarlow/catering-any/internal/models"
)

type loginResponse struct {
	AccessToken  string             `json:"accessToken"`
	RefreshToken string             `json:"refreshToken"`
	User         models.SessionUser `json:"user"`
}

type meResponse struct {
	User models.SessionUser `json:"user"`
}

// Login signs in and verifies the account with /auth/me using the
// fresh access token, before the session is saved anywhere. The result
// is normalized to the app's Session shape.
func (c *Client) Login(ctx context.Context, email, password string) (models.Session, error) {
	var login loginResponse
	err := c.Post(ctx, "/auth/login", map[string]string{
		"email":    email,
		"password": password,
	}, &login)
	if err != nil {
		return models.Session{}, fmt.Errorf("login: %w", err)
	}

	var me meResponse
	if err := c.getWithToken(ctx, "/auth/me", login.AccessToken, &me); err != nil {
		return models.Session{}, fmt.Errorf("verifying account: %w", err)
	}

	return models.Session{Token: login.AccessToken, User: me.User}, nil
}

// Me fetches the signed-in account.
func (c *Client) Me(ctx context.Context) (models.SessionUser, error) {
	var me meResponse
	if err := c.Get(ctx, "/auth/me", &me); err != nil {
		return models.SessionUser{}, err
	}
	return me.User, nil
}

// UpdateMe saves profile edits and returns the authoritative account.
func (c *Client) UpdateMe(ctx context.Context, name, email string) (models.SessionUser, error) {
	var me meResponse
	err := c.Put(ctx, "/auth/me", map[string]string{
		"name":  name,
		"email": email,
	}, &me)
	if err != nil {
		return models.SessionUser{}, err
	}
	return me.User, nil
}

// ChangePassword rotates the account password. The server validates the
// current password; only success or failure comes back.
func (c *Client) ChangePassword(ctx context.Context, currentPassword, newPassword string) error {
	return c.Put(ctx, "/auth/password", map[string]string{
		"currentPassword": currentPassword,
		"newPassword":     newPassword,
	}, nil)
}
