package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticTokens string

func (s staticTokens) Token() string { return string(s) }

func TestClientSendsBearerToken(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, staticTokens("tok-123"))
	require.NoError(t, c.Get(context.Background(), "/anything", nil))
	assert.Equal(t, "Bearer tok-123", gotAuth)
}

func TestClientOmitsEmptyToken(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, staticTokens(""))
	require.NoError(t, c.Get(context.Background(), "/anything", nil))
	assert.Empty(t, gotAuth)
}

func TestClientErrorMessages(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantMsg string
	}{
		{"error field", http.StatusBadRequest, `{"error":"Name is required"}`, "Name is required"},
		{"message field", http.StatusConflict, `{"message":"duplicate"}`, "duplicate"},
		{"error wins over message", http.StatusBadRequest, `{"error":"a","message":"b"}`, "a"},
		{"unparseable body", http.StatusNotFound, `<html>nope</html>`, "Request failed (404)"},
		{"empty body", http.StatusInternalServerError, ``, "Request failed (500)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			c := NewClient(srv.URL, nil)
			err := c.Get(context.Background(), "/x", nil)
			require.Error(t, err)

			var apiErr *Error
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, tt.status, apiErr.Status)
			assert.Equal(t, tt.wantMsg, apiErr.Message)
		})
	}
}

func TestClientDecodesResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":[{"id":"1"},{"id":"2"}]}`))
	}))
	defer srv.Close()

	var out struct {
		Data []struct {
			ID string `json:"id"`
		} `json:"data"`
	}
	c := NewClient(srv.URL, nil)
	require.NoError(t, c.Get(context.Background(), "/items", &out))
	require.Len(t, out.Data, 2)
	assert.Equal(t, "2", out.Data[1].ID)
}

func TestLoginUsesFreshTokenForVerification(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/auth/login", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		var creds map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&creds))
		assert.Equal(t, "admin@example.com", creds["email"])
		json.NewEncoder(w).Encode(map[string]interface{}{
			"accessToken":  "fresh-token",
			"refreshToken": "refresh",
			"user":         map[string]string{"id": "u1"},
		})
	})
	mux.HandleFunc("/auth/me", func(w http.ResponseWriter, r *http.Request) {
		// Login happens before any session exists, so the just-issued
		// token must be used here, not the stored one.
		assert.Equal(t, "Bearer fresh-token", r.Header.Get("Authorization"))
		json.NewEncoder(w).Encode(map[string]interface{}{
			"user": map[string]string{"id": "u1", "email": "admin@example.com", "role": "ADMIN"},
		})
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	c := NewClient(srv.URL, staticTokens("stale-token"))
	session, err := c.Login(context.Background(), "admin@example.com", "pw")
	require.NoError(t, err)
	assert.Equal(t, "fresh-token", session.Token)
	assert.Equal(t, "admin@example.com", session.User.Email)
	assert.Equal(t, "ADMIN", session.User.Role)
}

func TestLoginSurfacesBadCredentials(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":"Invalid email or password"}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, nil)
	_, err := c.Login(context.Background(), "x@example.com", "wrong")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Invalid email or password")
}

func TestChangePassword(t *testing.T) {
	var gotBody map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPut, r.Method)
		require.Equal(t, "/auth/password", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, staticTokens("tok"))
	require.NoError(t, c.ChangePassword(context.Background(), "old", "new"))
	assert.Equal(t, "old", gotBody["currentPassword"])
	assert.Equal(t, "new", gotBody["newPassword"])
}
