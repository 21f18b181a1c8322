package analytics

import (
	"testing"
	"time"

	"github.com/AlexanderBarlow/catering-any/internal/models"
	"github.com/stretchr/testify/assert"
)

func directory() []models.UserAccount {
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	return []models.UserAccount{
		{ID: "s1", Name: "Dana Line", Email: "dana@example.com", Role: models.RoleStaff, Active: true, CreatedAt: base.AddDate(0, 0, 5)},
		{ID: "m1", Name: "Pat Shift", Email: "pat@example.com", Role: models.RoleManager, Active: true, CreatedAt: base.AddDate(0, 0, 1)},
		{ID: "a1", Name: "Site Admin", Email: "admin@example.com", Role: models.RoleAdmin, Active: true, CreatedAt: base},
		{ID: "s2", Name: "Lee Grill", Email: "lee@example.com", Role: models.RoleStaff, Active: false, CreatedAt: base.AddDate(0, 0, 9)},
		{ID: "m2", Name: "Sam Front", Email: "sam@example.com", Role: models.RoleManager, Active: true, CreatedAt: base.AddDate(0, 0, 7)},
	}
}

func userIDs(users []models.UserAccount) []string {
	ids := make([]string, len(users))
	for i, u := range users {
		ids[i] = u.ID
	}
	return ids
}

func TestFilterUsersSortOrder(t *testing.T) {
	// Admins first, then managers newest-first, then staff newest-first.
	got := FilterUsers(directory(), UserFilter{Role: RoleAll})
	assert.Equal(t, []string{"a1", "m2", "m1", "s2", "s1"}, userIDs(got))
}

func TestFilterUsersPredicates(t *testing.T) {
	tests := []struct {
		name    string
		filter  UserFilter
		wantIDs []string
	}{
		{
			name:    "role exact",
			filter:  UserFilter{Role: models.RoleManager},
			wantIDs: []string{"m2", "m1"},
		},
		{
			name:    "active only",
			filter:  UserFilter{Role: RoleAll, ActiveOnly: true},
			wantIDs: []string{"a1", "m2", "m1", "s1"},
		},
		{
			name:    "search matches name",
			filter:  UserFilter{Role: RoleAll, Search: "grill"},
			wantIDs: []string{"s2"},
		},
		{
			name:    "search matches email",
			filter:  UserFilter{Role: RoleAll, Search: "PAT@"},
			wantIDs: []string{"m1"},
		},
		{
			name:    "conjunction of all three",
			filter:  UserFilter{Role: models.RoleStaff, Search: "example.com", ActiveOnly: true},
			wantIDs: []string{"s1"},
		},
		{
			name:    "empty role behaves like All",
			filter:  UserFilter{},
			wantIDs: []string{"a1", "m2", "m1", "s2", "s1"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterUsers(directory(), tt.filter)
			assert.Equal(t, tt.wantIDs, userIDs(got))
		})
	}
}

func TestFilterUsersDoesNotMutateInput(t *testing.T) {
	users := directory()
	FilterUsers(users, UserFilter{})
	assert.Equal(t, "s1", users[0].ID)
	assert.Equal(t, "a1", users[2].ID)
}
