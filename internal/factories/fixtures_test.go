package factories

import (
	"strings"
	"testing"

	"github.com/AlexanderBarlow/catering-any/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestItemsUniqueNamesAndValidRows(t *testing.T) {
	items := New(42).Items(20)
	require.Len(t, items, 20)

	seen := make(map[string]bool)
	for _, it := range items {
		assert.False(t, seen[strings.ToLower(it.Name)], "duplicate name %q", it.Name)
		seen[strings.ToLower(it.Name)] = true
		assert.NotEmpty(t, it.ID)
		assert.Greater(t, it.Price, 0.0)
		assert.GreaterOrEqual(t, it.Cost, 0.0)
		assert.GreaterOrEqual(t, it.QtySold, 0)
		assert.Contains(t, models.ItemCategories, it.Category)
	}
}

func TestItemsCappedAtPoolSize(t *testing.T) {
	items := New(1).Items(10_000)
	assert.LessOrEqual(t, len(items), 40)
}

func TestTicketsValidRows(t *testing.T) {
	tickets := New(7).Tickets(200)
	require.Len(t, tickets, 200)

	completed := 0
	for _, tk := range tickets {
		assert.GreaterOrEqual(t, tk.PromisedMins, 10)
		assert.LessOrEqual(t, tk.PromisedMins, 30)
		switch tk.Status {
		case models.TicketStatusCompleted:
			completed++
			assert.Greater(t, tk.DurationMins, 0)
		case models.TicketStatusCancelled:
			assert.Zero(t, tk.Revenue)
		}
	}
	// The weighting keeps completed tickets the majority outcome.
	assert.Greater(t, completed, 80)
}

func TestUsersFirstIsProtectedAdmin(t *testing.T) {
	users := New(3).Users(25)
	require.Len(t, users, 25)

	assert.Equal(t, models.RoleAdmin, users[0].Role)
	assert.True(t, users[0].Active)
	assert.Equal(t, "Site Admin", users[0].Name)

	emails := make(map[string]bool)
	for _, u := range users {
		assert.False(t, emails[u.Email], "duplicate email %q", u.Email)
		emails[u.Email] = true
		assert.Contains(t, u.Email, "@")
	}
}

func TestSameSeedSameData(t *testing.T) {
	a := New(99).Tickets(50)
	b := New(99).Tickets(50)
	require.Len(t, b, 50)
	for i := range a {
		assert.Equal(t, a[i].Status, b[i].Status)
		assert.Equal(t, a[i].PromisedMins, b[i].PromisedMins)
		assert.Equal(t, a[i].Revenue, b[i].Revenue)
	}
}

func TestTempPasswordNotEmpty(t *testing.T) {
	assert.NotEmpty(t, New(5).TempPassword())
}
