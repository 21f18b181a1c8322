package analytics

import (
	"sort"
	"strings"

	"github.com/AlexanderBarlow/catering-any/internal/models"
)

// RoleAll is the wildcard role filter value.
const RoleAll = "All"

// UserFilter is the compound filter state for the user directory.
type UserFilter struct {
	Search     string
	Role       string // exact role, or RoleAll
	ActiveOnly bool
}

// FilterUsers applies the filter conjunction (active flag, exact role,
// case-insensitive substring on name OR email) and sorts by role
// priority ascending then creation time descending. The input slice is
// never mutated.
func FilterUsers(users []models.UserAccount, filter UserFilter) []models.UserAccount {
	search := strings.ToLower(strings.TrimSpace(filter.Search))

	filtered := make([]models.UserAccount, 0, len(users))
	for _, u := range users {
		if filter.ActiveOnly && !u.Active {
			continue
		}
		if filter.Role != "" && filter.Role != RoleAll && u.Role != filter.Role {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(u.Name), search) &&
			!strings.Contains(strings.ToLower(u.Email), search) {
			continue
		}
		filtered = append(filtered, u)
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		pi, pj := models.RolePriority(filtered[i].Role), models.RolePriority(filtered[j].Role)
		if pi != pj {
			return pi < pj
		}
		return filtered[i].CreatedAt.After(filtered[j].CreatedAt)
	})
	return filtered
}
