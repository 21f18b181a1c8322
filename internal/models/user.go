package models

import "time"

type UserAccount struct {
	ID        string    `json:"id"`
	Name      string    `json:"name,omitempty"`
	Email     string    `json:"email"` // unique, case-insensitive
	Role      string    `json:"role"`  // ADMIN, MANAGER, STAFF
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
}

// RolePriority orders roles for directory display: admins first,
// then managers, then staff. Unknown roles sort last.
func RolePriority(role string) int {
	switch role {
	case RoleAdmin:
		return 0
	case RoleManager:
		return 1
	case RoleStaff:
		return 2
	}
	return 3
}
