package auth

import "github.com/AlexanderBarlow/catering-any/internal/models"

// Role gating lives here and only here, so every screen enforces the
// same semantics. This is UI gating, not a security boundary; the
// server remains the authority.

// CanManageUsers reports whether the role may see and mutate the user
// directory.
func CanManageUsers(role string) bool {
	return role == models.RoleAdmin
}

// CanEditCatalog reports whether the role may add, edit or remove
// catalog items.
func CanEditCatalog(role string) bool {
	return role == models.RoleAdmin || role == models.RoleManager
}

// CanViewDashboard reports whether the role may see the KPI dashboard
// and operations screens.
func CanViewDashboard(role string) bool {
	switch role {
	case models.RoleAdmin, models.RoleManager, models.RoleStaff:
		return true
	}
	return false
}
