package store

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/AlexanderBarlow/catering-any/internal/models"
)

// ItemForm carries catalog item input as it arrives from a form. The
// numeric fields are parsed permissively before validation.
type ItemForm struct {
	Name     string
	Category string
	Active   bool
	Price    string
	Cost     string
	QtySold  string
}

// UserForm carries user directory input as it arrives from a form.
type UserForm struct {
	Name  string
	Email string
	Role  string
}

var (
	amountStrip = regexp.MustCompile(`[^0-9.\-]`)
	emailShape  = regexp.MustCompile(`\S+@\S+\.\S+`)
)

// ParseAmount strips non-numeric characters ("$1,299.50" -> 1299.5)
// and falls back to 0 when nothing parseable remains.
func ParseAmount(s string) float64 {
	cleaned := amountStrip.ReplaceAllString(s, "")
	n, err := strconv.ParseFloat(cleaned, 64)
	if err != nil || math.IsNaN(n) || math.IsInf(n, 0) {
		return 0
	}
	return n
}

// ParseQuantity parses like ParseAmount then floors to a non-negative
// integer.
func ParseQuantity(s string) int {
	n := math.Floor(ParseAmount(s))
	if n < 0 {
		return 0
	}
	return int(n)
}

// parseItemForm turns a form into a candidate item. Validation runs
// separately; this only trims and parses.
func parseItemForm(form ItemForm) models.CatalogItem {
	category := form.Category
	if !validCategory(category) {
		category = models.CategoryOther
	}
	return models.CatalogItem{
		Name:     strings.TrimSpace(form.Name),
		Category: category,
		Active:   form.Active,
		Price:    ParseAmount(form.Price),
		Cost:     ParseAmount(form.Cost),
		QtySold:  ParseQuantity(form.QtySold),
	}
}

// validateItem enforces the catalog write rules against an already
// parsed candidate. excludeID skips the row being edited in the
// duplicate-name check.
func validateItem(existing []models.CatalogItem, candidate models.CatalogItem, excludeID string) error {
	if candidate.Name == "" {
		return validationErrf("Name is required")
	}
	if candidate.Price <= 0 {
		return validationErrf("Price must be greater than $0.00")
	}
	if candidate.Cost < 0 {
		return validationErrf("Cost cannot be negative")
	}
	lowered := strings.ToLower(candidate.Name)
	for _, it := range existing {
		if it.ID != excludeID && strings.ToLower(it.Name) == lowered {
			return validationErrf("An item named %q already exists", it.Name)
		}
	}
	return nil
}

// validateUser enforces the directory write rules.
func validateUser(existing []models.UserAccount, form UserForm) error {
	if strings.TrimSpace(form.Name) == "" {
		return validationErrf("Name is required")
	}
	email := strings.TrimSpace(form.Email)
	if email == "" {
		return validationErrf("Email is required")
	}
	if !emailShape.MatchString(email) {
		return validationErrf("Enter a valid email address")
	}
	lowered := strings.ToLower(email)
	for _, u := range existing {
		if strings.ToLower(u.Email) == lowered {
			return validationErrf("A user with email %s already exists", u.Email)
		}
	}
	switch form.Role {
	case models.RoleAdmin, models.RoleManager, models.RoleStaff:
	default:
		return validationErrf("Role must be ADMIN, MANAGER or STAFF")
	}
	return nil
}

func validCategory(category string) bool {
	for _, c := range models.ItemCategories {
		if c == category {
			return true
		}
	}
	return false
}

func validNoteTag(tag string) bool {
	for _, t := range models.NoteTags {
		if t == tag {
			return true
		}
	}
	return false
}
