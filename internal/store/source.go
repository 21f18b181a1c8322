package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/AlexanderBarlow/catering-any/internal/models"
)

// Source is the data-source capability the stores mutate against. One
// implementation is selected by configuration at startup: generated
// fixtures, the live REST API, or a read-only reporting replica.
type Source interface {
	Tickets(ctx context.Context) ([]models.Ticket, error)
	Items(ctx context.Context) ([]models.CatalogItem, error)
	Users(ctx context.Context) ([]models.UserAccount, error)

	CreateItem(ctx context.Context, item models.CatalogItem) (models.CatalogItem, error)
	UpdateItem(ctx context.Context, item models.CatalogItem) (models.CatalogItem, error)
	DeleteItem(ctx context.Context, id string) error

	// CreateUser returns the created account plus the one-time temporary
	// password the server assigned, when the source issues one.
	CreateUser(ctx context.Context, user models.UserAccount) (models.UserAccount, string, error)
	UpdateUser(ctx context.Context, user models.UserAccount) (models.UserAccount, error)
	DeleteUser(ctx context.Context, id string) error
}

// Recorder receives a notification after every successful mutation.
// The audit package provides a Kafka-backed implementation.
type Recorder interface {
	Record(ctx context.Context, action, entity, id string)
}

var (
	// ErrAdminProtected rejects disable/remove on ADMIN accounts. The
	// check runs locally, before any remote call is attempted.
	ErrAdminProtected = errors.New("admin accounts cannot be disabled or removed")

	// ErrMutationInFlight rejects a second mutation on an identifier
	// that already has one running.
	ErrMutationInFlight = errors.New("another change to this row is still saving")

	// ErrReadOnly is returned by sources that cannot accept writes.
	ErrReadOnly = errors.New("data source is read-only")

	// ErrNotFound is returned when a mutation targets an unknown row.
	ErrNotFound = errors.New("no such entry")
)

// ValidationError carries a user-facing message for input rejected
// before any mutation or remote call.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// IsValidation reports whether err is a validation rejection.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

func validationErrf(format string, args ...interface{}) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}
