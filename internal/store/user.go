package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/yamato-dev/kotoba-api/internal/domain"
)

// UserStore defines the interface for user data persistence.
type UserStore interface {
	// Create saves a new user to the store.
	// Returns ErrEmailExists if the email is already taken.
	// Returns validation errors from the domain User if data is invalid.
	Create(ctx context.Context, user *domain.User) error

	// GetByID retrieves a user by their unique ID.
	// Returns ErrUserNotFound if the user does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)

	// List returns all users ordered by creation time, newest first.
	// An empty store yields an empty slice, never an error.
	List(ctx context.Context) ([]domain.User, error)

	// Update rewrites an existing user's name and email and refreshes
	// updated_at. Returns ErrUserNotFound if the user does not exist and
	// ErrEmailExists if the new email is already taken by another user.
	Update(ctx context.Context, user *domain.User) error

	// Delete removes a user from the store by their ID. The storage
	// layer's referential action cascades the deletion to the user's
	// posts. Returns ErrUserNotFound if the user does not exist.
	Delete(ctx context.Context, id uuid.UUID) error
}
