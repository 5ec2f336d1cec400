package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/yamato-dev/kotoba-api/internal/domain"
)

// PostStore defines the interface for post data persistence.
type PostStore interface {
	// Create saves a new post to the store.
	// Returns ErrUserReferenceMissing if the owning user does not exist.
	Create(ctx context.Context, post *domain.Post) error

	// GetByID retrieves a post by its unique ID.
	// Returns ErrPostNotFound if the post does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Post, error)

	// List returns posts ordered by creation time, newest first. When
	// userID is non-nil only that user's posts are returned. An unknown
	// user yields an empty slice, not an error.
	List(ctx context.Context, userID *uuid.UUID) ([]domain.Post, error)

	// Update rewrites an existing post's title and content and refreshes
	// updated_at. Returns ErrPostNotFound if the post does not exist.
	Update(ctx context.Context, post *domain.Post) error

	// Delete removes a post from the store by its ID.
	// Returns ErrPostNotFound if the post does not exist.
	Delete(ctx context.Context, id uuid.UUID) error
}
