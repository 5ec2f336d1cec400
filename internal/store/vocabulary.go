package store

import (
	"context"

	"github.com/yamato-dev/kotoba-api/internal/domain"
)

// VocabularyStore defines the interface for vocabulary data persistence.
// Vocabulary IDs are assigned sequentially by the database, so Create
// fills in the entry's ID and timestamps on success.
type VocabularyStore interface {
	// Create saves a new vocabulary entry and populates its ID and
	// timestamps from the database.
	Create(ctx context.Context, entry *domain.Vocabulary) error

	// GetByID retrieves a vocabulary entry by its sequential ID.
	// Returns ErrVocabularyNotFound if the entry does not exist.
	GetByID(ctx context.Context, id int) (*domain.Vocabulary, error)

	// List returns all vocabulary entries ordered by creation time,
	// newest first. An empty table yields an empty slice, never an error.
	List(ctx context.Context) ([]domain.Vocabulary, error)

	// GetRandom returns a single randomly chosen entry, for practice.
	// Returns ErrVocabularyNotFound if the table is empty.
	GetRandom(ctx context.Context) (*domain.Vocabulary, error)

	// Update rewrites an existing entry's words and examples and
	// refreshes updated_at. Returns ErrVocabularyNotFound if the entry
	// does not exist.
	Update(ctx context.Context, entry *domain.Vocabulary) error

	// Delete removes a vocabulary entry by its ID.
	// Returns ErrVocabularyNotFound if the entry does not exist.
	Delete(ctx context.Context, id int) error

	// Count reports the number of stored entries. Used by startup
	// seeding to keep the seed idempotent.
	Count(ctx context.Context) (int64, error)
}
