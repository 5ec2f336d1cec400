package postgres

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"github.com/yamato-dev/kotoba-api/internal/domain"
	"github.com/yamato-dev/kotoba-api/internal/platform/logger"
	"github.com/yamato-dev/kotoba-api/internal/store"
)

// VocabularyStore implements the store.VocabularyStore interface using a
// PostgreSQL database as the storage backend. Vocabulary rows use a
// SERIAL primary key and database-side timestamps, so inserts read the
// generated values back with RETURNING.
type VocabularyStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewVocabularyStore creates a new PostgreSQL implementation of the
// VocabularyStore interface. If logger is nil, the default logger is
// used.
func NewVocabularyStore(db store.DBTX, log *slog.Logger) *VocabularyStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}

	return &VocabularyStore{
		db:     db,
		logger: log.With(slog.String("component", "vocabulary_store")),
	}
}

// Ensure VocabularyStore implements store.VocabularyStore interface
var _ store.VocabularyStore = (*VocabularyStore)(nil)

const vocabularyColumns = "id, en_word, ja_word, en_example, ja_example, created_at, updated_at"

// Create implements store.VocabularyStore.Create
func (s *VocabularyStore) Create(ctx context.Context, entry *domain.Vocabulary) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := entry.Validate(); err != nil {
		log.Warn("vocabulary validation failed during create",
			slog.String("error", err.Error()))
		return err
	}

	query := `
		INSERT INTO vocabulary (en_word, ja_word, en_example, ja_example, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		RETURNING ` + vocabularyColumns

	err := s.db.QueryRowContext(
		ctx,
		query,
		entry.EnWord,
		entry.JaWord,
		entry.EnExample,
		entry.JaExample,
	).Scan(
		&entry.ID,
		&entry.EnWord,
		&entry.JaWord,
		&entry.EnExample,
		&entry.JaExample,
		&entry.CreatedAt,
		&entry.UpdatedAt,
	)

	if err != nil {
		log.Error("failed to create vocabulary entry",
			slog.String("error", err.Error()),
			slog.String("en_word", entry.EnWord))
		return MapError(err)
	}

	log.Info("vocabulary entry created successfully",
		slog.Int("vocabulary_id", entry.ID),
		slog.String("en_word", entry.EnWord))
	return nil
}

// GetByID implements store.VocabularyStore.GetByID
func (s *VocabularyStore) GetByID(ctx context.Context, id int) (*domain.Vocabulary, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `SELECT ` + vocabularyColumns + ` FROM vocabulary WHERE id = $1`

	entry, err := scanVocabulary(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("vocabulary entry not found", slog.Int("vocabulary_id", id))
			return nil, store.ErrVocabularyNotFound
		}
		log.Error("failed to get vocabulary entry by ID",
			slog.String("error", err.Error()),
			slog.Int("vocabulary_id", id))
		return nil, MapError(err)
	}

	return entry, nil
}

// List implements store.VocabularyStore.List
func (s *VocabularyStore) List(ctx context.Context) ([]domain.Vocabulary, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `SELECT ` + vocabularyColumns + ` FROM vocabulary ORDER BY created_at DESC`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		log.Error("failed to list vocabulary entries", slog.String("error", err.Error()))
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	entries := make([]domain.Vocabulary, 0)
	for rows.Next() {
		var entry domain.Vocabulary
		if err := rows.Scan(
			&entry.ID,
			&entry.EnWord,
			&entry.JaWord,
			&entry.EnExample,
			&entry.JaExample,
			&entry.CreatedAt,
			&entry.UpdatedAt,
		); err != nil {
			log.Error("failed to scan vocabulary row", slog.String("error", err.Error()))
			return nil, MapError(err)
		}
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, MapError(err)
	}

	return entries, nil
}

// GetRandom implements store.VocabularyStore.GetRandom
func (s *VocabularyStore) GetRandom(ctx context.Context) (*domain.Vocabulary, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `SELECT ` + vocabularyColumns + ` FROM vocabulary ORDER BY RANDOM() LIMIT 1`

	entry, err := scanVocabulary(s.db.QueryRowContext(ctx, query))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("no vocabulary entries available for random pick")
			return nil, store.ErrVocabularyNotFound
		}
		log.Error("failed to get random vocabulary entry",
			slog.String("error", err.Error()))
		return nil, MapError(err)
	}

	return entry, nil
}

// Update implements store.VocabularyStore.Update
func (s *VocabularyStore) Update(ctx context.Context, entry *domain.Vocabulary) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := entry.Validate(); err != nil {
		log.Warn("vocabulary validation failed during update",
			slog.String("error", err.Error()),
			slog.Int("vocabulary_id", entry.ID))
		return err
	}

	query := `
		UPDATE vocabulary
		SET en_word = $1, ja_word = $2, en_example = $3, ja_example = $4, updated_at = NOW()
		WHERE id = $5
		RETURNING updated_at
	`
	err := s.db.QueryRowContext(
		ctx,
		query,
		entry.EnWord,
		entry.JaWord,
		entry.EnExample,
		entry.JaExample,
		entry.ID,
	).Scan(&entry.UpdatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return store.ErrVocabularyNotFound
		}
		log.Error("failed to update vocabulary entry",
			slog.String("error", err.Error()),
			slog.Int("vocabulary_id", entry.ID))
		return MapError(err)
	}

	log.Info("vocabulary entry updated successfully",
		slog.Int("vocabulary_id", entry.ID))
	return nil
}

// Delete implements store.VocabularyStore.Delete
func (s *VocabularyStore) Delete(ctx context.Context, id int) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `DELETE FROM vocabulary WHERE id = $1`

	result, err := s.db.ExecContext(ctx, query, id)
	if err != nil {
		log.Error("failed to delete vocabulary entry",
			slog.String("error", err.Error()),
			slog.Int("vocabulary_id", id))
		return MapError(err)
	}

	if err := CheckRowsAffected(result, store.ErrVocabularyNotFound); err != nil {
		return err
	}

	log.Info("vocabulary entry deleted successfully",
		slog.Int("vocabulary_id", id))
	return nil
}

// Count implements store.VocabularyStore.Count
func (s *VocabularyStore) Count(ctx context.Context) (int64, error) {
	var count int64
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM vocabulary`).Scan(&count)
	if err != nil {
		return 0, MapError(err)
	}
	return count, nil
}

// scanVocabulary reads a single vocabulary row.
func scanVocabulary(row *sql.Row) (*domain.Vocabulary, error) {
	var entry domain.Vocabulary
	err := row.Scan(
		&entry.ID,
		&entry.EnWord,
		&entry.JaWord,
		&entry.EnExample,
		&entry.JaExample,
		&entry.CreatedAt,
		&entry.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &entry, nil
}
