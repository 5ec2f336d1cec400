package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/yamato-dev/kotoba-api/internal/domain"
	"github.com/yamato-dev/kotoba-api/internal/platform/logger"
	"github.com/yamato-dev/kotoba-api/internal/store"
)

// PostStore implements the store.PostStore interface using a PostgreSQL
// database as the storage backend.
type PostStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostStore creates a new PostgreSQL implementation of the PostStore
// interface. If logger is nil, the default logger is used.
func NewPostStore(db store.DBTX, log *slog.Logger) *PostStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}

	return &PostStore{
		db:     db,
		logger: log.With(slog.String("component", "post_store")),
	}
}

// Ensure PostStore implements store.PostStore interface
var _ store.PostStore = (*PostStore)(nil)

// Create implements store.PostStore.Create
// Returns store.ErrUserReferenceMissing if the owning user does not
// exist (foreign key violation on posts.user_id).
func (s *PostStore) Create(ctx context.Context, post *domain.Post) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := post.Validate(); err != nil {
		log.Warn("post validation failed during create",
			slog.String("error", err.Error()),
			slog.String("post_id", post.ID.String()))
		return err
	}

	query := `
		INSERT INTO posts (id, user_id, title, content, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := s.db.ExecContext(
		ctx,
		query,
		post.ID,
		post.UserID,
		post.Title,
		post.Content,
		post.CreatedAt,
		post.UpdatedAt,
	)

	if err != nil {
		if IsForeignKeyViolation(err) {
			log.Warn("foreign key violation during post creation",
				slog.String("post_id", post.ID.String()),
				slog.String("user_id", post.UserID.String()))
			return fmt.Errorf("%w: %v", store.ErrUserReferenceMissing, err)
		}

		log.Error("failed to create post",
			slog.String("error", err.Error()),
			slog.String("post_id", post.ID.String()))
		return MapError(err)
	}

	log.Info("post created successfully",
		slog.String("post_id", post.ID.String()),
		slog.String("user_id", post.UserID.String()))
	return nil
}

// GetByID implements store.PostStore.GetByID
func (s *PostStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Post, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, user_id, title, content, created_at, updated_at
		FROM posts
		WHERE id = $1
	`

	var post domain.Post
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&post.ID,
		&post.UserID,
		&post.Title,
		&post.Content,
		&post.CreatedAt,
		&post.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("post not found", slog.String("post_id", id.String()))
			return nil, store.ErrPostNotFound
		}
		log.Error("failed to get post by ID",
			slog.String("error", err.Error()),
			slog.String("post_id", id.String()))
		return nil, MapError(err)
	}

	return &post, nil
}

// List implements store.PostStore.List. A nil userID returns every
// post; otherwise only that user's posts.
func (s *PostStore) List(ctx context.Context, userID *uuid.UUID) ([]domain.Post, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var (
		rows *sql.Rows
		err  error
	)

	if userID != nil {
		query := `
			SELECT id, user_id, title, content, created_at, updated_at
			FROM posts
			WHERE user_id = $1
			ORDER BY created_at DESC
		`
		rows, err = s.db.QueryContext(ctx, query, *userID)
	} else {
		query := `
			SELECT id, user_id, title, content, created_at, updated_at
			FROM posts
			ORDER BY created_at DESC
		`
		rows, err = s.db.QueryContext(ctx, query)
	}

	if err != nil {
		log.Error("failed to list posts", slog.String("error", err.Error()))
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	posts := make([]domain.Post, 0)
	for rows.Next() {
		var post domain.Post
		if err := rows.Scan(
			&post.ID,
			&post.UserID,
			&post.Title,
			&post.Content,
			&post.CreatedAt,
			&post.UpdatedAt,
		); err != nil {
			log.Error("failed to scan post row", slog.String("error", err.Error()))
			return nil, MapError(err)
		}
		posts = append(posts, post)
	}

	if err := rows.Err(); err != nil {
		return nil, MapError(err)
	}

	return posts, nil
}

// Update implements store.PostStore.Update
func (s *PostStore) Update(ctx context.Context, post *domain.Post) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := post.Validate(); err != nil {
		log.Warn("post validation failed during update",
			slog.String("error", err.Error()),
			slog.String("post_id", post.ID.String()))
		return err
	}

	post.UpdatedAt = time.Now().UTC()

	query := `
		UPDATE posts
		SET title = $1, content = $2, updated_at = $3
		WHERE id = $4
	`
	result, err := s.db.ExecContext(
		ctx,
		query,
		post.Title,
		post.Content,
		post.UpdatedAt,
		post.ID,
	)

	if err != nil {
		log.Error("failed to update post",
			slog.String("error", err.Error()),
			slog.String("post_id", post.ID.String()))
		return MapError(err)
	}

	if err := CheckRowsAffected(result, store.ErrPostNotFound); err != nil {
		return err
	}

	log.Info("post updated successfully",
		slog.String("post_id", post.ID.String()))
	return nil
}

// Delete implements store.PostStore.Delete
func (s *PostStore) Delete(ctx context.Context, id uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `DELETE FROM posts WHERE id = $1`

	result, err := s.db.ExecContext(ctx, query, id)
	if err != nil {
		log.Error("failed to delete post",
			slog.String("error", err.Error()),
			slog.String("post_id", id.String()))
		return MapError(err)
	}

	if err := CheckRowsAffected(result, store.ErrPostNotFound); err != nil {
		return err
	}

	log.Info("post deleted successfully",
		slog.String("post_id", id.String()))
	return nil
}
