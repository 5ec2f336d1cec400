package postgres

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yamato-dev/kotoba-api/internal/domain"
	"github.com/yamato-dev/kotoba-api/internal/store"
)

var postColumns = []string{"id", "user_id", "title", "content", "created_at", "updated_at"}

func newPostStoreWithMock(t *testing.T) (*PostStore, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err, "failed to create sqlmock")
	t.Cleanup(func() { _ = db.Close() })

	quiet := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewPostStore(db, quiet), mock
}

func mustNewPost(t *testing.T, userID uuid.UUID, title string, content *string) *domain.Post {
	t.Helper()

	post, err := domain.NewPost(userID, title, content)
	require.NoError(t, err)
	return post
}

func TestPostStoreCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		postStore, mock := newPostStoreWithMock(t)
		content := "Notes from today's lesson."
		post := mustNewPost(t, uuid.New(), "First lesson", &content)

		mock.ExpectExec("INSERT INTO posts").
			WithArgs(post.ID, post.UserID, post.Title, post.Content, post.CreatedAt, post.UpdatedAt).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := postStore.Create(ctx, post)

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing_user_reference", func(t *testing.T) {
		postStore, mock := newPostStoreWithMock(t)
		post := mustNewPost(t, uuid.New(), "Orphan post", nil)

		mock.ExpectExec("INSERT INTO posts").
			WithArgs(post.ID, post.UserID, post.Title, post.Content, post.CreatedAt, post.UpdatedAt).
			WillReturnError(&pgconn.PgError{
				Code:           foreignKeyViolationCode,
				ConstraintName: "posts_user_id_fkey",
			})

		err := postStore.Create(ctx, post)

		require.Error(t, err)
		assert.ErrorIs(t, err, store.ErrUserReferenceMissing)
		assert.ErrorIs(t, err, store.ErrInvalidEntity)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestPostStoreGetByID(t *testing.T) {
	ctx := context.Background()

	t.Run("found_with_null_content", func(t *testing.T) {
		postStore, mock := newPostStoreWithMock(t)
		id := uuid.New()
		userID := uuid.New()
		now := time.Now().UTC()

		mock.ExpectQuery("SELECT id, user_id, title, content, created_at, updated_at").
			WithArgs(id).
			WillReturnRows(sqlmock.NewRows(postColumns).
				AddRow(id, userID, "First lesson", nil, now, now))

		post, err := postStore.GetByID(ctx, id)

		require.NoError(t, err)
		assert.Equal(t, id, post.ID)
		assert.Equal(t, userID, post.UserID)
		assert.Equal(t, "First lesson", post.Title)
		assert.Nil(t, post.Content)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not_found", func(t *testing.T) {
		postStore, mock := newPostStoreWithMock(t)
		id := uuid.New()

		mock.ExpectQuery("SELECT id, user_id, title, content, created_at, updated_at").
			WithArgs(id).
			WillReturnRows(sqlmock.NewRows(postColumns))

		post, err := postStore.GetByID(ctx, id)

		assert.Nil(t, post)
		require.Error(t, err)
		assert.ErrorIs(t, err, store.ErrPostNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestPostStoreList(t *testing.T) {
	ctx := context.Background()

	t.Run("all_posts", func(t *testing.T) {
		postStore, mock := newPostStoreWithMock(t)
		now := time.Now().UTC()
		firstID := uuid.New()
		secondID := uuid.New()

		mock.ExpectQuery("SELECT id, user_id, title, content, created_at, updated_at").
			WillReturnRows(sqlmock.NewRows(postColumns).
				AddRow(firstID, uuid.New(), "Newer", "body", now, now).
				AddRow(secondID, uuid.New(), "Older", nil, now.Add(-time.Hour), now.Add(-time.Hour)))

		posts, err := postStore.List(ctx, nil)

		require.NoError(t, err)
		require.Len(t, posts, 2)
		assert.Equal(t, firstID, posts[0].ID)
		assert.Equal(t, secondID, posts[1].ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("filtered_by_user", func(t *testing.T) {
		postStore, mock := newPostStoreWithMock(t)
		userID := uuid.New()
		now := time.Now().UTC()

		mock.ExpectQuery("SELECT id, user_id, title, content, created_at, updated_at").
			WithArgs(userID).
			WillReturnRows(sqlmock.NewRows(postColumns).
				AddRow(uuid.New(), userID, "Mine", nil, now, now))

		posts, err := postStore.List(ctx, &userID)

		require.NoError(t, err)
		require.Len(t, posts, 1)
		assert.Equal(t, userID, posts[0].UserID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("empty_result", func(t *testing.T) {
		postStore, mock := newPostStoreWithMock(t)

		mock.ExpectQuery("SELECT id, user_id, title, content, created_at, updated_at").
			WillReturnRows(sqlmock.NewRows(postColumns))

		posts, err := postStore.List(ctx, nil)

		require.NoError(t, err)
		assert.NotNil(t, posts)
		assert.Empty(t, posts)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestPostStoreUpdate(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		postStore, mock := newPostStoreWithMock(t)
		post := mustNewPost(t, uuid.New(), "Revised title", nil)

		mock.ExpectExec("UPDATE posts").
			WithArgs(post.Title, post.Content, sqlmock.AnyArg(), post.ID).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := postStore.Update(ctx, post)

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not_found", func(t *testing.T) {
		postStore, mock := newPostStoreWithMock(t)
		post := mustNewPost(t, uuid.New(), "Revised title", nil)

		mock.ExpectExec("UPDATE posts").
			WithArgs(post.Title, post.Content, sqlmock.AnyArg(), post.ID).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := postStore.Update(ctx, post)

		require.Error(t, err)
		assert.ErrorIs(t, err, store.ErrPostNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestPostStoreDelete(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		postStore, mock := newPostStoreWithMock(t)
		id := uuid.New()

		mock.ExpectExec("DELETE FROM posts").
			WithArgs(id).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := postStore.Delete(ctx, id)

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not_found", func(t *testing.T) {
		postStore, mock := newPostStoreWithMock(t)
		id := uuid.New()

		mock.ExpectExec("DELETE FROM posts").
			WithArgs(id).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := postStore.Delete(ctx, id)

		require.Error(t, err)
		assert.ErrorIs(t, err, store.ErrPostNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
