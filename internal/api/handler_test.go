package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/yamato-dev/kotoba-api/internal/api/shared"
	"github.com/yamato-dev/kotoba-api/internal/domain"
)

// Stub stores with function fields so each test wires up exactly the
// behavior it needs. A call with no function configured is a test bug.

type stubUserStore struct {
	createFn  func(ctx context.Context, user *domain.User) error
	getByIDFn func(ctx context.Context, id uuid.UUID) (*domain.User, error)
	listFn    func(ctx context.Context) ([]domain.User, error)
	updateFn  func(ctx context.Context, user *domain.User) error
	deleteFn  func(ctx context.Context, id uuid.UUID) error
}

func (s *stubUserStore) Create(ctx context.Context, user *domain.User) error {
	if s.createFn == nil {
		panic("unexpected call to UserStore.Create")
	}
	return s.createFn(ctx, user)
}

func (s *stubUserStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if s.getByIDFn == nil {
		panic("unexpected call to UserStore.GetByID")
	}
	return s.getByIDFn(ctx, id)
}

func (s *stubUserStore) List(ctx context.Context) ([]domain.User, error) {
	if s.listFn == nil {
		panic("unexpected call to UserStore.List")
	}
	return s.listFn(ctx)
}

func (s *stubUserStore) Update(ctx context.Context, user *domain.User) error {
	if s.updateFn == nil {
		panic("unexpected call to UserStore.Update")
	}
	return s.updateFn(ctx, user)
}

func (s *stubUserStore) Delete(ctx context.Context, id uuid.UUID) error {
	if s.deleteFn == nil {
		panic("unexpected call to UserStore.Delete")
	}
	return s.deleteFn(ctx, id)
}

type stubPostStore struct {
	createFn  func(ctx context.Context, post *domain.Post) error
	getByIDFn func(ctx context.Context, id uuid.UUID) (*domain.Post, error)
	listFn    func(ctx context.Context, userID *uuid.UUID) ([]domain.Post, error)
	updateFn  func(ctx context.Context, post *domain.Post) error
	deleteFn  func(ctx context.Context, id uuid.UUID) error
}

func (s *stubPostStore) Create(ctx context.Context, post *domain.Post) error {
	if s.createFn == nil {
		panic("unexpected call to PostStore.Create")
	}
	return s.createFn(ctx, post)
}

func (s *stubPostStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Post, error) {
	if s.getByIDFn == nil {
		panic("unexpected call to PostStore.GetByID")
	}
	return s.getByIDFn(ctx, id)
}

func (s *stubPostStore) List(ctx context.Context, userID *uuid.UUID) ([]domain.Post, error) {
	if s.listFn == nil {
		panic("unexpected call to PostStore.List")
	}
	return s.listFn(ctx, userID)
}

func (s *stubPostStore) Update(ctx context.Context, post *domain.Post) error {
	if s.updateFn == nil {
		panic("unexpected call to PostStore.Update")
	}
	return s.updateFn(ctx, post)
}

func (s *stubPostStore) Delete(ctx context.Context, id uuid.UUID) error {
	if s.deleteFn == nil {
		panic("unexpected call to PostStore.Delete")
	}
	return s.deleteFn(ctx, id)
}

type stubVocabularyStore struct {
	createFn    func(ctx context.Context, entry *domain.Vocabulary) error
	getByIDFn   func(ctx context.Context, id int) (*domain.Vocabulary, error)
	listFn      func(ctx context.Context) ([]domain.Vocabulary, error)
	getRandomFn func(ctx context.Context) (*domain.Vocabulary, error)
	updateFn    func(ctx context.Context, entry *domain.Vocabulary) error
	deleteFn    func(ctx context.Context, id int) error
	countFn     func(ctx context.Context) (int64, error)
}

func (s *stubVocabularyStore) Create(ctx context.Context, entry *domain.Vocabulary) error {
	if s.createFn == nil {
		panic("unexpected call to VocabularyStore.Create")
	}
	return s.createFn(ctx, entry)
}

func (s *stubVocabularyStore) GetByID(ctx context.Context, id int) (*domain.Vocabulary, error) {
	if s.getByIDFn == nil {
		panic("unexpected call to VocabularyStore.GetByID")
	}
	return s.getByIDFn(ctx, id)
}

func (s *stubVocabularyStore) List(ctx context.Context) ([]domain.Vocabulary, error) {
	if s.listFn == nil {
		panic("unexpected call to VocabularyStore.List")
	}
	return s.listFn(ctx)
}

func (s *stubVocabularyStore) GetRandom(ctx context.Context) (*domain.Vocabulary, error) {
	if s.getRandomFn == nil {
		panic("unexpected call to VocabularyStore.GetRandom")
	}
	return s.getRandomFn(ctx)
}

func (s *stubVocabularyStore) Update(ctx context.Context, entry *domain.Vocabulary) error {
	if s.updateFn == nil {
		panic("unexpected call to VocabularyStore.Update")
	}
	return s.updateFn(ctx, entry)
}

func (s *stubVocabularyStore) Delete(ctx context.Context, id int) error {
	if s.deleteFn == nil {
		panic("unexpected call to VocabularyStore.Delete")
	}
	return s.deleteFn(ctx, id)
}

func (s *stubVocabularyStore) Count(ctx context.Context) (int64, error) {
	if s.countFn == nil {
		panic("unexpected call to VocabularyStore.Count")
	}
	return s.countFn(ctx)
}

// quietLogger discards handler log output during tests.
func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newUserRouter mounts a UserHandler on the same routes the server uses.
func newUserRouter(userStore *stubUserStore) http.Handler {
	handler := NewUserHandler(userStore, quietLogger())

	r := chi.NewRouter()
	r.Route("/api/users", func(r chi.Router) {
		r.Post("/", handler.Create)
		r.Get("/", handler.List)
		r.Get("/{id}", handler.GetByID)
		r.Put("/{id}", handler.Update)
		r.Delete("/{id}", handler.Delete)
	})
	return r
}

func newPostRouter(postStore *stubPostStore) http.Handler {
	handler := NewPostHandler(postStore, quietLogger())

	r := chi.NewRouter()
	r.Route("/api/posts", func(r chi.Router) {
		r.Post("/", handler.Create)
		r.Get("/", handler.List)
		r.Get("/{id}", handler.GetByID)
		r.Put("/{id}", handler.Update)
		r.Delete("/{id}", handler.Delete)
	})
	return r
}

func newVocabularyRouter(vocabularyStore *stubVocabularyStore) http.Handler {
	handler := NewVocabularyHandler(vocabularyStore, quietLogger())

	r := chi.NewRouter()
	r.Route("/api/vocabulary", func(r chi.Router) {
		r.Post("/", handler.Create)
		r.Get("/", handler.List)
		r.Get("/random", handler.GetRandom)
		r.Get("/{id}", handler.GetByID)
		r.Put("/{id}", handler.Update)
		r.Delete("/{id}", handler.Delete)
	})
	return r
}

// doRequest performs an in-memory request against the router. A non-nil
// body is JSON encoded; a raw string body is sent as-is so tests can send
// malformed JSON.
func doRequest(t *testing.T, router http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = bytes.NewBufferString(b)
	default:
		encoded, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewBuffer(encoded)
	}

	req := httptest.NewRequest(method, path, reader)
	if reader != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

// decodeErrorEnvelope parses the standard error envelope from a response.
func decodeErrorEnvelope(t *testing.T, rec *httptest.ResponseRecorder) shared.ErrorResponse {
	t.Helper()

	var envelope shared.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope),
		"response body should be the standard error envelope: %s", rec.Body.String())
	return envelope
}
