package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/yamato-dev/kotoba-api/internal/api/shared"
	"github.com/yamato-dev/kotoba-api/internal/domain"
	"github.com/yamato-dev/kotoba-api/internal/store"
)

// CreatePostRequest represents the request body for creating a new post.
// The user_id only needs to be a well-formed UUID here; existence is
// enforced by the foreign key at the storage layer, which avoids a
// duplicate lookup round trip.
type CreatePostRequest struct {
	UserID  string  `json:"user_id" validate:"required,uuid"`
	Title   string  `json:"title"   validate:"required,max=500"`
	Content *string `json:"content" validate:"omitempty"`
}

// UpdatePostRequest represents the request body for replacing a post.
type UpdatePostRequest struct {
	Title   string  `json:"title"   validate:"required,max=500"`
	Content *string `json:"content" validate:"omitempty"`
}

// PostResponse represents the response data for a post.
type PostResponse struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Title     string    `json:"title"`
	Content   *string   `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// PostHandler handles post-related HTTP requests.
type PostHandler struct {
	postStore store.PostStore
	validator *validator.Validate
	logger    *slog.Logger
}

// NewPostHandler creates a new PostHandler.
func NewPostHandler(postStore store.PostStore, log *slog.Logger) *PostHandler {
	if log == nil {
		log = slog.Default()
	}
	return &PostHandler{
		postStore: postStore,
		validator: newValidator(),
		logger:    log.With(slog.String("component", "post_handler")),
	}
}

// Create handles POST /api/posts requests.
func (h *PostHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreatePostRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, CodeValidationError, "Invalid request format")
		return
	}

	reqErr := checkRequest(h.validator, req)

	// A malformed user_id is already reported by the uuid tag above; a
	// failed parse here just leaves the zero UUID for the domain check.
	userID, _ := uuid.Parse(req.UserID)

	post, newErr := domain.NewPost(userID, req.Title, req.Content)
	if err := combineViolations(reqErr, newErr); err != nil {
		RespondError(w, r, err)
		return
	}

	if err := h.postStore.Create(r.Context(), post); err != nil {
		RespondError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, postToResponse(post))
}

// List handles GET /api/posts requests, optionally filtered by the
// user_id query parameter.
func (h *PostHandler) List(w http.ResponseWriter, r *http.Request) {
	var userID *uuid.UUID
	if raw := r.URL.Query().Get("user_id"); raw != "" {
		parsed, err := uuid.Parse(raw)
		if err != nil {
			var violations domain.FieldViolations
			violations.Add("user_id", "is not a valid UUID")
			RespondError(w, r, violations)
			return
		}
		userID = &parsed
	}

	posts, err := h.postStore.List(r.Context(), userID)
	if err != nil {
		RespondError(w, r, err)
		return
	}

	responses := make([]PostResponse, 0, len(posts))
	for i := range posts {
		responses = append(responses, postToResponse(&posts[i]))
	}

	shared.RespondWithJSON(w, r, http.StatusOK, responses)
}

// GetByID handles GET /api/posts/{id} requests.
func (h *PostHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := parseUUIDParam(r, "id")
	if err != nil {
		RespondError(w, r, err)
		return
	}

	post, err := h.postStore.GetByID(r.Context(), id)
	if err != nil {
		RespondError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, postToResponse(post))
}

// Update handles PUT /api/posts/{id} requests with full-replace
// semantics for title and content. The owning user is immutable.
func (h *PostHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parseUUIDParam(r, "id")
	if err != nil {
		RespondError(w, r, err)
		return
	}

	var req UpdatePostRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, CodeValidationError, "Invalid request format")
		return
	}

	post, err := h.postStore.GetByID(r.Context(), id)
	if err != nil {
		RespondError(w, r, err)
		return
	}

	if err := combineViolations(checkRequest(h.validator, req), post.Revise(req.Title, req.Content)); err != nil {
		RespondError(w, r, err)
		return
	}

	if err := h.postStore.Update(r.Context(), post); err != nil {
		RespondError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, postToResponse(post))
}

// Delete handles DELETE /api/posts/{id} requests.
func (h *PostHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseUUIDParam(r, "id")
	if err != nil {
		RespondError(w, r, err)
		return
	}

	if err := h.postStore.Delete(r.Context(), id); err != nil {
		RespondError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// postToResponse converts a domain.Post to a PostResponse.
func postToResponse(post *domain.Post) PostResponse {
	return PostResponse{
		ID:        post.ID.String(),
		UserID:    post.UserID.String(),
		Title:     post.Title,
		Content:   post.Content,
		CreatedAt: post.CreatedAt,
		UpdatedAt: post.UpdatedAt,
	}
}
