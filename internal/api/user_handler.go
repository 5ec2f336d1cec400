package api

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/yamato-dev/kotoba-api/internal/api/shared"
	"github.com/yamato-dev/kotoba-api/internal/domain"
	"github.com/yamato-dev/kotoba-api/internal/store"
)

// CreateUserRequest represents the request body for creating a new user.
type CreateUserRequest struct {
	Name  string `json:"name"  validate:"required,max=100"`
	Email string `json:"email" validate:"required,max=255"`
}

// UpdateUserRequest represents the request body for replacing a user.
// PUT has full-replace semantics, so both fields are required.
type UpdateUserRequest struct {
	Name  string `json:"name"  validate:"required,max=100"`
	Email string `json:"email" validate:"required,max=255"`
}

// UserResponse represents the response data for a user.
type UserResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// UserHandler handles user-related HTTP requests.
type UserHandler struct {
	userStore store.UserStore
	validator *validator.Validate
	logger    *slog.Logger
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(userStore store.UserStore, log *slog.Logger) *UserHandler {
	if log == nil {
		log = slog.Default()
	}
	return &UserHandler{
		userStore: userStore,
		validator: newValidator(),
		logger:    log.With(slog.String("component", "user_handler")),
	}
}

// Create handles POST /api/users requests.
func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateUserRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, CodeValidationError, "Invalid request format")
		return
	}

	// Both validation stages run before responding so the 400 names
	// every failing field, not just the ones the first stage catches.
	user, newErr := domain.NewUser(req.Name, req.Email)
	if err := combineViolations(checkRequest(h.validator, req), newErr); err != nil {
		RespondError(w, r, err)
		return
	}

	if err := h.userStore.Create(r.Context(), user); err != nil {
		RespondError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, userToResponse(user))
}

// List handles GET /api/users requests.
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.userStore.List(r.Context())
	if err != nil {
		RespondError(w, r, err)
		return
	}

	responses := make([]UserResponse, 0, len(users))
	for i := range users {
		responses = append(responses, userToResponse(&users[i]))
	}

	shared.RespondWithJSON(w, r, http.StatusOK, responses)
}

// GetByID handles GET /api/users/{id} requests.
func (h *UserHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := parseUUIDParam(r, "id")
	if err != nil {
		RespondError(w, r, err)
		return
	}

	user, err := h.userStore.GetByID(r.Context(), id)
	if err != nil {
		RespondError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, userToResponse(user))
}

// Update handles PUT /api/users/{id} requests with full-replace
// semantics: both name and email are rewritten.
func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parseUUIDParam(r, "id")
	if err != nil {
		RespondError(w, r, err)
		return
	}

	var req UpdateUserRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, CodeValidationError, "Invalid request format")
		return
	}

	user, err := h.userStore.GetByID(r.Context(), id)
	if err != nil {
		RespondError(w, r, err)
		return
	}

	if err := combineViolations(checkRequest(h.validator, req), user.Rename(req.Name, req.Email)); err != nil {
		RespondError(w, r, err)
		return
	}

	if err := h.userStore.Update(r.Context(), user); err != nil {
		RespondError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, userToResponse(user))
}

// Delete handles DELETE /api/users/{id} requests. The storage layer
// cascades the deletion to the user's posts.
func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseUUIDParam(r, "id")
	if err != nil {
		RespondError(w, r, err)
		return
	}

	if err := h.userStore.Delete(r.Context(), id); err != nil {
		RespondError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// parseUUIDParam extracts and parses a UUID path parameter.
func parseUUIDParam(r *http.Request, name string) (uuid.UUID, error) {
	raw := chi.URLParam(r, name)
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %q is not a valid UUID", domain.ErrInvalidID, raw)
	}
	return id, nil
}

// userToResponse converts a domain.User to a UserResponse.
func userToResponse(user *domain.User) UserResponse {
	return UserResponse{
		ID:        user.ID.String(),
		Name:      user.Name,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}
