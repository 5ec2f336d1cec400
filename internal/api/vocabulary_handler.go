package api

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/yamato-dev/kotoba-api/internal/api/shared"
	"github.com/yamato-dev/kotoba-api/internal/domain"
	"github.com/yamato-dev/kotoba-api/internal/store"
)

// VocabularyRequest represents the request body for creating or
// replacing a vocabulary entry.
type VocabularyRequest struct {
	EnWord    string  `json:"en_word"    validate:"required,max=200"`
	JaWord    string  `json:"ja_word"    validate:"required,max=200"`
	EnExample *string `json:"en_example" validate:"omitempty,max=1000"`
	JaExample *string `json:"ja_example" validate:"omitempty,max=1000"`
}

// VocabularyResponse represents the response data for a vocabulary entry.
type VocabularyResponse struct {
	ID        int       `json:"id"`
	EnWord    string    `json:"en_word"`
	JaWord    string    `json:"ja_word"`
	EnExample *string   `json:"en_example"`
	JaExample *string   `json:"ja_example"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// VocabularyHandler handles vocabulary-related HTTP requests.
type VocabularyHandler struct {
	vocabularyStore store.VocabularyStore
	validator       *validator.Validate
	logger          *slog.Logger
}

// NewVocabularyHandler creates a new VocabularyHandler.
func NewVocabularyHandler(vocabularyStore store.VocabularyStore, log *slog.Logger) *VocabularyHandler {
	if log == nil {
		log = slog.Default()
	}
	return &VocabularyHandler{
		vocabularyStore: vocabularyStore,
		validator:       newValidator(),
		logger:          log.With(slog.String("component", "vocabulary_handler")),
	}
}

// Create handles POST /api/vocabulary requests.
func (h *VocabularyHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req VocabularyRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, CodeValidationError, "Invalid request format")
		return
	}

	entry, newErr := domain.NewVocabulary(req.EnWord, req.JaWord, req.EnExample, req.JaExample)
	if err := combineViolations(checkRequest(h.validator, req), newErr); err != nil {
		RespondError(w, r, err)
		return
	}

	if err := h.vocabularyStore.Create(r.Context(), entry); err != nil {
		RespondError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, vocabularyToResponse(entry))
}

// List handles GET /api/vocabulary requests.
func (h *VocabularyHandler) List(w http.ResponseWriter, r *http.Request) {
	entries, err := h.vocabularyStore.List(r.Context())
	if err != nil {
		RespondError(w, r, err)
		return
	}

	responses := make([]VocabularyResponse, 0, len(entries))
	for i := range entries {
		responses = append(responses, vocabularyToResponse(&entries[i]))
	}

	shared.RespondWithJSON(w, r, http.StatusOK, responses)
}

// GetByID handles GET /api/vocabulary/{id} requests.
func (h *VocabularyHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := parseIntParam(r, "id")
	if err != nil {
		RespondError(w, r, err)
		return
	}

	entry, err := h.vocabularyStore.GetByID(r.Context(), id)
	if err != nil {
		RespondError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, vocabularyToResponse(entry))
}

// GetRandom handles GET /api/vocabulary/random requests, returning a
// single random entry for practice.
func (h *VocabularyHandler) GetRandom(w http.ResponseWriter, r *http.Request) {
	entry, err := h.vocabularyStore.GetRandom(r.Context())
	if err != nil {
		RespondError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, vocabularyToResponse(entry))
}

// Update handles PUT /api/vocabulary/{id} requests with full-replace
// semantics.
func (h *VocabularyHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parseIntParam(r, "id")
	if err != nil {
		RespondError(w, r, err)
		return
	}

	var req VocabularyRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, CodeValidationError, "Invalid request format")
		return
	}

	entry, err := h.vocabularyStore.GetByID(r.Context(), id)
	if err != nil {
		RespondError(w, r, err)
		return
	}

	if err := combineViolations(checkRequest(h.validator, req), entry.Rewrite(req.EnWord, req.JaWord, req.EnExample, req.JaExample)); err != nil {
		RespondError(w, r, err)
		return
	}

	if err := h.vocabularyStore.Update(r.Context(), entry); err != nil {
		RespondError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, vocabularyToResponse(entry))
}

// Delete handles DELETE /api/vocabulary/{id} requests.
func (h *VocabularyHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseIntParam(r, "id")
	if err != nil {
		RespondError(w, r, err)
		return
	}

	if err := h.vocabularyStore.Delete(r.Context(), id); err != nil {
		RespondError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// parseIntParam extracts and parses an integer path parameter.
func parseIntParam(r *http.Request, name string) (int, error) {
	raw := chi.URLParam(r, name)
	id, err := strconv.Atoi(raw)
	if err != nil || id < 1 {
		return 0, fmt.Errorf("%w: %q is not a valid numeric ID", domain.ErrInvalidID, raw)
	}
	return id, nil
}

// vocabularyToResponse converts a domain.Vocabulary to a VocabularyResponse.
func vocabularyToResponse(entry *domain.Vocabulary) VocabularyResponse {
	return VocabularyResponse{
		ID:        entry.ID,
		EnWord:    entry.EnWord,
		JaWord:    entry.JaWord,
		EnExample: entry.EnExample,
		JaExample: entry.JaExample,
		CreatedAt: entry.CreatedAt,
		UpdatedAt: entry.UpdatedAt,
	}
}
