package main

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/yamato-dev/kotoba-api/internal/api"
	apiMiddleware "github.com/yamato-dev/kotoba-api/internal/api/middleware"
)

// setupRouter creates and configures the application router with all
// routes and middleware. Returns the configured router.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.Trace)
	r.Use(apiMiddleware.RequestTimeout(
		time.Duration(app.config.Server.RequestTimeoutSeconds) * time.Second))

	userHandler := api.NewUserHandler(app.userStore, app.logger)
	postHandler := api.NewPostHandler(app.postStore, app.logger)
	vocabularyHandler := api.NewVocabularyHandler(app.vocabularyStore, app.logger)

	r.Route("/api", func(r chi.Router) {
		r.Route("/users", func(r chi.Router) {
			r.Post("/", userHandler.Create)
			r.Get("/", userHandler.List)
			r.Get("/{id}", userHandler.GetByID)
			r.Put("/{id}", userHandler.Update)
			r.Delete("/{id}", userHandler.Delete)
		})

		r.Route("/posts", func(r chi.Router) {
			r.Post("/", postHandler.Create)
			r.Get("/", postHandler.List)
			r.Get("/{id}", postHandler.GetByID)
			r.Put("/{id}", postHandler.Update)
			r.Delete("/{id}", postHandler.Delete)
		})

		r.Route("/vocabulary", func(r chi.Router) {
			r.Post("/", vocabularyHandler.Create)
			r.Get("/", vocabularyHandler.List)
			r.Get("/random", vocabularyHandler.GetRandom)
			r.Get("/{id}", vocabularyHandler.GetByID)
			r.Put("/{id}", vocabularyHandler.Update)
			r.Delete("/{id}", vocabularyHandler.Delete)
		})
	})

	// Health check endpoint: no dependencies beyond process liveness.
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	return r
}
