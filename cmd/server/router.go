package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/linkden/linkden/internal/api"
	"github.com/linkden/linkden/internal/api/middleware"
)

// setupRouter configures the HTTP routes and middleware chain.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.NewTraceMiddleware(app.logger))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte(`{"status":"ok"}`)); err != nil {
			app.logger.Error("failed to write health response", "error", err)
		}
	})

	accountHandler := api.NewAccountHandler(app.accountService, app.logger)
	collectionHandler := api.NewCollectionHandler(app.collectionService, app.logger)
	authMiddleware := middleware.NewAuthMiddleware(app.jwtService)

	r.Route("/api", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.Authenticate)

			r.Delete("/account", accountHandler.DeleteAccount)
			r.Post("/collections", collectionHandler.CreateCollection)
		})
	})

	return r
}
