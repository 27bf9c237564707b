package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/phrazzld/authors-api/internal/api"
	apiMiddleware "github.com/phrazzld/authors-api/internal/api/middleware"
	"github.com/phrazzld/authors-api/internal/redact"
)

// setupRouter creates the application router with all routes and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(apiMiddleware.TraceMiddleware)
	r.Use(apiMiddleware.RequestLogger)
	r.Use(middleware.Recoverer)

	authorHandler := api.NewAuthorHandler(app.authors, app.config.Server.BaseURL, app.logger)
	authMiddleware := apiMiddleware.NewAuthMiddleware(app.tokens)

	r.Route("/api/v1", func(r chi.Router) {
		// Negotiation runs before authentication so that even 401s are JSON:API documents.
		r.Use(apiMiddleware.NegotiateJSONAPI)
		r.Use(apiMiddleware.Recover)
		r.Use(authMiddleware.Authenticate)

		r.Route("/authors", func(r chi.Router) {
			r.Get("/", authorHandler.List)
			r.Post("/", authorHandler.Create)
			r.Get("/{"+api.AuthorIDParam+"}", authorHandler.Show)
			r.Patch("/{"+api.AuthorIDParam+"}", authorHandler.Update)
			r.Delete("/{"+api.AuthorIDParam+"}", authorHandler.Delete)
		})
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("Failed to write health check response", redact.ErrorAttr(err))
		}
	})

	return r
}
