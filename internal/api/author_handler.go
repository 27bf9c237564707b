package api

import (
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/authors-api/internal/api/shared"
	"github.com/phrazzld/authors-api/internal/domain"
	"github.com/phrazzld/authors-api/internal/platform/logger"
	"github.com/phrazzld/authors-api/internal/store"
)

// AuthorIDParam is the chi URL parameter naming an author.
const AuthorIDParam = "id"

// AuthorHandler serves the authors collection and its members.
type AuthorHandler struct {
	authors store.AuthorStore
	baseURL string
	logger  *slog.Logger
}

// NewAuthorHandler creates an AuthorHandler. baseURL is the public origin used
// in Location headers (for example "https://api.example.com"); when empty it
// is derived from each request.
func NewAuthorHandler(authors store.AuthorStore, baseURL string, logger *slog.Logger) *AuthorHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for AuthorHandler")
	}

	return &AuthorHandler{
		authors: authors,
		baseURL: strings.TrimRight(baseURL, "/"),
		logger:  logger.With(slog.String("component", "author_handler")),
	}
}

// List handles GET /authors.
func (h *AuthorHandler) List(w http.ResponseWriter, r *http.Request) {
	authors, err := h.authors.List(r.Context())
	if err != nil {
		respondWithError(w, r, err)
		return
	}

	shared.RespondWithDocument(w, r, http.StatusOK, AuthorCollection(authors))
}

// Show handles GET /authors/{id}.
func (h *AuthorHandler) Show(w http.ResponseWriter, r *http.Request) {
	id, err := domain.ParseAuthorID(chi.URLParam(r, AuthorIDParam))
	if err != nil {
		respondWithError(w, r, err)
		return
	}

	author, err := h.authors.Find(r.Context(), id)
	if err != nil {
		respondWithError(w, r, err)
		return
	}

	shared.RespondWithDocument(w, r, http.StatusOK, AuthorResource(author))
}

// Create handles POST /authors.
func (h *AuthorHandler) Create(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	attrs, _, ok := h.readDocument(w, r, OperationCreate)
	if !ok {
		return
	}

	author, err := h.authors.Create(r.Context(), attrs)
	if err != nil {
		respondWithError(w, r, err)
		return
	}

	log.Info("author created", slog.Int64("author_id", author.ID))

	w.Header().Set("Location", h.location(r, author))
	shared.RespondWithDocument(w, r, http.StatusCreated, AuthorResource(author))
}

// Update handles PATCH /authors/{id}.
func (h *AuthorHandler) Update(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	rawID := chi.URLParam(r, AuthorIDParam)
	id, err := domain.ParseAuthorID(rawID)
	if err != nil {
		respondWithError(w, r, err)
		return
	}

	// An absent author answers 404 whatever the body holds.
	if _, err := h.authors.Find(r.Context(), id); err != nil {
		respondWithError(w, r, err)
		return
	}

	attrs, docID, ok := h.readDocument(w, r, OperationUpdate)
	if !ok {
		return
	}
	if docID != rawID {
		respondWithError(w, r, fmt.Errorf("%w: path %q, document %q", ErrIDConflict, rawID, docID))
		return
	}

	author, err := h.authors.Update(r.Context(), id, attrs)
	if err != nil {
		respondWithError(w, r, err)
		return
	}

	log.Info("author updated", slog.Int64("author_id", author.ID))
	shared.RespondWithDocument(w, r, http.StatusOK, AuthorResource(author))
}

// Delete handles DELETE /authors/{id}. Deleting an absent author is a 404.
func (h *AuthorHandler) Delete(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, err := domain.ParseAuthorID(chi.URLParam(r, AuthorIDParam))
	if err != nil {
		respondWithError(w, r, err)
		return
	}

	if err := h.authors.Delete(r.Context(), id); err != nil {
		respondWithError(w, r, err)
		return
	}

	log.Info("author deleted", slog.Int64("author_id", id))
	w.WriteHeader(http.StatusNoContent)
}

// readDocument decodes and validates a write document, writing the error
// response itself when it cannot. It returns the author attributes and, for
// updates, the document's data.id.
func (h *AuthorHandler) readDocument(
	w http.ResponseWriter,
	r *http.Request,
	op Operation,
) (domain.AuthorAttributes, string, bool) {
	doc, err := shared.DecodeDocument(w, r)
	if err != nil {
		respondWithError(w, r, err)
		return domain.AuthorAttributes{}, "", false
	}

	if errs := ValidateAuthorDocument(doc, op); len(errs) > 0 {
		shared.RespondWithErrors(w, r, http.StatusUnprocessableEntity, errs...)
		return domain.AuthorAttributes{}, "", false
	}

	// Validation guarantees these assertions hold.
	data := doc["data"].(map[string]any)
	attrs := data["attributes"].(map[string]any)
	name := attrs["name"].(string)
	id, _ := data["id"].(string)

	return domain.AuthorAttributes{Name: strings.TrimSpace(name)}, id, true
}

// location builds the show URL of a newly created author from the collection
// URL the request was posted to.
func (h *AuthorHandler) location(r *http.Request, a *domain.Author) string {
	base := h.baseURL
	if base == "" {
		scheme := "http"
		if r.TLS != nil {
			scheme = "https"
		}
		if proto := r.Header.Get("X-Forwarded-Proto"); proto != "" {
			scheme = proto
		}
		base = scheme + "://" + r.Host
	}
	return base + strings.TrimRight(r.URL.Path, "/") + "/" + a.StringID()
}
