package api

import (
	"errors"
	"net/http"

	"github.com/phrazzld/authors-api/internal/api/shared"
	"github.com/phrazzld/authors-api/internal/domain"
	"github.com/phrazzld/authors-api/internal/jsonapi"
	"github.com/phrazzld/authors-api/internal/store"
)

// Client-facing error details.
const (
	NotFoundDetails         = "The requested resource could not be found."
	MalformedDocumentDetail = "The request body is not a valid JSON document."
	IDConflictDetails       = "The data.id does not match the id in the URL."
)

// ErrIDConflict is returned when an update document names a different
// resource than its URL.
var ErrIDConflict = errors.New("document id does not match path id")

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	case errors.Is(err, store.ErrNotFound),
		errors.Is(err, domain.ErrInvalidID):
		return http.StatusNotFound

	case errors.Is(err, shared.ErrMalformedDocument):
		return http.StatusBadRequest

	case errors.Is(err, ErrIDConflict):
		return http.StatusConflict

	case errors.Is(err, domain.ErrAuthorNameEmpty),
		errors.Is(err, store.ErrInvalidEntity):
		return http.StatusUnprocessableEntity

	default:
		return http.StatusInternalServerError
	}
}

// errorObjectFor returns the status and sanitized error object for err.
// The error text itself is never copied into the object.
func errorObjectFor(err error) (int, jsonapi.ErrorObject) {
	status := MapErrorToStatusCode(err)

	switch status {
	case http.StatusNotFound:
		return status, jsonapi.NewError(status, NotFoundDetails)
	case http.StatusBadRequest:
		return status, jsonapi.NewError(status, MalformedDocumentDetail)
	case http.StatusConflict:
		obj := jsonapi.NewError(status, IDConflictDetails)
		obj.Source = &jsonapi.ErrorSource{Pointer: PointerID}
		return status, obj
	case http.StatusUnprocessableEntity:
		return status, jsonapi.NewValidationError(PointerName, jsonapi.RuleRequired)
	default:
		return status, jsonapi.NewError(status, "")
	}
}

// respondWithError writes the error document for err and logs it.
func respondWithError(w http.ResponseWriter, r *http.Request, err error) {
	status, obj := errorObjectFor(err)
	shared.RespondWithErrorAndLog(w, r, status, obj, err)
}
