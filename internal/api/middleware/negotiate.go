package middleware

import (
	"net/http"

	"github.com/phrazzld/authors-api/internal/api/shared"
	"github.com/phrazzld/authors-api/internal/jsonapi"
)

// NegotiateJSONAPI enforces the JSON:API media type on a route group.
//
// Requests must send Accept: application/vnd.api+json (406 otherwise), and
// POST and PATCH requests must also send it as Content-Type (415 otherwise).
// Every response leaving the group carries the JSON:API Content-Type,
// replacing whatever the inner handler set.
func NegotiateJSONAPI(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Accept") != jsonapi.MediaType {
			shared.RespondWithErrors(w, r, http.StatusNotAcceptable,
				jsonapi.NewError(http.StatusNotAcceptable, ""))
			return
		}

		if requiresBody(r.Method) && r.Header.Get("Content-Type") != jsonapi.MediaType {
			shared.RespondWithErrors(w, r, http.StatusUnsupportedMediaType,
				jsonapi.NewError(http.StatusUnsupportedMediaType, ""))
			return
		}

		sw := &stampingWriter{ResponseWriter: w}
		next.ServeHTTP(sw, r)
		if !sw.wroteHeader {
			sw.WriteHeader(http.StatusOK)
		}
	})
}

func requiresBody(method string) bool {
	return method == http.MethodPost || method == http.MethodPatch
}

// stampingWriter sets the JSON:API Content-Type at the moment headers are flushed.
type stampingWriter struct {
	http.ResponseWriter
	wroteHeader bool
}

func (w *stampingWriter) WriteHeader(status int) {
	if w.wroteHeader {
		return
	}
	w.wroteHeader = true
	w.Header().Set("Content-Type", jsonapi.MediaType)
	w.ResponseWriter.WriteHeader(status)
}

func (w *stampingWriter) Write(b []byte) (int, error) {
	if !w.wroteHeader {
		w.WriteHeader(http.StatusOK)
	}
	return w.ResponseWriter.Write(b)
}

// Unwrap lets http.ResponseController reach the underlying writer.
func (w *stampingWriter) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}
