package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/phrazzld/authors-api/internal/api/shared"
	"github.com/phrazzld/authors-api/internal/jsonapi"
	"github.com/phrazzld/authors-api/internal/platform/logger"
)

// Recover turns a panic in next into a JSON:API 500 error document. It keeps
// the panic value and stack in the log only. http.ErrAbortHandler is re-raised
// so the server can abort the connection.
func Recover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}

			logger.FromContext(r.Context()).Error("recovered from panic",
				slog.String("stack", string(debug.Stack())))
			shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
				jsonapi.NewError(http.StatusInternalServerError, ""),
				fmt.Errorf("panic: %v", rec))
		}()

		next.ServeHTTP(w, r)
	})
}
