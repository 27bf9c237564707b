package middleware

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/phrazzld/authors-api/internal/api/shared"
	"github.com/phrazzld/authors-api/internal/platform/logger"
)

// TraceMiddleware adds a trace ID to the request context and a request-scoped
// logger carrying it. Apply it before anything that logs.
func TraceMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := shared.SetTraceID(r.Context())

		attrs := []any{slog.String("trace_id", shared.GetTraceID(ctx))}
		if reqID := middleware.GetReqID(ctx); reqID != "" {
			attrs = append(attrs, slog.String("request_id", reqID))
		}
		log := logger.FromContext(ctx).With(attrs...)

		log.Debug("request started",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.String("remote_addr", r.RemoteAddr))

		next.ServeHTTP(w, r.WithContext(logger.WithLogger(ctx, log)))
	})
}
