package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/phrazzld/authors-api/internal/api/shared"
	"github.com/phrazzld/authors-api/internal/jsonapi"
	"github.com/phrazzld/authors-api/internal/platform/logger"
	"github.com/phrazzld/authors-api/internal/service/auth"
)

// UnauthenticatedTitle is the title of the 401 error object.
const UnauthenticatedTitle = "Unauthenticated"

// AuthMiddleware provides bearer token authentication for routes.
type AuthMiddleware struct {
	tokens auth.TokenValidator
}

// NewAuthMiddleware creates a new AuthMiddleware with the given dependencies.
func NewAuthMiddleware(tokens auth.TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens}
}

// Authenticate validates the bearer token from the Authorization header and
// adds the resulting principal to the request context.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, err := bearerToken(r)
		if err != nil {
			respondUnauthenticated(w, r, err)
			return
		}

		principal, err := m.tokens.ValidateToken(r.Context(), token)
		if err != nil {
			if isAuthFailure(err) {
				respondUnauthenticated(w, r, err)
				return
			}
			shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
				jsonapi.NewError(http.StatusInternalServerError, ""), err)
			return
		}

		ctx := shared.WithPrincipal(r.Context(), principal)
		log := logger.FromContext(ctx).With(
			slog.String("user_id", principal.UserID.String()),
			slog.String("client_id", principal.ClientID.String()))
		ctx = logger.WithLogger(ctx, log)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func bearerToken(r *http.Request) (string, error) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return "", auth.ErrMissingToken
	}
	scheme, token, ok := strings.Cut(header, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
		return "", auth.ErrInvalidToken
	}
	return strings.TrimSpace(token), nil
}

func isAuthFailure(err error) bool {
	return errors.Is(err, auth.ErrInvalidToken) ||
		errors.Is(err, auth.ErrExpiredToken) ||
		errors.Is(err, auth.ErrTokenNotYetValid) ||
		errors.Is(err, auth.ErrMissingToken) ||
		errors.Is(err, auth.ErrWrongTokenType) ||
		errors.Is(err, auth.ErrRevokedClient)
}

func respondUnauthenticated(w http.ResponseWriter, r *http.Request, err error) {
	shared.RespondWithErrorAndLog(w, r, http.StatusUnauthorized,
		jsonapi.ErrorObject{Status: "401", Title: UnauthenticatedTitle}, err)
}
