package auth

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/authors-api/internal/domain"
	"golang.org/x/oauth2"
)

// TokenTypePersonalAccess is the "type" claim of personal access tokens.
const TokenTypePersonalAccess = "personal_access"

// TokenValidator resolves a bearer token to the principal it was issued to.
type TokenValidator interface {
	ValidateToken(ctx context.Context, token string) (*Principal, error)
}

// TokenService issues and validates bearer tokens.
type TokenService interface {
	TokenValidator

	// IssuePersonalAccessToken mints a named long-lived token for user through
	// client, which must be an unrevoked personal access client owned by user.
	IssuePersonalAccessToken(
		ctx context.Context,
		user *domain.User,
		client *domain.Client,
		name string,
	) (*oauth2.Token, error)
}

// Principal identifies the caller behind a validated token.
type Principal struct {
	UserID    uuid.UUID
	ClientID  uuid.UUID
	TokenID   string
	TokenName string
	ExpiresAt time.Time
}
