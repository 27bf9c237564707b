package mocks

import (
	"context"
	"sync"

	"github.com/phrazzld/authors-api/internal/domain"
	"github.com/phrazzld/authors-api/internal/service/auth"
	"golang.org/x/oauth2"
)

// MockTokenService implements auth.TokenService for testing.
type MockTokenService struct {
	ValidateTokenFn            func(ctx context.Context, token string) (*auth.Principal, error)
	IssuePersonalAccessTokenFn func(
		ctx context.Context,
		user *domain.User,
		client *domain.Client,
		name string,
	) (*oauth2.Token, error)

	// Defaults returned when the matching Fn is nil.
	Principal   *auth.Principal
	Token       *oauth2.Token
	ValidateErr error
	IssueErr    error

	mu              sync.Mutex
	validatedTokens []string
}

var _ auth.TokenService = (*MockTokenService)(nil)

// ValidateToken implements auth.TokenValidator and records the token it was given.
func (m *MockTokenService) ValidateToken(ctx context.Context, token string) (*auth.Principal, error) {
	m.mu.Lock()
	m.validatedTokens = append(m.validatedTokens, token)
	m.mu.Unlock()

	if m.ValidateTokenFn != nil {
		return m.ValidateTokenFn(ctx, token)
	}
	if m.ValidateErr != nil {
		return nil, m.ValidateErr
	}
	return m.Principal, nil
}

// IssuePersonalAccessToken implements auth.TokenService.
func (m *MockTokenService) IssuePersonalAccessToken(
	ctx context.Context,
	user *domain.User,
	client *domain.Client,
	name string,
) (*oauth2.Token, error) {
	if m.IssuePersonalAccessTokenFn != nil {
		return m.IssuePersonalAccessTokenFn(ctx, user, client, name)
	}
	return m.Token, m.IssueErr
}

// ValidatedTokens returns the tokens passed to ValidateToken, in call order.
func (m *MockTokenService) ValidatedTokens() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.validatedTokens...)
}
