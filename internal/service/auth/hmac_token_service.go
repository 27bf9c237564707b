package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/phrazzld/authors-api/internal/config"
	"github.com/phrazzld/authors-api/internal/domain"
	"github.com/phrazzld/authors-api/internal/platform/logger"
	"github.com/phrazzld/authors-api/internal/store"
	"golang.org/x/oauth2"
)

const minSecretLength = 32

// hmacTokenService is a TokenService using HMAC-SHA256 signed JWTs.
type hmacTokenService struct {
	signingKey    []byte
	tokenLifetime time.Duration
	clients       store.ClientStore // optional; when set, tokens of revoked clients are refused
	timeFunc      func() time.Time
	clockSkew     time.Duration
}

type tokenClaims struct {
	UserID    uuid.UUID `json:"uid"`
	ClientID  uuid.UUID `json:"cid"`
	TokenType string    `json:"type"`
	Name      string    `json:"name,omitempty"`
	jwt.RegisteredClaims
}

var _ TokenService = (*hmacTokenService)(nil)

// NewTokenService creates an HMAC token service. When clients is non-nil,
// ValidateToken also checks that the issuing client still exists and is not
// revoked.
func NewTokenService(cfg config.AuthConfig, clients store.ClientStore) (TokenService, error) {
	if len(cfg.JWTSecret) < minSecretLength {
		return nil, fmt.Errorf("jwt secret must be at least %d characters", minSecretLength)
	}
	if cfg.TokenLifetimeMinutes <= 0 {
		return nil, fmt.Errorf("token lifetime must be positive")
	}

	return &hmacTokenService{
		signingKey:    []byte(cfg.JWTSecret),
		tokenLifetime: time.Duration(cfg.TokenLifetimeMinutes) * time.Minute,
		clients:       clients,
		timeFunc:      time.Now,
		clockSkew:     2 * time.Minute,
	}, nil
}

// IssuePersonalAccessToken implements TokenService.
func (s *hmacTokenService) IssuePersonalAccessToken(
	ctx context.Context,
	user *domain.User,
	client *domain.Client,
	name string,
) (*oauth2.Token, error) {
	log := logger.FromContext(ctx)

	if user == nil || client == nil {
		return nil, fmt.Errorf("%w: user and client are required", ErrClientMismatch)
	}
	if client.UserID != user.ID || !client.PersonalAccess {
		return nil, ErrClientMismatch
	}
	if client.Revoked {
		return nil, ErrRevokedClient
	}

	now := s.timeFunc()
	expiry := now.Add(s.tokenLifetime)
	tokenID := uuid.New().String()

	claims := tokenClaims{
		UserID:    user.ID,
		ClientID:  client.ID,
		TokenType: TokenTypePersonalAccess,
		Name:      name,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID.String(),
			Audience:  jwt.ClaimStrings{client.ID.String()},
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiry),
			ID:        tokenID,
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.signingKey)
	if err != nil {
		log.Error("failed to sign personal access token",
			slog.String("user_id", user.ID.String()),
			slog.String("client_id", client.ID.String()),
			slog.String("signing_method", jwt.SigningMethodHS256.Name))
		return nil, fmt.Errorf("failed to sign token with HMAC-SHA256: %w", err)
	}

	log.Info("personal access token issued",
		slog.String("user_id", user.ID.String()),
		slog.String("client_id", client.ID.String()),
		slog.String("token_id", tokenID))

	token := &oauth2.Token{
		AccessToken: signed,
		TokenType:   "Bearer",
		Expiry:      expiry,
	}
	return token.WithExtra(map[string]any{
		"token_id": tokenID,
		"name":     name,
	}), nil
}

// ValidateToken implements TokenValidator.
func (s *hmacTokenService) ValidateToken(ctx context.Context, tokenString string) (*Principal, error) {
	log := logger.FromContext(ctx)

	if tokenString == "" {
		return nil, ErrMissingToken
	}

	now := s.timeFunc()
	token, err := jwt.ParseWithClaims(
		tokenString,
		&tokenClaims{},
		func(token *jwt.Token) (any, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return s.signingKey, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}),
		jwt.WithLeeway(s.clockSkew),
		jwt.WithTimeFunc(func() time.Time { return now }),
	)
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			log.Debug("token validation failed: token expired")
			return nil, ErrExpiredToken
		case errors.Is(err, jwt.ErrTokenNotValidYet):
			log.Debug("token validation failed: token not yet valid")
			return nil, ErrTokenNotYetValid
		default:
			log.Debug("token validation failed",
				slog.String("error_type", fmt.Sprintf("%T", err)))
			return nil, ErrInvalidToken
		}
	}

	claims, ok := token.Claims.(*tokenClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	if claims.TokenType != TokenTypePersonalAccess {
		log.Debug("token validation failed: wrong token type",
			slog.String("expected", TokenTypePersonalAccess),
			slog.String("actual", claims.TokenType))
		return nil, ErrWrongTokenType
	}

	if s.clients != nil {
		client, err := s.clients.GetByID(ctx, claims.ClientID)
		if err != nil {
			if store.IsNotFoundError(err) {
				return nil, ErrRevokedClient
			}
			return nil, fmt.Errorf("failed to load oauth client: %w", err)
		}
		if client.Revoked || client.UserID != claims.UserID {
			return nil, ErrRevokedClient
		}
	}

	principal := &Principal{
		UserID:    claims.UserID,
		ClientID:  claims.ClientID,
		TokenID:   claims.ID,
		TokenName: claims.Name,
	}
	if claims.ExpiresAt != nil {
		principal.ExpiresAt = claims.ExpiresAt.Time
	}
	return principal, nil
}
