package domain

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Client validation errors
var (
	ErrEmptyClientName   = errors.New("client name cannot be empty")
	ErrEmptyClientSecret = errors.New("client secret cannot be empty")
	ErrEmptyClientOwner  = errors.New("client owner cannot be empty")
)

// clientSecretBytes yields a 40 character hex secret.
const clientSecretBytes = 20

// Client is an OAuth client registered with the token issuer. Personal access
// clients mint long-lived tokens on behalf of their owning user.
type Client struct {
	ID             uuid.UUID `json:"id"`
	UserID         uuid.UUID `json:"user_id"`
	Name           string    `json:"name"`
	Secret         string    `json:"-"`
	PersonalAccess bool      `json:"personal_access"`
	Revoked        bool      `json:"revoked"`
	CreatedAt      time.Time `json:"created_at"`
}

// NewPersonalAccessClient creates a personal access client owned by userID.
func NewPersonalAccessClient(userID uuid.UUID, name string) (*Client, error) {
	secret, err := generateClientSecret()
	if err != nil {
		return nil, err
	}

	client := &Client{
		ID:             uuid.New(),
		UserID:         userID,
		Name:           name,
		Secret:         secret,
		PersonalAccess: true,
		CreatedAt:      Timestamp(time.Now()),
	}
	if err := client.Validate(); err != nil {
		return nil, err
	}
	return client, nil
}

// Validate checks if the Client has valid data.
func (c *Client) Validate() error {
	if c.ID == uuid.Nil {
		return ErrInvalidID
	}
	if c.UserID == uuid.Nil {
		return ErrEmptyClientOwner
	}
	if strings.TrimSpace(c.Name) == "" {
		return ErrEmptyClientName
	}
	if c.Secret == "" {
		return ErrEmptyClientSecret
	}
	return nil
}

func generateClientSecret() (string, error) {
	b := make([]byte, clientSecretBytes)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to generate client secret: %w", err)
	}
	return hex.EncodeToString(b), nil
}
