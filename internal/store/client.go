package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/phrazzld/authors-api/internal/domain"
)

// ClientStore persists OAuth clients.
type ClientStore interface {
	// Create saves a new client. The owning user must exist.
	Create(ctx context.Context, client *domain.Client) error

	// GetByID returns ErrClientNotFound if the client does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Client, error)
}
