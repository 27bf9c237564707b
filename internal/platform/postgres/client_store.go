package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/phrazzld/authors-api/internal/domain"
	"github.com/phrazzld/authors-api/internal/platform/logger"
	"github.com/phrazzld/authors-api/internal/redact"
	"github.com/phrazzld/authors-api/internal/store"
)

const clientColumns = "id, user_id, name, secret, personal_access, revoked, created_at"

// PostgresClientStore implements store.ClientStore on the oauth_clients table.
type PostgresClientStore struct {
	db store.DBTX
}

var _ store.ClientStore = (*PostgresClientStore)(nil)

// NewPostgresClientStore creates a client store over db.
func NewPostgresClientStore(db store.DBTX) *PostgresClientStore {
	return &PostgresClientStore{db: db}
}

// WithTx returns a store bound to tx.
func (s *PostgresClientStore) WithTx(tx *sql.Tx) *PostgresClientStore {
	return &PostgresClientStore{db: tx}
}

// Create implements store.ClientStore. An unknown owner surfaces as
// store.ErrInvalidEntity through the user_id foreign key.
func (s *PostgresClientStore) Create(ctx context.Context, client *domain.Client) error {
	if err := client.Validate(); err != nil {
		return fmt.Errorf("%w: %w", store.ErrInvalidEntity, err)
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO oauth_clients (`+clientColumns+`) VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		client.ID, client.UserID, client.Name, client.Secret,
		client.PersonalAccess, client.Revoked, client.CreatedAt,
	)
	if err != nil {
		logger.FromContext(ctx).Error("failed to insert oauth client",
			slog.String("client_id", client.ID.String()), redact.ErrorAttr(err))
		return store.NewStoreError("client", "create", "insert failed", MapError(err))
	}
	return nil
}

// GetByID implements store.ClientStore.
func (s *PostgresClientStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Client, error) {
	var c domain.Client
	err := s.db.QueryRowContext(ctx,
		`SELECT `+clientColumns+` FROM oauth_clients WHERE id = $1`, id,
	).Scan(&c.ID, &c.UserID, &c.Name, &c.Secret, &c.PersonalAccess, &c.Revoked, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrClientNotFound
		}
		return nil, store.NewStoreError("client", "get_by_id", "query failed", MapError(err))
	}
	c.CreatedAt = domain.Timestamp(c.CreatedAt)
	return &c, nil
}
