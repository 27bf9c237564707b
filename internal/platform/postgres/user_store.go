package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/authors-api/internal/domain"
	"github.com/phrazzld/authors-api/internal/platform/logger"
	"github.com/phrazzld/authors-api/internal/redact"
	"github.com/phrazzld/authors-api/internal/store"
	"golang.org/x/crypto/bcrypt"
)

const userColumns = "id, name, email, hashed_password, created_at, updated_at"

// PostgresUserStore implements the store.UserStore interface
// using a PostgreSQL database as the storage backend.
type PostgresUserStore struct {
	db         store.DBTX
	bcryptCost int
}

var _ store.UserStore = (*PostgresUserStore)(nil)

// NewPostgresUserStore creates a new PostgreSQL implementation of the UserStore interface.
// Passwords are hashed with bcrypt at bcryptCost.
func NewPostgresUserStore(db store.DBTX, bcryptCost int) *PostgresUserStore {
	return &PostgresUserStore{db: db, bcryptCost: bcryptCost}
}

// WithTx returns a store bound to tx.
func (s *PostgresUserStore) WithTx(tx *sql.Tx) *PostgresUserStore {
	return &PostgresUserStore{db: tx, bcryptCost: s.bcryptCost}
}

// Create implements store.UserStore.Create
func (s *PostgresUserStore) Create(ctx context.Context, user *domain.User) error {
	log := logger.FromContext(ctx).With(slog.String("component", "user_store"))

	if err := user.Validate(); err != nil {
		return fmt.Errorf("%w: %w", store.ErrInvalidEntity, err)
	}

	if user.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(user.Password), s.bcryptCost)
		if err != nil {
			return store.NewStoreError("user", "create", "failed to hash password", err)
		}
		user.HashedPassword = string(hash)
		user.Password = ""
	}

	now := domain.Timestamp(time.Now())
	if user.CreatedAt.IsZero() {
		user.CreatedAt = now
	}
	if user.UpdatedAt.IsZero() {
		user.UpdatedAt = now
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO users (`+userColumns+`) VALUES ($1, $2, $3, $4, $5, $6)`,
		user.ID, user.Name, strings.ToLower(user.Email), user.HashedPassword,
		user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		if IsUniqueViolation(err) {
			log.Warn("attempt to create user with existing email")
			return store.ErrEmailExists
		}
		log.Error("failed to insert user", redact.ErrorAttr(err))
		return store.NewStoreError("user", "create", "insert failed", MapError(err))
	}

	log.Debug("user created", slog.String("user_id", user.ID.String()))
	return nil
}

// GetByID implements store.UserStore.GetByID
func (s *PostgresUserStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
	return s.scanUser(ctx, row, "get_by_id")
}

// GetByEmail implements store.UserStore.GetByEmail
func (s *PostgresUserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE LOWER(email) = $1`,
		strings.ToLower(strings.TrimSpace(email)))
	return s.scanUser(ctx, row, "get_by_email")
}

func (s *PostgresUserStore) scanUser(ctx context.Context, row *sql.Row, op string) (*domain.User, error) {
	var u domain.User
	err := row.Scan(&u.ID, &u.Name, &u.Email, &u.HashedPassword, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrUserNotFound
		}
		logger.FromContext(ctx).Error("failed to fetch user",
			slog.String("operation", op), redact.ErrorAttr(err))
		return nil, store.NewStoreError("user", op, "query failed", MapError(err))
	}
	u.CreatedAt = domain.Timestamp(u.CreatedAt)
	u.UpdatedAt = domain.Timestamp(u.UpdatedAt)
	return &u, nil
}
