package postgres

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"time"

	"github.com/phrazzld/authors-api/internal/domain"
	"github.com/phrazzld/authors-api/internal/platform/logger"
	"github.com/phrazzld/authors-api/internal/redact"
	"github.com/phrazzld/authors-api/internal/store"
)

const authorColumns = "id, name, created_at, updated_at"

// PostgresAuthorStore implements store.AuthorStore on the authors table.
type PostgresAuthorStore struct {
	db  store.DBTX
	now func() time.Time
}

var _ store.AuthorStore = (*PostgresAuthorStore)(nil)

// NewPostgresAuthorStore creates an author store over db, which may be a
// *sql.DB or a *sql.Tx.
func NewPostgresAuthorStore(db store.DBTX) *PostgresAuthorStore {
	return &PostgresAuthorStore{db: db, now: time.Now}
}

// WithTx returns a store bound to tx.
func (s *PostgresAuthorStore) WithTx(tx *sql.Tx) *PostgresAuthorStore {
	return &PostgresAuthorStore{db: tx, now: s.now}
}

// Create implements store.AuthorStore. Timestamps are stamped here rather
// than by column defaults so they carry the application clock at microsecond
// precision.
func (s *PostgresAuthorStore) Create(
	ctx context.Context,
	attrs domain.AuthorAttributes,
) (*domain.Author, error) {
	log := logger.FromContext(ctx).With(slog.String("component", "author_store"))

	author, err := domain.NewAuthor(attrs, s.now())
	if err != nil {
		return nil, store.NewStoreError("author", "create", "invalid attributes", err)
	}

	err = s.db.QueryRowContext(ctx,
		`INSERT INTO authors (name, created_at, updated_at) VALUES ($1, $2, $3) RETURNING id`,
		author.Name, author.CreatedAt, author.UpdatedAt,
	).Scan(&author.ID)
	if err != nil {
		log.Error("failed to insert author", redact.ErrorAttr(err))
		return nil, store.NewStoreError("author", "create", "insert failed", MapError(err))
	}

	log.Debug("author created", slog.Int64("author_id", author.ID))
	return author, nil
}

// Find implements store.AuthorStore.
func (s *PostgresAuthorStore) Find(ctx context.Context, id int64) (*domain.Author, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+authorColumns+` FROM authors WHERE id = $1`, id)

	author, err := scanAuthor(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrAuthorNotFound
		}
		logger.FromContext(ctx).Error("failed to fetch author",
			slog.Int64("author_id", id), redact.ErrorAttr(err))
		return nil, store.NewStoreError("author", "find", "query failed", MapError(err))
	}
	return author, nil
}

// List implements store.AuthorStore.
func (s *PostgresAuthorStore) List(ctx context.Context) ([]*domain.Author, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+authorColumns+` FROM authors ORDER BY id`)
	if err != nil {
		logger.FromContext(ctx).Error("failed to list authors", redact.ErrorAttr(err))
		return nil, store.NewStoreError("author", "list", "query failed", MapError(err))
	}
	defer func() { _ = rows.Close() }()

	authors := make([]*domain.Author, 0)
	for rows.Next() {
		author, err := scanAuthor(rows)
		if err != nil {
			return nil, store.NewStoreError("author", "list", "scan failed", err)
		}
		authors = append(authors, author)
	}
	if err := rows.Err(); err != nil {
		return nil, store.NewStoreError("author", "list", "row iteration failed", MapError(err))
	}
	return authors, nil
}

// Update implements store.AuthorStore. updated_at is never moved behind its
// stored value.
func (s *PostgresAuthorStore) Update(
	ctx context.Context,
	id int64,
	attrs domain.AuthorAttributes,
) (*domain.Author, error) {
	if err := attrs.Validate(); err != nil {
		return nil, store.NewStoreError("author", "update", "invalid attributes", err)
	}

	row := s.db.QueryRowContext(ctx,
		`UPDATE authors
		SET name = $1, updated_at = GREATEST($2, updated_at)
		WHERE id = $3
		RETURNING `+authorColumns,
		attrs.Name, domain.Timestamp(s.now()), id,
	)

	author, err := scanAuthor(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrAuthorNotFound
		}
		logger.FromContext(ctx).Error("failed to update author",
			slog.Int64("author_id", id), redact.ErrorAttr(err))
		return nil, store.NewStoreError("author", "update", "update failed", MapError(err))
	}
	return author, nil
}

// Delete implements store.AuthorStore.
func (s *PostgresAuthorStore) Delete(ctx context.Context, id int64) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM authors WHERE id = $1`, id)
	if err != nil {
		logger.FromContext(ctx).Error("failed to delete author",
			slog.Int64("author_id", id), redact.ErrorAttr(err))
		return store.NewStoreError("author", "delete", "delete failed", MapError(err))
	}
	return CheckRowsAffected(result, store.ErrAuthorNotFound)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAuthor(row rowScanner) (*domain.Author, error) {
	var a domain.Author
	if err := row.Scan(&a.ID, &a.Name, &a.CreatedAt, &a.UpdatedAt); err != nil {
		return nil, err
	}
	a.CreatedAt = domain.Timestamp(a.CreatedAt)
	a.UpdatedAt = domain.Timestamp(a.UpdatedAt)
	return &a, nil
}
