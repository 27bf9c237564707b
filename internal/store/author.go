package store

import (
	"context"

	"github.com/phrazzld/authors-api/internal/domain"
)

// AuthorStore defines the interface for author data persistence.
type AuthorStore interface {
	// Create validates attrs, stamps both timestamps and saves a new author.
	// The store assigns the id; ids are never reused.
	Create(ctx context.Context, attrs domain.AuthorAttributes) (*domain.Author, error)

	// Find retrieves an author by id.
	// Returns ErrAuthorNotFound if the author does not exist.
	Find(ctx context.Context, id int64) (*domain.Author, error)

	// List returns every author in creation order. An empty store yields an
	// empty, non-nil slice.
	List(ctx context.Context) ([]*domain.Author, error)

	// Update replaces the author's attributes and refreshes UpdatedAt.
	// Returns ErrAuthorNotFound if the author does not exist.
	Update(ctx context.Context, id int64, attrs domain.AuthorAttributes) (*domain.Author, error)

	// Delete removes an author.
	// Returns ErrAuthorNotFound if the author does not exist.
	Delete(ctx context.Context, id int64) error
}
