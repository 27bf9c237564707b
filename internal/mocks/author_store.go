package mocks

import (
	"context"

	"github.com/phrazzld/authors-api/internal/domain"
	"github.com/phrazzld/authors-api/internal/store"
)

// MockAuthorStore implements store.AuthorStore for testing.
type MockAuthorStore struct {
	CreateFn func(ctx context.Context, attrs domain.AuthorAttributes) (*domain.Author, error)
	FindFn   func(ctx context.Context, id int64) (*domain.Author, error)
	ListFn   func(ctx context.Context) ([]*domain.Author, error)
	UpdateFn func(ctx context.Context, id int64, attrs domain.AuthorAttributes) (*domain.Author, error)
	DeleteFn func(ctx context.Context, id int64) error

	// Defaults returned when the matching Fn is nil.
	Author  *domain.Author
	Authors []*domain.Author
	Err     error
}

var _ store.AuthorStore = (*MockAuthorStore)(nil)

// Create implements store.AuthorStore.
func (m *MockAuthorStore) Create(ctx context.Context, attrs domain.AuthorAttributes) (*domain.Author, error) {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, attrs)
	}
	return m.Author, m.Err
}

// Find implements store.AuthorStore.
func (m *MockAuthorStore) Find(ctx context.Context, id int64) (*domain.Author, error) {
	if m.FindFn != nil {
		return m.FindFn(ctx, id)
	}
	return m.Author, m.Err
}

// List implements store.AuthorStore.
func (m *MockAuthorStore) List(ctx context.Context) ([]*domain.Author, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return m.Authors, m.Err
}

// Update implements store.AuthorStore.
func (m *MockAuthorStore) Update(
	ctx context.Context,
	id int64,
	attrs domain.AuthorAttributes,
) (*domain.Author, error) {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, id, attrs)
	}
	return m.Author, m.Err
}

// Delete implements store.AuthorStore.
func (m *MockAuthorStore) Delete(ctx context.Context, id int64) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	return m.Err
}
