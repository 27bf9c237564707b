package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/phrazzld/authors-api/internal/domain"
	"github.com/phrazzld/authors-api/internal/store"
)

// AuthorStore keeps authors in a map guarded by a RWMutex. Ids come from a
// counter that only grows, so a deleted id is never handed out again.
type AuthorStore struct {
	mu      sync.RWMutex
	authors map[int64]domain.Author
	lastID  int64
	now     func() time.Time
}

var _ store.AuthorStore = (*AuthorStore)(nil)

// NewAuthorStore returns an empty AuthorStore.
func NewAuthorStore() *AuthorStore {
	return &AuthorStore{
		authors: make(map[int64]domain.Author),
		now:     time.Now,
	}
}

// Create implements store.AuthorStore.
func (s *AuthorStore) Create(ctx context.Context, attrs domain.AuthorAttributes) (*domain.Author, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	author, err := domain.NewAuthor(attrs, s.now())
	if err != nil {
		return nil, store.NewStoreError("author", "create", "invalid attributes", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.lastID++
	author.ID = s.lastID
	s.authors[author.ID] = *author

	return author, nil
}

// Find implements store.AuthorStore.
func (s *AuthorStore) Find(ctx context.Context, id int64) (*domain.Author, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	author, ok := s.authors[id]
	if !ok {
		return nil, store.ErrAuthorNotFound
	}
	return &author, nil
}

// List implements store.AuthorStore.
func (s *AuthorStore) List(ctx context.Context) ([]*domain.Author, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	out := make([]*domain.Author, 0, len(s.authors))
	for _, a := range s.authors {
		author := a
		out = append(out, &author)
	}
	s.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// Update implements store.AuthorStore.
func (s *AuthorStore) Update(
	ctx context.Context,
	id int64,
	attrs domain.AuthorAttributes,
) (*domain.Author, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	author, ok := s.authors[id]
	if !ok {
		return nil, store.ErrAuthorNotFound
	}
	if err := author.Apply(attrs, s.now()); err != nil {
		return nil, store.NewStoreError("author", "update", "invalid attributes", err)
	}
	s.authors[id] = author

	return &author, nil
}

// Delete implements store.AuthorStore.
func (s *AuthorStore) Delete(ctx context.Context, id int64) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.authors[id]; !ok {
		return store.ErrAuthorNotFound
	}
	delete(s.authors, id)
	return nil
}
