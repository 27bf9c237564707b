package memory

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/authors-api/internal/domain"
	"github.com/phrazzld/authors-api/internal/store"
	"golang.org/x/crypto/bcrypt"
)

// UserStore is an in-memory store.UserStore. Emails are unique
// case-insensitively, matching the PostgreSQL unique index.
type UserStore struct {
	mu         sync.RWMutex
	users      map[uuid.UUID]domain.User
	byEmail    map[string]uuid.UUID
	bcryptCost int
}

var _ store.UserStore = (*UserStore)(nil)

// NewUserStore creates a UserStore hashing passwords at bcryptCost.
func NewUserStore(bcryptCost int) *UserStore {
	return &UserStore{
		users:      make(map[uuid.UUID]domain.User),
		byEmail:    make(map[string]uuid.UUID),
		bcryptCost: bcryptCost,
	}
}

// Create implements store.UserStore. The plaintext password is hashed and
// cleared from the stored copy.
func (s *UserStore) Create(ctx context.Context, user *domain.User) error {
	if err := ctx.Err(); err != nil {
		return err
	}
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

	key := strings.ToLower(user.Email)

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.byEmail[key]; exists {
		return store.ErrEmailExists
	}
	s.users[user.ID] = *user
	s.byEmail[key] = user.ID
	return nil
}

// GetByID implements store.UserStore.
func (s *UserStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[id]
	if !ok {
		return nil, store.ErrUserNotFound
	}
	return &user, nil
}

// GetByEmail implements store.UserStore.
func (s *UserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.byEmail[strings.ToLower(strings.TrimSpace(email))]
	if !ok {
		return nil, store.ErrUserNotFound
	}
	user := s.users[id]
	return &user, nil
}
