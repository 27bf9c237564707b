package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/phrazzld/authors-api/internal/domain"
	"github.com/phrazzld/authors-api/internal/store"
)

// ClientStore is an in-memory store.ClientStore. It checks client ownership
// against a UserStore the same way the oauth_clients foreign key does.
type ClientStore struct {
	mu      sync.RWMutex
	clients map[uuid.UUID]domain.Client
	users   store.UserStore
}

var _ store.ClientStore = (*ClientStore)(nil)

// NewClientStore creates a ClientStore whose owners are looked up in users.
func NewClientStore(users store.UserStore) *ClientStore {
	return &ClientStore{
		clients: make(map[uuid.UUID]domain.Client),
		users:   users,
	}
}

// Create implements store.ClientStore.
func (s *ClientStore) Create(ctx context.Context, client *domain.Client) error {
	if err := client.Validate(); err != nil {
		return fmt.Errorf("%w: %w", store.ErrInvalidEntity, err)
	}
	if _, err := s.users.GetByID(ctx, client.UserID); err != nil {
		return fmt.Errorf("%w: client owner: %w", store.ErrInvalidEntity, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.clients[client.ID]; exists {
		return fmt.Errorf("%w: oauth client %s", store.ErrDuplicate, client.ID)
	}
	s.clients[client.ID] = *client
	return nil
}

// GetByID implements store.ClientStore.
func (s *ClientStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Client, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	client, ok := s.clients[id]
	if !ok {
		return nil, store.ErrClientNotFound
	}
	return &client, nil
}
