package cart

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	redisclient "github.com/emabi2002/pngsme/pkg/redis"
	"github.com/google/uuid"
)

// cartTTL bounds how long an abandoned cart survives in redis.
const cartTTL = 30 * 24 * time.Hour

// Storage persists per-buyer cart contents.
type Storage interface {
	Load(ctx context.Context, userID uuid.UUID) ([]Item, error)
	Save(ctx context.Context, userID uuid.UUID, items []Item) error
	Delete(ctx context.Context, userID uuid.UUID) error
}

type redisStorage struct {
	client *redisclient.Client
}

// NewRedisStorage builds a Storage backed by the shared redis client.
func NewRedisStorage(client *redisclient.Client) Storage {
	return &redisStorage{client: client}
}

func (s *redisStorage) Load(ctx context.Context, userID uuid.UUID) ([]Item, error) {
	raw, err := s.client.Get(ctx, s.client.CartKey(userID.String()))
	if err != nil {
		if redisclient.IsNil(err) {
			return nil, nil
		}
		return nil, err
	}
	var items []Item
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (s *redisStorage) Save(ctx context.Context, userID uuid.UUID, items []Item) error {
	body, err := json.Marshal(items)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, s.client.CartKey(userID.String()), body, cartTTL)
}

func (s *redisStorage) Delete(ctx context.Context, userID uuid.UUID) error {
	return s.client.Del(ctx, s.client.CartKey(userID.String()))
}

// MemoryStorage is the in-process fallback used when redis is unreachable.
type MemoryStorage struct {
	mu    sync.RWMutex
	carts map[uuid.UUID][]Item
}

// NewMemoryStorage builds an empty in-memory cart store.
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{carts: make(map[uuid.UUID][]Item)}
}

func (s *MemoryStorage) Load(_ context.Context, userID uuid.UUID) ([]Item, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	items := s.carts[userID]
	out := make([]Item, len(items))
	copy(out, items)
	return out, nil
}

func (s *MemoryStorage) Save(_ context.Context, userID uuid.UUID, items []Item) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	saved := make([]Item, len(items))
	copy(saved, items)
	s.carts[userID] = saved
	return nil
}

func (s *MemoryStorage) Delete(_ context.Context, userID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, userID)
	return nil
}
