package reservation

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"castlechat/models"

	"github.com/go-redis/redis/v8"
)

const sessionKeyPrefix = "resv:sess:"

// SessionStore maps opaque session identifiers to conversation state. A nil
// state from Get means the session is unknown. Implementations must be safe
// for concurrent use across sessions.
type SessionStore interface {
	Get(ctx context.Context, sessionID string) (*models.ConversationState, error)
	Set(ctx context.Context, sessionID string, state *models.ConversationState) error
	Delete(ctx context.Context, sessionID string) error
}

// MemoryStore keeps sessions in a process-lifetime map. It is the default
// backend and the one used in tests.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]*models.ConversationState
}

// NewMemoryStore creates an empty in-memory session store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: make(map[string]*models.ConversationState)}
}

func (s *MemoryStore) Get(_ context.Context, sessionID string) (*models.ConversationState, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sessions[sessionID], nil
}

func (s *MemoryStore) Set(_ context.Context, sessionID string, state *models.ConversationState) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sessionID] = state
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, sessionID)
	return nil
}

// RedisStore persists sessions as JSON blobs with a TTL, for deployments
// where conversations must survive a process restart.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStore creates a Redis-backed session store.
func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

func (s *RedisStore) Get(ctx context.Context, sessionID string) (*models.ConversationState, error) {
	data, err := s.client.Get(ctx, sessionKeyPrefix+sessionID).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var state models.ConversationState
	if err := json.Unmarshal([]byte(data), &state); err != nil {
		return nil, err
	}
	return &state, nil
}

func (s *RedisStore) Set(ctx context.Context, sessionID string, state *models.ConversationState) error {
	b, err := json.Marshal(state)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, sessionKeyPrefix+sessionID, b, s.ttl).Err()
}

func (s *RedisStore) Delete(ctx context.Context, sessionID string) error {
	return s.client.Del(ctx, sessionKeyPrefix+sessionID).Err()
}
