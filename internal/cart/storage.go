package cart

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/shopsbuzz/shopsbuzz-backend/pkg/config"
	"github.com/shopsbuzz/shopsbuzz-backend/pkg/redis"
)

// Storage is the durable key-value medium behind the cart store. The cart
// and login records are independent: either may exist without the other.
// Load implementations report found=false for a missing record and reserve
// the error return for the medium itself being unavailable.
type Storage interface {
	LoadCart(ctx context.Context, sessionID string) ([]LineItem, bool, error)
	SaveCart(ctx context.Context, sessionID string, items []LineItem) error
	LoadLoginState(ctx context.Context, sessionID string) (bool, bool, error)
	SaveLoginState(ctx context.Context, sessionID string, loggedIn bool) error
}

type kvClient interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	CartKey(sessionID string) string
	LoginStateKey(sessionID string) string
}

type redisStorage struct {
	client   kvClient
	cartTTL  time.Duration
	loginTTL time.Duration
}

// NewRedisStorage builds the production Storage on the shared redis client.
func NewRedisStorage(client *redis.Client, cfg config.CartConfig) (Storage, error) {
	if client == nil {
		return nil, fmt.Errorf("redis client required")
	}
	return &redisStorage{
		client:   client,
		cartTTL:  cfg.RecordTTL,
		loginTTL: cfg.LoginTTL,
	}, nil
}

func (s *redisStorage) LoadCart(ctx context.Context, sessionID string) ([]LineItem, bool, error) {
	raw, err := s.client.Get(ctx, s.client.CartKey(sessionID))
	if err != nil {
		if redis.IsNil(err) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("load cart record: %w", err)
	}
	var items []LineItem
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		// A corrupt record is indistinguishable from no record to callers.
		return nil, false, nil
	}
	return items, true, nil
}

func (s *redisStorage) SaveCart(ctx context.Context, sessionID string, items []LineItem) error {
	if items == nil {
		items = []LineItem{}
	}
	payload, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encode cart record: %w", err)
	}
	if err := s.client.Set(ctx, s.client.CartKey(sessionID), string(payload), s.cartTTL); err != nil {
		return fmt.Errorf("save cart record: %w", err)
	}
	return nil
}

func (s *redisStorage) LoadLoginState(ctx context.Context, sessionID string) (bool, bool, error) {
	raw, err := s.client.Get(ctx, s.client.LoginStateKey(sessionID))
	if err != nil {
		if redis.IsNil(err) {
			return false, false, nil
		}
		return false, false, fmt.Errorf("load login record: %w", err)
	}
	// Anything but the literal "true" counts as logged out.
	return raw == "true", true, nil
}

func (s *redisStorage) SaveLoginState(ctx context.Context, sessionID string, loggedIn bool) error {
	value := strconv.FormatBool(loggedIn)
	if err := s.client.Set(ctx, s.client.LoginStateKey(sessionID), value, s.loginTTL); err != nil {
		return fmt.Errorf("save login record: %w", err)
	}
	return nil
}

type memoryStorage struct {
	mu     sync.Mutex
	carts  map[string][]LineItem
	logins map[string]bool
}

// NewMemoryStorage builds an in-process Storage used by tests and tooling.
func NewMemoryStorage() Storage {
	return &memoryStorage{
		carts:  make(map[string][]LineItem),
		logins: make(map[string]bool),
	}
}

func (s *memoryStorage) LoadCart(ctx context.Context, sessionID string) ([]LineItem, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	items, ok := s.carts[sessionID]
	if !ok {
		return nil, false, nil
	}
	copied := make([]LineItem, len(items))
	copy(copied, items)
	return copied, true, nil
}

func (s *memoryStorage) SaveCart(ctx context.Context, sessionID string, items []LineItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	copied := make([]LineItem, len(items))
	copy(copied, items)
	s.carts[sessionID] = copied
	return nil
}

func (s *memoryStorage) LoadLoginState(ctx context.Context, sessionID string) (bool, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	loggedIn, ok := s.logins[sessionID]
	return loggedIn, ok, nil
}

func (s *memoryStorage) SaveLoginState(ctx context.Context, sessionID string, loggedIn bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.logins[sessionID] = loggedIn
	return nil
}
