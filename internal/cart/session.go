package cart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	pkgerrors "github.com/koodakziba/koodakziba-backend/pkg/errors"
	"github.com/koodakziba/koodakziba-backend/pkg/redis"
)

type sessionCache interface {
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Get(ctx context.Context, key string) (string, error)
	Expire(ctx context.Context, key string, ttl time.Duration) error
	Del(ctx context.Context, keys ...string) error
	CartSessionKey(sessionID string) string
}

// SessionStore persists visitor carts as JSON blobs in Redis, one key per
// session id, refreshed to the configured TTL on every read and write.
type SessionStore struct {
	cache sessionCache
	ttl   time.Duration
}

// NewSessionStore binds the cart session store to a Redis client.
func NewSessionStore(cache *redis.Client, ttl time.Duration) (*SessionStore, error) {
	if cache == nil {
		return nil, fmt.Errorf("redis client required")
	}
	if ttl <= 0 {
		return nil, fmt.Errorf("session ttl must be positive")
	}
	return &SessionStore{cache: cache, ttl: ttl}, nil
}

// Load returns the cart for the session, or an empty cart when the session
// is unknown or its payload is corrupt. A hit slides the TTL forward so a
// browsing visitor's cart does not expire between writes.
func (s *SessionStore) Load(ctx context.Context, sessionID string) ([]LineItem, error) {
	key := s.cache.CartSessionKey(sessionID)
	raw, err := s.cache.Get(ctx, key)
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return []LineItem{}, nil
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load cart session")
	}
	// TTL refresh is best effort.
	_ = s.cache.Expire(ctx, key, s.ttl)

	var items []LineItem
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return []LineItem{}, nil
	}
	if items == nil {
		items = []LineItem{}
	}
	return items, nil
}

// Save rewrites the session cart and resets its TTL.
func (s *SessionStore) Save(ctx context.Context, sessionID string, items []LineItem) error {
	if items == nil {
		items = []LineItem{}
	}
	payload, err := json.Marshal(items)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "encode cart")
	}
	if err := s.cache.Set(ctx, s.cache.CartSessionKey(sessionID), payload, s.ttl); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "save cart session")
	}
	return nil
}

// Delete drops the session cart.
func (s *SessionStore) Delete(ctx context.Context, sessionID string) error {
	if err := s.cache.Del(ctx, s.cache.CartSessionKey(sessionID)); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "delete cart session")
	}
	return nil
}
