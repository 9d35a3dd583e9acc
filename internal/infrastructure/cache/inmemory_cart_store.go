package cache

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/byserkan/backend/internal/domain/cart"
)

// cartEntry holds a serialized cart with its expiration
type cartEntry struct {
	data      []byte
	expiresAt time.Time
}

// InMemoryCartStore implements cart.Store using an in-memory map.
// This is suitable for single-instance deployments and testing.
// Carts are stored serialized so callers never share mutable state.
type InMemoryCartStore struct {
	mu      sync.RWMutex
	entries map[string]cartEntry
	ttl     time.Duration
}

// NewInMemoryCartStore creates a new in-memory cart store
func NewInMemoryCartStore(ttl time.Duration) *InMemoryCartStore {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &InMemoryCartStore{
		entries: make(map[string]cartEntry),
		ttl:     ttl,
	}
}

// Get loads the cart for a session, returning an empty cart when none
// exists or the entry has expired
func (s *InMemoryCartStore) Get(ctx context.Context, sessionID string) (*cart.Cart, error) {
	s.mu.RLock()
	e, exists := s.entries[sessionID]
	s.mu.RUnlock()

	if !exists || time.Now().After(e.expiresAt) {
		return cart.New(), nil
	}

	var c cart.Cart
	if err := json.Unmarshal(e.data, &c); err != nil {
		return cart.New(), nil
	}
	if c.Lines == nil {
		c.Lines = []cart.Line{}
	}
	return &c, nil
}

// Save persists the cart and refreshes its TTL
func (s *InMemoryCartStore) Save(ctx context.Context, sessionID string, c *cart.Cart) error {
	data, err := json.Marshal(c)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[sessionID] = cartEntry{
		data:      data,
		expiresAt: time.Now().Add(s.ttl),
	}

	// Opportunistic sweep of expired sessions
	now := time.Now()
	for id, e := range s.entries {
		if now.After(e.expiresAt) {
			delete(s.entries, id)
		}
	}

	return nil
}

// Delete discards the cart for a session
func (s *InMemoryCartStore) Delete(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, sessionID)
	return nil
}

var _ cart.Store = (*InMemoryCartStore)(nil)
