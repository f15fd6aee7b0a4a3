// Package positions persists node positions across sessions.
//
// A position map is the complete id → {x,y} arrangement of one diagram,
// keyed per browser/session. The Store interface supports whole-map reads
// and writes with implementations for different backends:
//   - memory: In-memory storage for development/testing
//   - file: File-based storage for CLI applications
//   - redis: Redis-backed storage for multi-instance deployments
//
// # Semantics
//
// Writes always replace the full map for a key; there is no partial update.
// A node's x and y are therefore always stored together, and a reader never
// observes a half-written arrangement.
//
// # Usage
//
//	// Development
//	store := positions.NewMemoryStore()
//
//	// CLI
//	store, err := positions.NewFileStore("")  // Uses ~/.config/pidcanvas/positions/
//
//	// Production
//	store, err := positions.NewRedisStore(ctx, positions.RedisConfig{
//	    Addr: "localhost:6379",
//	})
//
//	err = store.Set(ctx, "bench-3", map[string]graph.Position{"pump": {X: 120, Y: 80}})
//	saved, err := store.Get(ctx, "bench-3")
package positions

import (
	"context"
	"maps"
	"sync"

	"github.com/pidcanvas/pidcanvas/pkg/errors"
	"github.com/pidcanvas/pidcanvas/pkg/graph"
)

// Store is the interface for position storage backends.
type Store interface {
	// Get retrieves the position map stored under key.
	// Returns nil, nil when nothing is stored.
	Get(ctx context.Context, key string) (map[string]graph.Position, error)

	// Set replaces the position map stored under key.
	Set(ctx context.Context, key string, pos map[string]graph.Position) error

	// Delete removes the position map stored under key.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// =============================================================================
// Memory Store
// =============================================================================

// MemoryStore is an in-memory position store for development and testing.
type MemoryStore struct {
	mu   sync.RWMutex
	data map[string]map[string]graph.Position
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string]map[string]graph.Position)}
}

func (s *MemoryStore) Get(ctx context.Context, key string) (map[string]graph.Position, error) {
	if err := errors.ValidateStoreKey(key); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	pos, ok := s.data[key]
	if !ok {
		return nil, nil
	}
	return maps.Clone(pos), nil
}

func (s *MemoryStore) Set(ctx context.Context, key string, pos map[string]graph.Position) error {
	if err := errors.ValidateStoreKey(key); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = maps.Clone(pos)
	return nil
}

func (s *MemoryStore) Delete(ctx context.Context, key string) error {
	if err := errors.ValidateStoreKey(key); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, key)
	return nil
}

func (s *MemoryStore) Close() error { return nil }

var _ Store = (*MemoryStore)(nil)
