// Package graphstore persists saved diagrams.
//
// A saved diagram is a named Graph snapshot with server-assigned identity,
// separate from the per-session position maps in pkg/positions. The Store
// interface has implementations for different backends:
//   - memory: In-memory storage for development/testing
//   - mongo: MongoDB-backed storage for production deployments
//
// # Usage
//
//	store := graphstore.NewMemoryStore()
//
//	d, err := store.Save(ctx, graphstore.Diagram{Name: "unit-4", Graph: g})
//	// d.ID is a server-assigned UUID
//
//	d, err = store.Get(ctx, d.ID)
//	infos, err := store.List(ctx)
package graphstore

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/pidcanvas/pidcanvas/pkg/errors"
	"github.com/pidcanvas/pidcanvas/pkg/graph"
)

// Diagram is a saved graph snapshot.
type Diagram struct {
	ID        string      `json:"id" bson:"_id"`
	Name      string      `json:"name,omitempty" bson:"name,omitempty"`
	Graph     graph.Graph `json:"graph" bson:"graph"`
	CreatedAt time.Time   `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time   `json:"updated_at" bson:"updated_at"`
}

// Info is the listing view of a saved diagram: identity and counts, no
// graph payload.
type Info struct {
	ID        string    `json:"id" bson:"_id"`
	Name      string    `json:"name,omitempty" bson:"name,omitempty"`
	Nodes     int       `json:"nodes" bson:"nodes"`
	Edges     int       `json:"edges" bson:"edges"`
	UpdatedAt time.Time `json:"updated_at" bson:"updated_at"`
}

// Store is the interface for saved-diagram storage backends.
type Store interface {
	// Save stores d, assigning a UUID and CreatedAt when the ID is empty,
	// and returns the stored diagram. Saving an existing ID overwrites.
	Save(ctx context.Context, d Diagram) (Diagram, error)

	// Get retrieves a diagram by ID.
	// Returns an ErrCodeGraphNotFound error when it does not exist.
	Get(ctx context.Context, id string) (Diagram, error)

	// List returns listing info for all saved diagrams, most recently
	// updated first.
	List(ctx context.Context) ([]Info, error)

	// Delete removes a diagram. Deleting a missing ID is not an error.
	Delete(ctx context.Context, id string) error

	// Close releases backend resources.
	Close(ctx context.Context) error
}

// prepare fills in identity and timestamps before a write.
func prepare(d Diagram) Diagram {
	now := time.Now().UTC()
	if d.ID == "" {
		d.ID = uuid.NewString()
		d.CreatedAt = now
	}
	if d.CreatedAt.IsZero() {
		d.CreatedAt = now
	}
	d.UpdatedAt = now
	return d
}

func infoOf(d Diagram) Info {
	return Info{
		ID:        d.ID,
		Name:      d.Name,
		Nodes:     len(d.Graph.Nodes),
		Edges:     len(d.Graph.Edges),
		UpdatedAt: d.UpdatedAt,
	}
}

// =============================================================================
// Memory Store
// =============================================================================

// MemoryStore is an in-memory diagram store for development and testing.
type MemoryStore struct {
	mu   sync.RWMutex
	data map[string]Diagram
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string]Diagram)}
}

func (s *MemoryStore) Save(ctx context.Context, d Diagram) (Diagram, error) {
	d = prepare(d)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[d.ID] = d
	return d, nil
}

func (s *MemoryStore) Get(ctx context.Context, id string) (Diagram, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	d, ok := s.data[id]
	if !ok {
		return Diagram{}, errors.New(errors.ErrCodeGraphNotFound, "diagram %q not found", id)
	}
	return d, nil
}

func (s *MemoryStore) List(ctx context.Context) ([]Info, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	infos := make([]Info, 0, len(s.data))
	for _, d := range s.data {
		infos = append(infos, infoOf(d))
	}
	sort.Slice(infos, func(i, j int) bool {
		return infos[i].UpdatedAt.After(infos[j].UpdatedAt)
	})
	return infos, nil
}

func (s *MemoryStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, id)
	return nil
}

func (s *MemoryStore) Close(ctx context.Context) error { return nil }

var _ Store = (*MemoryStore)(nil)
