package symbols

import (
	"context"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/pidcanvas/pidcanvas/pkg/errors"
	"github.com/pidcanvas/pidcanvas/pkg/observability"
)

// State describes the catalog lifecycle.
type State int

const (
	// StateUnloaded means no load has succeeded yet.
	StateUnloaded State = iota
	// StateLoading means a fetch is in flight.
	StateLoading
	// StateLoaded means the entry list is populated for the process lifetime.
	StateLoaded
)

// String returns the lower-case state name for logging.
func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateLoaded:
		return "loaded"
	default:
		return "unloaded"
	}
}

// SymbolEntry is one catalog icon. Name is canonical: lower-case tokens
// joined with [Delimiter]. Entries are immutable once loaded; the
// collection is replaced wholesale on load, never merged.
type SymbolEntry struct {
	Name     string `json:"name" bson:"name"`
	Category string `json:"category,omitempty" bson:"category,omitempty"`
	Path     string `json:"path,omitempty" bson:"path,omitempty"`
}

// Source supplies the symbol entry list. Implementations exist for the
// HTTP listing endpoint, a local icon directory, and static test data.
type Source interface {
	// Fetch returns the full entry list. Names may arrive in
	// human-readable form; the catalog canonicalizes them.
	Fetch(ctx context.Context) ([]SymbolEntry, error)
}

// Catalog holds the known symbol names for matching. It is an injectable
// store, not a package-level singleton: consumers receive it via
// parameters so tests can run against fake catalogs.
//
// Catalog is safe for concurrent use. Load is at-most-once across
// concurrent callers; after a successful load the name set is never
// mutated for the rest of the session.
type Catalog struct {
	source Source
	logger *log.Logger

	mu      sync.Mutex
	state   State
	loading chan struct{} // closed when the in-flight load finishes
	entries []SymbolEntry
	names   []string            // catalog iteration order, no duplicates
	nameSet map[string]struct{} // membership index over names
}

// NewCatalog creates an unloaded catalog backed by source.
// If logger is nil, the default logger is used.
func NewCatalog(source Source, logger *log.Logger) *Catalog {
	if logger == nil {
		logger = log.Default()
	}
	return &Catalog{source: source, logger: logger}
}

// State returns the current lifecycle state.
func (c *Catalog) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Loaded reports whether a load has succeeded.
func (c *Catalog) Loaded() bool { return c.State() == StateLoaded }

// Load populates the catalog from its source.
//
// Load is idempotent: once the catalog is loaded, further calls return
// immediately. A call that arrives while a fetch is in flight waits for
// that fetch instead of issuing a duplicate one. On failure the catalog
// stays unloaded (no partial state, no retry); a later Load re-attempts.
func (c *Catalog) Load(ctx context.Context) error {
	c.mu.Lock()
	switch c.state {
	case StateLoaded:
		c.mu.Unlock()
		return nil
	case StateLoading:
		done := c.loading
		c.mu.Unlock()
		select {
		case <-done:
		case <-ctx.Done():
			return ctx.Err()
		}
		if c.Loaded() {
			return nil
		}
		return errors.New(errors.ErrCodeCatalogUnavailable, "catalog load failed")
	}

	done := make(chan struct{})
	c.state = StateLoading
	c.loading = done
	c.mu.Unlock()

	observability.Catalog().OnLoadStart(ctx)
	entries, err := c.source.Fetch(ctx)

	c.mu.Lock()
	defer func() {
		c.mu.Unlock()
		close(done)
	}()

	if err != nil {
		c.state = StateUnloaded
		c.loading = nil
		c.logger.Warn("catalog load failed", "err", err)
		observability.Catalog().OnLoadComplete(ctx, 0, err)
		return errors.Wrap(errors.ErrCodeCatalogUnavailable, err, "load symbol catalog")
	}

	c.entries = make([]SymbolEntry, 0, len(entries))
	c.names = make([]string, 0, len(entries))
	c.nameSet = make(map[string]struct{}, len(entries))
	for _, e := range entries {
		name := Canonicalize(e.Name)
		if name == "" {
			continue
		}
		if _, dup := c.nameSet[name]; dup {
			continue
		}
		e.Name = name
		c.entries = append(c.entries, e)
		c.names = append(c.names, name)
		c.nameSet[name] = struct{}{}
	}
	c.state = StateLoaded
	c.loading = nil

	c.logger.Debug("catalog loaded", "symbols", len(c.names))
	observability.Catalog().OnLoadComplete(ctx, len(c.names), nil)
	return nil
}

// Names returns the canonical symbol names in catalog order.
// The returned slice is a copy; an unloaded catalog returns nil.
func (c *Catalog) Names() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state != StateLoaded {
		return nil
	}
	out := make([]string, len(c.names))
	copy(out, c.names)
	return out
}

// Entries returns a copy of the catalog entries in load order.
func (c *Catalog) Entries() []SymbolEntry {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state != StateLoaded {
		return nil
	}
	out := make([]SymbolEntry, len(c.entries))
	copy(out, c.entries)
	return out
}

// Has reports whether name is a canonical catalog name.
// Always false while the catalog is unloaded.
func (c *Catalog) Has(name string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state != StateLoaded {
		return false
	}
	_, ok := c.nameSet[name]
	return ok
}

// Len returns the number of catalog entries (0 while unloaded).
func (c *Catalog) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.names)
}
