package symbols

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pidcanvas/pidcanvas/pkg/cache"
	"github.com/pidcanvas/pidcanvas/pkg/httputil"
	"github.com/pidcanvas/pidcanvas/pkg/observability"
)

// =============================================================================
// HTTP Source
// =============================================================================

// listing is the wire format of the symbol listing endpoint.
type listing struct {
	Success bool          `json:"success"`
	Symbols []SymbolEntry `json:"symbols"`
}

// HTTPSource fetches the symbol listing from a catalog endpoint returning
// `{"success": true, "symbols": [{"name": ...}, ...]}`.
type HTTPSource struct {
	url    string
	client *http.Client
	cache  cache.Cache
	ttl    time.Duration
}

// HTTPSourceOption configures an HTTPSource.
type HTTPSourceOption func(*HTTPSource)

// WithClient sets the HTTP client (default: 15s timeout client).
func WithClient(c *http.Client) HTTPSourceOption {
	return func(s *HTTPSource) { s.client = c }
}

// WithCache caches listing responses for ttl. The catalog changes rarely;
// a cached listing spares the endpoint one fetch per process.
func WithCache(c cache.Cache, ttl time.Duration) HTTPSourceOption {
	return func(s *HTTPSource) {
		s.cache = c
		s.ttl = ttl
	}
}

// NewHTTPSource creates a source for the given listing URL.
func NewHTTPSource(url string, opts ...HTTPSourceOption) *HTTPSource {
	s := &HTTPSource{url: url}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Fetch retrieves the symbol listing, consulting the response cache first
// when one is configured. A response with success=false is an error: the
// catalog must never be populated from a failed listing.
func (s *HTTPSource) Fetch(ctx context.Context) ([]SymbolEntry, error) {
	key := cache.CatalogKey(s.url)

	if s.cache != nil {
		if data, hit, err := s.cache.Get(ctx, key); err == nil && hit {
			observability.Cache().OnCacheHit(ctx, "catalog")
			var entries []SymbolEntry
			if err := json.Unmarshal(data, &entries); err == nil {
				return entries, nil
			}
			// Corrupt cache entry: fall through to a fresh fetch.
			_ = s.cache.Delete(ctx, key)
		} else {
			observability.Cache().OnCacheMiss(ctx, "catalog")
		}
	}

	var body listing
	if err := httputil.GetJSON(ctx, s.client, s.url, &body); err != nil {
		return nil, err
	}
	if !body.Success {
		return nil, fmt.Errorf("catalog endpoint %s reported failure", s.url)
	}

	if s.cache != nil {
		if data, err := json.Marshal(body.Symbols); err == nil {
			_ = s.cache.Set(ctx, key, data, s.ttl)
			observability.Cache().OnCacheSet(ctx, "catalog", len(data))
		}
	}

	return body.Symbols, nil
}

// =============================================================================
// Directory Source
// =============================================================================

// DirSource builds the symbol listing from the image files of a local
// icons directory. The file base name becomes the symbol name and the
// parent directory (relative to root) its category.
type DirSource struct {
	root string
	exts map[string]struct{}
}

// NewDirSource creates a source scanning root for icon files.
// Recognized extensions: .png, .svg, .jpg, .jpeg.
func NewDirSource(root string) *DirSource {
	return &DirSource{
		root: root,
		exts: map[string]struct{}{
			".png": {}, ".svg": {}, ".jpg": {}, ".jpeg": {},
		},
	}
}

// Fetch walks the icon directory and returns one entry per image file.
func (s *DirSource) Fetch(ctx context.Context) ([]SymbolEntry, error) {
	var entries []SymbolEntry
	err := filepath.WalkDir(s.root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if d.IsDir() {
			return nil
		}
		ext := strings.ToLower(filepath.Ext(path))
		if _, ok := s.exts[ext]; !ok {
			return nil
		}
		rel, err := filepath.Rel(s.root, path)
		if err != nil {
			return err
		}
		name := strings.TrimSuffix(d.Name(), filepath.Ext(d.Name()))
		category := filepath.Dir(rel)
		if category == "." {
			category = ""
		}
		entries = append(entries, SymbolEntry{
			Name:     name,
			Category: category,
			Path:     filepath.ToSlash(rel),
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scan icon dir %s: %w", s.root, err)
	}
	return entries, nil
}

// =============================================================================
// Static Source
// =============================================================================

// StaticSource serves a fixed entry list, mainly for tests.
type StaticSource struct {
	Entries []SymbolEntry
	Err     error
}

// NewStaticSource creates a source returning the given names.
func NewStaticSource(names ...string) *StaticSource {
	entries := make([]SymbolEntry, len(names))
	for i, n := range names {
		entries[i] = SymbolEntry{Name: n}
	}
	return &StaticSource{Entries: entries}
}

// Fetch returns the fixed entries, or the configured error.
func (s *StaticSource) Fetch(ctx context.Context) ([]SymbolEntry, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	return s.Entries, nil
}
