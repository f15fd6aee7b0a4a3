package symbols

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/pidcanvas/pidcanvas/pkg/cache"
)

func TestHTTPSourceFetch(t *testing.T) {
	var hits int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"success": true, "symbols": [
			{"name": "Ball Valve", "category": "valves"},
			{"name": "pump"}
		]}`))
	}))
	defer srv.Close()

	src := NewHTTPSource(srv.URL)
	entries, err := src.Fetch(context.Background())
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(entries))
	}
	if entries[0].Name != "Ball Valve" || entries[0].Category != "valves" {
		t.Errorf("unexpected first entry: %+v", entries[0])
	}
	if hits != 1 {
		t.Errorf("endpoint hit %d times, want 1", hits)
	}
}

func TestHTTPSourceFailureFlag(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success": false, "symbols": []}`))
	}))
	defer srv.Close()

	if _, err := NewHTTPSource(srv.URL).Fetch(context.Background()); err == nil {
		t.Error("success=false response should be an error")
	}
}

func TestHTTPSourceHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusInternalServerError)
	}))
	defer srv.Close()

	if _, err := NewHTTPSource(srv.URL).Fetch(context.Background()); err == nil {
		t.Error("HTTP 500 should be an error")
	}
}

func TestHTTPSourceMalformedPayload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success": tr`))
	}))
	defer srv.Close()

	if _, err := NewHTTPSource(srv.URL).Fetch(context.Background()); err == nil {
		t.Error("malformed payload should be an error")
	}
}

func TestHTTPSourceCaching(t *testing.T) {
	var hits int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		w.Write([]byte(`{"success": true, "symbols": [{"name": "valve"}]}`))
	}))
	defer srv.Close()

	src := NewHTTPSource(srv.URL, WithCache(cache.NewMemoryCache(), time.Hour))

	for range 3 {
		entries, err := src.Fetch(context.Background())
		if err != nil {
			t.Fatalf("Fetch: %v", err)
		}
		if len(entries) != 1 || entries[0].Name != "valve" {
			t.Fatalf("unexpected entries: %+v", entries)
		}
	}

	if hits != 1 {
		t.Errorf("endpoint hit %d times with cache, want 1", hits)
	}
}

func TestDirSourceFetch(t *testing.T) {
	dir := t.TempDir()
	mustWrite := func(rel string) {
		t.Helper()
		path := filepath.Join(dir, rel)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	mustWrite("valve.png")
	mustWrite("thermal/heat_exchanger.svg")
	mustWrite("notes.txt") // ignored: not an image

	entries, err := NewDirSource(dir).Fetch(context.Background())
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2: %+v", len(entries), entries)
	}

	byName := map[string]SymbolEntry{}
	for _, e := range entries {
		byName[e.Name] = e
	}
	if e, ok := byName["heat_exchanger"]; !ok || e.Category != "thermal" {
		t.Errorf("heat_exchanger entry = %+v", e)
	}
	if e, ok := byName["valve"]; !ok || e.Category != "" {
		t.Errorf("valve entry = %+v", e)
	}
}
