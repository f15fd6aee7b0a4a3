package positions

import (
	"context"
	"testing"

	"github.com/pidcanvas/pidcanvas/pkg/errors"
	"github.com/pidcanvas/pidcanvas/pkg/graph"
)

// storeUnderTest runs the shared Store contract against a backend.
func storeUnderTest(t *testing.T, s Store) {
	t.Helper()
	ctx := context.Background()

	// Missing key reads as nil, nil.
	got, err := s.Get(ctx, "bench-3")
	if err != nil || got != nil {
		t.Fatalf("Get(missing) = (%v, %v), want (nil, nil)", got, err)
	}

	arrangement := map[string]graph.Position{
		"pump": {X: 120, Y: 80},
		"tank": {X: 320, Y: 80},
	}
	if err := s.Set(ctx, "bench-3", arrangement); err != nil {
		t.Fatalf("Set: %v", err)
	}

	got, err = s.Get(ctx, "bench-3")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if len(got) != 2 || got["pump"] != (graph.Position{X: 120, Y: 80}) {
		t.Errorf("Get = %+v", got)
	}

	// Whole-map overwrite: stale entries do not survive.
	if err := s.Set(ctx, "bench-3", map[string]graph.Position{"pump": {X: 0, Y: 0}}); err != nil {
		t.Fatalf("Set overwrite: %v", err)
	}
	got, _ = s.Get(ctx, "bench-3")
	if len(got) != 1 {
		t.Errorf("overwrite kept stale entries: %+v", got)
	}

	// Keys are independent.
	if other, _ := s.Get(ctx, "bench-4"); other != nil {
		t.Errorf("unrelated key not empty: %+v", other)
	}

	if err := s.Delete(ctx, "bench-3"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if got, _ := s.Get(ctx, "bench-3"); got != nil {
		t.Errorf("Get after delete = %+v", got)
	}

	// Deleting a missing key is not an error.
	if err := s.Delete(ctx, "bench-3"); err != nil {
		t.Errorf("Delete(missing) = %v", err)
	}

	// Invalid keys are rejected before touching the backend.
	if _, err := s.Get(ctx, "../escape"); errors.GetCode(err) != errors.ErrCodeInvalidKey {
		t.Errorf("Get with traversal key: %v", err)
	}
	if err := s.Set(ctx, "", nil); errors.GetCode(err) != errors.ErrCodeInvalidKey {
		t.Errorf("Set with empty key: %v", err)
	}
}

func TestMemoryStore(t *testing.T) {
	s := NewMemoryStore()
	defer s.Close()
	storeUnderTest(t, s)
}

func TestMemoryStoreIsolation(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	in := map[string]graph.Position{"pump": {X: 40, Y: 40}}
	if err := s.Set(ctx, "k", in); err != nil {
		t.Fatal(err)
	}

	// Mutating caller-held maps must not leak into the store.
	in["pump"] = graph.Position{X: 999, Y: 999}
	got, _ := s.Get(ctx, "k")
	if got["pump"].X != 40 {
		t.Error("store shares memory with caller's map")
	}

	// Mutating a returned map must not corrupt stored state.
	got["tank"] = graph.Position{}
	again, _ := s.Get(ctx, "k")
	if len(again) != 1 {
		t.Error("returned map aliases stored state")
	}
}

func TestFileStore(t *testing.T) {
	s, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}
	defer s.Close()
	storeUnderTest(t, s)
}

func TestFileStorePersistsAcrossInstances(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	s1, err := NewFileStore(dir)
	if err != nil {
		t.Fatal(err)
	}
	want := map[string]graph.Position{"pump": {X: 120, Y: 80}}
	if err := s1.Set(ctx, "bench-3", want); err != nil {
		t.Fatal(err)
	}
	s1.Close()

	s2, err := NewFileStore(dir)
	if err != nil {
		t.Fatal(err)
	}
	got, err := s2.Get(ctx, "bench-3")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got["pump"] != want["pump"] {
		t.Errorf("reloaded = %+v, want %+v", got, want)
	}
}
