package observability

import (
	"context"
	"testing"
	"time"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()

	// Catalog hooks
	c := NoopCatalogHooks{}
	c.OnLoadStart(ctx)
	c.OnLoadComplete(ctx, 42, nil)
	c.OnMatch(ctx, "ball valve", "valve", 0.8, true)

	// Scene hooks
	s := NoopSceneHooks{}
	s.OnLayoutStart(ctx, "hierarchical", 10)
	s.OnLayoutComplete(ctx, "hierarchical", time.Second, nil)
	s.OnRenderStart(ctx, "svg")
	s.OnRenderComplete(ctx, "svg", time.Second, nil)

	// Cache hooks
	h := NoopCacheHooks{}
	h.OnCacheHit(ctx, "catalog")
	h.OnCacheMiss(ctx, "catalog")
	h.OnCacheSet(ctx, "catalog", 1024)
}

func TestGlobalHooksRegistry(t *testing.T) {
	// Reset to known state
	Reset()

	// Verify defaults are noop
	if _, ok := Catalog().(NoopCatalogHooks); !ok {
		t.Error("Catalog() should return NoopCatalogHooks by default")
	}
	if _, ok := Scene().(NoopSceneHooks); !ok {
		t.Error("Scene() should return NoopSceneHooks by default")
	}
	if _, ok := Cache().(NoopCacheHooks); !ok {
		t.Error("Cache() should return NoopCacheHooks by default")
	}

	// Set custom hooks
	customCatalog := &testCatalogHooks{}
	SetCatalogHooks(customCatalog)
	if Catalog() != customCatalog {
		t.Error("SetCatalogHooks should set custom hooks")
	}

	customScene := &testSceneHooks{}
	SetSceneHooks(customScene)
	if Scene() != customScene {
		t.Error("SetSceneHooks should set custom hooks")
	}

	customCache := &testCacheHooks{}
	SetCacheHooks(customCache)
	if Cache() != customCache {
		t.Error("SetCacheHooks should set custom hooks")
	}

	// Reset and verify
	Reset()
	if _, ok := Catalog().(NoopCatalogHooks); !ok {
		t.Error("Reset() should restore NoopCatalogHooks")
	}
}

func TestSetNilHooksIsIgnored(t *testing.T) {
	Reset()

	custom := &testCatalogHooks{}
	SetCatalogHooks(custom)

	// Setting nil should be ignored
	SetCatalogHooks(nil)

	if Catalog() != custom {
		t.Error("SetCatalogHooks(nil) should be ignored")
	}

	Reset()
}

// Test implementations
type testCatalogHooks struct{ NoopCatalogHooks }
type testSceneHooks struct{ NoopSceneHooks }
type testCacheHooks struct{ NoopCacheHooks }
