package cache

import (
	"bytes"
	"context"
	"testing"
	"time"
)

func TestFileCacheRoundTrip(t *testing.T) {
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()

	if _, ok, err := c.Get(ctx, "missing"); err != nil || ok {
		t.Fatalf("Get(missing) = ok=%v err=%v, want miss", ok, err)
	}

	if err := c.Set(ctx, "k", []byte("payload"), time.Hour); err != nil {
		t.Fatalf("Set: %v", err)
	}
	data, ok, err := c.Get(ctx, "k")
	if err != nil || !ok {
		t.Fatalf("Get = ok=%v err=%v, want hit", ok, err)
	}
	if !bytes.Equal(data, []byte("payload")) {
		t.Errorf("Get = %q, want %q", data, "payload")
	}

	if err := c.Delete(ctx, "k"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, ok, _ := c.Get(ctx, "k"); ok {
		t.Error("key should be gone after Delete")
	}

	// Deleting again is not an error.
	if err := c.Delete(ctx, "k"); err != nil {
		t.Errorf("second Delete: %v", err)
	}
}

func TestFileCacheExpiration(t *testing.T) {
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()

	// Only positive TTLs set expiration metadata.
	if err := c.Set(ctx, "k", []byte("v"), -time.Second); err != nil {
		t.Fatal(err)
	}
	if _, ok, _ := c.Get(ctx, "k"); !ok {
		t.Error("entry with non-positive TTL should not expire")
	}

	if err := c.Set(ctx, "short", []byte("v"), time.Nanosecond); err != nil {
		t.Fatal(err)
	}
	time.Sleep(10 * time.Millisecond)
	if _, ok, _ := c.Get(ctx, "short"); ok {
		t.Error("expired entry should be a miss")
	}
}

func TestMemoryCache(t *testing.T) {
	c := NewMemoryCache()
	ctx := context.Background()

	if err := c.Set(ctx, "a", []byte("1"), 0); err != nil {
		t.Fatal(err)
	}
	if err := c.Set(ctx, "b", []byte("2"), time.Nanosecond); err != nil {
		t.Fatal(err)
	}
	time.Sleep(10 * time.Millisecond)

	if data, ok, _ := c.Get(ctx, "a"); !ok || string(data) != "1" {
		t.Errorf("Get(a) = %q ok=%v", data, ok)
	}
	if _, ok, _ := c.Get(ctx, "b"); ok {
		t.Error("expired entry should be a miss")
	}

	if err := c.Delete(ctx, "a"); err != nil {
		t.Fatal(err)
	}
	if c.Len() != 0 {
		t.Errorf("Len = %d, want 0", c.Len())
	}
}

func TestNullCache(t *testing.T) {
	c := NewNullCache()
	ctx := context.Background()

	if err := c.Set(ctx, "k", []byte("v"), time.Hour); err != nil {
		t.Fatal(err)
	}
	if _, ok, _ := c.Get(ctx, "k"); ok {
		t.Error("null cache should never hit")
	}
}

func TestKeys(t *testing.T) {
	k1 := TraceKey(3, 0, 2, 1)
	k2 := TraceKey(3, 0, 2, 1)
	k3 := TraceKey(4, 0, 2, 1)

	if k1 != k2 {
		t.Error("identical parameters should produce identical keys")
	}
	if k1 == k3 {
		t.Error("different parameters should produce different keys")
	}
	if k1 == MovesKey(3, 0, 2, 1) {
		t.Error("trace and moves keys must not collide")
	}

	a1 := ArtifactKey(3, 0, 2, 1, ArtifactKeyOpts{VizType: "tree", Format: "svg", Highlight: 5})
	a2 := ArtifactKey(3, 0, 2, 1, ArtifactKeyOpts{VizType: "tree", Format: "svg", Highlight: 6})
	if a1 == a2 {
		t.Error("differing highlight timestamps must produce different keys")
	}
}
