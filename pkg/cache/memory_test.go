package cache

import (
	"context"
	"testing"
	"time"
)

func TestMemoryCache(t *testing.T) {
	ctx := context.Background()
	c, err := NewMemoryCache(2)
	if err != nil {
		t.Fatalf("NewMemoryCache: %v", err)
	}
	defer c.Close()

	for _, key := range []string{"a", "b", "c"} {
		if err := c.Set(ctx, key, []byte(key), 0); err != nil {
			t.Fatalf("Set(%s): %v", key, err)
		}
	}
	if c.Len() != 2 {
		t.Errorf("Len() = %d, want 2", c.Len())
	}
	if _, hit, _ := c.Get(ctx, "a"); hit {
		t.Error("least recently used entry was not evicted")
	}
	if data, hit, _ := c.Get(ctx, "c"); !hit || string(data) != "c" {
		t.Errorf("Get(c) = %q, %v", data, hit)
	}

	c.Delete(ctx, "c")
	if _, hit, _ := c.Get(ctx, "c"); hit {
		t.Error("entry present after Delete")
	}
}

func TestMemoryCacheExpiration(t *testing.T) {
	ctx := context.Background()
	c, err := NewMemoryCache(4)
	if err != nil {
		t.Fatal(err)
	}

	c.Set(ctx, "key", []byte("data"), time.Nanosecond)
	time.Sleep(time.Millisecond)
	if _, hit, _ := c.Get(ctx, "key"); hit {
		t.Error("expired entry returned as hit")
	}
	if c.Len() != 0 {
		t.Error("expired entry not removed")
	}
}

func TestNewMemoryCacheInvalidSize(t *testing.T) {
	if _, err := NewMemoryCache(0); err == nil {
		t.Error("NewMemoryCache(0) succeeded")
	}
}

func TestLayered(t *testing.T) {
	ctx := context.Background()
	front, err := NewMemoryCache(DefaultMemoryEntries)
	if err != nil {
		t.Fatal(err)
	}
	back, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	c := NewLayered(front, back)

	if err := back.Set(ctx, "old", []byte("from disk"), 0); err != nil {
		t.Fatal(err)
	}
	data, hit, err := c.Get(ctx, "old")
	if err != nil || !hit || string(data) != "from disk" {
		t.Fatalf("Get(old) = %q, %v, %v", data, hit, err)
	}
	if _, hit, _ := front.Get(ctx, "old"); !hit {
		t.Error("back hit was not copied to the front")
	}

	if err := c.Set(ctx, "new", []byte("fresh"), time.Hour); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if _, hit, _ := back.Get(ctx, "new"); !hit {
		t.Error("Set skipped the back cache")
	}

	if err := c.Delete(ctx, "new"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, hit, _ := c.Get(ctx, "new"); hit {
		t.Error("entry present after Delete")
	}
	if _, hit, _ := c.Get(ctx, "missing"); hit {
		t.Error("missing key reported as hit")
	}
	if err := c.Close(); err != nil {
		t.Errorf("Close: %v", err)
	}
}
