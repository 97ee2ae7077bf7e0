// Package cache stores rendered artifacts so that unchanged scenes are not
// rendered twice.
//
// A [Cache] is a byte store with expiration. Keys are produced by a [Keyer]
// from a hash of the scene file and the render options, so any change to
// either yields a new key.
//
// [FileCache] persists entries across runs. [MemoryCache] keeps recent
// entries in process and is stacked in front of a file cache with
// [NewLayered].
//
//	c, _ := cache.NewFileCache(dir)
//	keyer := cache.NewScopedKeyer(cache.NewDefaultKeyer(), "v1.2.0")
//	key := keyer.RenderKey(cache.Hash(sceneBytes), cache.RenderKeyOpts{Format: "svg"})
//	if data, hit, _ := c.Get(ctx, key); hit {
//	    return data
//	}
package cache

import (
	"context"
	"time"

	"github.com/matzehuels/anchorgraph/pkg/observability"
)

// Cache is a byte store with per-entry expiration.
type Cache interface {
	// Get returns the data stored under key. A missing or expired entry is
	// reported as a miss, not as an error.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A zero ttl never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes the entry stored under key, if any.
	Delete(ctx context.Context, key string) error

	// Close releases resources held by the cache.
	Close() error
}

// Keyer derives cache keys.
type Keyer interface {
	// RenderKey returns the key of an artifact rendered from the scene with
	// the given hash.
	RenderKey(sceneHash string, opts RenderKeyOpts) string
}

// RenderKeyOpts lists the render options that change the artifact.
type RenderKeyOpts struct {
	Format   string `json:"format"`
	Detailed bool   `json:"detailed"`
	Chains   bool   `json:"chains"`
}

// DefaultKeyer hashes the render options together with the scene hash.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the default keyer.
func NewDefaultKeyer() Keyer {
	return DefaultKeyer{}
}

// RenderKey implements Keyer.
func (DefaultKeyer) RenderKey(sceneHash string, opts RenderKeyOpts) string {
	return hashKey("render", sceneHash, opts)
}

// instrumented reports hits, misses and writes to the observability hooks.
type instrumented struct {
	Cache
	keyType string
}

// WithHooks wraps c so that every Get and Set is reported to
// [observability.Cache] under keyType.
func WithHooks(c Cache, keyType string) Cache {
	return &instrumented{Cache: c, keyType: keyType}
}

func (c *instrumented) Get(ctx context.Context, key string) ([]byte, bool, error) {
	data, hit, err := c.Cache.Get(ctx, key)
	if err == nil {
		if hit {
			observability.Cache().OnCacheHit(ctx, c.keyType)
		} else {
			observability.Cache().OnCacheMiss(ctx, c.keyType)
		}
	}
	return data, hit, err
}

func (c *instrumented) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	if err := c.Cache.Set(ctx, key, data, ttl); err != nil {
		return err
	}
	observability.Cache().OnCacheSet(ctx, c.keyType, len(data))
	return nil
}
