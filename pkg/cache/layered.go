package cache

import (
	"context"
	"errors"
	"time"
)

// Layered reads through a fast front cache to a slower back cache. Hits in
// the back are copied to the front without an expiry, so the front must not
// outlive the process.
type Layered struct {
	front, back Cache
}

var _ Cache = (*Layered)(nil)

// NewLayered stacks front over back.
func NewLayered(front, back Cache) *Layered {
	return &Layered{front: front, back: back}
}

// Get implements Cache.
func (c *Layered) Get(ctx context.Context, key string) ([]byte, bool, error) {
	if data, hit, err := c.front.Get(ctx, key); err == nil && hit {
		return data, true, nil
	}
	data, hit, err := c.back.Get(ctx, key)
	if err != nil || !hit {
		return nil, false, err
	}
	_ = c.front.Set(ctx, key, data, 0)
	return data, true, nil
}

// Set implements Cache. Both layers are written.
func (c *Layered) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	return errors.Join(c.front.Set(ctx, key, data, ttl), c.back.Set(ctx, key, data, ttl))
}

// Delete implements Cache.
func (c *Layered) Delete(ctx context.Context, key string) error {
	return errors.Join(c.front.Delete(ctx, key), c.back.Delete(ctx, key))
}

// Close implements Cache.
func (c *Layered) Close() error {
	return errors.Join(c.front.Close(), c.back.Close())
}
