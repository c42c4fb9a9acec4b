package detector

import (
	"context"
	"sync"

	"tzdetect/internal/adapters/lookup"

	"golang.org/x/sync/singleflight"
)

// requestCache memoizes lookup results by exact request URL for the detector's lifetime.
// Empty results are kept; failures are not. There is no eviction
type requestCache struct {
	mu      sync.RWMutex
	entries map[string]lookup.Result
	group   singleflight.Group
}

func newRequestCache() *requestCache {
	return &requestCache{entries: map[string]lookup.Result{}}
}

// getOrCompute returns the cached result for key or runs compute once, sharing it with concurrent callers.
// The shared compute runs on a context detached from any one caller's cancellation so a caller that
// gives up does not fail the others; each caller still stops waiting when its own ctx is done.
// hit reports whether the result came from the cache
func (c *requestCache) getOrCompute(ctx context.Context, key string, compute func(context.Context) (lookup.Result, error)) (res lookup.Result, hit bool, err error) {
	c.mu.RLock()
	res, hit = c.entries[key]
	c.mu.RUnlock()
	if hit {
		return res, true, nil
	}

	shared := context.WithoutCancel(ctx)
	ch := c.group.DoChan(key, func() (any, error) {
		c.mu.RLock()
		cached, ok := c.entries[key]
		c.mu.RUnlock()
		if ok {
			return cached, nil
		}
		r, err := compute(shared)
		if err != nil {
			return nil, err
		}
		if r == nil {
			r = lookup.Result{}
		}
		c.mu.Lock()
		c.entries[key] = r
		c.mu.Unlock()
		return r, nil
	})

	select {
	case <-ctx.Done():
		return nil, false, ctx.Err()
	case out := <-ch:
		if out.Err != nil {
			return nil, false, out.Err
		}
		return out.Val.(lookup.Result), false, nil
	}
}

func (c *requestCache) len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
