package summary

import "sync"

// Cache memoizes summary results by canonical request key for its whole
// lifetime: no eviction, no expiry. It guarantees at most one in-flight
// computation per key; concurrent callers for the same key all observe the
// single underlying computation. A failed computation leaves its key empty so
// a later call retries instead of replaying the failure.
type Cache struct {
	mu      sync.Mutex
	entries map[string]*cacheEntry
}

type cacheEntry struct {
	done chan struct{}
	res  *Result
	err  error
}

func NewCache() *Cache {
	return &Cache{entries: make(map[string]*cacheEntry)}
}

// GetOrCompute returns the memoized result for key, invoking fn at most once
// per key across concurrent callers.
func (c *Cache) GetOrCompute(key string, fn func() (*Result, error)) (*Result, error) {
	c.mu.Lock()
	if e, ok := c.entries[key]; ok {
		c.mu.Unlock()
		<-e.done
		return e.res, e.err
	}
	e := &cacheEntry{done: make(chan struct{})}
	c.entries[key] = e
	c.mu.Unlock()

	e.res, e.err = fn()
	if e.err != nil {
		c.mu.Lock()
		delete(c.entries, key)
		c.mu.Unlock()
	}
	close(e.done)
	return e.res, e.err
}

// Peek returns the resolved result stored for key, if any, without triggering
// or waiting on a computation.
func (c *Cache) Peek(key string) (*Result, bool) {
	c.mu.Lock()
	e, ok := c.entries[key]
	c.mu.Unlock()
	if !ok {
		return nil, false
	}
	select {
	case <-e.done:
	default:
		return nil, false
	}
	if e.err != nil {
		return nil, false
	}
	return e.res, true
}
