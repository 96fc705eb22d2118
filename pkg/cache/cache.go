package cache

import (
	"container/list"
	"fmt"
	"sync"

	"golang.org/x/sync/singleflight"
)

type entry[V any] struct {
	value V
	key   string
}

// LRU is an in-memory cache of values that never expire by time.
// With a size limit configured, the least recently used unpinned entry is
// evicted on insert. It is safe for concurrent use.
type LRU[V any] struct {
	items    map[string]*list.Element
	eviction *list.List
	opts     *options
	onEvict  func(key string, value V)
	group    singleflight.Group
	mu       sync.Mutex
	unpinned int
}

// New creates an LRU cache.
//
// Example:
//
//	c := cache.New[[]Country](
//	    cache.WithMaxEntries(64),
//	    cache.WithPinned("en"),
//	)
func New[V any](opts ...Option) *LRU[V] {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	return &LRU[V]{
		items:    make(map[string]*list.Element),
		eviction: list.New(),
		opts:     o,
	}
}

// SetEvictCallback sets a function called whenever an entry leaves the cache
// through eviction, deletion or clearing. It runs after the cache lock is
// released, so it may call back into the cache.
func (c *LRU[V]) SetEvictCallback(fn func(key string, value V)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onEvict = fn
}

// Get returns the value for key and marks it as recently used.
// Returns ErrNotFound on a miss.
func (c *LRU[V]) Get(key string) (V, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	elem, ok := c.items[key]
	if !ok {
		var zero V
		return zero, ErrNotFound
	}

	c.eviction.MoveToFront(elem)
	return elem.Value.(*entry[V]).value, nil
}

// Set stores value under key, replacing any previous value.
func (c *LRU[V]) Set(key string, value V) {
	c.mu.Lock()

	if elem, ok := c.items[key]; ok {
		elem.Value.(*entry[V]).value = value
		c.eviction.MoveToFront(elem)
		c.mu.Unlock()
		return
	}

	var evicted *entry[V]
	pinned := c.opts.pinned[key]
	if !pinned && c.opts.maxEntries > 0 && c.unpinned >= c.opts.maxEntries {
		evicted = c.evictOldest()
	}

	c.items[key] = c.eviction.PushFront(&entry[V]{key: key, value: value})
	if !pinned {
		c.unpinned++
	}
	fn := c.onEvict
	c.mu.Unlock()

	if evicted != nil {
		notify(fn, evicted)
	}
}

// Delete removes key from the cache.
func (c *LRU[V]) Delete(key string) {
	c.mu.Lock()
	elem, ok := c.items[key]
	if !ok {
		c.mu.Unlock()
		return
	}
	removed := c.removeElement(elem)
	fn := c.onEvict
	c.mu.Unlock()

	notify(fn, removed)
}

// Has reports whether key is cached without touching its recency.
func (c *LRU[V]) Has(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	_, ok := c.items[key]
	return ok
}

// Len returns the number of cached entries, pinned ones included.
func (c *LRU[V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.items)
}

// Keys returns cached keys, most recently used first.
func (c *LRU[V]) Keys() []string {
	c.mu.Lock()
	defer c.mu.Unlock()

	keys := make([]string, 0, len(c.items))
	for elem := c.eviction.Front(); elem != nil; elem = elem.Next() {
		keys = append(keys, elem.Value.(*entry[V]).key)
	}
	return keys
}

// Clear removes every entry.
func (c *LRU[V]) Clear() {
	c.mu.Lock()
	removed := make([]*entry[V], 0, len(c.items))
	for elem := c.eviction.Front(); elem != nil; elem = elem.Next() {
		removed = append(removed, elem.Value.(*entry[V]))
	}
	c.items = make(map[string]*list.Element)
	c.eviction.Init()
	c.unpinned = 0
	fn := c.onEvict
	c.mu.Unlock()

	for _, e := range removed {
		notify(fn, e)
	}
}

// GetOrLoad returns the cached value for key, or calls load to compute it on a miss.
// Concurrent misses for the same key share a single call to load.
// A load error is returned as is and nothing is cached.
func (c *LRU[V]) GetOrLoad(key string, load func() (V, error)) (V, error) {
	if v, err := c.Get(key); err == nil {
		return v, nil
	}
	if load == nil {
		var zero V
		return zero, ErrNilLoader
	}

	v, err, _ := c.group.Do(key, func() (any, error) {
		if v, err := c.Get(key); err == nil {
			return v, nil
		}
		val, err := load()
		if err != nil {
			return nil, err
		}
		c.Set(key, val)
		return val, nil
	})
	if err != nil {
		var zero V
		return zero, fmt.Errorf("loading %q: %w", key, err)
	}

	return v.(V), nil
}

// evictOldest removes the least recently used unpinned entry and returns it,
// or nil when every entry is pinned.
// Caller must hold the mutex.
func (c *LRU[V]) evictOldest() *entry[V] {
	for elem := c.eviction.Back(); elem != nil; elem = elem.Prev() {
		if !c.opts.pinned[elem.Value.(*entry[V]).key] {
			return c.removeElement(elem)
		}
	}
	return nil
}

// removeElement unlinks elem and returns its entry.
// Caller must hold the mutex.
func (c *LRU[V]) removeElement(elem *list.Element) *entry[V] {
	c.eviction.Remove(elem)
	e := elem.Value.(*entry[V])
	delete(c.items, e.key)
	if !c.opts.pinned[e.key] {
		c.unpinned--
	}
	return e
}

// notify hands a removed entry to the eviction callback.
// Caller must not hold the mutex.
func notify[V any](fn func(key string, value V), e *entry[V]) {
	if fn != nil {
		fn(e.key, e.value)
	}
}
