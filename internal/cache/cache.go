package cache

import (
	"container/list"
	"errors"
	"sync"
)

// Config controls cache capacity and eviction notification.
//
// Capacity is the maximum number of entries the cache will hold. It must be
// at least 1; New rejects anything smaller. The bound is fixed for the life
// of the cache; there is no resize.
//
// OnEvict, if non-nil, is called with the victim's key and value whenever an
// entry is removed to make room (capacity eviction) or dropped by Purge.
// It is NOT called for Delete or when Put replaces an existing value.
// OnEvict runs while the cache lock is held, so it must not call back into
// the cache.
type Config[K comparable, V any] struct {
	Capacity int
	OnEvict  func(key K, value V)
}

// ErrInvalidCapacity is returned by New when Config.Capacity is less than 1.
var ErrInvalidCapacity = errors.New("cache: capacity must be at least 1")

// Cache is a concurrency-safe, fixed-capacity key–value cache with LRU
// eviction.
//
// The core design is intentionally explicit and "mechanical":
// a map gives O(1) key lookup, and a doubly-linked list maintains recency
// ordering. Both are updated together under a single mutex, since an index
// entry without a matching list node (or vice versa) is never a valid state.
//
// A plain Mutex rather than an RWMutex: every hit mutates the recency list,
// so there is no read path that could share the lock.
type Cache[K comparable, V any] struct {
	mu sync.Mutex

	capacity int
	items    map[K]*list.Element
	order    *list.List // Front = most recently used (MRU), Back = least recently used (LRU)

	onEvict func(K, V)
	stats   Stats
}

// entry is the value stored in the recency list elements.
// We keep the key here because eviction starts from list nodes.
type entry[K comparable, V any] struct {
	key   K
	value V
}

// New constructs a cache with the given configuration.
//
// It fails with ErrInvalidCapacity if cfg.Capacity < 1; a cache that cannot
// hold a single entry (or is silently unbounded) is a configuration mistake,
// not something to paper over.
func New[K comparable, V any](cfg Config[K, V]) (*Cache[K, V], error) {
	if cfg.Capacity < 1 {
		return nil, ErrInvalidCapacity
	}

	return &Cache[K, V]{
		capacity: cfg.Capacity,
		items:    make(map[K]*list.Element, cfg.Capacity),
		order:    list.New(),
		onEvict:  cfg.OnEvict,
	}, nil
}

// Put writes/overwrites a key and marks it most recently used.
//
// If the key is new and the cache is full, the least-recently-used entry is
// evicted first, so the size bound holds before and after every call.
//
// Complexity:
//   - O(1) to locate/insert
//   - O(1) for the single possible eviction
func (c *Cache[K, V]) Put(key K, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if el, ok := c.items[key]; ok {
		e := el.Value.(*entry[K, V])
		e.value = value

		// Updating counts as use; move to MRU.
		c.order.MoveToFront(el)
		return
	}

	if len(c.items) >= c.capacity {
		c.evictOldestLocked()
	}

	el := c.order.PushFront(&entry[K, V]{key: key, value: value})
	c.items[key] = el
}

// Get reads a key and, on a hit, promotes it to most recently used.
//
// A miss returns the zero value and false. Absence is reported through the
// second return so callers can tell "stored zero value" from "not there".
func (c *Cache[K, V]) Get(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	el, ok := c.items[key]
	if !ok {
		c.stats.Misses++
		var zero V
		return zero, false
	}

	c.stats.Hits++
	c.order.MoveToFront(el)
	return el.Value.(*entry[K, V]).value, true
}

// Peek reads a key without touching its recency.
//
// Useful for inspection: unlike Get, a Peek never changes which entry the
// next eviction picks. Peek does not count toward hit/miss statistics.
func (c *Cache[K, V]) Peek(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	el, ok := c.items[key]
	if !ok {
		var zero V
		return zero, false
	}
	return el.Value.(*entry[K, V]).value, true
}

// Contains reports whether a key is present, without touching its recency.
func (c *Cache[K, V]) Contains(key K) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	_, ok := c.items[key]
	return ok
}

// Delete removes a key if present and reports whether a removal occurred.
//
// Other entries keep their relative recency order, and OnEvict is not
// invoked: an explicit removal is the caller's decision, not an eviction.
func (c *Cache[K, V]) Delete(key K) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	el, ok := c.items[key]
	if !ok {
		return false
	}
	c.removeLocked(el)
	return true
}

// Purge drops every entry, invoking OnEvict for each.
//
// The capacity is unchanged; the cache remains usable afterwards.
func (c *Cache[K, V]) Purge() {
	c.mu.Lock()
	defer c.mu.Unlock()

	for el := c.order.Back(); el != nil; el = c.order.Back() {
		e := el.Value.(*entry[K, V])
		c.removeLocked(el)
		if c.onEvict != nil {
			c.onEvict(e.key, e.value)
		}
	}
}

// Len returns the number of currently stored entries.
func (c *Cache[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

// Cap returns the configured capacity.
func (c *Cache[K, V]) Cap() int {
	return c.capacity
}

// Keys returns keys in MRU -> LRU order.
//
// This is a debug/inspection helper; it does not change recency.
func (c *Cache[K, V]) Keys() []K {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]K, 0, c.order.Len())
	for el := c.order.Front(); el != nil; el = el.Next() {
		out = append(out, el.Value.(*entry[K, V]).key)
	}
	return out
}

// evictOldestLocked removes the LRU entry and notifies OnEvict.
//
// Callers hold c.mu and have already established that an eviction is needed.
func (c *Cache[K, V]) evictOldestLocked() {
	el := c.order.Back()
	if el == nil {
		return
	}
	e := el.Value.(*entry[K, V])
	c.removeLocked(el)
	c.stats.Evictions++
	if c.onEvict != nil {
		c.onEvict(e.key, e.value)
	}
}

func (c *Cache[K, V]) removeLocked(el *list.Element) {
	delete(c.items, el.Value.(*entry[K, V]).key)
	c.order.Remove(el)
}
