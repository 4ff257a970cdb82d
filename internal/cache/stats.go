package cache

// Stats is a snapshot of cache effectiveness counters.
//
// Hits and Misses count Get outcomes (Peek and Contains are deliberately
// excluded, since they exist for inspection rather than lookup traffic).
// Evictions counts entries removed to make room; Delete and Purge are not
// evictions in this sense.
//
// The struct carries no locking of its own: counters are maintained under
// the cache lock and Stats returns a copy.
type Stats struct {
	Hits      uint64
	Misses    uint64
	Evictions uint64
}

// HitRate returns Hits / (Hits + Misses), or 0 before any lookup.
func (s Stats) HitRate() float64 {
	total := s.Hits + s.Misses
	if total == 0 {
		return 0
	}
	return float64(s.Hits) / float64(total)
}

// Stats returns a consistent snapshot of the counters.
func (c *Cache[K, V]) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stats
}
