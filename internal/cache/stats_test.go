package cache

import "testing"

func TestStatsCounters(t *testing.T) {
	c := mustNew(t, Config[string, int]{Capacity: 2})

	c.Put("a", 1)
	c.Put("b", 2)

	c.Get("a")       // hit
	c.Get("a")       // hit
	c.Get("missing") // miss
	c.Peek("b")      // not counted
	c.Contains("b")  // not counted

	c.Put("c", 3) // evicts b

	s := c.Stats()
	if s.Hits != 2 {
		t.Fatalf("Hits = %d, want 2", s.Hits)
	}
	if s.Misses != 1 {
		t.Fatalf("Misses = %d, want 1", s.Misses)
	}
	if s.Evictions != 1 {
		t.Fatalf("Evictions = %d, want 1", s.Evictions)
	}
}

func TestStatsHitRate(t *testing.T) {
	var zero Stats
	if got := zero.HitRate(); got != 0 {
		t.Fatalf("HitRate() on zero stats = %v, want 0", got)
	}

	s := Stats{Hits: 3, Misses: 1}
	if got := s.HitRate(); got != 0.75 {
		t.Fatalf("HitRate() = %v, want 0.75", got)
	}
}

func TestStatsNotCountedForDeleteOrPurge(t *testing.T) {
	c := mustNew(t, Config[string, int]{Capacity: 4})

	c.Put("a", 1)
	c.Put("b", 2)
	c.Delete("a")
	c.Purge()

	s := c.Stats()
	if s.Evictions != 0 {
		t.Fatalf("Evictions = %d, want 0 (Delete/Purge are not capacity evictions)", s.Evictions)
	}
}
