package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"lrucache/internal/cache"
)

func main() {
	// Signal-aware context so a Ctrl+C during the walkthrough exits cleanly.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	c, err := cache.New(cache.Config[string, int]{
		Capacity: 3,
		OnEvict: func(key string, value int) {
			log.Printf("evicted %s=%d (least recently used)", key, value)
		},
	})
	if err != nil {
		log.Fatalf("cache new: %v", err)
	}

	log.Println("lrucache demo starting")
	log.Printf("config: capacity=%d", c.Cap())

	// -------------------------------------------------------------------
	// 1) Eviction picks the least recently used key, not the oldest insert
	// -------------------------------------------------------------------
	c.Put("A", 1)
	c.Put("B", 2)
	c.Put("C", 3)

	// Touch A so B becomes the eviction candidate.
	if v, ok := c.Get("A"); ok {
		log.Printf("GET A = %d (touches A -> MRU)", v)
	}

	// Insert D => cache overflows and evicts LRU (expected: B).
	c.Put("D", 4)
	if !c.Contains("B") {
		log.Println("GET B: missing (evicted as LRU)")
	}
	log.Printf("keys after eviction (MRU->LRU): %v", c.Keys())

	// -------------------------------------------------------------------
	// 2) Peek and Contains inspect without disturbing recency
	// -------------------------------------------------------------------
	if v, ok := c.Peek("C"); ok {
		log.Printf("PEEK C = %d (order unchanged)", v)
	}
	log.Printf("keys after peek (MRU->LRU): %v", c.Keys())

	// -------------------------------------------------------------------
	// 3) Delete is explicit removal, not an eviction
	// -------------------------------------------------------------------
	log.Printf("DELETE C: removed=%v", c.Delete("C"))
	log.Printf("DELETE C again: removed=%v", c.Delete("C"))
	log.Printf("keys after delete (MRU->LRU): %v", c.Keys())

	select {
	case <-ctx.Done():
		log.Println("received shutdown signal")
		return
	default:
	}

	// -------------------------------------------------------------------
	// 4) Purge drops everything; stats summarize the session
	// -------------------------------------------------------------------
	c.Purge()
	log.Printf("len after purge: %d", c.Len())

	s := c.Stats()
	log.Printf("stats: hits=%d misses=%d evictions=%d hitRate=%.2f",
		s.Hits, s.Misses, s.Evictions, s.HitRate())

	fmt.Println("Done.")
}
