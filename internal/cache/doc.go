// Package cache implements a single-process, in-memory key–value cache
// bounded by entry count, with least-recently-used eviction.
//
// Goals for this package:
//   - Make the core data structures explicit (map + doubly-linked list)
//   - Provide O(1) Put/Get/Delete via map index + recency pointers
//   - Enforce a strict capacity bound: eviction happens on insert, never later
//   - Be concurrency-safe with a single lock guarding index and order together
//   - Keep every operation synchronous and non-blocking (no goroutines, no I/O)
package cache
