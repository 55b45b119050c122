// Package cache provides a generic thread-safe LRU cache and an HTTP
// middleware that keeps rendered pages in it.
//
// LRUCache evicts the least recently used entry once capacity is reached and
// counts hits and misses:
//
//	c := cache.NewLRUCache[string, []byte](256)
//	c.Put("/en/courses", body)
//	body, ok := c.Get("/en/courses")
//
// PageCache stores successful GET responses keyed by request URI. Site
// content never changes after startup, so entries are only dropped by LRU
// eviction or an optional TTL.
//
//	r.Use(cache.PageCache(cache.NewLRUCache[string, *cache.Page](256)))
package cache
