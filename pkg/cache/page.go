package cache

import (
	"bytes"
	"maps"
	"net/http"
	"slices"
	"time"
)

// Page is a cached response.
type Page struct {
	Status   int
	Header   http.Header
	Body     []byte
	StoredAt time.Time
}

// PageCacheOption configures PageCache.
type PageCacheOption func(*pageCacheConfig)

type pageCacheConfig struct {
	ttl     time.Duration
	key     func(*http.Request) string
	skip    func(*http.Request) bool
	onHit   func(*http.Request)
	onMiss  func(*http.Request)
	maxSize int
	now     func() time.Time
}

// WithTTL expires entries older than d. Zero keeps them until eviction.
func WithTTL(d time.Duration) PageCacheOption {
	return func(c *pageCacheConfig) { c.ttl = d }
}

// WithKeyFunc overrides the cache key, which defaults to the request URI.
func WithKeyFunc(fn func(*http.Request) string) PageCacheOption {
	return func(c *pageCacheConfig) {
		if fn != nil {
			c.key = fn
		}
	}
}

// WithSkipper bypasses the cache for requests fn returns true for.
func WithSkipper(fn func(*http.Request) bool) PageCacheOption {
	return func(c *pageCacheConfig) { c.skip = fn }
}

// WithHitHook and WithMissHook observe cache lookups.
func WithHitHook(fn func(*http.Request)) PageCacheOption {
	return func(c *pageCacheConfig) { c.onHit = fn }
}

func WithMissHook(fn func(*http.Request)) PageCacheOption {
	return func(c *pageCacheConfig) { c.onMiss = fn }
}

// WithMaxBodySize skips storing bodies larger than n bytes.
func WithMaxBodySize(n int) PageCacheOption {
	return func(c *pageCacheConfig) { c.maxSize = n }
}

// WithClock replaces time.Now, for tests.
func WithClock(now func() time.Time) PageCacheOption {
	return func(c *pageCacheConfig) {
		if now != nil {
			c.now = now
		}
	}
}

// PageCache serves repeated GET and HEAD requests from store. Only 200
// responses without Set-Cookie are stored. Responses carry an X-Cache header
// of HIT or MISS.
func PageCache(store *LRUCache[string, *Page], opts ...PageCacheOption) func(http.Handler) http.Handler {
	cfg := &pageCacheConfig{
		key:     func(r *http.Request) string { return r.URL.RequestURI() },
		maxSize: 1 << 20,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if store == nil || (r.Method != http.MethodGet && r.Method != http.MethodHead) || (cfg.skip != nil && cfg.skip(r)) {
				next.ServeHTTP(w, r)
				return
			}

			key := cfg.key(r)
			if page, ok := store.Get(key); ok {
				if cfg.ttl <= 0 || cfg.now().Sub(page.StoredAt) < cfg.ttl {
					if cfg.onHit != nil {
						cfg.onHit(r)
					}
					writePage(w, r, page)
					return
				}
				store.Remove(key)
			}

			if cfg.onMiss != nil {
				cfg.onMiss(r)
			}

			before := w.Header().Clone()
			rec := &recorder{ResponseWriter: w, status: http.StatusOK}
			w.Header().Set("X-Cache", "MISS")
			next.ServeHTTP(rec, r)

			if rec.status != http.StatusOK || r.Method != http.MethodGet || rec.overflow(cfg.maxSize) {
				return
			}
			if w.Header().Get("Set-Cookie") != "" {
				return
			}

			header := addedHeaders(before, w.Header())
			header.Del("X-Cache")
			store.Put(key, &Page{
				Status:   rec.status,
				Header:   header,
				Body:     bytes.Clone(rec.body.Bytes()),
				StoredAt: cfg.now(),
			})
		})
	}
}

// addedHeaders returns the entries next set or changed. Headers written by
// outer middleware, such as request ids, belong to each request.
func addedHeaders(before, after http.Header) http.Header {
	added := make(http.Header, len(after))
	for k, v := range after {
		if !slices.Equal(before[k], v) {
			added[k] = slices.Clone(v)
		}
	}
	return added
}

func writePage(w http.ResponseWriter, r *http.Request, page *Page) {
	maps.Copy(w.Header(), page.Header)
	w.Header().Set("X-Cache", "HIT")
	w.WriteHeader(page.Status)
	if r.Method != http.MethodHead {
		_, _ = w.Write(page.Body)
	}
}

// recorder tees the response into a buffer while writing it through.
type recorder struct {
	http.ResponseWriter
	status      int
	wroteHeader bool
	body        bytes.Buffer
	size        int
}

func (r *recorder) WriteHeader(code int) {
	if !r.wroteHeader {
		r.status = code
		r.wroteHeader = true
	}
	r.ResponseWriter.WriteHeader(code)
}

func (r *recorder) Write(b []byte) (int, error) {
	if !r.wroteHeader {
		r.WriteHeader(http.StatusOK)
	}
	r.size += len(b)
	r.body.Write(b)
	return r.ResponseWriter.Write(b)
}

func (r *recorder) overflow(limit int) bool {
	return limit > 0 && r.size > limit
}

// Unwrap lets http.ResponseController reach the underlying writer.
func (r *recorder) Unwrap() http.ResponseWriter {
	return r.ResponseWriter
}
