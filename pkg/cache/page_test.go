package cache_test

import (
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vibecoders/site/pkg/cache"
)

func countingHandler(calls *atomic.Int32, status int) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(status)
		_, _ = w.Write([]byte("page " + r.URL.Path))
	})
}

func doGet(h http.Handler, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestPageCache_HitAndMiss(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	var hits, misses atomic.Int32
	store := cache.NewLRUCache[string, *cache.Page](8)
	h := cache.PageCache(store,
		cache.WithHitHook(func(*http.Request) { hits.Add(1) }),
		cache.WithMissHook(func(*http.Request) { misses.Add(1) }),
	)(countingHandler(&calls, http.StatusOK))

	first := doGet(h, "/en/courses")
	assert.Equal(t, "MISS", first.Header().Get("X-Cache"))
	assert.Equal(t, "page /en/courses", first.Body.String())

	second := doGet(h, "/en/courses")
	assert.Equal(t, "HIT", second.Header().Get("X-Cache"))
	assert.Equal(t, "page /en/courses", second.Body.String())
	assert.Equal(t, "text/html; charset=utf-8", second.Header().Get("Content-Type"))

	other := doGet(h, "/ko/courses")
	assert.Equal(t, "MISS", other.Header().Get("X-Cache"))

	assert.Equal(t, int32(2), calls.Load())
	assert.Equal(t, int32(1), hits.Load())
	assert.Equal(t, int32(2), misses.Load())
	assert.Equal(t, 2, store.Len())
}

func TestPageCache_SkipsNonCacheable(t *testing.T) {
	t.Parallel()

	t.Run("non 200", func(t *testing.T) {
		t.Parallel()
		var calls atomic.Int32
		store := cache.NewLRUCache[string, *cache.Page](8)
		h := cache.PageCache(store)(countingHandler(&calls, http.StatusNotFound))
		doGet(h, "/en/courses/missing")
		doGet(h, "/en/courses/missing")
		assert.Equal(t, int32(2), calls.Load())
		assert.Zero(t, store.Len())
	})

	t.Run("set cookie", func(t *testing.T) {
		t.Parallel()
		store := cache.NewLRUCache[string, *cache.Page](8)
		h := cache.PageCache(store)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			http.SetCookie(w, &http.Cookie{Name: "NEXT_LOCALE", Value: "ko"})
			_, _ = w.Write([]byte("ok"))
		}))
		doGet(h, "/_locale/ko")
		assert.Zero(t, store.Len())
	})

	t.Run("post", func(t *testing.T) {
		t.Parallel()
		var calls atomic.Int32
		store := cache.NewLRUCache[string, *cache.Page](8)
		h := cache.PageCache(store)(countingHandler(&calls, http.StatusOK))
		for range 2 {
			h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/en", nil))
		}
		assert.Equal(t, int32(2), calls.Load())
	})

	t.Run("skipper", func(t *testing.T) {
		t.Parallel()
		var calls atomic.Int32
		store := cache.NewLRUCache[string, *cache.Page](8)
		h := cache.PageCache(store, cache.WithSkipper(func(r *http.Request) bool {
			return r.URL.Path == "/en/live"
		}))(countingHandler(&calls, http.StatusOK))
		doGet(h, "/en/live")
		doGet(h, "/en/live")
		assert.Equal(t, int32(2), calls.Load())
	})

	t.Run("body too large", func(t *testing.T) {
		t.Parallel()
		var calls atomic.Int32
		store := cache.NewLRUCache[string, *cache.Page](8)
		h := cache.PageCache(store, cache.WithMaxBodySize(4))(countingHandler(&calls, http.StatusOK))
		doGet(h, "/en/courses")
		assert.Zero(t, store.Len())
	})

	t.Run("nil store", func(t *testing.T) {
		t.Parallel()
		var calls atomic.Int32
		h := cache.PageCache(nil)(countingHandler(&calls, http.StatusOK))
		rec := doGet(h, "/en")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Empty(t, rec.Header().Get("X-Cache"))
	})
}

func TestPageCache_HeadServedFromCache(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	store := cache.NewLRUCache[string, *cache.Page](8)
	h := cache.PageCache(store)(countingHandler(&calls, http.StatusOK))

	doGet(h, "/en")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodHead, "/en", nil))

	assert.Equal(t, "HIT", rec.Header().Get("X-Cache"))
	assert.Empty(t, rec.Body.String())
	assert.Equal(t, int32(1), calls.Load())
}

func TestPageCache_TTL(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	clock := func() time.Time { return now }

	var calls atomic.Int32
	store := cache.NewLRUCache[string, *cache.Page](8)
	h := cache.PageCache(store, cache.WithTTL(time.Minute), cache.WithClock(clock))(countingHandler(&calls, http.StatusOK))

	doGet(h, "/en")
	assert.Equal(t, "HIT", doGet(h, "/en").Header().Get("X-Cache"))

	now = now.Add(2 * time.Minute)
	assert.Equal(t, "MISS", doGet(h, "/en").Header().Get("X-Cache"))
	assert.Equal(t, int32(2), calls.Load())
}

func TestPageCache_CustomKey(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	store := cache.NewLRUCache[string, *cache.Page](8)
	h := cache.PageCache(store, cache.WithKeyFunc(func(r *http.Request) string {
		return r.URL.Path
	}))(countingHandler(&calls, http.StatusOK))

	doGet(h, "/en?utm=a")
	doGet(h, "/en?utm=b")
	assert.Equal(t, int32(1), calls.Load())

	_, ok := store.Get("/en")
	require.True(t, ok)
}

func TestPageCache_KeepsOuterHeadersPerRequest(t *testing.T) {
	t.Parallel()

	var calls, seq atomic.Int32
	inner := cache.PageCache(cache.NewLRUCache[string, *cache.Page](4))(countingHandler(&calls, http.StatusOK))
	h := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Request-ID", string(rune('a'+seq.Add(1))))
		inner.ServeHTTP(w, r)
	})

	first := doGet(h, "/en")
	second := doGet(h, "/en")
	require.Equal(t, "HIT", second.Header().Get("X-Cache"))
	assert.Equal(t, "b", first.Header().Get("X-Request-ID"))
	assert.Equal(t, "c", second.Header().Get("X-Request-ID"))
	assert.Equal(t, "text/html; charset=utf-8", second.Header().Get("Content-Type"))
	assert.Equal(t, int32(1), calls.Load())
}
