package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// UnmatchedRoute labels requests that no route pattern matched.
const UnmatchedRoute = "unmatched"

// Metrics holds the site collectors. Create one per registry.
type Metrics struct {
	requests        *prometheus.CounterVec
	duration        *prometheus.HistogramVec
	localeRedirects *prometheus.CounterVec
	pageCache       *prometheus.CounterVec
	gatherer        prometheus.Gatherer
}

// Option configures Metrics.
type Option func(*options)

type options struct {
	namespace string
	buckets   []float64
}

// WithNamespace prefixes every metric name.
func WithNamespace(ns string) Option {
	return func(o *options) { o.namespace = ns }
}

// WithBuckets overrides the request duration histogram buckets.
func WithBuckets(b ...float64) Option {
	return func(o *options) {
		if len(b) > 0 {
			o.buckets = b
		}
	}
}

// New creates the collectors and registers them with reg.
// A nil reg uses a fresh registry.
func New(reg *prometheus.Registry, opts ...Option) (*Metrics, error) {
	o := options{buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5}}
	for _, opt := range opts {
		opt(&o)
	}
	if reg == nil {
		reg = prometheus.NewRegistry()
	}

	m := &Metrics{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: o.namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		}, []string{"method", "route", "status"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: o.namespace,
			Name:      "http_request_duration_seconds",
			Help:      "Duration of HTTP requests",
			Buckets:   o.buckets,
		}, []string{"method", "route"}),
		localeRedirects: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: o.namespace,
			Name:      "locale_redirects_total",
			Help:      "Redirects to a locale prefixed path by resolved locale and source",
		}, []string{"locale", "source"}),
		pageCache: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: o.namespace,
			Name:      "page_cache_requests_total",
			Help:      "Page cache lookups by result",
		}, []string{"result"}),
		gatherer: reg,
	}

	for _, c := range []prometheus.Collector{m.requests, m.duration, m.localeRedirects, m.pageCache} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// Middleware records request count and latency labelled by the chi route
// pattern, so path parameters do not explode label cardinality.
func (m *Metrics) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		route := UnmatchedRoute
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			if p := rctx.RoutePattern(); p != "" {
				route = p
			}
		}
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}

		m.requests.WithLabelValues(r.Method, route, strconv.Itoa(status)).Inc()
		m.duration.WithLabelValues(r.Method, route).Observe(time.Since(start).Seconds())
	})
}

// LocaleRedirect counts a locale redirect.
func (m *Metrics) LocaleRedirect(locale, source string) {
	m.localeRedirects.WithLabelValues(locale, source).Inc()
}

// PageCacheHit counts a page served from cache.
func (m *Metrics) PageCacheHit() { m.pageCache.WithLabelValues("hit").Inc() }

// PageCacheMiss counts a page rendered on a cache miss.
func (m *Metrics) PageCacheMiss() { m.pageCache.WithLabelValues("miss").Inc() }

// Handler exposes the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}
