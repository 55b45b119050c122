// Package metrics exposes Prometheus collectors for the site.
//
//	m, err := metrics.New(prometheus.NewRegistry())
//	r.Use(m.Middleware)
//	r.Handle("/metrics", m.Handler())
//
// Collected series:
//
//	http_requests_total{method,route,status}
//	http_request_duration_seconds{method,route}
//	locale_redirects_total{locale,source}
//	page_cache_requests_total{result}
package metrics
