// Package compress provides brotli response compression middleware built
// on github.com/andybalholm/brotli.
//
//	r.Use(compress.Middleware(compress.WithLevel(6)))
//
// Only requests whose Accept-Encoding allows "br" are encoded. Responses
// that already carry a Content-Encoding, body-less statuses and media types
// outside the configured list (text/event-stream among them) pass through.
package compress
