package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/vibecoders/site/pkg/i18n"
)

// Context wraps http.Request and http.ResponseWriter with context.Context.
// It embeds the request's context and exposes the resolved locale.
type Context interface {
	context.Context
	Request() *http.Request
	ResponseWriter() http.ResponseWriter
	// Locale is the locale resolved by i18n.Middleware, or the default.
	Locale() i18n.Locale
}

// NewContext creates a new Context from HTTP request and response writer.
func NewContext(w http.ResponseWriter, r *http.Request) Context {
	return &httpContext{w: w, r: r}
}

type httpContext struct {
	w http.ResponseWriter
	r *http.Request
}

func (c *httpContext) Request() *http.Request              { return c.r }
func (c *httpContext) ResponseWriter() http.ResponseWriter { return c.w }
func (c *httpContext) Locale() i18n.Locale                 { return i18n.GetLocale(c.r.Context()) }

// Delegate context.Context methods to the request's context
func (c *httpContext) Deadline() (time.Time, bool) { return c.r.Context().Deadline() }
func (c *httpContext) Done() <-chan struct{}       { return c.r.Context().Done() }
func (c *httpContext) Err() error                  { return c.r.Context().Err() }
func (c *httpContext) Value(key any) any           { return c.r.Context().Value(key) }
