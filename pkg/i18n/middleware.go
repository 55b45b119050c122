package i18n

import (
	"log/slog"
	"net/http"

	"github.com/vibecoders/site/pkg/logger"
)

// MiddlewareOption configures Middleware.
type MiddlewareOption func(*middlewareConfig)

type middlewareConfig struct {
	logger       *slog.Logger
	redirectCode int
	onRedirect   []func(*http.Request, Resolution)
}

// WithRedirectLogger logs every locale redirect at debug level.
func WithRedirectLogger(l *slog.Logger) MiddlewareOption {
	return func(c *middlewareConfig) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithRedirectCode overrides the redirect status (307 by default).
func WithRedirectCode(code int) MiddlewareOption {
	return func(c *middlewareConfig) {
		if code >= 300 && code < 400 {
			c.redirectCode = code
		}
	}
}

// WithRedirectHook registers a callback invoked before each locale redirect.
func WithRedirectHook(fn func(*http.Request, Resolution)) MiddlewareOption {
	return func(c *middlewareConfig) {
		if fn != nil {
			c.onRedirect = append(c.onRedirect, fn)
		}
	}
}

// Middleware resolves the locale of every non-exempt request.
//
// Requests whose path lacks a locale prefix are redirected to the same path
// (and query string) prefixed with the negotiated locale. Requests that
// already carry a prefix continue with the locale stored in the context and
// a Content-Language response header. The middleware only reads the locale
// cookie; writing it is the switcher's job.
func Middleware(resolver *Resolver, opts ...MiddlewareOption) func(http.Handler) http.Handler {
	if resolver == nil {
		resolver = NewResolver()
	}

	cfg := &middlewareConfig{
		logger:       slog.New(slog.DiscardHandler),
		redirectCode: http.StatusTemporaryRedirect,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if resolver.IsExempt(r.URL.Path) {
				next.ServeHTTP(w, r)
				return
			}

			var cookieValue string
			if c, err := r.Cookie(resolver.CookieName()); err == nil {
				cookieValue = c.Value
			}

			res := resolver.Resolve(r.URL.Path, cookieValue, r.Header.Get("Accept-Language"))

			if res.RedirectRequired {
				for _, hook := range cfg.onRedirect {
					hook(r, res)
				}

				// Exemption and prefix checks use the decoded path; the
				// target keeps the original escaping.
				target := prefixPath(res.Locale, r.URL.EscapedPath())
				if r.URL.RawQuery != "" {
					target += "?" + r.URL.RawQuery
				}

				cfg.logger.DebugContext(r.Context(), "locale redirect",
					logger.Path(r.URL.Path),
					logger.Locale(res.Locale.String()),
					slog.String("source", string(res.Source)),
				)

				w.Header().Add("Vary", "Cookie, Accept-Language")
				http.Redirect(w, r, target, cfg.redirectCode)
				return
			}

			w.Header().Set("Content-Language", res.Locale.String())
			next.ServeHTTP(w, r.WithContext(SetLocale(r.Context(), res.Locale)))
		})
	}
}
