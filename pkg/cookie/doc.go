// Package cookie provides a small HTTP cookie manager with shared defaults.
//
// A Manager is created once with defaults (path "/", SameSite Lax and
// HttpOnly unless overridden) and then used to write, read and expire cookies.
// Per-call options override the defaults for a single cookie:
//
//	cookies := cookie.New(cookie.WithSecure(true))
//	err := cookies.Set(w, "NEXT_LOCALE", "ko",
//		cookie.WithMaxAge(365*24*60*60),
//		cookie.WithHTTPOnly(false),
//	)
//
// Get returns ErrCookieNotFound when the request carries no such cookie.
package cookie
