package i18n

import (
	"slices"
	"strings"
)

// DefaultCookieName is the locale preference cookie written by the language switcher.
const DefaultCookieName = "NEXT_LOCALE"

// defaultExemptPrefixes are path prefixes served without locale resolution.
var defaultExemptPrefixes = []string{
	"/api",
	"/static",
	"/_locale",
	"/healthz",
	"/metrics",
	"/favicon.ico",
}

// Source tells where a resolved locale came from.
type Source string

const (
	SourcePath    Source = "path"
	SourceCookie  Source = "cookie"
	SourceHeader  Source = "header"
	SourceDefault Source = "default"
)

// Resolution is the outcome of resolving a request path to a locale.
type Resolution struct {
	Locale           Locale
	Source           Source
	RedirectRequired bool
	RedirectPath     string
}

// Resolver maps an inbound request to exactly one supported locale.
// It holds configuration only and is safe for concurrent use.
type Resolver struct {
	locales        []Locale
	defaultLocale  Locale
	cookieName     string
	exemptPrefixes []string
}

// ResolverOption configures a Resolver.
type ResolverOption func(*Resolver)

// WithLocales restricts the resolver to the given locales.
// Unknown codes are dropped; an empty result keeps the previous set.
func WithLocales(locales ...Locale) ResolverOption {
	return func(r *Resolver) {
		valid := make([]Locale, 0, len(locales))
		for _, l := range locales {
			if IsSupported(string(l)) && !containsLocale(valid, l) {
				valid = append(valid, l)
			}
		}
		if len(valid) > 0 {
			r.locales = valid
		}
	}
}

// WithDefault sets the locale used when neither cookie nor header match.
func WithDefault(l Locale) ResolverOption {
	return func(r *Resolver) {
		if IsSupported(string(l)) {
			r.defaultLocale = l
		}
	}
}

// WithCookieName sets the name of the locale preference cookie.
func WithCookieName(name string) ResolverOption {
	return func(r *Resolver) {
		if name != "" {
			r.cookieName = name
		}
	}
}

// WithExemptPrefixes adds path prefixes that bypass locale resolution.
func WithExemptPrefixes(prefixes ...string) ResolverOption {
	return func(r *Resolver) {
		for _, p := range prefixes {
			p = "/" + strings.Trim(p, "/")
			if p != "/" && !slices.Contains(r.exemptPrefixes, p) {
				r.exemptPrefixes = append(r.exemptPrefixes, p)
			}
		}
	}
}

// NewResolver returns a Resolver for all supported locales with English as default.
func NewResolver(opts ...ResolverOption) *Resolver {
	r := &Resolver{
		locales:        Supported(),
		defaultLocale:  DefaultLocale,
		cookieName:     DefaultCookieName,
		exemptPrefixes: slices.Clone(defaultExemptPrefixes),
	}
	for _, opt := range opts {
		opt(r)
	}
	if !containsLocale(r.locales, r.defaultLocale) {
		r.locales = append([]Locale{r.defaultLocale}, r.locales...)
	}
	return r
}

// Locales returns the locales this resolver serves.
func (r *Resolver) Locales() []Locale {
	return slices.Clone(r.locales)
}

// Default returns the fallback locale.
func (r *Resolver) Default() Locale {
	return r.defaultLocale
}

// CookieName returns the locale preference cookie name.
func (r *Resolver) CookieName() string {
	return r.cookieName
}

// Resolve decides which locale governs a request and whether the client
// must be redirected to a locale-prefixed path.
//
// A path that already starts with a locale segment wins outright. Otherwise
// the cookie is used when it names a served locale, then the Accept-Language
// header, then the default locale.
func (r *Resolver) Resolve(path, cookieValue, acceptLanguage string) Resolution {
	path = normalizePath(path)

	if l, _, ok := r.PathLocale(path); ok {
		return Resolution{Locale: l, Source: SourcePath}
	}

	locale, source := r.negotiate(cookieValue, acceptLanguage)

	return Resolution{
		Locale:           locale,
		Source:           source,
		RedirectRequired: true,
		RedirectPath:     prefixPath(locale, path),
	}
}

// negotiate applies the cookie > header > default precedence.
func (r *Resolver) negotiate(cookieValue, acceptLanguage string) (Locale, Source) {
	if l, ok := Parse(strings.TrimSpace(cookieValue)); ok && containsLocale(r.locales, l) {
		return l, SourceCookie
	}

	if l := ParseAcceptLanguage(acceptLanguage, r.locales, ""); l != "" {
		return l, SourceHeader
	}

	return r.defaultLocale, SourceDefault
}

// PathLocale reports whether path begins with a served locale segment and
// returns that locale together with the remainder of the path.
// Only whole segments match: "/enhanced" does not start with "/en".
func (r *Resolver) PathLocale(path string) (Locale, string, bool) {
	path = normalizePath(path)
	segment, rest, _ := strings.Cut(path[1:], "/")

	l, ok := Parse(segment)
	if !ok || !containsLocale(r.locales, l) {
		return "", path, false
	}

	return l, "/" + rest, true
}

// IsExempt reports whether path is served without locale resolution:
// API routes, static assets, health and metrics endpoints, and any path
// whose last segment looks like a file name.
func (r *Resolver) IsExempt(path string) bool {
	path = normalizePath(path)

	for _, prefix := range r.exemptPrefixes {
		if path == prefix || strings.HasPrefix(path, prefix+"/") {
			return true
		}
	}

	last := path[strings.LastIndex(path, "/")+1:]
	return strings.Contains(last, ".")
}

// SwitchPath returns path rewritten for another locale, keeping everything
// after the locale segment.
func (r *Resolver) SwitchPath(path string, to Locale) string {
	_, rest, _ := r.PathLocale(path)
	return prefixPath(to, rest)
}

// LanguageOption is one entry of the language switcher.
type LanguageOption struct {
	Locale Locale
	Label  string
	Href   string
	Active bool
}

// LanguageOptions builds switcher entries for every served locale,
// each pointing at the current page in that language.
func (r *Resolver) LanguageOptions(current Locale, path string) []LanguageOption {
	options := make([]LanguageOption, 0, len(r.locales))
	for _, l := range r.locales {
		options = append(options, LanguageOption{
			Locale: l,
			Label:  l.Name(),
			Href:   r.SwitchPath(path, l),
			Active: l == current,
		})
	}
	return options
}

// normalizePath guarantees a leading slash.
func normalizePath(path string) string {
	if path == "" {
		return "/"
	}
	if path[0] != '/' {
		return "/" + path
	}
	return path
}

// prefixPath joins a locale and a path without producing "/en/" for the root.
func prefixPath(l Locale, path string) string {
	path = normalizePath(path)
	if path == "/" {
		return "/" + string(l)
	}
	return "/" + string(l) + path
}
