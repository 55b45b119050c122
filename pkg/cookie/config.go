package cookie

import "net/http"

// Config holds the attributes a Manager writes unless a call overrides
// them. It doubles as the COOKIE_* environment block.
type Config struct {
	Path     string        `env:"COOKIE_PATH" envDefault:"/"`
	Domain   string        `env:"COOKIE_DOMAIN" envDefault:""`
	MaxAge   int           `env:"COOKIE_MAX_AGE" envDefault:"0"` // seconds; 0 is a session cookie
	Secure   bool          `env:"COOKIE_SECURE" envDefault:"false"`
	HttpOnly bool          `env:"COOKIE_HTTP_ONLY" envDefault:"true"`
	SameSite http.SameSite `env:"COOKIE_SAME_SITE" envDefault:"2"` // 2 is Lax
}

// DefaultConfig is path "/", HttpOnly and SameSite Lax.
func DefaultConfig() Config {
	return Config{Path: "/", HttpOnly: true, SameSite: http.SameSiteLaxMode}
}

// Option overrides one attribute.
type Option func(*Config)

func WithPath(path string) Option       { return func(c *Config) { c.Path = path } }
func WithDomain(domain string) Option   { return func(c *Config) { c.Domain = domain } }
func WithMaxAge(seconds int) Option     { return func(c *Config) { c.MaxAge = seconds } }
func WithSecure(secure bool) Option     { return func(c *Config) { c.Secure = secure } }
func WithHTTPOnly(httpOnly bool) Option { return func(c *Config) { c.HttpOnly = httpOnly } }

func WithSameSite(mode http.SameSite) Option {
	return func(c *Config) { c.SameSite = mode }
}

func (c Config) with(opts []Option) Config {
	for _, opt := range opts {
		opt(&c)
	}
	return c
}
