package site

import (
	"fmt"
	"time"

	"github.com/vibecoders/site/pkg/cookie"
	"github.com/vibecoders/site/pkg/httpserver"
	"github.com/vibecoders/site/pkg/i18n"
)

// Config is the environment of the site process.
type Config struct {
	AppName string `env:"APP_NAME" envDefault:"vibecoders-site"`
	AppEnv  string `env:"APP_ENV" envDefault:"development"`
	BaseURL string `env:"APP_BASE_URL" envDefault:"http://localhost:8080"`

	DefaultLocale    string `env:"DEFAULT_LOCALE" envDefault:"en"`
	LocaleCookieName string `env:"LOCALE_COOKIE_NAME" envDefault:"NEXT_LOCALE"`

	PageCacheSize      int           `env:"PAGE_CACHE_SIZE" envDefault:"256"` // 0 disables the page cache
	PageCacheTTL       time.Duration `env:"PAGE_CACHE_TTL" envDefault:"0s"`   // 0 keeps pages until evicted
	CompressionEnabled bool          `env:"COMPRESSION_ENABLED" envDefault:"true"`
	MetricsEnabled     bool          `env:"METRICS_ENABLED" envDefault:"true"`
	FeaturedCourses    int           `env:"FEATURED_COURSES" envDefault:"3"`

	HTTP   httpserver.Config
	Cookie cookie.Config
}

// DefaultConfig returns the values Config gets from an empty environment.
func DefaultConfig() Config {
	return Config{
		AppName:            "vibecoders-site",
		AppEnv:             "development",
		BaseURL:            "http://localhost:8080",
		DefaultLocale:      i18n.DefaultLocale.String(),
		LocaleCookieName:   i18n.DefaultCookieName,
		PageCacheSize:      256,
		CompressionEnabled: true,
		MetricsEnabled:     true,
		FeaturedCourses:    3,
		HTTP: httpserver.Config{
			Addr:              ":8080",
			ReadTimeout:       30 * time.Second,
			ReadHeaderTimeout: 10 * time.Second,
			WriteTimeout:      30 * time.Second,
			IdleTimeout:       120 * time.Second,
			ShutdownTimeout:   5 * time.Second,
		},
		Cookie: cookie.DefaultConfig(),
	}
}

// Validate reports the first setting New cannot work with.
func (c Config) Validate() error {
	switch {
	case !i18n.IsSupported(c.DefaultLocale):
		return fmt.Errorf("%w: DEFAULT_LOCALE %q is not supported", ErrInvalidConfig, c.DefaultLocale)
	case c.LocaleCookieName == "":
		return fmt.Errorf("%w: LOCALE_COOKIE_NAME is empty", ErrInvalidConfig)
	case c.PageCacheSize < 0:
		return fmt.Errorf("%w: PAGE_CACHE_SIZE must not be negative", ErrInvalidConfig)
	case c.PageCacheTTL < 0:
		return fmt.Errorf("%w: PAGE_CACHE_TTL must not be negative", ErrInvalidConfig)
	case c.FeaturedCourses < 0:
		return fmt.Errorf("%w: FEATURED_COURSES must not be negative", ErrInvalidConfig)
	}
	return nil
}

func (c Config) defaultLocale() i18n.Locale {
	l, _ := i18n.Parse(c.DefaultLocale)
	return l
}
