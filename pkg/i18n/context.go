package i18n

import (
	"context"
	"log/slog"

	"github.com/vibecoders/site/pkg/logger"
)

type localeContextKey struct{}

// SetLocale stores the resolved locale in the context.
func SetLocale(ctx context.Context, locale Locale) context.Context {
	return context.WithValue(ctx, localeContextKey{}, locale)
}

// GetLocale returns the locale stored in ctx, or DefaultLocale when none
// or an unsupported one is set.
func GetLocale(ctx context.Context) Locale {
	if l, ok := LocaleFromContext(ctx); ok {
		return l
	}
	return DefaultLocale
}

// LocaleFromContext returns the stored locale and whether a supported one
// was set.
func LocaleFromContext(ctx context.Context) (Locale, bool) {
	locale, ok := ctx.Value(localeContextKey{}).(Locale)
	return locale, ok && IsSupported(string(locale))
}

// LoggerExtractor adds the locale resolved for the request as "locale".
// Records logged before resolution carry no locale.
func LoggerExtractor() logger.ContextExtractor {
	return func(ctx context.Context) (slog.Attr, bool) {
		l, ok := LocaleFromContext(ctx)
		if !ok {
			return slog.Attr{}, false
		}
		return logger.Locale(l.String()), true
	}
}
