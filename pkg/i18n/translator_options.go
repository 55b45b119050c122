package i18n

import "log/slog"

// Option configures NewTranslator.
type Option func(*Translator)

// WithDefaultLanguage names the table that fills keys other languages
// lack. Defaults to DefaultLocale.
func WithDefaultLanguage(lang string) Option {
	return func(t *Translator) {
		if lang != "" {
			t.defaultLang = lang
		}
	}
}

// WithFallbackToKey controls whether T returns the key itself when no table
// has it. Enabled by default so a missing string is visible on the page.
func WithFallbackToKey(fallback bool) Option {
	return func(t *Translator) { t.fallbackToKey = fallback }
}

func WithLogger(l *slog.Logger) Option {
	return func(t *Translator) {
		if l != nil {
			t.logger = l
		}
	}
}

// WithMissingTranslationsLogging warns about every key T cannot find in the
// requested language.
func WithMissingTranslationsLogging(enabled bool) Option {
	return func(t *Translator) { t.missingLogMode = enabled }
}
