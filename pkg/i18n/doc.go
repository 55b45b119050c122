// Package i18n resolves the locale of a request and looks up translated
// strings for it.
//
// The site serves two locales, English ("en", the default) and Korean ("ko").
// Every page lives under a locale prefix such as /en/courses or /ko/courses.
//
// # Locale resolution
//
// A Resolver decides which locale governs a request. A path that already
// starts with a locale segment wins. Otherwise the locale preference cookie
// (NEXT_LOCALE by default) is used if it names a served locale, then the
// highest weighted Accept-Language entry, then the default. Only the primary
// subtag of each Accept-Language entry counts, so "ko-KR" selects "ko".
//
//	resolver := i18n.NewResolver()
//	res := resolver.Resolve("/courses", "", "ko-KR,ko;q=0.9,en;q=0.8")
//	// res.Locale == i18n.KO, res.RedirectPath == "/ko/courses"
//
// Middleware wraps a handler and issues the redirect, or stores the locale in
// the request context where GetLocale reads it. API routes, static assets and
// any path whose last segment contains a dot are left untouched.
//
// # Translations
//
// Translator loads translation tables through a TranslationAdapter. YAML
// files keyed by language code are parsed by YAMLParser; FSAdapter reads them
// from an embed.FS or a directory.
//
//	adapter, err := i18n.NewFSAdapter(i18n.NewYAMLParser(), translationsFS, "translations")
//	if err != nil {
//		return err
//	}
//	translator, err := i18n.NewTranslator(ctx, adapter, i18n.WithDefaultLanguage("en"))
//	if err != nil {
//		return err
//	}
//	msg := translator.T("ko", "common.footer", "year", "2025")
//
// Keys missing in a locale fall back to the default locale's table. Decode
// loads a whole merged table into a typed struct.
package i18n
