package i18n

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"maps"
	"regexp"
	"sort"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

// Translator holds the translation tables of every locale and answers
// key lookups against them. Lookups for a locale that lacks a key fall back
// to the default locale's table.
type Translator struct {
	translations   map[string]map[string]any
	defaultLang    string
	fallbackToKey  bool
	missingLogMode bool
	logger         *slog.Logger
	mu             sync.RWMutex
	adapter        TranslationAdapter
}

// NewTranslator creates a new Translator instance with the given adapter and options.
func NewTranslator(ctx context.Context, adapter TranslationAdapter, options ...Option) (*Translator, error) {
	if adapter == nil {
		return nil, ErrNilAdapter
	}

	t := &Translator{
		defaultLang:   string(DefaultLocale),
		fallbackToKey: true,
		logger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
		adapter:       adapter,
	}

	for _, option := range options {
		option(t)
	}

	translations, err := adapter.Load(ctx)
	if err != nil {
		return nil, err
	}

	if err := t.validateTranslations(translations); err != nil {
		return nil, err
	}

	t.translations = translations
	t.logger.InfoContext(ctx, "translations loaded", slog.Any("languages", t.supportedLanguages()))
	return t, nil
}

// Reload fetches the tables from the adapter again and swaps them in.
func (t *Translator) Reload(ctx context.Context) error {
	translations, err := t.adapter.Load(ctx)
	if err != nil {
		return err
	}
	if err := t.validateTranslations(translations); err != nil {
		return err
	}

	t.mu.Lock()
	t.translations = translations
	t.mu.Unlock()
	return nil
}

func (t *Translator) validateTranslations(trans map[string]map[string]any) error {
	if len(trans) == 0 {
		t.logger.Warn("no translations provided")
		return nil
	}

	for lang, translations := range trans {
		if lang == "" {
			return ErrEmptyLanguageCode
		}
		if translations == nil {
			return fmt.Errorf("%w: %s", ErrNilTranslations, lang)
		}
	}
	return nil
}

func (t *Translator) supportedLanguages() []string {
	langs := make([]string, 0, len(t.translations))
	for lang := range t.translations {
		langs = append(langs, lang)
	}
	sort.Strings(langs)
	return langs
}

// SupportedLanguages returns a list of language codes that have translations available.
func (t *Translator) SupportedLanguages() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.supportedLanguages()
}

// DefaultLanguage returns the language used as lookup fallback.
func (t *Translator) DefaultLanguage() string {
	return t.defaultLang
}

// lookup traverses a nested map using dot-separated keys.
// For example, key "common.nav.home" will traverse m["common"] then ["nav"] then ["home"].
func lookup(m map[string]any, key string) (any, bool) {
	parts := strings.Split(key, ".")
	current := m

	for i, part := range parts {
		val, ok := current[part]
		if !ok {
			return nil, false
		}
		if i == len(parts)-1 {
			return val, true
		}

		next, ok := asStringMap(val)
		if !ok {
			return nil, false
		}
		current = next
	}

	return nil, false
}

// asStringMap accepts both map shapes YAML decoders produce.
func asStringMap(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case map[string]any:
		return m, true
	case map[any]any:
		out := make(map[string]any, len(m))
		for k, val := range m {
			if ks, ok := k.(string); ok {
				out[ks] = val
			}
		}
		return out, true
	default:
		return nil, false
	}
}

// find looks a key up in lang, then in the default language.
func (t *Translator) find(lang, key string) (any, bool) {
	if langMap, ok := t.translations[lang]; ok {
		if val, ok := lookup(langMap, key); ok {
			return val, true
		}
	}
	if lang == t.defaultLang {
		return nil, false
	}
	if langMap, ok := t.translations[t.defaultLang]; ok {
		if val, ok := lookup(langMap, key); ok {
			if t.missingLogMode {
				t.logger.Warn("translation fell back to default language", "lang", lang, "key", key)
			}
			return val, true
		}
	}
	return nil, false
}

// Has reports whether lang itself (without fallback) defines key.
func (t *Translator) Has(lang, key string) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()

	langMap, ok := t.translations[lang]
	if !ok {
		return false
	}

	_, ok = lookup(langMap, key)
	return ok
}

// T translates a key for the given language. Additional arguments are
// key-value pairs substituted into "{name}" placeholders.
//
//	// With translation "footer": "© {year} VibeCoders"
//	msg := translator.T("en", "common.footer", "year", "2025")
//	// Returns: "© 2025 VibeCoders"
//
// A key missing in both lang and the default language yields the key itself
// when fallback to key is enabled, or an empty string otherwise.
func (t *Translator) T(lang, key string, args ...string) string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	val, ok := t.find(lang, key)
	if !ok {
		if t.missingLogMode {
			t.logger.Warn("translation not found", "lang", lang, "key", key)
		}
		if t.fallbackToKey {
			return Format(key, args...)
		}
		return ""
	}

	switch v := val.(type) {
	case string:
		return Format(v, args...)
	case fmt.Stringer:
		return Format(v.String(), args...)
	case int, int64, float64, bool:
		return fmt.Sprint(v)
	default:
		if t.missingLogMode {
			t.logger.Warn("translation is not a string", "lang", lang, "key", key, "type", fmt.Sprintf("%T", v))
		}
		if t.fallbackToKey {
			return Format(key, args...)
		}
		return ""
	}
}

// Tc translates a key using the locale stored in the context.
func (t *Translator) Tc(ctx context.Context, key string, args ...string) string {
	return t.T(GetLocale(ctx).String(), key, args...)
}

// Td translates a key with an explicit fallback value instead of the key.
func (t *Translator) Td(lang, key, defaultValue string, args ...string) string {
	t.mu.RLock()
	val, ok := t.find(lang, key)
	t.mu.RUnlock()

	if s, isString := val.(string); ok && isString {
		return Format(s, args...)
	}
	return Format(defaultValue, args...)
}

// Table returns the full translation tree for lang with every key it lacks
// filled in from the default language. The result is a private copy.
func (t *Translator) Table(lang string) (map[string]any, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	base, hasDefault := t.translations[t.defaultLang]
	own, hasOwn := t.translations[lang]
	if !hasOwn && !hasDefault {
		return nil, fmt.Errorf("%w: %s", ErrLanguageNotSupported, lang)
	}

	return mergeTree(deepCopy(base), own), nil
}

// Decode fills out (a pointer to a struct tagged with yaml keys) from the
// merged translation table of lang.
func (t *Translator) Decode(lang string, out any) error {
	table, err := t.Table(lang)
	if err != nil {
		return err
	}

	raw, err := yaml.Marshal(table)
	if err != nil {
		return errors.Join(ErrFailedToDecode, err)
	}
	if err := yaml.Unmarshal(raw, out); err != nil {
		return errors.Join(ErrFailedToDecode, err)
	}
	return nil
}

// mergeTree overlays src onto dst recursively and returns dst.
func mergeTree(dst, src map[string]any) map[string]any {
	if dst == nil {
		dst = make(map[string]any, len(src))
	}
	for k, v := range src {
		srcMap, srcIsMap := asStringMap(v)
		dstMap, dstIsMap := asStringMap(dst[k])
		if srcIsMap && dstIsMap {
			dst[k] = mergeTree(dstMap, srcMap)
			continue
		}
		if srcIsMap {
			dst[k] = deepCopy(srcMap)
			continue
		}
		dst[k] = v
	}
	return dst
}

func deepCopy(m map[string]any) map[string]any {
	if m == nil {
		return nil
	}
	out := make(map[string]any, len(m))
	maps.Copy(out, m)
	for k, v := range out {
		if nested, ok := asStringMap(v); ok {
			out[k] = deepCopy(nested)
		}
	}
	return out
}

// paramRegex finds named parameters in the form {name}.
var paramRegex = regexp.MustCompile(`\{([A-Za-z0-9_]+)\}`)

// Format substitutes "{name}" placeholders in tmpl with the matching values
// from args given as key, value, key, value pairs. Unknown placeholders are
// kept; a trailing unpaired argument is ignored.
func Format(tmpl string, args ...string) string {
	if len(args) < 2 || !strings.Contains(tmpl, "{") {
		return tmpl
	}

	params := make(map[string]string, len(args)/2)
	for i := 0; i < len(args)-1; i += 2 {
		params[args[i]] = args[i+1]
	}

	return paramRegex.ReplaceAllStringFunc(tmpl, func(match string) string {
		if val, ok := params[match[1:len(match)-1]]; ok {
			return val
		}
		return match
	})
}
