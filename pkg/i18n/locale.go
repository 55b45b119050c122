package i18n

import (
	"slices"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// Locale is a supported language code governing which translation table and
// content track is served.
type Locale string

const (
	// EN is English, the default locale.
	EN Locale = "en"
	// KO is Korean.
	KO Locale = "ko"
)

// DefaultLocale is used when no locale can be detected from the request.
const DefaultLocale = EN

// supported is the closed set of locales in display order.
var supported = []Locale{EN, KO}

// Supported returns the list of supported locales in display order.
func Supported() []Locale {
	return slices.Clone(supported)
}

// Parse returns the locale for an exact, case-sensitive code match.
// URL segments and cookie values are compared as-is: "EN" is not "en".
func Parse(s string) (Locale, bool) {
	for _, l := range supported {
		if string(l) == s {
			return l, true
		}
	}
	return "", false
}

// IsSupported reports whether s names a supported locale.
func IsSupported(s string) bool {
	_, ok := Parse(s)
	return ok
}

// String implements fmt.Stringer.
func (l Locale) String() string {
	return string(l)
}

// Tag returns the BCP 47 language tag of the locale.
func (l Locale) Tag() language.Tag {
	tag, err := language.Parse(string(l))
	if err != nil {
		return language.Und
	}
	return tag
}

// Name returns the locale's name written in its own language,
// e.g. "English" or "한국어".
func (l Locale) Name() string {
	if name := display.Self.Name(l.Tag()); name != "" {
		return name
	}
	return strings.ToUpper(string(l))
}

// containsLocale reports whether locales contains l.
func containsLocale(locales []Locale, l Locale) bool {
	return slices.Contains(locales, l)
}
