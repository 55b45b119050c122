package i18n

import (
	"slices"
	"strconv"
	"strings"
)

// maxAcceptLanguageLength caps the header size we are willing to parse.
// RFC 7231 sets no limit; 4KB covers every legitimate browser header.
const maxAcceptLanguageLength = 4096

// langWithQ is one Accept-Language entry reduced to its primary subtag.
type langWithQ struct {
	lang string
	q    float64
}

// parseAcceptLanguageHeader splits an Accept-Language header into entries
// ordered by descending quality. Only the primary subtag is kept
// ("en-US" becomes "en"). A missing or unparseable q value counts as 1.0.
// Entries with equal quality keep their header order.
func parseAcceptLanguageHeader(header string) []langWithQ {
	if header == "" {
		return nil
	}

	if len(header) > maxAcceptLanguageLength {
		header = header[:maxAcceptLanguageLength]
	}

	var languages []langWithQ

	for part := range strings.SplitSeq(header, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		code, params, _ := strings.Cut(part, ";")
		code = strings.TrimSpace(code)
		if primary, _, found := strings.Cut(code, "-"); found {
			code = primary
		}
		code = strings.ToLower(code)
		if code == "" {
			continue
		}

		languages = append(languages, langWithQ{lang: code, q: parseQuality(params)})
	}

	slices.SortStableFunc(languages, func(a, b langWithQ) int {
		switch {
		case a.q > b.q:
			return -1
		case a.q < b.q:
			return 1
		default:
			return 0
		}
	})

	return languages
}

// parseQuality reads the weight from the parameter part of an entry.
// Anything that is not a valid "q=<0..1>" yields 1.0.
func parseQuality(params string) float64 {
	for param := range strings.SplitSeq(params, ";") {
		param = strings.TrimSpace(param)
		value, ok := strings.CutPrefix(param, "q=")
		if !ok {
			continue
		}
		q, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
		if err != nil || q < 0 || q > 1 {
			return 1.0
		}
		return q
	}
	return 1.0
}

// ParseAcceptLanguage returns the highest weighted supported locale named in
// the header, or def when the header is empty or names none of them.
func ParseAcceptLanguage(header string, supported []Locale, def Locale) Locale {
	if header == "" || len(supported) == 0 {
		return def
	}

	for _, lq := range parseAcceptLanguageHeader(header) {
		if l := Locale(lq.lang); containsLocale(supported, l) {
			return l
		}
	}

	return def
}
