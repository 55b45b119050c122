package slug

import (
	"strings"
	"unicode"
)

// Option configures slug generation.
type Option func(*config)

type config struct {
	maxLength     int
	separator     string
	customReplace map[string]string
}

func defaultConfig() *config {
	return &config{
		separator: "-",
		customReplace: map[string]string{
			"&": " and ",
			"+": " plus ",
			"#": " sharp ",
		},
	}
}

// MaxLength sets the maximum length of the generated slug in runes.
// Zero means no limit.
func MaxLength(n int) Option {
	return func(c *config) {
		c.maxLength = n
	}
}

// Separator sets the separator placed between words. Default is "-".
func Separator(s string) Option {
	return func(c *config) {
		if s != "" {
			c.separator = s
		}
	}
}

// CustomReplace adds string replacements applied before slugification,
// on top of the defaults for "&", "+" and "#".
func CustomReplace(replacements map[string]string) Option {
	return func(c *config) {
		for k, v := range replacements {
			c.customReplace[k] = v
		}
	}
}

// Make creates a lowercase URL-safe slug from a title such as
// "AWS & Cloud" (aws-and-cloud) or "Next.js 15 Full Course"
// (next-js-15-full-course). Characters outside ASCII letters and digits
// become separators; common Latin diacritics are folded to ASCII.
func Make(s string, opts ...Option) string {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	for old, repl := range cfg.customReplace {
		s = strings.ReplaceAll(s, old, repl)
	}

	var b strings.Builder
	b.Grow(len(s))

	lastWasSep := true
	runeCount := 0
	sepLen := len([]rune(cfg.separator))

	for _, r := range s {
		if cfg.maxLength > 0 && runeCount >= cfg.maxLength {
			break
		}

		r = unicode.ToLower(r)
		if folded, ok := diacritics[r]; ok {
			r = folded
		}

		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
			lastWasSep = false
			runeCount++
			continue
		}

		if !lastWasSep {
			if cfg.maxLength > 0 && runeCount+sepLen > cfg.maxLength {
				break
			}
			b.WriteString(cfg.separator)
			lastWasSep = true
			runeCount += sepLen
		}
	}

	return strings.TrimSuffix(b.String(), cfg.separator)
}

// IsValid reports whether s is already a canonical slug: non-empty,
// lowercase ASCII letters and digits in hyphen-separated groups, with no
// leading, trailing or doubled hyphens.
func IsValid(s string) bool {
	if s == "" || s[0] == '-' || s[len(s)-1] == '-' {
		return false
	}

	prevHyphen := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= 'a' && c <= 'z', c >= '0' && c <= '9':
			prevHyphen = false
		case c == '-':
			if prevHyphen {
				return false
			}
			prevHyphen = true
		default:
			return false
		}
	}
	return true
}

// diacritics folds lowercase Latin letters with marks to ASCII.
var diacritics = map[rune]rune{
	'à': 'a', 'á': 'a', 'â': 'a', 'ã': 'a', 'ä': 'a', 'å': 'a', 'ā': 'a', 'ă': 'a', 'ą': 'a', 'æ': 'a',
	'ç': 'c', 'ć': 'c', 'č': 'c',
	'đ': 'd', 'ď': 'd',
	'è': 'e', 'é': 'e', 'ê': 'e', 'ë': 'e', 'ē': 'e', 'ė': 'e', 'ę': 'e', 'ě': 'e',
	'ì': 'i', 'í': 'i', 'î': 'i', 'ï': 'i', 'ī': 'i', 'į': 'i',
	'ł': 'l',
	'ñ': 'n', 'ń': 'n', 'ň': 'n',
	'ò': 'o', 'ó': 'o', 'ô': 'o', 'õ': 'o', 'ö': 'o', 'ø': 'o', 'ō': 'o', 'œ': 'o',
	'ř': 'r',
	'ś': 's', 'š': 's', 'ș': 's', 'ß': 's',
	'ť': 't', 'ț': 't',
	'ù': 'u', 'ú': 'u', 'û': 'u', 'ü': 'u', 'ū': 'u', 'ů': 'u', 'ų': 'u',
	'ý': 'y', 'ÿ': 'y',
	'ź': 'z', 'ž': 'z', 'ż': 'z',
}
