package guide

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path"
	"slices"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vibecoders/site/pkg/i18n"
	"github.com/vibecoders/site/pkg/logger"
)

const (
	MinLevel = 0
	MaxLevel = 6

	levelPrefix = "level-"
)

//go:embed content/*.yaml
var embedded embed.FS

// Guide serves the Vibe Coding roadmap content per locale.
// It is read-only after New and safe for concurrent use.
type Guide struct {
	def      i18n.Locale
	locales  []i18n.Locale
	levels   map[i18n.Locale][]LevelContent
	overview map[i18n.Locale]Overview
}

type options struct {
	fsys    fs.FS
	dir     string
	def     i18n.Locale
	locales []i18n.Locale
	logger  *slog.Logger
}

// Option configures New.
type Option func(*options)

// WithFS reads content from dir in fsys instead of the embedded files.
// Each locale lives in <dir>/<locale>.yaml.
func WithFS(fsys fs.FS, dir string) Option {
	return func(o *options) {
		if fsys != nil {
			o.fsys = fsys
			o.dir = dir
		}
	}
}

// WithDefaultLocale sets the locale other tracks fall back to.
func WithDefaultLocale(l i18n.Locale) Option {
	return func(o *options) {
		o.def = l
	}
}

// WithLocales sets the locales that must have content.
func WithLocales(locales ...i18n.Locale) Option {
	return func(o *options) {
		if len(locales) > 0 {
			o.locales = slices.Clone(locales)
		}
	}
}

// WithLogger sets the logger used to report loaded content.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// New decodes the content of every locale and validates it. Non-default
// locales are overlaid on the default locale field by field, so anything a
// translation leaves out shows the default text.
func New(ctx context.Context, opts ...Option) (*Guide, error) {
	o := &options{
		fsys:    embedded,
		dir:     "content",
		def:     i18n.DefaultLocale,
		locales: i18n.Supported(),
		logger:  slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(o)
	}

	if _, ok := i18n.Parse(string(o.def)); !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownLocale, o.def)
	}
	if !slices.Contains(o.locales, o.def) {
		o.locales = append([]i18n.Locale{o.def}, o.locales...)
	}

	base, err := readNode(o.fsys, o.dir, o.def)
	if err != nil {
		return nil, err
	}

	g := &Guide{
		def:      o.def,
		locales:  o.locales,
		levels:   make(map[i18n.Locale][]LevelContent, len(o.locales)),
		overview: make(map[i18n.Locale]Overview, len(o.locales)),
	}

	var defKeys [][]string
	for _, l := range o.locales {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		node := base
		if l != o.def {
			over, err := readNode(o.fsys, o.dir, l)
			if err != nil {
				return nil, err
			}
			node = mergeNodes(base, over)
		}

		var doc document
		if err := node.Decode(&doc); err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrInvalidContent, l, err)
		}
		if err := validate(l, doc, defKeys); err != nil {
			return nil, err
		}
		if l == o.def {
			defKeys = sectionKeys(doc.Levels)
		}

		g.levels[l] = doc.Levels
		g.overview[l] = doc.Overview
	}

	o.logger.InfoContext(ctx, "guide content loaded",
		logger.Component("guide"),
		logger.Count(len(g.locales)),
	)

	return g, nil
}

func readNode(fsys fs.FS, dir string, l i18n.Locale) (*yaml.Node, error) {
	name := path.Join(dir, l.String()+".yaml")
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrMissingContent, name)
		}
		return nil, fmt.Errorf("%w: %s: %w", ErrInvalidContent, name, err)
	}

	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrInvalidContent, name, err)
	}
	if unwrapDocument(&node) == nil || unwrapDocument(&node).Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%w: %s: top level must be a mapping", ErrInvalidContent, name)
	}
	return &node, nil
}

func validate(l i18n.Locale, doc document, defKeys [][]string) error {
	const want = MaxLevel - MinLevel + 1

	if len(doc.Levels) != want {
		return fmt.Errorf("%w: %s has %d, want %d", ErrLevelCount, l, len(doc.Levels), want)
	}
	if len(doc.Overview.Milestones) != want {
		return fmt.Errorf("%w: %s has %d, want %d", ErrMilestoneCount, l, len(doc.Overview.Milestones), want)
	}

	for i, lc := range doc.Levels {
		if lc.Level != MinLevel+i {
			return fmt.Errorf("%w: %s level #%d is numbered %d", ErrInvalidContent, l, i, lc.Level)
		}
		if lc.Title == "" {
			return fmt.Errorf("%w: %s level %d has no title", ErrInvalidContent, l, lc.Level)
		}

		keys := lc.SectionKeys()
		if slices.Contains(keys, "") {
			return fmt.Errorf("%w: %s level %d has a section without key", ErrInvalidContent, l, lc.Level)
		}
		if defKeys != nil && !slices.Equal(keys, defKeys[i]) {
			return fmt.Errorf("%w: %s level %d has %v, want %v", ErrSectionMismatch, l, lc.Level, keys, defKeys[i])
		}
	}

	for i, m := range doc.Overview.Milestones {
		if m.Level != MinLevel+i {
			return fmt.Errorf("%w: %s milestone #%d is numbered %d", ErrInvalidContent, l, i, m.Level)
		}
	}
	return nil
}

func sectionKeys(levels []LevelContent) [][]string {
	out := make([][]string, 0, len(levels))
	for _, lc := range levels {
		out = append(out, lc.SectionKeys())
	}
	return out
}

func (g *Guide) track(l i18n.Locale) i18n.Locale {
	if _, ok := g.levels[l]; ok {
		return l
	}
	return g.def
}

// LevelContent returns the content of level for locale. Levels outside
// MinLevel..MaxLevel return level 0 and unsupported locales return the
// default locale's track. The result must be treated as read-only.
func (g *Guide) LevelContent(level int, l i18n.Locale) LevelContent {
	levels := g.levels[g.track(l)]
	if level < MinLevel || level > MaxLevel {
		level = MinLevel
	}
	return levels[level-MinLevel]
}

// Level is the strict form of LevelContent: ok is false for levels outside
// MinLevel..MaxLevel.
func (g *Guide) Level(level int, l i18n.Locale) (LevelContent, bool) {
	if level < MinLevel || level > MaxLevel {
		return LevelContent{}, false
	}
	return g.LevelContent(level, l), true
}

// Overview returns the roadmap landing content for locale.
func (g *Guide) Overview(l i18n.Locale) Overview {
	return g.overview[g.track(l)]
}

// Locales returns the locales with content, default first.
func (g *Guide) Locales() []i18n.Locale {
	return slices.Clone(g.locales)
}

// Levels returns every level number in order.
func Levels() []int {
	out := make([]int, 0, MaxLevel-MinLevel+1)
	for n := MinLevel; n <= MaxLevel; n++ {
		out = append(out, n)
	}
	return out
}

// LevelSegment returns the URL segment of a level, e.g. "level-3".
func LevelSegment(level int) string {
	return levelPrefix + strconv.Itoa(level)
}

// ParseLevelSegment parses a "level-N" URL segment. Only the canonical
// form of a level inside MinLevel..MaxLevel is accepted, so "level-03",
// "level-+3" and "level-7" are rejected.
func ParseLevelSegment(s string) (int, bool) {
	digits, ok := strings.CutPrefix(s, levelPrefix)
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(digits)
	if err != nil || n < MinLevel || n > MaxLevel || LevelSegment(n) != s {
		return 0, false
	}
	return n, true
}
