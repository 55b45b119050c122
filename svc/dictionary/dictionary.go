package dictionary

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"log/slog"
	"slices"
	"strconv"

	"github.com/vibecoders/site/pkg/i18n"
	"github.com/vibecoders/site/pkg/logger"
)

//go:embed translations/*.yaml
var embedded embed.FS

// Dictionary is the typed UI string table of one locale.
type Dictionary struct {
	Locale      i18n.Locale `yaml:"-" json:"locale"`
	Meta        Meta        `yaml:"meta" json:"meta"`
	Common      Common      `yaml:"common" json:"common"`
	Home        Home        `yaml:"home" json:"home"`
	Courses     Courses     `yaml:"courses" json:"courses"`
	Roadmaps    Roadmaps    `yaml:"roadmaps" json:"roadmaps"`
	VibeRoadmap VibeRoadmap `yaml:"vibeRoadmap" json:"vibeRoadmap"`
	Errors      Errors      `yaml:"errors" json:"errors"`
}

type Meta struct {
	Title       string `yaml:"title" json:"title"`
	Description string `yaml:"description" json:"description"`
}

type Common struct {
	SiteName        string `yaml:"siteName" json:"siteName"`
	Courses         string `yaml:"courses" json:"courses"`
	Roadmaps        string `yaml:"roadmaps" json:"roadmaps"`
	GetStarted      string `yaml:"getStarted" json:"getStarted"`
	Language        string `yaml:"language" json:"language"`
	Free            string `yaml:"free" json:"free"`
	Paid            string `yaml:"paid" json:"paid"`
	PaidContent     string `yaml:"paidContent" json:"paidContent"`
	ViewDetails     string `yaml:"viewDetails" json:"viewDetails"`
	ViewAll         string `yaml:"viewAll" json:"viewAll"`
	GoToCourse      string `yaml:"goToCourse" json:"goToCourse"`
	CourseDetails   string `yaml:"courseDetails" json:"courseDetails"`
	StartLearning   string `yaml:"startLearning" json:"startLearning"`
	EnterEmail      string `yaml:"enterEmail" json:"enterEmail"`
	JoinWaitlist    string `yaml:"joinWaitlist" json:"joinWaitlist"`
	ContinueToLevel string `yaml:"continueToLevel" json:"continueToLevel"`
	ReadFullContent string `yaml:"readFullContent" json:"readFullContent"`
	LevelLabel      string `yaml:"levelLabel" json:"levelLabel"`
	Step            string `yaml:"step" json:"step"`
	Footer          string `yaml:"footer" json:"footer"`
	ScanToOpen      string `yaml:"scanToOpen" json:"scanToOpen"`
}

// PreviewItem is one entry of the roadmap teaser on the home page.
type PreviewItem struct {
	Title string `yaml:"title" json:"title"`
	Desc  string `yaml:"desc" json:"desc"`
}

type Home struct {
	HeroTitle           string        `yaml:"heroTitle" json:"heroTitle"`
	HeroHighlight       string        `yaml:"heroHighlight" json:"heroHighlight"`
	HeroDescription     string        `yaml:"heroDescription" json:"heroDescription"`
	BrowseCourses       string        `yaml:"browseCourses" json:"browseCourses"`
	LearningPaths       string        `yaml:"learningPaths" json:"learningPaths"`
	FeaturedCourses     string        `yaml:"featuredCourses" json:"featuredCourses"`
	FeaturedCoursesDesc string        `yaml:"featuredCoursesDesc" json:"featuredCoursesDesc"`
	StopGuessing        string        `yaml:"stopGuessing" json:"stopGuessing"`
	StopGuessingDesc    string        `yaml:"stopGuessingDesc" json:"stopGuessingDesc"`
	NoSyntaxRequired    string        `yaml:"noSyntaxRequired" json:"noSyntaxRequired"`
	NoSyntaxDesc        string        `yaml:"noSyntaxDesc" json:"noSyntaxDesc"`
	SevenLevels         string        `yaml:"sevenLevels" json:"sevenLevels"`
	SevenLevelsDesc     string        `yaml:"sevenLevelsDesc" json:"sevenLevelsDesc"`
	StartRoadmap        string        `yaml:"startRoadmap" json:"startRoadmap"`
	RoadmapPreview      string        `yaml:"roadmapPreview" json:"roadmapPreview"`
	MoreLevels          string        `yaml:"moreLevels" json:"moreLevels"`
	Preview             []PreviewItem `yaml:"preview" json:"preview"`
}

type Courses struct {
	AllCourses            string   `yaml:"allCourses" json:"allCourses"`
	AllCoursesDesc        string   `yaml:"allCoursesDesc" json:"allCoursesDesc"`
	SearchPlaceholder     string   `yaml:"searchPlaceholder" json:"searchPlaceholder"`
	AllCategories         string   `yaml:"allCategories" json:"allCategories"`
	Filter                string   `yaml:"filter" json:"filter"`
	Difficulty            string   `yaml:"difficulty" json:"difficulty"`
	Beginner              string   `yaml:"beginner" json:"beginner"`
	Intermediate          string   `yaml:"intermediate" json:"intermediate"`
	Advanced              string   `yaml:"advanced" json:"advanced"`
	NoCourses             string   `yaml:"noCourses" json:"noCourses"`
	BackToCourses         string   `yaml:"backToCourses" json:"backToCourses"`
	WhyGood               string   `yaml:"whyGood" json:"whyGood"`
	WhyGoodPoints         []string `yaml:"whyGoodPoints" json:"whyGoodPoints"`
	WhatYouLearn          string   `yaml:"whatYouLearn" json:"whatYouLearn"`
	WhatYouLearnPoints    []string `yaml:"whatYouLearnPoints" json:"whatYouLearnPoints"`
	Platform              string   `yaml:"platform" json:"platform"`
	Language              string   `yaml:"language" json:"language"`
	RecommendedFor        string   `yaml:"recommendedFor" json:"recommendedFor"`
	RecommendedForDefault string   `yaml:"recommendedForDefault" json:"recommendedForDefault"`
}

// DifficultyLabel returns the localized label of a difficulty value.
// Unknown values are returned unchanged.
func (c Courses) DifficultyLabel(difficulty string) string {
	switch difficulty {
	case "beginner":
		return c.Beginner
	case "intermediate":
		return c.Intermediate
	case "advanced":
		return c.Advanced
	}
	return difficulty
}

type Roadmaps struct {
	Title            string   `yaml:"title" json:"title"`
	Description      string   `yaml:"description" json:"description"`
	FeaturedRoadmap  string   `yaml:"featuredRoadmap" json:"featuredRoadmap"`
	StartTheRoadmap  string   `yaml:"startTheRoadmap" json:"startTheRoadmap"`
	Tags             []string `yaml:"tags" json:"tags"`
	MoreRoadmaps     string   `yaml:"moreRoadmaps" json:"moreRoadmaps"`
	ViewFullRoadmap  string   `yaml:"viewFullRoadmap" json:"viewFullRoadmap"`
	MoreCourses      string   `yaml:"moreCourses" json:"moreCourses"`
	BackToRoadmaps   string   `yaml:"backToRoadmaps" json:"backToRoadmaps"`
	ReadyForNext     string   `yaml:"readyForNext" json:"readyForNext"`
	ReadyForNextDesc string   `yaml:"readyForNextDesc" json:"readyForNextDesc"`
}

type VibeRoadmap struct {
	Title                string `yaml:"title" json:"title"`
	Summary              string `yaml:"summary" json:"summary"`
	ForYouIf             string `yaml:"forYouIf" json:"forYouIf"`
	WhatYouWillLearn     string `yaml:"whatYouWillLearn" json:"whatYouWillLearn"`
	WhatYouWillNotLearn  string `yaml:"whatYouWillNotLearn" json:"whatYouWillNotLearn"`
	AfterThisLevel       string `yaml:"afterThisLevel" json:"afterThisLevel"`
	ReadyToStart         string `yaml:"readyToStart" json:"readyToStart"`
	ReadyToStartDesc     string `yaml:"readyToStartDesc" json:"readyToStartDesc"`
	BeginLevel0          string `yaml:"beginLevel0" json:"beginLevel0"`
	BackToRoadmap        string `yaml:"backToRoadmap" json:"backToRoadmap"`
	RoadmapOverview      string `yaml:"roadmapOverview" json:"roadmapOverview"`
	YourResponsibilities string `yaml:"yourResponsibilities" json:"yourResponsibilities"`
	AIResponsibilities   string `yaml:"aiResponsibilities" json:"aiResponsibilities"`
	RoadmapComplete      string `yaml:"roadmapComplete" json:"roadmapComplete"`
	RoadmapCompleteDesc  string `yaml:"roadmapCompleteDesc" json:"roadmapCompleteDesc"`
}

type Errors struct {
	Title     string `yaml:"title" json:"title"`
	BackHome  string `yaml:"backHome" json:"backHome"`
	RequestID string `yaml:"requestId" json:"requestId"`
}

// Service holds the decoded dictionary of every supported locale.
type Service struct {
	def   i18n.Locale
	dicts map[i18n.Locale]Dictionary
	tr    *i18n.Translator
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

// WithFS loads translation tables from dir in fsys instead of the
// embedded ones.
func WithFS(fsys fs.FS, dir string) Option {
	return func(o *options) {
		if fsys != nil {
			o.fsys = fsys
			o.dir = dir
		}
	}
}

// WithDefaultLocale sets the locale used for unsupported locales and
// missing keys.
func WithDefaultLocale(l i18n.Locale) Option {
	return func(o *options) {
		o.def = l
	}
}

// WithLocales sets the locales that must have a table.
func WithLocales(locales ...i18n.Locale) Option {
	return func(o *options) {
		if len(locales) > 0 {
			o.locales = slices.Clone(locales)
		}
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// New loads the translation tables and decodes one Dictionary per locale.
// Keys a locale lacks take the default locale's value.
func New(ctx context.Context, opts ...Option) (*Service, error) {
	o := &options{
		fsys:    embedded,
		dir:     "translations",
		def:     i18n.DefaultLocale,
		locales: i18n.Supported(),
		logger:  slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(o)
	}

	if !i18n.IsSupported(string(o.def)) {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDefault, o.def)
	}

	adapter, err := i18n.NewFSAdapter(i18n.NewYAMLParser(), o.fsys, o.dir)
	if err != nil {
		return nil, err
	}

	tr, err := i18n.NewTranslator(ctx, adapter,
		i18n.WithDefaultLanguage(o.def.String()),
		i18n.WithLogger(o.logger),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFailedToLoad, err)
	}

	available := tr.SupportedLanguages()
	s := &Service{
		def:   o.def,
		dicts: make(map[i18n.Locale]Dictionary, len(o.locales)),
		tr:    tr,
	}
	for _, l := range append([]i18n.Locale{o.def}, o.locales...) {
		if _, done := s.dicts[l]; done {
			continue
		}
		if !slices.Contains(available, l.String()) {
			return nil, fmt.Errorf("%w: %s", ErrMissingLocale, l)
		}

		var d Dictionary
		if err := tr.Decode(l.String(), &d); err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrFailedToLoad, l, err)
		}
		d.Locale = l
		s.dicts[l] = d
	}

	o.logger.InfoContext(ctx, "dictionaries loaded",
		logger.Component("dictionary"),
		logger.Count(len(s.dicts)),
	)

	return s, nil
}

// Get returns the dictionary of l, or the default locale's dictionary when
// l is not supported.
func (s *Service) Get(l i18n.Locale) Dictionary {
	if d, ok := s.dicts[l]; ok {
		return d
	}
	return s.dicts[s.def]
}

// Translator exposes the underlying key lookups, e.g. for templated
// strings and error keys.
func (s *Service) Translator() *i18n.Translator {
	return s.tr
}

// T looks up a dotted key for locale and substitutes {name} placeholders.
func (s *Service) T(l i18n.Locale, key string, args ...string) string {
	return s.tr.T(l.String(), key, args...)
}

// ErrorMessage returns the localized message of an error key such as
// "not_found".
func (s *Service) ErrorMessage(l i18n.Locale, key string) string {
	return s.tr.T(l.String(), "errors."+key)
}

// Footer renders the footer line for the given year.
func (d Dictionary) Footer(year int) string {
	return i18n.Format(d.Common.Footer, "year", strconv.Itoa(year))
}

// LevelLabel renders "Level N" for the locale.
func (d Dictionary) LevelLabel(level int) string {
	return i18n.Format(d.Common.LevelLabel, "level", strconv.Itoa(level))
}

// ReadFullContent renders the "read level N" call to action.
func (d Dictionary) ReadFullContent(level int) string {
	return i18n.Format(d.Common.ReadFullContent, "level", strconv.Itoa(level))
}

// Step renders the "Step N" label.
func (d Dictionary) Step(n int) string {
	return i18n.Format(d.Common.Step, "step", strconv.Itoa(n))
}

// MoreCourses renders the "+ N more courses" note.
func (d Dictionary) MoreCourses(n int) string {
	return i18n.Format(d.Roadmaps.MoreCourses, "count", strconv.Itoa(n))
}

// RequestID renders the request id line of error pages.
func (d Dictionary) RequestID(id string) string {
	return i18n.Format(d.Errors.RequestID, "id", id)
}
