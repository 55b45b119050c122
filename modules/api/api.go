package api

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/vibecoders/site/handler"
	"github.com/vibecoders/site/pkg/binder"
	"github.com/vibecoders/site/pkg/i18n"
	"github.com/vibecoders/site/pkg/logger"
	"github.com/vibecoders/site/pkg/requestid"
	"github.com/vibecoders/site/svc/catalog"
	"github.com/vibecoders/site/svc/dictionary"
	"github.com/vibecoders/site/svc/guide"
)

var ErrMissingDependency = errors.New("api: missing dependency")

type Options struct {
	Catalog    *catalog.Catalog
	Guide      *guide.Guide
	Dictionary *dictionary.Service
	Logger     *slog.Logger
}

type Module struct {
	catalog *catalog.Catalog
	guide   *guide.Guide
	dict    *dictionary.Service
	log     *slog.Logger
}

func New(opts Options) (*Module, error) {
	switch {
	case opts.Catalog == nil:
		return nil, fmt.Errorf("%w: catalog", ErrMissingDependency)
	case opts.Guide == nil:
		return nil, fmt.Errorf("%w: guide", ErrMissingDependency)
	case opts.Dictionary == nil:
		return nil, fmt.Errorf("%w: dictionary", ErrMissingDependency)
	}
	log := opts.Logger
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Module{
		catalog: opts.Catalog,
		guide:   opts.Guide,
		dict:    opts.Dictionary,
		log:     log.With(logger.Component("api")),
	}, nil
}

// Handle returns the API router. Mount it under "/api".
func (m *Module) Handle() http.Handler {
	r := chi.NewRouter()
	r.NotFound(m.fail(handler.ErrNotFound))
	r.MethodNotAllowed(m.fail(handler.ErrMethodNotAllowed))

	r.Get("/categories", wrap(m, m.categories))
	r.Get("/courses", wrap(m, m.courses, binder.Query()))
	r.Get("/courses/{slug}", wrap(m, m.course, binder.Path(chi.URLParam)))
	r.Get("/roadmaps", wrap(m, m.roadmaps))
	r.Get("/roadmaps/{slug}", wrap(m, m.roadmap, binder.Path(chi.URLParam)))
	r.Route("/guide/{locale}", func(r chi.Router) {
		r.Get("/overview", wrap(m, m.overview, binder.Path(chi.URLParam)))
		r.Get("/levels", wrap(m, m.levels, binder.Path(chi.URLParam)))
		r.Get("/levels/{level}", wrap(m, m.level, binder.Path(chi.URLParam)))
	})
	r.Get("/dictionary/{locale}", wrap(m, m.dictionary, binder.Path(chi.URLParam)))
	return r
}

func (m *Module) fail(err error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		m.handleError(handler.NewContext(w, r), err)
	}
}

// handleError logs err at the level its status calls for and writes the
// JSON error envelope.
func (m *Module) handleError(ctx handler.Context, err error) {
	r := ctx.Request()
	info := handler.Classify(err)
	m.log.LogAttrs(ctx, info.LogLevel, "api request error",
		logger.RequestID(requestid.FromContext(ctx)),
		logger.Error(err),
		logger.Status(info.StatusCode),
		logger.Path(r.URL.Path),
	)
	handler.JSONErrorHandler(ctx, err)
}

func wrap[R any](m *Module, h handler.HandlerFunc[handler.Context, R], binders ...handler.Bind) http.HandlerFunc {
	return handler.Wrap(h,
		handler.WithBinders[handler.Context, R](binders...),
		handler.WithErrorHandler[handler.Context, R](m.handleError),
	)
}

type slugRequest struct {
	Slug string `path:"slug"`
}

type coursesRequest struct {
	Category string `query:"category"`
}

type localeRequest struct {
	Locale string `path:"locale"`
}

type levelRequest struct {
	Locale string `path:"locale"`
	Level  int    `path:"level"`
}

func (m *Module) categories(_ handler.Context, _ struct{}) handler.Response {
	categories := m.catalog.ListCategories()
	return handler.JSON(categories, handler.WithJSONMeta(map[string]any{"count": len(categories)}))
}

func (m *Module) courses(_ handler.Context, req coursesRequest) handler.Response {
	courses, err := m.catalog.CoursesByCategory(req.Category)
	if err != nil {
		return handler.Error(notFound(err))
	}
	return handler.JSON(courses, handler.WithJSONMeta(map[string]any{"count": len(courses)}))
}

func (m *Module) course(_ handler.Context, req slugRequest) handler.Response {
	c, err := m.catalog.FindCourseBySlug(req.Slug)
	if err != nil {
		return handler.Error(notFound(err))
	}
	return handler.JSON(c)
}

func (m *Module) roadmaps(_ handler.Context, _ struct{}) handler.Response {
	roadmaps := m.catalog.ListRoadmaps()
	return handler.JSON(roadmaps, handler.WithJSONMeta(map[string]any{"count": len(roadmaps)}))
}

func (m *Module) roadmap(_ handler.Context, req slugRequest) handler.Response {
	rm, err := m.catalog.FindRoadmapBySlug(req.Slug)
	if err != nil {
		return handler.Error(notFound(err))
	}
	return handler.JSON(rm)
}

func (m *Module) overview(_ handler.Context, req localeRequest) handler.Response {
	l := m.locale(req.Locale)
	return handler.JSON(m.guide.Overview(l), localeMeta(l))
}

// levelSummary is the table of contents entry of a level.
type levelSummary struct {
	Level    int      `json:"level"`
	Title    string   `json:"title"`
	Subtitle string   `json:"subtitle"`
	Sections []string `json:"sections"`
}

func (m *Module) levels(_ handler.Context, req localeRequest) handler.Response {
	l := m.locale(req.Locale)
	out := make([]levelSummary, 0, guide.MaxLevel-guide.MinLevel+1)
	for _, n := range guide.Levels() {
		c := m.guide.LevelContent(n, l)
		out = append(out, levelSummary{
			Level:    c.Level,
			Title:    c.Title,
			Subtitle: c.Subtitle,
			Sections: c.SectionKeys(),
		})
	}
	return handler.JSON(out, localeMeta(l))
}

func (m *Module) level(_ handler.Context, req levelRequest) handler.Response {
	l := m.locale(req.Locale)
	c, ok := m.guide.Level(req.Level, l)
	if !ok {
		return handler.Error(handler.ErrNotFound)
	}
	return handler.JSON(c, localeMeta(l))
}

func (m *Module) dictionary(_ handler.Context, req localeRequest) handler.Response {
	d := m.dict.Get(m.locale(req.Locale))
	return handler.JSON(d, localeMeta(d.Locale))
}

// locale maps unsupported values to the default locale.
func (m *Module) locale(s string) i18n.Locale {
	if l, ok := i18n.Parse(s); ok {
		return l
	}
	return i18n.DefaultLocale
}

func localeMeta(l i18n.Locale) handler.JSONOption {
	return handler.WithJSONMeta(map[string]any{"locale": l.String()})
}

func notFound(err error) error {
	switch {
	case errors.Is(err, catalog.ErrCourseNotFound),
		errors.Is(err, catalog.ErrRoadmapNotFound),
		errors.Is(err, catalog.ErrCategoryNotFound):
		return errors.Join(handler.ErrNotFound, err)
	}
	return err
}
