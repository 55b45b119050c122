package pages

import (
	"fmt"
	"log/slog"
	"net/http"
	"slices"
	"time"

	"github.com/a-h/templ"
	"github.com/go-chi/chi/v5"

	"github.com/vibecoders/site/handler"
	"github.com/vibecoders/site/modules/pages/views"
	"github.com/vibecoders/site/pkg/binder"
	"github.com/vibecoders/site/pkg/cookie"
	"github.com/vibecoders/site/pkg/i18n"
	"github.com/vibecoders/site/pkg/logger"
	"github.com/vibecoders/site/svc/catalog"
	"github.com/vibecoders/site/svc/dictionary"
	"github.com/vibecoders/site/svc/guide"
)

const (
	// DefaultFeaturedCount is the number of courses on the home page.
	DefaultFeaturedCount = 3
	// LocaleCookieMaxAge keeps the locale preference for a year.
	LocaleCookieMaxAge = 365 * 24 * 60 * 60
	// QRCodeSize is the edge of the QR code embedded in course pages.
	QRCodeSize = 160
)

// Options configures New. Catalog, Guide and Dictionary are required.
type Options struct {
	Catalog    *catalog.Catalog
	Guide      *guide.Guide
	Dictionary *dictionary.Service

	// Resolver defaults to i18n.NewResolver().
	Resolver *i18n.Resolver
	// Cookies writes the locale cookie. Defaults to cookie.New().
	Cookies *cookie.Manager
	// ErrorHandler defaults to the localized error page.
	ErrorHandler handler.ErrorHandler[handler.Context]
	Logger       *slog.Logger
	// Now is used for the footer year.
	Now           func() time.Time
	FeaturedCount int
}

// Module holds the page handlers.
type Module struct {
	catalog    *catalog.Catalog
	guide      *guide.Guide
	dict       *dictionary.Service
	resolver   *i18n.Resolver
	cookies    *cookie.Manager
	errHandler handler.ErrorHandler[handler.Context]
	log        *slog.Logger
	now        func() time.Time
	featured   int
}

// New validates opts and builds the module.
func New(opts Options) (*Module, error) {
	switch {
	case opts.Catalog == nil:
		return nil, fmt.Errorf("%w: catalog", ErrMissingDependency)
	case opts.Guide == nil:
		return nil, fmt.Errorf("%w: guide", ErrMissingDependency)
	case opts.Dictionary == nil:
		return nil, fmt.Errorf("%w: dictionary", ErrMissingDependency)
	}

	m := &Module{
		catalog:  opts.Catalog,
		guide:    opts.Guide,
		dict:     opts.Dictionary,
		resolver: opts.Resolver,
		cookies:  opts.Cookies,
		log:      opts.Logger,
		now:      opts.Now,
		featured: opts.FeaturedCount,
	}
	if m.resolver == nil {
		m.resolver = i18n.NewResolver()
	}
	if m.cookies == nil {
		m.cookies = cookie.New()
	}
	if m.log == nil {
		m.log = slog.New(slog.DiscardHandler)
	}
	m.log = m.log.With(logger.Component("pages"))
	if m.now == nil {
		m.now = time.Now
	}
	if m.featured <= 0 {
		m.featured = DefaultFeaturedCount
	}

	m.errHandler = opts.ErrorHandler
	if m.errHandler == nil {
		m.errHandler = handler.NewErrorHandler(m.log, handler.ErrorHandlerConfig{
			ErrorPage:  m.errorPage,
			ErrorToast: m.errorToast,
			Translate:  m.dict.ErrorMessage,
		})
	}
	return m, nil
}

// ErrorHandler returns the handler used for page errors. The app reuses it
// for paths no router matches.
func (m *Module) ErrorHandler() handler.ErrorHandler[handler.Context] {
	return m.errHandler
}

// Handle returns the router serving one locale. Mount it under "/{locale}".
func (m *Module) Handle() http.Handler {
	r := chi.NewRouter()
	r.Use(m.localeFromPath)
	r.NotFound(m.fail(handler.ErrNotFound))
	r.MethodNotAllowed(m.fail(handler.ErrMethodNotAllowed))

	r.Get("/", wrap(m, m.home))
	r.Route("/courses", func(r chi.Router) {
		r.Get("/", wrap(m, m.courses, binder.Query(), binder.Signals()))
		r.Get("/{slug}", wrap(m, m.course, binder.Path(chi.URLParam)))
		r.Get("/{slug}/qr.png", wrap(m, m.courseQR, binder.Path(chi.URLParam), binder.Query()))
	})
	r.Route("/roadmaps", func(r chi.Router) {
		r.Get("/", wrap(m, m.roadmaps))
		r.Get("/"+catalog.VibeCodingSlug, wrap(m, m.vibeOverview))
		r.Get("/"+catalog.VibeCodingSlug+"/{level}", wrap(m, m.level, binder.Path(chi.URLParam)))
		r.Get("/{slug}", wrap(m, m.roadmap, binder.Path(chi.URLParam)))
	})
	return r
}

// LocaleSwitch returns the handler of GET /{locale}?next=/path. Mount it
// under an exempt prefix such as "/_locale".
func (m *Module) LocaleSwitch() http.Handler {
	r := chi.NewRouter()
	r.NotFound(m.fail(handler.ErrNotFound))
	r.Get("/{locale}", wrap(m, m.switchLocale, binder.Path(chi.URLParam), binder.Query()))
	return r
}

// StaticRoutes returns every page path for every served locale.
func (m *Module) StaticRoutes() []string {
	var routes []string
	for _, l := range m.resolver.Locales() {
		routes = append(routes,
			views.Href(l),
			views.Href(l, "courses"),
			views.Href(l, "roadmaps"),
			views.Href(l, "roadmaps", catalog.VibeCodingSlug),
		)
		for _, slug := range m.catalog.CourseSlugs() {
			routes = append(routes, views.Href(l, "courses", slug))
		}
		for _, slug := range m.catalog.RoadmapSlugs() {
			if slug == catalog.VibeCodingSlug {
				continue
			}
			routes = append(routes, views.Href(l, "roadmaps", slug))
		}
		for _, n := range guide.Levels() {
			routes = append(routes, views.Href(l, "roadmaps", catalog.VibeCodingSlug, guide.LevelSegment(n)))
		}
	}
	return routes
}

// localeFromPath stores the locale of the mount segment in the request
// context. Unsupported segments are not pages.
func (m *Module) localeFromPath(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		l, ok := i18n.Parse(chi.URLParam(r, "locale"))
		if !ok || !slices.Contains(m.resolver.Locales(), l) {
			m.fail(handler.ErrNotFound)(w, r)
			return
		}
		next.ServeHTTP(w, r.WithContext(i18n.SetLocale(r.Context(), l)))
	})
}

func (m *Module) fail(err error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		m.errHandler(handler.NewContext(w, r), err)
	}
}

func wrap[R any](m *Module, h handler.HandlerFunc[handler.Context, R], binders ...handler.Bind) http.HandlerFunc {
	return handler.Wrap(h,
		handler.WithBinders[handler.Context, R](binders...),
		handler.WithErrorHandler[handler.Context, R](m.errHandler),
	)
}

// page builds the layout data for the current request.
func (m *Module) page(ctx handler.Context, title, description string) views.Page {
	return m.pageFor(ctx.Locale(), ctx.Request().URL.Path, title, description)
}

func (m *Module) pageFor(l i18n.Locale, path, title, description string) views.Page {
	return views.Page{
		Locale:      l,
		Dict:        m.dict.Get(l),
		Path:        path,
		Title:       title,
		Description: description,
		Languages:   m.resolver.LanguageOptions(l, path),
		CookieName:  m.resolver.CookieName(),
		Year:        m.now().Year(),
	}
}

func (m *Module) errorPage(p handler.ErrorPageParams) templ.Component {
	page := m.pageFor(p.Locale, p.Path, m.dict.Get(p.Locale).Errors.Title, "")
	return views.ErrorPage(page, views.ErrorData{
		StatusCode: p.StatusCode,
		Message:    p.Message,
		RequestID:  p.RequestID,
	})
}

func (m *Module) errorToast(p handler.ErrorToastParams) templ.Component {
	return views.ErrorToast(m.pageFor(p.Locale, "", "", ""), views.ToastData{
		Type:      p.Type,
		Message:   p.Message,
		RequestID: p.RequestID,
	})
}
