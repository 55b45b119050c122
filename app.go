package site

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"path"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/vibecoders/site/handler"
	"github.com/vibecoders/site/modules/api"
	"github.com/vibecoders/site/modules/pages"
	"github.com/vibecoders/site/pkg/cache"
	"github.com/vibecoders/site/pkg/compress"
	"github.com/vibecoders/site/pkg/cookie"
	"github.com/vibecoders/site/pkg/environment"
	"github.com/vibecoders/site/pkg/httpserver"
	"github.com/vibecoders/site/pkg/i18n"
	"github.com/vibecoders/site/pkg/logger"
	"github.com/vibecoders/site/pkg/metrics"
	"github.com/vibecoders/site/pkg/requestid"
	"github.com/vibecoders/site/svc/catalog"
	"github.com/vibecoders/site/svc/dictionary"
	"github.com/vibecoders/site/svc/guide"
)

//go:embed static
var staticFiles embed.FS

// App is the assembled site. Build it with New.
type App struct {
	cfg      Config
	log      *slog.Logger
	catalog  *catalog.Catalog
	resolver *i18n.Resolver
	pages    *pages.Module
	metrics  *metrics.Metrics
	static   fs.FS
	handler  http.Handler
}

type options struct {
	log      *slog.Logger
	source   catalog.Source
	registry *prometheus.Registry
	now      func() time.Time
}

// Option configures New.
type Option func(*options)

func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.log = l
		}
	}
}

// WithCatalogSource replaces the built-in course catalog.
func WithCatalogSource(src catalog.Source) Option {
	return func(o *options) {
		if src != nil {
			o.source = src
		}
	}
}

// WithRegistry registers the site metrics with reg instead of a private
// registry.
func WithRegistry(reg *prometheus.Registry) Option {
	return func(o *options) { o.registry = reg }
}

// WithClock replaces time.Now for the footer year.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		if now != nil {
			o.now = now
		}
	}
}

// New loads the content services and builds the request pipeline. Content
// is validated here, so a returned App never fails a lookup on bad data.
func New(ctx context.Context, cfg Config, opts ...Option) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	o := &options{
		log:    slog.New(slog.DiscardHandler),
		source: catalog.NewInMemSource(catalog.DefaultData()),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(o)
	}

	def := cfg.defaultLocale()

	cat, err := catalog.New(ctx, o.source, catalog.WithLogger(o.log))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFailedToBuild, err)
	}
	// The guide keeps English as its base track; the default locale only
	// changes which track unknown locales read.
	g, err := guide.New(ctx, guide.WithLogger(o.log))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFailedToBuild, err)
	}
	dict, err := dictionary.New(ctx, dictionary.WithDefaultLocale(def), dictionary.WithLogger(o.log))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFailedToBuild, err)
	}

	resolver := i18n.NewResolver(
		i18n.WithDefault(def),
		i18n.WithCookieName(cfg.LocaleCookieName),
	)

	pagesModule, err := pages.New(pages.Options{
		Catalog:       cat,
		Guide:         g,
		Dictionary:    dict,
		Resolver:      resolver,
		Cookies:       cookie.NewFromConfig(cfg.Cookie),
		Logger:        o.log,
		Now:           o.now,
		FeaturedCount: cfg.FeaturedCourses,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFailedToBuild, err)
	}

	apiModule, err := api.New(api.Options{
		Catalog:    cat,
		Guide:      g,
		Dictionary: dict,
		Logger:     o.log,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFailedToBuild, err)
	}

	m, err := metrics.New(o.registry, metrics.WithNamespace("site"))
	if err != nil {
		return nil, fmt.Errorf("%w: metrics: %w", ErrFailedToBuild, err)
	}

	static, err := fs.Sub(staticFiles, "static")
	if err != nil {
		return nil, fmt.Errorf("%w: static files: %w", ErrFailedToBuild, err)
	}

	a := &App{
		cfg:      cfg,
		log:      o.log,
		catalog:  cat,
		resolver: resolver,
		pages:    pagesModule,
		metrics:  m,
		static:   static,
	}
	a.handler = a.routes(apiModule)

	o.log.InfoContext(ctx, "site ready",
		logger.Component("app"),
		logger.Locale(def.String()),
		logger.Count(len(a.StaticRoutes())),
	)
	return a, nil
}

// Handler returns the root handler with the full middleware chain.
func (a *App) Handler() http.Handler {
	return a.handler
}

// Metrics returns the collectors fed by the request pipeline.
func (a *App) Metrics() *metrics.Metrics {
	return a.metrics
}

// StaticRoutes lists every localized page followed by the static assets.
func (a *App) StaticRoutes() []string {
	routes := a.pages.StaticRoutes()
	err := fs.WalkDir(a.static, ".", func(p string, d fs.DirEntry, err error) error {
		if err == nil && !d.IsDir() {
			routes = append(routes, path.Join("/static", p))
		}
		return err
	})
	if err != nil {
		a.log.Warn("static asset walk failed", logger.Error(err))
	}
	return routes
}

// Run serves the site until ctx is canceled, then shuts down gracefully.
func (a *App) Run(ctx context.Context) error {
	srv := httpserver.NewFromConfig(a.cfg.HTTP, httpserver.WithLogger(a.log))
	return srv.Run(ctx, a.handler)
}

func (a *App) routes(apiModule *api.Module) http.Handler {
	r := chi.NewRouter()

	r.Use(
		requestid.Middleware,
		environment.Middleware(environment.Parse(a.cfg.AppEnv)),
		a.metrics.Middleware,
		i18n.Middleware(a.resolver,
			i18n.WithRedirectLogger(a.log),
			i18n.WithRedirectHook(func(_ *http.Request, res i18n.Resolution) {
				a.metrics.LocaleRedirect(res.Locale.String(), string(res.Source))
			}),
		),
	)
	if a.cfg.PageCacheSize > 0 {
		r.Use(cache.PageCache(cache.NewLRUCache[string, *cache.Page](a.cfg.PageCacheSize),
			cache.WithTTL(a.cfg.PageCacheTTL),
			cache.WithKeyFunc(a.pageCacheKey),
			cache.WithSkipper(a.skipPageCache),
			cache.WithHitHook(func(*http.Request) { a.metrics.PageCacheHit() }),
			cache.WithMissHook(func(*http.Request) { a.metrics.PageCacheMiss() }),
		))
	}
	if a.cfg.CompressionEnabled {
		r.Use(compress.Middleware())
	}

	notFound := func(w http.ResponseWriter, r *http.Request) {
		a.pages.ErrorHandler()(handler.NewContext(w, r), handler.ErrNotFound)
	}
	r.NotFound(notFound)
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		a.pages.ErrorHandler()(handler.NewContext(w, r), handler.ErrMethodNotAllowed)
	})

	r.Get("/healthz", httpserver.HealthCheckHandler(a.log, httpserver.HealthCheck{
		Name:  "catalog",
		Check: a.checkCatalog,
	}))
	if a.cfg.MetricsEnabled {
		r.Handle("/metrics", a.metrics.Handler())
	}
	r.Handle("/static/*", a.staticHandler())
	r.Mount("/api", apiModule.Handle())
	r.Mount("/_locale", a.pages.LocaleSwitch())
	r.Mount("/{locale}", a.pages.Handle())

	return r
}

// staticHandler serves the embedded assets. Production responses may be
// cached by browsers; elsewhere they are revalidated so edits show up.
func (a *App) staticHandler() http.Handler {
	files := http.StripPrefix("/static/", http.FileServerFS(a.static))
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if environment.IsProduction(r.Context()) {
			w.Header().Set("Cache-Control", "public, max-age=3600")
		} else {
			w.Header().Set("Cache-Control", "no-cache")
		}
		files.ServeHTTP(w, r)
	})
}

// pageCacheKey separates brotli bodies from identity ones, since the cache
// sits outside the compressor.
func (a *App) pageCacheKey(r *http.Request) string {
	key := r.URL.RequestURI()
	if a.cfg.CompressionEnabled && compress.AcceptsBrotli(r.Header.Get("Accept-Encoding")) {
		key += "|br"
	}
	return key
}

func (a *App) skipPageCache(r *http.Request) bool {
	return handler.IsDataStar(r) || a.resolver.IsExempt(r.URL.Path)
}

func (a *App) checkCatalog(context.Context) error {
	if len(a.catalog.ListCourses()) == 0 {
		return ErrEmptyCatalog
	}
	return nil
}
