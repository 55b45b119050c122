package export

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"runtime"
	"slices"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/vibecoders/site/pkg/file"
	"github.com/vibecoders/site/pkg/logger"
)

// Page is one exported route.
type Page struct {
	Route string
	Path  string
	Size  int64
}

// Result summarises an export run. Pages are sorted by route.
type Result struct {
	Pages    []Page
	Bytes    int64
	Duration time.Duration
}

type Option func(*Exporter)

// WithWorkers bounds the number of routes rendered at once.
func WithWorkers(n int) Option {
	return func(e *Exporter) {
		if n > 0 {
			e.workers = n
		}
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(e *Exporter) {
		if l != nil {
			e.log = l
		}
	}
}

// WithClean removes dir from the storage before writing, so pages of
// routes that no longer exist disappear.
func WithClean(dir string) Option {
	return func(e *Exporter) {
		e.clean = true
		e.cleanDir = dir
	}
}

// WithHeader adds a request header to every rendered route.
func WithHeader(key, value string) Option {
	return func(e *Exporter) {
		e.header.Add(key, value)
	}
}

// Exporter writes rendered routes to a storage.
type Exporter struct {
	h        http.Handler
	store    file.Storage
	workers  int
	log      *slog.Logger
	clean    bool
	cleanDir string
	header   http.Header
}

func New(h http.Handler, store file.Storage, opts ...Option) (*Exporter, error) {
	if h == nil {
		return nil, ErrNilHandler
	}
	if store == nil {
		return nil, ErrNilStorage
	}

	e := &Exporter{
		h:       h,
		store:   store,
		workers: runtime.GOMAXPROCS(0),
		log:     slog.New(slog.DiscardHandler),
		header:  make(http.Header),
	}
	for _, opt := range opts {
		opt(e)
	}
	e.log = e.log.With(logger.Component("export"))
	return e, nil
}

// Export renders every route and stores its page. Duplicate routes are
// rendered once. It stops at the first route that fails to render or
// store.
func (e *Exporter) Export(ctx context.Context, routes []string) (Result, error) {
	start := time.Now()

	routes = slices.Compact(slices.Sorted(slices.Values(routes)))
	if len(routes) == 0 {
		return Result{}, ErrNoRoutes
	}

	if e.clean {
		if err := e.store.DeleteDir(ctx, e.cleanDir); err != nil && !errors.Is(err, file.ErrDirectoryNotFound) {
			return Result{}, fmt.Errorf("%w: clean %q: %w", ErrFailedToWrite, e.cleanDir, err)
		}
	}

	var (
		mu    sync.Mutex
		pages = make([]Page, 0, len(routes))
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.workers)
	for _, route := range routes {
		g.Go(func() error {
			page, err := e.exportRoute(gctx, route)
			if err != nil {
				return err
			}
			mu.Lock()
			pages = append(pages, page)
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Result{}, err
	}

	slices.SortFunc(pages, func(a, b Page) int { return strings.Compare(a.Route, b.Route) })
	res := Result{Pages: pages, Duration: time.Since(start)}
	for _, p := range pages {
		res.Bytes += p.Size
	}

	e.log.InfoContext(ctx, "static export finished",
		logger.Count(len(res.Pages)),
		slog.Int64("bytes", res.Bytes),
		logger.Duration(res.Duration),
	)
	return res, nil
}

func (e *Exporter) exportRoute(ctx context.Context, route string) (Page, error) {
	if err := ctx.Err(); err != nil {
		return Page{}, err
	}

	key, err := file.PagePath(route)
	if err != nil {
		return Page{}, fmt.Errorf("%w: %s: %w", ErrFailedToWrite, route, err)
	}

	req := httptest.NewRequestWithContext(ctx, http.MethodGet, route, nil)
	for k, v := range e.header {
		req.Header[k] = slices.Clone(v)
	}
	rec := httptest.NewRecorder()
	e.h.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		return Page{}, fmt.Errorf("%w: %s answered %d", ErrUnexpectedStatus, route, rec.Code)
	}

	body := rec.Body.Bytes()
	obj, err := e.store.Put(ctx, key, bytes.NewReader(body), file.ContentType(key))
	if err != nil {
		return Page{}, fmt.Errorf("%w: %s: %w", ErrFailedToWrite, route, err)
	}

	e.log.DebugContext(ctx, "page exported", logger.Route(route), slog.String("key", obj.Path))
	return Page{Route: route, Path: obj.Path, Size: int64(len(body))}, nil
}
