package pages

import (
	"errors"
	"html/template"
	"net/url"
	"strings"

	"github.com/vibecoders/site/handler"
	"github.com/vibecoders/site/modules/pages/views"
	"github.com/vibecoders/site/pkg/cookie"
	"github.com/vibecoders/site/pkg/i18n"
	"github.com/vibecoders/site/pkg/logger"
	"github.com/vibecoders/site/pkg/qrcode"
	"github.com/vibecoders/site/svc/catalog"
	"github.com/vibecoders/site/svc/guide"
)

type slugRequest struct {
	Slug string `path:"slug"`
}

type coursesRequest struct {
	Category   string `query:"category" json:"category"`
	Difficulty string `query:"difficulty" json:"difficulty"`
	Query      string `query:"q" json:"q"`
}

type qrRequest struct {
	Slug string `path:"slug"`
	Size int    `query:"size"`
}

type levelRequest struct {
	Level string `path:"level"`
}

type switchRequest struct {
	Locale string `path:"locale"`
	Next   string `query:"next"`
}

func (m *Module) home(ctx handler.Context, _ struct{}) handler.Response {
	return handler.Templ(views.HomePage(m.page(ctx, "", ""), views.HomeData{
		Featured: m.catalog.FeaturedCourses(m.featured),
	}))
}

func (m *Module) courses(ctx handler.Context, req coursesRequest) handler.Response {
	dict := m.dict.Get(ctx.Locale())
	data := views.CoursesData{
		Filter: views.CourseFilter{
			Category:   req.Category,
			Difficulty: req.Difficulty,
			Query:      strings.TrimSpace(req.Query),
		},
		Categories: m.catalog.ListCategories(),
		Courses:    m.filterCourses(req),
	}

	p := m.page(ctx, dict.Courses.AllCourses, dict.Courses.AllCoursesDesc)
	return handler.TemplPartial(
		views.CourseGrid(p, data),
		views.CoursesPage(p, data),
		handler.WithTarget("#course-grid"),
		handler.WithPatchMode(handler.PatchOuter),
	)
}

// filterCourses applies the list filters. An unknown category matches
// nothing; an unknown difficulty is ignored.
func (m *Module) filterCourses(req coursesRequest) []catalog.Course {
	courses, err := m.catalog.CoursesByCategory(req.Category)
	if err != nil {
		return nil
	}

	difficulty := catalog.Difficulty(req.Difficulty)
	query := strings.ToLower(strings.TrimSpace(req.Query))

	out := courses[:0]
	for _, c := range courses {
		if difficulty.IsValid() && c.Difficulty != difficulty {
			continue
		}
		if query != "" && !matches(c, query) {
			continue
		}
		out = append(out, c)
	}
	return out
}

func matches(c catalog.Course, query string) bool {
	for _, field := range []string{c.Title, c.ShortDescription, c.Platform, c.Category.Name} {
		if strings.Contains(strings.ToLower(field), query) {
			return true
		}
	}
	return false
}

func (m *Module) course(ctx handler.Context, req slugRequest) handler.Response {
	c, err := m.catalog.FindCourseBySlug(req.Slug)
	if err != nil {
		return handler.Error(notFound(err))
	}

	data := views.CourseData{Course: c}
	if uri, err := qrcode.DataURI(c.ExternalURL, qrcode.WithSize(QRCodeSize)); err != nil {
		m.log.WarnContext(ctx, "course qr code", logger.Slug(c.Slug), logger.Error(err))
	} else {
		data.QRCode = template.URL(uri)
	}

	return handler.Templ(views.CoursePage(m.page(ctx, c.Title, c.ShortDescription), data))
}

func (m *Module) courseQR(ctx handler.Context, req qrRequest) handler.Response {
	c, err := m.catalog.FindCourseBySlug(req.Slug)
	if err != nil {
		return handler.Error(notFound(err))
	}

	png, err := qrcode.Generate(c.ExternalURL, qrcode.WithSize(req.Size))
	if err != nil {
		return handler.Error(errors.Join(handler.ErrInternalServerError, err))
	}
	return handler.Blob("image/png", png,
		handler.WithCacheControl("public, max-age=86400"),
		handler.WithFilename(c.Slug+".png"),
	)
}

func (m *Module) roadmaps(ctx handler.Context, _ struct{}) handler.Response {
	dict := m.dict.Get(ctx.Locale())

	var others []catalog.Roadmap
	for _, rm := range m.catalog.ListRoadmaps() {
		if rm.Slug != catalog.VibeCodingSlug {
			others = append(others, rm)
		}
	}
	return handler.Templ(views.RoadmapsPage(
		m.page(ctx, dict.Roadmaps.Title, dict.Roadmaps.Description),
		views.RoadmapsData{Roadmaps: others},
	))
}

func (m *Module) roadmap(ctx handler.Context, req slugRequest) handler.Response {
	// The vibe coding roadmap has its own pages and no catalog view.
	if req.Slug == catalog.VibeCodingSlug {
		return handler.Error(handler.ErrNotFound)
	}
	rm, err := m.catalog.FindRoadmapBySlug(req.Slug)
	if err != nil {
		return handler.Error(notFound(err))
	}
	return handler.Templ(views.RoadmapPage(m.page(ctx, rm.Title, rm.Description), rm))
}

func (m *Module) vibeOverview(ctx handler.Context, _ struct{}) handler.Response {
	dict := m.dict.Get(ctx.Locale())
	return handler.Templ(views.VibeOverviewPage(
		m.page(ctx, dict.VibeRoadmap.Title, dict.VibeRoadmap.Summary),
		m.guide.Overview(ctx.Locale()),
	))
}

func (m *Module) level(ctx handler.Context, req levelRequest) handler.Response {
	n, ok := guide.ParseLevelSegment(req.Level)
	if !ok {
		return handler.Error(handler.ErrNotFound)
	}
	content, ok := m.guide.Level(n, ctx.Locale())
	if !ok {
		return handler.Error(handler.ErrNotFound)
	}

	return handler.Templ(views.LevelPage(m.page(ctx, content.Title, content.Subtitle), views.NewLevelData(content)))
}

// switchLocale stores the chosen locale in the cookie the resolver reads
// and redirects to the current page in that locale.
func (m *Module) switchLocale(ctx handler.Context, req switchRequest) handler.Response {
	l, ok := i18n.Parse(req.Locale)
	if !ok {
		return handler.Error(handler.ErrBadRequest)
	}

	if err := m.cookies.Set(ctx.ResponseWriter(), m.resolver.CookieName(), l.String(),
		cookie.WithPath("/"),
		cookie.WithMaxAge(LocaleCookieMaxAge),
		cookie.WithHTTPOnly(false),
	); err != nil {
		return handler.Error(errors.Join(handler.ErrInternalServerError, err))
	}

	return handler.Redirect(m.resolver.SwitchPath(safeNext(req.Next), l))
}

// safeNext keeps only same-site absolute paths.
func safeNext(next string) string {
	u, err := url.Parse(next)
	if err != nil || u.IsAbs() || u.Host != "" || !strings.HasPrefix(u.Path, "/") || strings.HasPrefix(u.Path, "//") {
		return "/"
	}
	return u.Path
}

func notFound(err error) error {
	if errors.Is(err, catalog.ErrCourseNotFound) || errors.Is(err, catalog.ErrRoadmapNotFound) {
		return errors.Join(handler.ErrNotFound, err)
	}
	return err
}
