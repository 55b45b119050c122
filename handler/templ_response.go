package handler

import (
	"context"
	"io"
	"net/http"

	"github.com/starfederation/datastar-go/datastar"
)

// TemplComponent matches templ.Component.
type TemplComponent interface {
	Render(ctx context.Context, w io.Writer) error
}

// TemplOption configures a templ response.
type TemplOption func(*templResponse)

// WithTarget sets the selector DataStar patches.
func WithTarget(selector string) TemplOption {
	return func(t *templResponse) {
		t.patch = append(t.patch, datastar.WithSelector(selector))
	}
}

// WithPatchMode sets how DataStar merges the fragment into the DOM.
func WithPatchMode(mode datastar.ElementPatchMode) TemplOption {
	return func(t *templResponse) {
		t.patch = append(t.patch, datastar.WithMode(mode))
	}
}

// WithStatus sets the HTTP status of a full page render.
// DataStar patches are always sent on a 200 event stream.
func WithStatus(code int) TemplOption {
	return func(t *templResponse) {
		t.status = code
	}
}

type templResponse struct {
	full    TemplComponent
	partial TemplComponent
	status  int
	patch   []datastar.PatchElementOption
}

// Render outputs the partial via SSE for DataStar or the full page as HTML.
func (t templResponse) Render(w http.ResponseWriter, r *http.Request) error {
	if IsDataStar(r) {
		component := t.partial
		if component == nil {
			component = t.full
		}
		return datastar.NewSSE(w, r).PatchElementTempl(component, t.patch...)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if t.status != 0 && t.status != http.StatusOK {
		w.WriteHeader(t.status)
	}
	return t.full.Render(r.Context(), w)
}

// Templ renders a component as a full page, or as a DataStar patch.
//
//	return handler.Templ(views.NotFound(locale), handler.WithStatus(http.StatusNotFound))
func Templ(component TemplComponent, opts ...TemplOption) Response {
	t := templResponse{full: component}
	for _, opt := range opts {
		opt(&t)
	}
	return t
}

// TemplPartial renders partial for DataStar requests and full otherwise.
// The course list uses it so the category filter patches only the grid.
//
//	return handler.TemplPartial(
//		views.CourseGrid(courses),
//		views.CoursesPage(page),
//		handler.WithTarget("#course-grid"),
//	)
func TemplPartial(partial, full TemplComponent, opts ...TemplOption) Response {
	t := templResponse{full: full, partial: partial}
	for _, opt := range opts {
		opt(&t)
	}
	return t
}
