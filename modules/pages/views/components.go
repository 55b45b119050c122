package views

import (
	"encoding/json"
	"html/template"

	"github.com/a-h/templ"

	"github.com/vibecoders/site/svc/catalog"
	"github.com/vibecoders/site/svc/guide"
)

// HomeData feeds the home page.
type HomeData struct {
	Featured []catalog.Course
}

func HomePage(p Page, d HomeData) templ.Component {
	return render("home", "layout", p, d)
}

// CourseFilter is the current state of the course list controls.
type CourseFilter struct {
	Category   string `json:"category"`
	Difficulty string `json:"difficulty"`
	Query      string `json:"q"`
}

// Signals is the DataStar signal object mirroring the filter.
func (f CourseFilter) Signals() string {
	b, err := json.Marshal(f)
	if err != nil {
		return "{}"
	}
	return string(b)
}

// CoursesData feeds the course list and its grid fragment.
type CoursesData struct {
	Filter     CourseFilter
	Categories []catalog.Category
	Courses    []catalog.Course
}

func CoursesPage(p Page, d CoursesData) templ.Component {
	return render("courses", "layout", p, d)
}

// CourseGrid is the fragment the filter controls patch in place.
func CourseGrid(p Page, d CoursesData) templ.Component {
	return render("courses", "course-grid", p, d)
}

// CourseData feeds the course detail page. QRCode is a data URI of the
// external link, empty when it could not be generated.
type CourseData struct {
	Course catalog.Course
	QRCode template.URL
}

func CoursePage(p Page, d CourseData) templ.Component {
	return render("course", "layout", p, d)
}

// RoadmapsData feeds the roadmap index. Roadmaps excludes the featured
// vibe coding roadmap.
type RoadmapsData struct {
	Roadmaps []catalog.Roadmap
}

func RoadmapsPage(p Page, d RoadmapsData) templ.Component {
	return render("roadmaps", "layout", p, d)
}

func RoadmapPage(p Page, rm catalog.Roadmap) templ.Component {
	return render("roadmap", "layout", p, rm)
}

func VibeOverviewPage(p Page, o guide.Overview) templ.Component {
	return render("vibe", "layout", p, o)
}

// LevelData feeds a level page. Prev is -1 on the first level and Next is
// -1 on the last one.
type LevelData struct {
	Content guide.LevelContent
	Prev    int
	Next    int
}

// NewLevelData computes the neighbours of a level.
func NewLevelData(c guide.LevelContent) LevelData {
	d := LevelData{Content: c, Prev: c.Level - 1, Next: c.Level + 1}
	if d.Prev < guide.MinLevel {
		d.Prev = -1
	}
	if d.Next > guide.MaxLevel {
		d.Next = -1
	}
	return d
}

// IsLast reports whether this is the final level.
func (d LevelData) IsLast() bool { return d.Next < 0 }

// PrevSegment and NextSegment return the "level-N" path segments.
func (d LevelData) PrevSegment() string { return guide.LevelSegment(d.Prev) }
func (d LevelData) NextSegment() string { return guide.LevelSegment(d.Next) }

// ErrorData feeds the error page.
type ErrorData struct {
	StatusCode int
	Message    string
	RequestID  string
}

func ErrorPage(p Page, d ErrorData) templ.Component {
	return render("error", "layout", p, d)
}

// ToastData feeds the DataStar error toast.
type ToastData struct {
	Type      string
	Message   string
	RequestID string
}

func ErrorToast(p Page, d ToastData) templ.Component {
	return render("error", "toast", p, d)
}

func LevelPage(p Page, d LevelData) templ.Component {
	return render("level", "layout", p, d)
}
