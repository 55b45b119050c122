package views

import (
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"path"
	"strconv"
	"strings"

	"github.com/a-h/templ"

	"github.com/vibecoders/site/pkg/i18n"
	"github.com/vibecoders/site/svc/dictionary"
	"github.com/vibecoders/site/svc/guide"
)

//go:embed templates
var templateFS embed.FS

// Page carries what the layout needs on every page.
type Page struct {
	Locale      i18n.Locale
	Dict        dictionary.Dictionary
	Path        string
	Title       string
	Description string
	Languages   []i18n.LanguageOption
	CookieName  string
	Year        int
}

// PageTitle is the document title: the page title followed by the site
// name, or the default meta title.
func (p Page) PageTitle() string {
	if p.Title == "" {
		return p.Dict.Meta.Title
	}
	return p.Title + " | " + p.Dict.Common.SiteName
}

// MetaDescription falls back to the site description.
func (p Page) MetaDescription() string {
	if p.Description == "" {
		return p.Dict.Meta.Description
	}
	return p.Description
}

// view is the value every template executes against.
type view struct {
	Page
	Data any
}

var pages = mustParse()

func mustParse() map[string]*template.Template {
	base := template.Must(template.New("").Funcs(funcs).ParseFS(templateFS,
		"templates/layout.html",
		"templates/partials.html",
	))

	entries, err := fs.Glob(templateFS, "templates/pages/*.html")
	if err != nil {
		panic(err)
	}

	out := make(map[string]*template.Template, len(entries))
	for _, entry := range entries {
		t := template.Must(template.Must(base.Clone()).ParseFS(templateFS, entry))
		out[strings.TrimSuffix(path.Base(entry), ".html")] = t
	}
	return out
}

// render adapts the named template of a page set to templ.Component.
func render(page, name string, p Page, data any) templ.Component {
	set, ok := pages[page]
	if !ok {
		panic(fmt.Sprintf("views: unknown page %q", page))
	}
	t := set.Lookup(name)
	if t == nil {
		panic(fmt.Sprintf("views: page %q has no template %q", page, name))
	}
	return templ.FromGoHTML(t, view{Page: p, Data: data})
}

var funcs = template.FuncMap{
	"paragraphs":   Paragraphs,
	"emphasis":     Emphasis,
	"href":         Href,
	"add":          func(a, b int) int { return a + b },
	"sub":          func(a, b int) int { return a - b },
	"itoa":         strconv.Itoa,
	"levelSegment": guide.LevelSegment,
	"bind":         func(v view, data any) view { return view{Page: v.Page, Data: data} },
}

// Href joins path segments under the locale prefix.
//
//	Href("ko", "roadmaps", "vibe-coding") == "/ko/roadmaps/vibe-coding"
func Href(l i18n.Locale, segments ...string) string {
	var b strings.Builder
	b.WriteString("/")
	b.WriteString(l.String())
	for _, s := range segments {
		if s == "" {
			continue
		}
		b.WriteString("/")
		b.WriteString(strings.Trim(s, "/"))
	}
	return b.String()
}

// Paragraphs renders long-form text: blank lines separate paragraphs and
// "**" toggles bold.
func Paragraphs(text string) template.HTML {
	var b strings.Builder
	for _, para := range strings.Split(text, "\n\n") {
		para = strings.TrimSpace(para)
		if para == "" {
			continue
		}
		b.WriteString("<p>")
		b.WriteString(string(Emphasis(para)))
		b.WriteString("</p>")
	}
	return template.HTML(b.String())
}

// Emphasis escapes text and wraps every "**"-delimited run in <strong>.
// An unterminated run is closed at the end of the text.
func Emphasis(text string) template.HTML {
	var b strings.Builder
	parts := strings.Split(text, "**")
	for i, part := range parts {
		if i%2 == 1 {
			b.WriteString("<strong>")
			b.WriteString(template.HTMLEscapeString(part))
			b.WriteString("</strong>")
			continue
		}
		lines := strings.Split(part, "\n")
		for j, line := range lines {
			if j > 0 {
				b.WriteString("<br>")
			}
			b.WriteString(template.HTMLEscapeString(line))
		}
	}
	return template.HTML(b.String())
}
