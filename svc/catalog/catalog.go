package catalog

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"github.com/vibecoders/site/pkg/logger"
	"github.com/vibecoders/site/pkg/slug"
)

// VibeCodingSlug identifies the roadmap whose content lives in the guide
// service instead of the course catalog.
const VibeCodingSlug = "vibe-coding"

// Catalog is an immutable, validated view of categories, courses and roadmaps.
// It is safe for concurrent use.
type Catalog struct {
	categories []Category
	courses    []Course
	roadmaps   []Roadmap

	courseBySlug   map[string]int
	roadmapBySlug  map[string]int
	categoryBySlug map[string]int

	logger *slog.Logger
}

// Option configures a Catalog.
type Option func(*Catalog)

// WithLogger sets the logger used to report the loaded catalog.
func WithLogger(l *slog.Logger) Option {
	return func(c *Catalog) {
		if l != nil {
			c.logger = l
		}
	}
}

// New loads data from src, validates it and resolves category and course
// references. All validation problems are reported together.
func New(ctx context.Context, src Source, opts ...Option) (*Catalog, error) {
	if src == nil {
		return nil, ErrNilSource
	}

	c := &Catalog{logger: slog.New(slog.DiscardHandler)}
	for _, opt := range opts {
		opt(c)
	}

	data, err := src.Load(ctx)
	if err != nil {
		return nil, errors.Join(ErrFailedToLoad, err)
	}

	if err := c.build(data); err != nil {
		return nil, err
	}

	c.logger.InfoContext(ctx, "catalog loaded",
		logger.Component("catalog"),
		slog.Int("categories", len(c.categories)),
		slog.Int("courses", len(c.courses)),
		slog.Int("roadmaps", len(c.roadmaps)),
	)

	return c, nil
}

func (c *Catalog) build(data Data) error {
	var errs []error
	invalid := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf(format, args...))
	}

	categoryByID := make(map[string]int, len(data.Categories))
	c.categoryBySlug = make(map[string]int, len(data.Categories))
	c.categories = slices.Clone(data.Categories)
	for i := range c.categories {
		cat := &c.categories[i]
		if cat.Slug == "" {
			cat.Slug = slug.Make(cat.Name)
		}
		switch {
		case cat.ID == "":
			invalid("%w: category #%d", ErrEmptyID, i)
		case hasKey(categoryByID, cat.ID):
			invalid("%w: category %q", ErrDuplicateID, cat.ID)
		}
		switch {
		case !slug.IsValid(cat.Slug):
			invalid("%w: category %q has slug %q", ErrInvalidSlug, cat.ID, cat.Slug)
		case hasKey(c.categoryBySlug, cat.Slug):
			invalid("%w: category slug %q", ErrDuplicateSlug, cat.Slug)
		}
		categoryByID[cat.ID] = i
		c.categoryBySlug[cat.Slug] = i
	}

	courseByID := make(map[string]int, len(data.Courses))
	c.courseBySlug = make(map[string]int, len(data.Courses))
	c.courses = make([]Course, 0, len(data.Courses))
	for i, course := range data.Courses {
		if course.Slug == "" {
			course.Slug = slug.Make(course.Title)
		}
		switch {
		case course.ID == "":
			invalid("%w: course #%d", ErrEmptyID, i)
		case hasKey(courseByID, course.ID):
			invalid("%w: course %q", ErrDuplicateID, course.ID)
		}
		switch {
		case !slug.IsValid(course.Slug):
			invalid("%w: course %q has slug %q", ErrInvalidSlug, course.ID, course.Slug)
		case hasKey(c.courseBySlug, course.Slug):
			invalid("%w: course slug %q", ErrDuplicateSlug, course.Slug)
		}
		if !course.Difficulty.IsValid() {
			invalid("%w: course %q has %q", ErrInvalidDifficulty, course.ID, course.Difficulty)
		}
		if idx, ok := categoryByID[course.CategoryID]; ok {
			course.Category = c.categories[idx]
		} else {
			invalid("%w: course %q references %q", ErrUnknownCategory, course.ID, course.CategoryID)
		}
		courseByID[course.ID] = i
		c.courseBySlug[course.Slug] = i
		c.courses = append(c.courses, course)
	}

	c.roadmapBySlug = make(map[string]int, len(data.Roadmaps))
	c.roadmaps = make([]Roadmap, 0, len(data.Roadmaps))
	roadmapIDs := make(map[string]int, len(data.Roadmaps))
	for i, rm := range data.Roadmaps {
		if rm.Slug == "" {
			rm.Slug = slug.Make(rm.Title)
		}
		switch {
		case rm.ID == "":
			invalid("%w: roadmap #%d", ErrEmptyID, i)
		case hasKey(roadmapIDs, rm.ID):
			invalid("%w: roadmap %q", ErrDuplicateID, rm.ID)
		}
		switch {
		case !slug.IsValid(rm.Slug):
			invalid("%w: roadmap %q has slug %q", ErrInvalidSlug, rm.ID, rm.Slug)
		case hasKey(c.roadmapBySlug, rm.Slug):
			invalid("%w: roadmap slug %q", ErrDuplicateSlug, rm.Slug)
		}

		rm = rm.clone()
		for j, item := range rm.Items {
			idx, ok := courseByID[item.CourseID]
			if !ok {
				invalid("%w: roadmap %q item %q references %q", ErrUnknownCourse, rm.ID, item.ID, item.CourseID)
				continue
			}
			rm.Items[j].Course = c.courses[idx]
		}
		roadmapIDs[rm.ID] = i
		c.roadmapBySlug[rm.Slug] = i
		c.roadmaps = append(c.roadmaps, rm)
	}

	if len(errs) > 0 {
		return errors.Join(append([]error{ErrInvalidData}, errs...)...)
	}
	return nil
}

func hasKey(m map[string]int, k string) bool {
	_, ok := m[k]
	return ok
}

// ListCategories returns all categories in insertion order.
func (c *Catalog) ListCategories() []Category {
	return slices.Clone(c.categories)
}

// ListCourses returns all courses in insertion order.
func (c *Catalog) ListCourses() []Course {
	return slices.Clone(c.courses)
}

// ListRoadmaps returns all roadmaps in insertion order, each with its items
// sorted by Order.
func (c *Catalog) ListRoadmaps() []Roadmap {
	out := make([]Roadmap, 0, len(c.roadmaps))
	for _, rm := range c.roadmaps {
		out = append(out, sortedRoadmap(rm))
	}
	return out
}

// FindCourseBySlug returns the course with the given slug.
func (c *Catalog) FindCourseBySlug(s string) (Course, error) {
	idx, ok := c.courseBySlug[s]
	if !ok {
		return Course{}, fmt.Errorf("%w: %q", ErrCourseNotFound, s)
	}
	return c.courses[idx], nil
}

// FindRoadmapBySlug returns the roadmap with the given slug. Items are sorted
// by Order ascending; items sharing an Order keep their stored sequence.
func (c *Catalog) FindRoadmapBySlug(s string) (Roadmap, error) {
	idx, ok := c.roadmapBySlug[s]
	if !ok {
		return Roadmap{}, fmt.Errorf("%w: %q", ErrRoadmapNotFound, s)
	}
	return sortedRoadmap(c.roadmaps[idx]), nil
}

// FindCategoryBySlug returns the category with the given slug.
func (c *Catalog) FindCategoryBySlug(s string) (Category, error) {
	idx, ok := c.categoryBySlug[s]
	if !ok {
		return Category{}, fmt.Errorf("%w: %q", ErrCategoryNotFound, s)
	}
	return c.categories[idx], nil
}

// CoursesByCategory returns the courses of the category with the given slug.
// An empty slug returns every course.
func (c *Catalog) CoursesByCategory(categorySlug string) ([]Course, error) {
	if categorySlug == "" {
		return c.ListCourses(), nil
	}

	cat, err := c.FindCategoryBySlug(categorySlug)
	if err != nil {
		return nil, err
	}

	out := make([]Course, 0, len(c.courses))
	for _, course := range c.courses {
		if course.CategoryID == cat.ID {
			out = append(out, course)
		}
	}
	return out, nil
}

// FeaturedCourses returns up to n courses from the start of the catalog.
func (c *Catalog) FeaturedCourses(n int) []Course {
	n = max(0, min(n, len(c.courses)))
	return slices.Clone(c.courses[:n])
}

// CourseSlugs returns the slug of every course, in insertion order.
func (c *Catalog) CourseSlugs() []string {
	out := make([]string, 0, len(c.courses))
	for _, course := range c.courses {
		out = append(out, course.Slug)
	}
	return out
}

// RoadmapSlugs returns the slug of every roadmap, in insertion order.
func (c *Catalog) RoadmapSlugs() []string {
	out := make([]string, 0, len(c.roadmaps))
	for _, rm := range c.roadmaps {
		out = append(out, rm.Slug)
	}
	return out
}

func sortedRoadmap(rm Roadmap) Roadmap {
	rm = rm.clone()
	slices.SortStableFunc(rm.Items, func(a, b RoadmapItem) int {
		return cmp.Compare(a.Order, b.Order)
	})
	return rm
}
