package catalog

import "errors"

var (
	ErrNilSource         = errors.New("catalog: source is nil")
	ErrFailedToLoad      = errors.New("catalog: failed to load data")
	ErrInvalidData       = errors.New("catalog: invalid data")
	ErrEmptyID           = errors.New("catalog: empty id")
	ErrDuplicateID       = errors.New("catalog: duplicate id")
	ErrDuplicateSlug     = errors.New("catalog: duplicate slug")
	ErrInvalidSlug       = errors.New("catalog: invalid slug")
	ErrInvalidDifficulty = errors.New("catalog: invalid difficulty")
	ErrUnknownCategory   = errors.New("catalog: unknown category")
	ErrUnknownCourse     = errors.New("catalog: unknown course")
	ErrCourseNotFound    = errors.New("catalog: course not found")
	ErrRoadmapNotFound   = errors.New("catalog: roadmap not found")
	ErrCategoryNotFound  = errors.New("catalog: category not found")
)
