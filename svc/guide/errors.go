package guide

import "errors"

var (
	ErrMissingContent  = errors.New("guide: missing content file")
	ErrInvalidContent  = errors.New("guide: invalid content")
	ErrLevelCount      = errors.New("guide: wrong number of levels")
	ErrMilestoneCount  = errors.New("guide: wrong number of overview milestones")
	ErrSectionMismatch = errors.New("guide: section keys differ from default locale")
	ErrUnknownLocale   = errors.New("guide: unsupported default locale")
)
