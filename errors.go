package site

import "errors"

var (
	ErrInvalidConfig = errors.New("site: invalid config")
	ErrFailedToBuild = errors.New("site: failed to build app")
	ErrEmptyCatalog  = errors.New("site: catalog has no courses")
)
