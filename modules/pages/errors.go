package pages

import "errors"

var ErrMissingDependency = errors.New("pages: missing dependency")
