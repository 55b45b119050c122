package export

import "errors"

var (
	ErrNilHandler       = errors.New("export: handler is nil")
	ErrNilStorage       = errors.New("export: storage is nil")
	ErrNoRoutes         = errors.New("export: no routes to export")
	ErrUnexpectedStatus = errors.New("export: unexpected response status")
	ErrFailedToWrite    = errors.New("export: failed to write page")
)
