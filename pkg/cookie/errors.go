package cookie

import "errors"

var (
	ErrCookieNotFound = errors.New("cookie.not_found")
	ErrInvalidName    = errors.New("cookie.invalid_name")
	ErrInvalidFormat  = errors.New("cookie.invalid_format")
)
