package dictionary

import "errors"

var (
	ErrFailedToLoad       = errors.New("dictionary: failed to load translations")
	ErrMissingLocale      = errors.New("dictionary: no translation table for locale")
	ErrUnsupportedDefault = errors.New("dictionary: unsupported default locale")
)
