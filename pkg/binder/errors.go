package binder

import "errors"

var (
	ErrInvalidTarget        = errors.New("binder: target must be a non-nil struct pointer")
	ErrFailedToParsePath    = errors.New("binder: bad path parameter")
	ErrFailedToParseQuery   = errors.New("binder: bad query parameter")
	ErrFailedToParseSignals = errors.New("binder: bad datastar signals")
)
