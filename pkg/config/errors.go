package config

import "errors"

var (
	ErrNilPointer     = errors.New("config: Load needs a non-nil pointer")
	ErrLoadingEnvFile = errors.New("config: cannot read env file")
	ErrParsingConfig  = errors.New("config: cannot parse environment")
)
