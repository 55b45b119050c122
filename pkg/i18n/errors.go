package i18n

import "errors"

var (
	ErrNilAdapter           = errors.New("translation adapter is nil")
	ErrNilParser            = errors.New("translation parser is nil")
	ErrEmptyLanguageCode    = errors.New("empty language code found")
	ErrNilTranslations      = errors.New("nil translations map for language")
	ErrLanguageNotSupported = errors.New("language not supported")
	ErrFailedToDecode       = errors.New("failed to decode translation table")

	ErrFailedToParseYAML    = errors.New("failed to parse YAML content")
	ErrInvalidYAMLStructure = errors.New("invalid YAML structure")

	// File operations
	ErrLoadingFileCancelled = errors.New("loading translation file cancelled")
	ErrFailedToReadFile     = errors.New("failed to read translation file")
	ErrFailedToParseFile    = errors.New("failed to parse translation file")
	ErrEmptyFile            = errors.New("translation file is empty")

	// Filesystem operations
	ErrLoadingTranslationsCancelled = errors.New("loading translations canceled before starting")
	ErrFailedToReadDirectory        = errors.New("failed to read translations directory")
	ErrNoTranslationFiles           = errors.New("no valid translation files found")
)
