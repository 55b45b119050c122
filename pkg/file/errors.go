package file

import "errors"

// Key and argument errors.
var (
	ErrInvalidPath   = errors.New("file: path escapes the storage root")
	ErrNilBody       = errors.New("file: nil body")
	ErrInvalidConfig = errors.New("file: invalid storage config")
)

// Lookup errors.
var (
	ErrFileNotFound      = errors.New("file: object not found")
	ErrDirectoryNotFound = errors.New("file: directory not found")
	ErrNotDirectory      = errors.New("file: not a directory")
	ErrIsDirectory       = errors.New("file: key names a directory")
)

// Local disk failures, joined with the os error.
var (
	ErrFailedToReadFile        = errors.New("file: read failed")
	ErrFailedToWriteFile       = errors.New("file: write failed")
	ErrFailedToCreateFile      = errors.New("file: create failed")
	ErrFailedToCreateDirectory = errors.New("file: mkdir failed")
	ErrFailedToDeleteDirectory = errors.New("file: remove failed")
	ErrFailedToReadDirectory   = errors.New("file: readdir failed")
	ErrFailedToStatPath        = errors.New("file: stat failed")
	ErrFailedToGetAbsolutePath = errors.New("file: cannot resolve absolute path")
)

// S3 failures, classified from SDK error codes.
var (
	ErrFailedToLoadConfig = errors.New("file: cannot load AWS config")
	ErrBucketNotFound     = errors.New("file: bucket not found")
	ErrAccessDenied       = errors.New("file: access denied")
	ErrRequestTimeout     = errors.New("file: request timed out")
	ErrServiceUnavailable = errors.New("file: service unavailable")
	ErrOperationTimeout   = errors.New("file: operation timed out")
	ErrOperationCanceled  = errors.New("file: operation canceled")
)
