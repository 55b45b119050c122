package qrcode

import (
	"encoding/base64"
	"errors"
	"strings"

	skipqrcode "github.com/skip2/go-qrcode"
)

var (
	// ErrEmptyContent is returned when content string is empty or only whitespace
	ErrEmptyContent = errors.New("content cannot be empty")
	// ErrFailedToGenerate is returned when the encoder rejects the content.
	ErrFailedToGenerate = errors.New("failed to generate QR code")
)

const (
	// DefaultSize is the image edge in pixels when none is given.
	DefaultSize = 256
	// MaxSize bounds the image edge requested through public endpoints.
	MaxSize = 1024
	minSize = 64
)

// RecoveryLevel is the error correction level of the code.
type RecoveryLevel = skipqrcode.RecoveryLevel

const (
	Low     = skipqrcode.Low
	Medium  = skipqrcode.Medium
	High    = skipqrcode.High
	Highest = skipqrcode.Highest
)

// Option configures generation.
type Option func(*options)

type options struct {
	size  int
	level RecoveryLevel
}

// WithSize sets the image edge in pixels, clamped to [64, MaxSize].
// Non-positive values select DefaultSize.
func WithSize(px int) Option {
	return func(o *options) {
		switch {
		case px <= 0:
			o.size = DefaultSize
		case px < minSize:
			o.size = minSize
		case px > MaxSize:
			o.size = MaxSize
		default:
			o.size = px
		}
	}
}

// WithRecoveryLevel sets the error correction level. Default is Medium.
func WithRecoveryLevel(l RecoveryLevel) Option {
	return func(o *options) { o.level = l }
}

// Generate encodes content as a PNG QR code.
func Generate(content string, opts ...Option) ([]byte, error) {
	if strings.TrimSpace(content) == "" {
		return nil, ErrEmptyContent
	}

	o := options{size: DefaultSize, level: Medium}
	for _, opt := range opts {
		opt(&o)
	}

	png, err := skipqrcode.Encode(content, o.level, o.size)
	if err != nil {
		return nil, errors.Join(ErrFailedToGenerate, err)
	}
	return png, nil
}

// DataURI returns the QR code as a "data:image/png;base64,..." string that
// can be used directly as an <img> src.
func DataURI(content string, opts ...Option) (string, error) {
	png, err := Generate(content, opts...)
	if err != nil {
		return "", err
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(png), nil
}
