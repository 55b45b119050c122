package logger

import (
	"log/slog"
	"time"
)

// Attribute helpers keep log keys consistent across packages. Helpers that
// take an optional value return the zero Attr, which slog drops.

func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

func RequestID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("request_id", id)
}

func Locale(code string) slog.Attr       { return slog.String("locale", code) }
func Path(p string) slog.Attr            { return slog.String("path", p) }
func Route(pattern string) slog.Attr     { return slog.String("route", pattern) }
func Status(code int) slog.Attr          { return slog.Int("status", code) }
func Slug(s string) slog.Attr            { return slog.String("slug", s) }
func Duration(d time.Duration) slog.Attr { return slog.Duration("duration", d) }
func Count(n int) slog.Attr              { return slog.Int("count", n) }
func Component(name string) slog.Attr    { return slog.String("component", name) }
