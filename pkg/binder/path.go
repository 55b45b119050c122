package binder

import (
	"fmt"
	"net/http"
)

// Path creates a path parameter binder using extractor, typically chi.URLParam.
//
//	type levelRequest struct {
//		Locale i18n.Locale `path:"locale"`
//		Level  string      `path:"level"`
//	}
//
//	r.Get("/{locale}/roadmaps/vibe-coding/{level}", handler.Wrap(h,
//		handler.WithBinders[handler.Context, levelRequest](binder.Path(chi.URLParam)),
//	))
func Path(extractor func(r *http.Request, name string) string) func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		if extractor == nil {
			return fmt.Errorf("%w: extractor function is nil", ErrFailedToParsePath)
		}
		return bind(v, "path", func(name string) []string {
			if value := extractor(r, name); value != "" {
				return []string{value}
			}
			return nil
		}, ErrFailedToParsePath)
	}
}
