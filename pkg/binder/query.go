package binder

import "net/http"

// Query creates a query string binder. Fields use the `query:"name"` tag;
// slices accept repeated parameters or comma separated lists.
//
//	type coursesRequest struct {
//		Category string `query:"category"`
//	}
func Query() func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		q := r.URL.Query()
		return bind(v, "query", func(name string) []string { return q[name] }, ErrFailedToParseQuery)
	}
}
