package binder

import (
	"errors"
	"net/http"
	"strings"

	"github.com/starfederation/datastar-go/datastar"
)

// Signals creates a binder for DataStar signals. Fields use `json` tags.
// Requests that carry no signals are left untouched, so Signals can follow
// Query for endpoints that serve both plain and DataStar requests.
//
//	type coursesRequest struct {
//		Category string `query:"category" json:"category"`
//	}
func Signals() func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		if !hasSignals(r) {
			return nil
		}
		if err := datastar.ReadSignals(r, v); err != nil {
			return errors.Join(ErrFailedToParseSignals, err)
		}
		return nil
	}
}

func hasSignals(r *http.Request) bool {
	if r.Method == http.MethodGet || r.Method == http.MethodDelete {
		return r.URL.Query().Get("datastar") != ""
	}
	return strings.Contains(r.Header.Get("Accept"), "text/event-stream") && r.ContentLength != 0
}
