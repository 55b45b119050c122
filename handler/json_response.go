package handler

import (
	"encoding/json"
	"errors"
	"net/http"
)

// JSONResponse is the envelope every API endpoint answers with. Exactly one
// of Data and Error is set.
type JSONResponse struct {
	Data  any            `json:"data,omitempty"`
	Meta  map[string]any `json:"meta,omitempty"`
	Error *ErrorDetail   `json:"error,omitempty"`
}

// ErrorDetail carries the HTTPError key and the status text.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message,omitempty"`
}

type JSONOption func(*jsonResponse)

func WithJSONStatus(status int) JSONOption {
	return func(j *jsonResponse) { j.status = status }
}

// WithJSONMeta merges meta into the envelope's meta object.
func WithJSONMeta(meta map[string]any) JSONOption {
	return func(j *jsonResponse) {
		if j.body.Meta == nil {
			j.body.Meta = make(map[string]any, len(meta))
		}
		for k, v := range meta {
			j.body.Meta[k] = v
		}
	}
}

type jsonResponse struct {
	status int
	body   JSONResponse
}

func newJSON(status int, body JSONResponse, opts []JSONOption) *jsonResponse {
	j := &jsonResponse{status: status, body: body}
	for _, opt := range opts {
		opt(j)
	}
	return j
}

// JSON answers 200 with v as data.
func JSON(v any, opts ...JSONOption) Response {
	return newJSON(http.StatusOK, JSONResponse{Data: v}, opts)
}

// JSONError answers with err in the error field. An HTTPError keeps its
// status and key; any other error becomes an opaque 500.
func JSONError(err error, opts ...JSONOption) Response {
	httpErr := ErrInternalServerError
	_ = errors.As(err, &httpErr)
	detail := &ErrorDetail{Code: httpErr.Key, Message: http.StatusText(httpErr.Code)}
	return newJSON(httpErr.Code, JSONResponse{Error: detail}, opts)
}

// JSONErrorHandler is an ErrorHandler for JSON endpoints.
func JSONErrorHandler[C Context](ctx C, err error) {
	_ = JSONError(err).Render(ctx.ResponseWriter(), ctx.Request())
}

func (j *jsonResponse) Render(w http.ResponseWriter, _ *http.Request) error {
	body, err := json.Marshal(j.body)
	if err != nil {
		return err
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(j.status)
	_, err = w.Write(append(body, '\n'))
	return err
}
