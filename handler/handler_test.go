package handler_test

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vibecoders/site/handler"
	"github.com/vibecoders/site/pkg/binder"
	"github.com/vibecoders/site/pkg/i18n"
)

type component string

func (c component) Render(_ context.Context, w io.Writer) error {
	_, err := io.WriteString(w, string(c))
	return err
}

type courseRequest struct {
	Slug string `path:"slug"`
	Size int    `query:"size"`
}

func TestWrap_BindsAndRenders(t *testing.T) {
	t.Parallel()

	h := func(ctx handler.Context, req courseRequest) handler.Response {
		return handler.Templ(component(fmt.Sprintf("%s:%s:%d", ctx.Locale(), req.Slug, req.Size)))
	}

	r := chi.NewRouter()
	r.Get("/courses/{slug}", handler.Wrap(h,
		handler.WithBinders[handler.Context, courseRequest](binder.Path(chi.URLParam), binder.Query()),
	))

	req := httptest.NewRequest(http.MethodGet, "/courses/react?size=3", nil)
	req = req.WithContext(i18n.SetLocale(req.Context(), i18n.KO))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Equal(t, "ko:react:3", rec.Body.String())
}

func TestWrap_BindErrorIsBadRequest(t *testing.T) {
	t.Parallel()

	var got error
	h := handler.Wrap(
		func(handler.Context, courseRequest) handler.Response { return handler.Templ(component("x")) },
		handler.WithBinders[handler.Context, courseRequest](binder.Query()),
		handler.WithErrorHandler[handler.Context, courseRequest](func(_ handler.Context, err error) { got = err }),
	)

	h(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/?size=big", nil))
	require.ErrorIs(t, got, handler.ErrBadRequest)
	require.ErrorIs(t, got, binder.ErrFailedToParseQuery)
}

func TestWrap_NilResponseAndDecorators(t *testing.T) {
	t.Parallel()

	var order []string
	trace := func(name string) handler.Decorator[handler.Context, struct{}] {
		return func(next handler.HandlerFunc[handler.Context, struct{}]) handler.HandlerFunc[handler.Context, struct{}] {
			return func(ctx handler.Context, req struct{}) handler.Response {
				order = append(order, name)
				return next(ctx, req)
			}
		}
	}

	h := handler.Wrap(
		func(handler.Context, struct{}) handler.Response { return nil },
		handler.WithDecorators(trace("outer"), trace("inner")),
	)

	rec := httptest.NewRecorder()
	h(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, []string{"outer", "inner"}, order)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "internal_server_error")
}

func TestError_Response(t *testing.T) {
	t.Parallel()

	h := handler.Wrap(func(handler.Context, struct{}) handler.Response {
		return handler.Error(handler.ErrNotFound)
	})
	rec := httptest.NewRecorder()
	h(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "not_found")

	assert.Equal(t, handler.ErrInternalServerError, handler.Error(nil).Render(nil, nil))
}

func TestContext(t *testing.T) {
	t.Parallel()

	type key struct{}
	base := context.WithValue(context.Background(), key{}, "v")
	req := httptest.NewRequest(http.MethodGet, "/", nil).WithContext(base)
	rec := httptest.NewRecorder()

	ctx := handler.NewContext(rec, req)
	assert.Equal(t, req, ctx.Request())
	assert.Equal(t, rec, ctx.ResponseWriter())
	assert.Equal(t, i18n.DefaultLocale, ctx.Locale())
	assert.Equal(t, "v", ctx.Value(key{}))
	assert.NoError(t, ctx.Err())

	cancelled, cancel := context.WithCancel(base)
	cancel()
	ctx = handler.NewContext(rec, req.WithContext(cancelled))
	assert.True(t, errors.Is(ctx.Err(), context.Canceled))
}

func TestHTTPError(t *testing.T) {
	t.Parallel()

	err := handler.NewHTTPError(http.StatusGone, "gone")
	assert.Equal(t, "gone", err.Error())

	wrapped := fmt.Errorf("course lookup: %w", handler.ErrNotFound)
	info := handler.Classify(wrapped)
	assert.Equal(t, http.StatusNotFound, info.StatusCode)
	assert.Equal(t, "not_found", info.Key)
	assert.Equal(t, "warning", info.Type)

	info = handler.Classify(errors.New("boom"))
	assert.Equal(t, http.StatusInternalServerError, info.StatusCode)
	assert.Equal(t, "internal_server_error", info.Key)
	assert.Equal(t, "error", info.Type)
}
