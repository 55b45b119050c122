package api_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vibecoders/site/modules/api"
	"github.com/vibecoders/site/svc/catalog"
	"github.com/vibecoders/site/svc/dictionary"
	"github.com/vibecoders/site/svc/guide"
)

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Meta  map[string]any  `json:"meta"`
	Error *struct {
		Code string `json:"code"`
	} `json:"error"`
}

func newRouter(t *testing.T) http.Handler {
	t.Helper()
	ctx := context.Background()

	cat, err := catalog.New(ctx, catalog.NewInMemSource(catalog.DefaultData()))
	require.NoError(t, err)
	g, err := guide.New(ctx)
	require.NoError(t, err)
	dict, err := dictionary.New(ctx)
	require.NoError(t, err)

	m, err := api.New(api.Options{Catalog: cat, Guide: g, Dictionary: dict})
	require.NoError(t, err)

	r := chi.NewRouter()
	r.Mount("/api", m.Handle())
	return r
}

func call(t *testing.T, h http.Handler, target string) (int, envelope) {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	assert.Equal(t, "application/json; charset=utf-8", rec.Header().Get("Content-Type"))

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())
	return rec.Code, env
}

func TestNew_MissingDependency(t *testing.T) {
	t.Parallel()

	_, err := api.New(api.Options{})
	require.ErrorIs(t, err, api.ErrMissingDependency)
}

func TestCatalogEndpoints(t *testing.T) {
	t.Parallel()

	h := newRouter(t)

	t.Run("categories", func(t *testing.T) {
		t.Parallel()
		code, env := call(t, h, "/api/categories")
		require.Equal(t, http.StatusOK, code)
		var got []catalog.Category
		require.NoError(t, json.Unmarshal(env.Data, &got))
		require.Len(t, got, 4)
		assert.Equal(t, "frontend", got[0].Slug)
		assert.EqualValues(t, 4, env.Meta["count"])
	})

	t.Run("courses filtered by category", func(t *testing.T) {
		t.Parallel()
		code, env := call(t, h, "/api/courses?category=backend")
		require.Equal(t, http.StatusOK, code)
		var got []catalog.Course
		require.NoError(t, json.Unmarshal(env.Data, &got))
		require.Len(t, got, 1)
		assert.Equal(t, "advanced-node-patterns", got[0].Slug)
		assert.Equal(t, "Backend", got[0].Category.Name)
	})

	t.Run("course", func(t *testing.T) {
		t.Parallel()
		code, env := call(t, h, "/api/courses/react-for-beginners")
		require.Equal(t, http.StatusOK, code)
		var got catalog.Course
		require.NoError(t, json.Unmarshal(env.Data, &got))
		assert.Equal(t, catalog.Beginner, got.Difficulty)
	})

	t.Run("roadmap items sorted", func(t *testing.T) {
		t.Parallel()
		code, env := call(t, h, "/api/roadmaps/frontend-roadmap")
		require.Equal(t, http.StatusOK, code)
		var got catalog.Roadmap
		require.NoError(t, json.Unmarshal(env.Data, &got))
		require.Len(t, got.Items, 2)
		assert.Less(t, got.Items[0].Order, got.Items[1].Order)
		assert.Equal(t, "react-for-beginners", got.Items[0].Course.Slug)
	})

	t.Run("roadmaps", func(t *testing.T) {
		t.Parallel()
		code, env := call(t, h, "/api/roadmaps")
		require.Equal(t, http.StatusOK, code)
		assert.EqualValues(t, 2, env.Meta["count"])
	})
}

func TestGuideAndDictionaryEndpoints(t *testing.T) {
	t.Parallel()

	h := newRouter(t)

	t.Run("level", func(t *testing.T) {
		t.Parallel()
		code, env := call(t, h, "/api/guide/ko/levels/0")
		require.Equal(t, http.StatusOK, code)
		var got guide.LevelContent
		require.NoError(t, json.Unmarshal(env.Data, &got))
		assert.Equal(t, "레벨 0: 마인드셋 리셋", got.Title)
		assert.Equal(t, "ko", env.Meta["locale"])
	})

	t.Run("levels", func(t *testing.T) {
		t.Parallel()
		code, env := call(t, h, "/api/guide/en/levels")
		require.Equal(t, http.StatusOK, code)
		var got []struct {
			Level    int      `json:"level"`
			Sections []string `json:"sections"`
		}
		require.NoError(t, json.Unmarshal(env.Data, &got))
		require.Len(t, got, 7)
		assert.Equal(t, 6, got[6].Level)
		assert.NotEmpty(t, got[0].Sections)
	})

	t.Run("overview for unsupported locale", func(t *testing.T) {
		t.Parallel()
		code, env := call(t, h, "/api/guide/xx/overview")
		require.Equal(t, http.StatusOK, code)
		assert.Equal(t, "en", env.Meta["locale"])
	})

	t.Run("dictionary for unsupported locale equals default", func(t *testing.T) {
		t.Parallel()
		_, xx := call(t, h, "/api/dictionary/xx")
		_, en := call(t, h, "/api/dictionary/en")
		assert.JSONEq(t, string(en.Data), string(xx.Data))
	})

	t.Run("dictionary", func(t *testing.T) {
		t.Parallel()
		code, env := call(t, h, "/api/dictionary/ko")
		require.Equal(t, http.StatusOK, code)
		var got dictionary.Dictionary
		require.NoError(t, json.Unmarshal(env.Data, &got))
		assert.Equal(t, "전체 강의", got.Courses.AllCourses)
	})
}

func TestErrors(t *testing.T) {
	t.Parallel()

	h := newRouter(t)
	tests := []struct {
		target string
		status int
		code   string
	}{
		{"/api/courses/does-not-exist", http.StatusNotFound, "not_found"},
		{"/api/courses?category=nope", http.StatusNotFound, "not_found"},
		{"/api/roadmaps/nope", http.StatusNotFound, "not_found"},
		{"/api/guide/en/levels/7", http.StatusNotFound, "not_found"},
		{"/api/guide/en/levels/-1", http.StatusNotFound, "not_found"},
		{"/api/guide/en/levels/three", http.StatusBadRequest, "bad_request"},
		{"/api/unknown", http.StatusNotFound, "not_found"},
	}

	for _, tt := range tests {
		t.Run(tt.target, func(t *testing.T) {
			t.Parallel()
			status, env := call(t, h, tt.target)
			assert.Equal(t, tt.status, status)
			require.NotNil(t, env.Error)
			assert.Equal(t, tt.code, env.Error.Code)
		})
	}
}
