package i18n_test

import (
	"context"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vibecoders/site/pkg/i18n"
)

func newTestTranslator(t *testing.T, opts ...i18n.Option) *i18n.Translator {
	t.Helper()

	adapter := &i18n.MapAdapter{Data: map[string]map[string]any{
		"en": {
			"common": map[string]any{
				"title":  "VibeCoders",
				"footer": "© {year} VibeCoders. All rights reserved.",
				"nav": map[string]any{
					"courses":  "Courses",
					"roadmaps": "Roadmaps",
				},
			},
			"count": 3,
		},
		"ko": {
			"common": map[string]any{
				"footer": "© {year} VibeCoders. 모든 권리 보유.",
				"nav": map[string]any{
					"courses": "강의",
				},
			},
		},
	}}

	tr, err := i18n.NewTranslator(context.Background(), adapter, opts...)
	require.NoError(t, err)
	return tr
}

func TestTranslator_T(t *testing.T) {
	t.Parallel()

	tr := newTestTranslator(t)

	tests := []struct {
		name string
		lang string
		key  string
		args []string
		want string
	}{
		{"own key", "ko", "common.nav.courses", nil, "강의"},
		{"falls back to default language", "ko", "common.nav.roadmaps", nil, "Roadmaps"},
		{"unknown language uses default", "xx", "common.title", nil, "VibeCoders"},
		{"placeholder substituted", "ko", "common.footer", []string{"year", "2025"}, "© 2025 VibeCoders. 모든 권리 보유."},
		{"unknown placeholder kept", "en", "common.footer", []string{"month", "1"}, "© {year} VibeCoders. All rights reserved."},
		{"missing key returns key", "en", "common.missing", nil, "common.missing"},
		{"map value returns key", "en", "common.nav", nil, "common.nav"},
		{"number rendered", "en", "count", nil, "3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tr.T(tt.lang, tt.key, tt.args...))
		})
	}
}

func TestTranslator_NoFallbackToKey(t *testing.T) {
	t.Parallel()

	tr := newTestTranslator(t, i18n.WithFallbackToKey(false), i18n.WithMissingTranslationsLogging(true))
	assert.Empty(t, tr.T("en", "nope"))
	assert.Equal(t, "fallback 1", tr.Td("en", "nope", "fallback {n}", "n", "1"))
}

func TestTranslator_HasAndLanguages(t *testing.T) {
	t.Parallel()

	tr := newTestTranslator(t)
	assert.True(t, tr.Has("ko", "common.nav.courses"))
	assert.False(t, tr.Has("ko", "common.nav.roadmaps"), "Has does not fall back")
	assert.False(t, tr.Has("xx", "common.title"))
	assert.Equal(t, []string{"en", "ko"}, tr.SupportedLanguages())
	assert.Equal(t, "en", tr.DefaultLanguage())
}

func TestTranslator_Tc(t *testing.T) {
	t.Parallel()

	tr := newTestTranslator(t)
	ctx := i18n.SetLocale(context.Background(), i18n.KO)
	assert.Equal(t, "강의", tr.Tc(ctx, "common.nav.courses"))
	assert.Equal(t, "Courses", tr.Tc(context.Background(), "common.nav.courses"))
}

func TestTranslator_Decode(t *testing.T) {
	t.Parallel()

	type nav struct {
		Courses  string `yaml:"courses"`
		Roadmaps string `yaml:"roadmaps"`
	}
	type table struct {
		Common struct {
			Title  string `yaml:"title"`
			Footer string `yaml:"footer"`
			Nav    nav    `yaml:"nav"`
		} `yaml:"common"`
	}

	tr := newTestTranslator(t)

	var ko table
	require.NoError(t, tr.Decode("ko", &ko))
	assert.Equal(t, "VibeCoders", ko.Common.Title)
	assert.Equal(t, "강의", ko.Common.Nav.Courses)
	assert.Equal(t, "Roadmaps", ko.Common.Nav.Roadmaps)

	var xx, en table
	require.NoError(t, tr.Decode("xx", &xx))
	require.NoError(t, tr.Decode("en", &en))
	assert.Equal(t, en, xx)

	// Decoding must not leak Korean values into the default table.
	assert.Equal(t, "Courses", en.Common.Nav.Courses)
}

func TestTranslator_TableIsACopy(t *testing.T) {
	t.Parallel()

	tr := newTestTranslator(t)
	table, err := tr.Table("en")
	require.NoError(t, err)

	table["common"].(map[string]any)["title"] = "changed"
	assert.Equal(t, "VibeCoders", tr.T("en", "common.title"))
}

func TestTranslator_Errors(t *testing.T) {
	t.Parallel()

	_, err := i18n.NewTranslator(context.Background(), nil)
	require.ErrorIs(t, err, i18n.ErrNilAdapter)

	_, err = i18n.NewTranslator(context.Background(), &i18n.MapAdapter{Data: map[string]map[string]any{"": {}}})
	require.ErrorIs(t, err, i18n.ErrEmptyLanguageCode)

	_, err = i18n.NewTranslator(context.Background(), &i18n.MapAdapter{Data: map[string]map[string]any{"en": nil}})
	require.ErrorIs(t, err, i18n.ErrNilTranslations)

	tr, err := i18n.NewTranslator(context.Background(), &i18n.MapAdapter{})
	require.NoError(t, err)
	_, err = tr.Table("en")
	require.ErrorIs(t, err, i18n.ErrLanguageNotSupported)
}

func TestFormat(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Read level 3", i18n.Format("Read level {level}", "level", "3"))
	assert.Equal(t, "no args {x}", i18n.Format("no args {x}"))
	assert.Equal(t, "odd {x}", i18n.Format("odd {x}", "x"))
	assert.Equal(t, "a-b", i18n.Format("{one}-{two}", "one", "a", "two", "b"))
}

func TestFSAdapter(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{
		"translations/en.yaml":   {Data: []byte("en:\n  common:\n    title: VibeCoders\n")},
		"translations/ko.yml":    {Data: []byte("ko:\n  common:\n    title: 바이브코더스\n")},
		"translations/notes.txt": {Data: []byte("ignored")},
	}

	adapter, err := i18n.NewFSAdapter(i18n.NewYAMLParser(), fsys, "translations")
	require.NoError(t, err)

	tr, err := i18n.NewTranslator(context.Background(), adapter)
	require.NoError(t, err)
	assert.Equal(t, "바이브코더스", tr.T("ko", "common.title"))
	assert.Equal(t, "VibeCoders", tr.T("en", "common.title"))
	require.NoError(t, tr.Reload(context.Background()))
}

func TestFSAdapter_Errors(t *testing.T) {
	t.Parallel()

	_, err := i18n.NewFSAdapter(nil, fstest.MapFS{}, "x")
	require.ErrorIs(t, err, i18n.ErrNilParser)

	adapter, err := i18n.NewFSAdapter(i18n.NewYAMLParser(), fstest.MapFS{"t/a.txt": {Data: []byte("x")}}, "t")
	require.NoError(t, err)
	_, err = adapter.Load(context.Background())
	require.ErrorIs(t, err, i18n.ErrNoTranslationFiles)

	adapter, err = i18n.NewFSAdapter(i18n.NewYAMLParser(), fstest.MapFS{"t/en.yaml": {Data: []byte("en: [1, 2]")}}, "t")
	require.NoError(t, err)
	_, err = adapter.Load(context.Background())
	require.ErrorIs(t, err, i18n.ErrFailedToParseFile)
	require.ErrorIs(t, err, i18n.ErrInvalidYAMLStructure)

	adapter, err = i18n.NewFSAdapter(i18n.NewYAMLParser(), fstest.MapFS{"t/en.yaml": {Data: []byte("")}}, "t")
	require.NoError(t, err)
	_, err = adapter.Load(context.Background())
	require.ErrorIs(t, err, i18n.ErrEmptyFile)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = adapter.Load(ctx)
	require.ErrorIs(t, err, context.Canceled)
}

func TestNewParserForFile(t *testing.T) {
	t.Parallel()

	assert.NotNil(t, i18n.NewParserForFile("en.yaml"))
	assert.NotNil(t, i18n.NewParserForFile("ko.YML"))
	assert.Nil(t, i18n.NewParserForFile("en.json"))
	assert.Nil(t, i18n.NewParserForFile("README"))
}
