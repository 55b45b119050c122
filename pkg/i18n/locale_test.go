package i18n_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"

	"github.com/vibecoders/site/pkg/i18n"
)

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want i18n.Locale
		ok   bool
	}{
		{"en", i18n.EN, true},
		{"ko", i18n.KO, true},
		{"EN", "", false},
		{"en-US", "", false},
		{"", "", false},
		{"fr", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			got, ok := i18n.Parse(tt.in)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.ok, i18n.IsSupported(tt.in))
		})
	}
}

func TestSupported(t *testing.T) {
	t.Parallel()

	got := i18n.Supported()
	assert.Equal(t, []i18n.Locale{i18n.EN, i18n.KO}, got)
	assert.Equal(t, i18n.EN, i18n.DefaultLocale)

	got[0] = "xx"
	assert.Equal(t, i18n.EN, i18n.Supported()[0], "returned slice must be a copy")
}

func TestLocale_TagAndName(t *testing.T) {
	t.Parallel()

	assert.Equal(t, language.English, i18n.EN.Tag())
	assert.Equal(t, language.Korean, i18n.KO.Tag())
	assert.Equal(t, "English", i18n.EN.Name())
	assert.Equal(t, "한국어", i18n.KO.Name())
	assert.Equal(t, "ko", i18n.KO.String())
}

func TestContextLocale(t *testing.T) {
	t.Parallel()

	t.Run("default when unset", func(t *testing.T) {
		t.Parallel()
		ctx := context.Background()
		assert.Equal(t, i18n.DefaultLocale, i18n.GetLocale(ctx))
		_, ok := i18n.LocaleFromContext(ctx)
		assert.False(t, ok)
	})

	t.Run("stored locale", func(t *testing.T) {
		t.Parallel()
		ctx := i18n.SetLocale(context.Background(), i18n.KO)
		assert.Equal(t, i18n.KO, i18n.GetLocale(ctx))
		l, ok := i18n.LocaleFromContext(ctx)
		assert.True(t, ok)
		assert.Equal(t, i18n.KO, l)
	})

	t.Run("overwrites existing locale", func(t *testing.T) {
		t.Parallel()
		ctx := i18n.SetLocale(context.Background(), i18n.KO)
		ctx = i18n.SetLocale(ctx, i18n.EN)
		assert.Equal(t, i18n.EN, i18n.GetLocale(ctx))
	})

	t.Run("unsupported value falls back", func(t *testing.T) {
		t.Parallel()
		ctx := i18n.SetLocale(context.Background(), "fr")
		assert.Equal(t, i18n.DefaultLocale, i18n.GetLocale(ctx))
	})
}

func TestLoggerExtractor(t *testing.T) {
	t.Parallel()

	extract := i18n.LoggerExtractor()

	_, ok := extract(context.Background())
	assert.False(t, ok)

	attr, ok := extract(i18n.SetLocale(context.Background(), i18n.KO))
	assert.True(t, ok)
	assert.Equal(t, "locale", attr.Key)
	assert.Equal(t, "ko", attr.Value.String())
}
