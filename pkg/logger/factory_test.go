package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vibecoders/site/pkg/logger"
)

func decode(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry), buf.String())
	return entry
}

func TestNew_Defaults(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logger.New(logger.WithOutput(&buf), logger.WithAttr(slog.String("app", "site")))
	log.Debug("hidden")
	log.Info("page rendered", logger.Locale("ko"))

	entry := decode(t, &buf)
	assert.Equal(t, "INFO", entry["level"])
	assert.Equal(t, "page rendered", entry["msg"])
	assert.Equal(t, "ko", entry["locale"])
	assert.Equal(t, "site", entry["app"])
}

func TestNew_Formats(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger.New(logger.WithOutput(&buf), logger.WithFormat(logger.FormatText)).Info("hello")
	assert.Contains(t, buf.String(), "level=INFO msg=hello")

	assert.Panics(t, func() { logger.WithFormat("xml") })
}

func TestWithEnvironment(t *testing.T) {
	t.Parallel()

	tests := []struct {
		env      string
		wantEnv  string
		wantJSON bool
		debug    bool
	}{
		{"production", "production", true, false},
		{"prod", "production", true, false},
		{"staging", "staging", true, false},
		{"development", "development", false, true},
		{"local", "development", false, true},
	}

	for _, tt := range tests {
		t.Run(tt.env, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			log := logger.New(logger.WithEnvironment(tt.env, "vibecoders-site"), logger.WithOutput(&buf))
			log.Debug("debug line")

			if !tt.debug {
				assert.Empty(t, buf.String())
				log.Info("info line")
			}
			if tt.wantJSON {
				entry := decode(t, &buf)
				assert.Equal(t, tt.wantEnv, entry["env"])
				assert.Equal(t, "vibecoders-site", entry["service"])
				return
			}
			assert.Contains(t, buf.String(), "env="+tt.wantEnv)
			assert.Contains(t, buf.String(), "service=vibecoders-site")
		})
	}
}

func TestWithEnvironment_EmptyServiceIsNoop(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger.New(logger.WithEnvironment("development", ""), logger.WithOutput(&buf)).Info("x")
	entry := decode(t, &buf)
	assert.NotContains(t, entry, "service")
}

type ctxKey struct{}

func TestWithContextExtractors(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logger.New(
		logger.WithOutput(&buf),
		logger.WithContextExtractors(nil, func(ctx context.Context) (slog.Attr, bool) {
			v, ok := ctx.Value(ctxKey{}).(string)
			return slog.String("trace", v), ok
		}),
	)

	log.With(logger.Component("pages")).WithGroup("req").InfoContext(
		context.WithValue(context.Background(), ctxKey{}, "t-1"), "served")
	entry := decode(t, &buf)
	assert.Equal(t, "pages", entry["component"])
	assert.Equal(t, map[string]any{"trace": "t-1"}, entry["req"])

	buf.Reset()
	log.InfoContext(context.Background(), "no trace")
	assert.NotContains(t, decode(t, &buf), "trace")
}
