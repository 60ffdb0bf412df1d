package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/contactform/pkg/logger"
)

func decode(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

func TestNew(t *testing.T) {
	t.Run("creates JSON logger", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf))
		require.NotNil(t, log)
		log.Info("hello")

		entry := decode(t, buf)
		assert.Equal(t, "INFO", entry["level"])
		assert.Equal(t, "hello", entry["msg"])
	})

	t.Run("text formatter option", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf), logger.WithTextFormatter())
		log.Info("hello")
		assert.Contains(t, buf.String(), "level=INFO")
		assert.Contains(t, buf.String(), "msg=hello")
	})

	t.Run("later format option wins", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf), logger.WithTextFormatter(), logger.WithJSONFormatter())
		log.Info("hello")
		assert.Equal(t, "hello", decode(t, buf)["msg"])
	})

	t.Run("includes default attributes", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf), logger.WithAttr(slog.String("svc", "test")))
		log.Info("msg")
		assert.Equal(t, "test", decode(t, buf)["svc"])
	})

	t.Run("extracts from context", func(t *testing.T) {
		buf := &bytes.Buffer{}
		type key string
		ctxKey := key("id")
		log := logger.New(
			logger.WithOutput(buf),
			logger.WithContextValue("id", ctxKey),
		)
		ctx := context.WithValue(context.Background(), ctxKey, "42")
		log.InfoContext(ctx, "context msg")
		assert.Equal(t, "42", decode(t, buf)["id"])
	})

	t.Run("nil extractors are ignored", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf), logger.WithContextExtractors(nil))
		log.InfoContext(context.Background(), "ok")
		assert.Equal(t, "ok", decode(t, buf)["msg"])
	})
}

func TestWithLevelName(t *testing.T) {
	tests := []struct {
		name      string
		level     string
		debugSeen bool
		infoSeen  bool
	}{
		{"debug", "debug", true, true},
		{"upper case", "WARN", false, false},
		{"unknown keeps default", "verbose", false, true},
		{"empty keeps default", "", false, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := &bytes.Buffer{}
			log := logger.New(logger.WithOutput(buf), logger.WithLevelName(tt.level))
			log.Debug("d")
			assert.Equal(t, tt.debugSeen, bytes.Contains(buf.Bytes(), []byte(`"msg":"d"`)))
			buf.Reset()
			log.Info("i")
			assert.Equal(t, tt.infoSeen, bytes.Contains(buf.Bytes(), []byte(`"msg":"i"`)))
		})
	}
}

func TestEnvironmentDefaults(t *testing.T) {
	t.Run("development", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithEnvironment("dev", "svc"), logger.WithOutput(buf))
		log.Debug("msg")
		out := buf.String()
		assert.Contains(t, out, "DEBUG")
		assert.Contains(t, out, "service=svc")
		assert.Contains(t, out, "env=development")
	})

	t.Run("production", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithEnvironment("prod", "svc"), logger.WithOutput(buf))
		log.Info("msg")
		entry := decode(t, buf)
		assert.Equal(t, "svc", entry["service"])
		assert.Equal(t, "production", entry["env"])
	})

	t.Run("staging", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithStaging("svc"), logger.WithOutput(buf))
		log.Info("msg")
		assert.Equal(t, "staging", decode(t, buf)["env"])
	})

	t.Run("empty service is a no-op", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithProduction(""), logger.WithOutput(buf))
		log.Info("msg")
		_, ok := decode(t, buf)["service"]
		assert.False(t, ok)
	})
}

func TestWithFormatPanics(t *testing.T) {
	assert.Panics(t, func() {
		logger.New(logger.WithFormat("xml"))
	})
	assert.NotPanics(t, func() {
		logger.New(logger.WithFormat(logger.FormatText), logger.WithOutput(&bytes.Buffer{}))
	})
}

func TestDiscard(t *testing.T) {
	log := logger.Discard()
	require.NotNil(t, log)
	assert.False(t, log.Enabled(context.Background(), slog.LevelError))
}
