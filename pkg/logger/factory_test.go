package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/createrainforest/bosweb/pkg/logger"
)

func TestNew(t *testing.T) {
	t.Run("defaults to JSON at info", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf))
		log.Debug("hidden")
		log.Info("hello")

		var entry map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
		assert.Equal(t, "INFO", entry["level"])
		assert.Equal(t, "hello", entry["msg"])
	})

	t.Run("text format", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf), logger.WithFormat(logger.FormatText))
		log.Info("hello", logger.Form("mailtransfer"))
		assert.Contains(t, buf.String(), "form=mailtransfer")
	})

	t.Run("invalid format panics", func(t *testing.T) {
		assert.Panics(t, func() { logger.New(logger.WithFormat("xml")) })
	})

	t.Run("static attributes", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf), logger.WithAttr(slog.String("svc", "bosweb")))
		log.Info("msg")

		var entry map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
		assert.Equal(t, "bosweb", entry["svc"])
	})

	t.Run("level option", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf), logger.WithLevel(slog.LevelWarn))
		log.Info("dropped")
		assert.Empty(t, buf.String())
	})
}

func TestWithEnvironment(t *testing.T) {
	t.Run("development logs text at debug", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithEnvironment("dev", "bosweb"), logger.WithOutput(buf))
		log.Debug("msg")

		out := buf.String()
		assert.Contains(t, out, "DEBUG")
		assert.Contains(t, out, "service=bosweb")
		assert.Contains(t, out, "env=development")
	})

	t.Run("production logs JSON", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithEnvironment("prod", "bosweb"), logger.WithOutput(buf))
		log.Debug("hidden")
		log.Info("msg")

		var entry map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
		assert.Equal(t, "bosweb", entry["service"])
		assert.Equal(t, "production", entry["env"])
	})
}

func TestContextExtractors(t *testing.T) {
	type key string
	k := key("id")

	buf := &bytes.Buffer{}
	log := logger.New(
		logger.WithOutput(buf),
		logger.WithContextExtractors(nil, func(ctx context.Context) (slog.Attr, bool) {
			if v, ok := ctx.Value(k).(string); ok {
				return slog.String("request_id", v), true
			}
			return slog.Attr{}, false
		}),
	)

	log.InfoContext(context.WithValue(context.Background(), k, "abc"), "with id")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "abc", entry["request_id"])

	buf.Reset()
	log.With(slog.String("a", "b")).WithGroup("g").InfoContext(context.WithValue(context.Background(), k, "def"), "grouped")
	assert.Contains(t, buf.String(), "def")
}

func TestDiscard(t *testing.T) {
	log := logger.Discard()
	require.NotNil(t, log)
	log.Error("nothing happens")
	assert.False(t, log.Enabled(context.Background(), slog.LevelError))
}
