package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/forms/pkg/logger"
)

type ctxKey struct{}

func requestID(ctx context.Context) (slog.Attr, bool) {
	if id, ok := ctx.Value(ctxKey{}).(string); ok && id != "" {
		return slog.String("request_id", id), true
	}
	return slog.Attr{}, false
}

func decode(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	return rec
}

func TestNewWithConfig(t *testing.T) {
	t.Parallel()

	t.Run("json with extractor", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		log := logger.NewWithConfig(logger.Config{Level: "debug", Format: "json"}, &buf, requestID, nil)

		ctx := context.WithValue(context.Background(), ctxKey{}, "abc-123")
		log.DebugContext(ctx, "form validated", slog.Bool("valid", true))

		rec := decode(t, &buf)
		assert.Equal(t, "form validated", rec["msg"])
		assert.Equal(t, "abc-123", rec["request_id"])
		assert.Equal(t, true, rec["valid"])
	})

	t.Run("level filters records", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		log := logger.NewWithConfig(logger.Config{Level: "warn"}, &buf)
		log.Info("hidden")
		assert.Zero(t, buf.Len())
		log.Warn("shown")
		assert.Contains(t, buf.String(), "shown")
	})

	t.Run("text format", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		log := logger.NewWithConfig(logger.Config{Format: "TEXT"}, &buf)
		log.Info("hello", slog.String("form", "contact"))
		assert.Contains(t, buf.String(), "msg=hello")
		assert.Contains(t, buf.String(), "form=contact")
	})

	t.Run("decorator keeps extractors across WithAttrs and WithGroup", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		log := logger.NewWithConfig(logger.Config{}, &buf, requestID).
			With(slog.String("component", "forms")).
			WithGroup("g")

		ctx := context.WithValue(context.Background(), ctxKey{}, "r1")
		log.InfoContext(ctx, "x", slog.Int("n", 1))

		rec := decode(t, &buf)
		assert.Equal(t, "forms", rec["component"])
		group, ok := rec["g"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "r1", group["request_id"])
		assert.Equal(t, float64(1), group["n"])
	})
}

func TestParseLevel(t *testing.T) {
	t.Parallel()

	assert.Equal(t, slog.LevelDebug, logger.ParseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, logger.ParseLevel("warning"))
	assert.Equal(t, slog.LevelError, logger.ParseLevel(" error "))
	assert.Equal(t, slog.LevelInfo, logger.ParseLevel("verbose"))
}

func TestAttrsExtractor(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logger.NewWithConfig(logger.Config{}, &buf, logger.AttrsExtractor("http"))

	ctx := logger.WithAttrs(context.Background(), slog.String("method", "POST"))
	ctx = logger.WithAttrs(ctx, slog.String("path", "/contact"))
	log.InfoContext(ctx, "bound")

	rec := decode(t, &buf)
	group, ok := rec["http"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "POST", group["method"])
	assert.Equal(t, "/contact", group["path"])

	buf.Reset()
	log.Info("no attrs")
	_, present := decode(t, &buf)["http"]
	assert.False(t, present)
}

func TestNewNope(t *testing.T) {
	t.Parallel()

	log := logger.NewNope()
	require.NotNil(t, log)
	require.False(t, log.Enabled(context.Background(), slog.LevelError))
	log.Error("discarded")
}

func TestNewWithSentry(t *testing.T) {
	t.Parallel()

	t.Run("without DSN writes locally", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		log, err := logger.NewWithSentry(logger.Config{Level: "info"}, logger.SentryConfig{}, &buf)
		require.NoError(t, err)
		log.Warn("upload rejected")
		assert.Contains(t, buf.String(), `"msg":"upload rejected"`)
	})

	t.Run("invalid DSN falls back", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		log, err := logger.NewWithSentry(logger.Config{}, logger.SentryConfig{DSN: "not a dsn"}, &buf)
		require.Error(t, err)
		require.NotNil(t, log)
		log.Info("still logging")
		assert.Contains(t, buf.String(), "still logging")
	})
}
