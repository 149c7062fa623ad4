package logger

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingHandler struct{ slog.Handler }

func (failingHandler) Handle(context.Context, slog.Record) error { return errors.New("sink down") }

func TestMultiHandler(t *testing.T) {
	t.Parallel()

	var debug, errs bytes.Buffer
	h := newMultiHandler(
		slog.NewJSONHandler(&debug, &slog.HandlerOptions{Level: slog.LevelDebug}),
		slog.NewJSONHandler(&errs, &slog.HandlerOptions{Level: slog.LevelError}),
	)
	log := slog.New(h).With("form", "contact").WithGroup("field")

	require.True(t, h.Enabled(context.Background(), slog.LevelDebug))

	log.Debug("form validated", "name", "email")
	log.Error("render failed", "name", "photo")

	assert.Equal(t, 2, strings.Count(debug.String(), `"form":"contact"`))
	assert.Equal(t, 1, strings.Count(errs.String(), "\n"))
	assert.Contains(t, errs.String(), `"field":{"name":"photo"}`)
}

func TestMultiHandler_JoinsErrors(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	h := newMultiHandler(
		failingHandler{slog.NewJSONHandler(&bytes.Buffer{}, nil)},
		slog.NewJSONHandler(&buf, nil),
	)

	rec := slog.NewRecord(time.Now(), slog.LevelInfo, "hello", 0)
	err := h.Handle(context.Background(), rec)
	require.EqualError(t, err, "sink down")
	assert.Contains(t, buf.String(), `"msg":"hello"`)
}
