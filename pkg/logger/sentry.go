package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/getsentry/sentry-go"
	sentryslog "github.com/getsentry/sentry-go/slog"
)

// SentryConfig holds Sentry integration configuration.
type SentryConfig struct {
	DSN         string `env:"SENTRY_DSN"`
	Environment string `env:"SENTRY_ENVIRONMENT" envDefault:"production"`
	// Level is the lowest level forwarded to Sentry, "warn" or "error".
	// Error records always create issues.
	Level string `env:"SENTRY_LEVEL" envDefault:"warn"`
}

// NewWithSentry creates a logger that writes like NewWithConfig and also
// forwards warnings and errors to Sentry. With an empty DSN it is
// NewWithConfig. If the SDK cannot be initialised the plain logger is
// returned together with the error.
func NewWithSentry(cfg Config, sc SentryConfig, w io.Writer, extractors ...ContextExtractor) (*slog.Logger, error) {
	local := newHandler(cfg, w)
	if sc.DSN == "" {
		return slog.New(NewLogHandlerDecorator(local, extractors...)), nil
	}

	if err := sentry.Init(sentry.ClientOptions{
		Dsn:         sc.DSN,
		Environment: sc.Environment,
		EnableLogs:  true,
	}); err != nil {
		return slog.New(NewLogHandlerDecorator(local, extractors...)), fmt.Errorf("logger: init sentry: %w", err)
	}

	logLevels := []slog.Level{slog.LevelWarn, slog.LevelError}
	if ParseLevel(sc.Level) >= slog.LevelError {
		logLevels = []slog.Level{slog.LevelError}
	}

	remote := sentryslog.Option{
		EventLevel: []slog.Level{slog.LevelError},
		LogLevel:   logLevels,
	}.NewSentryHandler(context.Background())

	return slog.New(NewLogHandlerDecorator(newMultiHandler(local, remote), extractors...)), nil
}
