package logger

import (
	"context"
	"log/slog"
)

type attrsKey struct{}

// WithAttrs returns a context carrying attrs for AttrsExtractor.
func WithAttrs(ctx context.Context, attrs ...slog.Attr) context.Context {
	prev, _ := ctx.Value(attrsKey{}).([]slog.Attr)
	merged := make([]slog.Attr, 0, len(prev)+len(attrs))
	merged = append(merged, prev...)
	merged = append(merged, attrs...)
	return context.WithValue(ctx, attrsKey{}, merged)
}

// AttrsExtractor injects the attributes stored by WithAttrs as one group.
func AttrsExtractor(group string) ContextExtractor {
	return func(ctx context.Context) (slog.Attr, bool) {
		attrs, ok := ctx.Value(attrsKey{}).([]slog.Attr)
		if !ok || len(attrs) == 0 {
			return slog.Attr{}, false
		}
		args := make([]any, len(attrs))
		for i, a := range attrs {
			args[i] = a
		}
		return slog.Group(group, args...), true
	}
}
