package logger

import (
	"context"
	"log/slog"
)

type runIDKey struct{}

// WithRunID stores a campaign run identifier in the context. The dispatcher
// calls this once per run so every log line of the run can be correlated.
func WithRunID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, runIDKey{}, id)
}

// RunID returns the campaign run identifier stored in the context, if any.
func RunID(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(runIDKey{}).(string)
	return id, ok && id != ""
}

// RunIDExtractor injects the run identifier into log records.
// Pair it with New:
//
//	log := logger.New(logger.RunIDExtractor)
func RunIDExtractor(ctx context.Context) (slog.Attr, bool) {
	if id, ok := RunID(ctx); ok {
		return slog.String("run_id", id), true
	}
	return slog.Attr{}, false
}
