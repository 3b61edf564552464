package logging

import (
	"context"
	"log/slog"
	"strings"
)

const (
	// FieldComponent is the standardized structured logging key for component names.
	FieldComponent = "component"
	// FieldBatchID identifies one probe batch across its log lines.
	FieldBatchID = "batch_id"
	// FieldPath is the media file a line refers to.
	FieldPath = "path"
	// FieldBinary is the ffprobe executable in use.
	FieldBinary = "binary"
)

type batchIDKey struct{}

// WithBatchID returns a context carrying a batch identifier.
func WithBatchID(ctx context.Context, id string) context.Context {
	id = strings.TrimSpace(id)
	if id == "" {
		return ctx
	}
	return context.WithValue(ctx, batchIDKey{}, id)
}

// BatchIDFromContext returns the batch identifier stored by WithBatchID.
func BatchIDFromContext(ctx context.Context) (string, bool) {
	if ctx == nil {
		return "", false
	}
	id, ok := ctx.Value(batchIDKey{}).(string)
	return id, ok && id != ""
}

// ContextFields extracts standardized slog attributes from the provided context.
func ContextFields(ctx context.Context) []slog.Attr {
	if id, ok := BatchIDFromContext(ctx); ok {
		return []slog.Attr{slog.String(FieldBatchID, id)}
	}
	return nil
}

// WithContext returns a logger augmented with structured fields derived from the supplied context.
func WithContext(ctx context.Context, logger *slog.Logger) *slog.Logger {
	if logger == nil {
		logger = NewNop()
	}
	fields := ContextFields(ctx)
	if len(fields) == 0 {
		return logger
	}
	return logger.With(Args(fields...)...)
}
