package logging

import (
	"context"
	"log/slog"
)

const (
	// FieldComponent is the standardized structured logging key for component names.
	FieldComponent = "component"
	// FieldRunID identifies a single CLI invocation. It is stamped on every
	// record by loggers built with Options.RunID.
	FieldRunID = "run_id"
	// FieldExternalID is the identifier read from the input list (e.g. nm0000001).
	FieldExternalID = "external_id"
	// FieldKind is the entity kind being resolved (person, director, title).
	FieldKind = "kind"
	// FieldEventType classifies warnings and errors for filtering.
	FieldEventType = "event_type"
	// FieldErrorHint suggests the next step to the operator.
	FieldErrorHint = "error_hint"
	// FieldImpact is the user-facing consequence of a warning.
	FieldImpact = "impact"
)

type contextKey int

const (
	externalIDKey contextKey = iota
	kindKey
)

// WithExternalID tags ctx with the external identifier being processed.
func WithExternalID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, externalIDKey, id)
}

// WithKind tags ctx with the entity kind being processed.
func WithKind(ctx context.Context, kind string) context.Context {
	return context.WithValue(ctx, kindKey, kind)
}

func stringFromContext(ctx context.Context, key contextKey) (string, bool) {
	if ctx == nil {
		return "", false
	}
	value, ok := ctx.Value(key).(string)
	if !ok || value == "" {
		return "", false
	}
	return value, true
}

// ContextFields extracts standardized slog attributes from the provided context.
func ContextFields(ctx context.Context) []slog.Attr {
	fields := make([]slog.Attr, 0, 2)
	if id, ok := stringFromContext(ctx, externalIDKey); ok {
		fields = append(fields, slog.String(FieldExternalID, id))
	}
	if kind, ok := stringFromContext(ctx, kindKey); ok {
		fields = append(fields, slog.String(FieldKind, kind))
	}
	return fields
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
