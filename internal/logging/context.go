package logging

import (
	"context"
	"crypto/rand"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog"
)

type traceIDKey struct{}

// TraceIDField is the log field carrying the invocation trace ID.
const TraceIDField = "trace_id"

// NewTraceID returns a fresh, time-ordered trace ID.
func NewTraceID() string {
	return ulid.MustNew(ulid.Timestamp(time.Now()), rand.Reader).String()
}

// ContextWithTraceID stores the trace ID in ctx.
func ContextWithTraceID(ctx context.Context, traceID string) context.Context {
	return context.WithValue(ctx, traceIDKey{}, traceID)
}

// TraceIDFromContext returns the trace ID stored in ctx, or "".
func TraceIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	id, _ := ctx.Value(traceIDKey{}).(string)
	return id
}

// GetOrGenerateTraceID returns the trace ID in ctx, generating one if absent.
func GetOrGenerateTraceID(ctx context.Context) string {
	if id := TraceIDFromContext(ctx); id != "" {
		return id
	}
	return NewTraceID()
}

// FromContext returns the logger stored in ctx, tagged with the trace ID when
// one is present. Without a stored logger it returns a disabled logger.
func FromContext(ctx context.Context) *zerolog.Logger {
	if ctx == nil {
		l := zerolog.Nop()
		return &l
	}
	l := zerolog.Ctx(ctx).With().Logger()
	if id := TraceIDFromContext(ctx); id != "" {
		l = l.With().Str(TraceIDField, id).Logger()
	}
	return &l
}
