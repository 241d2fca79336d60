package contextx

import "context"

// TraceID identifies a request across logs, error replies and traces.
type TraceID string

type contextKeyTraceID struct{}

func (t TraceID) String() string {
	return string(t)
}

func WithTraceID(ctx context.Context, traceID TraceID) context.Context {
	return context.WithValue(ctx, contextKeyTraceID{}, traceID)
}

// TraceIDFromContext reports false when no non-empty trace id was attached.
func TraceIDFromContext(ctx context.Context) (TraceID, bool) {
	traceID, ok := ctx.Value(contextKeyTraceID{}).(TraceID)

	return traceID, ok && traceID != ""
}
