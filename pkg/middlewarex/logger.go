package middlewarex

import (
	"log/slog"
	"net/http"

	"estate_price/pkg/contextx"
	"estate_price/pkg/logx"
)

// Logger attaches a request logger tagged with the trace id and route.
func Logger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		attrs := []any{
			slog.String(logx.FieldHTTPMethod, r.Method),
			slog.String(logx.FieldPath, r.URL.Path),
			slog.String(logx.FieldIP, r.RemoteAddr),
		}

		if traceID, ok := contextx.TraceIDFromContext(ctx); ok {
			attrs = append(attrs, logx.Stringer(logx.FieldTraceID, traceID))
		}

		ctx = contextx.WithLogger(ctx, logger(ctx).With(attrs...))

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
