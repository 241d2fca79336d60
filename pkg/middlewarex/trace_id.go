package middlewarex

import (
	"net/http"

	"github.com/rs/xid"
	"go.opentelemetry.io/otel/trace"

	"estate_price/pkg/contextx"
)

const headerNameTraceID = "X-Trace-Id"

// TraceID picks the request trace id: the client's X-Trace-Id, then the
// OpenTelemetry trace of the request span, then a fresh xid. The id is echoed
// in the response and becomes the support id of error replies.
func TraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		traceID := contextx.TraceID(r.Header.Get(headerNameTraceID))
		if traceID == "" {
			if sc := trace.SpanContextFromContext(ctx); sc.HasTraceID() {
				traceID = contextx.TraceID(sc.TraceID().String())
			} else {
				traceID = contextx.TraceID(xid.New().String())
			}
		}

		w.Header().Set(headerNameTraceID, traceID.String())

		next.ServeHTTP(w, r.WithContext(contextx.WithTraceID(ctx, traceID)))
	})
}
