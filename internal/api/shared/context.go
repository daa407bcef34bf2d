package shared

import (
	"context"

	"github.com/go-chi/chi/v5/middleware"
	"go.opentelemetry.io/otel/trace"
)

// GetTraceID returns the correlation id for the current request: the
// OpenTelemetry trace id when a span is active, otherwise the router's
// request id. Returns an empty string when neither exists.
func GetTraceID(ctx context.Context) string {
	if sc := trace.SpanContextFromContext(ctx); sc.HasTraceID() {
		return sc.TraceID().String()
	}
	return middleware.GetReqID(ctx)
}
