package httpapi

import (
	"context"
	"net/http"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

var apiTracer = otel.Tracer("venue-insight/internal/interfaces/httpapi")
var noopSpan = trace.SpanFromContext(context.Background())

const attrVenueID = attribute.Key("venue.id")

// startSpan opens a span for handler entry points only. Helper and
// middleware names, and requests without a server span (e.g. /healthz),
// get a noop span.
func startSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	if !trace.SpanFromContext(ctx).SpanContext().IsValid() || !shouldCreateHTTPAPISpan(name) {
		return ctx, noopSpan
	}
	return apiTracer.Start(ctx, name, trace.WithAttributes(attrs...))
}

// startVenueSpan reads the {venueID} path value and tags the handler span
// with it.
func startVenueSpan(r *http.Request, name string) (context.Context, trace.Span, string) {
	venueID := strings.TrimSpace(r.PathValue("venueID"))
	ctx, span := startSpan(r.Context(), name, attrVenueID.String(venueID))
	return ctx, span, venueID
}

func shouldCreateHTTPAPISpan(name string) bool {
	return strings.HasPrefix(name, "httpapi.Handler.")
}
