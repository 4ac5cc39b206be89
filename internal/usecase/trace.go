package usecase

import (
	"context"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

var usecaseTracer = otel.Tracer("venue-insight/internal/usecase")
var usecaseNoopSpan = trace.SpanFromContext(context.Background())

const attrVenueID = attribute.Key("venue.id")

// startUsecaseSpan only opens a child span. Calls without an active parent
// return the context unchanged.
func startUsecaseSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	if strings.TrimSpace(name) == "" {
		return ctx, usecaseNoopSpan
	}
	if !trace.SpanFromContext(ctx).SpanContext().IsValid() {
		return ctx, usecaseNoopSpan
	}
	return usecaseTracer.Start(ctx, name, trace.WithAttributes(attrs...))
}

func startVenueSpan(ctx context.Context, name, venueID string) (context.Context, trace.Span) {
	return startUsecaseSpan(ctx, name, attrVenueID.String(strings.TrimSpace(venueID)))
}
