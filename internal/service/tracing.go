package service

import (
	"context"

	"github.com/alexanderramin/steward/internal/app"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// TracerName identifies spans emitted by the service layer. Spans are no-ops
// unless the process installs a tracer provider.
const TracerName = "steward/service"

func startSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	return otel.Tracer(TracerName).Start(ctx, name, trace.WithAttributes(attrs...))
}

func endSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetAttributes(attribute.String("error.code", string(app.CodeFor(err))))
		span.SetStatus(codes.Error, string(app.CodeFor(err)))
	}
	span.End()
}
