package tracing

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/sdk/resource"
	tracesdk "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
)

const instrumentationName = "github.com/ds124wfegd/country-gateway"

// Setup installs a tracer provider exporting to stdout. The returned func flushes and stops it.
func Setup(service string) (func(context.Context) error, error) {
	exp, err := stdouttrace.New()
	if err != nil {
		return nil, err
	}
	r, err := resource.Merge(resource.Default(), resource.NewSchemaless(
		attribute.String("service.name", service),
	))
	if err != nil {
		return nil, err
	}
	tp := tracesdk.NewTracerProvider(
		tracesdk.WithBatcher(exp),
		tracesdk.WithResource(r),
	)
	otel.SetTracerProvider(tp)
	return tp.Shutdown, nil
}

// Tracer returns the gateway tracer from the global provider (no-op unless Setup ran).
func Tracer() trace.Tracer {
	return otel.Tracer(instrumentationName)
}
