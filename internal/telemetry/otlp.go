// Package telemetry installs an OpenTelemetry tracer provider when an OTLP
// endpoint or a trace file is configured. Store dispatches are the only
// spans widgetdash produces.
package telemetry

import (
	"context"
	"io"
	"os"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.4.0"
)

const (
	EnvEndpoint    = "OTEL_EXPORTER_OTLP_ENDPOINT"
	EnvServiceName = "OTEL_SERVICE_NAME"
	EnvTraceFile   = "WIDGETDASH_TRACE_FILE"

	DefaultServiceName = "widgetdash"
)

// Provider wraps the SDK tracer provider. A nil *Provider is valid and
// means telemetry is disabled.
type Provider struct {
	tp  *sdktrace.TracerProvider
	out io.Closer // trace file, if any
}

// Setup registers a global tracer provider. OTEL_EXPORTER_OTLP_ENDPOINT
// selects the OTLP/HTTP exporter; otherwise WIDGETDASH_TRACE_FILE selects
// the JSON file exporter. Returns nil, nil when neither is set.
func Setup(ctx context.Context) (*Provider, error) {
	endpoint := os.Getenv(EnvEndpoint)
	if endpoint == "" {
		if path := os.Getenv(EnvTraceFile); path != "" {
			return setupFile(path)
		}
		return nil, nil
	}

	exporter, err := otlptracehttp.New(ctx,
		otlptracehttp.WithEndpoint(endpoint),
		otlptracehttp.WithInsecure(),
	)
	if err != nil {
		return nil, err
	}
	return install(sdktrace.WithBatcher(exporter)), nil
}

// install builds a provider around the given span pipeline and makes it the
// global one.
func install(opts ...sdktrace.TracerProviderOption) *Provider {
	res := resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceNameKey.String(serviceName()),
	)
	opts = append(opts, sdktrace.WithResource(res))
	tp := sdktrace.NewTracerProvider(opts...)
	otel.SetTracerProvider(tp)
	return &Provider{tp: tp}
}

func serviceName() string {
	if v := os.Getenv(EnvServiceName); v != "" {
		return v
	}
	return DefaultServiceName
}

// Enabled reports whether spans are being exported.
func (p *Provider) Enabled() bool {
	return p != nil && p.tp != nil
}

// Shutdown flushes pending spans and stops the exporter.
func (p *Provider) Shutdown(ctx context.Context) error {
	if !p.Enabled() {
		return nil
	}
	err := p.tp.Shutdown(ctx)
	if p.out != nil {
		if cerr := p.out.Close(); err == nil {
			err = cerr
		}
	}
	return err
}
