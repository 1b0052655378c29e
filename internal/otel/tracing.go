// Package otel configures the global OpenTelemetry tracer provider from the
// standard OTEL_* environment variables.
package otel

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	"go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"
	"go.uber.org/zap"
)

const defaultServiceName = "brewery"

// ShutdownFunc flushes and stops the tracer provider.
type ShutdownFunc func(context.Context) error

func noopShutdown(context.Context) error { return nil }

// Init initializes the OpenTelemetry tracer provider with an OTLP exporter.
// Exporter failures degrade to the no-op provider instead of failing startup.
func Init(ctx context.Context, logger *zap.Logger) (ShutdownFunc, error) {
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(propagation.TraceContext{}, propagation.Baggage{}))

	if os.Getenv("OTEL_SDK_DISABLED") == "true" {
		logger.Info("tracing_configured", zap.Bool("tracing_enabled", false))
		return noopShutdown, nil
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceNameKey.String(getEnv("OTEL_SERVICE_NAME", defaultServiceName)),
		),
		resource.WithFromEnv(),
		resource.WithProcess(),
		resource.WithTelemetrySDK(),
		resource.WithHost(),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create resource: %w", err)
	}

	protocol := getEnv("OTEL_EXPORTER_OTLP_PROTOCOL", "grpc")
	exporter, err := newExporter(ctx, protocol)
	if err != nil {
		logger.Error("tracing_init_failed", zap.Error(err))
		return noopShutdown, nil
	}

	tp := trace.NewTracerProvider(
		trace.WithBatcher(exporter),
		trace.WithResource(res),
		trace.WithSampler(getSampler()),
	)
	otel.SetTracerProvider(tp)

	endpoint := os.Getenv("OTEL_EXPORTER_OTLP_TRACES_ENDPOINT")
	if endpoint == "" {
		endpoint = os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT")
	}
	logger.Info("tracing_configured",
		zap.Bool("tracing_enabled", true),
		zap.String("otlp_protocol", protocol),
		zap.String("otlp_endpoint", endpoint),
		zap.String("sampler", getEnv("OTEL_TRACES_SAMPLER", "parentbased_traceidratio")),
		zap.String("sampler_arg", getEnv("OTEL_TRACES_SAMPLER_ARG", "1.0")),
	)

	return tp.Shutdown, nil
}

func newExporter(ctx context.Context, protocol string) (*otlptrace.Exporter, error) {
	switch protocol {
	case "grpc":
		return otlptracegrpc.New(ctx)
	case "http/protobuf":
		return otlptracehttp.New(ctx)
	default:
		return nil, fmt.Errorf("unsupported OTLP protocol: %s", protocol)
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func samplerRatio() float64 {
	ratio, err := strconv.ParseFloat(os.Getenv("OTEL_TRACES_SAMPLER_ARG"), 64)
	if err != nil || ratio < 0 || ratio > 1 {
		return 1.0
	}
	return ratio
}

func getSampler() trace.Sampler {
	switch os.Getenv("OTEL_TRACES_SAMPLER") {
	case "always_on":
		return trace.AlwaysSample()
	case "always_off":
		return trace.NeverSample()
	case "traceidratio":
		return trace.TraceIDRatioBased(samplerRatio())
	case "parentbased_always_on":
		return trace.ParentBased(trace.AlwaysSample())
	case "parentbased_always_off":
		return trace.ParentBased(trace.NeverSample())
	case "parentbased_traceidratio":
		return trace.ParentBased(trace.TraceIDRatioBased(samplerRatio()))
	default:
		return trace.ParentBased(trace.AlwaysSample())
	}
}
