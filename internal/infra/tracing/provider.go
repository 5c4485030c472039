package tracing

import (
	"context"
	"log/slog"

	"lightmap/config"
	"lightmap/internal/domain/lifecycle"
	"lightmap/internal/errors"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/fx"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// Setup installs an OTLP/HTTP tracer provider as the global provider when
// tracing is enabled, and flushes it on shutdown.
func Setup(params Params) error {
	cfg := params.Config.Tracing
	if cfg == nil || !cfg.Enabled {
		params.Logger.Debug("Tracing disabled")

		return nil
	}

	if cfg.SamplingRate < 0 || cfg.SamplingRate > 1 {
		return errors.Errorf("tracing sampling rate must be between 0 and 1, got %f", cfg.SamplingRate)
	}

	res, err := resource.New(context.Background(),
		resource.WithAttributes(
			attribute.String("service.name", params.Config.Env.ServiceName),
			attribute.String("deployment.environment", params.Config.Env.Env),
		),
	)
	if err != nil {
		return errors.Wrap(err, "failed to create tracing resource")
	}

	opts := []otlptracehttp.Option{}
	if cfg.Endpoint != "" {
		opts = append(opts, otlptracehttp.WithEndpoint(cfg.Endpoint))
	}
	if cfg.Insecure {
		opts = append(opts, otlptracehttp.WithInsecure())
	}

	exporter, err := otlptracehttp.New(context.Background(), opts...)
	if err != nil {
		return errors.Wrap(err, "failed to create OTLP exporter")
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sdktrace.ParentBased(sdktrace.TraceIDRatioBased(cfg.SamplingRate))),
		sdktrace.WithBatcher(exporter),
	)
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	params.Logger.Info("Tracing initialized",
		slog.String("endpoint", cfg.Endpoint),
		slog.Float64("samplingRate", cfg.SamplingRate),
	)

	params.Append(fx.Hook{
		OnStop: func(stopCtx context.Context) error {
			ctx, cancel := context.WithTimeout(stopCtx, lifecycle.DefaultTimeout)
			defer cancel()

			return tp.Shutdown(ctx)
		},
	})

	return nil
}
