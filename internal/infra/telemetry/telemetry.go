// Package telemetry wires the OpenTelemetry tracer provider used by the HTTP server and report runs.
package telemetry

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"

	"fooddash/config"
	"fooddash/internal/domain/lifecycle"

	"github.com/pkg/errors"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
	"go.uber.org/fx"
)

const exporterStdout = "stdout"

// Params defines the parameters required for the tracer provider
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New returns the process tracer provider. When tracing is disabled a no-op provider is returned
// and nothing is exported.
func New(params Params) (trace.TracerProvider, error) {
	tp, err := newProvider(params.Config, os.Stdout)
	if err != nil {
		return nil, err
	}

	sdkProvider, ok := tp.(*sdktrace.TracerProvider)
	if !ok {
		params.Logger.Debug("Tracing disabled")

		return tp, nil
	}

	otel.SetTracerProvider(sdkProvider)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(propagation.TraceContext{}, propagation.Baggage{}))

	params.Append(fx.Hook{
		OnStop: func(stopCtx context.Context) error {
			ctx, cancel := context.WithTimeout(stopCtx, lifecycle.DefaultTimeout)
			defer cancel()

			return errors.Wrap(sdkProvider.Shutdown(ctx), "failed to shut down tracer provider")
		},
	})

	params.Logger.Info("Tracing enabled", slog.String("exporter", params.Config.Telemetry.Exporter))

	return sdkProvider, nil
}

func newProvider(cfg *config.Config, w io.Writer) (trace.TracerProvider, error) {
	if cfg == nil || cfg.Telemetry == nil || !cfg.Telemetry.Enabled {
		return noop.NewTracerProvider(), nil
	}

	if !strings.EqualFold(cfg.Telemetry.Exporter, exporterStdout) {
		return noop.NewTracerProvider(), nil
	}

	exporter, err := stdouttrace.New(stdouttrace.WithWriter(w))
	if err != nil {
		return nil, errors.Wrap(err, "failed to create stdout trace exporter")
	}

	res := resource.NewSchemaless(
		attribute.String("service.name", cfg.Env.ServiceName),
		attribute.String("deployment.environment", cfg.Env.Env),
	)

	return sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sdktrace.AlwaysSample()),
	), nil
}
