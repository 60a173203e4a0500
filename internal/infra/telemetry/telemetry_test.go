package telemetry

import (
	"bytes"
	"context"
	"testing"

	"fooddash/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

func TestNewProvider_DisabledIsNoop(t *testing.T) {
	for _, cfg := range []*config.Config{
		nil,
		{},
		{Telemetry: &config.TelemetryConfig{Enabled: false, Exporter: "stdout"}},
		{Telemetry: &config.TelemetryConfig{Enabled: true, Exporter: "none"}},
	} {
		tp, err := newProvider(cfg, &bytes.Buffer{})
		require.NoError(t, err)
		assert.IsType(t, noop.TracerProvider{}, tp)
	}
}

func TestNewProvider_StdoutExportsSpans(t *testing.T) {
	var buf bytes.Buffer
	cfg := &config.Config{Telemetry: &config.TelemetryConfig{Enabled: true, Exporter: "STDOUT"}}
	cfg.Env.ServiceName = "fooddash"

	tp, err := newProvider(cfg, &buf)
	require.NoError(t, err)

	sdkProvider, ok := tp.(*sdktrace.TracerProvider)
	require.True(t, ok)

	_, span := sdkProvider.Tracer("test").Start(context.Background(), "report.run")
	span.End()
	require.NoError(t, sdkProvider.Shutdown(context.Background()))

	assert.Contains(t, buf.String(), "report.run")
	assert.Contains(t, buf.String(), "fooddash")
}
