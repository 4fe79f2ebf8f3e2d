package tracing

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"storerank/internal/config/configs"
)

func restoreGlobalProvider(t *testing.T) {
	t.Helper()
	prev := otel.GetTracerProvider()
	t.Cleanup(func() { otel.SetTracerProvider(prev) })
}

func TestNewProviderDisabledLeavesGlobalTracer(t *testing.T) {
	restoreGlobalProvider(t)
	before := otel.GetTracerProvider()

	p, err := NewProvider(context.Background(), configs.Tracing{Enabled: false}, "test")
	require.NoError(t, err)
	assert.False(t, p.Enabled())
	assert.Same(t, before, otel.GetTracerProvider())
	assert.NoError(t, p.Shutdown(context.Background()))
}

func TestProviderExportsRepositorySpans(t *testing.T) {
	restoreGlobalProvider(t)
	exp := tracetest.NewInMemoryExporter()
	cfg := configs.Tracing{Enabled: true, ServiceName: "storerank", SamplingRate: 1}

	p, err := newProvider(context.Background(), cfg, "staging", exp)
	require.NoError(t, err)
	require.True(t, p.Enabled())

	_, end := StartDBSpan(context.Background(), "ledger_entries", DBOperationInsert)
	end(nil)
	require.NoError(t, p.Shutdown(context.Background()))

	spans := exp.GetSpans()
	require.Len(t, spans, 1)
	assert.Equal(t, "insert ledger_entries", spans[0].Name)
	attrs := spans[0].Resource.Attributes()
	assert.Contains(t, attrs, attribute.String("service.name", "storerank"))
	assert.Contains(t, attrs, attribute.String("deployment.environment", "staging"))
}

func TestProviderZeroSamplingExportsNothing(t *testing.T) {
	restoreGlobalProvider(t)
	exp := tracetest.NewInMemoryExporter()
	cfg := configs.Tracing{Enabled: true, ServiceName: "storerank", SamplingRate: 0}

	p, err := newProvider(context.Background(), cfg, "test", exp)
	require.NoError(t, err)

	_, span := StartSpan(context.Background(), "ranking.global")
	span.End()
	require.NoError(t, p.Shutdown(context.Background()))
	assert.Empty(t, exp.GetSpans())
}

func TestNewExporterRejectsUnknownKind(t *testing.T) {
	_, err := newExporter(context.Background(), configs.Tracing{Exporter: "zipkin"})
	assert.Error(t, err)
}
