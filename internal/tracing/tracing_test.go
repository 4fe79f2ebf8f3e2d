package tracing

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func withRecorder(t *testing.T) *tracetest.SpanRecorder {
	t.Helper()
	rec := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(rec))
	prev := otel.GetTracerProvider()
	otel.SetTracerProvider(tp)
	t.Cleanup(func() {
		otel.SetTracerProvider(prev)
		_ = tp.Shutdown(context.Background())
	})
	return rec
}

func TestStartDBSpanRecordsError(t *testing.T) {
	rec := withRecorder(t)

	_, end := StartDBSpan(context.Background(), "sponsorships", DBOperationUpdate)
	end(errors.New("serialization failure"))

	spans := rec.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, "update sponsorships", spans[0].Name())
	assert.Equal(t, codes.Error, spans[0].Status().Code)
	assert.Contains(t, spans[0].Attributes(), attribute.String("db.sql.table", "sponsorships"))
}

func TestStartSpan(t *testing.T) {
	rec := withRecorder(t)

	_, span := StartSpan(context.Background(), "ranking.global", attribute.String("shape", "global"))
	span.End()

	spans := rec.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, "ranking.global", spans[0].Name())
	assert.Equal(t, codes.Unset, spans[0].Status().Code)
}
