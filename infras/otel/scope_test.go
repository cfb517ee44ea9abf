package otel_test

import (
	"context"
	"errors"
	"frontdesk/infras/otel"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func newRecorded(t *testing.T) (otel.Otel, *tracetest.SpanRecorder) {
	t.Helper()

	recorder := tracetest.NewSpanRecorder()
	provider := trace.NewTracerProvider(trace.WithSpanProcessor(recorder))

	return otel.NewWithProvider(provider), recorder
}

func TestScope_TraceIfError(t *testing.T) {
	otl, recorder := newRecorded(t)

	_, scope := otl.NewScope(context.Background(), "service", "service.booking.Create")
	scope.TraceIfError(nil)
	scope.TraceIfError(errors.New("room is already booked for those dates"))
	scope.End()

	spans := recorder.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, "service.booking.Create", spans[0].Name())
	assert.Equal(t, codes.Error, spans[0].Status().Code)
	assert.Len(t, spans[0].Events(), 1)
}

func TestScope_SetAttributes(t *testing.T) {
	otl, recorder := newRecorded(t)

	_, scope := otl.NewScope(context.Background(), "repository", "repository.procedure.complete_booking")
	scope.SetAttributes(map[string]any{
		"procedure":  "complete_booking",
		"booking_id": int64(12),
		"total":      150.5,
		"retry":      false,
	})
	scope.End()

	attrs := map[attribute.Key]attribute.Value{}
	for _, kv := range recorder.Ended()[0].Attributes() {
		attrs[kv.Key] = kv.Value
	}

	assert.Equal(t, "complete_booking", attrs["procedure"].AsString())
	assert.Equal(t, int64(12), attrs["booking_id"].AsInt64())
	assert.InDelta(t, 150.5, attrs["total"].AsFloat64(), 0.001)
	assert.False(t, attrs["retry"].AsBool())
}

func TestOtel_Shutdown(t *testing.T) {
	otl, _ := newRecorded(t)

	assert.NoError(t, otl.Shutdown(context.Background()))
}

func TestScope_TraceErrorNil(t *testing.T) {
	otl, recorder := newRecorded(t)

	_, scope := otl.NewScope(context.Background(), "handler", "handler.GetGrid")
	scope.TraceError(nil)
	scope.SetAttribute("rooms", []int64{101, 102})
	scope.End()

	span := recorder.Ended()[0]
	assert.Equal(t, codes.Unset, span.Status().Code)
	assert.Empty(t, span.Events())
	assert.Equal(t, []int64{101, 102}, span.Attributes()[0].Value.AsInt64Slice())
}
