package telemetry_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.trai.ch/hellobundle/internal/adapters/telemetry"
	"go.trai.ch/hellobundle/internal/core/ports"
	"go.trai.ch/hellobundle/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func TestOTelTracer_WithRenderer(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockRenderer := mocks.NewMockRenderer(ctrl)

	var spanID string
	gomock.InOrder(
		mockRenderer.EXPECT().OnPlanEmit([]string{"descriptor", "banner"}),
		mockRenderer.EXPECT().OnTaskStart(gomock.Any(), "", "descriptor", gomock.Any()).
			Do(func(id, _, _ string, _ time.Time) { spanID = id }),
		mockRenderer.EXPECT().OnTaskLog(gomock.Any(), []byte("version 1.2.3\n")).
			Do(func(id string, _ []byte) { assert.Equal(t, spanID, id) }),
		mockRenderer.EXPECT().OnTaskComplete(gomock.Any(), gomock.Any(), gomock.Not(nil)),
	)

	tracer := telemetry.NewOTelTracerFromProvider(telemetry.NewTracerProvider(mockRenderer), "test").
		WithRenderer(mockRenderer)

	ctx := t.Context()
	tracer.EmitPlan(ctx, []string{"descriptor", "banner"})

	_, span := tracer.Start(ctx, "descriptor")
	n, err := span.Write([]byte("version 1.2.3\n"))
	require.NoError(t, err)
	assert.Equal(t, 14, n)
	span.RecordError(errors.New("descriptor unreadable"))
	span.End()
}

func TestOTelTracer_Attributes(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	tracer := telemetry.NewOTelTracerFromProvider(tp, "test")

	_, span := tracer.Start(t.Context(), "concat", ports.WithAttribute("bundle", "core"))
	span.SetAttribute("fragments", 6)
	span.SetAttribute("retain", false)
	span.SetAttribute("size", int64(42))
	span.SetAttribute("ratio", 0.5)
	span.SetAttribute("paths", []string{"a.js"})
	span.SetAttribute("other", struct{}{})
	span.End()

	ended := recorder.Ended()
	require.Len(t, ended, 1)

	attrs := make(map[attribute.Key]attribute.Value)
	for _, kv := range ended[0].Attributes() {
		attrs[kv.Key] = kv.Value
	}
	assert.Equal(t, "core", attrs["bundle"].AsString())
	assert.Equal(t, int64(6), attrs["fragments"].AsInt64())
	assert.False(t, attrs["retain"].AsBool())
	assert.Equal(t, int64(42), attrs["size"].AsInt64())
	assert.InDelta(t, 0.5, attrs["ratio"].AsFloat64(), 0.0001)
	assert.Equal(t, []string{"a.js"}, attrs["paths"].AsStringSlice())
	assert.Equal(t, "{}", attrs["other"].AsString())
}

func TestOTelTracer_WriteWithoutRenderer(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	tracer := telemetry.NewOTelTracerFromProvider(tp, "test")

	_, span := tracer.Start(t.Context(), "minify")
	_, err := span.Write([]byte("warning"))
	require.NoError(t, err)
	span.RecordError(nil)
	span.End()

	ended := recorder.Ended()
	require.Len(t, ended, 1)
	require.Len(t, ended[0].Events(), 1)
	assert.Equal(t, "log", ended[0].Events()[0].Name)
}

func TestNoOpTracer(t *testing.T) {
	tracer := telemetry.NewNoOpTracer()
	ctx := t.Context()

	tracer.EmitPlan(ctx, []string{"a"})
	gotCtx, span := tracer.Start(ctx, "a", ports.WithAttribute("k", "v"))
	assert.Equal(t, ctx, gotCtx)

	n, err := span.Write([]byte("abc"))
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	assert.NotPanics(t, func() {
		span.SetAttribute("k", "v")
		span.RecordError(errors.New("x"))
		span.End()
	})
}
