package telemetry_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.trai.ch/hellobundle/internal/adapters/telemetry"
	"go.trai.ch/hellobundle/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func TestBridge_StartAndEnd(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockRenderer := mocks.NewMockRenderer(ctrl)

	var startedID string
	gomock.InOrder(
		mockRenderer.EXPECT().
			OnTaskStart(gomock.Any(), "", "concat", gomock.Any()).
			Do(func(spanID, _, _ string, _ time.Time) { startedID = spanID }),
		mockRenderer.EXPECT().
			OnTaskComplete(gomock.Any(), gomock.Any(), nil).
			Do(func(spanID string, _ time.Time, _ error) { assert.Equal(t, startedID, spanID) }),
	)

	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(telemetry.NewBridge(mockRenderer)))
	_, span := tp.Tracer("test").Start(t.Context(), "concat")
	span.End()
}

func TestBridge_ParentID(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockRenderer := mocks.NewMockRenderer(ctrl)

	var rootID, childParent string
	mockRenderer.EXPECT().OnTaskStart(gomock.Any(), "", "build", gomock.Any()).
		Do(func(spanID, _, _ string, _ time.Time) { rootID = spanID })
	mockRenderer.EXPECT().OnTaskStart(gomock.Any(), gomock.Any(), "minify", gomock.Any()).
		Do(func(_, parentID, _ string, _ time.Time) { childParent = parentID })
	mockRenderer.EXPECT().OnTaskComplete(gomock.Any(), gomock.Any(), nil).Times(2)

	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(telemetry.NewBridge(mockRenderer)))
	tracer := tp.Tracer("test")
	ctx, root := tracer.Start(t.Context(), "build")
	_, child := tracer.Start(ctx, "minify")
	child.End()
	root.End()

	require.NotEmpty(t, rootID)
	assert.Equal(t, rootID, childParent)
}

func TestBridge_ErrorStatus(t *testing.T) {
	tests := []struct {
		name        string
		description string
		want        string
	}{
		{name: "with description", description: "minification failed", want: "minification failed"},
		{name: "without description", description: "", want: "step failed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockRenderer := mocks.NewMockRenderer(ctrl)
			mockRenderer.EXPECT().OnTaskStart(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any())
			mockRenderer.EXPECT().OnTaskComplete(gomock.Any(), gomock.Any(), gomock.Any()).
				Do(func(_ string, _ time.Time, err error) {
					require.Error(t, err)
					assert.Equal(t, tt.want, err.Error())
				})

			tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(telemetry.NewBridge(mockRenderer)))
			_, span := tp.Tracer("test").Start(t.Context(), "minify")
			span.SetStatus(codes.Error, tt.description)
			span.End()
		})
	}
}

func TestBridge_NilRenderer(t *testing.T) {
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(telemetry.NewBridge(nil)))
	assert.NotPanics(t, func() {
		_, span := tp.Tracer("test").Start(t.Context(), "noop")
		span.RecordError(errors.New("ignored"))
		span.End()
	})
}

func TestBridge_FlushAndShutdown(t *testing.T) {
	bridge := telemetry.NewBridge(nil)
	require.NoError(t, bridge.ForceFlush(t.Context()))
	require.NoError(t, bridge.Shutdown(t.Context()))
}
