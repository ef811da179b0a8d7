package ports

import (
	"context"
	"time"
)

// Renderer is the abstraction for progress output.
// It decouples telemetry collection from presentation.
//
//go:generate mockgen -source=renderer.go -destination=mocks/mock_renderer.go -package=mocks
type Renderer interface {
	// Start initializes the renderer.
	Start(ctx context.Context) error

	// Stop flushes any buffered output.
	Stop() error

	// OnPlanEmit is called with the ordered list of pipeline steps.
	OnPlanEmit(steps []string)

	// OnTaskStart is called when a step begins.
	// spanID: unique identifier for this step
	// parentID: spanID of the enclosing span (empty if root)
	OnTaskStart(spanID, parentID, name string, startTime time.Time)

	// OnTaskLog is called when a step emits output.
	OnTaskLog(spanID string, data []byte)

	// OnTaskComplete is called when a step finishes; err is nil on success.
	OnTaskComplete(spanID string, endTime time.Time, err error)
}
