package telemetry

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/hellobundle/internal/core/ports"
)

// TracerNodeID is the unique identifier for the default tracer Graft node.
// The application replaces it with a renderer-bound tracer when it runs a build.
const TracerNodeID graft.ID = "adapter.telemetry"

// InstrumentationName names the tracer of the pipeline.
const InstrumentationName = "hellobundle"

func init() {
	graft.Register(graft.Node[ports.Tracer]{
		ID:        TracerNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Tracer, error) {
			return NewNoOpTracer(), nil
		},
	})
}
