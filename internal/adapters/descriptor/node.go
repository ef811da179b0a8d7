package descriptor

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/hellobundle/internal/core/ports"
)

// NodeID is the unique identifier for the metadata reader Graft node.
const NodeID graft.ID = "adapter.descriptor"

func init() {
	graft.Register(graft.Node[ports.MetadataReader]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.MetadataReader, error) {
			return NewReader(), nil
		},
	})
}
