package minify

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/hellobundle/internal/adapters/fs"
	"go.trai.ch/hellobundle/internal/adapters/logger"
	"go.trai.ch/hellobundle/internal/core/ports"
)

// NodeID is the unique identifier for the minifier Graft node.
const NodeID graft.ID = "adapter.minifier"

func init() {
	graft.Register(graft.Node[ports.Minifier]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{fs.ArtifactFSNodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.Minifier, error) {
			artifacts, err := graft.Dep[ports.ArtifactFS](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewFileMinifier(NewESBuild(), artifacts, log), nil
		},
	})
}
