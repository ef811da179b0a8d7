package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/hellobundle/internal/core/ports"
)

const (
	// ArtifactFSNodeID is the unique identifier for the artifact filesystem Graft node.
	ArtifactFSNodeID graft.ID = "adapter.fs.artifacts"
	// ConcatenatorNodeID is the unique identifier for the concatenator Graft node.
	ConcatenatorNodeID graft.ID = "adapter.fs.concatenator"
	// HasherNodeID is the unique identifier for the hasher Graft node.
	HasherNodeID graft.ID = "adapter.fs.hasher"
)

func init() {
	graft.Register(graft.Node[ports.ArtifactFS]{
		ID:        ArtifactFSNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ArtifactFS, error) {
			return NewArtifactFS(), nil
		},
	})

	graft.Register(graft.Node[ports.Concatenator]{
		ID:        ConcatenatorNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{ArtifactFSNodeID},
		Run: func(ctx context.Context) (ports.Concatenator, error) {
			artifacts, err := graft.Dep[ports.ArtifactFS](ctx)
			if err != nil {
				return nil, err
			}
			return NewConcatenator(artifacts), nil
		},
	})

	graft.Register(graft.Node[ports.Hasher]{
		ID:        HasherNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Hasher, error) {
			return NewHasher(), nil
		},
	})
}
