package pipeline

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/jonboulle/clockwork"
	"go.trai.ch/hellobundle/internal/adapters/cas"        //nolint:depguard // Wired in engine wiring
	"go.trai.ch/hellobundle/internal/adapters/config"     //nolint:depguard // Wired in engine wiring
	"go.trai.ch/hellobundle/internal/adapters/descriptor" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/hellobundle/internal/adapters/fs"         //nolint:depguard // Wired in engine wiring
	"go.trai.ch/hellobundle/internal/adapters/minify"     //nolint:depguard // Wired in engine wiring
	"go.trai.ch/hellobundle/internal/adapters/telemetry"  //nolint:depguard // Wired in engine wiring
	"go.trai.ch/hellobundle/internal/core/ports"
)

const (
	// NodeID is the unique identifier for the pipeline Graft node.
	NodeID graft.ID = "engine.pipeline"
	// ClockNodeID is the unique identifier for the clock Graft node.
	ClockNodeID graft.ID = "engine.clock"
)

func init() {
	graft.Register(graft.Node[clockwork.Clock]{
		ID:        ClockNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (clockwork.Clock, error) {
			return clockwork.NewRealClock(), nil
		},
	})

	graft.Register(graft.Node[*Pipeline]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			descriptor.NodeID,
			fs.ArtifactFSNodeID,
			fs.ConcatenatorNodeID,
			minify.NodeID,
			fs.HasherNodeID,
			cas.NodeID,
			telemetry.TracerNodeID,
			ClockNodeID,
		},
		Run: func(ctx context.Context) (*Pipeline, error) {
			loader, err := graft.Dep[ports.ManifestLoader](ctx)
			if err != nil {
				return nil, err
			}

			metadata, err := graft.Dep[ports.MetadataReader](ctx)
			if err != nil {
				return nil, err
			}

			artifacts, err := graft.Dep[ports.ArtifactFS](ctx)
			if err != nil {
				return nil, err
			}

			concat, err := graft.Dep[ports.Concatenator](ctx)
			if err != nil {
				return nil, err
			}

			minifier, err := graft.Dep[ports.Minifier](ctx)
			if err != nil {
				return nil, err
			}

			hasher, err := graft.Dep[ports.Hasher](ctx)
			if err != nil {
				return nil, err
			}

			store, err := graft.Dep[ports.BuildRecordStore](ctx)
			if err != nil {
				return nil, err
			}

			tracer, err := graft.Dep[ports.Tracer](ctx)
			if err != nil {
				return nil, err
			}

			clock, err := graft.Dep[clockwork.Clock](ctx)
			if err != nil {
				return nil, err
			}

			return New(loader, metadata, artifacts, concat, minifier, hasher, store, tracer, clock), nil
		},
	})
}
