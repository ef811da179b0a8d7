package app

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/jonboulle/clockwork"
	"go.trai.ch/hellobundle/internal/adapters/cas"     //nolint:depguard // Wired in app layer
	"go.trai.ch/hellobundle/internal/adapters/config"  //nolint:depguard // Wired in app layer
	"go.trai.ch/hellobundle/internal/adapters/fs"      //nolint:depguard // Wired in app layer
	"go.trai.ch/hellobundle/internal/adapters/linear"  //nolint:depguard // Wired in app layer
	"go.trai.ch/hellobundle/internal/adapters/logger"  //nolint:depguard // Wired in app layer
	"go.trai.ch/hellobundle/internal/adapters/watcher" //nolint:depguard // Wired in app layer
	"go.trai.ch/hellobundle/internal/core/ports"
	"go.trai.ch/hellobundle/internal/engine/pipeline"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			logger.NodeID,
			pipeline.NodeID,
			linear.NodeID,
			fs.HasherNodeID,
			cas.NodeID,
			fs.ArtifactFSNodeID,
			watcher.NodeID,
			pipeline.ClockNodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			app, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return &Components{App: app, Logger: log}, nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ManifestLoader](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	p, err := graft.Dep[*pipeline.Pipeline](ctx)
	if err != nil {
		return nil, err
	}

	renderer, err := graft.Dep[ports.Renderer](ctx)
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

	artifacts, err := graft.Dep[ports.ArtifactFS](ctx)
	if err != nil {
		return nil, err
	}

	w, err := graft.Dep[ports.Watcher](ctx)
	if err != nil {
		return nil, err
	}

	clock, err := graft.Dep[clockwork.Clock](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, log, p, renderer, hasher, store, artifacts, w, clock), nil
}
