// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/hellobundle/internal/adapters/cas"
	_ "go.trai.ch/hellobundle/internal/adapters/config"
	_ "go.trai.ch/hellobundle/internal/adapters/descriptor"
	_ "go.trai.ch/hellobundle/internal/adapters/fs"
	_ "go.trai.ch/hellobundle/internal/adapters/linear"
	_ "go.trai.ch/hellobundle/internal/adapters/logger"
	_ "go.trai.ch/hellobundle/internal/adapters/minify"
	_ "go.trai.ch/hellobundle/internal/adapters/telemetry"
	_ "go.trai.ch/hellobundle/internal/adapters/watcher"
	// Register app and engine nodes.
	_ "go.trai.ch/hellobundle/internal/app"
	_ "go.trai.ch/hellobundle/internal/engine/pipeline"
)
