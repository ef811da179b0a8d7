package app

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"go.trai.ch/hellobundle/internal/adapters/watcher" //nolint:depguard // Debouncer is a pure helper
	"golang.org/x/sync/errgroup"
)

// WatchOptions configuration for the Watch method.
type WatchOptions struct {
	Root       string
	Manifest   string
	OutputMode string
	// Debounce is the quiet period after the last change before a rebuild starts.
	Debounce time.Duration
}

// Watch builds once, then rebuilds every bundle whenever a fragment, the
// package descriptor or the manifest changes. Each rebuild is a full build.
// Build failures are logged and watching continues until ctx is done.
func (a *App) Watch(ctx context.Context, opts WatchOptions) error {
	root, manifest, err := a.load(opts.Root, opts.Manifest)
	if err != nil {
		return err
	}

	manifestPath := opts.Manifest
	if manifestPath != "" && !filepath.IsAbs(manifestPath) {
		manifestPath = filepath.Join(root, manifestPath)
	}

	buildOpts := BuildOptions{Root: root, Manifest: manifestPath, OutputMode: opts.OutputMode}

	sourceDir := filepath.Join(root, manifest.SourceDir)
	watched := []string{sourceDir, manifest.DescriptorPath(root)}
	if manifestPath != "" {
		watched = append(watched, manifestPath)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// The watcher is running before the first build so that edits made
	// during that build still trigger a rebuild.
	if err := a.watcher.Start(ctx, watched...); err != nil {
		return err
	}
	defer func() {
		_ = a.watcher.Stop()
	}()

	relevant := func(path string) bool {
		if path == manifest.DescriptorPath(root) || (manifestPath != "" && path == manifestPath) {
			return true
		}
		rel, err := filepath.Rel(sourceDir, path)
		return err == nil && filepath.IsLocal(rel)
	}

	window := opts.Debounce
	if window <= 0 {
		window = watcher.DefaultDebounceWindow
	}

	trigger := make(chan []string, 1)
	debouncer := watcher.NewDebouncer(a.clock, window, func(paths []string) {
		select {
		case trigger <- paths:
		default:
			// A rebuild is already pending and will pick these changes up.
		}
	})
	defer debouncer.Stop()

	a.logger.Info(fmt.Sprintf("watching %s for changes", filepath.ToSlash(manifest.SourceDir)))

	g, ctx := errgroup.WithContext(ctx)

	// Event Routine
	g.Go(func() error {
		// The build routine stops once the event stream ends.
		defer cancel()
		for event := range a.watcher.Events() {
			if ctx.Err() != nil {
				return nil
			}
			if relevant(event.Path) {
				debouncer.Add(event.Path)
			}
		}
		return nil
	})

	// Build Routine
	g.Go(func() error {
		a.rebuild(ctx, buildOpts)
		for {
			select {
			case <-ctx.Done():
				return nil
			case paths := <-trigger:
				a.logger.Info("change detected: " + describeChanges(root, paths))
				a.rebuild(ctx, buildOpts)
			}
		}
	})

	return g.Wait()
}

func (a *App) rebuild(ctx context.Context, opts BuildOptions) {
	if err := a.Build(ctx, opts); err != nil && ctx.Err() == nil {
		a.logger.Error(err)
	}
}

func describeChanges(root string, paths []string) string {
	names := make([]string, 0, len(paths))
	for _, path := range paths {
		if rel, err := filepath.Rel(root, path); err == nil {
			path = rel
		}
		names = append(names, filepath.ToSlash(path))
	}
	return strings.Join(names, ", ")
}
