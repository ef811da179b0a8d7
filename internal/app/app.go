// Package app implements the application layer for hellobundle.
package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/jonboulle/clockwork"
	"go.opentelemetry.io/otel"
	"go.trai.ch/hellobundle/internal/adapters/detector"
	"go.trai.ch/hellobundle/internal/adapters/telemetry"
	"go.trai.ch/hellobundle/internal/adapters/tui"
	"go.trai.ch/hellobundle/internal/core/domain"
	"go.trai.ch/hellobundle/internal/core/ports"
	"go.trai.ch/hellobundle/internal/engine/pipeline"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	loader    ports.ManifestLoader
	logger    ports.Logger
	pipeline  *pipeline.Pipeline
	renderer  ports.Renderer
	hasher    ports.Hasher
	store     ports.BuildRecordStore
	artifacts ports.ArtifactFS
	watcher   ports.Watcher
	clock     clockwork.Clock

	teaOptions []tea.ProgramOption
}

// New creates a new App instance.
func New(
	loader ports.ManifestLoader,
	log ports.Logger,
	p *pipeline.Pipeline,
	renderer ports.Renderer,
	hasher ports.Hasher,
	store ports.BuildRecordStore,
	artifacts ports.ArtifactFS,
	watcher ports.Watcher,
	clock clockwork.Clock,
) *App {
	return &App{
		loader:    loader,
		logger:    log,
		pipeline:  p,
		renderer:  renderer,
		hasher:    hasher,
		store:     store,
		artifacts: artifacts,
		watcher:   watcher,
		clock:     clock,
	}
}

// WithRenderer replaces the renderer used for step progress.
// This is primarily used for testing to capture output.
func (a *App) WithRenderer(r ports.Renderer) *App {
	a.renderer = r
	return a
}

// WithTeaOptions appends options to the program driving the TUI output mode.
func (a *App) WithTeaOptions(opts ...tea.ProgramOption) *App {
	a.teaOptions = append(a.teaOptions, opts...)
	return a
}

// BuildOptions configuration for the Build method.
type BuildOptions struct {
	Root       string
	Manifest   string
	OutputMode string
}

// Build runs the bundling pipeline for the project at opts.Root.
func (a *App) Build(ctx context.Context, opts BuildOptions) error {
	root, manifest, err := a.load(opts.Root, opts.Manifest)
	if err != nil {
		return err
	}

	p := a.pipeline
	if renderer := a.rendererFor(ctx, opts.OutputMode); renderer != nil {
		if err := renderer.Start(ctx); err != nil {
			return err
		}
		defer func() {
			_ = renderer.Stop()
		}()

		// Spans started by the pipeline are forwarded to the renderer by the bridge.
		tp := telemetry.NewTracerProvider(renderer)
		otel.SetTracerProvider(tp)
		defer func() {
			_ = tp.Shutdown(context.WithoutCancel(ctx))
		}()

		p = p.WithTracer(telemetry.NewOTelTracer(telemetry.InstrumentationName).WithRenderer(renderer))
	}

	report, err := p.Run(ctx, pipeline.Plan{Root: root, Manifest: manifest})
	if err != nil {
		return errors.Join(domain.ErrBuildFailed, err)
	}

	for _, artifact := range report.Artifacts {
		a.logger.Info(fmt.Sprintf("wrote %s (%d bytes, %s)", filepath.ToSlash(artifact.Path), artifact.Size, artifact.Hash))
	}
	a.logger.Info(fmt.Sprintf("built %s v%s", report.Metadata.Name, report.Metadata.Version))

	return nil
}

// rendererFor returns the renderer for the output mode, or nil when progress is suppressed.
// The TUI holds per-run state, so a fresh one is created for every build.
func (a *App) rendererFor(ctx context.Context, mode string) ports.Renderer {
	switch detector.ResolveMode(detector.DetectEnvironment(), mode) {
	case domain.OutputModeQuiet:
		return nil
	case domain.OutputModeTUI:
		opts := append([]tea.ProgramOption{
			tea.WithContext(ctx),
			tea.WithOutput(os.Stderr),
		}, a.teaOptions...)
		return tui.NewRenderer(tui.NewModel(), opts...)
	default:
		return a.renderer
	}
}

// VerifyOptions configuration for the Verify method.
type VerifyOptions struct {
	Root     string
	Manifest string
}

// Verify checks that the artifacts on disk still match the records of the last build.
// Every bundle is checked; all mismatches are reported together.
func (a *App) Verify(_ context.Context, opts VerifyOptions) error {
	root, manifest, err := a.load(opts.Root, opts.Manifest)
	if err != nil {
		return err
	}

	var errs error
	checked := 0

	for _, b := range manifest.Bundles {
		record, err := a.store.Get(root, b.Name)
		if err != nil {
			errs = errors.Join(errs, err)
			continue
		}
		if record == nil {
			errs = errors.Join(errs, zerr.With(domain.ErrNoBuildRecord, "bundle", b.Name))
			continue
		}

		for _, artifact := range []struct{ name, want string }{
			{b.Output, record.OutputHash},
			{b.Minified, record.MinifiedHash},
		} {
			got, err := a.hasher.HashFile(manifest.OutputPath(root, artifact.name))
			if err != nil {
				errs = errors.Join(errs, err)
				continue
			}
			if got != artifact.want {
				drift := zerr.With(domain.ErrArtifactDrift, "bundle", b.Name)
				drift = zerr.With(drift, "artifact", artifact.name)
				drift = zerr.With(drift, "recorded", artifact.want)
				errs = errors.Join(errs, zerr.With(drift, "actual", got))
				continue
			}
			checked++
		}

		fragmentsHash, err := a.hasher.HashFiles(manifest.FragmentPaths(root, b))
		if err == nil && fragmentsHash != record.FragmentsHash {
			a.logger.Warn(fmt.Sprintf("bundle %q: fragments changed since the last build", b.Name))
		}
	}

	if errs != nil {
		return errs
	}

	a.logger.Info(fmt.Sprintf("verified %d artifact(s)", checked))
	return nil
}

// CleanOptions configuration for the Clean method.
type CleanOptions struct {
	Root      string
	Manifest  string
	Artifacts bool
	Records   bool
}

// Clean removes build artifacts and build records based on the provided options.
func (a *App) Clean(_ context.Context, opts CleanOptions) error {
	root, manifest, err := a.load(opts.Root, opts.Manifest)
	if err != nil {
		return err
	}

	var errs error

	remove := func(path, name string) {
		if err := a.artifacts.Remove(path); err != nil {
			errs = errors.Join(errs, err)
			return
		}
		a.logger.Info(fmt.Sprintf("removed %s", name))
	}

	if opts.Artifacts {
		for _, b := range manifest.Bundles {
			for _, artifact := range []string{b.Output, b.Minified} {
				remove(manifest.OutputPath(root, artifact), filepath.ToSlash(filepath.Join(manifest.OutputDir, artifact)))
			}
		}
	}

	if opts.Records {
		remove(filepath.Join(root, domain.DefaultStatePath()), "build records")
	}

	return errs
}

// load resolves the project root and loads the manifest.
// A relative manifest path is resolved against the root.
func (a *App) load(rootPath, manifestPath string) (string, *domain.Manifest, error) {
	root, err := filepath.Abs(rootPath)
	if err != nil {
		return "", nil, zerr.Wrap(err, domain.ErrFailedToGetRoot.Error())
	}

	if manifestPath != "" && !filepath.IsAbs(manifestPath) {
		manifestPath = filepath.Join(root, manifestPath)
	}

	manifest, err := a.loader.Load(manifestPath)
	if err != nil {
		return "", nil, err
	}

	return root, manifest, nil
}
