// Package pipeline sequences the bundling steps: descriptor, banner, output
// directory, placeholders, concatenation, minification and build records.
package pipeline

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/jonboulle/clockwork"
	"go.trai.ch/hellobundle/internal/core/domain"
	"go.trai.ch/hellobundle/internal/core/ports"
)

// Step names, in execution order. Bundle steps are suffixed with the bundle name.
const (
	StepValidate    = "validate"
	StepDescriptor  = "descriptor"
	StepBanner      = "banner"
	StepOutputDir   = "outdir"
	StepPlaceholder = "placeholder"
	StepConcat      = "concat"
	StepMinify      = "minify"
	StepRecord      = "record"
)

// Plan is one invocation of the pipeline.
type Plan struct {
	// Root is the project directory every manifest path is relative to.
	Root     string
	Manifest *domain.Manifest
}

// Pipeline runs the bundling steps strictly in order. The first failing step
// aborts the run; nothing is retried.
type Pipeline struct {
	loader    ports.ManifestLoader
	metadata  ports.MetadataReader
	artifacts ports.ArtifactFS
	concat    ports.Concatenator
	minifier  ports.Minifier
	hasher    ports.Hasher
	store     ports.BuildRecordStore
	tracer    ports.Tracer
	clock     clockwork.Clock
}

// New creates a new Pipeline with the given dependencies.
func New(
	loader ports.ManifestLoader,
	metadata ports.MetadataReader,
	artifacts ports.ArtifactFS,
	concat ports.Concatenator,
	minifier ports.Minifier,
	hasher ports.Hasher,
	store ports.BuildRecordStore,
	tracer ports.Tracer,
	clock clockwork.Clock,
) *Pipeline {
	return &Pipeline{
		loader:    loader,
		metadata:  metadata,
		artifacts: artifacts,
		concat:    concat,
		minifier:  minifier,
		hasher:    hasher,
		store:     store,
		tracer:    tracer,
		clock:     clock,
	}
}

// WithTracer returns a copy of the pipeline that reports its steps to tracer.
func (p *Pipeline) WithTracer(tracer ports.Tracer) *Pipeline {
	next := *p
	next.tracer = tracer
	return &next
}

// Steps returns the names of the steps Run performs for manifest, in order.
func Steps(manifest *domain.Manifest) []string {
	steps := []string{StepValidate, StepDescriptor, StepBanner, StepOutputDir, StepPlaceholder}
	for _, b := range manifest.Bundles {
		steps = append(steps, stepName(StepConcat, b))
	}
	for _, b := range manifest.Bundles {
		steps = append(steps, stepName(StepMinify, b))
	}
	return append(steps, StepRecord)
}

// Run performs the full build described by plan.
//
//nolint:cyclop // sequential orchestration of fixed steps
func (p *Pipeline) Run(ctx context.Context, plan Plan) (domain.Report, error) {
	m := plan.Manifest
	root := plan.Root
	var report domain.Report

	p.tracer.EmitPlan(ctx, Steps(m))

	if err := p.step(ctx, StepValidate, func(_ context.Context, span ports.Span) error {
		if err := p.loader.ValidateFragments(root, m); err != nil {
			return err
		}
		_, _ = fmt.Fprintf(span, "%d bundle(s) validated\n", len(m.Bundles))
		return nil
	}); err != nil {
		return report, err
	}

	if err := p.step(ctx, StepDescriptor, func(_ context.Context, span ports.Span) error {
		meta, err := p.metadata.Read(m.DescriptorPath(root))
		if err != nil {
			return err
		}
		report.Metadata = meta
		span.SetAttribute("version", meta.Version)
		return nil
	}); err != nil {
		return report, err
	}

	if err := p.step(ctx, StepBanner, func(_ context.Context, span ports.Span) error {
		spec := m.Banner
		if spec.Project == "" {
			spec.Project = report.Metadata.Name
		}
		report.Banner = domain.FormatBanner(spec, report.Metadata.Version, p.clock.Now().Year())
		_, _ = span.Write([]byte(report.Banner))
		return nil
	}); err != nil {
		return report, err
	}

	if err := p.step(ctx, StepOutputDir, func(_ context.Context, _ ports.Span) error {
		return p.artifacts.EnsureDir(filepath.Join(root, m.OutputDir))
	}); err != nil {
		return report, err
	}

	if err := p.step(ctx, StepPlaceholder, func(_ context.Context, _ ports.Span) error {
		banner := []byte(report.Banner)
		for _, b := range m.Bundles {
			for _, artifact := range []string{b.Output, b.Minified} {
				if err := p.artifacts.WriteFile(m.OutputPath(root, artifact), banner); err != nil {
					return err
				}
			}
		}
		return nil
	}); err != nil {
		return report, err
	}

	var header []byte
	if m.Banner.Retain {
		header = []byte(report.Banner)
	}

	for _, b := range m.Bundles {
		if err := p.step(ctx, stepName(StepConcat, b), func(ctx context.Context, span ports.Span) error {
			span.SetAttribute("fragments", len(b.Fragments))
			return p.concat.Concatenate(ctx, header, m.FragmentPaths(root, b), m.OutputPath(root, b.Output))
		}, ports.WithAttribute("bundle", b.Name)); err != nil {
			return report, err
		}
	}

	for _, b := range m.Bundles {
		if err := p.step(ctx, stepName(StepMinify, b), func(ctx context.Context, _ ports.Span) error {
			return p.minifier.Minify(ctx, m.OutputPath(root, b.Output), m.OutputPath(root, b.Minified))
		}, ports.WithAttribute("bundle", b.Name)); err != nil {
			return report, err
		}
	}

	if err := p.step(ctx, StepRecord, func(_ context.Context, _ ports.Span) error {
		return p.record(root, m, &report)
	}); err != nil {
		return report, err
	}

	return report, nil
}

func (p *Pipeline) step(
	ctx context.Context,
	name string,
	fn func(context.Context, ports.Span) error,
	opts ...ports.SpanOption,
) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	ctx, span := p.tracer.Start(ctx, name, opts...)
	defer span.End()

	if err := fn(ctx, span); err != nil {
		span.RecordError(err)
		return err
	}
	return nil
}

func (p *Pipeline) record(root string, m *domain.Manifest, report *domain.Report) error {
	now := p.clock.Now().UTC()

	for _, b := range m.Bundles {
		record := domain.BuildRecord{
			Bundle:    b.Name,
			Version:   report.Metadata.Version,
			Output:    b.Output,
			Minified:  b.Minified,
			Fragments: len(b.Fragments),
			Timestamp: now,
		}

		fragmentsHash, err := p.hasher.HashFiles(m.FragmentPaths(root, b))
		if err != nil {
			return err
		}
		record.FragmentsHash = fragmentsHash

		for _, artifact := range []struct {
			name string
			hash *string
		}{
			{b.Output, &record.OutputHash},
			{b.Minified, &record.MinifiedHash},
		} {
			result, err := p.artifact(root, m, b.Name, artifact.name)
			if err != nil {
				return err
			}
			*artifact.hash = result.Hash
			report.Artifacts = append(report.Artifacts, result)
		}

		if err := p.store.Put(root, record); err != nil {
			return err
		}
		report.Records = append(report.Records, record)
	}

	return nil
}

func (p *Pipeline) artifact(root string, m *domain.Manifest, bundle, name string) (domain.ArtifactResult, error) {
	path := m.OutputPath(root, name)

	hash, err := p.hasher.HashFile(path)
	if err != nil {
		return domain.ArtifactResult{}, err
	}

	size, err := p.artifacts.Size(path)
	if err != nil {
		return domain.ArtifactResult{}, err
	}

	return domain.ArtifactResult{
		Bundle: bundle,
		Path:   filepath.Join(m.OutputDir, name),
		Size:   size,
		Hash:   hash,
	}, nil
}

func stepName(step string, b domain.BundleSpec) string {
	return step + " " + b.Name
}
