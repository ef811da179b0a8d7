package pipeline_test

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/hellobundle/internal/adapters/cas"
	"go.trai.ch/hellobundle/internal/adapters/config"
	"go.trai.ch/hellobundle/internal/adapters/descriptor"
	"go.trai.ch/hellobundle/internal/adapters/fs"
	"go.trai.ch/hellobundle/internal/adapters/minify"
	"go.trai.ch/hellobundle/internal/adapters/telemetry"
	"go.trai.ch/hellobundle/internal/core/domain"
	"go.trai.ch/hellobundle/internal/core/ports"
	"go.trai.ch/hellobundle/internal/core/ports/mocks"
	"go.trai.ch/hellobundle/internal/engine/pipeline"
	"go.uber.org/mock/gomock"
)

const bannerLine = "/*! hellojs v1.2.3 - (c) 2012-2024 Andrew Dodson - MIT https://adodson.com/hello.js/LICENSE */\n"

var buildTime = time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)

type fixture struct {
	root     string
	pipeline *pipeline.Pipeline
	store    *cas.Store
	manifest *domain.Manifest
}

func newFixture(t *testing.T, manifest *domain.Manifest) *fixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Warn(gomock.Any()).AnyTimes()

	artifacts := fs.NewArtifactFS()
	store := cas.NewStore()

	p := pipeline.New(
		config.NewLoader(mockLogger),
		descriptor.NewReader(),
		artifacts,
		fs.NewConcatenator(artifacts),
		minify.NewFileMinifier(minify.NewESBuild(), artifacts, mockLogger),
		fs.NewHasher(),
		store,
		telemetry.NewNoOpTracer(),
		clockwork.NewFakeClockAt(buildTime),
	)

	return &fixture{root: t.TempDir(), pipeline: p, store: store, manifest: manifest}
}

func (f *fixture) write(t *testing.T, rel, content string) {
	t.Helper()
	path := filepath.Join(f.root, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), domain.DirPerm))
	require.NoError(t, os.WriteFile(path, []byte(content), domain.PrivateFilePerm))
}

func (f *fixture) read(t *testing.T, rel string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(f.root, filepath.FromSlash(rel)))
	require.NoError(t, err)
	return string(data)
}

func (f *fixture) run(t *testing.T) (domain.Report, error) {
	t.Helper()
	return f.pipeline.Run(t.Context(), pipeline.Plan{Root: f.root, Manifest: f.manifest})
}

func singleBundleManifest(retain bool) *domain.Manifest {
	banner := domain.DefaultBannerSpec()
	banner.Retain = retain
	return &domain.Manifest{
		Descriptor: "package.json",
		SourceDir:  "src",
		OutputDir:  "dist",
		Banner:     banner,
		Bundles: []domain.BundleSpec{
			{Name: "core", Output: "hello.js", Minified: "hello.min.js", Fragments: []string{"a.js"}},
		},
	}
}

func embeddedManifest(t *testing.T) *domain.Manifest {
	t.Helper()
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	m, err := config.NewLoader(mockLogger).Load("")
	require.NoError(t, err)
	return m
}

// writeHelloSources writes one distinct statement per fragment of m.
func writeHelloSources(t *testing.T, f *fixture) {
	t.Helper()
	f.write(t, "package.json", `{"name":"hellojs","version":"1.2.3"}`)
	for _, b := range f.manifest.Bundles {
		for _, fragment := range b.Fragments {
			f.write(t, "src/"+fragment, fmt.Sprintf("window[%q]=1;\n", fragment))
		}
	}
}

func expectedBundle(b domain.BundleSpec) string {
	var sb strings.Builder
	for _, fragment := range b.Fragments {
		fmt.Fprintf(&sb, "window[%q]=1;\n", fragment)
	}
	return sb.String()
}

func TestPipeline_Run_Scenario(t *testing.T) {
	f := newFixture(t, singleBundleManifest(false))
	f.write(t, "package.json", `{"version":"1.2.3"}`)
	f.write(t, "src/a.js", "var a=1;")

	report, err := f.run(t)
	require.NoError(t, err)

	assert.Equal(t, "var a=1;", f.read(t, "dist/hello.js"), "concatenation should supersede the banner")
	assert.Equal(t, "var a=1;\n", f.read(t, "dist/hello.min.js"))
	assert.Equal(t, "1.2.3", report.Metadata.Version)
	assert.Equal(t, bannerLine, report.Banner)
}

func TestPipeline_Run_RetainBanner(t *testing.T) {
	f := newFixture(t, singleBundleManifest(true))
	f.write(t, "package.json", `{"version":"1.2.3"}`)
	f.write(t, "src/a.js", "var a=1;")

	_, err := f.run(t)
	require.NoError(t, err)

	assert.Equal(t, bannerLine+"var a=1;", f.read(t, "dist/hello.js"))
	assert.True(t, strings.HasPrefix(f.read(t, "dist/hello.min.js"), strings.TrimSuffix(bannerLine, "\n")),
		"legal comment should survive minification")
}

func TestPipeline_Run_BannerFallsBackToPackageName(t *testing.T) {
	m := singleBundleManifest(false)
	m.Banner.Project = ""
	f := newFixture(t, m)
	f.write(t, "package.json", `{"name":"demo","version":"0.1.0"}`)
	f.write(t, "src/a.js", "var a=1;")

	report, err := f.run(t)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(report.Banner, "/*! demo v0.1.0 - (c) 2012-2024 "))
}

func TestPipeline_Run_HelloManifest(t *testing.T) {
	f := newFixture(t, embeddedManifest(t))
	writeHelloSources(t, f)

	report, err := f.run(t)
	require.NoError(t, err)

	core, _ := f.manifest.Bundle("core")
	all, _ := f.manifest.Bundle("all")

	coreOut := f.read(t, "dist/hello.js")
	allOut := f.read(t, "dist/hello.all.js")
	assert.Equal(t, expectedBundle(core), coreOut)
	assert.Equal(t, expectedBundle(all), allOut)

	sharedPrefix := expectedBundle(domain.BundleSpec{Fragments: core.Fragments[:4]})
	assert.True(t, strings.HasPrefix(coreOut, sharedPrefix))
	assert.True(t, strings.HasPrefix(allOut, sharedPrefix))

	for _, name := range []string{"hello.min.js", "hello.all.min.js"} {
		minified := f.read(t, "dist/"+name)
		assert.NotEmpty(t, minified)
		assert.NotContains(t, minified, "/*! hellojs", "banner is superseded before minification")
	}

	require.Len(t, report.Artifacts, 4)
	assert.Equal(t, filepath.Join("dist", "hello.js"), report.Artifacts[0].Path)
	assert.Equal(t, int64(len(coreOut)), report.Artifacts[0].Size)
	require.Len(t, report.Records, 2)

	record, err := f.store.Get(f.root, "all")
	require.NoError(t, err)
	require.NotNil(t, record)
	assert.Equal(t, "1.2.3", record.Version)
	assert.Equal(t, 21, record.Fragments)
	assert.Equal(t, buildTime, record.Timestamp)
	assert.Equal(t, report.Artifacts[2].Hash, record.OutputHash)
}

func TestPipeline_Run_Deterministic(t *testing.T) {
	f := newFixture(t, embeddedManifest(t))
	writeHelloSources(t, f)

	first, err := f.run(t)
	require.NoError(t, err)
	firstAll := f.read(t, "dist/hello.all.min.js")

	second, err := f.run(t)
	require.NoError(t, err)

	assert.Equal(t, firstAll, f.read(t, "dist/hello.all.min.js"))
	assert.Equal(t, first.Records, second.Records)
}

func TestPipeline_Run_OrderMatters(t *testing.T) {
	m := singleBundleManifest(false)
	m.Bundles[0].Fragments = []string{"a.js", "b.js"}
	f := newFixture(t, m)
	f.write(t, "package.json", `{"version":"1.2.3"}`)
	f.write(t, "src/a.js", "var a=1;")
	f.write(t, "src/b.js", "var b=2;")

	_, err := f.run(t)
	require.NoError(t, err)
	assert.Equal(t, "var a=1;var b=2;", f.read(t, "dist/hello.js"))

	m.Bundles[0].Fragments = []string{"b.js", "a.js"}
	_, err = f.run(t)
	require.NoError(t, err)
	assert.Equal(t, "var b=2;var a=1;", f.read(t, "dist/hello.js"))
}

func TestPipeline_Run_MissingFragment(t *testing.T) {
	f := newFixture(t, embeddedManifest(t))
	writeHelloSources(t, f)
	require.NoError(t, os.Remove(filepath.Join(f.root, "src", "modules", "vk.js")))

	_, err := f.run(t)
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrMissingFragment.Error())
	assert.NoDirExists(t, filepath.Join(f.root, "dist"), "nothing should be written")
}

func TestPipeline_Run_DescriptorUnreadable(t *testing.T) {
	f := newFixture(t, singleBundleManifest(false))
	f.write(t, "src/a.js", "var a=1;")

	_, err := f.run(t)
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrDescriptorUnreadable.Error())
	assert.NoDirExists(t, filepath.Join(f.root, "dist"))
}

func TestPipeline_Run_MinificationFailure(t *testing.T) {
	f := newFixture(t, embeddedManifest(t))
	writeHelloSources(t, f)
	f.write(t, "src/modules/twitter.js", "var = ;")

	_, err := f.run(t)
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrMinificationFailed.Error())

	assert.NotEmpty(t, f.read(t, "dist/hello.min.js"), "core bundle minifies before the failure")
	assert.Equal(t, bannerLine, f.read(t, "dist/hello.all.min.js"), "failed artifact keeps its placeholder")
	assert.Contains(t, f.read(t, "dist/hello.all.js"), "var = ;")

	record, err := f.store.Get(f.root, "core")
	require.NoError(t, err)
	assert.Nil(t, record, "no records are written for a failed build")
}

func TestPipeline_Run_Cancelled(t *testing.T) {
	f := newFixture(t, singleBundleManifest(false))
	f.write(t, "package.json", `{"version":"1.2.3"}`)
	f.write(t, "src/a.js", "var a=1;")

	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	_, err := f.pipeline.Run(ctx, pipeline.Plan{Root: f.root, Manifest: f.manifest})
	require.ErrorIs(t, err, context.Canceled)
	assert.NoDirExists(t, filepath.Join(f.root, "dist"))
}

func TestSteps(t *testing.T) {
	assert.Equal(t, []string{
		pipeline.StepValidate,
		pipeline.StepDescriptor,
		pipeline.StepBanner,
		pipeline.StepOutputDir,
		pipeline.StepPlaceholder,
		"concat core",
		"concat all",
		"minify core",
		"minify all",
		pipeline.StepRecord,
	}, pipeline.Steps(embeddedManifest(t)))
}

func TestPipeline_WithTracer(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockTracer := mocks.NewMockTracer(ctrl)
	mockSpan := mocks.NewMockSpan(ctrl)

	m := singleBundleManifest(false)
	base := newFixture(t, m)
	base.write(t, "src/a.js", "var a=1;")

	mockTracer.EXPECT().EmitPlan(gomock.Any(), pipeline.Steps(m))
	gomock.InOrder(
		mockTracer.EXPECT().Start(gomock.Any(), pipeline.StepValidate).
			DoAndReturn(func(ctx context.Context, _ string, _ ...ports.SpanOption) (context.Context, ports.Span) {
				return ctx, mockSpan
			}),
		mockTracer.EXPECT().Start(gomock.Any(), pipeline.StepDescriptor).
			DoAndReturn(func(ctx context.Context, _ string, _ ...ports.SpanOption) (context.Context, ports.Span) {
				return ctx, mockSpan
			}),
	)
	mockSpan.EXPECT().Write(gomock.Any()).Return(0, nil).AnyTimes()
	mockSpan.EXPECT().RecordError(gomock.Any())
	mockSpan.EXPECT().End().Times(2)

	traced := base.pipeline.WithTracer(mockTracer)
	_, err := traced.Run(t.Context(), pipeline.Plan{Root: base.root, Manifest: m})
	require.Error(t, err, "package.json is missing")
}
