package domain

import (
	"path/filepath"

	"go.trai.ch/zerr"
)

// BannerSpec describes the license banner stamped on every artifact.
type BannerSpec struct {
	Project   string
	Author    string
	License   string
	URL       string
	FirstYear int
	// Retain keeps the banner as the first line of the concatenated bundles.
	// When false, concatenation replaces the banner placeholder entirely.
	Retain bool
}

// BundleSpec is one bundle: an ordered fragment list and its two artifacts.
// Fragment order is authoritative and is never sorted or deduplicated.
type BundleSpec struct {
	Name      string
	Output    string
	Minified  string
	Fragments []string
}

// Manifest is the ordered bundle configuration of a project.
type Manifest struct {
	Version    string
	Descriptor string
	SourceDir  string
	OutputDir  string
	Banner     BannerSpec
	Bundles    []BundleSpec
}

// Bundle returns the bundle with the given name.
func (m *Manifest) Bundle(name string) (BundleSpec, bool) {
	for _, b := range m.Bundles {
		if b.Name == name {
			return b, true
		}
	}
	return BundleSpec{}, false
}

// Validate checks the structural invariants of the manifest.
// It does not touch the filesystem.
func (m *Manifest) Validate() error {
	if len(m.Bundles) == 0 {
		return zerr.With(ErrInvalidManifest, "reason", "no bundles declared")
	}

	names := make(map[string]struct{}, len(m.Bundles))
	artifacts := make(map[string]string, 2*len(m.Bundles))

	for _, b := range m.Bundles {
		if b.Name == "" {
			return zerr.With(ErrInvalidManifest, "reason", "bundle without name")
		}
		if _, dup := names[b.Name]; dup {
			err := zerr.With(ErrInvalidManifest, "reason", "duplicate bundle name")
			return zerr.With(err, "bundle", b.Name)
		}
		names[b.Name] = struct{}{}

		for _, artifact := range []string{b.Output, b.Minified} {
			if !isBareFileName(artifact) {
				err := zerr.With(ErrInvalidManifest, "reason", "artifact must be a bare file name")
				err = zerr.With(err, "bundle", b.Name)
				return zerr.With(err, "artifact", artifact)
			}
			if owner, dup := artifacts[artifact]; dup {
				err := zerr.With(ErrInvalidManifest, "reason", "artifact declared twice")
				err = zerr.With(err, "artifact", artifact)
				err = zerr.With(err, "first_bundle", owner)
				return zerr.With(err, "bundle", b.Name)
			}
			artifacts[artifact] = b.Name
		}

		if len(b.Fragments) == 0 {
			err := zerr.With(ErrInvalidManifest, "reason", "bundle has no fragments")
			return zerr.With(err, "bundle", b.Name)
		}
		for _, fragment := range b.Fragments {
			if !filepath.IsLocal(fragment) {
				err := zerr.With(ErrInvalidManifest, "reason", "fragment escapes source directory")
				err = zerr.With(err, "bundle", b.Name)
				return zerr.With(err, "fragment", fragment)
			}
		}
	}

	return nil
}

// FragmentPaths returns the absolute fragment paths of b in declared order.
func (m *Manifest) FragmentPaths(root string, b BundleSpec) []string {
	paths := make([]string, len(b.Fragments))
	for i, fragment := range b.Fragments {
		paths[i] = filepath.Join(root, m.SourceDir, filepath.FromSlash(fragment))
	}
	return paths
}

// OutputPath returns the path of an artifact inside the output directory.
func (m *Manifest) OutputPath(root, artifact string) string {
	return filepath.Join(root, m.OutputDir, artifact)
}

// DescriptorPath returns the path of the package descriptor.
func (m *Manifest) DescriptorPath(root string) string {
	return filepath.Join(root, m.Descriptor)
}

func isBareFileName(name string) bool {
	return name != "" && name != "." && name != ".." && filepath.Base(name) == name
}
