// Package config loads the bundle manifest and the invocation settings.
package config

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/hellobundle/internal/core/domain"
	"go.trai.ch/hellobundle/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// EmbeddedManifestName is the name reported for the manifest compiled into the binary.
const EmbeddedManifestName = "hellojs.yaml"

//go:embed hellojs.yaml
var embeddedManifest []byte

var _ ports.ManifestLoader = (*Loader)(nil)

// Loader implements ports.ManifestLoader using YAML files.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Load reads, normalizes and validates the manifest at path.
// An empty path selects the embedded hello.js manifest.
func (l *Loader) Load(path string) (*domain.Manifest, error) {
	data := embeddedManifest
	name := EmbeddedManifestName

	if path != "" {
		//nolint:gosec // Manifest path is chosen by the user
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, domain.ErrManifestReadFailed.Error()), "path", path)
		}
		data = raw
		name = path
	}

	var dto Manifestfile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&dto); err != nil && !errors.Is(err, io.EOF) {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrManifestParseFailed.Error()), "path", name)
	}

	manifest, err := l.toDomain(&dto)
	if err != nil {
		return nil, zerr.With(err, "path", name)
	}

	if err := manifest.Validate(); err != nil {
		return nil, zerr.With(err, "path", name)
	}

	l.warnDuplicateFragments(manifest)

	return manifest, nil
}

func (l *Loader) toDomain(dto *Manifestfile) (*domain.Manifest, error) {
	manifest := &domain.Manifest{
		Version:    dto.Version,
		Descriptor: orDefault(dto.Descriptor, domain.DefaultDescriptorName),
		SourceDir:  orDefault(dto.Source, domain.DefaultSourceDirName),
		OutputDir:  orDefault(dto.Output, domain.DefaultOutputDirName),
		Banner:     domain.DefaultBannerSpec(),
		Bundles:    make([]domain.BundleSpec, 0, len(dto.Bundles)),
	}

	if dto.Banner != nil {
		if dto.Banner.FirstYear < 0 {
			return nil, zerr.With(domain.ErrInvalidManifest, "reason", "banner.firstYear must be positive")
		}
		// Unset fields keep the hello.js defaults.
		b := &manifest.Banner
		b.Project = orDefault(dto.Banner.Project, b.Project)
		b.Author = orDefault(dto.Banner.Author, b.Author)
		b.License = orDefault(dto.Banner.License, b.License)
		b.URL = orDefault(dto.Banner.URL, b.URL)
		if dto.Banner.FirstYear != 0 {
			b.FirstYear = dto.Banner.FirstYear
		}
		b.Retain = dto.Banner.Retain
	}

	for _, b := range dto.Bundles {
		manifest.Bundles = append(manifest.Bundles, domain.BundleSpec{
			Name:      b.Name,
			Output:    b.Output,
			Minified:  b.Minified,
			Fragments: append([]string(nil), b.Fragments...),
		})
	}

	return manifest, nil
}

func (l *Loader) warnDuplicateFragments(manifest *domain.Manifest) {
	if l.Logger == nil {
		return
	}
	for _, b := range manifest.Bundles {
		seen := make(map[string]struct{}, len(b.Fragments))
		for _, fragment := range b.Fragments {
			if _, dup := seen[fragment]; dup {
				l.Logger.Warn(fmt.Sprintf("bundle %q includes fragment %q more than once", b.Name, fragment))
				continue
			}
			seen[fragment] = struct{}{}
		}
	}
}

// ValidateFragments checks that every declared fragment exists under root
// as a regular file. It stops at the first missing fragment.
func (l *Loader) ValidateFragments(root string, manifest *domain.Manifest) error {
	for _, b := range manifest.Bundles {
		paths := manifest.FragmentPaths(root, b)
		for i, path := range paths {
			info, err := os.Stat(path)
			switch {
			case err != nil && errors.Is(err, fs.ErrNotExist):
				err = zerr.With(domain.ErrMissingFragment, "bundle", b.Name)
				err = zerr.With(err, "fragment", b.Fragments[i])
				return zerr.With(err, "path", path)
			case err != nil:
				err = zerr.With(zerr.Wrap(err, domain.ErrMissingFragment.Error()), "bundle", b.Name)
				return zerr.With(err, "path", path)
			case !info.Mode().IsRegular():
				err = zerr.With(domain.ErrMissingFragment, "reason", "not a regular file")
				err = zerr.With(err, "bundle", b.Name)
				return zerr.With(err, "path", path)
			}
		}
	}
	return nil
}

// EmbeddedManifest returns a copy of the manifest compiled into the binary.
func EmbeddedManifest() []byte {
	return bytes.Clone(embeddedManifest)
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return filepath.Clean(value)
}
