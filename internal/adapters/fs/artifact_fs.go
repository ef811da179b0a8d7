// Package fs implements the filesystem adapters: artifact writes, fragment
// concatenation and content hashing.
package fs

import (
	"os"

	"go.trai.ch/hellobundle/internal/core/domain"
	"go.trai.ch/hellobundle/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ArtifactFS = (*ArtifactFS)(nil)

// ArtifactFS implements ports.ArtifactFS on the local filesystem.
type ArtifactFS struct{}

// NewArtifactFS creates a new ArtifactFS.
func NewArtifactFS() *ArtifactFS {
	return &ArtifactFS{}
}

// EnsureDir creates path and any missing parents.
func (a *ArtifactFS) EnsureDir(path string) error {
	if err := os.MkdirAll(path, domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrDirectoryCreateFailed.Error()), "path", path)
	}
	return nil
}

// WriteFile truncates the file at path and writes data to it.
func (a *ArtifactFS) WriteFile(path string, data []byte) error {
	//nolint:gosec // Path is derived from the manifest and the project root
	if err := os.WriteFile(path, data, domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrArtifactWriteFailed.Error()), "path", path)
	}
	return nil
}

// Size stats path and returns its size.
func (a *ArtifactFS) Size(path string) (int64, error) {
	info, err := os.Stat(path)
	if err != nil {
		return 0, zerr.With(zerr.Wrap(err, domain.ErrFileOpenFailed.Error()), "path", path)
	}
	return info.Size(), nil
}

// Remove deletes path recursively. A missing path is not an error.
func (a *ArtifactFS) Remove(path string) error {
	if err := os.RemoveAll(path); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrArtifactRemoveFailed.Error()), "path", path)
	}
	return nil
}
