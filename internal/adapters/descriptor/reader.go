// Package descriptor reads project metadata from package.json.
package descriptor

import (
	"encoding/json"
	"os"
	"strings"

	"go.trai.ch/hellobundle/internal/core/domain"
	"go.trai.ch/hellobundle/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.MetadataReader = (*Reader)(nil)

// Reader implements ports.MetadataReader for JSON package descriptors.
type Reader struct{}

// NewReader creates a new Reader.
func NewReader() *Reader {
	return &Reader{}
}

// Read loads the name and version fields of the descriptor at path.
// Unknown fields are ignored. A missing or blank version is an error.
func (r *Reader) Read(path string) (domain.ProjectMetadata, error) {
	//nolint:gosec // Path is the project descriptor chosen by the caller
	data, err := os.ReadFile(path)
	if err != nil {
		return domain.ProjectMetadata{}, zerr.With(zerr.Wrap(err, domain.ErrDescriptorUnreadable.Error()), "path", path)
	}

	var meta domain.ProjectMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return domain.ProjectMetadata{}, zerr.With(zerr.Wrap(err, domain.ErrDescriptorUnreadable.Error()), "path", path)
	}

	if strings.TrimSpace(meta.Version) == "" {
		err := zerr.With(domain.ErrDescriptorUnreadable, "reason", "version is missing")
		return domain.ProjectMetadata{}, zerr.With(err, "path", path)
	}

	return meta, nil
}
