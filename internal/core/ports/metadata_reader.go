package ports

import "go.trai.ch/hellobundle/internal/core/domain"

// MetadataReader defines the interface for reading the package descriptor.
//
//go:generate mockgen -source=metadata_reader.go -destination=mocks/mock_metadata_reader.go -package=mocks
type MetadataReader interface {
	// Read loads the project metadata from the descriptor at path.
	// A missing file, an unparseable file, or an empty version is an error.
	Read(path string) (domain.ProjectMetadata, error)
}
