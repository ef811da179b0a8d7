package ports

import "go.trai.ch/hellobundle/internal/core/domain"

// ManifestLoader defines the interface for loading the bundle manifest.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ManifestLoader interface {
	// Load reads and validates the manifest at path.
	// An empty path selects the manifest embedded in the binary.
	Load(path string) (*domain.Manifest, error)

	// ValidateFragments checks that every fragment declared by the manifest
	// exists under root as a regular file.
	ValidateFragments(root string, manifest *domain.Manifest) error
}
