package ports

import "go.trai.ch/hellobundle/internal/core/domain"

// BuildRecordStore defines the interface for storing and retrieving build records.
//
//go:generate mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type BuildRecordStore interface {
	// Get retrieves the record for a bundle under root.
	// Returns nil, nil if not found.
	Get(root, bundle string) (*domain.BuildRecord, error)

	// Put stores the record under root.
	Put(root string, record domain.BuildRecord) error
}
