// Package cas stores build records, one JSON file per bundle.
package cas

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/hellobundle/internal/core/domain"
	"go.trai.ch/hellobundle/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.BuildRecordStore = (*Store)(nil)

// Store implements ports.BuildRecordStore under <root>/.hellobundle/store.
type Store struct{}

// NewStore creates a new Store.
func NewStore() *Store {
	return &Store{}
}

// Get retrieves the record for bundle. It returns nil, nil when none exists.
func (s *Store) Get(root, bundle string) (*domain.BuildRecord, error) {
	filename := s.filename(root, bundle)
	//nolint:gosec // Path is constructed from trusted directory and hashed filename
	data, err := os.ReadFile(filename)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrStoreReadFailed.Error()), "bundle", bundle)
	}

	var record domain.BuildRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrStoreUnmarshalFailed.Error()), "bundle", bundle)
	}

	return &record, nil
}

// Put stores record, replacing any previous record of the same bundle.
func (s *Store) Put(root string, record domain.BuildRecord) error {
	data, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return zerr.Wrap(err, domain.ErrStoreMarshalFailed.Error())
	}

	filename := s.filename(root, record.Bundle)
	if err := os.MkdirAll(filepath.Dir(filename), domain.DirPerm); err != nil {
		return zerr.Wrap(err, domain.ErrStoreCreateFailed.Error())
	}

	//nolint:gosec // Path is constructed from trusted directory and hashed filename
	if err := os.WriteFile(filename, data, domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrStoreWriteFailed.Error()), "bundle", record.Bundle)
	}

	return nil
}

func (s *Store) filename(root, bundle string) string {
	hash := sha256.Sum256([]byte(bundle))
	return filepath.Join(root, domain.DefaultStorePath(), hex.EncodeToString(hash[:])+".json")
}
