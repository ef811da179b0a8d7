package fs

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/hellobundle/internal/core/domain"
	"go.trai.ch/hellobundle/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Hasher = (*Hasher)(nil)

// Hasher computes xxhash digests of files.
type Hasher struct{}

// NewHasher creates a new Hasher.
func NewHasher() *Hasher {
	return &Hasher{}
}

// HashFile returns the hex digest of the file's content.
func (h *Hasher) HashFile(path string) (string, error) {
	sum, err := h.sum(path)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%016x", sum), nil
}

// HashFiles returns one digest over the given files in order. Each entry
// contributes its path, a zero byte and the digest of its content, so both
// reordering and renaming change the result.
func (h *Hasher) HashFiles(paths []string) (string, error) {
	digest := xxhash.New()

	for _, path := range paths {
		sum, err := h.sum(path)
		if err != nil {
			return "", err
		}

		_, _ = digest.WriteString(path)
		_, _ = digest.Write([]byte{0})
		if err := binary.Write(digest, binary.LittleEndian, sum); err != nil {
			return "", zerr.With(zerr.Wrap(err, domain.ErrFileHashFailed.Error()), "path", path)
		}
	}

	return fmt.Sprintf("%016x", digest.Sum64()), nil
}

func (h *Hasher) sum(path string) (uint64, error) {
	f, err := os.Open(path) //nolint:gosec // Path is controlled by caller
	if err != nil {
		return 0, zerr.With(zerr.Wrap(err, domain.ErrFileOpenFailed.Error()), "path", path)
	}
	defer f.Close() //nolint:errcheck // Best effort close in defer

	digest := xxhash.New()
	if _, err := io.Copy(digest, f); err != nil {
		return 0, zerr.With(zerr.Wrap(err, domain.ErrFileHashFailed.Error()), "path", path)
	}

	return digest.Sum64(), nil
}
