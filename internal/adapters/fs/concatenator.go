package fs

import (
	"bytes"
	"context"
	"os"

	"go.trai.ch/hellobundle/internal/core/domain"
	"go.trai.ch/hellobundle/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Concatenator = (*Concatenator)(nil)

// Concatenator joins fragment files into a single bundle file.
type Concatenator struct {
	fs ports.ArtifactFS
}

// NewConcatenator creates a Concatenator that writes through fs.
func NewConcatenator(fs ports.ArtifactFS) *Concatenator {
	return &Concatenator{fs: fs}
}

// Concatenate reads every fragment, in order, and writes header followed by
// their contents to dst. Fragments are joined without separators. dst is only
// written once every fragment has been read.
func (c *Concatenator) Concatenate(ctx context.Context, header []byte, fragments []string, dst string) error {
	var buf bytes.Buffer
	buf.Write(header)

	for _, fragment := range fragments {
		if err := ctx.Err(); err != nil {
			return err
		}

		//nolint:gosec // Fragment paths are validated against the source directory
		data, err := os.ReadFile(fragment)
		if err != nil {
			return zerr.With(zerr.Wrap(err, domain.ErrMissingFragment.Error()), "fragment", fragment)
		}
		buf.Write(data)
	}

	return c.fs.WriteFile(dst, buf.Bytes())
}
