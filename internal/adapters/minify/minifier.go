// Package minify produces minified artifacts from concatenated bundles.
package minify

import (
	"context"
	"fmt"
	"os"
	"strings"

	"go.trai.ch/hellobundle/internal/core/domain"
	"go.trai.ch/hellobundle/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Minifier = (*FileMinifier)(nil)

// FileMinifier implements ports.Minifier by running a Transformer over whole files.
type FileMinifier struct {
	transformer Transformer
	fs          ports.ArtifactFS
	logger      ports.Logger
}

// NewFileMinifier creates a FileMinifier.
func NewFileMinifier(transformer Transformer, fs ports.ArtifactFS, logger ports.Logger) *FileMinifier {
	return &FileMinifier{
		transformer: transformer,
		fs:          fs,
		logger:      logger,
	}
}

// Minify reads src, minifies it as a single unit and writes the result to dst.
// dst is not touched when reading or transforming fails.
func (m *FileMinifier) Minify(ctx context.Context, src, dst string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	//nolint:gosec // Source is an artifact path derived from the manifest
	code, err := os.ReadFile(src)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrMinificationFailed.Error()), "source", src)
	}

	out, warnings, err := m.transform(src, code)
	for _, w := range warnings {
		m.logger.Warn(strings.TrimSpace(w))
	}
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrMinificationFailed.Error()), "source", src)
	}

	return m.fs.WriteFile(dst, out)
}

func (m *FileMinifier) transform(name string, code []byte) (out []byte, warnings []string, err error) {
	defer func() {
		if r := recover(); r != nil {
			out = nil
			err = zerr.New(fmt.Sprintf("transformer panicked: %v", r))
		}
	}()
	return m.transformer.Transform(name, code)
}
