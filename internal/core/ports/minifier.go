package ports

import "context"

// Minifier defines the interface for producing a minified artifact from a bundle.
//
//go:generate mockgen -source=minifier.go -destination=mocks/mock_minifier.go -package=mocks
type Minifier interface {
	// Minify reads src as one compilation unit and writes the minified text to dst.
	// On failure dst is left untouched.
	Minify(ctx context.Context, src, dst string) error
}
