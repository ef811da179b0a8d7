package ports

import "context"

// Concatenator defines the interface for assembling a bundle from fragments.
//
//go:generate mockgen -source=concatenator.go -destination=mocks/mock_concatenator.go -package=mocks
type Concatenator interface {
	// Concatenate writes header followed by the fragments, in the given order and
	// with nothing in between, to dst. Every fragment is read before dst is
	// touched, so a missing fragment leaves dst unchanged.
	Concatenate(ctx context.Context, header []byte, fragments []string, dst string) error
}
