package ports

// Hasher defines the interface for computing content digests.
//
//go:generate mockgen -source=hasher.go -destination=mocks/mock_hasher.go -package=mocks
type Hasher interface {
	// HashFile computes the digest of a single file's content.
	HashFile(path string) (string, error)
	// HashFiles computes one digest over the paths and contents of files, in order.
	HashFiles(paths []string) (string, error)
}
