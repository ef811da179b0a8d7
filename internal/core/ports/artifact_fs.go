package ports

// ArtifactFS defines the filesystem operations the pipeline performs on its outputs.
//
//go:generate mockgen -source=artifact_fs.go -destination=mocks/mock_artifact_fs.go -package=mocks
type ArtifactFS interface {
	// EnsureDir creates the directory and its parents. It is a no-op if the directory exists.
	EnsureDir(path string) error

	// WriteFile replaces the content of the file at path.
	WriteFile(path string, data []byte) error

	// Size returns the size in bytes of the file at path.
	Size(path string) (int64, error)

	// Remove deletes the file or directory tree at path. Missing paths are not an error.
	Remove(path string) error
}
