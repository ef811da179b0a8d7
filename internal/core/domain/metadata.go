package domain

// ProjectMetadata is the subset of the package descriptor the build depends on.
type ProjectMetadata struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}
