package domain

import "time"

// BuildRecord describes the artifacts a completed build produced for one bundle.
type BuildRecord struct {
	Bundle        string    `json:"bundle,omitzero"`
	Version       string    `json:"version,omitzero"`
	Output        string    `json:"output,omitzero"`
	OutputHash    string    `json:"output_hash,omitzero"`
	Minified      string    `json:"minified,omitzero"`
	MinifiedHash  string    `json:"minified_hash,omitzero"`
	FragmentsHash string    `json:"fragments_hash,omitzero"`
	Fragments     int       `json:"fragments,omitzero"`
	Timestamp     time.Time `json:"timestamp,omitzero"`
}

// ArtifactResult reports one artifact written by the pipeline.
type ArtifactResult struct {
	Bundle string
	Path   string
	Size   int64
	Hash   string
}

// Report summarizes a completed pipeline run.
type Report struct {
	Metadata  ProjectMetadata
	Banner    string
	Artifacts []ArtifactResult
	Records   []BuildRecord
}
