package domain

import "go.trai.ch/zerr"

var (
	// ErrDescriptorUnreadable is returned when the package descriptor is missing, unparseable,
	// or carries no version.
	ErrDescriptorUnreadable = zerr.New("package descriptor unreadable")

	// ErrMissingFragment is returned when a declared fragment does not exist or cannot be read.
	ErrMissingFragment = zerr.New("missing fragment")

	// ErrDirectoryCreateFailed is returned when the output directory cannot be created.
	ErrDirectoryCreateFailed = zerr.New("failed to create output directory")

	// ErrMinificationFailed is returned when the minification transform reports an error.
	ErrMinificationFailed = zerr.New("minification failed")

	// ErrArtifactWriteFailed is returned when an artifact cannot be written.
	ErrArtifactWriteFailed = zerr.New("failed to write artifact")

	// ErrArtifactRemoveFailed is returned when an artifact cannot be removed.
	ErrArtifactRemoveFailed = zerr.New("failed to remove artifact")

	// ErrManifestReadFailed is returned when the bundle manifest cannot be read.
	ErrManifestReadFailed = zerr.New("failed to read bundle manifest")

	// ErrManifestParseFailed is returned when the bundle manifest cannot be parsed.
	ErrManifestParseFailed = zerr.New("failed to parse bundle manifest")

	// ErrInvalidManifest is returned when the bundle manifest fails validation.
	ErrInvalidManifest = zerr.New("invalid bundle manifest")

	// ErrInvalidSettings is returned when an invocation setting has an unsupported value.
	ErrInvalidSettings = zerr.New("invalid settings")

	// ErrSettingsLoadFailed is returned when the layered settings cannot be loaded.
	ErrSettingsLoadFailed = zerr.New("failed to load settings")

	// ErrStoreCreateFailed is returned when the build record store directory cannot be created.
	ErrStoreCreateFailed = zerr.New("failed to create build record store directory")

	// ErrStoreReadFailed is returned when a build record cannot be read.
	ErrStoreReadFailed = zerr.New("failed to read build record")

	// ErrStoreUnmarshalFailed is returned when a build record cannot be unmarshaled.
	ErrStoreUnmarshalFailed = zerr.New("failed to unmarshal build record")

	// ErrStoreMarshalFailed is returned when a build record cannot be marshaled.
	ErrStoreMarshalFailed = zerr.New("failed to marshal build record")

	// ErrStoreWriteFailed is returned when a build record cannot be written.
	ErrStoreWriteFailed = zerr.New("failed to write build record")

	// ErrFileOpenFailed is returned when a file cannot be opened.
	ErrFileOpenFailed = zerr.New("failed to open file")

	// ErrFileHashFailed is returned when hashing a file fails.
	ErrFileHashFailed = zerr.New("failed to hash file content")

	// ErrNoBuildRecord is returned when verify finds no record for a bundle.
	ErrNoBuildRecord = zerr.New("no build record found")

	// ErrArtifactDrift is returned when an artifact on disk no longer matches its build record.
	ErrArtifactDrift = zerr.New("artifact does not match build record")

	// ErrFailedToGetRoot is returned when the project root path cannot be determined.
	ErrFailedToGetRoot = zerr.New("failed to get absolute path of project root")

	// ErrWatchFailed is returned when the file watcher cannot be started.
	ErrWatchFailed = zerr.New("failed to watch sources")

	// ErrBuildFailed is returned when the bundling pipeline fails.
	ErrBuildFailed = zerr.New("build failed")
)
