package domain

import "path/filepath"

const (
	// StateDirName is the name of the internal state directory.
	StateDirName = ".hellobundle"

	// StoreDirName is the name of the build record store directory.
	StoreDirName = "store"

	// SettingsFileName is the name of the optional settings file in the working directory.
	SettingsFileName = ".hellobundle.yaml"

	// DefaultDescriptorName is the name of the package descriptor.
	DefaultDescriptorName = "package.json"

	// DefaultSourceDirName is the directory holding the fragments.
	DefaultSourceDirName = "src"

	// DefaultOutputDirName is the directory receiving the artifacts.
	DefaultOutputDirName = "dist"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644

	// PrivateFilePerm is the default permission for private files (rw-------).
	PrivateFilePerm = 0o600
)

// DefaultStatePath returns the default root directory for hellobundle metadata.
func DefaultStatePath() string {
	return StateDirName
}

// DefaultStorePath returns the default path for the build record store.
// It joins .hellobundle and store.
func DefaultStorePath() string {
	return filepath.Join(StateDirName, StoreDirName)
}
