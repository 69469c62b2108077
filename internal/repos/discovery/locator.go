package discovery

import (
	"path/filepath"

	"github.com/temirov/promptpath/internal/repos/filesystem"
)

// GitMetadataDirectoryName is the entry whose presence marks a repository root.
const GitMetadataDirectoryName = ".git"

// MarkerProbe reports whether a directory holds the repository marker.
type MarkerProbe interface {
	ContainsMarker(directoryPath string) bool
}

// FilesystemMarkerProbe checks for a .git entry through a FileSystem.
type FilesystemMarkerProbe struct {
	fileSystem filesystem.FileSystem
}

// NewFilesystemMarkerProbe constructs a probe; a nil fileSystem falls back to the operating system.
func NewFilesystemMarkerProbe(fileSystem filesystem.FileSystem) *FilesystemMarkerProbe {
	if fileSystem == nil {
		fileSystem = filesystem.OSFileSystem{}
	}
	return &FilesystemMarkerProbe{fileSystem: fileSystem}
}

// ContainsMarker reports whether directoryPath holds a .git entry of any kind.
func (probe *FilesystemMarkerProbe) ContainsMarker(directoryPath string) bool {
	_, statError := probe.fileSystem.Lstat(filepath.Join(directoryPath, GitMetadataDirectoryName))
	return statError == nil
}

// EnclosingRepositoryLocator finds the innermost repository root above a path.
type EnclosingRepositoryLocator struct {
	probe MarkerProbe
}

// NewEnclosingRepositoryLocator constructs a locator; a nil probe checks the operating system filesystem.
func NewEnclosingRepositoryLocator(probe MarkerProbe) *EnclosingRepositoryLocator {
	if probe == nil {
		probe = NewFilesystemMarkerProbe(nil)
	}
	return &EnclosingRepositoryLocator{probe: probe}
}

// Locate returns the closest ancestor of candidatePath (itself included) that holds a .git entry.
func (locator *EnclosingRepositoryLocator) Locate(candidatePath string) (string, bool) {
	for _, ancestorPath := range Ancestors(candidatePath) {
		if locator.probe.ContainsMarker(ancestorPath) {
			return ancestorPath, true
		}
	}
	return "", false
}
