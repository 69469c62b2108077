package filesystem

import (
	"io/fs"
	"os"
)

// FileSystem exposes the read-only filesystem primitives used while locating repositories.
type FileSystem interface {
	Lstat(path string) (fs.FileInfo, error)
	Getwd() (string, error)
}

// OSFileSystem implements FileSystem using the operating system primitives.
type OSFileSystem struct{}

// Lstat retrieves file metadata without following symbolic links.
func (OSFileSystem) Lstat(path string) (fs.FileInfo, error) {
	return os.Lstat(path)
}

// Getwd reports the process working directory.
func (OSFileSystem) Getwd() (string, error) {
	return os.Getwd()
}
