package fs

import (
	iofs "io/fs"
	"os"

	"go.trai.ch/shrink/internal/core/ports"
)

var _ ports.FileSystem = (*FileSystem)(nil)

// FileSystem implements ports.FileSystem on the host file system.
type FileSystem struct{}

// NewFileSystem creates a new FileSystem.
func NewFileSystem() *FileSystem {
	return &FileSystem{}
}

// Stat returns file info for path.
func (f *FileSystem) Stat(path string) (iofs.FileInfo, error) {
	return os.Stat(path)
}

// RemoveAll deletes path recursively. A missing path is not an error.
func (f *FileSystem) RemoveAll(path string) error {
	return os.RemoveAll(path)
}

// Rename moves oldPath to newPath.
func (f *FileSystem) Rename(oldPath, newPath string) error {
	return os.Rename(oldPath, newPath)
}
