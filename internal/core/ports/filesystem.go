package ports

import "io/fs"

// FileSystem is the set of file operations the invocation builder relies on.
//
//go:generate mockgen -source=filesystem.go -destination=mocks/mock_filesystem.go -package=mocks
type FileSystem interface {
	// Stat returns file info for path.
	Stat(path string) (fs.FileInfo, error)

	// RemoveAll deletes path and everything below it. A missing path is not an error.
	RemoveAll(path string) error

	// Rename moves oldPath to newPath.
	Rename(oldPath, newPath string) error
}
