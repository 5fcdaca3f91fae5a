// Package fs provides file system adapters for relocating, discovering and hashing artifacts.
package fs

import (
	"io/fs"
	"iter"
	"path/filepath"
	"strings"
)

// Walker provides file walking functionality.
type Walker struct{}

// NewWalker creates a new Walker.
func NewWalker() *Walker {
	return &Walker{}
}

// WalkFiles yields all files below root in lexical order, skipping version
// control directories.
func (w *Walker) WalkFiles(root string) iter.Seq[string] {
	return func(yield func(string) bool) {
		_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}

			if d.IsDir() {
				if isVCSDir(d.Name()) {
					return filepath.SkipDir
				}
				return nil
			}

			if !yield(path) {
				return filepath.SkipAll
			}

			return nil
		})
	}
}

// WalkArchives yields the .jar files below root.
func (w *Walker) WalkArchives(root string) iter.Seq[string] {
	return func(yield func(string) bool) {
		for path := range w.WalkFiles(root) {
			if !strings.EqualFold(filepath.Ext(path), ".jar") {
				continue
			}
			if !yield(path) {
				return
			}
		}
	}
}

func isVCSDir(name string) bool {
	return name == ".git" || name == ".jj"
}
