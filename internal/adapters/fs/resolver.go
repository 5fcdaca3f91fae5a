package fs

import (
	"errors"
	"path/filepath"
	"sort"

	"go.trai.ch/shrink/internal/core/domain"
	"go.trai.ch/zerr"
)

// Resolver expands path patterns using filepath.Glob.
type Resolver struct{}

// NewResolver creates a new Resolver.
func NewResolver() *Resolver {
	return &Resolver{}
}

// Resolve expands pattern relative to root and returns the sorted matches.
// A pattern without matches yields domain.ErrArtifactNotFound.
func (r *Resolver) Resolve(pattern, root string) ([]string, error) {
	path := pattern
	if !filepath.IsAbs(path) {
		path = filepath.Join(root, pattern)
	}

	matches, err := filepath.Glob(path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to glob path"), "path", path)
	}

	if len(matches) == 0 {
		return nil, errors.Join(zerr.With(zerr.New("no file matches pattern"), "path", path), domain.ErrArtifactNotFound)
	}

	sort.Strings(matches)
	return matches, nil
}
