// Package repository resolves declared artifacts against the file system and
// a local Maven repository.
package repository

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"go.trai.ch/shrink/internal/adapters/fs" //nolint:depguard // Concrete glob and walk helpers
	"go.trai.ch/shrink/internal/core/domain"
	"go.trai.ch/shrink/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ArtifactProvider = (*Provider)(nil)

// Provider implements ports.ArtifactProvider.
type Provider struct {
	fs       ports.FileSystem
	resolver *fs.Resolver
	walker   *fs.Walker
	logger   ports.Logger
}

// NewProvider creates a new Provider.
func NewProvider(fsys ports.FileSystem, resolver *fs.Resolver, walker *fs.Walker, logger ports.Logger) *Provider {
	return &Provider{
		fs:       fsys,
		resolver: resolver,
		walker:   walker,
		logger:   logger,
	}
}

// ResolveDependencies returns the project's dependency artifacts in declaration order.
func (p *Provider) ResolveDependencies(m *domain.Manifest) ([]domain.Artifact, error) {
	return p.resolve(m, m.Dependencies)
}

// ResolvePlugins returns the artifacts available to the ProGuard step itself.
func (p *Provider) ResolvePlugins(m *domain.Manifest) ([]domain.Artifact, error) {
	return p.resolve(m, m.Plugins)
}

// LayoutPath returns the location of a in a Maven repository rooted at repo.
func LayoutPath(repo string, a domain.Artifact) string {
	parts := []string{repo}
	parts = append(parts, strings.Split(a.GroupID, ".")...)
	parts = append(parts, a.ArtifactID, a.Version, a.ArtifactID+"-"+a.Version+".jar")
	return filepath.Join(parts...)
}

func (p *Provider) resolve(m *domain.Manifest, refs []domain.ArtifactRef) ([]domain.Artifact, error) {
	var out []domain.Artifact
	seen := make(map[string]bool)

	add := func(a domain.Artifact) {
		if seen[a.Path] {
			return
		}
		seen[a.Path] = true
		p.logger.Debug(fmt.Sprintf("resolved %s: %s", a.Coordinates(), a.Path))
		out = append(out, a)
	}

	for _, ref := range refs {
		if ref.Path == "" {
			a, err := p.fromRepository(m.Repository, ref.Coordinates)
			if err != nil {
				return nil, err
			}
			add(a)
			continue
		}

		artifacts, err := p.fromPath(m.Project.BaseDir, ref)
		if err != nil {
			return nil, err
		}
		for _, a := range artifacts {
			add(a)
		}
	}

	return out, nil
}

func (p *Provider) fromRepository(repo, coordinates string) (domain.Artifact, error) {
	a, err := domain.ParseCoordinates(coordinates)
	if err != nil {
		return domain.Artifact{}, err
	}

	a.Path = LayoutPath(repo, a)
	if _, err := p.fs.Stat(a.Path); err != nil {
		detail := zerr.With(zerr.Wrap(err, "artifact is not in the local repository"), "coordinates", coordinates)
		return domain.Artifact{}, errors.Join(zerr.With(detail, "path", a.Path), domain.ErrArtifactNotFound)
	}
	return a, nil
}

// fromPath expands the reference's glob. Matched directories contribute every
// archive below them. Explicit coordinates apply only to a single matched file.
func (p *Provider) fromPath(baseDir string, ref domain.ArtifactRef) ([]domain.Artifact, error) {
	matches, err := p.resolver.Resolve(ref.Path, baseDir)
	if err != nil {
		return nil, err
	}

	var out []domain.Artifact
	for _, match := range matches {
		abs, err := filepath.Abs(match)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, "failed to resolve artifact path"), "path", match)
		}

		info, err := p.fs.Stat(abs)
		if err != nil {
			return nil, errors.Join(zerr.With(zerr.Wrap(err, "failed to stat artifact"), "path", abs), domain.ErrArtifactNotFound)
		}

		if !info.IsDir() {
			out = append(out, domain.ArtifactFromFile(abs))
			continue
		}

		for archive := range p.walker.WalkArchives(abs) {
			out = append(out, domain.ArtifactFromFile(archive))
		}
	}

	if ref.Coordinates != "" && len(out) == 1 {
		a, err := domain.ParseCoordinates(ref.Coordinates)
		if err != nil {
			return nil, err
		}
		a.Path = out[0].Path
		out[0] = a
	}

	return out, nil
}
