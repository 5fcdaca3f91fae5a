package ports

import "go.trai.ch/shrink/internal/core/domain"

// ArtifactProvider resolves declared artifacts to files on disk.
//
//go:generate mockgen -source=artifacts.go -destination=mocks/mock_artifacts.go -package=mocks
type ArtifactProvider interface {
	// ResolveDependencies returns the project's dependency artifacts in declaration order.
	ResolveDependencies(m *domain.Manifest) ([]domain.Artifact, error)

	// ResolvePlugins returns the artifacts available to the ProGuard step itself.
	ResolvePlugins(m *domain.Manifest) ([]domain.Artifact, error)
}
