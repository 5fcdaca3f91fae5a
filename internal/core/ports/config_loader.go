package ports

import "go.trai.ch/shrink/internal/core/domain"

// ConfigLoader defines the interface for loading the project manifest.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the manifest at path and applies the manifest-level defaults.
	Load(path string) (*domain.Manifest, error)
}
