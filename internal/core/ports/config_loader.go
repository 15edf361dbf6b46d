package ports

import "go.trai.ch/scribe/internal/core/domain"

// ConfigLoader defines the interface for loading and resolving the
// generation configuration.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the configuration document at the given path and resolves
	// it into an immutable Configuration. Relative paths in the document
	// are anchored to the document's directory.
	Load(configPath string) (*domain.Configuration, error)
}
