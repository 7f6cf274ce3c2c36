package ports

import "go.trai.ch/nobs/internal/core/domain"

// ConfigLoader loads the build manifest.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the manifest from the given working directory and
	// returns the declared toolchain and targets in declaration order.
	Load(cwd string) (*domain.Manifest, error)
}
