package usecase

import (
	"context"

	"github.com/trebuchet-org/regforge/internal/domain/config"
)

// ShowConfigResult contains the result of showing configuration
type ShowConfigResult struct {
	Config     *config.LocalConfig
	ConfigPath string
	Exists     bool
	// ConfigSource names where the project configuration came from,
	// filled in by the CLI layer
	ConfigSource string
}

// ShowConfig is a use case for showing configuration
type ShowConfig struct {
	store LocalConfigStore
}

// NewShowConfig creates a new ShowConfig use case
func NewShowConfig(store LocalConfigStore) *ShowConfig {
	return &ShowConfig{
		store: store,
	}
}

// Run executes the show config use case
func (uc *ShowConfig) Run(ctx context.Context) (*ShowConfigResult, error) {
	exists := uc.store.Exists()

	localConfig, err := uc.store.Load(ctx)
	if err != nil {
		return nil, err
	}

	return &ShowConfigResult{
		Config:     localConfig,
		ConfigPath: uc.store.GetPath(),
		Exists:     exists,
	}, nil
}
