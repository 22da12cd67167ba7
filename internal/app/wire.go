//go:build wireinject
// +build wireinject

package app

import (
	"github.com/google/wire"
	"github.com/spf13/viper"
	"github.com/trebuchet-org/regforge/internal/adapters"
	"github.com/trebuchet-org/regforge/internal/config"
	"github.com/trebuchet-org/regforge/internal/logging"
	"github.com/trebuchet-org/regforge/internal/usecase"
)

// InitApp creates a fully wired App instance
func InitApp(v *viper.Viper, sink usecase.ProgressSink) (*App, error) {
	wire.Build(
		// Configuration
		config.Provider,

		// Logging
		logging.LoggingSet,

		// Adapters
		adapters.AllAdapters,

		// Use cases
		usecase.NewBuildRegistry,
		usecase.NewGenerateRegistry,
		usecase.NewListNetworks,
		usecase.NewShowContract,
		usecase.NewShowConfig,
		usecase.NewSetConfig,
		usecase.NewRemoveConfig,

		// App
		NewApp,
	)
	return nil, nil
}
