package app

import (
	"log/slog"

	"github.com/trebuchet-org/regforge/internal/domain/config"
	"github.com/trebuchet-org/regforge/internal/usecase"
)

// App is the main application container that holds all use cases
type App struct {
	// Configuration
	Config *config.RuntimeConfig

	// Shared dependencies
	Logger *slog.Logger

	// Use cases
	BuildRegistry    *usecase.BuildRegistry
	GenerateRegistry *usecase.GenerateRegistry
	ListNetworks     *usecase.ListNetworks
	ShowContract     *usecase.ShowContract
	ShowConfig       *usecase.ShowConfig
	SetConfig        *usecase.SetConfig
	RemoveConfig     *usecase.RemoveConfig
}

// NewApp creates a new application instance with all use cases
func NewApp(
	cfg *config.RuntimeConfig,
	logger *slog.Logger,
	buildRegistry *usecase.BuildRegistry,
	generateRegistry *usecase.GenerateRegistry,
	listNetworks *usecase.ListNetworks,
	showContract *usecase.ShowContract,
	showConfig *usecase.ShowConfig,
	setConfig *usecase.SetConfig,
	removeConfig *usecase.RemoveConfig,
) (*App, error) {
	return &App{
		Config:           cfg,
		Logger:           logger,
		BuildRegistry:    buildRegistry,
		GenerateRegistry: generateRegistry,
		ListNetworks:     listNetworks,
		ShowContract:     showContract,
		ShowConfig:       showConfig,
		SetConfig:        setConfig,
		RemoveConfig:     removeConfig,
	}, nil
}
