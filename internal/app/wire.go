//go:build wireinject
// +build wireinject

package app

import (
	"github.com/google/wire"
	"github.com/spf13/viper"

	"github.com/DiamondsLab/diamond-forge/internal/adapters"
	"github.com/DiamondsLab/diamond-forge/internal/config"
	"github.com/DiamondsLab/diamond-forge/internal/logging"
	"github.com/DiamondsLab/diamond-forge/internal/usecase"
)

// InitApp creates a fully wired App instance
func InitApp(v *viper.Viper) (*App, error) {
	wire.Build(
		// Configuration
		config.Provider,

		// Logging
		logging.LoggingSet,

		// Adapters
		adapters.AllAdapters,

		// Use cases
		usecase.NewEnsureDeployment,
		usecase.NewDeployDiamond,
		usecase.NewGenerateHelpers,
		usecase.NewRunTests,
		usecase.NewRunCoverage,
		usecase.NewInitProject,

		// App
		NewApp,
	)
	return nil, nil
}
