package app

import (
	"github.com/DiamondsLab/diamond-forge/internal/config"
	"github.com/DiamondsLab/diamond-forge/internal/usecase"
)

// App is the main application container that holds all use cases
type App struct {
	// Configuration
	Config *config.RuntimeConfig

	// Shared dependencies
	Networks usecase.NetworkResolver

	// Use cases
	EnsureDeployment *usecase.EnsureDeployment
	DeployDiamond    *usecase.DeployDiamond
	GenerateHelpers  *usecase.GenerateHelpers
	RunTests         *usecase.RunTests
	RunCoverage      *usecase.RunCoverage
	InitProject      *usecase.InitProject
}

// NewApp creates a new application instance with all use cases
func NewApp(
	cfg *config.RuntimeConfig,
	networks usecase.NetworkResolver,
	ensureDeployment *usecase.EnsureDeployment,
	deployDiamond *usecase.DeployDiamond,
	generateHelpers *usecase.GenerateHelpers,
	runTests *usecase.RunTests,
	runCoverage *usecase.RunCoverage,
	initProject *usecase.InitProject,
) (*App, error) {
	return &App{
		Config:           cfg,
		Networks:         networks,
		EnsureDeployment: ensureDeployment,
		DeployDiamond:    deployDiamond,
		GenerateHelpers:  generateHelpers,
		RunTests:         runTests,
		RunCoverage:      runCoverage,
		InitProject:      initProject,
	}, nil
}
