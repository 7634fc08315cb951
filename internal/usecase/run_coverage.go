package usecase

import (
	"context"
	"log/slog"

	"github.com/DiamondsLab/diamond-forge/internal/config"
	forgedomain "github.com/DiamondsLab/diamond-forge/internal/domain/forge"
)

// RunCoverageParams contains parameters for the coverage pipeline.
type RunCoverageParams struct {
	DiamondName    string
	Network        *config.Network
	Options        *forgedomain.CoverageOptions
	SkipDeployment bool
	SkipHelpers    bool
	Force          bool
	SaveDeployment bool
}

// RunCoverage orchestrates the coverage pipeline. Same shape as
// RunTests, substituting the coverage subcommand.
type RunCoverage struct {
	cfg     *config.RuntimeConfig
	ensure  *EnsureDeployment
	helpers *GenerateHelpers
	chain   ChainResolver
	runner  ForgeRunner
	log     *slog.Logger
}

// NewRunCoverage creates a new RunCoverage use case
func NewRunCoverage(
	cfg *config.RuntimeConfig,
	ensure *EnsureDeployment,
	helpers *GenerateHelpers,
	chain ChainResolver,
	runner ForgeRunner,
	log *slog.Logger,
) *RunCoverage {
	return &RunCoverage{
		cfg:     cfg,
		ensure:  ensure,
		helpers: helpers,
		chain:   chain,
		runner:  runner,
		log:     log.With("component", "RunCoverage"),
	}
}

// Run executes the coverage pipeline. The bool mirrors the forge exit
// code, as with RunTests.
func (uc *RunCoverage) Run(ctx context.Context, params RunCoverageParams) (bool, error) {
	if err := uc.runner.CheckInstallation(); err != nil {
		return false, err
	}

	// Coverage needs a forkable node so the instrumented run can see
	// the deployed state. Operational constraint, not enforced.
	if !params.Network.Persistent {
		uc.log.Warn("coverage against a non-persistent network may not see the deployment", "network", params.Network.Name)
	}

	deployed, err := reconcileForRun(ctx, uc.ensure, uc.chain, runPrep{
		DiamondName:    params.DiamondName,
		Network:        params.Network,
		SkipDeployment: params.SkipDeployment,
		Force:          params.Force,
		Persist:        params.SaveDeployment || params.Network.Persistent,
	})
	if err != nil {
		return false, err
	}

	if params.SkipHelpers {
		uc.log.Info("skipping helper generation")
	} else {
		if _, err := uc.helpers.Run(ctx, GenerateHelpersParams{Deployed: deployed}); err != nil {
			return false, err
		}
	}

	args := forgedomain.BuildCoverageArgs(params.Network.RPCURL, params.Options)
	uc.log.Debug("running forge coverage", "args", args)

	return uc.runner.Run(ctx, "coverage", args)
}
