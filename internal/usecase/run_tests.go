package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/DiamondsLab/diamond-forge/internal/config"
	forgedomain "github.com/DiamondsLab/diamond-forge/internal/domain/forge"
	"github.com/DiamondsLab/diamond-forge/internal/domain/models"
)

// RunTestsParams contains parameters for the test pipeline.
type RunTestsParams struct {
	DiamondName    string
	Network        *config.Network
	Options        *forgedomain.TestOptions
	SkipDeployment bool
	SkipHelpers    bool
	Force          bool
	SaveDeployment bool
}

// RunTests orchestrates the full test pipeline:
// reconcile deployment -> generate helpers -> build argv -> run forge.
type RunTests struct {
	cfg      *config.RuntimeConfig
	ensure   *EnsureDeployment
	helpers  *GenerateHelpers
	chain    ChainResolver
	runner   ForgeRunner
	log      *slog.Logger
}

// NewRunTests creates a new RunTests use case
func NewRunTests(
	cfg *config.RuntimeConfig,
	ensure *EnsureDeployment,
	helpers *GenerateHelpers,
	chain ChainResolver,
	runner ForgeRunner,
	log *slog.Logger,
) *RunTests {
	return &RunTests{
		cfg:     cfg,
		ensure:  ensure,
		helpers: helpers,
		chain:   chain,
		runner:  runner,
		log:     log.With("component", "RunTests"),
	}
}

// Run executes the pipeline. The bool mirrors the forge exit code:
// false means tests ran and failed, which the CLI maps to a nonzero
// exit without treating it as an error.
func (uc *RunTests) Run(ctx context.Context, params RunTestsParams) (bool, error) {
	if err := uc.runner.CheckInstallation(); err != nil {
		return false, err
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

	args := forgedomain.BuildTestArgs(params.Network.RPCURL, params.Options)
	uc.log.Debug("running forge test", "args", args)

	return uc.runner.Run(ctx, "test", args)
}

// runPrep carries the deployment-reconciliation half of a test or
// coverage run.
type runPrep struct {
	DiamondName    string
	Network        *config.Network
	SkipDeployment bool
	Force          bool
	Persist        bool
}

// reconcileForRun produces the deployment a run addresses. With
// SkipDeployment it only looks up existing state and fails when there
// is none; otherwise it drives the reconciler.
func reconcileForRun(ctx context.Context, ensure *EnsureDeployment, chain ChainResolver, prep runPrep) (*models.DeployedDiamond, error) {
	if prep.SkipDeployment {
		chainID, err := chain.ResolveChainID(ctx, prep.Network)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve chain ID for network %s: %w", prep.Network.Name, err)
		}
		key := models.DeploymentKey{
			DiamondName: prep.DiamondName,
			NetworkName: prep.Network.Name,
			ChainID:     chainID,
		}
		deployed, err := ensure.Get(ctx, key)
		if err != nil {
			return nil, err
		}
		if deployed == nil {
			return nil, fmt.Errorf("--skip-deployment set but no deployment found for %s", key.String())
		}
		return deployed, nil
	}

	return ensure.Run(ctx, EnsureParams{
		DiamondName: prep.DiamondName,
		Network:     prep.Network,
		Force:       prep.Force,
		Persist:     prep.Persist,
	})
}
