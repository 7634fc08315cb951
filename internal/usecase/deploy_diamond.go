package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/DiamondsLab/diamond-forge/internal/config"
	"github.com/DiamondsLab/diamond-forge/internal/domain/models"
)

// DeployParams contains parameters for the deploy command.
type DeployParams struct {
	DiamondName string
	Network     *config.Network
	// Reuse never redeploys over an existing record; Force always does.
	// The CLI layer rejects the combination before we get here.
	Reuse bool
	Force bool
}

// DeployResult contains the outcome of a deploy command.
type DeployResult struct {
	Deployed   *models.DeployedDiamond
	Reused     bool
	Persisted  bool
	RecordPath string
}

// DeployDiamond drives the reconciler for the explicit deploy command,
// adding the reuse/force policy and the interactive redeploy guard.
type DeployDiamond struct {
	cfg       *config.RuntimeConfig
	ensure    *EnsureDeployment
	records   RecordStore
	chain     ChainResolver
	confirmer Confirmer
	progress  ProgressSink
	log       *slog.Logger
}

// NewDeployDiamond creates a new DeployDiamond use case
func NewDeployDiamond(
	cfg *config.RuntimeConfig,
	ensure *EnsureDeployment,
	records RecordStore,
	chain ChainResolver,
	confirmer Confirmer,
	progress ProgressSink,
	log *slog.Logger,
) *DeployDiamond {
	return &DeployDiamond{
		cfg:       cfg,
		ensure:    ensure,
		records:   records,
		chain:     chain,
		confirmer: confirmer,
		progress:  progress,
		log:       log.With("component", "DeployDiamond"),
	}
}

// Run deploys (or reuses) the diamond on the configured network.
func (uc *DeployDiamond) Run(ctx context.Context, params DeployParams) (*DeployResult, error) {
	if params.Reuse && params.Force {
		return nil, fmt.Errorf("reuse and force are mutually exclusive")
	}

	persist := params.Network.Persistent

	chainID, err := uc.chain.ResolveChainID(ctx, params.Network)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve chain ID for network %s: %w", params.Network.Name, err)
	}
	key := models.DeploymentKey{
		DiamondName: params.DiamondName,
		NetworkName: params.Network.Name,
		ChainID:     chainID,
	}

	force := params.Force
	recordExists := persist && uc.records.Exists(key)

	// An existing record with neither --reuse nor --force is ambiguous:
	// ask in interactive mode, reuse otherwise.
	if recordExists && !params.Reuse && !params.Force && !uc.cfg.NonInteractive {
		redeploy, err := uc.confirmer.Confirm(ctx, fmt.Sprintf(
			"Deployment record for %s on %s already exists. Redeploy", params.DiamondName, params.Network.Name))
		if err != nil {
			return nil, err
		}
		force = redeploy
	}

	uc.progress.Start(fmt.Sprintf("Deploying %s to %s", params.DiamondName, params.Network.Name))
	deployed, err := uc.ensure.Run(ctx, EnsureParams{
		DiamondName: params.DiamondName,
		Network:     params.Network,
		Force:       force,
		Persist:     persist,
	})
	if err != nil {
		uc.progress.Stop("")
		return nil, err
	}
	uc.progress.Stop(fmt.Sprintf("Diamond %s ready at %s", params.DiamondName, deployed.DiamondAddress))

	result := &DeployResult{
		Deployed:  deployed,
		Reused:    recordExists && !force,
		Persisted: persist,
	}
	if persist {
		result.RecordPath = uc.records.RecordPath(key)
	}

	return result, nil
}
