package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/DiamondsLab/diamond-forge/internal/config"
	"github.com/DiamondsLab/diamond-forge/internal/domain/models"
)

// EnsureParams controls how a deployment is reconciled.
type EnsureParams struct {
	DiamondName string
	Network     *config.Network
	// Force redeploys even when a usable deployment exists.
	Force bool
	// Persist writes the deployment record to disk; otherwise the
	// result lives only in the process-lifetime cache.
	Persist bool
}

// EnsureDeployment reconciles deployment state: given a diamond and a
// network it guarantees a valid deployment exists, reusing persisted
// records or cached ephemeral deployments where possible.
type EnsureDeployment struct {
	records  RecordStore
	cache    DeploymentCache
	deployer DiamondDeployer
	chain    ChainResolver
	log      *slog.Logger
}

// NewEnsureDeployment creates a new EnsureDeployment use case
func NewEnsureDeployment(
	records RecordStore,
	cache DeploymentCache,
	deployer DiamondDeployer,
	chain ChainResolver,
	log *slog.Logger,
) *EnsureDeployment {
	return &EnsureDeployment{
		records:  records,
		cache:    cache,
		deployer: deployer,
		chain:    chain,
		log:      log.With("component", "EnsureDeployment"),
	}
}

// Run reconciles the deployment for the given parameters and returns
// normalized deployment data. Deployer failures are fatal and never
// retried; the message names the root cause for the operator.
func (uc *EnsureDeployment) Run(ctx context.Context, params EnsureParams) (*models.DeployedDiamond, error) {
	chainID, err := uc.chain.ResolveChainID(ctx, params.Network)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve chain ID for network %s: %w", params.Network.Name, err)
	}

	key := models.DeploymentKey{
		DiamondName: params.DiamondName,
		NetworkName: params.Network.Name,
		ChainID:     chainID,
	}

	if !params.Persist && !params.Force {
		if cached, ok := uc.cache.Get(key); ok {
			uc.log.Debug("reusing cached ephemeral deployment", "key", key.String())
			return cached, nil
		}
	}

	if params.Persist && !params.Force && uc.records.Exists(key) {
		uc.log.Debug("loading existing deployment record", "path", uc.records.RecordPath(key))
		deployed, err := uc.deployer.Load(ctx, DeployConfig{
			DiamondName: params.DiamondName,
			Network:     params.Network,
			ChainID:     chainID,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to load deployment %s: %w", key.String(), err)
		}
		return uc.normalize(key, deployed)
	}

	uc.log.Info("deploying diamond", "diamond", params.DiamondName, "network", params.Network.Name, "chainId", chainID)
	deployed, err := uc.deployer.Deploy(ctx, DeployConfig{
		DiamondName: params.DiamondName,
		Network:     params.Network,
		ChainID:     chainID,
		WriteRecord: params.Persist,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to deploy diamond %s on %s: %w", params.DiamondName, params.Network.Name, err)
	}

	result, err := uc.normalize(key, deployed)
	if err != nil {
		return nil, err
	}

	if !params.Persist {
		uc.cache.Put(key, result)
	}

	return result, nil
}

// Get is a non-mutating lookup: ephemeral cache first, then the record
// store. Returns nil (not an error) when nothing is found, so callers
// decide whether absence is fatal.
func (uc *EnsureDeployment) Get(ctx context.Context, key models.DeploymentKey) (*models.DeployedDiamond, error) {
	if cached, ok := uc.cache.Get(key); ok {
		return cached, nil
	}

	if !uc.records.Exists(key) {
		return nil, nil
	}

	deployed, err := uc.records.Read(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("failed to read deployment record %s: %w", uc.records.RecordPath(key), err)
	}
	return deployed, nil
}

// normalize stamps the key fields onto the deployer output and checks
// the address invariants.
func (uc *EnsureDeployment) normalize(key models.DeploymentKey, deployed *models.DeployedDiamond) (*models.DeployedDiamond, error) {
	deployed.DiamondName = key.DiamondName
	deployed.NetworkName = key.NetworkName
	deployed.ChainID = key.ChainID

	if err := deployed.Validate(); err != nil {
		return nil, fmt.Errorf("deployer returned invalid deployment data: %w", err)
	}

	if len(deployed.Facets) == 0 {
		uc.log.Warn("deployment has no facets", "diamond", key.DiamondName)
	}

	return deployed, nil
}
