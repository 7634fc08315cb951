package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/sahilm/fuzzy"

	"github.com/DiamondsLab/diamond-forge/internal/config"
	"github.com/DiamondsLab/diamond-forge/internal/domain"
	"github.com/DiamondsLab/diamond-forge/internal/domain/models"
)

// HelperFileName is the generated helper source file, always overwritten.
const HelperFileName = "GeneratedDeployment.sol"

// GenerateHelpersParams contains parameters for helper generation.
type GenerateHelpersParams struct {
	DiamondName string
	Network     *config.Network
	// OutputDir overrides the configured helpers directory.
	OutputDir string
	// Deployed short-circuits the lookup when the caller already holds
	// reconciled deployment data (the test/coverage pipeline does).
	Deployed *models.DeployedDiamond
}

// GenerateHelpersResult contains the result of helper generation.
type GenerateHelpersResult struct {
	Path       string
	FacetCount int
}

// GenerateHelpers renders the deployment-data helper library consumed
// by the Foundry test contracts.
type GenerateHelpers struct {
	cfg       *config.RuntimeConfig
	ensure    *EnsureDeployment
	chain     ChainResolver
	records   RecordStore
	generator HelperGenerator
	writer    FileWriter
	log       *slog.Logger
}

// NewGenerateHelpers creates a new GenerateHelpers use case
func NewGenerateHelpers(
	cfg *config.RuntimeConfig,
	ensure *EnsureDeployment,
	chain ChainResolver,
	records RecordStore,
	generator HelperGenerator,
	writer FileWriter,
	log *slog.Logger,
) *GenerateHelpers {
	return &GenerateHelpers{
		cfg:       cfg,
		ensure:    ensure,
		chain:     chain,
		records:   records,
		generator: generator,
		writer:    writer,
		log:       log.With("component", "GenerateHelpers"),
	}
}

// Run generates the helper file for an existing deployment. Fails with
// ErrDeployFirst when neither a record nor a cache entry exists; no
// output file is created in that case.
func (uc *GenerateHelpers) Run(ctx context.Context, params GenerateHelpersParams) (*GenerateHelpersResult, error) {
	deployed := params.Deployed
	if deployed == nil {
		var err error
		deployed, err = uc.lookup(ctx, params)
		if err != nil {
			return nil, err
		}
	}

	if len(deployed.Facets) == 0 {
		uc.log.Warn("generating helpers for a deployment with no facets", "diamond", deployed.DiamondName)
	}

	content, err := uc.generator.Generate(deployed)
	if err != nil {
		return nil, fmt.Errorf("failed to generate helper source: %w", err)
	}

	outputDir := params.OutputDir
	if outputDir == "" {
		outputDir = uc.cfg.HelpersDir
	}
	if !filepath.IsAbs(outputDir) {
		outputDir = filepath.Join(uc.cfg.ProjectRoot, outputDir)
	}

	path := filepath.Join(outputDir, HelperFileName)
	if err := uc.writer.WriteFile(ctx, path, content); err != nil {
		return nil, fmt.Errorf("failed to write helper file: %w", err)
	}

	uc.log.Debug("generated deployment helpers", "path", path, "facets", len(deployed.Facets))

	return &GenerateHelpersResult{
		Path:       path,
		FacetCount: len(deployed.Facets),
	}, nil
}

func (uc *GenerateHelpers) lookup(ctx context.Context, params GenerateHelpersParams) (*models.DeployedDiamond, error) {
	chainID, err := uc.chain.ResolveChainID(ctx, params.Network)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve chain ID for network %s: %w", params.Network.Name, err)
	}

	key := models.DeploymentKey{
		DiamondName: params.DiamondName,
		NetworkName: params.Network.Name,
		ChainID:     chainID,
	}

	deployed, err := uc.ensure.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	if deployed == nil {
		return nil, uc.notFound(ctx, params.DiamondName)
	}
	return deployed, nil
}

// notFound builds the "deploy first" error, attaching a close-name
// suggestion when the diamond name looks like a typo.
func (uc *GenerateHelpers) notFound(ctx context.Context, diamondName string) error {
	known, err := uc.records.ListDiamonds(ctx)
	if err == nil && len(known) > 0 {
		if matches := fuzzy.Find(diamondName, known); len(matches) > 0 {
			return fmt.Errorf("%w: %w", domain.ErrDeployFirst, &domain.UnknownDiamondError{
				Name:        diamondName,
				Suggestions: []string{known[matches[0].Index]},
			})
		}
	}
	return fmt.Errorf("%w (diamond %q)", domain.ErrDeployFirst, diamondName)
}
