package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/DiamondsLab/diamond-forge/internal/config"
)

// InitParams contains parameters for project scaffolding.
type InitParams struct {
	HelpersDir string
	Examples   bool
	Force      bool
}

// InitResult lists what was created.
type InitResult struct {
	Created []string
	Skipped []string
}

const networksFileSkeleton = `# dforge network policy. Networks listed here override the defaults
# (hardhat/localhost/anvil) and foundry.toml [rpc_endpoints].
# persistent: true means deployments are written to deployments/ and the
# network is forkable by forge.
networks:
  hardhat:
    chainId: 31337
    persistent: false
#  sepolia:
#    chainId: 11155111
#    rpcUrl: ${SEPOLIA_RPC_URL}
#    persistent: true
`

// exampleTestSkeleton takes the helpers directory base name, so the
// import stays valid under a custom --helpers-dir.
const exampleTestSkeleton = `// SPDX-License-Identifier: MIT
pragma solidity ^0.8.0;

import {Test} from "forge-std/Test.sol";
import {DeployedDiamondHelper} from "./%s/GeneratedDeployment.sol";

contract DiamondDeploymentTest is Test {
    function test_DiamondIsDeployed() public view {
        address diamond = DeployedDiamondHelper.getDiamondAddress();
        assertTrue(diamond != address(0), "diamond not deployed");
    }

    function test_UnknownFacetIsZero() public pure {
        assertEq(DeployedDiamondHelper.getFacetAddress("NoSuchFacet"), address(0));
    }
}
`

// InitProject scaffolds the directory structure for generated helpers
// and example tests.
type InitProject struct {
	cfg    *config.RuntimeConfig
	writer FileWriter
	log    *slog.Logger
}

// NewInitProject creates a new InitProject use case
func NewInitProject(cfg *config.RuntimeConfig, writer FileWriter, log *slog.Logger) *InitProject {
	return &InitProject{
		cfg:    cfg,
		writer: writer,
		log:    log.With("component", "InitProject"),
	}
}

// Run scaffolds the project. Existing files are kept unless Force is set.
func (uc *InitProject) Run(ctx context.Context, params InitParams) (*InitResult, error) {
	result := &InitResult{}

	helpersDir := params.HelpersDir
	if helpersDir == "" {
		helpersDir = uc.cfg.HelpersDir
	}
	if !filepath.IsAbs(helpersDir) {
		helpersDir = filepath.Join(uc.cfg.ProjectRoot, helpersDir)
	}

	dirs := []string{
		helpersDir,
		filepath.Join(uc.cfg.ProjectRoot, uc.cfg.DeploymentsDir),
		uc.cfg.DataDir,
	}
	for _, dir := range dirs {
		if err := uc.writer.EnsureDirectory(ctx, dir); err != nil {
			return nil, fmt.Errorf("failed to create %s: %w", dir, err)
		}
		result.Created = append(result.Created, dir)
	}

	files := []struct {
		path    string
		content string
	}{
		{filepath.Join(uc.cfg.DataDir, "networks.yaml"), networksFileSkeleton},
	}
	if params.Examples {
		exampleTest := fmt.Sprintf(exampleTestSkeleton, filepath.Base(helpersDir))
		files = append(files, struct {
			path    string
			content string
		}{filepath.Join(filepath.Dir(helpersDir), "DiamondDeployment.t.sol"), exampleTest})
	}

	for _, file := range files {
		exists, err := uc.writer.FileExists(ctx, file.path)
		if err != nil {
			return nil, err
		}
		if exists && !params.Force {
			result.Skipped = append(result.Skipped, file.path)
			continue
		}
		if err := uc.writer.WriteFile(ctx, file.path, file.content); err != nil {
			return nil, fmt.Errorf("failed to write %s: %w", file.path, err)
		}
		result.Created = append(result.Created, file.path)
	}

	uc.log.Debug("project scaffolded", "created", len(result.Created), "skipped", len(result.Skipped))
	return result, nil
}
