package deployer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"os/exec"

	"github.com/DiamondsLab/diamond-forge/internal/config"
	"github.com/DiamondsLab/diamond-forge/internal/domain"
	"github.com/DiamondsLab/diamond-forge/internal/domain/models"
	"github.com/DiamondsLab/diamond-forge/internal/usecase"
)

// deployReport is the JSON document the hardhat diamonds task prints on
// success.
type deployReport struct {
	DiamondAddress  string `json:"diamondAddress"`
	DeployerAddress string `json:"deployerAddress"`
	Facets          map[string]struct {
		Address       string   `json:"address"`
		TxHash        string   `json:"txHash"`
		Version       int      `json:"version"`
		FuncSelectors []string `json:"funcSelectors"`
	} `json:"facets"`
}

// HardhatAdapter drives the external hardhat-diamonds deployer as a
// subprocess. It is the concrete DiamondDeployer wired at startup; the
// reconciler only ever sees the interface.
type HardhatAdapter struct {
	log         *slog.Logger
	projectRoot string
	records     usecase.RecordStore
}

// NewHardhatAdapter creates a new hardhat deployer adapter
func NewHardhatAdapter(cfg *config.RuntimeConfig, records usecase.RecordStore, log *slog.Logger) *HardhatAdapter {
	return &HardhatAdapter{
		log:         log.With("component", "HardhatAdapter"),
		projectRoot: cfg.ProjectRoot,
		records:     records,
	}
}

// Deploy runs the hardhat diamond:deploy task and normalizes its JSON
// report. With WriteRecord the record file is written alongside, so a
// later Load can find it.
func (h *HardhatAdapter) Deploy(ctx context.Context, cfg usecase.DeployConfig) (*models.DeployedDiamond, error) {
	if _, err := exec.LookPath("npx"); err != nil {
		return nil, &domain.MissingToolError{
			Tool: "npx",
			Hint: "the diamond deployer needs the hardhat-diamonds peer dependency (npm install)",
		}
	}

	args := []string{
		"hardhat", "diamond:deploy",
		"--diamond-name", cfg.DiamondName,
		"--network", cfg.Network.Name,
		"--json",
	}

	h.log.Debug("invoking hardhat deployer", "args", args)

	cmd := exec.CommandContext(ctx, "npx", args...)
	cmd.Dir = h.projectRoot
	cmd.Stderr = os.Stderr

	var stdout bytes.Buffer
	cmd.Stdout = &stdout

	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("hardhat diamond:deploy failed (is the node running and hardhat-diamonds installed?): %w", err)
	}

	report, err := parseReport(stdout.Bytes())
	if err != nil {
		return nil, err
	}

	deployed := normalize(report, cfg)

	if cfg.WriteRecord {
		key := models.DeploymentKey{
			DiamondName: cfg.DiamondName,
			NetworkName: cfg.Network.Name,
			ChainID:     cfg.ChainID,
		}
		if err := h.records.Write(ctx, key, deployed); err != nil {
			return nil, fmt.Errorf("deployment succeeded but writing the record failed: %w", err)
		}
	}

	return deployed, nil
}

// Load reads an existing deployment record back without touching the
// chain.
func (h *HardhatAdapter) Load(ctx context.Context, cfg usecase.DeployConfig) (*models.DeployedDiamond, error) {
	key := models.DeploymentKey{
		DiamondName: cfg.DiamondName,
		NetworkName: cfg.Network.Name,
		ChainID:     cfg.ChainID,
	}
	return h.records.Read(ctx, key)
}

// parseReport finds and decodes the JSON report in the deployer output.
// Hardhat plugins tend to prepend log noise, so scan for the first '{'.
func parseReport(output []byte) (*deployReport, error) {
	idx := bytes.IndexByte(output, '{')
	if idx < 0 {
		return nil, fmt.Errorf("no JSON report in deployer output")
	}

	var report deployReport
	if err := json.Unmarshal(output[idx:], &report); err != nil {
		return nil, fmt.Errorf("malformed deployer report: %w", err)
	}
	if report.DiamondAddress == "" {
		return nil, fmt.Errorf("deployer report missing diamond address")
	}
	return &report, nil
}

func normalize(report *deployReport, cfg usecase.DeployConfig) *models.DeployedDiamond {
	facets := make(map[string]models.FacetCut, len(report.Facets))
	for name, facet := range report.Facets {
		facets[name] = models.FacetCut{
			Address:           facet.Address,
			TxHash:            facet.TxHash,
			Version:           facet.Version,
			FunctionSelectors: facet.FuncSelectors,
		}
	}

	return &models.DeployedDiamond{
		DiamondName:     cfg.DiamondName,
		NetworkName:     cfg.Network.Name,
		ChainID:         cfg.ChainID,
		DiamondAddress:  report.DiamondAddress,
		DeployerAddress: report.DeployerAddress,
		Facets:          facets,
	}
}

// Ensure the adapter implements the interface
var _ usecase.DiamondDeployer = (*HardhatAdapter)(nil)
