package usecase

import (
	"context"

	"github.com/DiamondsLab/diamond-forge/internal/config"
	"github.com/DiamondsLab/diamond-forge/internal/domain/models"
)

// RecordStore handles path resolution and existence checks for on-disk
// deployment records. Writes happen only when a deploy is asked to
// persist; the reconciler never mutates records on the reuse path.
type RecordStore interface {
	// RecordPath returns the deterministic record path for a key.
	RecordPath(key models.DeploymentKey) string
	// Exists reports whether a record exists at RecordPath(key).
	Exists(key models.DeploymentKey) bool
	// Read loads and decodes the record for a key.
	Read(ctx context.Context, key models.DeploymentKey) (*models.DeployedDiamond, error)
	// Write serializes a deployment record for a key.
	Write(ctx context.Context, key models.DeploymentKey, data *models.DeployedDiamond) error
	// ListDiamonds returns the diamond names with at least one record.
	ListDiamonds(ctx context.Context) ([]string, error)
}

// DeploymentCache is the process-lifetime cache for ephemeral
// deployments. Not safe for concurrent use: the pipeline runs one
// logical operation per process.
type DeploymentCache interface {
	Get(key models.DeploymentKey) (*models.DeployedDiamond, bool)
	Put(key models.DeploymentKey, data *models.DeployedDiamond)
}

// DeployConfig is passed to the external deployer collaborator.
type DeployConfig struct {
	DiamondName string
	Network     *config.Network
	ChainID     uint64
	// WriteRecord asks the deployer to persist the deployment record.
	WriteRecord bool
}

// DiamondDeployer is the external diamond deployment library, injected
// at startup. Deploy performs a fresh deployment; Load reads back an
// existing one without touching the chain.
type DiamondDeployer interface {
	Deploy(ctx context.Context, cfg DeployConfig) (*models.DeployedDiamond, error)
	Load(ctx context.Context, cfg DeployConfig) (*models.DeployedDiamond, error)
}

// ChainResolver resolves the chain ID of the active network connection.
type ChainResolver interface {
	ResolveChainID(ctx context.Context, network *config.Network) (uint64, error)
}

// NetworkResolver resolves network names to configurations.
type NetworkResolver interface {
	Resolve(name string) (*config.Network, error)
}

// HelperGenerator renders a deployment into helper source code for the
// external test runner's contracts.
type HelperGenerator interface {
	Generate(deployed *models.DeployedDiamond) (string, error)
}

// FileWriter handles file system operations for generated sources.
// WriteFile creates parent directories and always overwrites;
// EnsureDirectory exists for directories scaffolded without files.
type FileWriter interface {
	WriteFile(ctx context.Context, path string, content string) error
	FileExists(ctx context.Context, path string) (bool, error)
	EnsureDirectory(ctx context.Context, path string) error
}

// ForgeRunner spawns the forge binary with a prebuilt argument vector,
// streaming output live. The bool result mirrors the exit code: false
// means the run completed but failed, which is not an error.
type ForgeRunner interface {
	CheckInstallation() error
	Run(ctx context.Context, subcommand string, args []string) (bool, error)
}

// Confirmer asks the operator a yes/no question in interactive mode.
type Confirmer interface {
	Confirm(ctx context.Context, prompt string) (bool, error)
}

// ProgressSink receives progress updates during long-running stages.
type ProgressSink interface {
	Start(message string)
	Update(message string)
	Stop(message string)
}

// NopProgress is a no-op implementation of ProgressSink
type NopProgress struct{}

func (NopProgress) Start(string)  {}
func (NopProgress) Update(string) {}
func (NopProgress) Stop(string)   {}
