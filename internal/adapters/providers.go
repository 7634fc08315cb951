package adapters

import (
	"github.com/google/wire"

	"github.com/DiamondsLab/diamond-forge/internal/adapters/blockchain"
	"github.com/DiamondsLab/diamond-forge/internal/adapters/deployer"
	"github.com/DiamondsLab/diamond-forge/internal/adapters/forge"
	"github.com/DiamondsLab/diamond-forge/internal/adapters/fs"
	"github.com/DiamondsLab/diamond-forge/internal/adapters/interactive"
	"github.com/DiamondsLab/diamond-forge/internal/adapters/progress"
	"github.com/DiamondsLab/diamond-forge/internal/adapters/registry"
	"github.com/DiamondsLab/diamond-forge/internal/adapters/solgen"
	"github.com/DiamondsLab/diamond-forge/internal/config"
	"github.com/DiamondsLab/diamond-forge/internal/usecase"
)

// RegistrySet provides the record store and ephemeral cache
var RegistrySet = wire.NewSet(
	registry.NewFileStore,
	wire.Bind(new(usecase.RecordStore), new(*registry.FileStore)),

	registry.NewCache,
	wire.Bind(new(usecase.DeploymentCache), new(*registry.Cache)),
)

// DeployerSet provides the external diamond deployer collaborator
var DeployerSet = wire.NewSet(
	deployer.NewHardhatAdapter,
	wire.Bind(new(usecase.DiamondDeployer), new(*deployer.HardhatAdapter)),
)

// ForgeSet provides the forge process runner
var ForgeSet = wire.NewSet(
	forge.NewRunnerAdapter,
	wire.Bind(new(usecase.ForgeRunner), new(*forge.RunnerAdapter)),
)

// SolgenSet provides the Solidity helper generator
var SolgenSet = wire.NewSet(
	solgen.NewGeneratorAdapter,
	wire.Bind(new(usecase.HelperGenerator), new(*solgen.GeneratorAdapter)),
)

// BlockchainSet provides the chain-ID resolver
var BlockchainSet = wire.NewSet(
	blockchain.NewChainAdapter,
	wire.Bind(new(usecase.ChainResolver), new(*blockchain.ChainAdapter)),
)

// FSSet provides filesystem-based implementations
var FSSet = wire.NewSet(
	fs.NewFileWriterAdapter,
	wire.Bind(new(usecase.FileWriter), new(*fs.FileWriterAdapter)),
)

// UISet provides the operator-facing adapters
var UISet = wire.NewSet(
	progress.NewSpinnerSink,
	wire.Bind(new(usecase.ProgressSink), new(*progress.SpinnerSink)),

	interactive.NewConfirmAdapter,
	wire.Bind(new(usecase.Confirmer), new(*interactive.ConfirmAdapter)),
)

// ConfigSet provides network resolution
var ConfigSet = wire.NewSet(
	config.ProvideNetworkResolver,
	wire.Bind(new(usecase.NetworkResolver), new(*config.NetworkResolver)),
)

// AllAdapters includes all adapter sets
var AllAdapters = wire.NewSet(
	RegistrySet,
	DeployerSet,
	ForgeSet,
	SolgenSet,
	BlockchainSet,
	FSSet,
	UISet,
	ConfigSet,
)
