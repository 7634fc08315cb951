package config

import (
	"time"
)

// RuntimeConfig represents the complete runtime configuration.
// This is injected into use cases and contains all resolved settings.
type RuntimeConfig struct {
	// Core settings
	ProjectRoot string
	DataDir     string

	// Directory layout (relative to ProjectRoot unless absolute)
	DeploymentsDir string
	HelpersDir     string

	// Context settings
	Network *Network // nil if not specified

	// Execution settings
	Debug          bool
	NonInteractive bool
	Timeout        time.Duration

	// Resolved configurations
	FoundryConfig *FoundryConfig
}

// Network represents a resolved network configuration.
type Network struct {
	Name    string `json:"name" yaml:"name"`
	ChainID uint64 `json:"chainId" yaml:"chainId"`
	RPCURL  string `json:"rpcUrl" yaml:"rpcUrl"`

	// Persistent marks networks whose deployments should be written to
	// disk and whose state survives across CLI invocations (forkable).
	// In-process networks like hardhat are not persistent.
	Persistent bool `json:"persistent" yaml:"persistent"`
}

// FoundryConfig is the subset of foundry.toml this tool cares about.
type FoundryConfig struct {
	RPCEndpoints map[string]string
	SrcDir       string
	TestDir      string
	OutDir       string
}
