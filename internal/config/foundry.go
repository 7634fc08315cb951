package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// foundryTOML represents the raw foundry.toml structure
type foundryTOML struct {
	RPCEndpoints map[string]string         `toml:"rpc_endpoints"`
	Profile      map[string]foundryProfile `toml:"profile"`
}

type foundryProfile struct {
	Src  string `toml:"src"`
	Test string `toml:"test"`
	Out  string `toml:"out"`
}

// loadFoundryConfig loads and parses foundry.toml if present. A missing
// file is not an error: pure Hardhat projects gain Foundry support only
// after `dforge init`.
func loadFoundryConfig(projectRoot string) (*FoundryConfig, error) {
	// Load .env files first for variable expansion
	envFiles := []string{
		filepath.Join(projectRoot, ".env"),
		filepath.Join(projectRoot, ".env.local"),
	}
	for _, envFile := range envFiles {
		if _, err := os.Stat(envFile); err == nil {
			if err := godotenv.Load(envFile); err != nil {
				fmt.Fprintf(os.Stderr, "Warning: failed to load %s: %v\n", envFile, err)
			}
		}
	}

	cfg := &FoundryConfig{
		RPCEndpoints: make(map[string]string),
		SrcDir:       "contracts",
		TestDir:      "test/foundry",
		OutDir:       "out",
	}

	foundryPath := filepath.Join(projectRoot, "foundry.toml")
	if _, err := os.Stat(foundryPath); os.IsNotExist(err) {
		return cfg, nil
	}

	var raw foundryTOML
	if _, err := toml.DecodeFile(foundryPath, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse foundry.toml: %w", err)
	}

	for name, url := range raw.RPCEndpoints {
		cfg.RPCEndpoints[name] = os.ExpandEnv(url)
	}

	if profile, ok := raw.Profile["default"]; ok {
		if profile.Src != "" {
			cfg.SrcDir = profile.Src
		}
		if profile.Test != "" {
			cfg.TestDir = profile.Test
		}
		if profile.Out != "" {
			cfg.OutDir = profile.Out
		}
	}

	return cfg, nil
}
