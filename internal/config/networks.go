package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// networksFile is the on-disk shape of .dforge/networks.yaml. Which
// networks count as persistent is host configuration, not a hardcoded
// list: the file is the source of truth, the defaults below only cover
// the well-known local dev nodes.
type networksFile struct {
	Networks map[string]networkEntry `yaml:"networks"`
}

type networkEntry struct {
	ChainID    uint64 `yaml:"chainId"`
	RPCURL     string `yaml:"rpcUrl"`
	Persistent *bool  `yaml:"persistent"`
}

// NetworkResolver resolves network names against .dforge/networks.yaml,
// foundry.toml [rpc_endpoints], and built-in defaults, in that order.
type NetworkResolver struct {
	projectRoot   string
	foundryConfig *FoundryConfig
	networks      map[string]*Network
}

// NewNetworkResolver creates a resolver for the given project.
func NewNetworkResolver(projectRoot string, foundryConfig *FoundryConfig) *NetworkResolver {
	r := &NetworkResolver{
		projectRoot:   projectRoot,
		foundryConfig: foundryConfig,
		networks:      make(map[string]*Network),
	}

	r.addDefaults()
	r.loadFoundryEndpoints()
	if err := r.loadNetworksFile(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}

	return r
}

func (r *NetworkResolver) addDefaults() {
	defaults := []Network{
		{Name: "hardhat", ChainID: 31337, RPCURL: "", Persistent: false},
		{Name: "localhost", ChainID: 31337, RPCURL: "http://127.0.0.1:8545", Persistent: false},
		{Name: "anvil", ChainID: 31337, RPCURL: "http://127.0.0.1:8545", Persistent: false},
	}
	for i := range defaults {
		r.networks[defaults[i].Name] = &defaults[i]
	}
}

func (r *NetworkResolver) loadFoundryEndpoints() {
	if r.foundryConfig == nil {
		return
	}
	for name, url := range r.foundryConfig.RPCEndpoints {
		key := strings.ToLower(name)
		if existing, ok := r.networks[key]; ok {
			existing.RPCURL = url
			continue
		}
		// Anything reachable over a real RPC endpoint defaults to
		// persistent; networks.yaml can override.
		r.networks[key] = &Network{Name: name, RPCURL: url, Persistent: true}
	}
}

func (r *NetworkResolver) loadNetworksFile() error {
	path := filepath.Join(r.projectRoot, ".dforge", "networks.yaml")
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	var file networksFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}

	for name, entry := range file.Networks {
		key := strings.ToLower(name)
		network, ok := r.networks[key]
		if !ok {
			network = &Network{Name: name, Persistent: true}
			r.networks[key] = network
		}
		if entry.ChainID != 0 {
			network.ChainID = entry.ChainID
		}
		if entry.RPCURL != "" {
			network.RPCURL = os.ExpandEnv(entry.RPCURL)
		}
		if entry.Persistent != nil {
			network.Persistent = *entry.Persistent
		}
	}

	return nil
}

// Resolve resolves a network name to its configuration.
func (r *NetworkResolver) Resolve(name string) (*Network, error) {
	if name == "" {
		return nil, fmt.Errorf("network not specified")
	}
	if network, ok := r.networks[strings.ToLower(name)]; ok {
		return network, nil
	}
	return nil, fmt.Errorf("unknown network %q: add it to .dforge/networks.yaml or foundry.toml [rpc_endpoints]", name)
}

// Names returns all configured network names.
func (r *NetworkResolver) Names() []string {
	names := make([]string, 0, len(r.networks))
	for name := range r.networks {
		names = append(names, name)
	}
	return names
}
