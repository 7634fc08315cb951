package models

import (
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

// FacetCut describes a single deployed facet registered with the diamond.
type FacetCut struct {
	Address           string   `json:"address"`
	TxHash            string   `json:"txHash"`
	Version           int      `json:"version"`
	FunctionSelectors []string `json:"funcSelectors"`
}

// DeployedDiamond is the normalized result of a diamond deployment.
// Immutable once produced by a deploy or load call.
type DeployedDiamond struct {
	DiamondName     string              `json:"diamondName"`
	NetworkName     string              `json:"networkName"`
	ChainID         uint64              `json:"chainId"`
	DiamondAddress  string              `json:"diamondAddress"`
	DeployerAddress string              `json:"deployerAddress"`
	Facets          map[string]FacetCut `json:"facets"`
}

// Validate checks the structural invariants of a successful deployment:
// well-formed proxy and deployer addresses. An empty facet map is legal
// (degenerate deployment) and is the caller's warning to raise, not ours.
func (d *DeployedDiamond) Validate() error {
	if !common.IsHexAddress(d.DiamondAddress) {
		return fmt.Errorf("diamond address %q: malformed", d.DiamondAddress)
	}
	if !common.IsHexAddress(d.DeployerAddress) {
		return fmt.Errorf("deployer address %q: malformed", d.DeployerAddress)
	}
	return nil
}

// Key returns the deployment key this record answers to.
func (d *DeployedDiamond) Key() DeploymentKey {
	return DeploymentKey{
		DiamondName: d.DiamondName,
		NetworkName: d.NetworkName,
		ChainID:     d.ChainID,
	}
}

// DeploymentKey identifies a deployment by (diamond, network, chain).
// The string fields compare case-insensitively.
type DeploymentKey struct {
	DiamondName string
	NetworkName string
	ChainID     uint64
}

// String returns the canonical lowercase form used for record filenames
// and cache keys: {diamond}-{network}-{chainID}.
func (k DeploymentKey) String() string {
	return fmt.Sprintf("%s-%s-%d", strings.ToLower(k.DiamondName), strings.ToLower(k.NetworkName), k.ChainID)
}

// Equal reports whether two keys identify the same deployment.
func (k DeploymentKey) Equal(other DeploymentKey) bool {
	return strings.EqualFold(k.DiamondName, other.DiamondName) &&
		strings.EqualFold(k.NetworkName, other.NetworkName) &&
		k.ChainID == other.ChainID
}
