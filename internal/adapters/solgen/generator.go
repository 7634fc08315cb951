package solgen

import (
	"bytes"
	"fmt"
	"sort"
	"text/template"

	"github.com/ethereum/go-ethereum/common"
	"github.com/samber/lo"

	"github.com/DiamondsLab/diamond-forge/internal/domain/models"
	"github.com/DiamondsLab/diamond-forge/internal/usecase"
)

// GeneratorAdapter renders deployment data into the Solidity helper
// library consumed by the Foundry test contracts.
type GeneratorAdapter struct{}

// NewGeneratorAdapter creates a new helper generator adapter
func NewGeneratorAdapter() *GeneratorAdapter {
	return &GeneratorAdapter{}
}

type facetEntry struct {
	Name     string
	Constant string
	Address  string
}

type helperData struct {
	DiamondName     string
	NetworkName     string
	ChainID         uint64
	DiamondAddress  string
	DeployerAddress string
	Facets          []facetEntry
}

// The facet lookup is generated as a chain of string-equality branches
// because Solidity has no constant associative maps. Callers treat
// address(0) as "not found".
const helperTemplate = `// SPDX-License-Identifier: MIT
pragma solidity ^0.8.0;

// GENERATED FILE - DO NOT EDIT.
// Regenerated by dforge on every deployment of {{.DiamondName}}
// (network: {{.NetworkName}}, chainId: {{.ChainID}}).

library DeployedDiamondHelper {
    address internal constant DIAMOND_ADDRESS = {{.DiamondAddress}};
    address internal constant DEPLOYER_ADDRESS = {{.DeployerAddress}};
{{- range .Facets}}
    address internal constant {{.Constant}} = {{.Address}};
{{- end}}

    function getDiamondAddress() internal pure returns (address) {
        return DIAMOND_ADDRESS;
    }

    function getDeployerAddress() internal pure returns (address) {
        return DEPLOYER_ADDRESS;
    }

    function getFacetAddress(string memory name) internal pure returns (address) {
        bytes32 nameHash = keccak256(bytes(name));
{{- range .Facets}}
        if (nameHash == keccak256(bytes("{{.Name}}"))) {
            return {{.Constant}};
        }
{{- end}}
        return address(0);
    }
}
`

var helperTmpl = template.Must(template.New("helper").Parse(helperTemplate))

// Generate renders the helper library source. Output is deterministic:
// facets are emitted in sorted name order. An empty facet set still
// succeeds and emits zero facet constants.
func (g *GeneratorAdapter) Generate(deployed *models.DeployedDiamond) (string, error) {
	names := lo.Keys(deployed.Facets)
	sort.Strings(names)

	facets := make([]facetEntry, 0, len(names))
	for _, name := range names {
		facets = append(facets, facetEntry{
			Name:     name,
			Constant: FacetConstantName(name),
			Address:  common.HexToAddress(deployed.Facets[name].Address).Hex(),
		})
	}

	data := helperData{
		DiamondName:     deployed.DiamondName,
		NetworkName:     deployed.NetworkName,
		ChainID:         deployed.ChainID,
		DiamondAddress:  common.HexToAddress(deployed.DiamondAddress).Hex(),
		DeployerAddress: common.HexToAddress(deployed.DeployerAddress).Hex(),
		Facets:          facets,
	}

	var buf bytes.Buffer
	if err := helperTmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute helper template: %w", err)
	}
	return buf.String(), nil
}

// Ensure the adapter implements the interface
var _ usecase.HelperGenerator = (*GeneratorAdapter)(nil)
