package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/DiamondsLab/diamond-forge/internal/usecase"
)

// NewGenerateCmd creates the generate command
func NewGenerateCmd() *cobra.Command {
	var (
		diamondName string
		outputDir   string
	)

	cmd := &cobra.Command{
		Use:     "generate",
		Aliases: []string{"generate-helpers", "gen"},
		Short:   "Generate Solidity deployment helpers",
		Long: `Generate the Solidity helper library exposing the diamond's deployment
addresses to Foundry tests.

The helper is regenerated from the deployment record (or the in-process
cache) and always overwritten; never edit it by hand. Fails if the
diamond has not been deployed yet.

Examples:
  dforge generate --diamond-name ExampleDiamond
  dforge generate --diamond-name ExampleDiamond --network sepolia --output-dir test/foundry/helpers`,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := getApp(cmd)
			if err != nil {
				return err
			}

			network, err := resolveNetwork(a)
			if err != nil {
				return err
			}

			result, err := a.GenerateHelpers.Run(cmd.Context(), usecase.GenerateHelpersParams{
				DiamondName: diamondName,
				Network:     network,
				OutputDir:   outputDir,
			})
			if err != nil {
				return err
			}

			fmt.Printf("Generated %s (%d facets)\n", result.Path, result.FacetCount)
			return nil
		},
	}

	cmd.Flags().StringVar(&diamondName, "diamond-name", "", "Name of the diamond contract (required)")
	cmd.Flags().StringVar(&outputDir, "output-dir", "", "Directory for the generated helper (default: helpers dir from config)")
	_ = cmd.MarkFlagRequired("diamond-name")

	return cmd
}
