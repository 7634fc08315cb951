package cli

import (
	"github.com/spf13/cobra"

	"github.com/DiamondsLab/diamond-forge/internal/domain"
	forgedomain "github.com/DiamondsLab/diamond-forge/internal/domain/forge"
	"github.com/DiamondsLab/diamond-forge/internal/usecase"
)

// NewTestCmd creates the test command
func NewTestCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "test",
		Short: "Run Foundry tests against a deployed diamond",
		Long: `Deploy (or reuse) the diamond, regenerate the Solidity helpers, and run
forge test with the translated options. The exit code mirrors forge:
zero when all tests pass.

Examples:
  dforge test --diamond-name ExampleDiamond
  dforge test --diamond-name ExampleDiamond --match-contract DiamondCut -vvv
  dforge test --diamond-name ExampleDiamond --network sepolia --skip-deployment`,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := getApp(cmd)
			if err != nil {
				return err
			}

			network, err := resolveNetwork(a)
			if err != nil {
				return err
			}

			diamondName, _ := cmd.Flags().GetString("diamond-name")
			options := &forgedomain.TestOptions{
				Filter:    filterOptions(cmd),
				Display:   displayOptions(cmd),
				Execution: executionOptions(cmd),
				EVM:       evmOptions(cmd),
				Build:     buildOptions(cmd),
			}

			passed, err := a.RunTests.Run(cmd.Context(), usecase.RunTestsParams{
				DiamondName:    diamondName,
				Network:        network,
				Options:        options,
				SkipDeployment: boolFlag(cmd, "skip-deployment"),
				SkipHelpers:    boolFlag(cmd, "skip-helpers"),
				Force:          boolFlag(cmd, "force"),
				SaveDeployment: boolFlag(cmd, "save-deployment"),
			})
			if err != nil {
				return err
			}
			if !passed {
				// forge already reported the failures on the stream
				return domain.ErrRunFailed
			}
			return nil
		},
	}

	addPipelineFlags(cmd)
	addFilterFlags(cmd)
	addDisplayFlags(cmd)
	addExecutionFlags(cmd)
	addEVMFlags(cmd)
	addBuildFlags(cmd)

	return cmd
}
