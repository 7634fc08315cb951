package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/DiamondsLab/diamond-forge/internal/domain"
	forgedomain "github.com/DiamondsLab/diamond-forge/internal/domain/forge"
	"github.com/DiamondsLab/diamond-forge/internal/usecase"
)

// NewCoverageCmd creates the coverage command
func NewCoverageCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "coverage",
		Short: "Run Foundry coverage against a deployed diamond",
		Long: `Deploy (or reuse) the diamond, regenerate the Solidity helpers, and run
forge coverage with the translated options. Coverage needs a forkable
network so the instrumented run can observe the deployed state.

Examples:
  dforge coverage --diamond-name ExampleDiamond --network localhost
  dforge coverage --diamond-name ExampleDiamond --network localhost --report summary --report lcov
  dforge coverage --diamond-name ExampleDiamond --network localhost --report lcov --lcov-version v2`,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := getApp(cmd)
			if err != nil {
				return err
			}

			network, err := resolveNetwork(a)
			if err != nil {
				return err
			}

			reports, _ := cmd.Flags().GetStringSlice("report")
			formats := make([]forgedomain.ReportFormat, 0, len(reports))
			for _, r := range reports {
				switch forgedomain.ReportFormat(r) {
				case forgedomain.ReportSummary, forgedomain.ReportLcov, forgedomain.ReportDebug, forgedomain.ReportBytecode:
					formats = append(formats, forgedomain.ReportFormat(r))
				default:
					return fmt.Errorf("invalid report format %q (valid: summary, lcov, debug, bytecode)", r)
				}
			}

			diamondName, _ := cmd.Flags().GetString("diamond-name")
			options := &forgedomain.CoverageOptions{
				Report:          formats,
				ReportFile:      stringPtr(cmd, "report-file"),
				LcovVersion:     stringPtr(cmd, "lcov-version"),
				IRMinimum:       boolFlag(cmd, "ir-minimum"),
				IncludeLibs:     boolFlag(cmd, "include-libs"),
				NoMatchCoverage: stringPtr(cmd, "no-match-coverage"),
				Filter:          filterOptions(cmd),
				Display:         displayOptions(cmd),
				Execution:       executionOptions(cmd),
				EVM:             evmOptions(cmd),
				Build:           buildOptions(cmd),
			}

			passed, err := a.RunCoverage.Run(cmd.Context(), usecase.RunCoverageParams{
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
				return domain.ErrRunFailed
			}
			return nil
		},
	}

	addPipelineFlags(cmd)
	cmd.Flags().StringSlice("report", nil, "Coverage report format: summary, lcov, debug, bytecode (repeatable)")
	cmd.Flags().String("report-file", "", "Path for the coverage report file")
	cmd.Flags().String("lcov-version", "", "LCOV format version: v1 or v2")
	cmd.Flags().Bool("ir-minimum", false, "Compile with minimal IR optimization for accurate coverage")
	cmd.Flags().Bool("include-libs", false, "Include library contracts in coverage")
	cmd.Flags().String("no-match-coverage", "", "Exclude files matching the regex from coverage")
	addFilterFlags(cmd)
	addDisplayFlags(cmd)
	addExecutionFlags(cmd)
	addEVMFlags(cmd)
	addBuildFlags(cmd)

	return cmd
}
