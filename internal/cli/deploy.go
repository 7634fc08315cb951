package cli

import (
	"fmt"
	"os"
	"sort"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/DiamondsLab/diamond-forge/internal/usecase"
)

// NewDeployCmd creates the deploy command
func NewDeployCmd() *cobra.Command {
	var (
		diamondName string
		reuse       bool
		force       bool
	)

	cmd := &cobra.Command{
		Use:   "deploy",
		Short: "Deploy a diamond and its facets",
		Long: `Deploy a diamond proxy and its facets to the selected network.

On persistent networks the deployment record is written to the
deployments/ directory and reused on later runs. On in-process networks
(hardhat) the deployment lives only for the duration of the process.

Examples:
  dforge deploy --diamond-name ExampleDiamond
  dforge deploy --diamond-name ExampleDiamond --network sepolia --reuse
  dforge deploy --diamond-name ExampleDiamond --network sepolia --force`,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := getApp(cmd)
			if err != nil {
				return err
			}

			network, err := resolveNetwork(a)
			if err != nil {
				return err
			}

			result, err := a.DeployDiamond.Run(cmd.Context(), usecase.DeployParams{
				DiamondName: diamondName,
				Network:     network,
				Reuse:       reuse,
				Force:       force,
			})
			if err != nil {
				return err
			}

			printDeploySummary(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&diamondName, "diamond-name", "", "Name of the diamond contract (required)")
	cmd.Flags().BoolVar(&reuse, "reuse", false, "Reuse an existing deployment record, never redeploy")
	cmd.Flags().BoolVar(&force, "force", false, "Redeploy even if a deployment record exists")
	_ = cmd.MarkFlagRequired("diamond-name")
	cmd.MarkFlagsMutuallyExclusive("reuse", "force")

	return cmd
}

func printDeploySummary(result *usecase.DeployResult) {
	deployed := result.Deployed
	titler := cases.Title(language.English)

	if result.Reused {
		color.Yellow("Reused existing deployment of %s on %s", deployed.DiamondName, deployed.NetworkName)
	} else {
		color.Green("Deployed %s to %s (chain %d)", deployed.DiamondName, deployed.NetworkName, deployed.ChainID)
	}

	fmt.Printf("  Diamond:  %s\n", deployed.DiamondAddress)
	fmt.Printf("  Deployer: %s\n", deployed.DeployerAddress)
	fmt.Printf("  Facets:   %d\n", len(deployed.Facets))
	if result.Persisted {
		fmt.Printf("  Record:   %s\n", result.RecordPath)
	} else {
		color.Yellow("  Ephemeral deployment: record kept in memory only")
	}

	if len(deployed.Facets) == 0 {
		return
	}

	names := make([]string, 0, len(deployed.Facets))
	for name := range deployed.Facets {
		names = append(names, name)
	}
	sort.Strings(names)

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{titler.String("facet"), titler.String("address"), titler.String("version"), titler.String("selectors")})
	for _, name := range names {
		facet := deployed.Facets[name]
		t.AppendRow(table.Row{name, facet.Address, facet.Version, len(facet.FunctionSelectors)})
	}
	t.Render()
}
