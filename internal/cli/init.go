package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/DiamondsLab/diamond-forge/internal/usecase"
)

// NewInitCmd creates the init command
func NewInitCmd() *cobra.Command {
	var (
		helpersDir string
		examples   bool
		force      bool
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Scaffold the helpers and deployments layout",
		Long: `Create the directory structure dforge needs: the helpers directory for
generated Solidity, the deployments/ record store, and a networks.yaml
skeleton under .dforge/.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := getApp(cmd)
			if err != nil {
				return err
			}

			result, err := a.InitProject.Run(cmd.Context(), usecase.InitParams{
				HelpersDir: helpersDir,
				Examples:   examples,
				Force:      force,
			})
			if err != nil {
				return err
			}

			for _, path := range result.Created {
				fmt.Printf("  created %s\n", path)
			}
			for _, path := range result.Skipped {
				fmt.Printf("  skipped %s (exists, use --force to overwrite)\n", path)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&helpersDir, "helpers-dir", "", "Directory for generated helpers")
	cmd.Flags().BoolVar(&examples, "examples", false, "Also scaffold an example Foundry test")
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite existing scaffold files")

	return cmd
}
