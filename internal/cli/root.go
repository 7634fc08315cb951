package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/DiamondsLab/diamond-forge/internal/app"
	"github.com/DiamondsLab/diamond-forge/internal/config"
)

// contextKey is the type for context keys
type contextKey string

const (
	// appKey is the context key for the app instance
	appKey contextKey = "app"
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "dforge",
		Short: "Diamond proxy test and coverage orchestrator for Foundry",
		Long: `dforge deploys Diamond (multi-facet proxy) contracts, generates
Solidity helpers exposing the deployment addresses, and drives forge
test and coverage runs against the deployed state.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Skip for help/version commands
			if cmd.Name() == "version" || cmd.Name() == "help" || cmd.Name() == "completion" {
				return nil
			}

			// Find project root
			projectRoot, err := config.FindProjectRoot()
			if err != nil {
				// init can bootstrap a bare directory
				if cmd.Name() != "init" {
					return err
				}
				projectRoot = "."
			}

			// Set up viper
			v := config.SetupViper(projectRoot, cmd)

			// Initialize app with DI
			appInstance, err := app.InitApp(v)
			if err != nil {
				return fmt.Errorf("failed to initialize app: %w", err)
			}

			// Store app in context
			ctx := context.WithValue(cmd.Context(), appKey, appInstance)

			// Add timeout if configured
			if appInstance.Config.Timeout > 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, appInstance.Config.Timeout)
				cmd.PostRun = func(cmd *cobra.Command, args []string) {
					cancel()
				}
			}

			cmd.SetContext(ctx)

			return nil
		},
	}

	// Global flags
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug output")
	rootCmd.PersistentFlags().Bool("non-interactive", false, "Disable interactive prompts")
	rootCmd.PersistentFlags().StringP("network", "n", "", "Network to use (e.g., hardhat, sepolia)")

	rootCmd.AddGroup(&cobra.Group{
		ID:    "main",
		Title: "Main Commands",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "setup",
		Title: "Setup Commands",
	})

	testCmd := NewTestCmd()
	testCmd.GroupID = "main"
	rootCmd.AddCommand(testCmd)

	coverageCmd := NewCoverageCmd()
	coverageCmd.GroupID = "main"
	rootCmd.AddCommand(coverageCmd)

	deployCmd := NewDeployCmd()
	deployCmd.GroupID = "main"
	rootCmd.AddCommand(deployCmd)

	generateCmd := NewGenerateCmd()
	generateCmd.GroupID = "main"
	rootCmd.AddCommand(generateCmd)

	initCmd := NewInitCmd()
	initCmd.GroupID = "setup"
	rootCmd.AddCommand(initCmd)

	rootCmd.AddCommand(NewVersionCmd())

	return rootCmd
}

// getApp retrieves the app instance from the command context
func getApp(cmd *cobra.Command) (*app.App, error) {
	appInstance := cmd.Context().Value(appKey)
	if appInstance == nil {
		return nil, fmt.Errorf("app not initialized")
	}

	a, ok := appInstance.(*app.App)
	if !ok {
		return nil, fmt.Errorf("invalid app instance")
	}

	return a, nil
}

// resolveNetwork returns the network from the global flag, defaulting
// to the in-process hardhat network.
func resolveNetwork(a *app.App) (*config.Network, error) {
	if a.Config.Network != nil {
		return a.Config.Network, nil
	}
	return a.Networks.Resolve("hardhat")
}
