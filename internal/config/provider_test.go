package config_test

import (
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DiamondsLab/diamond-forge/internal/config"
)

func newRootFlags() *cobra.Command {
	cmd := &cobra.Command{Use: "dforge"}
	cmd.Flags().Bool("debug", false, "")
	cmd.Flags().Bool("non-interactive", false, "")
	cmd.Flags().StringP("network", "n", "", "")
	return cmd
}

func TestProvider(t *testing.T) {
	t.Run("hyphenated flags reach the runtime config", func(t *testing.T) {
		cmd := newRootFlags()
		require.NoError(t, cmd.Flags().Set("non-interactive", "true"))
		require.NoError(t, cmd.Flags().Set("debug", "true"))

		v := config.SetupViper(t.TempDir(), cmd)
		cfg, err := config.Provider(v)
		require.NoError(t, err)
		assert.True(t, cfg.NonInteractive)
		assert.True(t, cfg.Debug)
	})

	t.Run("defaults apply when flags are unset", func(t *testing.T) {
		root := t.TempDir()
		v := config.SetupViper(root, newRootFlags())
		cfg, err := config.Provider(v)
		require.NoError(t, err)

		assert.False(t, cfg.NonInteractive)
		assert.False(t, cfg.Debug)
		assert.Equal(t, root, cfg.ProjectRoot)
		assert.Equal(t, filepath.Join(root, ".dforge"), cfg.DataDir)
		assert.Equal(t, "deployments", cfg.DeploymentsDir)
		assert.Equal(t, filepath.Join("test", "foundry", "helpers"), cfg.HelpersDir)
		assert.Nil(t, cfg.Network)
	})

	t.Run("network flag resolves through the resolver", func(t *testing.T) {
		cmd := newRootFlags()
		require.NoError(t, cmd.Flags().Set("network", "hardhat"))

		v := config.SetupViper(t.TempDir(), cmd)
		cfg, err := config.Provider(v)
		require.NoError(t, err)
		require.NotNil(t, cfg.Network)
		assert.Equal(t, "hardhat", cfg.Network.Name)
		assert.Equal(t, uint64(31337), cfg.Network.ChainID)
	})

	t.Run("unknown network flag fails fast", func(t *testing.T) {
		cmd := newRootFlags()
		require.NoError(t, cmd.Flags().Set("network", "moonbase"))

		v := config.SetupViper(t.TempDir(), cmd)
		_, err := config.Provider(v)
		assert.Error(t, err)
	})
}
