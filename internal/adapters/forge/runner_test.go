package forge_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	forgeadapter "github.com/DiamondsLab/diamond-forge/internal/adapters/forge"
	"github.com/DiamondsLab/diamond-forge/internal/config"
	"github.com/DiamondsLab/diamond-forge/internal/domain"
	"github.com/DiamondsLab/diamond-forge/internal/logging"
)

// fakeForge installs a shell script named forge on PATH that exits with
// the given code.
func fakeForge(t *testing.T, exitCode string) {
	t.Helper()
	dir := t.TempDir()
	script := "#!/bin/sh\nexit " + exitCode + "\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "forge"), []byte(script), 0o755))
	t.Setenv("PATH", dir)
}

func newRunner(t *testing.T) *forgeadapter.RunnerAdapter {
	t.Helper()
	cfg := &config.RuntimeConfig{ProjectRoot: t.TempDir()}
	return forgeadapter.NewRunnerAdapter(cfg, logging.NewLogger(cfg))
}

func TestCheckInstallation(t *testing.T) {
	t.Run("missing binary reports the install hint", func(t *testing.T) {
		t.Setenv("PATH", t.TempDir())
		err := newRunner(t).CheckInstallation()
		require.Error(t, err)

		var missing *domain.MissingToolError
		require.ErrorAs(t, err, &missing)
		assert.Equal(t, "forge", missing.Tool)
		assert.Contains(t, missing.Hint, "getfoundry.sh")
	})

	t.Run("present binary passes", func(t *testing.T) {
		fakeForge(t, "0")
		assert.NoError(t, newRunner(t).CheckInstallation())
	})
}

func TestRun(t *testing.T) {
	ctx := context.Background()

	t.Run("zero exit is a passing run", func(t *testing.T) {
		fakeForge(t, "0")
		passed, err := newRunner(t).Run(ctx, "test", nil)
		require.NoError(t, err)
		assert.True(t, passed)
	})

	t.Run("nonzero exit is a failing run, not an error", func(t *testing.T) {
		fakeForge(t, "1")
		passed, err := newRunner(t).Run(ctx, "test", []string{"-vvv"})
		require.NoError(t, err)
		assert.False(t, passed)
	})

	t.Run("spawn failure is an error", func(t *testing.T) {
		t.Setenv("PATH", t.TempDir())
		passed, err := newRunner(t).Run(ctx, "test", nil)
		require.Error(t, err)
		assert.False(t, passed)
	})
}
