package forge

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"time"

	"github.com/creack/pty"

	"github.com/DiamondsLab/diamond-forge/internal/config"
	"github.com/DiamondsLab/diamond-forge/internal/domain"
	"github.com/DiamondsLab/diamond-forge/internal/usecase"
)

// RunnerAdapter spawns the forge binary and streams its output live.
type RunnerAdapter struct {
	log         *slog.Logger
	projectRoot string
}

// NewRunnerAdapter creates a new forge runner
func NewRunnerAdapter(cfg *config.RuntimeConfig, log *slog.Logger) *RunnerAdapter {
	return &RunnerAdapter{
		log:         log.With("component", "RunnerAdapter"),
		projectRoot: cfg.ProjectRoot,
	}
}

// CheckInstallation verifies forge is available on PATH.
func (f *RunnerAdapter) CheckInstallation() error {
	if _, err := exec.LookPath("forge"); err != nil {
		return &domain.MissingToolError{
			Tool: "forge",
			Hint: "install Foundry: https://getfoundry.sh",
		}
	}
	return nil
}

// Run executes a forge subcommand with a prebuilt argument vector,
// streaming child output to our stdout as it arrives. A nonzero exit
// is a normal false result; only spawn-level failures are errors.
func (f *RunnerAdapter) Run(ctx context.Context, subcommand string, args []string) (bool, error) {
	start := time.Now()
	argv := append([]string{subcommand}, args...)
	f.log.Debug("running forge", "args", argv, "dir", f.projectRoot)

	cmd := exec.CommandContext(ctx, "forge", argv...)
	cmd.Dir = f.projectRoot

	// PTY keeps forge's color output intact while we stream it
	ptyFile, err := pty.Start(cmd)
	if err != nil {
		return false, fmt.Errorf("failed to start forge %s: %w", subcommand, err)
	}
	defer func() {
		// Close PTY after the command finishes to avoid read errors
		_ = ptyFile.Close()
	}()

	// The copy ends with an EIO when the child closes its side of the
	// pty; that's the normal shutdown path on Linux.
	_, _ = io.Copy(os.Stdout, ptyFile)

	err = cmd.Wait()
	duration := time.Since(start)

	if err == nil {
		f.log.Debug("forge completed", "subcommand", subcommand, "duration", duration)
		return true, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		f.log.Debug("forge exited nonzero", "subcommand", subcommand, "code", exitErr.ExitCode(), "duration", duration)
		return false, nil
	}

	return false, fmt.Errorf("forge %s failed to run: %w", subcommand, err)
}

// Ensure the adapter implements the interface
var _ usecase.ForgeRunner = (*RunnerAdapter)(nil)
