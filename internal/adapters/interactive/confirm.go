package interactive

import (
	"context"
	"errors"
	"fmt"

	"github.com/manifoldco/promptui"

	"github.com/DiamondsLab/diamond-forge/internal/config"
	"github.com/DiamondsLab/diamond-forge/internal/usecase"
)

// ConfirmAdapter asks yes/no questions via promptui.
type ConfirmAdapter struct {
	cfg *config.RuntimeConfig
}

// NewConfirmAdapter creates a new confirmation adapter
func NewConfirmAdapter(cfg *config.RuntimeConfig) *ConfirmAdapter {
	return &ConfirmAdapter{cfg: cfg}
}

// Confirm prompts the operator. In non-interactive mode the answer is
// always no, so callers fall back to their safe default.
func (c *ConfirmAdapter) Confirm(ctx context.Context, prompt string) (bool, error) {
	if c.cfg.NonInteractive {
		return false, nil
	}

	p := promptui.Prompt{
		Label:     prompt,
		IsConfirm: true,
	}

	_, err := p.Run()
	if err != nil {
		// Declining IsConfirm prompts surfaces as ErrAbort
		if errors.Is(err, promptui.ErrAbort) {
			return false, nil
		}
		return false, fmt.Errorf("prompt failed: %w", err)
	}
	return true, nil
}

// Ensure the adapter implements the interface
var _ usecase.Confirmer = (*ConfirmAdapter)(nil)
