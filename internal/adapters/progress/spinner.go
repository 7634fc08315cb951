package progress

import (
	"fmt"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"

	"github.com/DiamondsLab/diamond-forge/internal/config"
	"github.com/DiamondsLab/diamond-forge/internal/usecase"
)

// SpinnerSink shows a spinner during long-running stages. In
// non-interactive mode it degrades to plain line output.
type SpinnerSink struct {
	spinner *spinner.Spinner
	plain   bool
}

// NewSpinnerSink creates a spinner-based progress sink
func NewSpinnerSink(cfg *config.RuntimeConfig) *SpinnerSink {
	return &SpinnerSink{
		spinner: spinner.New(spinner.CharSets[14], 100*time.Millisecond),
		plain:   cfg.NonInteractive,
	}
}

// Start begins showing progress with the given message.
func (s *SpinnerSink) Start(message string) {
	if s.plain {
		fmt.Println(message)
		return
	}
	s.spinner.Suffix = " " + message
	s.spinner.Start()
}

// Update replaces the progress message.
func (s *SpinnerSink) Update(message string) {
	if s.plain {
		fmt.Println(message)
		return
	}
	s.spinner.Suffix = " " + message
}

// Stop ends the spinner, printing a final message if given.
func (s *SpinnerSink) Stop(message string) {
	if !s.plain {
		s.spinner.Stop()
	}
	if message != "" {
		color.Green("✓ %s", message)
	}
}

// Ensure the adapter implements the interface
var _ usecase.ProgressSink = (*SpinnerSink)(nil)
