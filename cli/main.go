package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/DiamondsLab/diamond-forge/internal/cli"
	"github.com/DiamondsLab/diamond-forge/internal/domain"
)

func main() {
	rootCmd := cli.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		// Failing test/coverage runs already printed their own report
		if !errors.Is(err, domain.ErrRunFailed) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}
