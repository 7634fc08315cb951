package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version is set at build time via -ldflags
var Version = "dev"

// NewVersionCmd creates the version command
func NewVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the dforge version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("dforge %s\n", Version)
		},
	}
}
