package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cylnet/claude-context-mem/internal/version"
)

func NewVersionCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			info := version.Get()

			fmt.Fprintf(cmd.OutOrStdout(), "claude-context-mem %s\n", version.GetShortVersion())
			fmt.Fprintf(cmd.OutOrStdout(), "  go version: %s\n", info.GoVersion)
			fmt.Fprintf(cmd.OutOrStdout(), "  platform:   %s\n", info.Platform)
			if info.BuildDate != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "  built:      %s\n", info.BuildDate)
			}
		},
	}

	return cmd
}
