package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func NewSimilarCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "similar <error text>",
		Short: "Query the memory service for similar past errors",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSimilar(cmd, strings.Join(args, " "))
		},
	}

	return cmd
}

func runSimilar(cmd *cobra.Command, errorText string) error {
	manager, _, err := newManager(cmd)
	if err != nil {
		return err
	}

	hints := manager.SimilarErrorHints(cmd.Context(), errorText)
	if hints == "" {
		fmt.Fprintln(cmd.OutOrStdout(), "No similar errors found.")
		return nil
	}

	fmt.Fprint(cmd.OutOrStdout(), hints)

	return nil
}
