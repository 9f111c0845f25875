package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/cylnet/claude-context-mem/pkg/domain"
)

func NewHookCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hook",
		Short: "Process a PostToolUse invocation from stdin",
		Long: `Reads a PostToolUse hook payload from stdin, classifies the tool output,
and on a failure stores its features in the memory service. Similar past
failures, if any, are printed to stdout as hints for the session.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHook(cmd)
		},
	}

	return cmd
}

func runHook(cmd *cobra.Command) error {
	manager, config, err := newManager(cmd)
	if err != nil {
		return err
	}

	if config.Disabled {
		return nil
	}

	payload, err := io.ReadAll(os.Stdin)
	if err != nil {
		return fmt.Errorf("failed to read hook payload: %w", err)
	}

	var inv domain.ToolInvocation
	if err := json.Unmarshal(payload, &inv); err != nil {
		return fmt.Errorf("failed to parse hook payload: %w", err)
	}

	hints, err := manager.HandleToolResult(cmd.Context(), inv)
	if err != nil {
		return err
	}

	if hints != "" {
		fmt.Fprint(cmd.OutOrStdout(), hints)
	}

	return nil
}
