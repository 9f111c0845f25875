package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cylnet/claude-context-mem/pkg/clients/contextmem"
)

func NewStatusCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Check memory service connectivity",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStatus(cmd)
		},
	}

	return cmd
}

func runStatus(cmd *cobra.Command) error {
	config, err := LoadConfig()
	if err != nil {
		return err
	}

	if apiURL, _ := cmd.Flags().GetString("api-url"); apiURL != "" {
		config.APIBaseURL = apiURL
	}

	client := contextmem.NewClient(contextmem.WithBaseURL(config.APIBaseURL))

	health, err := client.Health(cmd.Context())
	if err != nil {
		return fmt.Errorf("memory service at %s is unreachable: %w", config.APIBaseURL, err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Memory service at %s: %s\n", config.APIBaseURL, health.Status)

	return nil
}
