package cli

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/cylnet/claude-context-mem/internal/managers"
	"github.com/cylnet/claude-context-mem/pkg/clients/contextmem"
)

func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "claude-context-mem",
		Short: "Error-learning hook for agentic coding sessions",
		Long: `claude-context-mem watches shell command output from coding sessions,
detects failures, stores their features in a memory service and surfaces
similar past failures as hints.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if debug, _ := cmd.Flags().GetBool("debug"); debug {
				zerolog.SetGlobalLevel(zerolog.DebugLevel)
			} else {
				zerolog.SetGlobalLevel(zerolog.InfoLevel)
			}
		},
	}

	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().String("api-url", "", "Override memory service API URL")

	rootCmd.AddCommand(NewHookCommand())
	rootCmd.AddCommand(NewSimilarCommand())
	rootCmd.AddCommand(NewStatusCommand())
	rootCmd.AddCommand(NewVersionCommand())

	return rootCmd
}

// Execute runs the root command
func Execute() {
	if err := NewRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// newManager wires the memory service client and the pipeline manager from
// the loaded config plus command-line overrides.
func newManager(cmd *cobra.Command) (*managers.ErrorLearningManager, *Config, error) {
	config, err := LoadConfig()
	if err != nil {
		return nil, nil, err
	}

	if apiURL, _ := cmd.Flags().GetString("api-url"); apiURL != "" {
		config.APIBaseURL = apiURL
	}

	client := contextmem.NewClient(
		contextmem.WithBaseURL(config.APIBaseURL),
	)

	manager := managers.NewErrorLearningManager(managers.ErrorLearningManagerDependencies{
		MemoryService: managers.NewContextMemoryService(client),
		QueryTimeout:  config.QueryTimeout(),
		SubmitTimeout: config.SubmitTimeout(),
	})

	return manager, config, nil
}
