package cli

import (
	"github.com/spf13/cobra"
)

const defaultConfigPath = "./configs/configs.yml"

// RootOptions holds global flags for all commands.
type RootOptions struct {
	ConfigPath string
}

// NewRootCommand creates the factory-events command. Without a subcommand it serves.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	serveCmd := NewServeCommand(opts)
	cmd := &cobra.Command{
		Use:           "factory-events",
		Short:         "Factory-floor event ingestion and machine health stats",
		Long:          "Ingests machine event batches with dedupe and last-writer-wins reconciliation, and serves windowed machine and line statistics.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          serveCmd.RunE,
	}

	cmd.PersistentFlags().StringVar(&opts.ConfigPath, "config", defaultConfigPath, "path to the YAML config file")

	cmd.AddCommand(serveCmd)
	cmd.AddCommand(NewMigrateCommand(opts))
	cmd.AddCommand(NewArchiveCommand(opts))

	return cmd
}
