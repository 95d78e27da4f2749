package cli

import (
	"fmt"

	"factory-events/internal/shared/configs"
	"factory-events/internal/stores"

	"github.com/spf13/cobra"
)

func NewMigrateCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "migrate",
		Short:         "Apply the event store schema and exit",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := configs.LoadConfig(opts.ConfigPath)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			store, err := stores.NewEventStore(cmd.Context(), cfg.Database)
			if err != nil {
				return fmt.Errorf("failed to open event store: %w", err)
			}
			defer store.Close()

			if err := store.Migrate(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "schema applied (driver=%s)\n", cfg.Database.Driver)
			return nil
		},
	}
}
