package cli

import (
	"errors"
	"fmt"
	"time"

	"factory-events/internal/app"
	"factory-events/internal/archivers"
	"factory-events/internal/shared/configs"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
)

const hourFlagLayout = "2006-01-02T15"

var errArchiveDisabled = errors.New("archive is disabled in config")

// NewArchiveCommand groups read-only commands over the raw batch archive.
func NewArchiveCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "archive",
		Short: "Inspect archived raw batches",
	}
	cmd.AddCommand(newArchiveListCommand(opts))
	cmd.AddCommand(newArchiveShowCommand(opts))
	return cmd
}

func newArchiveListCommand(opts *RootOptions) *cobra.Command {
	var hour string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List batches archived during one UTC hour",
		Example: `  factory-events archive list --hour 2026-01-15T10
  factory-events archive list`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			at := time.Now().UTC()
			if hour != "" {
				parsed, err := time.Parse(hourFlagLayout, hour)
				if err != nil {
					return fmt.Errorf("invalid --hour %q, want %s: %w", hour, hourFlagLayout, err)
				}
				at = parsed
			}

			service, err := openArchive(opts)
			if err != nil {
				return err
			}
			keys, err := service.ListHour(cmd.Context(), at)
			if err != nil {
				return err
			}
			for _, key := range keys {
				fmt.Fprintln(cmd.OutOrStdout(), key)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&hour, "hour", "", "UTC hour as "+hourFlagLayout+" (default: current hour)")
	return cmd
}

func newArchiveShowCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "show <batchId>",
		Short:         "Print an archived batch as JSON lines",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			service, err := openArchive(opts)
			if err != nil {
				return err
			}
			rows, err := service.ReadBatch(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			for _, row := range rows {
				if err := enc.Encode(row); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func openArchive(opts *RootOptions) (archivers.ArchiveService, error) {
	cfg, err := configs.LoadConfig(opts.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if !cfg.Archive.Enabled {
		return nil, errArchiveDisabled
	}
	return app.NewArchiveService(cfg.Archive)
}
