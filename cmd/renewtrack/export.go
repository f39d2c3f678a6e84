package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/renewtrack/renewtrack/internal/cli"
	"github.com/renewtrack/renewtrack/internal/storage"
)

func exportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "export <file>",
		Short: "Export the full store to a JSON file",
		Long: `Write every year's records plus settings to a pretty-printed JSON file.
The same file can later be imported, scoped to the active year.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			l, cleanup, err := initLedger(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			data, err := storage.MarshalExport(l.Snapshot())
			if err != nil {
				return err
			}

			if err := os.WriteFile(args[0], data, 0600); err != nil {
				return fmt.Errorf("failed to write export file: %w", err)
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Exported %d records to %s", len(l.Clients()), args[0]))) //nolint:forbidigo // User-facing output
			return nil
		},
	}
}
