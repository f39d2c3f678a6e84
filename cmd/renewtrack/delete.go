package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/renewtrack/renewtrack/internal/cli"
)

func deleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a renewal record",
		Long: `Remove a record from the ledger. If it was the last record of its year,
the year disappears from the year tabs unless it is the active year.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			l, cleanup, err := initLedger(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			if err := l.Remove(ctx, args[0]); err != nil {
				return err
			}

			fmt.Println(cli.FormatSuccess("Record deleted")) //nolint:forbidigo // User-facing output
			return nil
		},
	}
}
