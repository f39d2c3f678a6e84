package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/renewtrack/renewtrack/internal/cli"
)

func checkCmd() *cobra.Command {
	var undo bool

	cmd := &cobra.Command{
		Use:   "check <id>",
		Short: "Confirm a renewal record",
		Long: `Mark a record as confirmed. Confirmed records drive the receipts metrics
and the monthly subtotals. Use --undo to unconfirm.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			l, cleanup, err := initLedger(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			if err := l.SetChecked(ctx, args[0], !undo); err != nil {
				return err
			}

			if undo {
				fmt.Println(cli.FormatSuccess("Record unconfirmed")) //nolint:forbidigo // User-facing output
			} else {
				fmt.Println(cli.FormatSuccess("Record confirmed")) //nolint:forbidigo // User-facing output
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&undo, "undo", false, "unconfirm instead of confirm")

	return cmd
}
