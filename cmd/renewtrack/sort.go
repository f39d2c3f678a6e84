package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/renewtrack/renewtrack/internal/cli"
	"github.com/renewtrack/renewtrack/internal/model"
)

func sortCmd() *cobra.Command {
	var desc bool

	cmd := &cobra.Command{
		Use:   "sort <field>",
		Short: "Set the display sort preference",
		Long: `Order records within each month by the given field. The preference is
persisted across sessions independently of record data.

Fields: name, renewalDate, sentDate, closeDate, amount, opportunityId`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			field, ok := model.ParseSortField(args[0])
			if !ok {
				return fmt.Errorf("unknown sort field %q", args[0])
			}

			l, cleanup, err := initLedger(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			direction := model.SortAscending
			if desc {
				direction = model.SortDescending
			}
			l.SetSortPreference(ctx, model.SortPreference{Field: field, Direction: direction})

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Sorting by %s (%s)", field, direction))) //nolint:forbidigo // User-facing output
			return nil
		},
	}

	cmd.Flags().BoolVar(&desc, "desc", false, "sort descending")

	return cmd
}
