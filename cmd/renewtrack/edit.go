package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/renewtrack/renewtrack/internal/cli"
	"github.com/renewtrack/renewtrack/internal/ledger"
)

func editCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit a renewal record",
		Long:  `Apply a partial update to an existing record. Only the flags you pass change.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			l, cleanup, err := initLedger(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			var patch ledger.Patch
			if cmd.Flags().Changed("name") {
				v, _ := cmd.Flags().GetString("name")
				patch.Name = &v
			}
			if cmd.Flags().Changed("close-date") {
				v, _ := cmd.Flags().GetString("close-date")
				patch.CloseDate = &v
			}
			if cmd.Flags().Changed("renewal-date") {
				v, _ := cmd.Flags().GetString("renewal-date")
				patch.RenewalDate = &v
			}
			if cmd.Flags().Changed("sent-date") {
				v, _ := cmd.Flags().GetString("sent-date")
				patch.SentDate = &v
			}
			if cmd.Flags().Changed("opportunity-id") {
				v, _ := cmd.Flags().GetString("opportunity-id")
				patch.OpportunityID = &v
			}
			if cmd.Flags().Changed("notes") {
				v, _ := cmd.Flags().GetString("notes")
				patch.Notes = &v
			}
			if cmd.Flags().Changed("amount") {
				v, _ := cmd.Flags().GetFloat64("amount")
				patch.Amount = &v
			}

			if err := l.Update(ctx, args[0], patch); err != nil {
				return err
			}

			fmt.Println(cli.FormatSuccess("Record updated")) //nolint:forbidigo // User-facing output
			return nil
		},
	}

	cmd.Flags().String("name", "", "account name")
	cmd.Flags().String("close-date", "", "close date (YYYY-MM-DD)")
	cmd.Flags().String("renewal-date", "", "renewal date (YYYY-MM-DD)")
	cmd.Flags().String("sent-date", "", "sent date (YYYY-MM-DD)")
	cmd.Flags().String("opportunity-id", "", "external opportunity reference")
	cmd.Flags().String("notes", "", "free-text notes")
	cmd.Flags().Float64("amount", 0, "deal amount in dollars")

	return cmd
}
