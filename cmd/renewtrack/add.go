package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/renewtrack/renewtrack/internal/cli"
	"github.com/renewtrack/renewtrack/internal/model"
)

func addCmd() *cobra.Command {
	var (
		closeDate     string
		renewalDate   string
		sentDate      string
		opportunityID string
		notes         string
		amount        float64
	)

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a renewal record",
		Long: `Create a new renewal record. The close date determines the month and
year the record is grouped under; a new year is registered automatically.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			l, cleanup, err := initLedger(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			record, err := l.Add(ctx, model.Client{
				Name:          args[0],
				CloseDate:     closeDate,
				RenewalDate:   renewalDate,
				SentDate:      sentDate,
				OpportunityID: opportunityID,
				Notes:         notes,
				Amount:        model.Amount(amount),
			})
			if err != nil {
				return err
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Added %q (%s) for %s", record.Name, record.ID, cli.FormatCurrency(float64(record.Amount))))) //nolint:forbidigo // User-facing output
			return nil
		},
	}

	cmd.Flags().StringVar(&closeDate, "close-date", "", "close date (YYYY-MM-DD, required)")
	cmd.Flags().StringVar(&renewalDate, "renewal-date", "", "renewal date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&sentDate, "sent-date", "", "sent date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&opportunityID, "opportunity-id", "", "external opportunity reference")
	cmd.Flags().StringVar(&notes, "notes", "", "free-text notes")
	cmd.Flags().Float64Var(&amount, "amount", 0, "deal amount in dollars")
	_ = cmd.MarkFlagRequired("close-date")

	return cmd
}
