package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/renewtrack/renewtrack/internal/cli"
	"github.com/renewtrack/renewtrack/internal/report"
)

func summaryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Show statistics for the active year",
		Long: `Report totals, confirmed counts and amounts, average confirmed deal size,
goal progress, and confirmed monthly subtotals for the active year.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			l, cleanup, err := initLedger(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			settings := l.Settings()
			records := report.FilterByYear(l.Clients(), settings.ActiveYear)

			confirmed := report.ConfirmedCount(records)
			progress := report.ProgressPercentage(confirmed, settings.ReceiptsGoal)

			fmt.Println(cli.FormatTitle(fmt.Sprintf("Summary %d", settings.ActiveYear)))                                            //nolint:forbidigo // User-facing output
			fmt.Printf("  Records:          %d\n", len(records))                                                                    //nolint:forbidigo // User-facing output
			fmt.Printf("  Total amount:     %s\n", cli.FormatCurrency(report.TotalAmount(records)))                                 //nolint:forbidigo // User-facing output
			fmt.Printf("  Confirmed:        %d deals, %s\n", confirmed, cli.FormatCurrency(report.ConfirmedAmount(records)))        //nolint:forbidigo // User-facing output
			fmt.Printf("  Avg deal size:    %s\n", cli.FormatCurrency(report.AverageConfirmedAmount(records)))                      //nolint:forbidigo // User-facing output
			fmt.Printf("  Goal progress:    %d of %d (%.1f%%)\n", confirmed, settings.ReceiptsGoal, progress)                       //nolint:forbidigo // User-facing output

			subtotals := report.MonthlySubtotals(records)
			if len(subtotals) == 0 {
				return nil
			}

			keys := make([]string, 0, len(subtotals))
			for key := range subtotals {
				keys = append(keys, key)
			}
			sort.Strings(keys)

			fmt.Println() //nolint:forbidigo // User-facing output
			fmt.Println(cli.BoldStyle.Render("  Confirmed by month")) //nolint:forbidigo // User-facing output
			for _, key := range keys {
				fmt.Printf("  %-16s %s\n", cli.MonthLabel(key), cli.FormatCurrency(subtotals[key])) //nolint:forbidigo // User-facing output
			}

			return nil
		},
	}
}
