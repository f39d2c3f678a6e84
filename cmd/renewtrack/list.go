package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/renewtrack/renewtrack/internal/cli"
	"github.com/renewtrack/renewtrack/internal/view"
)

func listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List records for the active year, grouped by month",
		Long: `Display the active year's records grouped by close-month, filtered by the
persisted search term and ordered by the persisted sort preference.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			l, cleanup, err := initLedger(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			settings := l.Settings()
			groups := view.Rebuild(l.Clients(), settings)

			fmt.Println(cli.FormatTitle(fmt.Sprintf("Renewals %d", settings.ActiveYear))) //nolint:forbidigo // User-facing output
			if settings.SearchTerm != "" {
				fmt.Println(cli.SubtleStyle.Render("filter: " + settings.SearchTerm)) //nolint:forbidigo // User-facing output
			}

			if len(groups) == 0 {
				fmt.Println(cli.FormatInfo("No records for this year. Use 'renewtrack add' to create one.")) //nolint:forbidigo // User-facing output
				return nil
			}

			for _, group := range groups {
				fmt.Println() //nolint:forbidigo // User-facing output
				header := fmt.Sprintf("%s  %s confirmed", group.Label, cli.FormatCurrency(group.Subtotal))
				fmt.Println(cli.MonthHeaderStyle.Render(header)) //nolint:forbidigo // User-facing output

				w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
				for _, record := range group.Records {
					mark := cli.OpenMark
					if record.IsChecked {
						mark = cli.CheckedMark
					}
					fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
						mark,
						record.Name,
						cli.FormatCurrency(float64(record.Amount)),
						cli.FormatDate(record.CloseDate),
						record.OpportunityID,
						record.ID,
					)
				}
				if err := w.Flush(); err != nil {
					return fmt.Errorf("failed to render list: %w", err)
				}
			}

			return nil
		},
	}
}
