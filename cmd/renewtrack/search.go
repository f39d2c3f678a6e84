package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/renewtrack/renewtrack/internal/cli"
)

func searchCmd() *cobra.Command {
	var clear bool

	cmd := &cobra.Command{
		Use:   "search [term]",
		Short: "Show, set, or clear the persisted search filter",
		Long: `The search term filters the list by case-insensitive substring match
across name, opportunity id, displayed dates, and amount. A term that
matches nothing leaves the list unfiltered rather than hiding everything.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			l, cleanup, err := initLedger(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			switch {
			case clear:
				l.SetSearchTerm(ctx, "")
				fmt.Println(cli.FormatSuccess("Search filter cleared")) //nolint:forbidigo // User-facing output
			case len(args) == 0:
				term := l.Settings().SearchTerm
				if term == "" {
					fmt.Println(cli.FormatInfo("No search filter set")) //nolint:forbidigo // User-facing output
				} else {
					fmt.Printf("Search filter: %q\n", term) //nolint:forbidigo // User-facing output
				}
			default:
				l.SetSearchTerm(ctx, args[0])
				fmt.Println(cli.FormatSuccess(fmt.Sprintf("Search filter set to %q", args[0]))) //nolint:forbidigo // User-facing output
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&clear, "clear", false, "remove the search filter")

	return cmd
}
