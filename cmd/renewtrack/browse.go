package main

import (
	"github.com/spf13/cobra"

	"github.com/renewtrack/renewtrack/internal/tui"
)

func browseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Browse records interactively",
		Long: `Open an interactive browser over the active year: navigate the grouped
list, confirm records with space, search with /, and cycle years with tab.
State auto-saves every 30 seconds and on every change.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			l, cleanup, err := initLedger(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			return tui.Run(ctx, l)
		},
	}
}
