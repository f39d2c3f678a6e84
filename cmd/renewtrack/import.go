package main

import (
	"fmt"
	"os"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/renewtrack/renewtrack/internal/cli"
	"github.com/renewtrack/renewtrack/internal/common"
	"github.com/renewtrack/renewtrack/internal/storage"
)

func importCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Import records for the active year from a JSON file",
		Long: `Replace the active year's records with the matching records from the file.
Records belonging to other years are left untouched, whether they sit in
the file or in the store. A malformed file aborts before any change is made.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("failed to read import file: %w", err)
			}

			// Validate before touching the store.
			payload, err := storage.ParseImport(data)
			if err != nil {
				return common.NewUserError("import aborted; no changes made", err)
			}

			l, cleanup, err := initLedger(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			year := l.Settings().ActiveYear

			// Scan the file for active-year records before replacing anything.
			bar := progressbar.NewOptions(len(payload.Clients),
				progressbar.OptionSetWriter(os.Stderr),
				progressbar.OptionShowCount(),
				progressbar.OptionSetWidth(40),
				progressbar.OptionSetDescription(fmt.Sprintf("Scanning records for %d...", year)),
			)
			matched := 0
			for _, record := range payload.Clients {
				if y, ok := record.Year(); ok && y == year {
					matched++
				}
				_ = bar.Add(1)
			}
			_ = bar.Finish()
			fmt.Fprintln(os.Stderr)

			if matched == 0 {
				fmt.Println(cli.FormatWarning(fmt.Sprintf("File contains no records for %d; the year will be emptied", year))) //nolint:forbidigo // User-facing output
			}

			count := l.ApplyPayload(ctx, payload, false)

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Imported %d records for %d", count, year))) //nolint:forbidigo // User-facing output
			return nil
		},
	}
}
