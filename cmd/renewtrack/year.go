package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/renewtrack/renewtrack/internal/cli"
)

func yearCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "year",
		Short: "Manage year partitions",
		Long:  `List the available years, switch the active year, or register a new one.`,
	}

	cmd.AddCommand(yearListCmd())
	cmd.AddCommand(yearSwitchCmd())
	cmd.AddCommand(yearAddCmd())

	return cmd
}

func yearListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List available years",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			l, cleanup, err := initLedger(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			settings := l.Settings()
			for _, year := range settings.AvailableYears {
				if year == settings.ActiveYear {
					fmt.Println(cli.BoldStyle.Render(fmt.Sprintf("* %d (active)", year))) //nolint:forbidigo // User-facing output
				} else {
					fmt.Printf("  %d\n", year) //nolint:forbidigo // User-facing output
				}
			}
			return nil
		},
	}
}

func yearSwitchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "switch <year>",
		Short: "Switch the active year",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			year, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("year must be a number: %q", args[0])
			}

			l, cleanup, err := initLedger(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			if err := l.SetActiveYear(ctx, year); err != nil {
				return err
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Active year is now %d", year))) //nolint:forbidigo // User-facing output
			return nil
		},
	}
}

func yearAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <year>",
		Short: "Register a new year",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			year, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("year must be a number: %q", args[0])
			}

			l, cleanup, err := initLedger(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			added, err := l.AddYear(ctx, year)
			if err != nil {
				return err
			}
			if !added {
				fmt.Println(cli.FormatWarning(fmt.Sprintf("Year %d already exists", year))) //nolint:forbidigo // User-facing output
				return nil
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Year %d added", year))) //nolint:forbidigo // User-facing output
			return nil
		},
	}
}
