package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/renewtrack/renewtrack/internal/cli"
)

func goalCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "goal [count]",
		Short: "Show or set the receipts goal",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			l, cleanup, err := initLedger(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			if len(args) == 0 {
				fmt.Printf("Receipts goal: %d\n", l.Settings().ReceiptsGoal) //nolint:forbidigo // User-facing output
				return nil
			}

			goal, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("goal must be a number: %q", args[0])
			}
			if err := l.SetGoal(ctx, goal); err != nil {
				return err
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Receipts goal set to %d", goal))) //nolint:forbidigo // User-facing output
			return nil
		},
	}
}
