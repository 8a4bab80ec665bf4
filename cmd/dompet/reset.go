package main

import (
	"fmt"

	"github.com/Veraticus/dompet/internal/cli"
	"github.com/spf13/cobra"
)

func (a *app) resetCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Delete every transaction and restore the default categories",
		Long:  `Reset removes all transactions and custom categories. This cannot be undone.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			out := cmd.OutOrStdout()

			store, cleanup, err := a.openLedger(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			if !force {
				question := fmt.Sprintf("This deletes %d transactions and restores the default categories. Continue?", store.Len())
				ok, err := cli.Confirm(ctx, cli.NewLineReader(cmd.InOrStdin()), out, question)
				if err != nil {
					return err
				}
				if !ok {
					_, err = fmt.Fprintln(out, cli.FormatInfo("Reset canceled."))
					return err
				}
			}

			if err := store.Reset(ctx); err != nil {
				return fmt.Errorf("failed to reset: %w", err)
			}
			_, err = fmt.Fprintln(out, cli.FormatSuccess("All data cleared."))
			return err
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "skip the confirmation prompt")

	return cmd
}
