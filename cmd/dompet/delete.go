package main

import (
	"fmt"

	"github.com/Veraticus/dompet/internal/cli"
	"github.com/spf13/cobra"
)

func (a *app) deleteCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:     "delete <id>",
		Aliases: []string{"rm"},
		Short:   "Delete a transaction",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := cmd.OutOrStdout()

			store, cleanup, err := a.openLedger(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			id, err := resolveID(store, args[0])
			if err != nil {
				return err
			}
			txn, _ := store.Get(id)

			if !force {
				question := fmt.Sprintf("Delete %q (%s, %s)?", txn.Description, cli.FormatRupiah(txn.Amount), txn.Date)
				ok, err := cli.Confirm(ctx, cli.NewLineReader(cmd.InOrStdin()), out, question)
				if err != nil {
					return err
				}
				if !ok {
					_, err = fmt.Fprintln(out, cli.FormatInfo("Nothing deleted."))
					return err
				}
			}

			if _, err := store.Remove(ctx, id); err != nil {
				return err
			}
			_, err = fmt.Fprintln(out, cli.FormatSuccess("Deleted "+shortID(id)))
			return err
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "skip the confirmation prompt")

	return cmd
}
