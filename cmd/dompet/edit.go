package main

import (
	"fmt"

	"github.com/Veraticus/dompet/internal/cli"
	"github.com/Veraticus/dompet/internal/model"
	"github.com/spf13/cobra"
)

func (a *app) editCmd() *cobra.Command {
	var (
		typ         string
		amount      string
		description string
		category    string
		date        string
	)

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Change a recorded transaction",
		Long: `Replace fields of an existing transaction. Fields without a flag keep
their current value. The id may be shortened to a unique prefix.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			store, cleanup, err := a.openLedger(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			id, err := resolveID(store, args[0])
			if err != nil {
				return err
			}
			current, _ := store.Get(id)
			fields := current.Fields()

			flags := cmd.Flags()
			if flags.Changed("type") {
				if fields.Type, err = model.ParseTransactionType(typ); err != nil {
					return validationError(err)
				}
			}
			if flags.Changed("amount") {
				if fields.Amount, err = parseAmountArg(amount); err != nil {
					return err
				}
			}
			if flags.Changed("description") {
				fields.Description = description
			}
			if flags.Changed("category") {
				fields.Category = category
			}
			if flags.Changed("date") {
				if fields.Date, err = a.parseDateArg(date); err != nil {
					return err
				}
			}

			if _, err := store.Update(ctx, id, fields); err != nil {
				return validationError(err)
			}

			updated, _ := store.Get(id)
			_, err = fmt.Fprintln(cmd.OutOrStdout(), cli.FormatSuccess(fmt.Sprintf("Updated %s: %s %s %q in %s on %s",
				shortID(id), updated.Type, cli.FormatRupiah(updated.Amount), updated.Description, updated.Category, updated.Date)))
			return err
		},
	}

	cmd.Flags().StringVarP(&typ, "type", "t", "", "income or expense")
	cmd.Flags().StringVarP(&amount, "amount", "a", "", "new amount")
	cmd.Flags().StringVar(&description, "description", "", "new description")
	cmd.Flags().StringVarP(&category, "category", "c", "", "new category")
	cmd.Flags().StringVarP(&date, "date", "d", "", "new date as YYYY-MM-DD")

	return cmd
}
