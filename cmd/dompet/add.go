package main

import (
	"fmt"
	"strings"

	"github.com/Veraticus/dompet/internal/classify"
	"github.com/Veraticus/dompet/internal/cli"
	"github.com/Veraticus/dompet/internal/common"
	"github.com/Veraticus/dompet/internal/ledger"
	"github.com/Veraticus/dompet/internal/model"
	"github.com/spf13/cobra"
)

func (a *app) addCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record income or an expense",
	}

	cmd.AddCommand(a.addTypeCmd(model.TypeExpense, "Record money going out"))
	cmd.AddCommand(a.addTypeCmd(model.TypeIncome, "Record money coming in"))

	return cmd
}

func (a *app) addTypeCmd(typ model.TransactionType, short string) *cobra.Command {
	var (
		category string
		date     string
	)

	cmd := &cobra.Command{
		Use:   string(typ) + " <amount> <description...>",
		Short: short,
		Long: short + `.

The category is guessed from the description when --category is not given.
Dots and commas in the amount are thousand separators: 50.000 is fifty thousand.`,
		Example: "  dompet add " + string(typ) + " 18.000 Kopi Kenangan --date 2024-03-15",
		Args:    cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			amount, err := parseAmountArg(args[0])
			if err != nil {
				return err
			}
			day, err := a.parseDateArg(date)
			if err != nil {
				return err
			}

			store, cleanup, err := a.openLedger(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			description := strings.Join(args[1:], " ")
			if category == "" {
				category, err = guessCategory(store, typ, description)
				if err != nil {
					return err
				}
			}

			txn, err := store.Create(ctx, model.TransactionFields{
				Type:        typ,
				Amount:      amount,
				Description: description,
				Category:    category,
				Date:        day,
			})
			if err != nil {
				return validationError(err)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), cli.FormatSuccess(fmt.Sprintf("Saved %s %s %q in %s on %s (id %s)",
				txn.Type, cli.FormatRupiah(txn.Amount), txn.Description, txn.Category, txn.Date, shortID(txn.ID))))
			return err
		},
	}

	cmd.Flags().StringVarP(&category, "category", "c", "", "category (guessed from the description if empty)")
	cmd.Flags().StringVarP(&date, "date", "d", "", "date as YYYY-MM-DD (default today)")

	return cmd
}

// guessCategory classifies description and checks the result is a category
// the record may use.
func guessCategory(store *ledger.Store, typ model.TransactionType, description string) (string, error) {
	guess := classify.Classify(description)
	if store.HasCategory(guess) {
		return guess, nil
	}
	if typ == model.TypeIncome {
		if model.ContainsCategory(model.IncomeCategories(), guess) {
			return guess, nil
		}
		return model.FallbackCategory, nil
	}
	return "", common.NewUserError(
		fmt.Sprintf("could not guess a category for %q; pass --category with one of: %s",
			description, strings.Join(store.Categories(), ", ")),
		model.ErrUnknownCategory)
}
