package main

import (
	"fmt"
	"strings"

	"github.com/Veraticus/dompet/internal/cli"
	"github.com/Veraticus/dompet/internal/common"
	"github.com/Veraticus/dompet/internal/model"
	"github.com/Veraticus/dompet/internal/summary"
	"github.com/spf13/cobra"
)

func (a *app) categoriesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "categories",
		Aliases: []string{"cat"},
		Short:   "Manage expense categories",
	}

	cmd.AddCommand(a.listCategoriesCmd())
	cmd.AddCommand(a.addCategoryCmd())
	cmd.AddCommand(a.deleteCategoryCmd())

	return cmd
}

func (a *app) listCategoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List categories with this month's spending",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, cleanup, err := a.openLedger(cmd.Context())
			if err != nil {
				return err
			}
			defer cleanup()

			out := cmd.OutOrStdout()
			categories := store.Categories()
			if len(categories) == 0 {
				_, err = fmt.Fprintln(out, cli.InfoStyle.Render("No categories. Use 'dompet categories add' to create one."))
				return err
			}

			now := a.now()
			spent := map[string]int64{}
			for _, c := range summary.CategoryBreakdown(store.Transactions(), now.Month(), now.Year()) {
				spent[c.Category] = c.Amount
			}

			for _, name := range categories {
				fmt.Fprintf(out, "  %-24s %s\n", name, cli.SubtleStyle.Render(cli.FormatRupiah(spent[name])))
			}
			_, err = fmt.Fprintln(out, cli.SubtleStyle.Render("  income: "+strings.Join(model.IncomeCategories(), ", ")))
			return err
		},
	}
}

func (a *app) addCategoryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <name...>",
		Short: "Add a category",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := model.NormalizeCategoryName(strings.Join(args, " "))
			if name == "" {
				return common.NewUserError("category name cannot be empty", model.ErrEmptyCategoryName)
			}

			store, cleanup, err := a.openLedger(cmd.Context())
			if err != nil {
				return err
			}
			defer cleanup()

			added, err := store.AddCategory(cmd.Context(), name)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if !added {
				_, err = fmt.Fprintln(out, cli.FormatInfo(fmt.Sprintf("Category %q already exists.", name)))
				return err
			}
			_, err = fmt.Fprintln(out, cli.FormatSuccess(fmt.Sprintf("Added category %q", name)))
			return err
		},
	}
}

func (a *app) deleteCategoryCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "delete <name...>",
		Aliases: []string{"rm"},
		Short:   "Delete a category",
		Long: `Delete a category from the list. Transactions already tagged with it keep
the label and still count toward totals.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := strings.Join(args, " ")

			store, cleanup, err := a.openLedger(cmd.Context())
			if err != nil {
				return err
			}
			defer cleanup()

			deleted, err := store.DeleteCategory(cmd.Context(), name)
			if err != nil {
				return err
			}
			if !deleted {
				return common.NewUserError(fmt.Sprintf("no category named %q", name), common.ErrNotFound)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), cli.FormatSuccess(fmt.Sprintf("Deleted category %q", name)))
			return err
		},
	}
}
