package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/Veraticus/dompet/internal/cli"
	"github.com/Veraticus/dompet/internal/common"
	"github.com/Veraticus/dompet/internal/model"
	"github.com/Veraticus/dompet/internal/summary"
	"github.com/spf13/cobra"
)

func (a *app) historyCmd() *cobra.Command {
	var (
		rangeName string
		category  string
		limit     int
	)

	cmd := &cobra.Command{
		Use:     "history",
		Aliases: []string{"ls"},
		Short:   "List recorded transactions",
		Long: `List transactions in stored order: manual entries newest first, then
imported rows in file order.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			r, err := summary.ParseRange(rangeName)
			if err != nil {
				return common.NewUserError(err.Error(), err)
			}

			store, cleanup, err := a.openLedger(cmd.Context())
			if err != nil {
				return err
			}
			defer cleanup()

			txns := summary.FilterHistory(store.Transactions(), a.now(), r, category)
			if limit > 0 && len(txns) > limit {
				txns = txns[:limit]
			}

			out := cmd.OutOrStdout()
			if len(txns) == 0 {
				_, err = fmt.Fprintln(out, cli.InfoStyle.Render("No transactions found."))
				return err
			}
			return writeHistory(cmd, txns)
		},
	}

	cmd.Flags().StringVarP(&rangeName, "range", "r", "all", "period: all, today, week or month")
	cmd.Flags().StringVarP(&category, "category", "c", "", "only this category")
	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "show at most this many rows (0 = all)")

	return cmd
}

func writeHistory(cmd *cobra.Command, txns []model.Transaction) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)

	fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
		cli.BoldStyle.Render("ID"),
		cli.BoldStyle.Render("Date"),
		cli.BoldStyle.Render("Description"),
		cli.BoldStyle.Render("Category"),
		cli.BoldStyle.Render("Amount"))

	for _, t := range txns {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			cli.SubtleStyle.Render(shortID(t.ID)),
			cli.FormatDate(t.Date),
			t.Description,
			t.Category,
			cli.FormatAmount(t))
	}

	balance := summary.Total(txns).Balance()
	fmt.Fprintf(w, "\t\t\t%s\t%s\n", cli.BoldStyle.Render("Balance"), cli.FormatBalance(balance))
	return w.Flush()
}
