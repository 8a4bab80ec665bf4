package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/Veraticus/dompet/internal/cli"
	"github.com/Veraticus/dompet/internal/summary"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

const barWidth = 24

func (a *app) summaryCmd() *cobra.Command {
	var months int

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Show totals, spending insights and the monthly trend",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, cleanup, err := a.openLedger(cmd.Context())
			if err != nil {
				return err
			}
			defer cleanup()

			if !cmd.Flags().Changed("months") {
				months = a.cfg.SummaryMonths
			}

			txns := store.Transactions()
			now := a.now()
			out := cmd.OutOrStdout()

			fmt.Fprintln(out, cli.FormatTitle("Dompet"))
			writeDashboard(out, summary.Dashboard(txns, now))
			writeWeek(out, summary.WeeklySummary(txns, now))
			writeInsights(out, summary.Insights(txns, now))
			writeSeries(out, summary.MonthlySeries(txns, now, months))
			return nil
		},
	}

	cmd.Flags().IntVarP(&months, "months", "m", summary.DefaultMonths, "months in the trend")

	return cmd
}

func writeDashboard(w io.Writer, d summary.DashboardView) {
	rows := []struct {
		label  string
		totals summary.Totals
	}{
		{"Today", d.Today},
		{"Last 7 days", d.Week},
		{"This month", d.Month},
		{"All time", d.All},
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%-12s %16s %16s %16s\n", "", "Income", "Expense", "Balance")
	for _, r := range rows {
		fmt.Fprintf(&b, "%-12s %16s %16s %16s\n", r.label,
			cli.FormatRupiah(r.totals.Income),
			cli.FormatRupiah(r.totals.Expense),
			cli.FormatRupiah(r.totals.Balance()))
	}
	fmt.Fprintln(w, cli.RenderBox("Totals", strings.TrimRight(b.String(), "\n")))
}

func writeWeek(w io.Writer, v summary.WeekView) {
	top := "-"
	if v.HasTop {
		top = fmt.Sprintf("%s (%s)", v.Top.Category, cli.FormatRupiah(v.Top.Amount))
	}

	lines := []string{
		fmt.Sprintf("Since %s", cli.FormatDate(v.Start)),
		fmt.Sprintf("%s Income   %s", cli.IncomeIcon, cli.IncomeStyle.Render(cli.FormatRupiah(v.Income))),
		fmt.Sprintf("%s Expense  %s", cli.ExpenseIcon, cli.ExpenseStyle.Render(cli.FormatRupiah(v.Expense))),
		fmt.Sprintf("  Balance  %s", cli.FormatBalance(v.Balance())),
		fmt.Sprintf("  Top      %s", top),
	}
	fmt.Fprintln(w, cli.RenderBox("This week", strings.Join(lines, "\n")))
}

func writeInsights(w io.Writer, v summary.InsightsView) {
	top, worst := "-", "-"
	if v.HasTop {
		top = fmt.Sprintf("%s (%s)", v.Top.Category, cli.FormatRupiah(v.Top.Amount))
	}
	if v.HasWorstDay {
		worst = fmt.Sprintf("%s (%s)", cli.FormatDate(v.WorstDay.Date), cli.FormatRupiah(v.WorstDay.Amount))
	}

	lines := []string{
		fmt.Sprintf("Spent this month   %s", cli.FormatRupiah(v.MonthExpense)),
		fmt.Sprintf("Average per day    %s", cli.FormatRupiah(v.AverageDaily)),
		fmt.Sprintf("Top category       %s", top),
		fmt.Sprintf("Most expensive day %s", worst),
	}

	var limit int64
	for _, c := range v.Breakdown {
		limit = max(limit, c.Amount)
	}
	if len(v.Breakdown) > 0 {
		lines = append(lines, "")
	}
	for _, c := range v.Breakdown {
		lines = append(lines, fmt.Sprintf("%-22s %s %s", c.Category,
			pad(cli.RenderBar(c.Amount, limit, barWidth, cli.PrimaryColor)), cli.FormatRupiah(c.Amount)))
	}

	fmt.Fprintln(w, cli.RenderBox(cli.ChartIcon+" Insights", strings.Join(lines, "\n")))
}

func writeSeries(w io.Writer, points []summary.MonthPoint) {
	var limit int64
	for _, p := range points {
		limit = max(limit, p.Income, p.Expense)
	}

	lines := make([]string, 0, len(points)*2)
	for _, p := range points {
		lines = append(lines,
			fmt.Sprintf("%-6s %s %s", p.Label, pad(cli.RenderBar(p.Income, limit, barWidth, cli.IncomeColor)), cli.FormatRupiah(p.Income)),
			fmt.Sprintf("%-6s %s %s", "", pad(cli.RenderBar(p.Expense, limit, barWidth, cli.ExpenseColor)), cli.FormatRupiah(p.Expense)))
	}
	fmt.Fprintln(w, cli.RenderBox("Monthly trend", strings.Join(lines, "\n")))
}

// pad right-fills a rendered bar to barWidth visible cells.
func pad(bar string) string {
	if gap := barWidth - lipgloss.Width(bar); gap > 0 {
		return bar + strings.Repeat(" ", gap)
	}
	return bar
}
