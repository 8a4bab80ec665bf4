package summary

import (
	"time"

	"github.com/Veraticus/dompet/internal/model"
)

// CategoryAmount is the summed expense of one category.
type CategoryAmount struct {
	Category string `json:"category"`
	Amount   int64  `json:"amount"`
}

// DayAmount is the summed expense of one calendar day.
type DayAmount struct {
	Date   model.Date `json:"date"`
	Amount int64      `json:"amount"`
}

// CategoryBreakdown sums expenses per category for the given month, in the
// order each category is first seen.
func CategoryBreakdown(txns []model.Transaction, month time.Month, year int) []CategoryAmount {
	out := []CategoryAmount{}
	index := map[string]int{}

	for _, t := range txns {
		if !t.IsExpense() || !t.Date.InMonth(month, year) {
			continue
		}
		i, ok := index[t.Category]
		if !ok {
			i = len(out)
			index[t.Category] = i
			out = append(out, CategoryAmount{Category: t.Category})
		}
		out[i].Amount += t.Amount
	}
	return out
}

// TopCategory returns the entry with the greatest amount. On ties the
// earliest entry wins.
func TopCategory(breakdown []CategoryAmount) (CategoryAmount, bool) {
	if len(breakdown) == 0 {
		return CategoryAmount{}, false
	}
	top := breakdown[0]
	for _, c := range breakdown[1:] {
		if c.Amount > top.Amount {
			top = c
		}
	}
	return top, true
}

// WorstSpendingDay returns the day of the month with the greatest summed
// expense. On ties the day seen first wins.
func WorstSpendingDay(txns []model.Transaction, month time.Month, year int) (DayAmount, bool) {
	var days []DayAmount
	index := map[model.Date]int{}

	for _, t := range txns {
		if !t.IsExpense() || !t.Date.InMonth(month, year) {
			continue
		}
		i, ok := index[t.Date]
		if !ok {
			i = len(days)
			index[t.Date] = i
			days = append(days, DayAmount{Date: t.Date})
		}
		days[i].Amount += t.Amount
	}

	if len(days) == 0 {
		return DayAmount{}, false
	}
	worst := days[0]
	for _, d := range days[1:] {
		if d.Amount > worst.Amount {
			worst = d
		}
	}
	return worst, true
}

// AverageDailySpend divides total by dayOfMonth, rounding half up. A
// non-positive day yields zero.
func AverageDailySpend(total int64, dayOfMonth int) int64 {
	if dayOfMonth <= 0 {
		return 0
	}
	// floor((2*total + days) / (2*days)) is total/days rounded half up.
	n := 2*total + int64(dayOfMonth)
	d := 2 * int64(dayOfMonth)
	q := n / d
	if n%d != 0 && n < 0 {
		q--
	}
	return q
}

// InsightsView is the month-to-date spending analysis.
type InsightsView struct {
	Breakdown    []CategoryAmount `json:"breakdown"`
	Top          CategoryAmount   `json:"top"`
	WorstDay     DayAmount        `json:"worstDay"`
	MonthExpense int64            `json:"monthExpense"`
	AverageDaily int64            `json:"averageDaily"`
	HasTop       bool             `json:"hasTop"`
	HasWorstDay  bool             `json:"hasWorstDay"`
}

// Insights analyzes the calendar month of now.
func Insights(txns []model.Transaction, now time.Time) InsightsView {
	month, year := now.Month(), now.Year()

	view := InsightsView{
		MonthExpense: WindowTotals(txns, now, ThisMonth).Expense,
		Breakdown:    CategoryBreakdown(txns, month, year),
	}
	view.AverageDaily = AverageDailySpend(view.MonthExpense, now.Day())
	view.Top, view.HasTop = TopCategory(view.Breakdown)
	view.WorstDay, view.HasWorstDay = WorstSpendingDay(txns, month, year)
	return view
}
