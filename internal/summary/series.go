package summary

import (
	"fmt"
	"time"

	"github.com/Veraticus/dompet/internal/model"
)

// DefaultMonths is the series length used when none is given.
const DefaultMonths = 6

var shortMonths = [12]string{
	"Jan", "Feb", "Mar", "Apr", "Mei", "Jun",
	"Jul", "Agu", "Sep", "Okt", "Nov", "Des",
}

// MonthLabel formats a month as "Mei 24".
func MonthLabel(month time.Month, year int) string {
	return fmt.Sprintf("%s %02d", shortMonths[month-1], year%100)
}

// MonthPoint is one month of the trailing series.
type MonthPoint struct {
	Label   string     `json:"label"`
	Month   time.Month `json:"month"`
	Year    int        `json:"year"`
	Income  int64      `json:"income"`
	Expense int64      `json:"expense"`
	Balance int64      `json:"balance"`
}

// MonthlySeries returns income and expense for the n calendar months ending
// with the month of now, oldest first.
func MonthlySeries(txns []model.Transaction, now time.Time, n int) []MonthPoint {
	if n <= 0 {
		n = DefaultMonths
	}

	// Anchor on the first so AddDate never overflows into the next month.
	anchor := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	points := make([]MonthPoint, n)
	for i := range points {
		m := anchor.AddDate(0, i-(n-1), 0)
		points[i] = MonthPoint{
			Label: MonthLabel(m.Month(), m.Year()),
			Month: m.Month(),
			Year:  m.Year(),
		}
	}

	for _, t := range txns {
		for i := range points {
			p := &points[i]
			if !t.Date.InMonth(p.Month, p.Year) {
				continue
			}
			if t.IsIncome() {
				p.Income += t.Amount
			} else {
				p.Expense += t.Amount
			}
			break
		}
	}

	for i := range points {
		points[i].Balance = points[i].Income - points[i].Expense
	}
	return points
}

// WeekView summarizes the trailing week.
type WeekView struct {
	Totals
	Start  model.Date     `json:"start"`
	Top    CategoryAmount `json:"top"`
	HasTop bool           `json:"hasTop"`
}

// WeeklySummary covers records whose UTC midnight lies between now minus
// six days (same time of day) and now, inclusive.
func WeeklySummary(txns []model.Transaction, now time.Time) WeekView {
	start := now.AddDate(0, 0, -6)
	view := WeekView{Start: model.DateOf(start)}

	var breakdown []CategoryAmount
	index := map[string]int{}
	for _, t := range txns {
		day := t.Date.Midnight()
		if day.Before(start) || day.After(now) {
			continue
		}
		view.add(t)
		if !t.IsExpense() {
			continue
		}
		i, ok := index[t.Category]
		if !ok {
			i = len(breakdown)
			index[t.Category] = i
			breakdown = append(breakdown, CategoryAmount{Category: t.Category})
		}
		breakdown[i].Amount += t.Amount
	}

	view.Top, view.HasTop = TopCategory(breakdown)
	return view
}
