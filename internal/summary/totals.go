// Package summary derives read-only figures from a transaction list: windowed
// totals, category breakdowns, spending insights and monthly series. No
// function here mutates its input.
package summary

import (
	"fmt"
	"time"

	"github.com/Veraticus/dompet/internal/model"
)

// Window selects a date range relative to a reference instant.
type Window int

const (
	// Today covers records dated on the calendar day of now.
	Today Window = iota
	// LastSevenDays covers records whose UTC midnight is at most seven days
	// before now, and not after it.
	LastSevenDays
	// ThisMonth covers records in the calendar month and year of now.
	ThisMonth
)

const week = 7 * 24 * time.Hour

func (w Window) String() string {
	switch w {
	case Today:
		return "today"
	case LastSevenDays:
		return "week"
	case ThisMonth:
		return "month"
	default:
		return fmt.Sprintf("Window(%d)", int(w))
	}
}

// Contains reports whether t falls inside w at now.
func (w Window) Contains(t model.Transaction, now time.Time) bool {
	switch w {
	case Today:
		return t.Date == model.DateOf(now)
	case LastSevenDays:
		// Raw instant difference, so records from late on day now-7 count
		// only before that time of day.
		d := now.Sub(t.Date.Midnight())
		return d >= 0 && d <= week
	case ThisMonth:
		return t.Date.InMonth(now.Month(), now.Year())
	default:
		return false
	}
}

// Totals is a pair of income and expense sums.
type Totals struct {
	Income  int64 `json:"income"`
	Expense int64 `json:"expense"`
}

// Balance is income minus expense.
func (t Totals) Balance() int64 {
	return t.Income - t.Expense
}

func (t *Totals) add(txn model.Transaction) {
	if txn.IsIncome() {
		t.Income += txn.Amount
	} else {
		t.Expense += txn.Amount
	}
}

// Total sums every transaction by type.
func Total(txns []model.Transaction) Totals {
	var out Totals
	for _, t := range txns {
		out.add(t)
	}
	return out
}

// WindowTotals sums only the transactions inside w at now.
func WindowTotals(txns []model.Transaction, now time.Time, w Window) Totals {
	var out Totals
	for _, t := range txns {
		if w.Contains(t, now) {
			out.add(t)
		}
	}
	return out
}

// DashboardView holds the headline figures.
type DashboardView struct {
	All   Totals `json:"all"`
	Today Totals `json:"today"`
	Week  Totals `json:"week"`
	Month Totals `json:"month"`
}

// Dashboard computes all headline totals at now.
func Dashboard(txns []model.Transaction, now time.Time) DashboardView {
	return DashboardView{
		All:   Total(txns),
		Today: WindowTotals(txns, now, Today),
		Week:  WindowTotals(txns, now, LastSevenDays),
		Month: WindowTotals(txns, now, ThisMonth),
	}
}
