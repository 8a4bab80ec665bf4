package cli

import (
	"fmt"
	"strings"

	"github.com/Veraticus/dompet/internal/model"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var rupiahPrinter = message.NewPrinter(language.Indonesian)

var shortWeekdays = [7]string{"Min", "Sen", "Sel", "Rab", "Kam", "Jum", "Sab"}

var shortMonths = [12]string{
	"Jan", "Feb", "Mar", "Apr", "Mei", "Jun",
	"Jul", "Agu", "Sep", "Okt", "Nov", "Des",
}

// FormatRupiah renders an amount as "Rp 1.234.567" (or "-Rp 1.234.567").
func FormatRupiah(amount int64) string {
	if amount < 0 {
		return "-Rp " + rupiahPrinter.Sprintf("%d", -amount)
	}
	return "Rp " + rupiahPrinter.Sprintf("%d", amount)
}

// FormatAmount renders a transaction amount with a sign and the color of
// its type.
func FormatAmount(t model.Transaction) string {
	if t.IsIncome() {
		return IncomeStyle.Render("+" + FormatRupiah(t.Amount))
	}
	return ExpenseStyle.Render("-" + FormatRupiah(t.Amount))
}

// FormatBalance colors a balance by its sign.
func FormatBalance(balance int64) string {
	if balance < 0 {
		return ExpenseStyle.Render(FormatRupiah(balance))
	}
	return IncomeStyle.Render(FormatRupiah(balance))
}

// FormatDate renders a day as "Jum, 15 Mar 2024".
func FormatDate(d model.Date) string {
	if d.IsZero() {
		return "-"
	}
	return fmt.Sprintf("%s, %d %s %d",
		shortWeekdays[d.Weekday()], d.Day(), shortMonths[d.Month()-1], d.Year())
}

// RenderBar draws a horizontal bar of width cells scaled by value/limit.
// Non-zero values always get at least one cell.
func RenderBar(value, limit int64, width int, color lipgloss.Color) string {
	if width <= 0 || limit <= 0 || value <= 0 {
		return ""
	}
	cells := int(value * int64(width) / limit)
	if cells == 0 {
		cells = 1
	}
	if cells > width {
		cells = width
	}
	return lipgloss.NewStyle().Foreground(color).Render(strings.Repeat("█", cells))
}
