// Package cli holds the terminal presentation helpers shared by the dompet
// commands: lipgloss styles, Rupiah and date formatting, prompts and
// interrupt handling.
package cli

import (
	"github.com/charmbracelet/lipgloss"
)

// Palette.
var (
	PrimaryColor = lipgloss.Color("#2EC4B6")
	IncomeColor  = lipgloss.Color("#3BB273")
	ExpenseColor = lipgloss.Color("#E4572E")
	mutedColor   = lipgloss.Color("#7A7A7A")
	borderColor  = lipgloss.Color("#3A3A3A")
	noticeColor  = lipgloss.Color("#F3A712")
	hintColor    = lipgloss.Color("#8AC6D0")
)

var (
	// IncomeStyle and ExpenseStyle color amounts by direction.
	IncomeStyle  = lipgloss.NewStyle().Foreground(IncomeColor)
	ExpenseStyle = lipgloss.NewStyle().Foreground(ExpenseColor)

	// InfoStyle is for neutral notices such as empty listings.
	InfoStyle = lipgloss.NewStyle().Foreground(hintColor)

	// SubtleStyle de-emphasizes secondary columns and footers.
	SubtleStyle = lipgloss.NewStyle().Foreground(mutedColor)

	BoldStyle = lipgloss.NewStyle().Bold(true)

	headingStyle = lipgloss.NewStyle().Bold(true).Foreground(PrimaryColor)
	cardStyle    = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(borderColor).
			Padding(0, 1)
)

const (
	SuccessIcon = "✓"
	ErrorIcon   = "✗"
	WarningIcon = "!"
	InfoIcon    = "•"
	WalletIcon  = "👛"
	IncomeIcon  = "⬆"
	ExpenseIcon = "⬇"
	ChartIcon   = "📊"
)

type messageKind int

const (
	successMessage messageKind = iota
	errorMessage
	warningMessage
	infoMessage
)

var messageStyles = map[messageKind]struct {
	icon  string
	style lipgloss.Style
}{
	successMessage: {SuccessIcon, lipgloss.NewStyle().Foreground(IncomeColor)},
	errorMessage:   {ErrorIcon, lipgloss.NewStyle().Foreground(ExpenseColor).Bold(true)},
	warningMessage: {WarningIcon, lipgloss.NewStyle().Foreground(noticeColor)},
	infoMessage:    {InfoIcon, InfoStyle},
}

func renderMessage(kind messageKind, message string) string {
	m := messageStyles[kind]
	return m.style.Render(m.icon + " " + message)
}

// FormatSuccess renders a confirmation line.
func FormatSuccess(message string) string { return renderMessage(successMessage, message) }

// FormatError renders an error line for the user.
func FormatError(message string) string { return renderMessage(errorMessage, message) }

// FormatWarning renders a warning line.
func FormatWarning(message string) string { return renderMessage(warningMessage, message) }

// FormatInfo renders an informational line.
func FormatInfo(message string) string { return renderMessage(infoMessage, message) }

// FormatTitle renders the report heading.
func FormatTitle(title string) string {
	return headingStyle.Render(WalletIcon + " " + title)
}

// FormatPrompt renders a question waiting for input.
func FormatPrompt(prompt string) string {
	return BoldStyle.Render(prompt) + " "
}

// RenderBox draws content in a bordered card with a heading line.
func RenderBox(title, content string) string {
	return cardStyle.Render(headingStyle.Render(title) + "\n" + content)
}
