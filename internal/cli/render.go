// Package cli renders budgets for terminal output.
package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/finiq/backend/internal/budget"
)

// Theme colors
var (
	ColorBorder    = lipgloss.Color("#282726")
	ColorText      = lipgloss.Color("#FFFCF0")
	ColorTextMuted = lipgloss.Color("#6F6E69")
	ColorAccent    = lipgloss.Color("#8b5cf6")
	ColorOrange    = lipgloss.Color("#DA702C")
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorText).
			Align(lipgloss.Center)

	valueStyle = lipgloss.NewStyle().
			Foreground(ColorText)

	totalStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorAccent)

	mutedStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted)

	warnStyle = lipgloss.NewStyle().
			Foreground(ColorOrange)
)

// RenderTitle renders a centered title bar in a bordered box.
func RenderTitle(title string) string {
	border := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorder).
		Width(48).
		Align(lipgloss.Center).
		Padding(0, 1)

	return border.Render(titleStyle.Render(title))
}

// RenderLegend renders one line per entry with a swatch in the entry's color,
// followed by the total of all entries.
func RenderLegend(b budget.Breakdown) string {
	width := len("Total")
	for _, e := range b {
		width = max(width, lipgloss.Width(e.Category))
	}

	var sb strings.Builder
	for _, e := range b {
		swatch := lipgloss.NewStyle().Foreground(lipgloss.Color(e.Color)).Render("■")
		fmt.Fprintf(&sb, "  %s %s  %s\n",
			swatch,
			valueStyle.Render(pad(e.Category, width)),
			valueStyle.Render(budget.FormatAmount(e.Amount)),
		)
	}

	fmt.Fprintf(&sb, "    %s  %s\n",
		totalStyle.Render(pad("Total", width)),
		totalStyle.Render(budget.FormatAmount(b.Total())),
	)

	return sb.String()
}

// RenderSummary renders the monthly figures an allocation is based on.
func RenderSummary(s budget.Summary) string {
	rows := []struct {
		label  string
		amount string
	}{
		{"Monthly income", budget.FormatAmount(s.MonthlyIncome)},
		{"Monthly expenses", budget.FormatAmount(s.MonthlyExpenses)},
		{"Monthly loan payment", budget.FormatAmount(s.MonthlyLoanPayment)},
		{"Disposable income", budget.FormatAmount(s.DisposableIncome)},
	}

	var sb strings.Builder
	for _, r := range rows {
		fmt.Fprintf(&sb, "  %s %s\n", mutedStyle.Render(pad(r.label+":", 22)), valueStyle.Render(r.amount))
	}
	return sb.String()
}

// RenderFallback renders the message shown when there is nothing to allocate,
// followed by the budgeting tips.
func RenderFallback(message string, tips []string) string {
	var sb strings.Builder
	sb.WriteString("  ")
	sb.WriteString(warnStyle.Render(message))
	sb.WriteString("\n\n")

	for _, tip := range tips {
		fmt.Fprintf(&sb, "  %s %s\n", mutedStyle.Render("•"), valueStyle.Render(tip))
	}
	return sb.String()
}

func pad(s string, width int) string {
	if w := lipgloss.Width(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}
