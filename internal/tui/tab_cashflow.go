package tui

import (
	"fmt"
	"strings"

	"github.com/MuriloHTS/orca/internal/cli"
	"github.com/MuriloHTS/orca/internal/model"
	"github.com/MuriloHTS/orca/internal/tui/components"
	"github.com/MuriloHTS/orca/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"
)

func (a App) renderCashflowTab(cw int) string {
	t := theme.Active
	var b strings.Builder

	if a.cashErr != nil {
		errStyle := lipgloss.NewStyle().Foreground(t.Red).Background(t.Surface)
		b.WriteString(components.ContentCard("Cash Flow", errStyle.Render(a.cashErr.Error()), cw))
		return b.String()
	}

	days := a.cashDays

	revenue := decimal.Zero
	expense := decimal.Zero
	for _, d := range days {
		revenue = revenue.Add(d.Revenue)
		expense = expense.Add(d.Expense)
	}
	endBalance := decimal.Zero
	if len(days) > 0 {
		endBalance = days[len(days)-1].Cumulative
	}

	entryCount := 0
	for _, d := range days {
		if d.Entry != nil {
			entryCount++
		}
	}

	// Row 1: Metric cards
	cards := []struct{ Label, Value, Delta string }{
		{"Month", model.MonthName(a.cashMonth), fmt.Sprintf("%d · j/k to change", a.year)},
		{"Revenue", cli.FormatMoney(revenue), "projected inflow"},
		{"Expenses", cli.FormatMoney(expense), "fixed plus one-offs"},
		{"End Balance", cli.FormatSignedMoney(endBalance), fmt.Sprintf("%d one-off days", entryCount)},
	}
	b.WriteString(components.MetricCardRow(cards, cw))
	b.WriteString("\n")

	// Row 2: Cumulative balance chart
	if len(days) > 0 {
		chartVals := make([]float64, len(days))
		chartLabels := make([]string, len(days))
		for i, d := range days {
			chartVals[i], _ = d.Cumulative.Float64()
			if d.Day%5 == 0 || d.Day == 1 {
				chartLabels[i] = fmt.Sprintf("%d", d.Day)
			}
		}
		chartColor := t.Green
		if endBalance.Sign() < 0 {
			chartColor = t.Red
		}
		chartInnerW := components.CardInnerWidth(cw)
		b.WriteString(components.ContentCard(
			fmt.Sprintf("Cumulative Balance · %s %d", model.MonthName(a.cashMonth), a.year),
			components.BarChart(chartVals, chartLabels, chartColor, chartInnerW, 10),
			cw,
		))
		b.WriteString("\n")
	}

	// Row 3: One-off events in the month
	b.WriteString(a.renderMonthEventsCard(cw))

	return b.String()
}

func (a App) renderMonthEventsCard(outerW int) string {
	t := theme.Active
	innerW := components.CardInnerWidth(outerW)

	dateStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	descStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)

	var body strings.Builder
	found := 0
	for _, d := range a.cashDays {
		if d.Entry == nil {
			continue
		}
		found++
		e := d.Entry

		amtStyle := lipgloss.NewStyle().Foreground(t.Green).Background(t.Surface)
		if e.Kind == model.KindExpense {
			amtStyle = lipgloss.NewStyle().Foreground(t.Red).Background(t.Surface)
		}

		descW := innerW - 8 - 14 - 12
		if descW < 10 {
			descW = 10
		}
		fmt.Fprintf(&body, "%s  %s %s %s\n",
			dateStyle.Render(e.Date.Format("Jan 02")),
			descStyle.Render(fmt.Sprintf("%-*s", descW, truncStr(e.Description, descW))),
			amtStyle.Render(fmt.Sprintf("%12s", cli.FormatSignedMoney(e.Signed()))),
			dimStyle.Render(string(e.Status)))
	}

	if found == 0 {
		body.WriteString(dimStyle.Render("No one-off entries this month. Add one with `orca entry add`."))
	}

	return components.ContentCard("One-off Events", body.String(), outerW)
}
