package tui

import (
	"fmt"
	"strings"

	"github.com/MuriloHTS/orca/internal/cli"
	"github.com/MuriloHTS/orca/internal/model"
	"github.com/MuriloHTS/orca/internal/tui/components"
	"github.com/MuriloHTS/orca/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a App) renderOverviewTab(cw int) string {
	t := theme.Active
	sum := a.summary
	var b strings.Builder

	// Row 1: Metric cards
	realizedDelta := cli.FormatPercent(sum.PercentRealized) + " of plan"
	if sum.MonthsReported == 0 {
		realizedDelta = "no actuals yet"
	}

	monthsDelta := ""
	if sum.MonthsReported > 0 {
		monthsDelta = fmt.Sprintf("best %s, worst %s",
			model.MonthName(sum.BestMonth)[:3], model.MonthName(sum.WorstMonth)[:3])
	}

	cards := []struct{ Label, Value, Delta string }{
		{"Planned", cli.FormatMoney(sum.TotalPlanned), fmt.Sprintf("year %d", sum.Year)},
		{"Realized", cli.FormatMoney(sum.TotalRealized), realizedDelta},
		{"Variance", cli.FormatSignedMoney(sum.Variance), "realized vs plan"},
		{"Months", cli.FormatNumber(int64(sum.MonthsReported)), monthsDelta},
	}
	b.WriteString(components.MetricCardRow(cards, cw))
	b.WriteString("\n")

	// Row 2: Monthly realized revenue chart
	if len(a.months) > 0 {
		chartVals := make([]float64, len(a.months))
		chartLabels := make([]string, len(a.months))
		for i, m := range a.months {
			v := m.Realized
			if m.Status == model.StatusPending {
				v = m.Planned
			}
			chartVals[i], _ = v.Float64()
			chartLabels[i] = model.MonthName(m.Month)[:3]
		}
		chartInnerW := components.CardInnerWidth(cw)
		b.WriteString(components.ContentCard(
			fmt.Sprintf("Monthly Revenue %d (plan shown for pending months)", sum.Year),
			components.BarChart(chartVals, chartLabels, t.Blue, chartInnerW, 10),
			cw,
		))
		b.WriteString("\n")
	}

	// Row 3: Target attainment + fixed expenses
	halves := components.LayoutRow(cw, 2)

	targetInnerW := components.CardInnerWidth(halves[0])
	var targetBody strings.Builder
	for _, m := range a.months {
		if m.Status == model.StatusPending {
			continue
		}
		pct := 0.0
		if m.Planned.Sign() > 0 {
			pct, _ = m.Realized.Div(m.Planned).Float64()
		}
		barW := targetInnerW - 11 - 6
		if barW < 4 {
			barW = 4
		}
		targetBody.WriteString(components.TargetBar(model.MonthName(m.Month)[:3], pct, 4, barW))
		targetBody.WriteString("\n")
	}
	if targetBody.Len() == 0 {
		targetBody.WriteString(lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface).
			Render("No reported months. Record actuals with `orca actual set`."))
	}
	targetCard := components.ContentCard("Target Attainment", targetBody.String(), halves[0])

	expenseCard := a.renderExpenseCard(halves[1])

	if a.isCompactLayout() {
		b.WriteString(targetCard)
		b.WriteString("\n")
		b.WriteString(expenseCard)
	} else {
		b.WriteString(components.CardRow([]string{targetCard, expenseCard}))
	}

	return b.String()
}

func (a App) renderExpenseCard(outerW int) string {
	t := theme.Active
	innerW := components.CardInnerWidth(outerW)

	nameStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)
	amtStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	barStyle := lipgloss.NewStyle().Foreground(t.Orange).Background(t.Surface)

	var active []model.FixedExpense
	for _, e := range a.expenses {
		if e.Active {
			active = append(active, e)
		}
	}

	if len(active) == 0 {
		body := dimStyle.Render("No fixed expenses. Add some with `orca expense add`.")
		return components.ContentCard("Fixed Expenses", body, outerW)
	}

	maxAmt := 0.0
	for _, e := range active {
		if v, _ := e.MonthlyAmount.Float64(); v > maxAmt {
			maxAmt = v
		}
	}

	nameW := innerW / 3
	if nameW < 10 {
		nameW = 10
	}
	amtW := 12
	barMax := innerW - nameW - amtW - 2
	if barMax < 1 {
		barMax = 1
	}

	limit := 8
	if len(active) < limit {
		limit = len(active)
	}

	var body strings.Builder
	for _, e := range active[:limit] {
		v, _ := e.MonthlyAmount.Float64()
		barLen := 0
		if maxAmt > 0 {
			barLen = int(v / maxAmt * float64(barMax))
		}
		fmt.Fprintf(&body, "%s %s %s\n",
			nameStyle.Render(fmt.Sprintf("%-*s", nameW, truncStr(e.Name, nameW))),
			amtStyle.Render(fmt.Sprintf("%*s", amtW, cli.FormatMoney(e.MonthlyAmount))),
			barStyle.Render(strings.Repeat("█", barLen)))
	}
	if len(active) > limit {
		body.WriteString(dimStyle.Render(fmt.Sprintf("… and %d more", len(active)-limit)))
		body.WriteString("\n")
	}

	total := model.SumActiveExpenses(a.expenses)
	body.WriteString(dimStyle.Render(strings.Repeat("─", innerW)))
	body.WriteString("\n")
	fmt.Fprintf(&body, "%s %s",
		nameStyle.Render(fmt.Sprintf("%-*s", nameW, "Total / month")),
		amtStyle.Render(fmt.Sprintf("%*s", amtW, cli.FormatMoney(total))))

	return components.ContentCard("Fixed Expenses", body.String(), outerW)
}
