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

func (a App) renderEntriesTab(cw, contentH int) string {
	var b strings.Builder

	totals := a.period.Totals

	// Row 1: Metric cards
	cards := []struct{ Label, Value, Delta string }{
		{"Entries", cli.FormatNumber(int64(a.period.EntryCount)), fmt.Sprintf("year %d", a.year)},
		{"Realized", cli.FormatSignedMoney(totals.RealizedBalance), "net of realized"},
		{"Planned", cli.FormatSignedMoney(totals.PlannedBalance), "net still open"},
		{"Revenue", cli.FormatMoney(totals.RealizedRevenue.Add(totals.PlannedRevenue)), "all entries"},
	}
	b.WriteString(components.MetricCardRow(cards, cw))
	b.WriteString("\n")

	// Row 2: Entry list + category breakdown
	halves := components.LayoutRow(cw, 2)
	listRows := contentH - 10
	if listRows < 5 {
		listRows = 5
	}

	listCard := a.renderEntryListCard(halves[0], listRows)
	catCard := a.renderCategoryCard(halves[1])

	if a.isCompactLayout() {
		b.WriteString(listCard)
		b.WriteString("\n")
		b.WriteString(catCard)
	} else {
		b.WriteString(components.CardRow([]string{listCard, catCard}))
	}

	return b.String()
}

func (a App) renderEntryListCard(outerW, visibleRows int) string {
	t := theme.Active
	innerW := components.CardInnerWidth(outerW)

	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)

	if len(a.entries) == 0 {
		body := dimStyle.Render("No entries yet. Add one with `orca entry add`.")
		return components.ContentCard("Entries", body, outerW)
	}

	// Keep the cursor in view.
	start := 0
	if a.entryCursor >= visibleRows {
		start = a.entryCursor - visibleRows + 1
	}
	end := start + visibleRows
	if end > len(a.entries) {
		end = len(a.entries)
	}

	descW := innerW - 8 - 12 - 4
	if descW < 10 {
		descW = 10
	}

	var body strings.Builder
	for i := start; i < end; i++ {
		e := a.entries[i]
		selected := i == a.entryCursor

		rowBg := t.Surface
		if selected {
			rowBg = t.SurfaceHover
		}

		dateStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(rowBg)
		descStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(rowBg)
		amtColor := t.Green
		if e.Kind == model.KindExpense {
			amtColor = t.Red
		}
		if e.Status == model.StatusCancelled {
			amtColor = t.TextDim
		}
		amtStyle := lipgloss.NewStyle().Foreground(amtColor).Background(rowBg)

		marker := "  "
		if selected {
			marker = lipgloss.NewStyle().Foreground(t.Accent).Background(rowBg).Render("▸ ")
		}

		fmt.Fprintf(&body, "%s%s %s %s\n",
			marker,
			dateStyle.Render(e.Date.Format("Jan 02")),
			descStyle.Render(fmt.Sprintf("%-*s", descW, truncStr(e.Description, descW))),
			amtStyle.Render(fmt.Sprintf("%12s", cli.FormatSignedMoney(e.Signed()))))
	}

	if start > 0 || end < len(a.entries) {
		body.WriteString(dimStyle.Render(fmt.Sprintf("%d-%d of %d", start+1, end, len(a.entries))))
		body.WriteString("\n")
	}

	// Selected entry detail line
	sel := a.entries[a.entryCursor]
	detail := fmt.Sprintf("%s · %s", sel.Category, sel.Status)
	if sel.Note != "" {
		detail += " · " + sel.Note
	}
	body.WriteString(dimStyle.Render(truncStr(detail, innerW)))

	return components.ContentCard("Entries", body.String(), outerW)
}

func (a App) renderCategoryCard(outerW int) string {
	t := theme.Active
	innerW := components.CardInnerWidth(outerW)

	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)

	if len(a.period.ByCategory) == 0 {
		body := dimStyle.Render("No categories to break down.")
		return components.ContentCard("By Category", body, outerW)
	}

	nameStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	amtStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)

	maxAbs := 0.0
	for _, c := range a.period.ByCategory {
		if v, _ := c.Net.Abs().Float64(); v > maxAbs {
			maxAbs = v
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

	limit := 10
	if len(a.period.ByCategory) < limit {
		limit = len(a.period.ByCategory)
	}

	var body strings.Builder
	for _, c := range a.period.ByCategory[:limit] {
		v, _ := c.Net.Abs().Float64()
		barLen := 0
		if maxAbs > 0 {
			barLen = int(v / maxAbs * float64(barMax))
		}
		barColor := t.Green
		if c.Net.Sign() < 0 {
			barColor = t.Red
		}
		bar := lipgloss.NewStyle().Foreground(barColor).Background(t.Surface).
			Render(strings.Repeat("█", barLen))

		name := c.Category
		if name == "" {
			name = "(uncategorized)"
		}
		fmt.Fprintf(&body, "%s %s %s\n",
			nameStyle.Render(fmt.Sprintf("%-*s", nameW, truncStr(name, nameW))),
			amtStyle.Render(fmt.Sprintf("%*s", amtW, cli.FormatSignedMoney(c.Net))),
			bar)
	}

	return components.ContentCard("By Category", body.String(), outerW)
}
