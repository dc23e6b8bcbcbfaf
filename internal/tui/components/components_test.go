package components

import (
	"regexp"
	"strings"
	"testing"

	"github.com/MuriloHTS/orca/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

func init() {
	// Force TrueColor output so ANSI codes are generated in tests
	lipgloss.SetColorProfile(termenv.TrueColor)
	theme.SetActive("flexoki-dark")
}

func TestCardRowMatchesTallestCard(t *testing.T) {
	short := ContentCard("Totals", "one line", 24)
	tall := ContentCard("Months", "Jan\nFeb\nMar\nApr\nMay", 24)

	shortLines := len(strings.Split(short, "\n"))
	tallLines := len(strings.Split(tall, "\n"))
	if shortLines >= tallLines {
		t.Fatalf("setup: short card (%d lines) should be shorter than tall (%d)", shortLines, tallLines)
	}

	joined := CardRow([]string{tall, short})
	lines := strings.Split(joined, "\n")
	if len(lines) != tallLines {
		t.Errorf("joined height = %d lines, want %d (tallest card)", len(lines), tallLines)
	}

	// Padding below the short card must still carry ANSI styling, otherwise
	// the gap renders as unstyled terminal background.
	for i := shortLines; i < len(lines); i++ {
		if !strings.Contains(lines[i], "\x1b[") {
			t.Errorf("line %d below the short card has no ANSI codes", i)
		}
	}
}

func TestLayoutRowSumsExactly(t *testing.T) {
	for _, tt := range []struct{ width, n int }{
		{120, 4}, {121, 4}, {123, 4}, {80, 3}, {7, 2},
	} {
		widths := LayoutRow(tt.width, tt.n)
		if len(widths) != tt.n {
			t.Fatalf("LayoutRow(%d, %d) returned %d widths", tt.width, tt.n, len(widths))
		}
		sum := 0
		for _, w := range widths {
			sum += w
		}
		if sum != tt.width {
			t.Errorf("LayoutRow(%d, %d) sums to %d", tt.width, tt.n, sum)
		}
	}
}

func TestDeltaColor(t *testing.T) {
	th := theme.Active
	if got := deltaColor("+1,500.00"); got != th.Green {
		t.Errorf("positive delta color = %v, want green", got)
	}
	if got := deltaColor("-300.00"); got != th.Red {
		t.Errorf("negative delta color = %v, want red", got)
	}
	if got := deltaColor("6 of 12 months"); got != th.TextDim {
		t.Errorf("unsigned delta color = %v, want dim", got)
	}
}

func TestColorForTarget(t *testing.T) {
	th := theme.Active
	tests := []struct {
		pct  float64
		want lipgloss.Color
	}{
		{1.10, th.Green},
		{1.00, th.Green},
		{0.95, th.Yellow},
		{0.90, th.Yellow},
		{0.60, th.Orange},
		{0.30, th.Red},
	}
	for _, tt := range tests {
		if got := lipgloss.Color(ColorForTarget(tt.pct)); got != tt.want {
			t.Errorf("ColorForTarget(%.2f) = %v, want %v", tt.pct, got, tt.want)
		}
	}
}

var ansiRE = regexp.MustCompile(`\x1b\[[0-9;]*m`)

func TestTabKeys(t *testing.T) {
	if got := TabIdxByKey('c'); got != 1 {
		t.Errorf("TabIdxByKey('c') = %d, want 1", got)
	}
	if got := TabIdxByKey('z'); got != -1 {
		t.Errorf("TabIdxByKey('z') = %d, want -1", got)
	}

	// Inactive tabs render with the shortcut letter bracketed ("[C]ash Flow"),
	// so strip escapes and brackets before checking for the names.
	bar := ansiRE.ReplaceAllString(RenderTabBar(0, 100), "")
	bar = strings.NewReplacer("[", "", "]", "").Replace(bar)
	for _, tab := range Tabs {
		if !strings.Contains(bar, tab.Name) {
			t.Errorf("tab bar missing %q", tab.Name)
		}
	}
}

func TestTabVisualWidth(t *testing.T) {
	overview := Tabs[0]
	// Active tabs render the bare name; inactive ones add the brackets.
	if got := TabVisualWidth(overview, true); got != len(overview.Name) {
		t.Errorf("active width = %d, want %d", got, len(overview.Name))
	}
	if got := TabVisualWidth(overview, false); got != len(overview.Name)+2 {
		t.Errorf("inactive width = %d, want %d", got, len(overview.Name)+2)
	}
}

func TestRenderStatusBar(t *testing.T) {
	bar := RenderStatusBar(100, "Demo Company", 2025, false)
	if !strings.Contains(bar, "Demo Company") {
		t.Error("status bar missing company name")
	}
	if !strings.Contains(bar, "2025") {
		t.Error("status bar missing year")
	}

	refreshing := RenderStatusBar(100, "Demo Company", 2025, true)
	if !strings.Contains(refreshing, "refreshing") {
		t.Error("refreshing status bar missing indicator")
	}
}
