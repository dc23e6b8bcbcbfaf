package tui

import (
	"strings"
	"testing"
	"time"

	"github.com/MuriloHTS/orca/internal/model"
	"github.com/MuriloHTS/orca/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/shopspring/decimal"
)

func init() {
	lipgloss.SetColorProfile(termenv.TrueColor)
	theme.SetActive("flexoki-dark")
}

func dec(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	if err != nil {
		t.Fatalf("bad decimal %q: %v", s, err)
	}
	return d
}

func apply(t *testing.T, a App, msg tea.Msg) App {
	t.Helper()
	m, _ := a.Update(msg)
	next, ok := m.(App)
	if !ok {
		t.Fatalf("Update returned %T, want App", m)
	}
	return next
}

func key(k string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
}

// loadedApp builds an app sized for a full layout with a small March-heavy
// dataset already loaded.
func loadedApp(t *testing.T) App {
	t.Helper()

	a := NewApp("", "Acme", 2025)
	a.cashMonth = 3

	a = apply(t, a, tea.WindowSizeMsg{Width: 130, Height: 40})
	a = apply(t, a, DataLoadedMsg{
		Company: model.Company{ID: "c1", Name: "Acme", Active: true},
		Premise: &model.Premise{CompanyID: "c1", Year: 2025, AnnualRevenue: dec(t, "240000")},
		Actuals: []model.MonthlyActual{
			{Year: 2025, Month: 1, Amount: dec(t, "21000")},
			{Year: 2025, Month: 2, Amount: dec(t, "18500")},
		},
		Entries: []model.Entry{
			{
				ID: "e1", CompanyID: "c1", Kind: model.KindExpense,
				Date:        time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
				Description: "Office rent", Amount: dec(t, "1800"),
				Category: "rent", Status: model.StatusRealized,
			},
			{
				ID: "e2", CompanyID: "c1", Kind: model.KindRevenue,
				Date:        time.Date(2025, 3, 21, 0, 0, 0, 0, time.UTC),
				Description: "Consulting invoice", Amount: dec(t, "5000"),
				Category: "services", Status: model.StatusPlanned,
			},
		},
		Expenses: []model.FixedExpense{
			{ID: "x1", CompanyID: "c1", Name: "Hosting", MonthlyAmount: dec(t, "200"), Active: true},
		},
	})

	if !a.loaded {
		t.Fatal("app not loaded after DataLoadedMsg")
	}
	return a
}

func TestViewRendersEachTab(t *testing.T) {
	a := loadedApp(t)

	overview := a.View()
	if !strings.Contains(overview, "Monthly Revenue") {
		t.Error("overview tab missing revenue chart card")
	}

	a = apply(t, a, key("c"))
	if a.activeTab != 1 {
		t.Fatalf("activeTab = %d after 'c', want 1", a.activeTab)
	}
	cashflow := a.View()
	if !strings.Contains(cashflow, "One-off Events") {
		t.Error("cashflow tab missing events card")
	}
	if !strings.Contains(cashflow, "Office rent") {
		t.Error("cashflow tab missing March entry")
	}

	a = apply(t, a, key("e"))
	if a.activeTab != 2 {
		t.Fatalf("activeTab = %d after 'e', want 2", a.activeTab)
	}
	entries := a.View()
	if !strings.Contains(entries, "Office rent") {
		t.Error("entries tab missing entry list row")
	}
	if !strings.Contains(entries, "By Category") {
		t.Error("entries tab missing category card")
	}
}

func TestTabCycling(t *testing.T) {
	a := loadedApp(t)

	a = apply(t, a, key("e"))
	a = apply(t, a, tea.KeyMsg{Type: tea.KeyTab})
	if a.activeTab != 0 {
		t.Errorf("activeTab = %d after tab from last, want wrap to 0", a.activeTab)
	}
	a = apply(t, a, tea.KeyMsg{Type: tea.KeyLeft})
	if a.activeTab != 2 {
		t.Errorf("activeTab = %d after left from first, want wrap to 2", a.activeTab)
	}
}

func TestCashMonthNavigation(t *testing.T) {
	a := loadedApp(t)
	a = apply(t, a, key("c"))

	a = apply(t, a, key("h"))
	if a.cashMonth != 2 {
		t.Fatalf("cashMonth = %d after 'h', want 2", a.cashMonth)
	}
	if len(a.cashDays) != 28 {
		t.Errorf("February 2025 cash days = %d, want 28", len(a.cashDays))
	}

	a = apply(t, a, key("l"))
	if a.cashMonth != 3 {
		t.Fatalf("cashMonth = %d after 'l', want 3", a.cashMonth)
	}
	if len(a.cashDays) != 31 {
		t.Errorf("March cash days = %d, want 31", len(a.cashDays))
	}
}

func TestViewTooNarrow(t *testing.T) {
	a := loadedApp(t)
	a = apply(t, a, tea.WindowSizeMsg{Width: 60, Height: 20})

	if !strings.Contains(a.View(), "Terminal too narrow") {
		t.Error("narrow terminal view missing warning")
	}
}
