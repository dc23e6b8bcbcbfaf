// Package tui provides the interactive Bubble Tea dashboard for orca.
package tui

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/MuriloHTS/orca/internal/budget"
	"github.com/MuriloHTS/orca/internal/config"
	"github.com/MuriloHTS/orca/internal/model"
	"github.com/MuriloHTS/orca/internal/store"
	"github.com/MuriloHTS/orca/internal/tui/components"
	"github.com/MuriloHTS/orca/internal/tui/theme"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

var errNoCompanies = errors.New("no companies registered yet")

// DataLoadedMsg is sent when the initial store load finishes.
type DataLoadedMsg struct {
	Company  model.Company
	Premise  *model.Premise
	Actuals  []model.MonthlyActual
	Entries  []model.Entry
	Expenses []model.FixedExpense
	Err      error
	LoadTime time.Duration
}

// RefreshDataMsg is sent when a background data refresh completes.
type RefreshDataMsg struct {
	Loaded DataLoadedMsg
}

// App is the root Bubble Tea model.
type App struct {
	// Data
	company  model.Company
	premise  *model.Premise
	actuals  []model.MonthlyActual
	entries  []model.Entry
	expenses []model.FixedExpense
	loaded   bool
	loadErr  error
	loadTime time.Duration

	// Pre-computed views of the data
	months  []model.MonthlyReconciliation
	summary model.YearSummary
	period  model.PeriodSummary

	// Cash-flow tab state
	cashMonth int
	cashDays  []model.DailyCashFlow
	cashErr   error

	// Entries tab state
	entryCursor int

	// UI state
	width      int
	height     int
	activeTab  int
	showHelp   bool
	refreshing bool

	// First-run setup wizard
	needSetup bool
	setupForm *huh.Form
	setupVals setupValues

	spinner spinner.Model

	// Load parameters
	dbPath      string
	companyName string
	year        int
}

const (
	minTerminalWidth = 80
	compactWidth     = 120
	maxContentWidth  = 180

	minContentHeight = 5 // minimum content area height
)

// NewApp creates a new TUI app model.
func NewApp(dbPath, companyName string, year int) App {
	if companyName == "" {
		cfg, _ := config.Load()
		companyName = cfg.General.DefaultCompany
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#3AA99F")).Background(theme.Active.Surface)

	return App{
		dbPath:      dbPath,
		companyName: companyName,
		year:        year,
		cashMonth:   int(time.Now().Month()),
		spinner:     sp,
	}
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return tea.Batch(
		tea.EnableMouseCellMotion,
		loadDataCmd(a.dbPath, a.companyName, a.year),
		a.spinner.Tick,
	)
}

func (a *App) recompute() {
	a.months, a.summary = budget.Reconcile(a.premise, a.actuals)
	if a.summary.Year == 0 {
		a.summary.Year = a.year
	}

	a.period, _ = budget.SummarizePeriod(a.entries, a.year, 1, 12)

	a.recomputeCashflow()

	if a.entryCursor >= len(a.entries) {
		a.entryCursor = len(a.entries) - 1
	}
	if a.entryCursor < 0 {
		a.entryCursor = 0
	}
}

func (a *App) recomputeCashflow() {
	monthly := budget.Allocate(a.premise, a.cashMonth)
	expense := model.SumActiveExpenses(a.expenses)

	var monthEntries []model.Entry
	for _, e := range budget.DropCancelled(a.entries) {
		if e.Date.Year() == a.year && int(e.Date.Month()) == a.cashMonth {
			monthEntries = append(monthEntries, e)
		}
	}

	a.cashDays, a.cashErr = budget.SynthesizeMonth(a.year, a.cashMonth, monthly, expense, monthEntries)
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		if a.setupForm != nil {
			a.setupForm = a.setupForm.WithWidth(msg.Width).WithHeight(msg.Height)
		}
		return a, nil

	case tea.MouseMsg:
		if !a.loaded || a.showHelp || (a.needSetup && a.setupForm != nil) {
			return a, nil
		}

		switch msg.Button {
		case tea.MouseButtonWheelUp:
			if a.activeTab == 1 && a.cashMonth > 1 {
				a.cashMonth--
				a.recomputeCashflow()
			}
			if a.activeTab == 2 && a.entryCursor > 0 {
				a.entryCursor--
			}
			return a, nil

		case tea.MouseButtonWheelDown:
			if a.activeTab == 1 && a.cashMonth < 12 {
				a.cashMonth++
				a.recomputeCashflow()
			}
			if a.activeTab == 2 && a.entryCursor < len(a.entries)-1 {
				a.entryCursor++
			}
			return a, nil

		case tea.MouseButtonLeft:
			// Tab bar occupies the first line
			if msg.Y == 0 {
				if tab := a.tabAtX(msg.X); tab >= 0 && tab < len(components.Tabs) {
					a.activeTab = tab
				}
			}
			return a, nil
		}
		return a, nil

	case tea.KeyMsg:
		key := msg.String()

		if key == "ctrl+c" {
			return a, tea.Quit
		}

		if a.needSetup && a.setupForm != nil {
			return a.updateSetupForm(msg)
		}

		if !a.loaded {
			return a, nil
		}

		if key == "?" {
			a.showHelp = !a.showHelp
			return a, nil
		}

		if a.showHelp {
			a.showHelp = false
			return a, nil
		}

		if key == "q" {
			return a, tea.Quit
		}

		if key == "r" && !a.refreshing {
			a.refreshing = true
			return a, refreshDataCmd(a.dbPath, a.companyName, a.year)
		}

		// Cash-flow tab: month navigation
		if a.activeTab == 1 {
			switch key {
			case "h", "j", "down":
				if a.cashMonth > 1 {
					a.cashMonth--
					a.recomputeCashflow()
				}
				return a, nil
			case "l", "k", "up":
				if a.cashMonth < 12 {
					a.cashMonth++
					a.recomputeCashflow()
				}
				return a, nil
			}
		}

		// Entries tab: list navigation
		if a.activeTab == 2 {
			switch key {
			case "j", "down":
				if a.entryCursor < len(a.entries)-1 {
					a.entryCursor++
				}
				return a, nil
			case "k", "up":
				if a.entryCursor > 0 {
					a.entryCursor--
				}
				return a, nil
			case "g":
				a.entryCursor = 0
				return a, nil
			case "G":
				a.entryCursor = len(a.entries) - 1
				if a.entryCursor < 0 {
					a.entryCursor = 0
				}
				return a, nil
			}
		}

		// Tab navigation
		switch key {
		case "o":
			a.activeTab = 0
		case "c":
			a.activeTab = 1
		case "e":
			a.activeTab = 2
		case "left":
			a.activeTab = (a.activeTab - 1 + len(components.Tabs)) % len(components.Tabs)
		case "right", "tab":
			a.activeTab = (a.activeTab + 1) % len(components.Tabs)
		}
		return a, nil

	case DataLoadedMsg:
		a.company = msg.Company
		a.premise = msg.Premise
		a.actuals = msg.Actuals
		a.entries = msg.Entries
		a.expenses = msg.Expenses
		a.loadErr = msg.Err
		a.loadTime = msg.LoadTime
		a.loaded = true
		a.recompute()

		// Empty database: walk through first-run setup instead of erroring.
		if errors.Is(msg.Err, errNoCompanies) {
			a.needSetup = true
			a.setupForm = newSetupForm(&a.setupVals)
			if a.width > 0 {
				a.setupForm = a.setupForm.WithWidth(a.width).WithHeight(a.height)
			}
			return a, a.setupForm.Init()
		}
		return a, nil

	case RefreshDataMsg:
		a.refreshing = false
		if msg.Loaded.Err == nil {
			a.company = msg.Loaded.Company
			a.premise = msg.Loaded.Premise
			a.actuals = msg.Loaded.Actuals
			a.entries = msg.Loaded.Entries
			a.expenses = msg.Loaded.Expenses
			a.loadErr = nil
			a.recompute()
		}
		return a, nil

	case spinner.TickMsg:
		if !a.loaded {
			var cmd tea.Cmd
			a.spinner, cmd = a.spinner.Update(msg)
			return a, cmd
		}
		return a, nil
	}

	// Forward unhandled messages to the setup form (cursor blinks, etc.)
	if a.needSetup && a.setupForm != nil {
		return a.updateSetupForm(msg)
	}

	return a, nil
}

func (a App) updateSetupForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := a.setupForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.setupForm = f
	}

	if a.setupForm.State == huh.StateCompleted {
		vals := a.setupVals
		a.needSetup = false
		a.setupForm = nil
		if err := applySetup(a.dbPath, vals); err != nil {
			a.loadErr = err
			return a, nil
		}
		a.companyName = vals.CompanyName
		if y, err := strconv.Atoi(vals.YearStr); err == nil {
			a.year = y
		}
		a.loaded = false
		a.loadErr = nil
		return a, tea.Batch(
			loadDataCmd(a.dbPath, a.companyName, a.year),
			a.spinner.Tick,
		)
	}

	if a.setupForm.State == huh.StateAborted {
		return a, tea.Quit
	}

	return a, cmd
}

func (a App) contentWidth() int {
	cw := a.width
	if cw > maxContentWidth {
		cw = maxContentWidth
	}
	return cw
}

func (a App) isCompactLayout() bool {
	return a.contentWidth() < compactWidth
}

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}

	if a.width < minTerminalWidth {
		return a.viewTooNarrow()
	}

	if !a.loaded {
		return a.viewLoading()
	}

	// First-run setup wizard
	if a.needSetup && a.setupForm != nil {
		return a.setupForm.View()
	}

	if a.loadErr != nil {
		return a.viewLoadError()
	}

	if a.showHelp {
		return a.viewHelp()
	}

	return a.viewMain()
}

func (a App) viewTooNarrow() string {
	h := a.height
	if h < 5 {
		h = 5
	}

	msg := fmt.Sprintf(
		"\n  Terminal too narrow (%d cols)\n\n  orca needs at least %d columns.\n",
		a.width,
		minTerminalWidth,
	)

	return padHeight(truncateHeight(msg, h), h)
}

func (a App) viewLoading() string {
	t := theme.Active

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Background(t.Surface).
		Padding(2, 4)

	logoStyle := lipgloss.NewStyle().
		Foreground(t.AccentBright).
		Background(t.Surface).
		Bold(true)

	subtitleStyle := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Background(t.Surface)

	var b strings.Builder
	b.WriteString(logoStyle.Render("◈ orca"))
	b.WriteString(subtitleStyle.Render(" · Budget & Cash Flow"))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface).Render(a.spinner.View()))
	b.WriteString(subtitleStyle.Render(" Loading budget data..."))

	card := cardStyle.Render(b.String())

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, card,
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) viewLoadError() string {
	t := theme.Active

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Red).
		Background(t.Surface).
		Padding(1, 3)

	errStyle := lipgloss.NewStyle().Foreground(t.Red).Background(t.Surface).Bold(true)
	hintStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)

	body := errStyle.Render("Could not load budget data") + "\n\n" +
		hintStyle.Render(a.loadErr.Error()) + "\n\n" +
		hintStyle.Render("Run `orca setup` or `orca seed`, then press r to retry.")

	card := cardStyle.Render(body)
	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, card,
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) viewHelp() string {
	t := theme.Active

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Background(t.Surface).
		Padding(1, 3)

	titleStyle := lipgloss.NewStyle().
		Foreground(t.AccentBright).
		Background(t.Surface).
		Bold(true)

	sectionStyle := lipgloss.NewStyle().
		Foreground(t.Accent).
		Background(t.Surface).
		Bold(true)

	keyStyle := lipgloss.NewStyle().
		Foreground(t.Cyan).
		Background(t.Surface).
		Bold(true)

	descStyle := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Background(t.Surface)

	dimStyle := lipgloss.NewStyle().
		Foreground(t.TextDim).
		Background(t.Surface)

	var b strings.Builder
	b.WriteString(titleStyle.Render("◈ Keyboard Shortcuts"))
	b.WriteString("\n\n")

	b.WriteString(sectionStyle.Render("Navigation"))
	b.WriteString("\n")
	navBindings := []struct{ key, desc string }{
		{"o c e", "Jump to tab"},
		{"← →", "Previous / Next tab"},
		{"j k", "Previous / Next month, navigate entries"},
		{"g G", "First / Last entry"},
	}
	for _, bind := range navBindings {
		fmt.Fprintf(&b, "  %s  %s\n",
			keyStyle.Render(fmt.Sprintf("%-10s", bind.key)),
			descStyle.Render(bind.desc))
	}

	b.WriteString("\n")
	b.WriteString(sectionStyle.Render("Actions"))
	b.WriteString("\n")
	actionBindings := []struct{ key, desc string }{
		{"r", "Refresh data"},
		{"?", "Toggle help"},
		{"q", "Quit"},
	}
	for _, bind := range actionBindings {
		fmt.Fprintf(&b, "  %s  %s\n",
			keyStyle.Render(fmt.Sprintf("%-10s", bind.key)),
			descStyle.Render(bind.desc))
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Press any key to close"))

	card := cardStyle.Render(b.String())

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, card,
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) viewMain() string {
	t := theme.Active
	w := a.width
	cw := a.contentWidth()
	h := a.height

	header := components.RenderTabBar(a.activeTab, w)

	statusBar := components.RenderStatusBar(w, a.company.Name, a.year, a.refreshing)

	headerH := lipgloss.Height(header)
	statusH := lipgloss.Height(statusBar)
	contentH := h - headerH - statusH
	if contentH < minContentHeight {
		contentH = minContentHeight
	}

	var content string
	switch a.activeTab {
	case 0:
		content = a.renderOverviewTab(cw)
	case 1:
		content = a.renderCashflowTab(cw)
	case 2:
		content = a.renderEntriesTab(cw, contentH)
	}

	content = padHeight(truncateHeight(content, contentH), contentH)
	content = fillLinesWithBackground(content, cw, t.Background)
	content = lipgloss.Place(w, contentH, lipgloss.Center, lipgloss.Top, content,
		lipgloss.WithWhitespaceBackground(t.Background))

	output := lipgloss.JoinVertical(lipgloss.Left, header, content, statusBar)

	return lipgloss.Place(w, h, lipgloss.Left, lipgloss.Top, output,
		lipgloss.WithWhitespaceBackground(t.Background))
}

// ─── Data loading ───────────────────────────────────────────────

func loadBudgetData(dbPath, companyName string, year int) DataLoadedMsg {
	start := time.Now()
	msg := DataLoadedMsg{}

	st, err := store.Open(dbPath)
	if err != nil {
		msg.Err = err
		msg.LoadTime = time.Since(start)
		return msg
	}
	defer func() { _ = st.Close() }()

	var company model.Company
	if companyName != "" {
		company, err = st.FindCompanyByName(companyName)
	} else {
		companies, listErr := st.ListCompanies()
		if listErr != nil {
			err = listErr
		} else {
			var active []model.Company
			for _, c := range companies {
				if c.Active {
					active = append(active, c)
				}
			}
			switch len(active) {
			case 1:
				company = active[0]
			case 0:
				err = errNoCompanies
			default:
				err = errors.New("multiple companies found, start with --company")
			}
		}
	}
	if err != nil {
		msg.Err = err
		msg.LoadTime = time.Since(start)
		return msg
	}
	msg.Company = company

	premise, err := st.GetPremise(company.ID, year)
	if err == nil {
		msg.Premise = &premise
	} else if !errors.Is(err, store.ErrNotFound) {
		msg.Err = err
		msg.LoadTime = time.Since(start)
		return msg
	}

	if msg.Actuals, err = st.ListActuals(company.ID, year); err != nil {
		msg.Err = err
	} else if msg.Entries, err = st.ListEntriesByYear(company.ID, year); err != nil {
		msg.Err = err
	} else if msg.Expenses, err = st.ListExpenses(company.ID); err != nil {
		msg.Err = err
	}

	msg.LoadTime = time.Since(start)
	return msg
}

func loadDataCmd(dbPath, companyName string, year int) tea.Cmd {
	return func() tea.Msg {
		return loadBudgetData(dbPath, companyName, year)
	}
}

func refreshDataCmd(dbPath, companyName string, year int) tea.Cmd {
	return func() tea.Msg {
		return RefreshDataMsg{Loaded: loadBudgetData(dbPath, companyName, year)}
	}
}

// ─── Helpers ────────────────────────────────────────────────────

func truncStr(s string, limit int) string {
	if limit <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit-1]) + "…"
}

func truncateHeight(s string, limit int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= limit {
		return s
	}
	return strings.Join(lines[:limit], "\n")
}

func padHeight(s string, h int) string {
	lines := strings.Split(s, "\n")
	if len(lines) >= h {
		return s
	}
	padding := strings.Repeat("\n", h-len(lines))
	return s + padding
}

// fillLinesWithBackground pads each line to width w with background color.
// This ensures gaps between cards and empty lines have proper background fill.
func fillLinesWithBackground(s string, w int, bg lipgloss.Color) string {
	lines := strings.Split(s, "\n")

	var result strings.Builder
	for i, line := range lines {
		placed := lipgloss.PlaceHorizontal(w, lipgloss.Left, line,
			lipgloss.WithWhitespaceBackground(bg))
		result.WriteString(placed)
		if i < len(lines)-1 {
			result.WriteString("\n")
		}
	}
	return result.String()
}

// ─── Mouse Support ──────────────────────────────────────────────

// tabAtX returns the tab index at the given X coordinate, or -1 if none.
// Hitboxes are derived from the same width rules used by RenderTabBar.
func (a App) tabAtX(x int) int {
	pos := 1 // leading space before the first tab
	for i, tab := range components.Tabs {
		tabW := components.TabVisualWidth(tab, i == a.activeTab)

		if x >= pos && x < pos+tabW {
			return i
		}
		pos += tabW

		// Two-column separator between tabs.
		if i < len(components.Tabs)-1 {
			pos += 2
		}
	}
	return -1
}
