// Package daemon provides the long-running background budget monitor service.
package daemon

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/MuriloHTS/orca/internal/budget"
	"github.com/MuriloHTS/orca/internal/model"
	"github.com/MuriloHTS/orca/internal/store"
)

// Config controls the daemon runtime behavior.
type Config struct {
	DBPath       string
	CompanyID    string
	Year         int
	Interval     time.Duration
	Addr         string
	EventsBuffer int
}

// Snapshot is a compact reconciliation state for status/event payloads.
type Snapshot struct {
	At              time.Time `json:"at"`
	Year            int       `json:"year"`
	TotalPlanned    string    `json:"total_planned"`
	TotalRealized   string    `json:"total_realized"`
	Variance        string    `json:"variance"`
	PercentRealized int64     `json:"percent_realized"`
	MonthsReported  int       `json:"months_reported"`
	BestMonth       int       `json:"best_month"`
	WorstMonth      int       `json:"worst_month"`
	EntryCount      int       `json:"entry_count"`
}

// Delta captures snapshot deltas between polls.
type Delta struct {
	Realized        string `json:"realized"`
	PercentRealized int64  `json:"percent_realized"`
	MonthsReported  int    `json:"months_reported"`
	EntryCount      int    `json:"entry_count"`
}

func (d Delta) isZero() bool {
	return (d.Realized == "" || d.Realized == "0.00") &&
		d.PercentRealized == 0 &&
		d.MonthsReported == 0 &&
		d.EntryCount == 0
}

// Event is emitted whenever the reconciliation snapshot changes.
type Event struct {
	ID        int64     `json:"id"`
	Type      string    `json:"type"`
	Timestamp time.Time `json:"timestamp"`
	Snapshot  Snapshot  `json:"snapshot"`
	Delta     Delta     `json:"delta"`
}

// Status is served at /v1/status.
type Status struct {
	StartedAt       time.Time `json:"started_at"`
	LastPollAt      time.Time `json:"last_poll_at"`
	PollIntervalSec int       `json:"poll_interval_sec"`
	PollCount       int64     `json:"poll_count"`
	CompanyID       string    `json:"company_id"`
	Year            int       `json:"year"`
	Summary         Snapshot  `json:"summary"`
	LastError       string    `json:"last_error,omitempty"`
	EventCount      int       `json:"event_count"`
	SubscriberCount int       `json:"subscriber_count"`
}

// monthRow is a single month in the /v1/reconciliation payload.
type monthRow struct {
	Month              int    `json:"month"`
	Name               string `json:"name"`
	Planned            string `json:"planned"`
	Realized           string `json:"realized"`
	Variance           string `json:"variance"`
	CumulativePlanned  string `json:"cumulative_planned"`
	CumulativeRealized string `json:"cumulative_realized"`
	PercentRealized    int64  `json:"percent_realized"`
	Status             string `json:"status"`
}

// dayRow is a single day in the /v1/cashflow payload.
type dayRow struct {
	Day        int    `json:"day"`
	Date       string `json:"date"`
	Revenue    string `json:"revenue"`
	Expense    string `json:"expense"`
	Net        string `json:"net"`
	Cumulative string `json:"cumulative"`
	Entry      string `json:"entry,omitempty"`
}

// Service provides the daemon runtime and HTTP API.
type Service struct {
	cfg Config

	mu          sync.RWMutex
	startedAt   time.Time
	lastPollAt  time.Time
	pollCount   int64
	lastError   string
	hasSnapshot bool
	snapshot    Snapshot
	nextEventID int64
	events      []Event

	nextSubID int
	subs      map[int]chan Event
}

// New returns a new daemon service with the provided config.
func New(cfg Config) *Service {
	if cfg.Interval < 2*time.Second {
		cfg.Interval = 30 * time.Second
	}
	if cfg.EventsBuffer < 1 {
		cfg.EventsBuffer = 200
	}
	if cfg.Addr == "" {
		cfg.Addr = "127.0.0.1:8473"
	}

	return &Service{
		cfg:       cfg,
		startedAt: time.Now(),
		subs:      make(map[int]chan Event),
	}
}

// Run starts HTTP endpoints and polling until ctx is canceled.
func (s *Service) Run(ctx context.Context) error {
	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", s.handleHealth)
	mux.HandleFunc("/v1/status", s.handleStatus)
	mux.HandleFunc("/v1/reconciliation", s.handleReconciliation)
	mux.HandleFunc("/v1/cashflow", s.handleCashFlow)
	mux.HandleFunc("/v1/summary", s.handleSummary)
	mux.HandleFunc("/v1/events", s.handleEvents)
	mux.HandleFunc("/v1/stream", s.handleStream)

	server := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	// Seed initial snapshot so status is useful immediately.
	s.pollOnce()

	ticker := time.NewTicker(s.cfg.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			return server.Shutdown(shutdownCtx)
		case <-ticker.C:
			s.pollOnce()
		case err := <-errCh:
			return fmt.Errorf("daemon http server: %w", err)
		}
	}
}

func (s *Service) pollOnce() {
	summary, entryCount, err := s.loadSummary()
	now := time.Now()
	if err != nil {
		s.mu.Lock()
		s.lastError = err.Error()
		s.lastPollAt = now
		s.pollCount++
		s.mu.Unlock()
		log.Printf("orca daemon poll error: %v", err)
		return
	}

	snap := snapshotFromSummary(summary, entryCount, now)

	var (
		ev      Event
		publish bool
	)

	s.mu.Lock()
	prev := s.snapshot
	prevExists := s.hasSnapshot

	s.hasSnapshot = true
	s.snapshot = snap
	s.lastPollAt = now
	s.pollCount++
	s.lastError = ""

	if !prevExists {
		s.nextEventID++
		ev = Event{
			ID:        s.nextEventID,
			Type:      "snapshot",
			Timestamp: now,
			Snapshot:  snap,
			Delta:     Delta{},
		}
		publish = true
	} else {
		delta := diffSnapshots(prev, snap)
		if !delta.isZero() {
			s.nextEventID++
			ev = Event{
				ID:        s.nextEventID,
				Type:      "budget_delta",
				Timestamp: now,
				Snapshot:  snap,
				Delta:     delta,
			}
			publish = true
		}
	}
	s.mu.Unlock()

	if publish {
		s.publishEvent(ev)
	}
}

func (s *Service) loadSummary() (model.YearSummary, int, error) {
	st, err := store.Open(s.cfg.DBPath)
	if err != nil {
		return model.YearSummary{}, 0, err
	}
	defer func() { _ = st.Close() }()

	premise, err := st.GetPremise(s.cfg.CompanyID, s.cfg.Year)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		return model.YearSummary{}, 0, err
	}
	var pp *model.Premise
	if err == nil {
		pp = &premise
	}

	actuals, err := st.ListActuals(s.cfg.CompanyID, s.cfg.Year)
	if err != nil {
		return model.YearSummary{}, 0, err
	}
	entries, err := st.ListEntriesByYear(s.cfg.CompanyID, s.cfg.Year)
	if err != nil {
		return model.YearSummary{}, 0, err
	}

	_, summary := budget.Reconcile(pp, actuals)
	if summary.Year == 0 {
		summary.Year = s.cfg.Year
	}
	return summary, len(entries), nil
}

func snapshotFromSummary(sum model.YearSummary, entryCount int, at time.Time) Snapshot {
	return Snapshot{
		At:              at,
		Year:            sum.Year,
		TotalPlanned:    sum.TotalPlanned.StringFixed(2),
		TotalRealized:   sum.TotalRealized.StringFixed(2),
		Variance:        sum.Variance.StringFixed(2),
		PercentRealized: sum.PercentRealized,
		MonthsReported:  sum.MonthsReported,
		BestMonth:       sum.BestMonth,
		WorstMonth:      sum.WorstMonth,
		EntryCount:      entryCount,
	}
}

func diffSnapshots(prev, curr Snapshot) Delta {
	prevRealized, _ := decimal.NewFromString(prev.TotalRealized)
	currRealized, _ := decimal.NewFromString(curr.TotalRealized)

	return Delta{
		Realized:        currRealized.Sub(prevRealized).StringFixed(2),
		PercentRealized: curr.PercentRealized - prev.PercentRealized,
		MonthsReported:  curr.MonthsReported - prev.MonthsReported,
		EntryCount:      curr.EntryCount - prev.EntryCount,
	}
}

func (s *Service) publishEvent(ev Event) {
	s.mu.Lock()
	s.events = append(s.events, ev)
	if len(s.events) > s.cfg.EventsBuffer {
		s.events = s.events[len(s.events)-s.cfg.EventsBuffer:]
	}

	for _, ch := range s.subs {
		select {
		case ch <- ev:
		default:
		}
	}
	s.mu.Unlock()
}

func (s *Service) snapshotStatus() Status {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return Status{
		StartedAt:       s.startedAt,
		LastPollAt:      s.lastPollAt,
		PollIntervalSec: int(s.cfg.Interval.Seconds()),
		PollCount:       s.pollCount,
		CompanyID:       s.cfg.CompanyID,
		Year:            s.cfg.Year,
		Summary:         s.snapshot,
		LastError:       s.lastError,
		EventCount:      len(s.events),
		SubscriberCount: len(s.subs),
	}
}

func (s *Service) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok\n"))
}

func (s *Service) handleStatus(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(s.snapshotStatus())
}

// yearParam returns the year from the query string, defaulting to the
// daemon's configured year.
func (s *Service) yearParam(r *http.Request) (int, error) {
	v := r.URL.Query().Get("year")
	if v == "" {
		return s.cfg.Year, nil
	}
	year, err := strconv.Atoi(v)
	if err != nil || year < 2000 || year > 2100 {
		return 0, fmt.Errorf("bad year %q", v)
	}
	return year, nil
}

func (s *Service) handleReconciliation(w http.ResponseWriter, r *http.Request) {
	year, err := s.yearParam(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	st, err := store.Open(s.cfg.DBPath)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	defer func() { _ = st.Close() }()

	premise, err := st.GetPremise(s.cfg.CompanyID, year)
	var pp *model.Premise
	if err == nil {
		pp = &premise
	} else if !errors.Is(err, store.ErrNotFound) {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	actuals, err := st.ListActuals(s.cfg.CompanyID, year)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	months, _ := budget.Reconcile(pp, actuals)
	rows := make([]monthRow, 0, len(months))
	for _, m := range months {
		rows = append(rows, monthRow{
			Month:              m.Month,
			Name:               model.MonthName(m.Month),
			Planned:            m.Planned.StringFixed(2),
			Realized:           m.Realized.StringFixed(2),
			Variance:           m.Variance.StringFixed(2),
			CumulativePlanned:  m.CumulativePlanned.StringFixed(2),
			CumulativeRealized: m.CumulativeRealized.StringFixed(2),
			PercentRealized:    m.PercentRealized,
			Status:             string(m.Status),
		})
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(rows)
}

func (s *Service) handleCashFlow(w http.ResponseWriter, r *http.Request) {
	year, err := s.yearParam(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	month := int(time.Now().Month())
	if v := r.URL.Query().Get("month"); v != "" {
		m, err := strconv.Atoi(v)
		if err != nil {
			http.Error(w, "bad month", http.StatusBadRequest)
			return
		}
		month = m
	}

	st, err := store.Open(s.cfg.DBPath)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	defer func() { _ = st.Close() }()

	premise, err := st.GetPremise(s.cfg.CompanyID, year)
	var pp *model.Premise
	if err == nil {
		pp = &premise
	} else if !errors.Is(err, store.ErrNotFound) {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	expenses, err := st.ListExpenses(s.cfg.CompanyID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	entries, err := st.ListEntriesByMonth(s.cfg.CompanyID, year, month)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	days, err := budget.SynthesizeMonth(year, month,
		budget.Allocate(pp, month), model.SumActiveExpenses(expenses), budget.DropCancelled(entries))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	rows := make([]dayRow, 0, len(days))
	for _, d := range days {
		row := dayRow{
			Day:        d.Day,
			Date:       d.Date.Format("2006-01-02"),
			Revenue:    d.Revenue.StringFixed(2),
			Expense:    d.Expense.StringFixed(2),
			Net:        d.Net.StringFixed(2),
			Cumulative: d.Cumulative.StringFixed(2),
		}
		if d.Entry != nil {
			row.Entry = d.Entry.Description
		}
		rows = append(rows, row)
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(rows)
}

func (s *Service) handleSummary(w http.ResponseWriter, r *http.Request) {
	year, err := s.yearParam(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	monthStart, monthEnd := 1, 12
	if v := r.URL.Query().Get("from"); v != "" {
		m, err := strconv.Atoi(v)
		if err != nil {
			http.Error(w, "bad from month", http.StatusBadRequest)
			return
		}
		monthStart = m
	}
	if v := r.URL.Query().Get("to"); v != "" {
		m, err := strconv.Atoi(v)
		if err != nil {
			http.Error(w, "bad to month", http.StatusBadRequest)
			return
		}
		monthEnd = m
	}

	st, err := store.Open(s.cfg.DBPath)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	defer func() { _ = st.Close() }()

	entries, err := st.ListEntriesByYear(s.cfg.CompanyID, year)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	summary, err := budget.SummarizePeriod(entries, year, monthStart, monthEnd)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(summaryPayload(summary))
}

func summaryPayload(sum model.PeriodSummary) map[string]any {
	months := make([]map[string]any, 0, len(sum.ByMonth))
	for _, m := range sum.ByMonth {
		months = append(months, map[string]any{
			"month":   m.Month,
			"name":    model.MonthName(m.Month),
			"revenue": m.Revenue.StringFixed(2),
			"expense": m.Expense.StringFixed(2),
			"net":     m.Net.StringFixed(2),
		})
	}
	categories := make([]map[string]any, 0, len(sum.ByCategory))
	for _, c := range sum.ByCategory {
		categories = append(categories, map[string]any{
			"category": c.Category,
			"revenue":  c.Revenue.StringFixed(2),
			"expense":  c.Expense.StringFixed(2),
			"net":      c.Net.StringFixed(2),
		})
	}

	return map[string]any{
		"year":        sum.Year,
		"month_start": sum.MonthStart,
		"month_end":   sum.MonthEnd,
		"entry_count": sum.EntryCount,
		"totals": map[string]string{
			"planned_revenue":  sum.Totals.PlannedRevenue.StringFixed(2),
			"planned_expense":  sum.Totals.PlannedExpense.StringFixed(2),
			"planned_balance":  sum.Totals.PlannedBalance.StringFixed(2),
			"realized_revenue": sum.Totals.RealizedRevenue.StringFixed(2),
			"realized_expense": sum.Totals.RealizedExpense.StringFixed(2),
			"realized_balance": sum.Totals.RealizedBalance.StringFixed(2),
		},
		"by_month":    months,
		"by_category": categories,
	}
}

func (s *Service) handleEvents(w http.ResponseWriter, _ *http.Request) {
	s.mu.RLock()
	events := make([]Event, len(s.events))
	copy(events, s.events)
	s.mu.RUnlock()

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(events)
}

func (s *Service) handleStream(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "streaming unsupported", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	ch := make(chan Event, 16)
	id := s.addSubscriber(ch)
	defer s.removeSubscriber(id)

	// Send current snapshot immediately.
	current := Event{
		Type:      "snapshot",
		Timestamp: time.Now(),
		Snapshot:  s.snapshotStatus().Summary,
	}
	writeSSE(w, current)
	flusher.Flush()

	for {
		select {
		case <-r.Context().Done():
			return
		case ev := <-ch:
			writeSSE(w, ev)
			flusher.Flush()
		}
	}
}

func writeSSE(w http.ResponseWriter, ev Event) {
	data, err := json.Marshal(ev)
	if err != nil {
		return
	}
	_, _ = fmt.Fprintf(w, "event: %s\n", ev.Type)
	_, _ = fmt.Fprintf(w, "data: %s\n\n", data)
}

func (s *Service) addSubscriber(ch chan Event) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextSubID++
	id := s.nextSubID
	s.subs[id] = ch
	return id
}

func (s *Service) removeSubscriber(id int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.subs, id)
}
