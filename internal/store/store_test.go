package store

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/MuriloHTS/orca/internal/model"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "orca.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func dec(t *testing.T, v string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(v)
	if err != nil {
		t.Fatalf("decimal %q: %v", v, err)
	}
	return d
}

func TestCompanyRoundTrip(t *testing.T) {
	s := openTestStore(t)

	c, err := s.AddCompany("Acme Consulting")
	if err != nil {
		t.Fatalf("AddCompany: %v", err)
	}
	if c.ID == "" {
		t.Fatal("AddCompany returned empty ID")
	}
	if !c.Active {
		t.Fatal("new company should be active")
	}

	got, err := s.GetCompany(c.ID)
	if err != nil {
		t.Fatalf("GetCompany: %v", err)
	}
	if got.Name != "Acme Consulting" {
		t.Fatalf("GetCompany name = %q", got.Name)
	}

	byName, err := s.FindCompanyByName("Acme Consulting")
	if err != nil {
		t.Fatalf("FindCompanyByName: %v", err)
	}
	if byName.ID != c.ID {
		t.Fatalf("FindCompanyByName ID = %q, want %q", byName.ID, c.ID)
	}

	if _, err := s.GetCompany("nope"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("GetCompany(nope) = %v, want ErrNotFound", err)
	}
}

func TestPremiseRoundTrip(t *testing.T) {
	s := openTestStore(t)
	c, err := s.AddCompany("Acme")
	if err != nil {
		t.Fatalf("AddCompany: %v", err)
	}

	p := model.Premise{
		CompanyID:        c.ID,
		Year:             2025,
		AnnualRevenue:    dec(t, "186163.52"),
		MonthlyGrowthPct: dec(t, "2.5"),
		Seasonality: map[string]decimal.Decimal{
			"january":  dec(t, "10"),
			"december": dec(t, "6"),
		},
		Notes: "planning baseline",
	}
	if err := s.SavePremise(p); err != nil {
		t.Fatalf("SavePremise: %v", err)
	}

	got, err := s.GetPremise(c.ID, 2025)
	if err != nil {
		t.Fatalf("GetPremise: %v", err)
	}
	if !got.AnnualRevenue.Equal(p.AnnualRevenue) {
		t.Fatalf("AnnualRevenue = %s, want %s", got.AnnualRevenue, p.AnnualRevenue)
	}
	if !got.MonthlyGrowthPct.Equal(p.MonthlyGrowthPct) {
		t.Fatalf("MonthlyGrowthPct = %s, want %s", got.MonthlyGrowthPct, p.MonthlyGrowthPct)
	}
	if w := got.Seasonality["january"]; !w.Equal(dec(t, "10")) {
		t.Fatalf("seasonality january = %s, want 10", w)
	}
	if got.Notes != "planning baseline" {
		t.Fatalf("Notes = %q", got.Notes)
	}

	// Replace should overwrite, not duplicate.
	p.AnnualRevenue = dec(t, "200000")
	if err := s.SavePremise(p); err != nil {
		t.Fatalf("SavePremise replace: %v", err)
	}
	got, err = s.GetPremise(c.ID, 2025)
	if err != nil {
		t.Fatalf("GetPremise after replace: %v", err)
	}
	if !got.AnnualRevenue.Equal(dec(t, "200000")) {
		t.Fatalf("AnnualRevenue after replace = %s", got.AnnualRevenue)
	}

	if _, err := s.GetPremise(c.ID, 2024); !errors.Is(err, ErrNotFound) {
		t.Fatalf("GetPremise(2024) = %v, want ErrNotFound", err)
	}
}

func TestActualUpsert(t *testing.T) {
	s := openTestStore(t)
	c, err := s.AddCompany("Acme")
	if err != nil {
		t.Fatalf("AddCompany: %v", err)
	}

	for month, amount := range map[int]string{1: "175000", 2: "190000"} {
		err := s.UpsertActual(model.MonthlyActual{
			CompanyID: c.ID, Year: 2025, Month: month, Amount: dec(t, amount),
		})
		if err != nil {
			t.Fatalf("UpsertActual month %d: %v", month, err)
		}
	}

	err = s.UpsertActual(model.MonthlyActual{
		CompanyID: c.ID, Year: 2025, Month: 1, Amount: dec(t, "180000"), Source: "bank import",
	})
	if err != nil {
		t.Fatalf("UpsertActual replace: %v", err)
	}

	got, err := s.ListActuals(c.ID, 2025)
	if err != nil {
		t.Fatalf("ListActuals: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("ListActuals returned %d rows, want 2", len(got))
	}
	if got[0].Month != 1 || got[1].Month != 2 {
		t.Fatalf("ListActuals order = [%d %d]", got[0].Month, got[1].Month)
	}
	if !got[0].Amount.Equal(dec(t, "180000")) {
		t.Fatalf("month 1 amount = %s after upsert, want 180000", got[0].Amount)
	}
	if got[0].Source != "bank import" {
		t.Fatalf("month 1 source = %q", got[0].Source)
	}

	if err := s.UpsertActual(model.MonthlyActual{CompanyID: c.ID, Year: 2025, Month: 13}); err == nil {
		t.Fatal("UpsertActual month 13 should fail")
	}
	if err := s.DeleteActual(c.ID, 2025, 2); err != nil {
		t.Fatalf("DeleteActual: %v", err)
	}
	if err := s.DeleteActual(c.ID, 2025, 2); !errors.Is(err, ErrNotFound) {
		t.Fatalf("DeleteActual again = %v, want ErrNotFound", err)
	}
}

func TestEntryLifecycle(t *testing.T) {
	s := openTestStore(t)
	c, err := s.AddCompany("Acme")
	if err != nil {
		t.Fatalf("AddCompany: %v", err)
	}

	e, err := s.AddEntry(model.Entry{
		CompanyID:   c.ID,
		Kind:        model.KindExpense,
		Date:        time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC),
		Description: "New workstation",
		Amount:      dec(t, "15000"),
		Category:    "Equipment",
	})
	if err != nil {
		t.Fatalf("AddEntry: %v", err)
	}
	if e.ID == "" {
		t.Fatal("AddEntry returned empty ID")
	}
	if e.Status != model.StatusPlanned {
		t.Fatalf("default status = %q, want planned", e.Status)
	}

	_, err = s.AddEntry(model.Entry{
		CompanyID:   c.ID,
		Kind:        model.KindRevenue,
		Date:        time.Date(2025, 2, 20, 0, 0, 0, 0, time.UTC),
		Description: "Extra project",
		Amount:      dec(t, "8500"),
		Status:      model.StatusRealized,
	})
	if err != nil {
		t.Fatalf("AddEntry revenue: %v", err)
	}

	year, err := s.ListEntriesByYear(c.ID, 2025)
	if err != nil {
		t.Fatalf("ListEntriesByYear: %v", err)
	}
	if len(year) != 2 {
		t.Fatalf("ListEntriesByYear returned %d entries, want 2", len(year))
	}
	if year[0].Date.After(year[1].Date) {
		t.Fatal("entries not ordered by date")
	}

	jan, err := s.ListEntriesByMonth(c.ID, 2025, 1)
	if err != nil {
		t.Fatalf("ListEntriesByMonth: %v", err)
	}
	if len(jan) != 1 || jan[0].Description != "New workstation" {
		t.Fatalf("ListEntriesByMonth(1) = %+v", jan)
	}
	if !jan[0].Amount.Equal(dec(t, "15000")) {
		t.Fatalf("amount = %s, want 15000", jan[0].Amount)
	}

	if err := s.UpdateEntryStatus(e.ID, model.StatusRealized); err != nil {
		t.Fatalf("UpdateEntryStatus: %v", err)
	}
	jan, err = s.ListEntriesByMonth(c.ID, 2025, 1)
	if err != nil {
		t.Fatalf("ListEntriesByMonth after status: %v", err)
	}
	if jan[0].Status != model.StatusRealized {
		t.Fatalf("status = %q after update", jan[0].Status)
	}

	if err := s.DeleteEntry(e.ID); err != nil {
		t.Fatalf("DeleteEntry: %v", err)
	}
	if err := s.DeleteEntry(e.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("DeleteEntry again = %v, want ErrNotFound", err)
	}
	if err := s.UpdateEntryStatus("missing", model.StatusCancelled); !errors.Is(err, ErrNotFound) {
		t.Fatalf("UpdateEntryStatus(missing) = %v, want ErrNotFound", err)
	}
}

func TestExpenseToggle(t *testing.T) {
	s := openTestStore(t)
	c, err := s.AddCompany("Acme")
	if err != nil {
		t.Fatalf("AddCompany: %v", err)
	}

	e, err := s.AddExpense(model.FixedExpense{
		CompanyID:     c.ID,
		Category:      "Facilities",
		Name:          "Office rent",
		MonthlyAmount: dec(t, "4200"),
		Active:        true,
	})
	if err != nil {
		t.Fatalf("AddExpense: %v", err)
	}
	_, err = s.AddExpense(model.FixedExpense{
		CompanyID:     c.ID,
		Category:      "Software",
		Name:          "Licenses",
		MonthlyAmount: dec(t, "850"),
		Active:        true,
	})
	if err != nil {
		t.Fatalf("AddExpense second: %v", err)
	}

	if err := s.SetExpenseActive(e.ID, false); err != nil {
		t.Fatalf("SetExpenseActive: %v", err)
	}

	got, err := s.ListExpenses(c.ID)
	if err != nil {
		t.Fatalf("ListExpenses: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("ListExpenses returned %d rows, want 2", len(got))
	}
	// Active first.
	if !got[0].Active || got[0].Name != "Licenses" {
		t.Fatalf("first expense = %+v, want active Licenses", got[0])
	}
	if got[1].Active {
		t.Fatal("rent should be inactive after toggle")
	}

	total := model.SumActiveExpenses(got)
	if !total.Equal(dec(t, "850")) {
		t.Fatalf("SumActiveExpenses = %s, want 850", total)
	}

	if err := s.SetExpenseActive("missing", true); !errors.Is(err, ErrNotFound) {
		t.Fatalf("SetExpenseActive(missing) = %v, want ErrNotFound", err)
	}
}
