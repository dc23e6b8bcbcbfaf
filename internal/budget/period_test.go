package budget

import (
	"errors"
	"testing"

	"github.com/MuriloHTS/orca/internal/model"
)

func TestSummarizePeriod_Empty(t *testing.T) {
	s, err := SummarizePeriod(nil, 2025, 1, 12)
	if err != nil {
		t.Fatalf("empty input should not fail: %v", err)
	}
	if s.EntryCount != 0 {
		t.Fatalf("EntryCount = %d, want 0", s.EntryCount)
	}
	if !s.Totals.PlannedBalance.IsZero() || !s.Totals.RealizedBalance.IsZero() {
		t.Fatal("balances should be zero for empty input")
	}
	if len(s.ByMonth) != 0 || len(s.ByCategory) != 0 {
		t.Fatal("breakdowns should be empty for empty input")
	}
}

func TestSummarizePeriod_TotalsAndSplits(t *testing.T) {
	entries := []model.Entry{
		entryOn(t, "2025-01-15", model.KindExpense, "15000"),
		entryOn(t, "2025-02-20", model.KindRevenue, "8500"),
		entryOn(t, "2025-03-10", model.KindExpense, "5200"),
		entryOn(t, "2025-04-05", model.KindRevenue, "12000"),
	}
	entries[1].Status = model.StatusRealized
	entries[2].Status = model.StatusRealized
	// Cancelled entries count in the planned bucket.
	entries[3].Status = model.StatusCancelled

	s, err := SummarizePeriod(entries, 2025, 1, 12)
	if err != nil {
		t.Fatal(err)
	}

	if s.EntryCount != 4 {
		t.Fatalf("EntryCount = %d, want 4", s.EntryCount)
	}
	if !s.Totals.RealizedRevenue.Equal(dec(t, "8500")) {
		t.Errorf("RealizedRevenue = %s, want 8500", s.Totals.RealizedRevenue)
	}
	if !s.Totals.PlannedRevenue.Equal(dec(t, "12000")) {
		t.Errorf("PlannedRevenue = %s, want 12000 (cancelled counts as planned)", s.Totals.PlannedRevenue)
	}
	if !s.Totals.RealizedExpense.Equal(dec(t, "5200")) {
		t.Errorf("RealizedExpense = %s, want 5200", s.Totals.RealizedExpense)
	}
	if !s.Totals.PlannedExpense.Equal(dec(t, "15000")) {
		t.Errorf("PlannedExpense = %s, want 15000", s.Totals.PlannedExpense)
	}
	if !s.Totals.RealizedBalance.Equal(dec(t, "3300")) {
		t.Errorf("RealizedBalance = %s, want 3300", s.Totals.RealizedBalance)
	}
	if !s.Totals.PlannedBalance.Equal(dec(t, "-3000")) {
		t.Errorf("PlannedBalance = %s, want -3000", s.Totals.PlannedBalance)
	}
}

func TestSummarizePeriod_MonthRangeFilter(t *testing.T) {
	entries := []model.Entry{
		entryOn(t, "2025-01-15", model.KindRevenue, "100"),
		entryOn(t, "2025-03-15", model.KindRevenue, "200"),
		entryOn(t, "2025-06-15", model.KindRevenue, "400"),
		entryOn(t, "2024-03-15", model.KindRevenue, "800"), // wrong year
	}

	s, err := SummarizePeriod(entries, 2025, 2, 4)
	if err != nil {
		t.Fatal(err)
	}
	if s.EntryCount != 1 {
		t.Fatalf("EntryCount = %d, want 1 (only March 2025 in range)", s.EntryCount)
	}
	if len(s.ByMonth) != 1 || s.ByMonth[0].Month != 3 {
		t.Fatalf("ByMonth = %+v, want only month 3", s.ByMonth)
	}
}

func TestSummarizePeriod_Breakdowns(t *testing.T) {
	equip := entryOn(t, "2025-01-10", model.KindExpense, "15000")
	equip.Category = "Equipment"
	extra := entryOn(t, "2025-02-10", model.KindRevenue, "8500")
	extra.Category = "Extra"
	small := entryOn(t, "2025-02-15", model.KindExpense, "500")
	// small has no category -> Uncategorized bucket

	s, err := SummarizePeriod([]model.Entry{equip, extra, small}, 2025, 1, 6)
	if err != nil {
		t.Fatal(err)
	}

	// Months ascending, only months with entries.
	if len(s.ByMonth) != 2 {
		t.Fatalf("ByMonth len = %d, want 2", len(s.ByMonth))
	}
	if s.ByMonth[0].Month != 1 || s.ByMonth[1].Month != 2 {
		t.Fatalf("ByMonth order = [%d, %d], want [1, 2]", s.ByMonth[0].Month, s.ByMonth[1].Month)
	}
	if !s.ByMonth[1].Net.Equal(dec(t, "8000")) {
		t.Fatalf("February net = %s, want 8000", s.ByMonth[1].Net)
	}

	// Categories descending by absolute net.
	if len(s.ByCategory) != 3 {
		t.Fatalf("ByCategory len = %d, want 3", len(s.ByCategory))
	}
	wantOrder := []string{"Equipment", "Extra", UncategorizedLabel}
	for i, want := range wantOrder {
		if s.ByCategory[i].Category != want {
			t.Fatalf("ByCategory[%d] = %s, want %s", i, s.ByCategory[i].Category, want)
		}
	}
	if !s.ByCategory[0].Net.Equal(dec(t, "-15000")) {
		t.Fatalf("Equipment net = %s, want -15000", s.ByCategory[0].Net)
	}
}

func TestSummarizePeriod_RejectsBadRange(t *testing.T) {
	if _, err := SummarizePeriod(nil, 2025, 0, 6); !errors.Is(err, ErrInvalidMonth) {
		t.Fatalf("start 0 error = %v, want ErrInvalidMonth", err)
	}
	if _, err := SummarizePeriod(nil, 2025, 6, 13); !errors.Is(err, ErrInvalidMonth) {
		t.Fatalf("end 13 error = %v, want ErrInvalidMonth", err)
	}
	if _, err := SummarizePeriod(nil, 2025, 8, 3); !errors.Is(err, ErrInvalidMonth) {
		t.Fatalf("inverted range error = %v, want ErrInvalidMonth", err)
	}
}
