package budget

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/MuriloHTS/orca/internal/model"
)

func actual(t *testing.T, month int, amount string) model.MonthlyActual {
	t.Helper()
	return model.MonthlyActual{Year: 2025, Month: month, Amount: dec(t, amount)}
}

func TestReconcile_TwelveOrderedMonths(t *testing.T) {
	p := &model.Premise{Year: 2025, AnnualRevenue: dec(t, "120000")}
	months, _ := Reconcile(p, nil)

	if len(months) != 12 {
		t.Fatalf("got %d months, want 12", len(months))
	}
	for i, m := range months {
		if m.Month != i+1 {
			t.Fatalf("months[%d].Month = %d, want %d", i, m.Month, i+1)
		}
	}
}

func TestReconcile_CumulativeTotals(t *testing.T) {
	p := &model.Premise{
		Year:             2025,
		AnnualRevenue:    dec(t, "186163.52"),
		MonthlyGrowthPct: dec(t, "2"),
	}
	actuals := []model.MonthlyActual{
		actual(t, 1, "175000"),
		actual(t, 2, "190000"),
		actual(t, 3, "165000"),
	}

	months, summary := Reconcile(p, actuals)

	sumPlanned := decimal.Zero
	sumRealized := decimal.Zero
	for _, m := range months {
		sumPlanned = sumPlanned.Add(m.Planned)
		sumRealized = sumRealized.Add(m.Realized)
	}

	last := months[11]
	if !last.CumulativePlanned.Equal(sumPlanned) {
		t.Fatalf("December cumulative planned = %s, want %s", last.CumulativePlanned, sumPlanned)
	}
	if !last.CumulativeRealized.Equal(sumRealized) {
		t.Fatalf("December cumulative realized = %s, want %s", last.CumulativeRealized, sumRealized)
	}
	if !summary.TotalPlanned.Equal(sumPlanned) || !summary.TotalRealized.Equal(sumRealized) {
		t.Fatalf("summary totals = %s/%s, want %s/%s",
			summary.TotalPlanned, summary.TotalRealized, sumPlanned, sumRealized)
	}
	if summary.MonthsReported != 3 {
		t.Fatalf("MonthsReported = %d, want 3", summary.MonthsReported)
	}
}

func TestReconcile_StatusClassification(t *testing.T) {
	// 2233962.24 / 12 gives an even monthly plan of 186163.52.
	p := &model.Premise{Year: 2025, AnnualRevenue: dec(t, "2233962.24")}
	actuals := []model.MonthlyActual{
		actual(t, 1, "175000"), // 94% of plan
		actual(t, 2, "190000"), // above plan
		actual(t, 3, "100000"), // well below plan
	}

	months, _ := Reconcile(p, actuals)

	jan := months[0]
	if !jan.Planned.Round(2).Equal(dec(t, "186163.52")) {
		t.Fatalf("January planned = %s, want 186163.52", jan.Planned.Round(2))
	}
	if jan.PercentRealized != 94 {
		t.Errorf("January percent = %d, want 94", jan.PercentRealized)
	}
	if jan.Status != model.StatusNearTarget {
		t.Errorf("January status = %s, want %s", jan.Status, model.StatusNearTarget)
	}
	if months[1].Status != model.StatusAchieved {
		t.Errorf("February status = %s, want %s", months[1].Status, model.StatusAchieved)
	}
	if months[2].Status != model.StatusBelowTarget {
		t.Errorf("March status = %s, want %s", months[2].Status, model.StatusBelowTarget)
	}
	// April onward has no data yet.
	if months[3].Status != model.StatusPending {
		t.Errorf("April status = %s, want %s", months[3].Status, model.StatusPending)
	}
}

func TestReconcile_NoPremise(t *testing.T) {
	actuals := []model.MonthlyActual{actual(t, 1, "50000")}
	months, summary := Reconcile(nil, actuals)

	for _, m := range months {
		if !m.Planned.IsZero() {
			t.Fatalf("month %d planned = %s, want 0 without premise", m.Month, m.Planned)
		}
		if m.PercentRealized != 0 {
			t.Fatalf("month %d percent = %d, want 0 when planned is 0", m.Month, m.PercentRealized)
		}
	}
	if summary.PercentRealized != 0 {
		t.Fatalf("summary percent = %d, want 0", summary.PercentRealized)
	}
	if summary.Year != 2025 {
		t.Fatalf("summary year = %d, want 2025 (taken from actuals)", summary.Year)
	}
}

func TestReconcile_DuplicateActualFirstWins(t *testing.T) {
	actuals := []model.MonthlyActual{
		actual(t, 4, "1000"),
		actual(t, 4, "9999"),
	}
	months, _ := Reconcile(nil, actuals)

	if !months[3].Realized.Equal(dec(t, "1000")) {
		t.Fatalf("April realized = %s, want 1000 (first duplicate wins)", months[3].Realized)
	}
}

func TestReconcile_BestWorstTieBreaks(t *testing.T) {
	// All twelve months tie at 0%: best drifts to the latest month,
	// worst sticks to the earliest.
	_, summary := Reconcile(nil, nil)
	if summary.BestMonth != 12 {
		t.Errorf("BestMonth = %d, want 12 on a full tie", summary.BestMonth)
	}
	if summary.WorstMonth != 1 {
		t.Errorf("WorstMonth = %d, want 1 on a full tie", summary.WorstMonth)
	}
}

func TestReconcile_BestAndWorstMonths(t *testing.T) {
	p := &model.Premise{Year: 2025, AnnualRevenue: dec(t, "120000")}
	actuals := []model.MonthlyActual{
		actual(t, 2, "12000"), // 120%
		actual(t, 5, "9000"),  // 90%
	}

	_, summary := Reconcile(p, actuals)
	if summary.BestMonth != 2 {
		t.Errorf("BestMonth = %d, want 2", summary.BestMonth)
	}
	// Months without data score 0 and the earliest of them is worst.
	if summary.WorstMonth != 1 {
		t.Errorf("WorstMonth = %d, want 1", summary.WorstMonth)
	}
}
