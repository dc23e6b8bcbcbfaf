package budget

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/MuriloHTS/orca/internal/model"
)

func entryOn(t *testing.T, date string, kind model.EntryKind, amount string) model.Entry {
	t.Helper()
	d, err := time.Parse("2006-01-02", date)
	if err != nil {
		t.Fatalf("parse date %q: %v", date, err)
	}
	return model.Entry{
		Kind:        kind,
		Date:        d,
		Description: "test entry",
		Amount:      dec(t, amount),
		Status:      model.StatusPlanned,
	}
}

func TestSynthesizeMonth_DayCounts(t *testing.T) {
	tests := []struct {
		year, month, days int
	}{
		{2025, 4, 30},
		{2025, 1, 31},
		{2024, 2, 29}, // leap year
		{2025, 2, 28},
	}

	for _, tt := range tests {
		flows, err := SynthesizeMonth(tt.year, tt.month, dec(t, "30000"), dec(t, "15000"), nil)
		if err != nil {
			t.Fatalf("SynthesizeMonth(%d, %d): %v", tt.year, tt.month, err)
		}
		if len(flows) != tt.days {
			t.Errorf("%d-%02d produced %d days, want %d", tt.year, tt.month, len(flows), tt.days)
		}
		for i, f := range flows {
			if f.Day != i+1 {
				t.Fatalf("flows[%d].Day = %d, want %d", i, f.Day, i+1)
			}
		}
	}
}

func TestSynthesizeMonth_NetSum(t *testing.T) {
	entries := []model.Entry{
		entryOn(t, "2025-04-05", model.KindRevenue, "12000"),
		entryOn(t, "2025-04-18", model.KindExpense, "5200"),
	}

	flows, err := SynthesizeMonth(2025, 4, dec(t, "186163.52"), dec(t, "22491.92"), entries)
	if err != nil {
		t.Fatal(err)
	}

	sum := decimal.Zero
	for _, f := range flows {
		sum = sum.Add(f.Net)
	}

	// monthly revenue - monthly expense + net of the overlaid entries
	want := dec(t, "186163.52").Sub(dec(t, "22491.92")).Add(dec(t, "6800"))
	wantClose(t, "sum of daily nets", sum, want)

	if last := flows[len(flows)-1]; !last.Cumulative.Equal(sum) {
		t.Fatalf("final cumulative = %s, want %s", last.Cumulative, sum)
	}
}

func TestSynthesizeMonth_RunningBalance(t *testing.T) {
	flows, err := SynthesizeMonth(2025, 6, dec(t, "3000"), dec(t, "1500"), nil)
	if err != nil {
		t.Fatal(err)
	}

	if !flows[0].Cumulative.Equal(flows[0].Net) {
		t.Fatalf("day 1 cumulative = %s, want its net %s", flows[0].Cumulative, flows[0].Net)
	}
	for i := 1; i < len(flows); i++ {
		want := flows[i-1].Cumulative.Add(flows[i].Net)
		if !flows[i].Cumulative.Equal(want) {
			t.Fatalf("day %d cumulative = %s, want %s", i+1, flows[i].Cumulative, want)
		}
	}
}

func TestSynthesizeMonth_EntryOverlay(t *testing.T) {
	entries := []model.Entry{
		entryOn(t, "2025-04-05", model.KindRevenue, "12000"),
	}

	flows, err := SynthesizeMonth(2025, 4, dec(t, "30000"), dec(t, "0"), entries)
	if err != nil {
		t.Fatal(err)
	}

	baseline := dec(t, "30000").Div(decimal.NewFromInt(30))
	day5 := flows[4]
	wantClose(t, "day 5 revenue", day5.Revenue, baseline.Add(dec(t, "12000")))
	if day5.Entry == nil || day5.Entry.Description != "test entry" {
		t.Fatal("day 5 should carry its entry")
	}
	if flows[3].Entry != nil {
		t.Fatal("day 4 should carry no entry")
	}
}

func TestSynthesizeMonth_MultipleEntriesSameDay(t *testing.T) {
	first := entryOn(t, "2025-04-10", model.KindRevenue, "1000")
	first.Description = "first"
	second := entryOn(t, "2025-04-10", model.KindExpense, "400")
	second.Description = "second"

	flows, err := SynthesizeMonth(2025, 4, dec(t, "0"), dec(t, "0"), []model.Entry{first, second})
	if err != nil {
		t.Fatal(err)
	}

	day10 := flows[9]
	if !day10.Revenue.Equal(dec(t, "1000")) || !day10.Expense.Equal(dec(t, "400")) {
		t.Fatalf("day 10 = %s revenue / %s expense, want 1000 / 400", day10.Revenue, day10.Expense)
	}
	if day10.Entry == nil || day10.Entry.Description != "first" {
		t.Fatal("representative entry should be the first encountered")
	}
}

func TestSynthesizeMonth_RejectsBadInput(t *testing.T) {
	if _, err := SynthesizeMonth(2025, 13, decimal.Zero, decimal.Zero, nil); !errors.Is(err, ErrInvalidMonth) {
		t.Fatalf("month 13 error = %v, want ErrInvalidMonth", err)
	}
	if _, err := SynthesizeMonth(2025, 0, decimal.Zero, decimal.Zero, nil); !errors.Is(err, ErrInvalidMonth) {
		t.Fatalf("month 0 error = %v, want ErrInvalidMonth", err)
	}

	stray := []model.Entry{entryOn(t, "2025-05-01", model.KindRevenue, "10")}
	if _, err := SynthesizeMonth(2025, 4, decimal.Zero, decimal.Zero, stray); !errors.Is(err, ErrOutsideMonth) {
		t.Fatalf("stray entry error = %v, want ErrOutsideMonth", err)
	}
}

func TestDropCancelled(t *testing.T) {
	kept := entryOn(t, "2025-04-05", model.KindRevenue, "100")
	realized := entryOn(t, "2025-04-06", model.KindExpense, "50")
	realized.Status = model.StatusRealized
	cancelled := entryOn(t, "2025-04-07", model.KindExpense, "900")
	cancelled.Status = model.StatusCancelled

	out := DropCancelled([]model.Entry{kept, cancelled, realized})
	if len(out) != 2 {
		t.Fatalf("got %d entries, want 2", len(out))
	}
	for _, e := range out {
		if e.Status == model.StatusCancelled {
			t.Fatal("cancelled entry survived the filter")
		}
	}
}
