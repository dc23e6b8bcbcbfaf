package budget

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/MuriloHTS/orca/internal/model"
)

func dec(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	if err != nil {
		t.Fatalf("parse decimal %q: %v", s, err)
	}
	return d
}

// wantClose fails unless got is within 0.0001 of want.
func wantClose(t *testing.T, label string, got, want decimal.Decimal) {
	t.Helper()
	if got.Sub(want).Abs().GreaterThan(dec(t, "0.0001")) {
		t.Fatalf("%s = %s, want %s", label, got, want)
	}
}

func TestAllocate_EvenSplitWithoutSeasonality(t *testing.T) {
	p := &model.Premise{Year: 2025, AnnualRevenue: dec(t, "186163.52")}

	twelfth := p.AnnualRevenue.Div(decimal.NewFromInt(12))
	for month := 1; month <= 12; month++ {
		got := Allocate(p, month)
		wantClose(t, "Allocate", got, twelfth)
	}

	if got := Allocate(p, 1).Round(2); !got.Equal(dec(t, "15513.63")) {
		t.Fatalf("Allocate(p, 1) rounded = %s, want 15513.63", got)
	}
}

func TestAllocate_SeasonalityWeight(t *testing.T) {
	p := &model.Premise{
		Year:          2025,
		AnnualRevenue: dec(t, "120000"),
		Seasonality: map[string]decimal.Decimal{
			"january":  dec(t, "20"),
			"february": dec(t, "5"),
		},
	}

	if got := Allocate(p, 1); !got.Equal(dec(t, "24000")) {
		t.Fatalf("January with 20%% weight = %s, want 24000", got)
	}
	if got := Allocate(p, 2); !got.Equal(dec(t, "6000")) {
		t.Fatalf("February with 5%% weight = %s, want 6000", got)
	}

	// March has no configured weight, so it falls back to the even split.
	wantClose(t, "March fallback", Allocate(p, 3), dec(t, "10000"))
}

func TestAllocate_CompoundGrowth(t *testing.T) {
	flat := &model.Premise{Year: 2025, AnnualRevenue: dec(t, "120000")}
	grown := &model.Premise{
		Year:             2025,
		AnnualRevenue:    dec(t, "120000"),
		MonthlyGrowthPct: dec(t, "10"),
	}

	// January gets no multiplier.
	wantClose(t, "January", Allocate(grown, 1), Allocate(flat, 1))

	factor := dec(t, "1.1")
	for month := 2; month <= 12; month++ {
		want := Allocate(flat, month).Mul(factor.Pow(decimal.NewFromInt(int64(month - 1))))
		wantClose(t, "grown month", Allocate(grown, month), want)
	}
}

func TestAllocate_NegativeGrowth(t *testing.T) {
	p := &model.Premise{
		Year:             2025,
		AnnualRevenue:    dec(t, "120000"),
		MonthlyGrowthPct: dec(t, "-10"),
	}

	// 10000 * 0.9 = 9000 for February.
	wantClose(t, "February at -10%", Allocate(p, 2), dec(t, "9000"))
}

func TestAllocate_NilPremise(t *testing.T) {
	if got := Allocate(nil, 5); !got.IsZero() {
		t.Fatalf("Allocate(nil) = %s, want 0", got)
	}
}
