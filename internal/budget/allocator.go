// Package budget implements the planning engine: seasonal revenue
// allocation, planned-versus-realized reconciliation, daily cash-flow
// synthesis and period summaries. Every function here is a pure computation
// over inputs the caller has already fetched; nothing reads the store or
// the wall clock.
package budget

import (
	"github.com/shopspring/decimal"

	"github.com/MuriloHTS/orca/internal/model"
)

var (
	one     = decimal.NewFromInt(1)
	hundred = decimal.NewFromInt(100)
)

// Allocate derives the planned revenue for one month of a premise.
// The month's weight comes from the premise seasonality, falling back to an
// even 100/12 split, and a non-zero monthly growth rate compounds from
// January: month m is scaled by (1+g/100)^(m-1), so January never grows.
// A nil premise allocates zero. Callers are responsible for keeping month
// inside 1..12.
func Allocate(p *model.Premise, month int) decimal.Decimal {
	if p == nil {
		return decimal.Zero
	}

	base := p.AnnualRevenue.Mul(p.SeasonalityWeight(month)).Div(hundred)

	if p.MonthlyGrowthPct.IsZero() || month <= 1 {
		return base
	}
	factor := one.Add(p.MonthlyGrowthPct.Div(hundred))
	return base.Mul(factor.Pow(decimal.NewFromInt(int64(month - 1))))
}
