// Package model defines domain types for orca budgets and entries.
package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Company is the owner of premises, actuals and entries.
type Company struct {
	ID        string
	Name      string
	Active    bool
	CreatedAt time.Time
}

// Premise is an annual budget assumption: total revenue for the year, an
// optional per-month seasonality weighting (percent of year, keyed by
// lowercase month name) and an optional compound monthly growth rate.
type Premise struct {
	CompanyID        string
	Year             int
	AnnualRevenue    decimal.Decimal
	MonthlyGrowthPct decimal.Decimal
	Seasonality      map[string]decimal.Decimal
	Notes            string
}

// SeasonalityWeight returns the percent-of-year weight for a month.
// Months with no configured weight fall back to an even 12-way split.
func (p *Premise) SeasonalityWeight(month int) decimal.Decimal {
	if p.Seasonality != nil {
		if w, ok := p.Seasonality[MonthKey(month)]; ok {
			return w
		}
	}
	return decimal.NewFromInt(100).Div(decimal.NewFromInt(12))
}

// MonthlyActual is the realized revenue recorded for one month.
// One row per (company, year, month); the store upserts on conflict.
type MonthlyActual struct {
	CompanyID string
	Year      int
	Month     int
	Amount    decimal.Decimal
	Source    string
	Note      string
}

// FixedExpense is a recurring monthly expense. Only active entries count
// toward the recurring total consumed by cash-flow synthesis.
type FixedExpense struct {
	ID            string
	CompanyID     string
	Category      string
	Name          string
	MonthlyAmount decimal.Decimal
	Active        bool
}

// SumActiveExpenses returns the combined monthly amount of active expenses.
func SumActiveExpenses(expenses []FixedExpense) decimal.Decimal {
	total := decimal.Zero
	for _, e := range expenses {
		if e.Active {
			total = total.Add(e.MonthlyAmount)
		}
	}
	return total
}
