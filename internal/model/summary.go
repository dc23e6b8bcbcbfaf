package model

import "github.com/shopspring/decimal"

// PeriodTotals splits revenue and expense totals by realization status.
// Entries that are not realized (planned or cancelled) count as planned,
// matching the upstream bookkeeping convention.
type PeriodTotals struct {
	PlannedRevenue  decimal.Decimal
	RealizedRevenue decimal.Decimal
	PlannedExpense  decimal.Decimal
	RealizedExpense decimal.Decimal
	PlannedBalance  decimal.Decimal
	RealizedBalance decimal.Decimal
}

// MonthBreakdown is the revenue/expense/net of one month within a period.
type MonthBreakdown struct {
	Month   int
	Revenue decimal.Decimal
	Expense decimal.Decimal
	Net     decimal.Decimal
}

// CategoryBreakdown is the revenue/expense/net of one entry category.
type CategoryBreakdown struct {
	Category string
	Revenue  decimal.Decimal
	Expense  decimal.Decimal
	Net      decimal.Decimal
}

// PeriodSummary aggregates one-off entries over an inclusive month range.
type PeriodSummary struct {
	Year       int
	MonthStart int
	MonthEnd   int
	EntryCount int
	Totals     PeriodTotals
	ByMonth    []MonthBreakdown
	ByCategory []CategoryBreakdown
}
