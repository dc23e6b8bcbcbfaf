package model

import "github.com/shopspring/decimal"

// MonthStatus classifies how a month's realized revenue compares to plan.
type MonthStatus string

const (
	StatusPending     MonthStatus = "pending"
	StatusAchieved    MonthStatus = "achieved"
	StatusNearTarget  MonthStatus = "near_target"
	StatusBelowTarget MonthStatus = "below_target"
)

// MonthlyReconciliation pairs one month's planned revenue with its realized
// value, carrying running totals from January onward.
type MonthlyReconciliation struct {
	Month              int
	Planned            decimal.Decimal
	Realized           decimal.Decimal
	Variance           decimal.Decimal
	CumulativePlanned  decimal.Decimal
	CumulativeRealized decimal.Decimal
	PercentRealized    int64
	Status             MonthStatus
}

// YearSummary aggregates a full year's reconciliation.
type YearSummary struct {
	Year            int
	TotalPlanned    decimal.Decimal
	TotalRealized   decimal.Decimal
	Variance        decimal.Decimal
	PercentRealized int64
	MonthsReported  int
	BestMonth       int
	WorstMonth      int
}
