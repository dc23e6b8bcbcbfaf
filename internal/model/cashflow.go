package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// DailyCashFlow is one day of a synthesized month: the even share of the
// recurring revenue/expense plus any one-off entries dated on that day.
// Entry is a representative entry for display; when several entries land on
// the same day all of them are folded into the totals but only the first is
// retained here.
type DailyCashFlow struct {
	Day        int
	Date       time.Time
	Revenue    decimal.Decimal
	Expense    decimal.Decimal
	Net        decimal.Decimal
	Cumulative decimal.Decimal
	Entry      *Entry
}
