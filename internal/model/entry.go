package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// EntryKind distinguishes revenue from expense entries.
type EntryKind string

const (
	KindRevenue EntryKind = "revenue"
	KindExpense EntryKind = "expense"
)

// EntryStatus is the lifecycle state of a one-off entry.
type EntryStatus string

const (
	StatusPlanned   EntryStatus = "planned"
	StatusRealized  EntryStatus = "realized"
	StatusCancelled EntryStatus = "cancelled"
)

// Entry is a one-off dated revenue or expense event, distinct from the
// recurring monthly fixed expenses. Amount is always positive; Kind decides
// the direction.
type Entry struct {
	ID          string
	CompanyID   string
	Kind        EntryKind
	Date        time.Time
	Description string
	Amount      decimal.Decimal
	Category    string
	Status      EntryStatus
	Note        string
}

// Signed returns the amount with the sign implied by the entry kind.
func (e Entry) Signed() decimal.Decimal {
	if e.Kind == KindExpense {
		return e.Amount.Neg()
	}
	return e.Amount
}
