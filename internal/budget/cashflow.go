package budget

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/MuriloHTS/orca/internal/model"
)

var (
	// ErrInvalidMonth reports a month outside the 1..12 range.
	ErrInvalidMonth = errors.New("month out of range")
	// ErrOutsideMonth reports an entry dated outside the synthesized month.
	ErrOutsideMonth = errors.New("entry dated outside target month")
)

// DropCancelled returns the entries with cancelled ones removed. Cancelled
// entries stay in history but never reach the cash-flow projection.
func DropCancelled(entries []model.Entry) []model.Entry {
	out := make([]model.Entry, 0, len(entries))
	for _, e := range entries {
		if e.Status == model.StatusCancelled {
			continue
		}
		out = append(out, e)
	}
	return out
}

// SynthesizeMonth spreads the recurring monthly revenue and expense totals
// evenly across the month's calendar days and overlays one-off entries on
// the days they fall due, producing one row per day with a running balance.
// Entries must all be dated inside the target month; anything else is an
// upstream filtering bug and fails the whole call.
func SynthesizeMonth(
	year int,
	month int,
	monthlyRevenue decimal.Decimal,
	monthlyExpense decimal.Decimal,
	entries []model.Entry,
) ([]model.DailyCashFlow, error) {
	if month < 1 || month > 12 {
		return nil, fmt.Errorf("synthesize %d-%02d: %w", year, month, ErrInvalidMonth)
	}

	days := model.DaysInMonth(year, month)
	nDays := decimal.NewFromInt(int64(days))
	dailyRevenue := monthlyRevenue.Div(nDays)
	dailyExpense := monthlyExpense.Div(nDays)

	byDay := make(map[int][]model.Entry)
	for _, e := range entries {
		if e.Date.Year() != year || int(e.Date.Month()) != month {
			return nil, fmt.Errorf("entry %q dated %s: %w",
				e.Description, e.Date.Format("2006-01-02"), ErrOutsideMonth)
		}
		byDay[e.Date.Day()] = append(byDay[e.Date.Day()], e)
	}

	flows := make([]model.DailyCashFlow, 0, days)
	cumulative := decimal.Zero

	for day := 1; day <= days; day++ {
		revenue := dailyRevenue
		expense := dailyExpense

		// All of a day's entries count toward its totals; the first one is
		// kept as the representative entry for display.
		var rep *model.Entry
		for i, e := range byDay[day] {
			if e.Kind == model.KindExpense {
				expense = expense.Add(e.Amount)
			} else {
				revenue = revenue.Add(e.Amount)
			}
			if i == 0 {
				first := e
				rep = &first
			}
		}

		net := revenue.Sub(expense)
		cumulative = cumulative.Add(net)

		flows = append(flows, model.DailyCashFlow{
			Day:        day,
			Date:       time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC),
			Revenue:    revenue,
			Expense:    expense,
			Net:        net,
			Cumulative: cumulative,
			Entry:      rep,
		})
	}

	return flows, nil
}
