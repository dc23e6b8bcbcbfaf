package budget

import (
	"fmt"
	"sort"

	"github.com/MuriloHTS/orca/internal/model"
)

// UncategorizedLabel buckets entries that carry no category.
const UncategorizedLabel = "Uncategorized"

// SummarizePeriod aggregates one-off entries over an inclusive month range
// of one year: totals split planned versus realized, a per-month breakdown
// for months that have entries, and a per-category breakdown sorted by
// absolute net impact. Entries outside the year or range are ignored.
// An empty input yields zero totals and empty breakdowns.
func SummarizePeriod(entries []model.Entry, year, monthStart, monthEnd int) (model.PeriodSummary, error) {
	if monthStart < 1 || monthStart > 12 || monthEnd < 1 || monthEnd > 12 || monthEnd < monthStart {
		return model.PeriodSummary{}, fmt.Errorf("summarize %d months %d..%d: %w",
			year, monthStart, monthEnd, ErrInvalidMonth)
	}

	s := model.PeriodSummary{Year: year, MonthStart: monthStart, MonthEnd: monthEnd}
	byMonth := make(map[int]*model.MonthBreakdown)
	byCategory := make(map[string]*model.CategoryBreakdown)

	for _, e := range entries {
		m := int(e.Date.Month())
		if e.Date.Year() != year || m < monthStart || m > monthEnd {
			continue
		}
		s.EntryCount++

		isRevenue := e.Kind == model.KindRevenue
		isRealized := e.Status == model.StatusRealized

		switch {
		case isRevenue && isRealized:
			s.Totals.RealizedRevenue = s.Totals.RealizedRevenue.Add(e.Amount)
		case isRevenue:
			s.Totals.PlannedRevenue = s.Totals.PlannedRevenue.Add(e.Amount)
		case isRealized:
			s.Totals.RealizedExpense = s.Totals.RealizedExpense.Add(e.Amount)
		default:
			s.Totals.PlannedExpense = s.Totals.PlannedExpense.Add(e.Amount)
		}

		mb, ok := byMonth[m]
		if !ok {
			mb = &model.MonthBreakdown{Month: m}
			byMonth[m] = mb
		}
		cat := e.Category
		if cat == "" {
			cat = UncategorizedLabel
		}
		cb, ok := byCategory[cat]
		if !ok {
			cb = &model.CategoryBreakdown{Category: cat}
			byCategory[cat] = cb
		}

		if isRevenue {
			mb.Revenue = mb.Revenue.Add(e.Amount)
			cb.Revenue = cb.Revenue.Add(e.Amount)
		} else {
			mb.Expense = mb.Expense.Add(e.Amount)
			cb.Expense = cb.Expense.Add(e.Amount)
		}
	}

	s.Totals.PlannedBalance = s.Totals.PlannedRevenue.Sub(s.Totals.PlannedExpense)
	s.Totals.RealizedBalance = s.Totals.RealizedRevenue.Sub(s.Totals.RealizedExpense)

	s.ByMonth = make([]model.MonthBreakdown, 0, len(byMonth))
	for _, mb := range byMonth {
		mb.Net = mb.Revenue.Sub(mb.Expense)
		s.ByMonth = append(s.ByMonth, *mb)
	}
	sort.Slice(s.ByMonth, func(i, j int) bool {
		return s.ByMonth[i].Month < s.ByMonth[j].Month
	})

	s.ByCategory = make([]model.CategoryBreakdown, 0, len(byCategory))
	for _, cb := range byCategory {
		cb.Net = cb.Revenue.Sub(cb.Expense)
		s.ByCategory = append(s.ByCategory, *cb)
	}
	sort.Slice(s.ByCategory, func(i, j int) bool {
		ci, cj := s.ByCategory[i], s.ByCategory[j]
		if cmp := ci.Net.Abs().Cmp(cj.Net.Abs()); cmp != 0 {
			return cmp > 0
		}
		return ci.Category < cj.Category
	})

	return s, nil
}
