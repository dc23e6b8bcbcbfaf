package budget

import (
	"github.com/shopspring/decimal"

	"github.com/MuriloHTS/orca/internal/model"
)

// nearTargetFloor is the realized/planned ratio at or above which a month
// that missed its plan still classifies as near target.
var nearTargetFloor = decimal.NewFromFloat(0.9)

// Reconcile pairs each month's planned revenue with its realized value for
// a full year, months 1..12 in order, carrying cumulative sums strictly
// left to right. A nil premise plans zero for every month; a month without
// an actual realizes zero. When actuals contain duplicates for one month
// the first in input order wins (the store prevents duplicates upstream).
func Reconcile(p *model.Premise, actuals []model.MonthlyActual) ([]model.MonthlyReconciliation, model.YearSummary) {
	summary := model.YearSummary{BestMonth: 1, WorstMonth: 1}
	if p != nil {
		summary.Year = p.Year
	} else if len(actuals) > 0 {
		summary.Year = actuals[0].Year
	}

	months := make([]model.MonthlyReconciliation, 0, 12)
	cumPlanned := decimal.Zero
	cumRealized := decimal.Zero
	var bestPct, worstPct int64

	for month := 1; month <= 12; month++ {
		planned := Allocate(p, month)

		realized := decimal.Zero
		for _, a := range actuals {
			if a.Month == month {
				realized = a.Amount
				summary.MonthsReported++
				break
			}
		}

		cumPlanned = cumPlanned.Add(planned)
		cumRealized = cumRealized.Add(realized)
		pct := percentOf(realized, planned)

		months = append(months, model.MonthlyReconciliation{
			Month:              month,
			Planned:            planned,
			Realized:           realized,
			Variance:           realized.Sub(planned),
			CumulativePlanned:  cumPlanned,
			CumulativeRealized: cumRealized,
			PercentRealized:    pct,
			Status:             classify(planned, realized),
		})

		// Best ties go to the later month, worst ties to the earlier one.
		if month == 1 {
			bestPct, worstPct = pct, pct
			continue
		}
		if pct >= bestPct {
			bestPct = pct
			summary.BestMonth = month
		}
		if pct < worstPct {
			worstPct = pct
			summary.WorstMonth = month
		}
	}

	summary.TotalPlanned = cumPlanned
	summary.TotalRealized = cumRealized
	summary.Variance = cumRealized.Sub(cumPlanned)
	summary.PercentRealized = percentOf(cumRealized, cumPlanned)

	return months, summary
}

// percentOf returns round(realized/planned*100), or 0 when there is no
// positive plan to measure against.
func percentOf(realized, planned decimal.Decimal) int64 {
	if !planned.IsPositive() {
		return 0
	}
	return realized.Div(planned).Mul(hundred).Round(0).IntPart()
}

func classify(planned, realized decimal.Decimal) model.MonthStatus {
	switch {
	case realized.IsZero():
		return model.StatusPending
	case realized.GreaterThanOrEqual(planned):
		return model.StatusAchieved
	case realized.IsPositive() && realized.GreaterThanOrEqual(planned.Mul(nearTargetFloor)):
		return model.StatusNearTarget
	default:
		return model.StatusBelowTarget
	}
}
