package calculation

import (
	"github.com/rgehrsitz/rrgo/internal/domain"
	"github.com/shopspring/decimal"
)

// Payout calculates the gross redundancy and leave figures for a normalised input
func (e *Engine) Payout(in domain.EstimatorInput) domain.PayoutBreakdown {
	weeks := RedundancyWeeks(in.YearsOfService, e.Policy.RedundancyScale)

	var weeklyRate decimal.Decimal
	if in.AnnualSalary.IsPositive() {
		weeklyRate = in.AnnualSalary.Div(e.weeksPerYear())
	}

	hoursPerWeek := in.StandardHoursPerWeek
	var hourlyRate, leaveGross decimal.Decimal
	if hoursPerWeek.IsPositive() {
		hourlyRate = weeklyRate.Div(hoursPerWeek)
		// Multiply before dividing so whole-week balances stay exact
		leaveGross = weeklyRate.Mul(in.AnnualLeaveHours).Div(hoursPerWeek)
	}

	redundancyGross := weeklyRate.Mul(decimal.NewFromInt(int64(weeks)))

	return domain.PayoutBreakdown{
		RedundancyWeeks: weeks,
		WeeklyRate:      weeklyRate,
		HourlyRate:      hourlyRate,
		RedundancyGross: redundancyGross,
		LeaveGross:      leaveGross,
		TotalGross:      redundancyGross.Add(leaveGross),
	}
}

func (e *Engine) weeksPerYear() decimal.Decimal {
	if w := e.Policy.Defaults.WeeksPerYear; w.IsPositive() {
		return w
	}
	return domain.StandardDefaults().WeeksPerYear
}
