package calculation

import (
	"github.com/rgehrsitz/rrgo/internal/domain"
	"github.com/shopspring/decimal"
)

// compoundPrecision bounds the digits kept while raising (1+r) to n
const compoundPrecision = 24

var monthsPerYear = decimal.NewFromInt(12)

// Reasons reported when coverage cannot be worked out
const (
	ReasonNoLoan      = "no loan amount"
	ReasonNoTerm      = "loan term must be at least one month"
	ReasonBadRate     = "interest rate cannot be negative"
	ReasonNoRepayment = "monthly repayment is zero"
)

// compound raises base to the non-negative integer power n by squaring,
// rounding each step so long terms do not grow unbounded precision.
func compound(base decimal.Decimal, n int64) decimal.Decimal {
	result := decimal.NewFromInt(1)
	for n > 0 {
		if n&1 == 1 {
			result = result.Mul(base).Round(compoundPrecision)
		}
		base = base.Mul(base).Round(compoundPrecision)
		n >>= 1
	}
	return result
}

// MonthlyRepayment returns the monthly repayment for a loan. The second value is
// an empty string on success, otherwise the reason no repayment could be worked out.
//
// Amortising loans use M = P·r·(1+r)^n / ((1+r)^n − 1) with r the monthly rate and
// n the number of monthly payments; a zero rate gives P/n. Interest-only loans pay P·r.
func MonthlyRepayment(m domain.MortgageInput) (decimal.Decimal, string) {
	principal := m.LoanAmount
	if !principal.IsPositive() {
		return decimal.Zero, ReasonNoLoan
	}
	if m.AnnualInterestRatePercent.IsNegative() {
		return decimal.Zero, ReasonBadRate
	}
	r := m.AnnualInterestRatePercent.Div(hundred).Div(monthsPerYear)

	if m.InterestOnly {
		payment := principal.Mul(r)
		if !payment.IsPositive() {
			return decimal.Zero, ReasonNoRepayment
		}
		return payment, ""
	}

	n := m.LoanTermYears.Mul(monthsPerYear).Floor().IntPart()
	if n <= 0 {
		return decimal.Zero, ReasonNoTerm
	}
	if r.IsZero() {
		return principal.Div(decimal.NewFromInt(n)), ""
	}

	factor := compound(decimal.NewFromInt(1).Add(r), n)
	denominator := factor.Sub(decimal.NewFromInt(1))
	if !denominator.IsPositive() {
		return decimal.Zero, ReasonNoRepayment
	}
	return principal.Mul(r).Mul(factor).Div(denominator), ""
}

// Coverage works out how many months of repayments total would meet
func (e *Engine) Coverage(total decimal.Decimal, basis domain.View, m domain.MortgageInput) domain.MortgageCoverage {
	coverage := domain.MortgageCoverage{
		Basis:        basis,
		InterestOnly: m.InterestOnly,
	}

	payment, reason := MonthlyRepayment(m)
	if reason != "" {
		e.Logger.Warnf("mortgage coverage unavailable: %s", reason)
		coverage.Reason = reason
		return coverage
	}

	weeksPerMonth := e.weeksPerMonth()

	months := decimal.Zero
	if total.IsPositive() {
		months = total.Div(payment)
	}

	coverage.Available = true
	coverage.MonthlyRepayment = payment
	coverage.CoverageMonths = months
	coverage.CoverageWeeks = months.Mul(weeksPerMonth)
	return coverage
}

func (e *Engine) weeksPerMonth() decimal.Decimal {
	if w := e.Policy.Defaults.WeeksPerMonth; w.IsPositive() {
		return w
	}
	return domain.StandardDefaults().WeeksPerMonth
}
