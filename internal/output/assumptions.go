package output

import (
	"github.com/shopspring/decimal"

	"github.com/rgehrsitz/rrgo/internal/domain"
)

// Assumptions lists the simplifications behind an estimate, rendered in detailed outputs.
// The week conversions come from the policy table the estimate was built with.
func Assumptions(est *domain.Estimate) []string {
	std := domain.StandardDefaults()
	perYear, perMonth := std.WeeksPerYear, std.WeeksPerMonth
	if est != nil && est.WeeksPerYear.IsPositive() {
		perYear = est.WeeksPerYear
	}
	if est != nil && est.WeeksPerMonth.IsPositive() {
		perMonth = est.WeeksPerMonth
	}

	return []string{
		"Redundancy weeks follow the policy scale by completed years of service",
		"Weekly rate is annual salary divided by " + perYear.String(),
		"Taxable redundancy is taxed at a flat ETP rate by age group, up to the ETP cap",
		"Annual leave is taxed at the single marginal rate entered",
		"Mortgage coverage uses " + perMonth.String() + " weeks per month",
	}
}

// Disclaimer returns the closing note naming the policy table and ETP rate used
func Disclaimer(policy, etpRate string) []string {
	return []string{
		"Note: This is a simple guide only. It uses " + policy + " ATO tax-free redundancy limits and a",
		"flat ETP rate (" + etpRate + "), and assumes your taxable redundancy is under the ETP cap.",
		"Leave tax is approximated using the marginal rate you entered. Your actual outcome will depend",
		"on your full tax position, awards/agreements, any LSL splits, notice, and small-business rules.",
	}
}

func decimalFromInt(n int) decimal.Decimal { return decimal.NewFromInt(int64(n)) }
