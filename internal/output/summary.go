package output

import (
	"fmt"
	"strings"

	"github.com/rgehrsitz/rrgo/internal/domain"
)

// Summary builds the plain-text block copied to the clipboard.
// The after-tax lines need est.Tax; without it they show the placeholder.
func Summary(est *domain.Estimate) string {
	p := est.Payout
	t := est.Tax
	if t == nil {
		t = &domain.TaxBreakdown{}
	}

	years := est.Input.YearsOfService.String()
	leaveHours := est.Input.AnnualLeaveHours.String()
	etpRate := "by age group"
	if est.Tax != nil {
		etpRate = Percent(t.ETPRate)
	}

	lines := []string{
		fmt.Sprintf("Redundancy payout (AU), rough estimate (%s settings)", est.Policy),
		"",
		fmt.Sprintf("Total gross payout (redundancy + annual leave): %s", Money(p.TotalGross)),
		fmt.Sprintf("Total after tax (approx): %s", Money(t.TotalAfterTax)),
		"",
		fmt.Sprintf("Years of service: %s year(s)", years),
		fmt.Sprintf("Redundancy weeks (per table): %s", Number(decimalFromInt(p.RedundancyWeeks), 1)),
		fmt.Sprintf("Weekly rate: %s", Rate(p.WeeklyRate)),
		fmt.Sprintf("Hourly rate: %s", Rate(p.HourlyRate)),
		"",
		fmt.Sprintf("Redundancy pay (gross): %s", Money(p.RedundancyGross)),
		fmt.Sprintf("Tax-free redundancy cap used: %s (of formula cap: %s)", Money(t.TaxFreeRedundancyPortion), Money(t.TaxFreeThreshold)),
		fmt.Sprintf("Taxable redundancy (ETP): %s", Money(t.TaxableRedundancyPortion)),
		fmt.Sprintf("ETP age group: %s", est.Input.AgeGroup.Label()),
		fmt.Sprintf("Approx tax on redundancy (ETP): %s", MoneyExact(t.RedundancyTax)),
		fmt.Sprintf("Redundancy after tax: %s", Money(t.RedundancyAfterTax)),
		"",
		fmt.Sprintf("Annual leave payout (gross): %s (hours: %s, est. rate: %s%%)", Money(p.LeaveGross), leaveHours, est.Input.MarginalTaxRatePercent.String()),
		fmt.Sprintf("Approx tax on annual leave: %s", MoneyExact(t.LeaveTax)),
		fmt.Sprintf("Annual leave after tax: %s", Money(t.LeaveAfterTax)),
		"",
	}
	lines = append(lines, Disclaimer(est.Policy, etpRate)...)
	return strings.Join(lines, "\n")
}
