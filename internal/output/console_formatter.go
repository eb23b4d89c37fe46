package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/rgehrsitz/rrgo/internal/domain"
)

// ConsoleFormatter renders the estimate as an aligned text report
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console" }

func (c ConsoleFormatter) Format(est *domain.Estimate) ([]byte, error) {
	var buf bytes.Buffer
	d := NewDisplay(est)

	fmt.Fprintln(&buf, strings.Repeat("=", 60))
	fmt.Fprintf(&buf, "REDUNDANCY PAYOUT ESTIMATE (%s)\n", d.Policy)
	fmt.Fprintln(&buf, strings.Repeat("=", 60))
	fmt.Fprintf(&buf, "%-34s %s\n", d.HeadlineLabel+":", d.Headline)
	fmt.Fprintln(&buf)

	fmt.Fprintln(&buf, "PAYOUT")
	fmt.Fprintln(&buf, strings.Repeat("-", 40))
	row(&buf, "Years of service", d.Years)
	row(&buf, "Redundancy weeks", d.RedundancyWeeks)
	row(&buf, "Weekly rate", d.WeeklyRate)
	row(&buf, "Hourly rate", d.HourlyRate)
	row(&buf, "Redundancy pay (gross)", d.RedundancyPay)
	row(&buf, "Annual leave payout (gross)", d.LeavePayout)
	row(&buf, "Total gross", d.TotalGross)
	fmt.Fprintln(&buf)

	if d.ShowTax {
		fmt.Fprintln(&buf, "AFTER TAX (APPROX)")
		fmt.Fprintln(&buf, strings.Repeat("-", 40))
		row(&buf, "Tax-free threshold", d.TaxFreeThreshold)
		row(&buf, "Tax-free redundancy", d.TaxFreeRedundancy)
		row(&buf, "Taxable redundancy (ETP)", d.TaxableRedundancy)
		row(&buf, "ETP age group", d.AgeGroup)
		row(&buf, "ETP rate", d.ETPRate)
		row(&buf, "Tax on redundancy", d.RedundancyTax)
		row(&buf, "Redundancy after tax", d.RedundancyAfterTax)
		row(&buf, "Marginal rate (leave)", d.MarginalRate)
		row(&buf, "Tax on annual leave", d.LeaveTax)
		row(&buf, "Annual leave after tax", d.LeaveAfterTax)
		row(&buf, "Total after tax", d.TotalAfterTax)
		fmt.Fprintln(&buf)
	}

	if d.Mortgage != nil {
		fmt.Fprintln(&buf, "MORTGAGE COVERAGE")
		fmt.Fprintln(&buf, strings.Repeat("-", 40))
		row(&buf, "Monthly repayment", d.Mortgage.Repayment)
		row(&buf, "Months covered", d.Mortgage.Months)
		row(&buf, "Weeks covered", d.Mortgage.Weeks)
		fmt.Fprintln(&buf, d.Mortgage.Sentence)
		fmt.Fprintln(&buf)
	}

	fmt.Fprintln(&buf, "KEY ASSUMPTIONS:")
	for _, a := range d.Assumptions {
		fmt.Fprintf(&buf, "• %s\n", a)
	}
	return buf.Bytes(), nil
}

func row(buf *bytes.Buffer, label, value string) {
	fmt.Fprintf(buf, "  %-30s %s\n", label+":", value)
}
