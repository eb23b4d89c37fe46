package output

import (
	"fmt"

	"github.com/rgehrsitz/rrgo/internal/calculation"
	"github.com/rgehrsitz/rrgo/internal/domain"
)

// Headline labels for the two views
const (
	LabelBeforeTax = "Total gross payout (before tax)"
	LabelAfterTax  = "Total after tax (approx)"
)

// Display holds every figure of an estimate as the text shown to the user
type Display struct {
	Policy        string
	View          domain.View
	Empty         bool
	HeadlineLabel string
	Headline      string

	Years           string
	RedundancyWeeks string
	WeeklyRate      string
	HourlyRate      string
	RedundancyPay   string
	LeavePayout     string
	TotalGross      string

	ShowTax            bool
	TaxFreeThreshold   string
	TaxFreeRedundancy  string
	TaxableRedundancy  string
	ETPRate            string
	RedundancyTax      string
	RedundancyAfterTax string
	MarginalRate       string
	LeaveTax           string
	LeaveAfterTax      string
	TotalAfterTax      string

	AgeGroup   string
	LeaveHours string

	Mortgage *MortgageDisplay

	Assumptions []string
}

// MortgageDisplay is the text of the mortgage coverage panel
type MortgageDisplay struct {
	Available bool
	Repayment string
	Months    string
	Weeks     string
	Sentence  string
}

// NewDisplay formats an estimate. When the estimate has no meaningful input
// every figure is the placeholder.
func NewDisplay(est *domain.Estimate) Display {
	d := Display{
		Policy:        est.Policy,
		View:          est.View,
		Empty:         est.Empty,
		HeadlineLabel: LabelBeforeTax,
		ShowTax:       est.Tax != nil,
		AgeGroup:      est.Input.AgeGroup.Label(),
		LeaveHours:    est.Input.AnnualLeaveHours.String(),
		Assumptions:   Assumptions(est),
	}
	if est.View == domain.ViewAfterTax {
		d.HeadlineLabel = LabelAfterTax
	}

	if est.Empty {
		d.fillPlaceholders()
		if est.Mortgage != nil {
			d.Mortgage = &MortgageDisplay{Repayment: Placeholder, Months: Placeholder, Weeks: Placeholder, Sentence: Placeholder}
		}
		return d
	}

	p := est.Payout
	d.Headline = Money(est.HeadlineTotal())
	d.Years = est.Input.YearsOfService.String()
	d.RedundancyWeeks = Number(decimalFromInt(p.RedundancyWeeks), 1)
	d.WeeklyRate = MoneyExact(p.WeeklyRate)
	d.HourlyRate = Rate(p.HourlyRate)
	d.RedundancyPay = Money(p.RedundancyGross)
	d.LeavePayout = Money(p.LeaveGross)
	d.TotalGross = Money(p.TotalGross)

	d.fillTax(est.Tax)

	if est.Mortgage != nil {
		d.Mortgage = newMortgageDisplay(est.Mortgage)
	}
	return d
}

func (d *Display) fillTax(t *domain.TaxBreakdown) {
	if t == nil {
		d.TaxFreeThreshold = Placeholder
		d.TaxFreeRedundancy = Placeholder
		d.TaxableRedundancy = Placeholder
		d.ETPRate = Placeholder
		d.RedundancyTax = Placeholder
		d.RedundancyAfterTax = Placeholder
		d.MarginalRate = Placeholder
		d.LeaveTax = Placeholder
		d.LeaveAfterTax = Placeholder
		d.TotalAfterTax = Placeholder
		return
	}
	d.TaxFreeThreshold = Money(t.TaxFreeThreshold)
	d.TaxFreeRedundancy = Money(t.TaxFreeRedundancyPortion)
	d.TaxableRedundancy = Money(t.TaxableRedundancyPortion)
	d.ETPRate = Percent(t.ETPRate)
	d.RedundancyTax = MoneyExact(t.RedundancyTax)
	d.RedundancyAfterTax = Money(t.RedundancyAfterTax)
	d.MarginalRate = t.MarginalRatePercent.String() + "%"
	d.LeaveTax = MoneyExact(t.LeaveTax)
	d.LeaveAfterTax = Money(t.LeaveAfterTax)
	d.TotalAfterTax = Money(t.TotalAfterTax)
}

func (d *Display) fillPlaceholders() {
	d.Headline = Placeholder
	d.Years = Placeholder
	d.RedundancyWeeks = Placeholder
	d.WeeklyRate = Placeholder
	d.HourlyRate = Placeholder
	d.RedundancyPay = Placeholder
	d.LeavePayout = Placeholder
	d.TotalGross = Placeholder
	d.fillTax(nil)
}

func newMortgageDisplay(c *domain.MortgageCoverage) *MortgageDisplay {
	if !c.Available {
		reason := c.Reason
		if reason == "" {
			reason = calculation.ReasonNoRepayment
		}
		return &MortgageDisplay{
			Repayment: Placeholder,
			Months:    Placeholder,
			Weeks:     Placeholder,
			Sentence:  "Mortgage coverage unavailable: " + reason + ".",
		}
	}

	kind := "repayments"
	if c.InterestOnly {
		kind = "interest-only repayments"
	}
	total := "gross payout"
	if c.Basis == domain.ViewAfterTax {
		total = "after-tax payout"
	}

	md := &MortgageDisplay{
		Available: true,
		Repayment: MoneyExact(c.MonthlyRepayment),
		Months:    Number(c.CoverageMonths, 1),
		Weeks:     Number(c.CoverageWeeks, 1),
	}
	md.Sentence = fmt.Sprintf("At %s a month in %s, your %s would cover about %s months (%s weeks).",
		md.Repayment, kind, total, md.Months, md.Weeks)
	return md
}
