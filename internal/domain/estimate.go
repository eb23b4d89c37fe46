package domain

import (
	"github.com/shopspring/decimal"
)

// PayoutBreakdown contains the gross redundancy and leave figures
type PayoutBreakdown struct {
	RedundancyWeeks int             `json:"redundancy_weeks"`
	WeeklyRate      decimal.Decimal `json:"weekly_rate"`
	HourlyRate      decimal.Decimal `json:"hourly_rate"`
	RedundancyGross decimal.Decimal `json:"redundancy_gross"`
	LeaveGross      decimal.Decimal `json:"leave_gross"`
	TotalGross      decimal.Decimal `json:"total_gross"`
}

// TaxBreakdown is an approximation of the tax on the payout.
// It is not a certified tax computation: flat ETP rates and a single
// marginal rate for leave stand in for the full rules.
type TaxBreakdown struct {
	TaxFreeThreshold         decimal.Decimal `json:"tax_free_threshold"`
	TaxFreeRedundancyPortion decimal.Decimal `json:"tax_free_redundancy_portion"`
	TaxableRedundancyPortion decimal.Decimal `json:"taxable_redundancy_portion"`
	ETPRate                  decimal.Decimal `json:"etp_rate"`
	RedundancyTax            decimal.Decimal `json:"redundancy_tax"`
	RedundancyAfterTax       decimal.Decimal `json:"redundancy_after_tax"`
	MarginalRatePercent      decimal.Decimal `json:"marginal_rate_percent"`
	LeaveTax                 decimal.Decimal `json:"leave_tax"`
	LeaveAfterTax            decimal.Decimal `json:"leave_after_tax"`
	TotalAfterTax            decimal.Decimal `json:"total_after_tax"`
}

// MortgageCoverage says how long the payout would meet the loan repayments.
// When Available is false the figures are zero and Reason says why.
type MortgageCoverage struct {
	Available        bool            `json:"available"`
	Reason           string          `json:"reason,omitempty"`
	InterestOnly     bool            `json:"interest_only"`
	Basis            View            `json:"basis"`
	MonthlyRepayment decimal.Decimal `json:"monthly_repayment"`
	CoverageMonths   decimal.Decimal `json:"coverage_months"`
	CoverageWeeks    decimal.Decimal `json:"coverage_weeks"`
}

// Estimate is the full result of one recompute. Tax is nil in the before-tax view
// and Mortgage is nil when the mortgage panel is hidden.
type Estimate struct {
	Policy   string            `json:"policy"`
	View     View              `json:"view"`
	Empty    bool              `json:"empty"`
	Input    EstimatorInput    `json:"input"`
	Payout   PayoutBreakdown   `json:"payout"`
	Tax      *TaxBreakdown     `json:"tax,omitempty"`
	Mortgage *MortgageCoverage `json:"mortgage,omitempty"`

	// Weeks used to turn salary into a weekly rate and months into weeks
	WeeksPerYear  decimal.Decimal `json:"weeks_per_year"`
	WeeksPerMonth decimal.Decimal `json:"weeks_per_month"`
}

// HeadlineTotal returns the total for the active view
func (e *Estimate) HeadlineTotal() decimal.Decimal {
	if e.View == ViewAfterTax && e.Tax != nil {
		return e.Tax.TotalAfterTax
	}
	return e.Payout.TotalGross
}
