package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

// AgeGroup selects the flat ETP rate applied to the taxable part of a redundancy payment
type AgeGroup string

const (
	AgeUnder60 AgeGroup = "under60"
	Age60Plus  AgeGroup = "60plus"
)

// ParseAgeGroup maps form and config spellings onto an AgeGroup. Anything unrecognised is under 60.
func ParseAgeGroup(s string) AgeGroup {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "60plus", "60+", "sixtyplus", "over60", "60_plus", "60-plus":
		return Age60Plus
	default:
		return AgeUnder60
	}
}

// AgeGroupForAge returns Age60Plus when age is at or above threshold
func AgeGroupForAge(age, threshold int) AgeGroup {
	if age >= threshold {
		return Age60Plus
	}
	return AgeUnder60
}

// Label returns the human readable label used on the summary
func (g AgeGroup) Label() string {
	if g == Age60Plus {
		return "60 or older"
	}
	return "Under 60"
}

// UnmarshalText accepts any spelling ParseAgeGroup understands
func (g *AgeGroup) UnmarshalText(text []byte) error {
	*g = ParseAgeGroup(string(text))
	return nil
}

// View selects which total drives the headline figure and the mortgage coverage
type View string

const (
	ViewBeforeTax View = "before_tax"
	ViewAfterTax  View = "after_tax"
)

// ParseView maps a flag value onto a View, defaulting to before tax
func ParseView(s string) View {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "after_tax", "after-tax", "aftertax", "after", "net":
		return ViewAfterTax
	default:
		return ViewBeforeTax
	}
}

// EstimatorInput is one snapshot of the payout form
type EstimatorInput struct {
	YearsOfService         decimal.Decimal `yaml:"years_of_service" json:"years_of_service"`
	AnnualLeaveHours       decimal.Decimal `yaml:"annual_leave_hours" json:"annual_leave_hours"`
	StandardHoursPerWeek   decimal.Decimal `yaml:"standard_hours_per_week" json:"standard_hours_per_week"`
	AnnualSalary           decimal.Decimal `yaml:"annual_salary" json:"annual_salary"`
	AgeGroup               AgeGroup        `yaml:"age_group" json:"age_group"`
	Age                    int             `yaml:"age,omitempty" json:"age,omitempty"`
	MarginalTaxRatePercent decimal.Decimal `yaml:"marginal_tax_rate_percent" json:"marginal_tax_rate_percent"`
}

// HasMeaningfulInput reports whether any of years, salary or leave hours is non-zero.
// Without one of them every output renders as a placeholder.
func (in EstimatorInput) HasMeaningfulInput() bool {
	return !in.YearsOfService.IsZero() || !in.AnnualSalary.IsZero() || !in.AnnualLeaveHours.IsZero()
}

// MortgageInput describes the loan used by the coverage helper
type MortgageInput struct {
	LoanAmount                decimal.Decimal `yaml:"loan_amount" json:"loan_amount"`
	LoanTermYears             decimal.Decimal `yaml:"loan_term_years" json:"loan_term_years"`
	AnnualInterestRatePercent decimal.Decimal `yaml:"annual_interest_rate_percent" json:"annual_interest_rate_percent"`
	InterestOnly              bool            `yaml:"interest_only" json:"interest_only"`
}

// Snapshot is everything the estimator needs for one recompute.
// A nil Mortgage means the mortgage panel is hidden.
type Snapshot struct {
	Policy   string         `yaml:"policy,omitempty" json:"policy,omitempty"`
	View     View           `yaml:"view,omitempty" json:"view,omitempty"`
	Input    EstimatorInput `yaml:"input" json:"input"`
	Mortgage *MortgageInput `yaml:"mortgage,omitempty" json:"mortgage,omitempty"`
}

var amountReplacer = strings.NewReplacer("$", "", ",", "", "_", "", " ", "", "%", "")

// ParseAmount reads a form value. Empty, non-numeric and non-finite values read as zero.
func ParseAmount(s string) decimal.Decimal {
	cleaned := amountReplacer.Replace(strings.TrimSpace(s))
	if cleaned == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero
	}
	return d
}
