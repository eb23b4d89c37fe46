package config

import (
	"fmt"
	"os"

	"github.com/rgehrsitz/rrgo/internal/domain"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// InputParser handles parsing of estimate snapshots and policy tables
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads an estimate snapshot from a YAML file
func (ip *InputParser) LoadFromFile(filename string) (*domain.Snapshot, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return ip.Parse(data)
}

// Parse decodes and validates a snapshot
func (ip *InputParser) Parse(data []byte) (*domain.Snapshot, error) {
	var snap domain.Snapshot
	if err := yaml.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.ValidateSnapshot(&snap); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &snap, nil
}

// ValidateSnapshot checks a snapshot loaded from a file.
// The engine itself accepts anything; this catches typos before they are silently zeroed.
func (ip *InputParser) ValidateSnapshot(snap *domain.Snapshot) error {
	if err := ip.validateInput(&snap.Input); err != nil {
		return fmt.Errorf("input validation failed: %w", err)
	}
	if snap.Mortgage != nil {
		if err := ip.validateMortgage(snap.Mortgage); err != nil {
			return fmt.Errorf("mortgage validation failed: %w", err)
		}
	}
	if snap.View != "" && snap.View != domain.ViewBeforeTax && snap.View != domain.ViewAfterTax {
		return fmt.Errorf("view must be 'before_tax' or 'after_tax'")
	}
	return nil
}

func (ip *InputParser) validateInput(in *domain.EstimatorInput) error {
	if in.YearsOfService.IsNegative() {
		return fmt.Errorf("years of service cannot be negative")
	}
	if in.AnnualLeaveHours.IsNegative() {
		return fmt.Errorf("annual leave hours cannot be negative")
	}
	if in.StandardHoursPerWeek.IsNegative() {
		return fmt.Errorf("standard hours per week cannot be negative")
	}
	if in.StandardHoursPerWeek.GreaterThan(decimal.NewFromInt(168)) {
		return fmt.Errorf("standard hours per week cannot exceed 168")
	}
	if in.AnnualSalary.IsNegative() {
		return fmt.Errorf("annual salary cannot be negative")
	}
	if in.Age < 0 || in.Age > 120 {
		return fmt.Errorf("age must be between 0 and 120")
	}
	if in.MarginalTaxRatePercent.IsNegative() || in.MarginalTaxRatePercent.GreaterThan(decimal.NewFromInt(100)) {
		return fmt.Errorf("marginal tax rate must be between 0 and 100 percent")
	}
	return nil
}

func (ip *InputParser) validateMortgage(m *domain.MortgageInput) error {
	if m.LoanAmount.IsNegative() {
		return fmt.Errorf("loan amount cannot be negative")
	}
	if m.LoanTermYears.IsNegative() {
		return fmt.Errorf("loan term cannot be negative")
	}
	if m.LoanTermYears.GreaterThan(decimal.NewFromInt(50)) {
		return fmt.Errorf("loan term cannot exceed 50 years")
	}
	if m.AnnualInterestRatePercent.IsNegative() {
		return fmt.Errorf("interest rate cannot be negative")
	}
	return nil
}

// LoadPolicySet loads additional policy tables from a YAML file
func (ip *InputParser) LoadPolicySet(filename string) (*domain.PolicySet, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read policy file %s: %w", filename, err)
	}

	var set domain.PolicySet
	if err := yaml.Unmarshal(data, &set); err != nil {
		return nil, fmt.Errorf("failed to parse policy YAML: %w", err)
	}
	if len(set.Policies) == 0 {
		return nil, fmt.Errorf("policy file %s defines no policies", filename)
	}

	for name, p := range set.Policies {
		p.Name = name
		if len(p.RedundancyScale) == 0 {
			p.RedundancyScale = domain.StandardRedundancyScale()
		}
		p.Defaults = withStandardDefaults(p.Defaults)
		if err := ip.ValidatePolicy(&p); err != nil {
			return nil, fmt.Errorf("policy %s validation failed: %w", name, err)
		}
		set.Policies[name] = p
	}
	if set.Default != "" {
		if _, ok := set.Policies[set.Default]; !ok {
			return nil, fmt.Errorf("default policy %q is not defined in %s", set.Default, filename)
		}
	}
	return &set, nil
}

// LoadPolicies returns the built-in tables, overlaid with filename when it is not empty
func (ip *InputParser) LoadPolicies(filename string) (*domain.PolicySet, error) {
	set := domain.BuiltInPolicies()
	if filename == "" {
		return set, nil
	}
	extra, err := ip.LoadPolicySet(filename)
	if err != nil {
		return nil, err
	}
	set.Merge(extra)
	return set, nil
}

// ValidatePolicy checks that a policy table is usable
func (ip *InputParser) ValidatePolicy(p *domain.Policy) error {
	if len(p.RedundancyScale) == 0 {
		return fmt.Errorf("redundancy scale is required")
	}
	if p.RedundancyScale[0].MinYears != 0 {
		return fmt.Errorf("redundancy scale must start at 0 years")
	}
	for i, step := range p.RedundancyScale {
		if step.Weeks < 0 {
			return fmt.Errorf("redundancy scale step %d has negative weeks", i)
		}
		if i > 0 && step.MinYears <= p.RedundancyScale[i-1].MinYears {
			return fmt.Errorf("redundancy scale must be in ascending order of years (step %d)", i)
		}
	}

	if p.TaxFree.Base.IsNegative() || p.TaxFree.PerYear.IsNegative() {
		return fmt.Errorf("tax-free amounts cannot be negative")
	}

	one := decimal.NewFromInt(1)
	if p.ETP.RateUnderThreshold.IsNegative() || p.ETP.RateUnderThreshold.GreaterThan(one) {
		return fmt.Errorf("ETP rate under threshold must be between 0 and 1")
	}
	if p.ETP.RateAtOrAbove.IsNegative() || p.ETP.RateAtOrAbove.GreaterThan(one) {
		return fmt.Errorf("ETP rate at or above threshold must be between 0 and 1")
	}
	if p.ETP.Cap.IsNegative() {
		return fmt.Errorf("ETP cap cannot be negative")
	}
	if p.ETP.AgeThreshold < 0 || p.ETP.AgeThreshold > 120 {
		return fmt.Errorf("ETP age threshold must be between 0 and 120")
	}

	d := p.Defaults
	if !d.HoursPerWeek.IsPositive() {
		return fmt.Errorf("default hours per week must be positive")
	}
	if !d.WeeksPerYear.IsPositive() || !d.WeeksPerMonth.IsPositive() {
		return fmt.Errorf("weeks per year and weeks per month must be positive")
	}
	if d.MarginalRatePercent.IsNegative() || d.MarginalRatePercent.GreaterThan(d.MaxMarginalRatePercent) {
		return fmt.Errorf("default marginal rate must be between 0 and the maximum marginal rate")
	}
	return nil
}

// withStandardDefaults fills any zero default with the standard value
func withStandardDefaults(d domain.PolicyDefaults) domain.PolicyDefaults {
	std := domain.StandardDefaults()
	if d.HoursPerWeek.IsZero() {
		d.HoursPerWeek = std.HoursPerWeek
	}
	if d.MarginalRatePercent.IsZero() {
		d.MarginalRatePercent = std.MarginalRatePercent
	}
	if d.MaxMarginalRatePercent.IsZero() {
		d.MaxMarginalRatePercent = std.MaxMarginalRatePercent
	}
	if d.WeeksPerYear.IsZero() {
		d.WeeksPerYear = std.WeeksPerYear
	}
	if d.WeeksPerMonth.IsZero() {
		d.WeeksPerMonth = std.WeeksPerMonth
	}
	return d
}
