package domain

import (
	"errors"
	"fmt"
	"sort"

	"github.com/shopspring/decimal"
)

// ErrUnknownPolicy is returned when a named policy table is not in the set
var ErrUnknownPolicy = errors.New("unknown policy")

// DefaultPolicyName is the table used when nothing else is selected
const DefaultPolicyName = "2024-25"

// RedundancyStep grants Weeks of pay from MinYears completed years of service
type RedundancyStep struct {
	MinYears int `yaml:"min_years" json:"min_years"`
	Weeks    int `yaml:"weeks" json:"weeks"`
}

// TaxFreeRules is the genuine redundancy threshold: Base plus PerYear for each completed year
type TaxFreeRules struct {
	Base    decimal.Decimal `yaml:"base" json:"base"`
	PerYear decimal.Decimal `yaml:"per_year" json:"per_year"`
}

// ETPRules contains the flat rates applied to the taxable redundancy portion
type ETPRules struct {
	RateUnderThreshold decimal.Decimal `yaml:"rate_under_threshold" json:"rate_under_threshold"`
	RateAtOrAbove      decimal.Decimal `yaml:"rate_at_or_above" json:"rate_at_or_above"`
	Cap                decimal.Decimal `yaml:"cap" json:"cap"`
	AgeThreshold       int             `yaml:"age_threshold" json:"age_threshold"`
}

// RateFor returns the ETP rate for an age group
func (r ETPRules) RateFor(group AgeGroup) decimal.Decimal {
	if group == Age60Plus {
		return r.RateAtOrAbove
	}
	return r.RateUnderThreshold
}

// PolicyDefaults are the values substituted for missing or out of range inputs
type PolicyDefaults struct {
	HoursPerWeek           decimal.Decimal `yaml:"hours_per_week" json:"hours_per_week"`
	MarginalRatePercent    decimal.Decimal `yaml:"marginal_rate_percent" json:"marginal_rate_percent"`
	MaxMarginalRatePercent decimal.Decimal `yaml:"max_marginal_rate_percent" json:"max_marginal_rate_percent"`
	WeeksPerYear           decimal.Decimal `yaml:"weeks_per_year" json:"weeks_per_year"`
	WeeksPerMonth          decimal.Decimal `yaml:"weeks_per_month" json:"weeks_per_month"`
}

// Policy is one versioned table of constants. Several can coexist in a PolicySet.
type Policy struct {
	Name            string           `yaml:"-" json:"name"`
	Description     string           `yaml:"description" json:"description"`
	RedundancyScale []RedundancyStep `yaml:"redundancy_scale" json:"redundancy_scale"`
	TaxFree         TaxFreeRules     `yaml:"tax_free" json:"tax_free"`
	ETP             ETPRules         `yaml:"etp" json:"etp"`
	Defaults        PolicyDefaults   `yaml:"defaults" json:"defaults"`
}

// PolicySet holds named policy tables and the one used by default
type PolicySet struct {
	Default  string            `yaml:"default" json:"default"`
	Policies map[string]Policy `yaml:"policies" json:"policies"`
}

// Get returns the named policy, or the default policy when name is empty
func (ps *PolicySet) Get(name string) (Policy, error) {
	if name == "" {
		name = ps.Default
	}
	p, ok := ps.Policies[name]
	if !ok {
		return Policy{}, fmt.Errorf("%w: %q (available: %v)", ErrUnknownPolicy, name, ps.Names())
	}
	p.Name = name
	return p, nil
}

// Names returns the policy names in sorted order
func (ps *PolicySet) Names() []string {
	names := make([]string, 0, len(ps.Policies))
	for n := range ps.Policies {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Merge overlays other on top of ps. Tables in other replace tables of the same name.
func (ps *PolicySet) Merge(other *PolicySet) {
	if other == nil {
		return
	}
	if ps.Policies == nil {
		ps.Policies = make(map[string]Policy, len(other.Policies))
	}
	for name, p := range other.Policies {
		p.Name = name
		ps.Policies[name] = p
	}
	if other.Default != "" {
		ps.Default = other.Default
	}
}

// StandardRedundancyScale is the entitlement table shared by every published table.
// The drop from 16 weeks to 12 at ten years is source data and is kept as is.
func StandardRedundancyScale() []RedundancyStep {
	return []RedundancyStep{
		{MinYears: 0, Weeks: 0},
		{MinYears: 1, Weeks: 4},
		{MinYears: 2, Weeks: 6},
		{MinYears: 3, Weeks: 7},
		{MinYears: 4, Weeks: 8},
		{MinYears: 5, Weeks: 10},
		{MinYears: 6, Weeks: 11},
		{MinYears: 7, Weeks: 13},
		{MinYears: 8, Weeks: 14},
		{MinYears: 9, Weeks: 16},
		{MinYears: 10, Weeks: 12},
	}
}

// StandardDefaults returns the named input defaults
func StandardDefaults() PolicyDefaults {
	return PolicyDefaults{
		HoursPerWeek:           decimal.NewFromInt(38),
		MarginalRatePercent:    decimal.NewFromInt(32),
		MaxMarginalRatePercent: decimal.NewFromInt(60),
		WeeksPerYear:           decimal.NewFromInt(52),
		WeeksPerMonth:          decimal.RequireFromString("4.33"),
	}
}

// DefaultPolicy returns the built-in 2024-25 table
func DefaultPolicy() Policy {
	p, _ := BuiltInPolicies().Get(DefaultPolicyName)
	return p
}

// BuiltInPolicies returns the tables compiled into the binary
func BuiltInPolicies() *PolicySet {
	return &PolicySet{
		Default: DefaultPolicyName,
		Policies: map[string]Policy{
			"2024-25": {
				Name:            "2024-25",
				Description:     "Genuine redundancy thresholds as published for 2024-25 settings",
				RedundancyScale: StandardRedundancyScale(),
				TaxFree: TaxFreeRules{
					Base:    decimal.NewFromInt(11985),
					PerYear: decimal.NewFromInt(5994),
				},
				ETP: ETPRules{
					RateUnderThreshold: decimal.RequireFromString("0.32"),
					RateAtOrAbove:      decimal.RequireFromString("0.17"),
					Cap:                decimal.NewFromInt(235000),
					AgeThreshold:       60,
				},
				Defaults: StandardDefaults(),
			},
			"2022-23": {
				Name:            "2022-23",
				Description:     "Genuine redundancy thresholds for the 2022-23 income year",
				RedundancyScale: StandardRedundancyScale(),
				TaxFree: TaxFreeRules{
					Base:    decimal.NewFromInt(11341),
					PerYear: decimal.NewFromInt(5672),
				},
				ETP: ETPRules{
					RateUnderThreshold: decimal.RequireFromString("0.32"),
					RateAtOrAbove:      decimal.RequireFromString("0.17"),
					Cap:                decimal.NewFromInt(230000),
					AgeThreshold:       60,
				},
				Defaults: StandardDefaults(),
			},
		},
	}
}
