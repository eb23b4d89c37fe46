package domain

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", "0"},
		{"   ", "0"},
		{"abc", "0"},
		{"NaN", "0"},
		{"Infinity", "0"},
		{"12", "12"},
		{" 38.5 ", "38.5"},
		{"$104,000", "104000"},
		{"32%", "32"},
		{"-4", "-4"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseAmount(tt.in).String())
		})
	}
}

func TestParseAgeGroup(t *testing.T) {
	assert.Equal(t, Age60Plus, ParseAgeGroup("60plus"))
	assert.Equal(t, Age60Plus, ParseAgeGroup("sixtyPlus"))
	assert.Equal(t, Age60Plus, ParseAgeGroup(" 60+ "))
	assert.Equal(t, AgeUnder60, ParseAgeGroup("under60"))
	assert.Equal(t, AgeUnder60, ParseAgeGroup(""))
	assert.Equal(t, AgeUnder60, ParseAgeGroup("whatever"))
}

func TestAgeGroupForAge(t *testing.T) {
	assert.Equal(t, AgeUnder60, AgeGroupForAge(59, 60))
	assert.Equal(t, Age60Plus, AgeGroupForAge(60, 60))
	assert.Equal(t, Age60Plus, AgeGroupForAge(67, 60))
}

func TestAgeGroup_Label(t *testing.T) {
	assert.Equal(t, "60 or older", Age60Plus.Label())
	assert.Equal(t, "Under 60", AgeUnder60.Label())
}

func TestParseView(t *testing.T) {
	assert.Equal(t, ViewAfterTax, ParseView("after-tax"))
	assert.Equal(t, ViewAfterTax, ParseView("AFTER_TAX"))
	assert.Equal(t, ViewBeforeTax, ParseView(""))
	assert.Equal(t, ViewBeforeTax, ParseView("gross"))
}

func TestEstimatorInput_HasMeaningfulInput(t *testing.T) {
	assert.False(t, EstimatorInput{}.HasMeaningfulInput())
	assert.False(t, EstimatorInput{StandardHoursPerWeek: decimal.NewFromInt(38)}.HasMeaningfulInput())
	assert.True(t, EstimatorInput{YearsOfService: decimal.NewFromInt(1)}.HasMeaningfulInput())
	assert.True(t, EstimatorInput{AnnualSalary: decimal.NewFromInt(1)}.HasMeaningfulInput())
	assert.True(t, EstimatorInput{AnnualLeaveHours: decimal.NewFromInt(1)}.HasMeaningfulInput())
}

func TestSnapshot_YAML(t *testing.T) {
	data := []byte(`
policy: 2022-23
view: after_tax
input:
  years_of_service: 5
  annual_leave_hours: 76
  standard_hours_per_week: 38
  annual_salary: 104000
  age_group: sixtyPlus
  marginal_tax_rate_percent: 32
mortgage:
  loan_amount: 400000
  loan_term_years: 30
  annual_interest_rate_percent: 6
  interest_only: true
`)

	var snap Snapshot
	require.NoError(t, yaml.Unmarshal(data, &snap))

	assert.Equal(t, "2022-23", snap.Policy)
	assert.Equal(t, ViewAfterTax, snap.View)
	assert.Equal(t, Age60Plus, snap.Input.AgeGroup)
	assert.True(t, snap.Input.AnnualSalary.Equal(decimal.NewFromInt(104000)))
	require.NotNil(t, snap.Mortgage)
	assert.True(t, snap.Mortgage.InterestOnly)
	assert.True(t, snap.Mortgage.LoanAmount.Equal(decimal.NewFromInt(400000)))
}

func TestPolicySet_Get(t *testing.T) {
	set := BuiltInPolicies()

	p, err := set.Get("")
	require.NoError(t, err)
	assert.Equal(t, DefaultPolicyName, p.Name)
	assert.Equal(t, "11985", p.TaxFree.Base.String())
	assert.Equal(t, "5994", p.TaxFree.PerYear.String())
	assert.Equal(t, "235000", p.ETP.Cap.String())

	old, err := set.Get("2022-23")
	require.NoError(t, err)
	assert.Equal(t, "2022-23", old.Name)
	assert.Equal(t, "11341", old.TaxFree.Base.String())

	_, err = set.Get("1999-00")
	assert.True(t, errors.Is(err, ErrUnknownPolicy))
	assert.Contains(t, err.Error(), "2024-25")
}

func TestPolicySet_Names(t *testing.T) {
	assert.Equal(t, []string{"2022-23", "2024-25"}, BuiltInPolicies().Names())
}

func TestPolicySet_Merge(t *testing.T) {
	set := BuiltInPolicies()
	custom := DefaultPolicy()
	custom.TaxFree.Base = decimal.NewFromInt(12524)

	set.Merge(&PolicySet{
		Default:  "custom",
		Policies: map[string]Policy{"custom": custom},
	})

	assert.Equal(t, "custom", set.Default)
	p, err := set.Get("")
	require.NoError(t, err)
	assert.Equal(t, "custom", p.Name)
	assert.Equal(t, "12524", p.TaxFree.Base.String())
	assert.Len(t, set.Names(), 3)

	set.Merge(nil)
	assert.Len(t, set.Names(), 3)
}

func TestETPRules_RateFor(t *testing.T) {
	rules := DefaultPolicy().ETP

	assert.Equal(t, "0.32", rules.RateFor(AgeUnder60).String())
	assert.Equal(t, "0.17", rules.RateFor(Age60Plus).String())
}

func TestEstimate_HeadlineTotal(t *testing.T) {
	est := &Estimate{
		View:   ViewAfterTax,
		Payout: PayoutBreakdown{TotalGross: decimal.NewFromInt(20000)},
		Tax:    &TaxBreakdown{TotalAfterTax: decimal.NewFromInt(18720)},
	}
	assert.Equal(t, "18720", est.HeadlineTotal().String())

	est.View = ViewBeforeTax
	assert.Equal(t, "20000", est.HeadlineTotal().String())

	est.View = ViewAfterTax
	est.Tax = nil
	assert.Equal(t, "20000", est.HeadlineTotal().String())
}
