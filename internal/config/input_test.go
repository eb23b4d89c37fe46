package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rgehrsitz/rrgo/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestInputParser_LoadFromFile(t *testing.T) {
	path := writeFile(t, "estimate.yaml", `
view: after_tax
input:
  years_of_service: 5
  annual_leave_hours: 76
  annual_salary: 104000
  age_group: under60
mortgage:
  loan_amount: 400000
  loan_term_years: 30
  annual_interest_rate_percent: 6
`)

	snap, err := NewInputParser().LoadFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, domain.ViewAfterTax, snap.View)
	assert.True(t, snap.Input.YearsOfService.Equal(decimal.NewFromInt(5)))
	assert.True(t, snap.Input.StandardHoursPerWeek.IsZero(), "defaults are applied by the engine, not the parser")
	require.NotNil(t, snap.Mortgage)
	assert.True(t, snap.Mortgage.LoanTermYears.Equal(decimal.NewFromInt(30)))
}

func TestInputParser_LoadFromFile_NotFound(t *testing.T) {
	_, err := NewInputParser().LoadFromFile(filepath.Join(t.TempDir(), "missing.yaml"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read file")
}

func TestInputParser_Parse_InvalidYAML(t *testing.T) {
	_, err := NewInputParser().Parse([]byte("input: [unclosed"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse YAML")
}

func TestInputParser_ValidateSnapshot(t *testing.T) {
	tests := []struct {
		name    string
		snap    domain.Snapshot
		wantErr string
	}{
		{
			name: "valid empty snapshot",
			snap: domain.Snapshot{},
		},
		{
			name:    "negative years",
			snap:    domain.Snapshot{Input: domain.EstimatorInput{YearsOfService: decimal.NewFromInt(-1)}},
			wantErr: "years of service cannot be negative",
		},
		{
			name:    "negative salary",
			snap:    domain.Snapshot{Input: domain.EstimatorInput{AnnualSalary: decimal.NewFromInt(-1)}},
			wantErr: "annual salary cannot be negative",
		},
		{
			name:    "too many hours",
			snap:    domain.Snapshot{Input: domain.EstimatorInput{StandardHoursPerWeek: decimal.NewFromInt(200)}},
			wantErr: "cannot exceed 168",
		},
		{
			name:    "marginal rate out of range",
			snap:    domain.Snapshot{Input: domain.EstimatorInput{MarginalTaxRatePercent: decimal.NewFromInt(120)}},
			wantErr: "marginal tax rate",
		},
		{
			name:    "negative age",
			snap:    domain.Snapshot{Input: domain.EstimatorInput{Age: -1}},
			wantErr: "age must be between 0 and 120",
		},
		{
			name: "age in range",
			snap: domain.Snapshot{Input: domain.EstimatorInput{Age: 61}},
		},
		{
			name:    "negative loan",
			snap:    domain.Snapshot{Mortgage: &domain.MortgageInput{LoanAmount: decimal.NewFromInt(-5)}},
			wantErr: "loan amount cannot be negative",
		},
		{
			name:    "long loan term",
			snap:    domain.Snapshot{Mortgage: &domain.MortgageInput{LoanTermYears: decimal.NewFromInt(60)}},
			wantErr: "loan term cannot exceed 50 years",
		},
		{
			name:    "unknown view",
			snap:    domain.Snapshot{View: "sideways"},
			wantErr: "view must be",
		},
	}

	parser := NewInputParser()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := parser.ValidateSnapshot(&tt.snap)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestInputParser_LoadPolicies_BuiltInOnly(t *testing.T) {
	set, err := NewInputParser().LoadPolicies("")
	require.NoError(t, err)

	assert.Equal(t, domain.DefaultPolicyName, set.Default)
	assert.Equal(t, []string{"2022-23", "2024-25"}, set.Names())
}

func TestInputParser_LoadPolicies_WithFile(t *testing.T) {
	path := writeFile(t, "policy.yaml", `
default: 2025-26
policies:
  2025-26:
    description: Indexed thresholds
    tax_free:
      base: 12524
      per_year: 6264
    etp:
      rate_under_threshold: 0.32
      rate_at_or_above: 0.17
      cap: 245000
      age_threshold: 60
`)

	set, err := NewInputParser().LoadPolicies(path)
	require.NoError(t, err)

	assert.Equal(t, "2025-26", set.Default)
	assert.Len(t, set.Names(), 3)

	p, err := set.Get("")
	require.NoError(t, err)
	assert.Equal(t, "2025-26", p.Name)
	assert.Equal(t, "12524", p.TaxFree.Base.String())
	assert.Equal(t, domain.StandardRedundancyScale(), p.RedundancyScale, "missing scale falls back to the standard table")
	assert.Equal(t, "38", p.Defaults.HoursPerWeek.String(), "missing defaults are filled in")
	assert.Equal(t, "4.33", p.Defaults.WeeksPerMonth.String())
}

func TestInputParser_LoadPolicySet_Errors(t *testing.T) {
	parser := NewInputParser()

	_, err := parser.LoadPolicySet(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read policy file")

	empty := writeFile(t, "empty.yaml", "default: x\n")
	_, err = parser.LoadPolicySet(empty)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "defines no policies")

	badDefault := writeFile(t, "bad-default.yaml", `
default: missing
policies:
  a:
    etp:
      rate_under_threshold: 0.32
`)
	_, err = parser.LoadPolicySet(badDefault)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `default policy "missing"`)

	badRate := writeFile(t, "bad-rate.yaml", `
policies:
  a:
    etp:
      rate_under_threshold: 1.5
`)
	_, err = parser.LoadPolicySet(badRate)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "policy a validation failed")
}

func TestInputParser_ValidatePolicy(t *testing.T) {
	parser := NewInputParser()

	valid := domain.DefaultPolicy()
	assert.NoError(t, parser.ValidatePolicy(&valid))

	tests := []struct {
		name    string
		mutate  func(p *domain.Policy)
		wantErr string
	}{
		{"empty scale", func(p *domain.Policy) { p.RedundancyScale = nil }, "redundancy scale is required"},
		{"scale not from zero", func(p *domain.Policy) { p.RedundancyScale = []domain.RedundancyStep{{MinYears: 1, Weeks: 4}} }, "must start at 0"},
		{"scale out of order", func(p *domain.Policy) {
			p.RedundancyScale = []domain.RedundancyStep{{MinYears: 0}, {MinYears: 3, Weeks: 7}, {MinYears: 2, Weeks: 6}}
		}, "ascending order"},
		{"negative weeks", func(p *domain.Policy) { p.RedundancyScale = []domain.RedundancyStep{{MinYears: 0, Weeks: -1}} }, "negative weeks"},
		{"negative base", func(p *domain.Policy) { p.TaxFree.Base = decimal.NewFromInt(-1) }, "tax-free amounts"},
		{"rate above one", func(p *domain.Policy) { p.ETP.RateAtOrAbove = decimal.NewFromInt(2) }, "at or above threshold"},
		{"negative cap", func(p *domain.Policy) { p.ETP.Cap = decimal.NewFromInt(-1) }, "ETP cap"},
		{"bad age threshold", func(p *domain.Policy) { p.ETP.AgeThreshold = 200 }, "age threshold"},
		{"zero hours", func(p *domain.Policy) { p.Defaults.HoursPerWeek = decimal.Zero }, "hours per week"},
		{"zero weeks per month", func(p *domain.Policy) { p.Defaults.WeeksPerMonth = decimal.Zero }, "weeks per month"},
		{"default rate above max", func(p *domain.Policy) { p.Defaults.MarginalRatePercent = decimal.NewFromInt(70) }, "default marginal rate"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := domain.DefaultPolicy()
			tt.mutate(&p)
			err := parser.ValidatePolicy(&p)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestBuiltInPolicies_AreValid(t *testing.T) {
	parser := NewInputParser()
	set := domain.BuiltInPolicies()

	for _, name := range set.Names() {
		p, err := set.Get(name)
		require.NoError(t, err)
		assert.NoError(t, parser.ValidatePolicy(&p), name)
	}
}

func TestLoadEnv(t *testing.T) {
	path := writeFile(t, "test.env", "RRGO_POLICY=2022-23\nRRGO_FORMAT=json\n")
	t.Setenv(EnvPolicy, "")
	t.Setenv(EnvFormat, "csv")
	t.Setenv(EnvPolicyFile, "")
	os.Unsetenv(EnvPolicy)

	env, err := LoadEnv(path)
	require.NoError(t, err)

	assert.Equal(t, "2022-23", env.Policy)
	assert.Equal(t, "csv", env.Format, "variables already set are not overridden")
}

func TestLoadEnv_MissingFileIsIgnored(t *testing.T) {
	_, err := LoadEnv(filepath.Join(t.TempDir(), ".env"))
	assert.NoError(t, err)
}

func TestResolvePolicyFile(t *testing.T) {
	assert.Equal(t, "flag.yaml", ResolvePolicyFile("flag.yaml", Env{PolicyFile: "env.yaml"}))
	assert.Equal(t, "env.yaml", ResolvePolicyFile("", Env{PolicyFile: "env.yaml"}))

	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	assert.Equal(t, "", ResolvePolicyFile("", Env{}))

	require.NoError(t, os.WriteFile(DefaultPolicyFile, []byte("policies: {}\n"), 0o644))
	assert.Equal(t, DefaultPolicyFile, ResolvePolicyFile("", Env{}))
}
