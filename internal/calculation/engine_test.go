package calculation

import (
	"fmt"
	"testing"

	"github.com/rgehrsitz/rrgo/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEngine(t *testing.T) {
	engine := NewEngine()

	assert.NotNil(t, engine, "Should create engine")
	assert.Equal(t, domain.DefaultPolicyName, engine.Policy.Name, "Should use default policy")
	assert.NotEmpty(t, engine.Policy.RedundancyScale, "Should carry the redundancy scale")
	assert.NotNil(t, engine.Logger, "Should initialize logger")
}

func TestNewEngineWithPolicy_FillsMissingScale(t *testing.T) {
	policy := domain.DefaultPolicy()
	policy.RedundancyScale = nil

	engine := NewEngineWithPolicy(policy)

	assert.Equal(t, domain.StandardRedundancyScale(), engine.Policy.RedundancyScale)
}

func TestEngine_SetLogger(t *testing.T) {
	engine := NewEngine()

	customLogger := &TestLogger{}
	engine.SetLogger(customLogger)
	assert.Equal(t, customLogger, engine.Logger, "Should set custom logger")

	engine.SetLogger(nil)
	assert.NotNil(t, engine.Logger, "Should not be nil")
	assert.IsType(t, NopLogger{}, engine.Logger, "Should be no-op logger")
}

func TestEngine_Normalize(t *testing.T) {
	engine := NewEngine()

	tests := []struct {
		name         string
		in           domain.EstimatorInput
		wantHours    string
		wantMarginal string
		wantAge      domain.AgeGroup
	}{
		{
			name:         "empty input gets defaults",
			in:           domain.EstimatorInput{},
			wantHours:    "38",
			wantMarginal: "32",
			wantAge:      domain.AgeUnder60,
		},
		{
			name: "rate above ceiling is capped",
			in: domain.EstimatorInput{
				StandardHoursPerWeek:   decimal.NewFromInt(40),
				MarginalTaxRatePercent: decimal.NewFromInt(75),
				AgeGroup:               domain.Age60Plus,
			},
			wantHours:    "40",
			wantMarginal: "60",
			wantAge:      domain.Age60Plus,
		},
		{
			name: "negative rate falls back to default",
			in: domain.EstimatorInput{
				MarginalTaxRatePercent: decimal.NewFromInt(-5),
				AgeGroup:               "bogus",
			},
			wantHours:    "38",
			wantMarginal: "32",
			wantAge:      domain.AgeUnder60,
		},
		{
			name: "age at threshold selects 60 plus",
			in: domain.EstimatorInput{
				Age:      60,
				AgeGroup: domain.AgeUnder60,
			},
			wantHours:    "38",
			wantMarginal: "32",
			wantAge:      domain.Age60Plus,
		},
		{
			name: "age below threshold overrides the group",
			in: domain.EstimatorInput{
				Age:      45,
				AgeGroup: domain.Age60Plus,
			},
			wantHours:    "38",
			wantMarginal: "32",
			wantAge:      domain.AgeUnder60,
		},
		{
			name: "rate inside range is kept",
			in: domain.EstimatorInput{
				StandardHoursPerWeek:   decimal.RequireFromString("37.5"),
				MarginalTaxRatePercent: decimal.NewFromInt(45),
			},
			wantHours:    "37.5",
			wantMarginal: "45",
			wantAge:      domain.AgeUnder60,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := engine.Normalize(tt.in)
			assert.Equal(t, tt.wantHours, got.StandardHoursPerWeek.String())
			assert.Equal(t, tt.wantMarginal, got.MarginalTaxRatePercent.String())
			assert.Equal(t, tt.wantAge, got.AgeGroup)
		})
	}
}

func TestEngine_Normalize_NegativeAmountsBecomeZero(t *testing.T) {
	engine := NewEngine()

	got := engine.Normalize(domain.EstimatorInput{
		YearsOfService:   decimal.NewFromInt(-3),
		AnnualLeaveHours: decimal.NewFromInt(-10),
		AnnualSalary:     decimal.NewFromInt(-50000),
	})

	assert.True(t, got.YearsOfService.IsZero())
	assert.True(t, got.AnnualLeaveHours.IsZero())
	assert.True(t, got.AnnualSalary.IsZero())
}

func TestEngine_Normalize_AgeThresholdFromPolicy(t *testing.T) {
	policy := domain.DefaultPolicy()
	policy.ETP.AgeThreshold = 65
	engine := NewEngineWithPolicy(policy)

	assert.Equal(t, domain.AgeUnder60, engine.Normalize(domain.EstimatorInput{Age: 62}).AgeGroup)
	assert.Equal(t, domain.Age60Plus, engine.Normalize(domain.EstimatorInput{Age: 65}).AgeGroup)

	policy.ETP.AgeThreshold = 0
	engine = NewEngineWithPolicy(policy)
	got := engine.Normalize(domain.EstimatorInput{Age: 70, AgeGroup: domain.AgeUnder60})
	assert.Equal(t, domain.AgeUnder60, got.AgeGroup, "a table without a threshold keeps the entered group")
}

func TestEngine_Estimate_RecordsWeekConversions(t *testing.T) {
	policy := domain.DefaultPolicy()
	policy.Defaults.WeeksPerYear = decimal.NewFromInt(50)
	policy.Defaults.WeeksPerMonth = decimal.RequireFromString("4.35")
	engine := NewEngineWithPolicy(policy)

	est := engine.Estimate(domain.Snapshot{Input: domain.EstimatorInput{
		YearsOfService: decimal.NewFromInt(4),
		AnnualSalary:   decimal.NewFromInt(100000),
	}})

	assert.Equal(t, "50", est.WeeksPerYear.String())
	assert.Equal(t, "4.35", est.WeeksPerMonth.String())
	assert.Equal(t, "2000.00", est.Payout.WeeklyRate.StringFixed(2))

	policy.Defaults.WeeksPerYear = decimal.Zero
	est = NewEngineWithPolicy(policy).Estimate(domain.Snapshot{})
	assert.Equal(t, "52", est.WeeksPerYear.String(), "missing weeks per year falls back to the standard value")
}

func TestEngine_Estimate_WorkedScenario(t *testing.T) {
	engine := NewEngine()

	est := engine.Estimate(domain.Snapshot{
		View: domain.ViewAfterTax,
		Input: domain.EstimatorInput{
			YearsOfService:       decimal.NewFromInt(4),
			AnnualSalary:         decimal.NewFromInt(104000),
			StandardHoursPerWeek: decimal.NewFromInt(38),
			AnnualLeaveHours:     decimal.NewFromInt(76),
		},
		Mortgage: &domain.MortgageInput{
			LoanAmount:                decimal.NewFromInt(400000),
			LoanTermYears:             decimal.NewFromInt(30),
			AnnualInterestRatePercent: decimal.NewFromInt(6),
		},
	})

	require.NotNil(t, est)
	assert.False(t, est.Empty)
	assert.Equal(t, 8, est.Payout.RedundancyWeeks)
	assert.True(t, est.Payout.WeeklyRate.Equal(decimal.NewFromInt(2000)))
	assert.Equal(t, "52.63", est.Payout.HourlyRate.StringFixed(2))
	assert.True(t, est.Payout.RedundancyGross.Equal(decimal.NewFromInt(16000)))
	assert.True(t, est.Payout.LeaveGross.Equal(decimal.NewFromInt(4000)))
	assert.True(t, est.Payout.TotalGross.Equal(decimal.NewFromInt(20000)))

	require.NotNil(t, est.Tax)
	assert.True(t, est.Tax.TaxableRedundancyPortion.IsZero(), "16000 sits under the 35961 threshold")
	assert.Equal(t, "1280.00", est.Tax.LeaveTax.StringFixed(2))
	assert.Equal(t, "18720.00", est.Tax.TotalAfterTax.StringFixed(2))
	assert.True(t, est.HeadlineTotal().Equal(est.Tax.TotalAfterTax))

	require.NotNil(t, est.Mortgage)
	assert.True(t, est.Mortgage.Available)
	assert.Equal(t, domain.ViewAfterTax, est.Mortgage.Basis)
	assert.Equal(t, "2398", est.Mortgage.MonthlyRepayment.StringFixed(0))
}

func TestEngine_Estimate_FiveYearsUsesScale(t *testing.T) {
	engine := NewEngine()

	est := engine.Estimate(domain.Snapshot{
		Input: domain.EstimatorInput{
			YearsOfService:   decimal.NewFromInt(5),
			AnnualSalary:     decimal.NewFromInt(104000),
			AnnualLeaveHours: decimal.NewFromInt(76),
		},
	})

	assert.Equal(t, 10, est.Payout.RedundancyWeeks)
	assert.True(t, est.Payout.RedundancyGross.Equal(decimal.NewFromInt(20000)))
	assert.True(t, est.Payout.TotalGross.Equal(decimal.NewFromInt(24000)))
}

func TestEngine_Estimate_BeforeTaxCoverage(t *testing.T) {
	engine := NewEngine()

	est := engine.Estimate(domain.Snapshot{
		Input: domain.EstimatorInput{
			YearsOfService:   decimal.NewFromInt(4),
			AnnualSalary:     decimal.NewFromInt(104000),
			AnnualLeaveHours: decimal.NewFromInt(76),
		},
		Mortgage: &domain.MortgageInput{
			LoanAmount:                decimal.NewFromInt(400000),
			LoanTermYears:             decimal.NewFromInt(30),
			AnnualInterestRatePercent: decimal.NewFromInt(6),
		},
	})

	assert.Equal(t, domain.ViewBeforeTax, est.View)
	assert.Nil(t, est.Tax, "Tax breakdown only exists in the after-tax view")
	require.NotNil(t, est.Mortgage)
	assert.Equal(t, "8.3", est.Mortgage.CoverageMonths.StringFixed(1))
}

func TestEngine_Estimate_EmptyInput(t *testing.T) {
	engine := NewEngine()

	est := engine.Estimate(domain.Snapshot{
		View:     domain.ViewAfterTax,
		Mortgage: &domain.MortgageInput{},
	})

	assert.True(t, est.Empty)
	assert.True(t, est.Payout.TotalGross.IsZero())
	assert.True(t, est.Payout.HourlyRate.IsZero())
	require.NotNil(t, est.Tax)
	assert.True(t, est.Tax.TotalAfterTax.IsZero())
	require.NotNil(t, est.Mortgage)
	assert.False(t, est.Mortgage.Available)
	assert.Equal(t, ReasonNoLoan, est.Mortgage.Reason)
}

func TestEngine_Estimate_ReturnsFreshResults(t *testing.T) {
	engine := NewEngine()
	snap := domain.Snapshot{Input: domain.EstimatorInput{YearsOfService: decimal.NewFromInt(3), AnnualSalary: decimal.NewFromInt(52000)}}

	first := engine.Estimate(snap)
	first.Payout.TotalGross = decimal.NewFromInt(1)
	second := engine.Estimate(snap)

	assert.True(t, second.Payout.TotalGross.Equal(decimal.NewFromInt(7000)))
}

func TestEngine_Estimate_LogsWhenDebugging(t *testing.T) {
	engine := NewEngine()
	logger := &TestLogger{}
	engine.SetLogger(logger)
	engine.Debug = true

	engine.Estimate(domain.Snapshot{Input: domain.EstimatorInput{AnnualSalary: decimal.NewFromInt(52000)}})

	assert.NotEmpty(t, logger.messages)
}

// TestLogger is a simple logger for testing
type TestLogger struct {
	messages []string
}

func (l *TestLogger) Debugf(format string, args ...any) {
	l.messages = append(l.messages, "DEBUG: "+fmt.Sprintf(format, args...))
}

func (l *TestLogger) Infof(format string, args ...any) {
	l.messages = append(l.messages, "INFO: "+fmt.Sprintf(format, args...))
}

func (l *TestLogger) Warnf(format string, args ...any) {
	l.messages = append(l.messages, "WARN: "+fmt.Sprintf(format, args...))
}

func (l *TestLogger) Errorf(format string, args ...any) {
	l.messages = append(l.messages, "ERROR: "+fmt.Sprintf(format, args...))
}
