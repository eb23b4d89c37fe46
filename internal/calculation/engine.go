package calculation

import (
	"github.com/rgehrsitz/rrgo/internal/domain"
	"github.com/shopspring/decimal"
)

// Engine runs the payout estimate for one policy table.
// It keeps no state between calls; every Estimate builds a fresh result.
type Engine struct {
	Policy domain.Policy
	Logger Logger
	Debug  bool
}

// NewEngine creates an engine using the built-in default policy
func NewEngine() *Engine {
	return NewEngineWithPolicy(domain.DefaultPolicy())
}

// NewEngineWithPolicy creates an engine for a specific policy table
func NewEngineWithPolicy(policy domain.Policy) *Engine {
	if len(policy.RedundancyScale) == 0 {
		policy.RedundancyScale = domain.StandardRedundancyScale()
	}
	return &Engine{
		Policy: policy,
		Logger: NopLogger{},
	}
}

// SetLogger sets the engine logger; nil restores the no-op logger
func (e *Engine) SetLogger(l Logger) {
	if l == nil {
		e.Logger = NopLogger{}
		return
	}
	e.Logger = l
}

// Normalize applies the policy defaults to a raw input snapshot.
// Negative amounts become zero, missing hours per week use the default,
// and the marginal rate falls back to the default when not positive and is capped at the maximum.
// A positive age overrides the age group using the policy's ETP age threshold.
func (e *Engine) Normalize(in domain.EstimatorInput) domain.EstimatorInput {
	d := e.Policy.Defaults
	out := in

	out.YearsOfService = nonNegative(in.YearsOfService)
	out.AnnualLeaveHours = nonNegative(in.AnnualLeaveHours)
	out.AnnualSalary = nonNegative(in.AnnualSalary)

	if !in.StandardHoursPerWeek.IsPositive() {
		out.StandardHoursPerWeek = d.HoursPerWeek
		e.Logger.Debugf("hours per week %s not set, using default %s", in.StandardHoursPerWeek, d.HoursPerWeek)
	}

	if !in.MarginalTaxRatePercent.IsPositive() {
		out.MarginalTaxRatePercent = d.MarginalRatePercent
		e.Logger.Debugf("marginal rate %s not set, using default %s%%", in.MarginalTaxRatePercent, d.MarginalRatePercent)
	} else if d.MaxMarginalRatePercent.IsPositive() && in.MarginalTaxRatePercent.GreaterThan(d.MaxMarginalRatePercent) {
		out.MarginalTaxRatePercent = d.MaxMarginalRatePercent
		e.Logger.Debugf("marginal rate %s%% capped at %s%%", in.MarginalTaxRatePercent, d.MaxMarginalRatePercent)
	}

	if in.Age > 0 && e.Policy.ETP.AgeThreshold > 0 {
		out.AgeGroup = domain.AgeGroupForAge(in.Age, e.Policy.ETP.AgeThreshold)
		e.Logger.Debugf("age %d gives ETP age group %s", in.Age, out.AgeGroup)
	} else if out.AgeGroup != domain.Age60Plus {
		out.AgeGroup = domain.AgeUnder60
	}
	if out.Age < 0 {
		out.Age = 0
	}
	return out
}

// Estimate recomputes every output for a snapshot
func (e *Engine) Estimate(s domain.Snapshot) *domain.Estimate {
	in := e.Normalize(s.Input)
	view := s.View
	if view != domain.ViewAfterTax {
		view = domain.ViewBeforeTax
	}

	est := &domain.Estimate{
		Policy: e.Policy.Name,
		View:   view,
		Empty:  !in.HasMeaningfulInput(),
		Input:  in,
		Payout: e.Payout(in),

		WeeksPerYear:  e.weeksPerYear(),
		WeeksPerMonth: e.weeksPerMonth(),
	}

	if view == domain.ViewAfterTax {
		tax := e.Tax(in, est.Payout)
		est.Tax = &tax
	}

	if s.Mortgage != nil {
		coverage := e.Coverage(est.HeadlineTotal(), view, *s.Mortgage)
		est.Mortgage = &coverage
	}

	if e.Debug {
		e.Logger.Debugf("estimate policy=%s weeks=%d gross=%s headline=%s",
			est.Policy, est.Payout.RedundancyWeeks, est.Payout.TotalGross.StringFixed(2), est.HeadlineTotal().StringFixed(2))
	}
	return est
}

func nonNegative(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}
