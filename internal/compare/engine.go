package compare

import (
	"context"
	"fmt"

	"github.com/rgehrsitz/rrgo/internal/calculation"
	"github.com/rgehrsitz/rrgo/internal/domain"
)

// CompareEngine runs one input under several policy tables
type CompareEngine struct {
	Policies          *domain.PolicySet
	MetricsCalculator *MetricsCalculator
	Logger            calculation.Logger
}

// NewCompareEngine creates a new comparison engine
func NewCompareEngine(policies *domain.PolicySet) *CompareEngine {
	if policies == nil {
		policies = domain.BuiltInPolicies()
	}
	return &CompareEngine{
		Policies:          policies,
		MetricsCalculator: NewMetricsCalculator(),
		Logger:            calculation.NopLogger{},
	}
}

// Compare estimates snap under its own policy (the base) and under each named alternative.
// Estimates always use the after-tax view so tax deltas can be reported.
func (ce *CompareEngine) Compare(ctx context.Context, snap domain.Snapshot, alternatives []string) (*ComparisonSet, error) {
	snap.View = domain.ViewAfterTax

	basePolicy, err := ce.Policies.Get(snap.Policy)
	if err != nil {
		return nil, fmt.Errorf("base policy: %w", err)
	}

	baseResult := ce.run(basePolicy, snap)

	results := []ComparisonResult{}
	seen := map[string]bool{basePolicy.Name: true}
	for _, name := range alternatives {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		policy, err := ce.Policies.Get(name)
		if err != nil {
			return nil, fmt.Errorf("alternative policy: %w", err)
		}
		if seen[policy.Name] {
			ce.Logger.Debugf("skipping duplicate policy %s", policy.Name)
			continue
		}
		seen[policy.Name] = true

		altResult := ce.run(policy, snap)
		altResult = ce.MetricsCalculator.CalculateComparison(altResult, baseResult)
		results = append(results, altResult)
	}

	compSet := &ComparisonSet{
		BasePolicyName:     basePolicy.Name,
		BaseResult:         &baseResult,
		AlternativeResults: results,
	}
	compSet.Recommendations = GenerateRecommendations(compSet)
	return compSet, nil
}

// CompareAll compares snap against every other known policy table
func (ce *CompareEngine) CompareAll(ctx context.Context, snap domain.Snapshot) (*ComparisonSet, error) {
	return ce.Compare(ctx, snap, ce.Policies.Names())
}

func (ce *CompareEngine) run(policy domain.Policy, snap domain.Snapshot) ComparisonResult {
	engine := calculation.NewEngineWithPolicy(policy)
	engine.SetLogger(ce.Logger)
	est := engine.Estimate(snap)
	return ce.MetricsCalculator.CalculateMetrics(policy, est)
}
