package compare

import (
	"strings"
	"testing"

	"github.com/rgehrsitz/rrgo/internal/domain"
	"github.com/shopspring/decimal"
)

func TestMetricsCalculator_CalculateMetrics(t *testing.T) {
	calc := NewMetricsCalculator()

	policy := domain.DefaultPolicy()
	policy.Name = "2024-25"
	policy.Description = "current thresholds"

	est := &domain.Estimate{
		Policy: "2024-25",
		View:   domain.ViewAfterTax,
		Payout: domain.PayoutBreakdown{RedundancyWeeks: 16, TotalGross: decimal.NewFromInt(80000)},
		Tax: &domain.TaxBreakdown{
			TaxFreeThreshold: decimal.NewFromInt(65931),
			RedundancyTax:    decimal.RequireFromString("4502.08"),
			LeaveTax:         decimal.NewFromInt(100),
			TotalAfterTax:    decimal.RequireFromString("75397.92"),
		},
		Mortgage: &domain.MortgageCoverage{Available: true, CoverageMonths: decimal.NewFromInt(31)},
	}

	result := calc.CalculateMetrics(policy, est)

	if result.PolicyName != "2024-25" || result.Description != "current thresholds" {
		t.Errorf("unexpected identity: %s / %s", result.PolicyName, result.Description)
	}
	if result.RedundancyWeeks != 16 {
		t.Errorf("expected 16 weeks, got %d", result.RedundancyWeeks)
	}
	if result.TotalTax.StringFixed(2) != "4602.08" {
		t.Errorf("expected total tax 4602.08, got %s", result.TotalTax.StringFixed(2))
	}
	if !result.TotalAfterTax.Equal(decimal.RequireFromString("75397.92")) {
		t.Errorf("unexpected after tax %s", result.TotalAfterTax)
	}
	if !result.CoverageMonths.Equal(decimal.NewFromInt(31)) {
		t.Errorf("expected coverage 31, got %s", result.CoverageMonths)
	}
}

func TestMetricsCalculator_CalculateMetrics_WithoutTaxOrMortgage(t *testing.T) {
	calc := NewMetricsCalculator()

	est := &domain.Estimate{Payout: domain.PayoutBreakdown{TotalGross: decimal.NewFromInt(5000)}}
	result := calc.CalculateMetrics(domain.DefaultPolicy(), est)

	if !result.TotalAfterTax.Equal(decimal.NewFromInt(5000)) {
		t.Errorf("after tax should fall back to gross, got %s", result.TotalAfterTax)
	}
	if !result.TotalTax.IsZero() || !result.CoverageMonths.IsZero() {
		t.Error("expected zero tax and coverage")
	}
}

func TestMetricsCalculator_CalculateComparison(t *testing.T) {
	calc := NewMetricsCalculator()

	base := ComparisonResult{
		PolicyName:     "base",
		TotalAfterTax:  decimal.NewFromInt(100000),
		TotalTax:       decimal.NewFromInt(10000),
		CoverageMonths: decimal.NewFromInt(40),
	}
	alt := ComparisonResult{
		PolicyName:     "alt",
		TotalAfterTax:  decimal.NewFromInt(105000),
		TotalTax:       decimal.NewFromInt(5000),
		CoverageMonths: decimal.NewFromInt(42),
	}

	result := calc.CalculateComparison(alt, base)

	if !result.AfterTaxDiffFromBase.Equal(decimal.NewFromInt(5000)) {
		t.Errorf("expected diff 5000, got %s", result.AfterTaxDiffFromBase)
	}
	if result.AfterTaxPctFromBase.StringFixed(1) != "5.0" {
		t.Errorf("expected 5.0%%, got %s", result.AfterTaxPctFromBase.StringFixed(1))
	}
	if !result.TaxDiffFromBase.Equal(decimal.NewFromInt(-5000)) {
		t.Errorf("expected tax diff -5000, got %s", result.TaxDiffFromBase)
	}
	if !result.CoverageMonthsDiff.Equal(decimal.NewFromInt(2)) {
		t.Errorf("expected coverage diff 2, got %s", result.CoverageMonthsDiff)
	}
}

func TestMetricsCalculator_CalculateComparison_ZeroBase(t *testing.T) {
	result := NewMetricsCalculator().CalculateComparison(
		ComparisonResult{TotalAfterTax: decimal.NewFromInt(10)},
		ComparisonResult{},
	)

	if !result.AfterTaxPctFromBase.IsZero() {
		t.Errorf("percentage should stay zero against a zero base, got %s", result.AfterTaxPctFromBase)
	}
}

func TestGenerateRecommendations(t *testing.T) {
	compSet := &ComparisonSet{
		BasePolicyName: "2022-23",
		BaseResult: &ComparisonResult{
			PolicyName:     "2022-23",
			TotalAfterTax:  decimal.NewFromInt(74364),
			TotalTax:       decimal.NewFromInt(5636),
			CoverageMonths: decimal.NewFromInt(30),
		},
		AlternativeResults: []ComparisonResult{
			{
				PolicyName:     "2024-25",
				TotalAfterTax:  decimal.NewFromInt(75498),
				TotalTax:       decimal.NewFromInt(4502),
				CoverageMonths: decimal.RequireFromString("30.5"),
			},
		},
	}

	recs := GenerateRecommendations(compSet)

	if len(recs) != 3 {
		t.Fatalf("expected 3 recommendations, got %d: %v", len(recs), recs)
	}
	if recs[0] != "Best Payout: 2024-25 provides $1134 more after tax than 2022-23" {
		t.Errorf("unexpected payout recommendation: %s", recs[0])
	}
	if recs[1] != "Lowest Tax: 2024-25 saves $1134 in estimated tax" {
		t.Errorf("unexpected tax recommendation: %s", recs[1])
	}
	if !strings.Contains(recs[2], "Longest Coverage: 2024-25 covers 0.5 more months") {
		t.Errorf("unexpected coverage recommendation: %s", recs[2])
	}
}

func TestGenerateRecommendations_EmptyAlternatives(t *testing.T) {
	compSet := &ComparisonSet{
		BasePolicyName:     "base",
		BaseResult:         &ComparisonResult{PolicyName: "base"},
		AlternativeResults: []ComparisonResult{},
	}

	if recs := GenerateRecommendations(compSet); len(recs) != 0 {
		t.Errorf("expected no recommendations, got %v", recs)
	}
}

func TestGenerateRecommendations_NoBetterThanBase(t *testing.T) {
	compSet := &ComparisonSet{
		BasePolicyName: "base",
		BaseResult: &ComparisonResult{
			PolicyName:    "base",
			TotalAfterTax: decimal.NewFromInt(100),
			TotalTax:      decimal.NewFromInt(10),
		},
		AlternativeResults: []ComparisonResult{
			{PolicyName: "worse", TotalAfterTax: decimal.NewFromInt(90), TotalTax: decimal.NewFromInt(20)},
		},
	}

	recs := GenerateRecommendations(compSet)

	if len(recs) != 1 || recs[0] != "No table improves on base for this input" {
		t.Errorf("unexpected recommendations: %v", recs)
	}
}
