package compare

import (
	"fmt"

	"github.com/rgehrsitz/rrgo/internal/domain"
	"github.com/shopspring/decimal"
)

// ComparisonResult holds one policy table's estimate with its key metrics
type ComparisonResult struct {
	PolicyName  string           `json:"policyName"`
	Description string           `json:"description,omitempty"`
	Estimate    *domain.Estimate `json:"estimate"`

	// Key Metrics
	RedundancyWeeks  int             `json:"redundancyWeeks"`
	TaxFreeThreshold decimal.Decimal `json:"taxFreeThreshold"`
	TotalGross       decimal.Decimal `json:"totalGross"`
	TotalTax         decimal.Decimal `json:"totalTax"`
	TotalAfterTax    decimal.Decimal `json:"totalAfterTax"`
	CoverageMonths   decimal.Decimal `json:"coverageMonths"`

	// Comparison to Base
	AfterTaxDiffFromBase decimal.Decimal `json:"afterTaxDiffFromBase"`
	AfterTaxPctFromBase  decimal.Decimal `json:"afterTaxPctFromBase"`
	TaxDiffFromBase      decimal.Decimal `json:"taxDiffFromBase"`
	CoverageMonthsDiff   decimal.Decimal `json:"coverageMonthsDiff"`
}

// ComparisonSet represents one input estimated under several policy tables
type ComparisonSet struct {
	BasePolicyName     string             `json:"basePolicyName"`
	BaseResult         *ComparisonResult  `json:"baseResult"`
	AlternativeResults []ComparisonResult `json:"alternativeResults"`
	Recommendations    []string           `json:"recommendations"`
	InputPath          string             `json:"inputPath,omitempty"`
}

// MetricsCalculator extracts key metrics from estimates
type MetricsCalculator struct{}

// NewMetricsCalculator creates a new metrics calculator
func NewMetricsCalculator() *MetricsCalculator {
	return &MetricsCalculator{}
}

// CalculateMetrics computes all comparison metrics for an after-tax estimate
func (mc *MetricsCalculator) CalculateMetrics(policy domain.Policy, est *domain.Estimate) ComparisonResult {
	result := ComparisonResult{
		PolicyName:      policy.Name,
		Description:     policy.Description,
		Estimate:        est,
		RedundancyWeeks: est.Payout.RedundancyWeeks,
		TotalGross:      est.Payout.TotalGross,
		TotalAfterTax:   est.Payout.TotalGross,
	}

	if est.Tax != nil {
		result.TaxFreeThreshold = est.Tax.TaxFreeThreshold
		result.TotalTax = est.Tax.RedundancyTax.Add(est.Tax.LeaveTax)
		result.TotalAfterTax = est.Tax.TotalAfterTax
	}
	if est.Mortgage != nil && est.Mortgage.Available {
		result.CoverageMonths = est.Mortgage.CoverageMonths
	}
	return result
}

// CalculateComparison computes comparison metrics between a result and a base
func (mc *MetricsCalculator) CalculateComparison(result, base ComparisonResult) ComparisonResult {
	result.AfterTaxDiffFromBase = result.TotalAfterTax.Sub(base.TotalAfterTax)

	if !base.TotalAfterTax.IsZero() {
		result.AfterTaxPctFromBase = result.AfterTaxDiffFromBase.
			Div(base.TotalAfterTax).
			Mul(decimal.NewFromInt(100))
	}

	result.TaxDiffFromBase = result.TotalTax.Sub(base.TotalTax)
	result.CoverageMonthsDiff = result.CoverageMonths.Sub(base.CoverageMonths)
	return result
}

// GenerateRecommendations creates recommendations based on comparison results
func GenerateRecommendations(compSet *ComparisonSet) []string {
	recommendations := []string{}

	if len(compSet.AlternativeResults) == 0 || compSet.BaseResult == nil {
		return recommendations
	}

	bestPayout := compSet.BaseResult
	lowestTax := compSet.BaseResult
	bestCoverage := compSet.BaseResult
	for i := range compSet.AlternativeResults {
		alt := &compSet.AlternativeResults[i]
		if alt.TotalAfterTax.GreaterThan(bestPayout.TotalAfterTax) {
			bestPayout = alt
		}
		if alt.TotalTax.LessThan(lowestTax.TotalTax) {
			lowestTax = alt
		}
		if alt.CoverageMonths.GreaterThan(bestCoverage.CoverageMonths) {
			bestCoverage = alt
		}
	}

	if bestPayout != compSet.BaseResult {
		diff := bestPayout.TotalAfterTax.Sub(compSet.BaseResult.TotalAfterTax)
		recommendations = append(recommendations,
			"Best Payout: "+bestPayout.PolicyName+" provides $"+diff.StringFixed(0)+
				" more after tax than "+compSet.BasePolicyName)
	}

	if lowestTax != compSet.BaseResult {
		savings := compSet.BaseResult.TotalTax.Sub(lowestTax.TotalTax)
		recommendations = append(recommendations,
			"Lowest Tax: "+lowestTax.PolicyName+" saves $"+savings.StringFixed(0)+" in estimated tax")
	}

	if bestCoverage != compSet.BaseResult {
		months := bestCoverage.CoverageMonths.Sub(compSet.BaseResult.CoverageMonths)
		recommendations = append(recommendations,
			"Longest Coverage: "+bestCoverage.PolicyName+" covers "+
				fmt.Sprintf("%s more months of repayments", months.StringFixed(1)))
	}

	if len(recommendations) == 0 {
		recommendations = append(recommendations,
			"No table improves on "+compSet.BasePolicyName+" for this input")
	}
	return recommendations
}
