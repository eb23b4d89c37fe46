package compare

import (
	"encoding/csv"
	"strconv"
	"strings"
)

// CSVFormatter formats comparison results as CSV
type CSVFormatter struct{}

// Format generates CSV output for comparison results
func (cf *CSVFormatter) Format(compSet *ComparisonSet) (string, error) {
	var sb strings.Builder
	writer := csv.NewWriter(&sb)

	header := []string{
		"Policy",
		"Type",
		"Redundancy Weeks",
		"Tax-Free Threshold",
		"Total Gross",
		"Total Tax",
		"Total After Tax",
		"Coverage Months",
		"After Tax Diff from Base",
		"After Tax % Change",
		"Tax Diff from Base",
		"Coverage Months Diff",
	}
	if err := writer.Write(header); err != nil {
		return "", err
	}

	if err := writer.Write(cf.formatRow(compSet.BaseResult, "base")); err != nil {
		return "", err
	}

	for _, alt := range compSet.AlternativeResults {
		if err := writer.Write(cf.formatRow(&alt, "alternative")); err != nil {
			return "", err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return "", err
	}

	return sb.String(), nil
}

// formatRow formats a comparison result as a CSV row
func (cf *CSVFormatter) formatRow(result *ComparisonResult, rowType string) []string {
	return []string{
		result.PolicyName,
		rowType,
		strconv.Itoa(result.RedundancyWeeks),
		result.TaxFreeThreshold.StringFixed(2),
		result.TotalGross.StringFixed(2),
		result.TotalTax.StringFixed(2),
		result.TotalAfterTax.StringFixed(2),
		result.CoverageMonths.StringFixed(1),
		result.AfterTaxDiffFromBase.StringFixed(2),
		result.AfterTaxPctFromBase.StringFixed(2),
		result.TaxDiffFromBase.StringFixed(2),
		result.CoverageMonthsDiff.StringFixed(1),
	}
}
