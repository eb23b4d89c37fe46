package compare

import (
	"fmt"
	"strings"

	"github.com/rgehrsitz/rrgo/internal/output"
	"github.com/shopspring/decimal"
)

// TableFormatter formats comparison results as a console table
type TableFormatter struct{}

// Format generates a formatted table comparing policy tables
func (tf *TableFormatter) Format(compSet *ComparisonSet) string {
	var sb strings.Builder

	// Header
	sb.WriteString("REDUNDANCY POLICY COMPARISON\n")
	sb.WriteString(strings.Repeat("=", 80) + "\n")
	sb.WriteString(fmt.Sprintf("Base Policy: %s\n", compSet.BasePolicyName))
	if compSet.InputPath != "" {
		sb.WriteString(fmt.Sprintf("Input: %s\n", compSet.InputPath))
	}
	sb.WriteString("\n")

	nameWidth := 16
	numWidth := 12

	sb.WriteString(fmt.Sprintf("%-*s %*s %*s %*s %*s %*s\n",
		nameWidth, "Policy",
		6, "Weeks",
		numWidth, "Tax-free cap",
		numWidth, "Gross",
		numWidth, "Tax",
		numWidth, "After tax"))
	sb.WriteString(strings.Repeat("-", 80) + "\n")

	sb.WriteString(tf.formatRow(compSet.BaseResult, nameWidth, numWidth, true))

	if len(compSet.AlternativeResults) > 0 {
		sb.WriteString(strings.Repeat("-", 80) + "\n")
		for _, alt := range compSet.AlternativeResults {
			sb.WriteString(tf.formatRow(&alt, nameWidth, numWidth, false))
		}
	}

	sb.WriteString(strings.Repeat("=", 80) + "\n")

	// Comparison details (deltas from base)
	if len(compSet.AlternativeResults) > 0 {
		sb.WriteString("\nCOMPARISON TO BASE\n")
		sb.WriteString(strings.Repeat("-", 80) + "\n")

		for _, alt := range compSet.AlternativeResults {
			sb.WriteString(fmt.Sprintf("\n%s:\n", alt.PolicyName))

			sb.WriteString(fmt.Sprintf("  After Tax:        %s$%s (%s%%)\n",
				tf.deltaSymbol(alt.AfterTaxDiffFromBase),
				tf.formatDecimal(alt.AfterTaxDiffFromBase.Abs()),
				alt.AfterTaxPctFromBase.StringFixed(1)))

			if !alt.TaxDiffFromBase.IsZero() {
				taxSymbol := tf.deltaSymbol(alt.TaxDiffFromBase.Neg()) // Lower tax is better
				sb.WriteString(fmt.Sprintf("  Tax Impact:       %s$%s\n",
					taxSymbol,
					tf.formatDecimal(alt.TaxDiffFromBase.Abs())))
			}

			if !alt.CoverageMonthsDiff.IsZero() {
				sb.WriteString(fmt.Sprintf("  Coverage:         %s%s months\n",
					tf.deltaSymbol(alt.CoverageMonthsDiff),
					alt.CoverageMonthsDiff.Abs().StringFixed(1)))
			}
		}
		sb.WriteString("\n")
	}

	// Recommendations
	if len(compSet.Recommendations) > 0 {
		sb.WriteString("\nRECOMMENDATIONS\n")
		sb.WriteString(strings.Repeat("-", 80) + "\n")
		for _, rec := range compSet.Recommendations {
			sb.WriteString(fmt.Sprintf("• %s\n", rec))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

// formatRow formats a single policy row
func (tf *TableFormatter) formatRow(result *ComparisonResult, nameWidth, numWidth int, isBase bool) string {
	name := result.PolicyName
	if isBase {
		name += " (base)"
	}

	return fmt.Sprintf("%-*s %*d %*s %*s %*s %*s\n",
		nameWidth, tf.truncate(name, nameWidth),
		6, result.RedundancyWeeks,
		numWidth, output.Money(result.TaxFreeThreshold),
		numWidth, output.Money(result.TotalGross),
		numWidth, output.Money(result.TotalTax),
		numWidth, output.Money(result.TotalAfterTax))
}

// formatDecimal formats a delta for display, in thousands above 1000
func (tf *TableFormatter) formatDecimal(d decimal.Decimal) string {
	if d.Abs().GreaterThanOrEqual(decimal.NewFromInt(1000)) {
		thousands := d.Div(decimal.NewFromInt(1000))
		return thousands.StringFixed(1) + "K"
	}
	return d.StringFixed(0)
}

// deltaSymbol returns a + or - symbol for deltas (positive is green concept)
func (tf *TableFormatter) deltaSymbol(delta decimal.Decimal) string {
	if delta.IsPositive() {
		return "+"
	} else if delta.IsNegative() {
		return "-"
	}
	return " "
}

// truncate truncates a string to maxLen
func (tf *TableFormatter) truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}

// FormatCompact creates a compact single-line summary for each policy
func (tf *TableFormatter) FormatCompact(compSet *ComparisonSet) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Base: %s | ", compSet.BasePolicyName))

	for i, alt := range compSet.AlternativeResults {
		if i > 0 {
			sb.WriteString(" | ")
		}
		change := "="
		if alt.AfterTaxDiffFromBase.IsPositive() {
			change = fmt.Sprintf("+$%s", tf.formatDecimal(alt.AfterTaxDiffFromBase))
		} else if alt.AfterTaxDiffFromBase.IsNegative() {
			change = fmt.Sprintf("-$%s", tf.formatDecimal(alt.AfterTaxDiffFromBase.Abs()))
		}

		sb.WriteString(fmt.Sprintf("%s: %s", alt.PolicyName, change))
	}

	return sb.String()
}
