package output

import (
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Placeholder is shown in place of any figure that is zero, negative or unavailable
const Placeholder = "—"

var printer = message.NewPrinter(language.MustParse("en-AU"))

// Money formats a positive amount as whole dollars with digit grouping, e.g. "$104,000".
// Zero and negative amounts render as the placeholder.
func Money(amount decimal.Decimal) string {
	if !amount.IsPositive() {
		return Placeholder
	}
	rounded := amount.Round(0)
	if rounded.IsZero() {
		return "$0"
	}
	return "$" + printer.Sprintf("%d", rounded.IntPart())
}

// MoneyExact formats a positive amount with cents and digit grouping, e.g. "$4,502.08"
func MoneyExact(amount decimal.Decimal) string {
	if !amount.IsPositive() {
		return Placeholder
	}
	fixed := amount.StringFixed(2)
	cents := fixed[strings.IndexByte(fixed, '.'):]
	return "$" + printer.Sprintf("%d", amount.Round(2).IntPart()) + cents
}

// Number formats a value with a fixed number of decimals and no grouping
func Number(value decimal.Decimal, places int32) string {
	return value.StringFixed(places)
}

// Rate formats a positive amount as "$" plus two ungrouped decimals, as the summary shows rates
func Rate(amount decimal.Decimal) string {
	if !amount.IsPositive() {
		return Placeholder
	}
	return "$" + Number(amount, 2)
}

// Percent formats a fraction such as 0.32 as "32%"
func Percent(fraction decimal.Decimal) string {
	return fraction.Mul(decimal.NewFromInt(100)).String() + "%"
}
