package calculation

import (
	"github.com/rgehrsitz/rrgo/internal/domain"
	"github.com/shopspring/decimal"
)

// RedundancyWeeks looks up the weeks of pay for a period of service.
// Years are truncated to whole completed years before the lookup, and the
// last step whose MinYears has been reached wins. Steps must be ascending.
func RedundancyWeeks(years decimal.Decimal, scale []domain.RedundancyStep) int {
	if years.IsNegative() {
		return 0
	}
	whole := years.Floor().IntPart()
	weeks := 0
	for _, step := range scale {
		if whole < int64(step.MinYears) {
			break
		}
		weeks = step.Weeks
	}
	return weeks
}
