package calculation

import (
	"github.com/rgehrsitz/rrgo/internal/domain"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// TaxFreeThreshold returns base + perYear × completed years of service
func TaxFreeThreshold(years decimal.Decimal, rules domain.TaxFreeRules) decimal.Decimal {
	whole := decimal.Max(decimal.Zero, years.Floor())
	return rules.Base.Add(rules.PerYear.Mul(whole))
}

// Tax splits the payout into tax-free and taxable parts and applies flat rates.
//
// This is an estimate only. The redundancy payment gets the genuine redundancy
// threshold and a flat ETP rate chosen by age group, applied to the taxable part
// up to the ETP cap. Leave is taxed at the single marginal rate on the input with
// no threshold.
func (e *Engine) Tax(in domain.EstimatorInput, payout domain.PayoutBreakdown) domain.TaxBreakdown {
	threshold := TaxFreeThreshold(in.YearsOfService, e.Policy.TaxFree)
	taxFree := decimal.Min(payout.RedundancyGross, threshold)
	taxable := decimal.Max(decimal.Zero, payout.RedundancyGross.Sub(taxFree))

	rate := e.Policy.ETP.RateFor(in.AgeGroup)
	taxed := taxable
	if e.Policy.ETP.Cap.IsPositive() {
		taxed = decimal.Min(taxable, e.Policy.ETP.Cap)
	}
	redundancyTax := taxed.Mul(rate)
	redundancyAfterTax := payout.RedundancyGross.Sub(redundancyTax)

	leaveTax := payout.LeaveGross.Mul(in.MarginalTaxRatePercent).Div(hundred)
	leaveAfterTax := payout.LeaveGross.Sub(leaveTax)

	return domain.TaxBreakdown{
		TaxFreeThreshold:         threshold,
		TaxFreeRedundancyPortion: taxFree,
		TaxableRedundancyPortion: taxable,
		ETPRate:                  rate,
		RedundancyTax:            redundancyTax,
		RedundancyAfterTax:       redundancyAfterTax,
		MarginalRatePercent:      in.MarginalTaxRatePercent,
		LeaveTax:                 leaveTax,
		LeaveAfterTax:            leaveAfterTax,
		TotalAfterTax:            redundancyAfterTax.Add(leaveAfterTax),
	}
}
