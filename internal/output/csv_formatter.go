package output

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"github.com/rgehrsitz/rrgo/internal/domain"
	"github.com/shopspring/decimal"
)

// CSVFormatter writes one field,value row per figure with unformatted amounts.
type CSVFormatter struct{}

func (c CSVFormatter) Name() string { return "csv" }

func (c CSVFormatter) Format(est *domain.Estimate) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)

	money := func(d decimal.Decimal) string { return d.StringFixed(2) }
	p := est.Payout
	rows := [][]string{
		{"Field", "Value"},
		{"Policy", est.Policy},
		{"View", string(est.View)},
		{"YearsOfService", est.Input.YearsOfService.String()},
		{"RedundancyWeeks", strconv.Itoa(p.RedundancyWeeks)},
		{"WeeklyRate", money(p.WeeklyRate)},
		{"HourlyRate", money(p.HourlyRate)},
		{"RedundancyGross", money(p.RedundancyGross)},
		{"LeaveGross", money(p.LeaveGross)},
		{"TotalGross", money(p.TotalGross)},
	}
	if t := est.Tax; t != nil {
		rows = append(rows,
			[]string{"TaxFreeThreshold", money(t.TaxFreeThreshold)},
			[]string{"TaxFreeRedundancy", money(t.TaxFreeRedundancyPortion)},
			[]string{"TaxableRedundancy", money(t.TaxableRedundancyPortion)},
			[]string{"ETPRate", t.ETPRate.String()},
			[]string{"RedundancyTax", money(t.RedundancyTax)},
			[]string{"RedundancyAfterTax", money(t.RedundancyAfterTax)},
			[]string{"MarginalRatePercent", t.MarginalRatePercent.String()},
			[]string{"LeaveTax", money(t.LeaveTax)},
			[]string{"LeaveAfterTax", money(t.LeaveAfterTax)},
			[]string{"TotalAfterTax", money(t.TotalAfterTax)},
		)
	}
	if m := est.Mortgage; m != nil {
		rows = append(rows,
			[]string{"MortgageAvailable", strconv.FormatBool(m.Available)},
			[]string{"MonthlyRepayment", money(m.MonthlyRepayment)},
			[]string{"CoverageMonths", m.CoverageMonths.StringFixed(1)},
			[]string{"CoverageWeeks", m.CoverageWeeks.StringFixed(1)},
		)
	}

	if err := w.WriteAll(rows); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
