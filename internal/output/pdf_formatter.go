package output

import (
	"bytes"
	"strings"

	"github.com/go-pdf/fpdf"

	"github.com/rgehrsitz/rrgo/internal/domain"
)

// PDFFormatter renders a one page summary of the estimate.
// The after-tax section is included only when the estimate carries a tax breakdown.
type PDFFormatter struct{}

func (p PDFFormatter) Name() string { return "pdf" }

func (p PDFFormatter) Format(est *domain.Estimate) ([]byte, error) {
	d := NewDisplay(est)

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(18, 18, 18)
	pdf.SetAutoPageBreak(true, 18)
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	pageW, _ := pdf.GetPageSize()
	marginL, _, marginR, _ := pdf.GetMargins()
	contentW := pageW - marginL - marginR

	// Header bar
	pdf.SetFillColor(30, 30, 30)
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(contentW, 10, tr("REDUNDANCY PAYOUT ESTIMATE ("+d.Policy+")"), "", 1, "L", true, 0, "")
	pdf.SetTextColor(0, 0, 0)
	pdf.Ln(3)

	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(contentW, 8, tr(d.HeadlineLabel+": "+d.Headline), "", 1, "L", false, 0, "")
	pdf.Ln(2)

	section := func(title string, rows [][2]string) {
		pdf.SetFillColor(240, 240, 240)
		pdf.SetFont("Helvetica", "B", 9)
		pdf.CellFormat(contentW, 6, tr(strings.ToUpper(title)), "1", 1, "L", true, 0, "")
		pdf.SetFont("Helvetica", "", 9)
		for _, r := range rows {
			pdf.CellFormat(contentW*0.6, 6, tr(r[0]), "LB", 0, "L", false, 0, "")
			pdf.CellFormat(contentW*0.4, 6, tr(r[1]), "RB", 1, "R", false, 0, "")
		}
		pdf.Ln(3)
	}

	section("Payout", [][2]string{
		{"Years of service", d.Years},
		{"Redundancy weeks", d.RedundancyWeeks},
		{"Weekly rate", d.WeeklyRate},
		{"Hourly rate", d.HourlyRate},
		{"Redundancy pay (gross)", d.RedundancyPay},
		{"Annual leave payout (gross)", d.LeavePayout},
		{"Total gross", d.TotalGross},
	})
	if d.ShowTax {
		section("After tax (approx)", [][2]string{
			{"Tax-free redundancy", d.TaxFreeRedundancy},
			{"Taxable redundancy (ETP)", d.TaxableRedundancy},
			{"ETP rate (" + d.AgeGroup + ")", d.ETPRate},
			{"Tax on redundancy", d.RedundancyTax},
			{"Redundancy after tax", d.RedundancyAfterTax},
			{"Tax on annual leave (" + d.MarginalRate + ")", d.LeaveTax},
			{"Annual leave after tax", d.LeaveAfterTax},
			{"Total after tax", d.TotalAfterTax},
		})
	}
	if m := d.Mortgage; m != nil {
		section("Mortgage coverage", [][2]string{
			{"Monthly repayment", m.Repayment},
			{"Months covered", m.Months},
			{"Weeks covered", m.Weeks},
		})
		pdf.SetFont("Helvetica", "I", 9)
		pdf.MultiCell(contentW, 5, tr(m.Sentence), "", "L", false)
		pdf.Ln(3)
	}

	etpRate := "by age group"
	if d.ShowTax {
		etpRate = d.ETPRate
	}
	pdf.SetFont("Helvetica", "", 8)
	pdf.SetTextColor(90, 90, 90)
	pdf.MultiCell(contentW, 4, tr(strings.Join(Disclaimer(d.Policy, etpRate), " ")), "", "L", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
