package output

import (
	"bytes"
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/rgehrsitz/rrgo/internal/domain"
)

// HTMLFormatter produces a standalone HTML page of the estimate
type HTMLFormatter struct{}

func (h HTMLFormatter) Name() string { return "html" }

func (h HTMLFormatter) Format(est *domain.Estimate) ([]byte, error) {
	var buf bytes.Buffer
	if err := ReportPage(NewDisplay(est)).Render(context.Background(), &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

const reportStyle = `body { font-family: Arial, sans-serif; margin: 20px; }
.header { background-color: #f0f0f0; padding: 20px; border-radius: 5px; }
.section { margin: 20px 0; }
table { border-collapse: collapse; }
th, td { border: 1px solid #ddd; padding: 6px 12px; text-align: left; }
.note { color: #666; font-size: 0.9em; }`

// ReportPage renders the full HTML document
func ReportPage(d Display) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := write(w, "<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n<title>Redundancy payout estimate</title>\n<style>"+reportStyle+"</style>\n</head>\n<body>\n"); err != nil {
			return err
		}
		if err := write(w, `<div class="header"><h1>Redundancy payout estimate</h1><p>`+
			templ.EscapeString(d.Policy)+` settings</p><h2>`+
			templ.EscapeString(d.HeadlineLabel)+`: `+templ.EscapeString(d.Headline)+"</h2></div>\n"); err != nil {
			return err
		}

		sections := []struct {
			title string
			rows  [][2]string
			show  bool
		}{
			{"Payout", [][2]string{
				{"Years of service", d.Years},
				{"Redundancy weeks", d.RedundancyWeeks},
				{"Weekly rate", d.WeeklyRate},
				{"Hourly rate", d.HourlyRate},
				{"Redundancy pay (gross)", d.RedundancyPay},
				{"Annual leave payout (gross)", d.LeavePayout},
				{"Total gross", d.TotalGross},
			}, true},
			{"After tax (approx)", [][2]string{
				{"Tax-free redundancy", d.TaxFreeRedundancy},
				{"Taxable redundancy (ETP)", d.TaxableRedundancy},
				{"ETP rate (" + d.AgeGroup + ")", d.ETPRate},
				{"Tax on redundancy", d.RedundancyTax},
				{"Redundancy after tax", d.RedundancyAfterTax},
				{"Tax on annual leave", d.LeaveTax},
				{"Annual leave after tax", d.LeaveAfterTax},
				{"Total after tax", d.TotalAfterTax},
			}, d.ShowTax},
		}
		for _, s := range sections {
			if !s.show {
				continue
			}
			if err := Section(s.title, s.rows).Render(ctx, w); err != nil {
				return err
			}
		}

		if m := d.Mortgage; m != nil {
			if err := Section("Mortgage coverage", [][2]string{
				{"Monthly repayment", m.Repayment},
				{"Months covered", m.Months},
				{"Weeks covered", m.Weeks},
			}).Render(ctx, w); err != nil {
				return err
			}
			if err := write(w, `<p>`+templ.EscapeString(m.Sentence)+"</p>\n"); err != nil {
				return err
			}
		}

		if err := write(w, `<div class="section note"><ul>`); err != nil {
			return err
		}
		for _, a := range d.Assumptions {
			if err := write(w, "<li>"+templ.EscapeString(a)+"</li>"); err != nil {
				return err
			}
		}
		return write(w, "</ul></div>\n</body>\n</html>\n")
	})
}

// Section renders a titled two-column table
func Section(title string, rows [][2]string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := write(w, `<div class="section"><h3>`+templ.EscapeString(title)+"</h3><table>"); err != nil {
			return err
		}
		for _, r := range rows {
			if err := write(w, "<tr><th>"+templ.EscapeString(r[0])+"</th><td>"+templ.EscapeString(r[1])+"</td></tr>"); err != nil {
				return err
			}
		}
		return write(w, "</table></div>\n")
	})
}

func write(w io.Writer, s string) error {
	_, err := io.WriteString(w, s)
	return err
}
