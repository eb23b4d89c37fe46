package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rgehrsitz/rrgo/internal/domain"
	"github.com/rgehrsitz/rrgo/internal/tui/components"
)

// View renders the current state of the application
func (m Model) View() string {
	sections := []string{
		m.renderTitleBar(),
		m.renderForm(),
		m.renderResults(),
	}
	if m.display.ShowTax {
		sections = append(sections, m.renderTax())
	}
	if m.showMortgage {
		sections = append(sections, m.renderMortgage())
	}
	sections = append(sections, m.renderStatusBar(), m.help.View(m.keys))

	return AppStyle.Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

// renderTitleBar renders the application title and the policy in use
func (m Model) renderTitleBar() string {
	title := TitleStyle.Render("RRGO - Redundancy Payout Estimator")
	subtitle := SubtitleStyle.Render(fmt.Sprintf("Rough guide using %s settings", m.engine.Policy.Name))
	return lipgloss.JoinVertical(lipgloss.Left, title, subtitle)
}

func (m Model) renderForm() string {
	var b strings.Builder
	b.WriteString(SectionTitleStyle.Render("Your details") + "\n")
	for f := FieldYears; f < firstMortgageField; f++ {
		b.WriteString(m.renderField(f) + "\n")
	}
	b.WriteString(toggleRow("Age group", m.ageGroup.Label(), m.ageGroup == domain.Age60Plus) + "\n")
	b.WriteString(toggleRow("Show after-tax estimate", onOff(m.view == domain.ViewAfterTax), m.view == domain.ViewAfterTax))
	return b.String()
}

func (m Model) renderField(f Field) string {
	label := FieldLabelStyle.Render(f.Label())
	if f == m.focused {
		label = FocusedFieldLabelStyle.Render(f.Label())
	}
	return label + " " + m.inputs[f].View()
}

func toggleRow(label, value string, on bool) string {
	return FieldLabelStyle.Render(label) + " " + ToggleStyle(on).Render(value)
}

func onOff(on bool) string {
	if on {
		return "on"
	}
	return "off"
}

func (m Model) renderResults() string {
	d := m.display

	headline := components.NewMetricCard(d.HeadlineLabel, d.Headline).
		AsHeadline().
		WithWidth(50)
	if d.ShowTax {
		headline.WithDescription("Gross " + d.TotalGross)
	}

	cards := []*components.MetricCard{
		components.NewMetricCard("Years of service", d.Years),
		components.NewMetricCard("Redundancy weeks", d.RedundancyWeeks),
		components.NewMetricCard("Weekly rate", d.WeeklyRate),
		components.NewMetricCard("Hourly rate", d.HourlyRate),
		components.NewMetricCard("Redundancy pay", d.RedundancyPay),
		components.NewMetricCard("Leave payout", d.LeavePayout),
	}

	columns := 3
	if m.width < 80 {
		columns = 2
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		SectionTitleStyle.Render("Payout"),
		headline.Render(),
		components.MetricGrid(cards, columns),
	)
}

func (m Model) renderTax() string {
	d := m.display
	rows := []*components.MetricCard{
		components.NewMetricCard("Tax-free limit", d.TaxFreeThreshold),
		components.NewMetricCard("Tax-free redundancy", d.TaxFreeRedundancy),
		components.NewMetricCard("Taxable redundancy", d.TaxableRedundancy),
		components.NewMetricCard("ETP rate", d.ETPRate),
		components.NewMetricCard("Tax on redundancy", d.RedundancyTax),
		components.NewMetricCard("Redundancy after tax", d.RedundancyAfterTax),
		components.NewMetricCard("Tax on leave", d.LeaveTax),
		components.NewMetricCard("Leave after tax", d.LeaveAfterTax),
	}

	var b strings.Builder
	b.WriteString(SectionTitleStyle.Render("After tax (approx)") + "\n")
	for _, r := range rows {
		b.WriteString(r.RenderCompact() + "\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m Model) renderMortgage() string {
	var b strings.Builder
	b.WriteString(SectionTitleStyle.Render("Mortgage coverage") + "\n")
	for f := firstMortgageField; f < fieldCount; f++ {
		b.WriteString(m.renderField(f) + "\n")
	}
	b.WriteString(toggleRow("Interest only", onOff(m.interestOnly), m.interestOnly) + "\n")

	if md := m.display.Mortgage; md != nil {
		if md.Available {
			b.WriteString(components.NewMetricCard("Monthly repayment", md.Repayment).RenderCompact() + "\n")
			b.WriteString(InfoStyle.Render(md.Sentence))
		} else {
			b.WriteString(ErrorStyle.Render(md.Sentence))
		}
	}
	return BorderStyle.Render(strings.TrimRight(b.String(), "\n"))
}

// renderStatusBar shows the copy indicator or the last error
func (m Model) renderStatusBar() string {
	switch {
	case m.err != nil:
		return ErrorStyle.Render(m.err.Error())
	case m.copied:
		return SuccessStyle.Render("Copied!")
	default:
		return HelpKeyStyle.Render("ctrl+y") + " " + HelpDescStyle.Render("Copy summary")
	}
}
