// Package tuistyles holds the lipgloss palette and styles shared by the TUI and its components.
package tuistyles

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"github.com/rgehrsitz/rrgo/internal/output"
)

// Colors
var (
	ColorPrimary   = lipgloss.Color("#7D56F4")
	ColorSecondary = lipgloss.Color("#04B575")
	ColorAccent    = lipgloss.Color("#F25D94")
	ColorSuccess   = lipgloss.Color("#04B575")
	ColorDanger    = lipgloss.Color("#FF5F87")
	ColorInfo      = lipgloss.Color("#5FAFFF")

	ColorForeground = lipgloss.AdaptiveColor{Light: "#1A1A1A", Dark: "#FAFAFA"}
	ColorMuted      = lipgloss.AdaptiveColor{Light: "#9B9B9B", Dark: "#626262"}
	ColorBorder     = lipgloss.AdaptiveColor{Light: "#D9DCCF", Dark: "#383838"}
)

// Base styles
var (
	AppStyle = lipgloss.NewStyle().Padding(1, 2)

	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(ColorPrimary).
			Padding(0, 1)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Italic(true)

	SectionTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorPrimary).
				MarginTop(1)

	BorderStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 1)

	ActiveBorderStyle = BorderStyle.BorderForeground(ColorPrimary)

	FieldLabelStyle = lipgloss.NewStyle().
			Foreground(ColorForeground).
			Width(26)

	FocusedFieldLabelStyle = FieldLabelStyle.
				Foreground(ColorPrimary).
				Bold(true)

	ToggleOnStyle  = lipgloss.NewStyle().Foreground(ColorSuccess).Bold(true)
	ToggleOffStyle = lipgloss.NewStyle().Foreground(ColorMuted)

	MetricLabelStyle = lipgloss.NewStyle().
				Foreground(ColorMuted)

	MetricValueStyle = lipgloss.NewStyle().
				Foreground(ColorForeground).
				Bold(true)

	HeadlineValueStyle = lipgloss.NewStyle().
				Foreground(ColorSecondary).
				Bold(true)

	HelpKeyStyle  = lipgloss.NewStyle().Foreground(ColorPrimary).Bold(true)
	HelpDescStyle = lipgloss.NewStyle().Foreground(ColorMuted)

	ErrorStyle   = lipgloss.NewStyle().Foreground(ColorDanger).Bold(true)
	InfoStyle    = lipgloss.NewStyle().Foreground(ColorInfo)
	SuccessStyle = lipgloss.NewStyle().Foreground(ColorSuccess).Bold(true)
)

// ToggleStyle returns the on or off style
func ToggleStyle(on bool) lipgloss.Style {
	if on {
		return ToggleOnStyle
	}
	return ToggleOffStyle
}

// FormatCurrency renders a whole dollar amount the same way as the reports
func FormatCurrency(amount decimal.Decimal) string {
	return output.Money(amount)
}
