package tui

import "github.com/rgehrsitz/rrgo/internal/tui/tuistyles"

// Re-export styles from tuistyles to avoid import cycles
var (
	// Colors
	ColorPrimary = tuistyles.ColorPrimary
	ColorMuted   = tuistyles.ColorMuted
	ColorBorder  = tuistyles.ColorBorder

	// Base styles
	AppStyle               = tuistyles.AppStyle
	TitleStyle             = tuistyles.TitleStyle
	SubtitleStyle          = tuistyles.SubtitleStyle
	SectionTitleStyle      = tuistyles.SectionTitleStyle
	BorderStyle            = tuistyles.BorderStyle
	ActiveBorderStyle      = tuistyles.ActiveBorderStyle
	FieldLabelStyle        = tuistyles.FieldLabelStyle
	FocusedFieldLabelStyle = tuistyles.FocusedFieldLabelStyle
	HelpKeyStyle           = tuistyles.HelpKeyStyle
	HelpDescStyle          = tuistyles.HelpDescStyle
	ErrorStyle             = tuistyles.ErrorStyle
	InfoStyle              = tuistyles.InfoStyle
	SuccessStyle           = tuistyles.SuccessStyle
)

// Re-export helper functions
var (
	ToggleStyle = tuistyles.ToggleStyle
)
