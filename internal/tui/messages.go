package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rgehrsitz/rrgo/internal/clipboard"
)

// CopiedDuration is how long the "Copied!" indicator stays up
const CopiedDuration = 1500 * time.Millisecond

// Message types for the Bubble Tea update cycle

// CopyResultMsg reports the outcome of a clipboard write
type CopyResultMsg struct {
	Err error
}

// CopiedResetMsg clears the "Copied!" indicator. Seq ties it to the copy that started it.
type CopiedResetMsg struct {
	Seq int
}

// copyCmd writes text to the clipboard off the update loop
func copyCmd(w clipboard.Writer, text string) tea.Cmd {
	return func() tea.Msg {
		return CopyResultMsg{Err: clipboard.Copy(w, text, nil)}
	}
}

// copiedResetCmd fires a CopiedResetMsg after CopiedDuration
func copiedResetCmd(seq int) tea.Cmd {
	return tea.Tick(CopiedDuration, func(time.Time) tea.Msg {
		return CopiedResetMsg{Seq: seq}
	})
}
