package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rgehrsitz/rrgo/internal/domain"
)

// Update handles all messages and updates the model accordingly
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case CopyResultMsg:
		m.err = msg.Err
		m.copied = msg.Err == nil
		m.copySeq++
		return m, copiedResetCmd(m.copySeq)

	case CopiedResetMsg:
		// An older tick must not clear the result of a newer copy
		if msg.Seq == m.copySeq {
			m.copied = false
			m.err = nil
		}
		return m, nil
	}

	return m.updateFocusedInput(msg)
}

// handleKeyPress processes keyboard input
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Copy):
		m.err = nil
		return m, copyCmd(m.clipboard, m.summaryText())

	case key.Matches(msg, m.keys.Next):
		return m, m.setFocus((m.focused + 1) % m.fieldCountShown())

	case key.Matches(msg, m.keys.Prev):
		n := m.fieldCountShown()
		return m, m.setFocus((m.focused + n - 1) % n)

	case key.Matches(msg, m.keys.AgeGroup):
		if m.ageGroup == domain.Age60Plus {
			m.ageGroup = domain.AgeUnder60
		} else {
			m.ageGroup = domain.Age60Plus
		}
		m.recompute()
		return m, nil

	case key.Matches(msg, m.keys.AfterTax):
		if m.view == domain.ViewAfterTax {
			m.view = domain.ViewBeforeTax
		} else {
			m.view = domain.ViewAfterTax
		}
		m.recompute()
		return m, nil

	case key.Matches(msg, m.keys.Mortgage):
		m.showMortgage = !m.showMortgage
		var cmd tea.Cmd
		if !m.showMortgage && m.focused >= firstMortgageField {
			cmd = m.setFocus(firstMortgageField - 1)
		}
		m.recompute()
		return m, cmd

	case key.Matches(msg, m.keys.InterestOnly):
		m.interestOnly = !m.interestOnly
		m.recompute()
		return m, nil
	}

	if msg.Type == tea.KeyRunes && !numericRunes(msg.Runes) {
		return m, nil
	}
	return m.updateFocusedInput(msg)
}

// updateFocusedInput forwards a message to the focused input and recomputes
// when its value changed
func (m Model) updateFocusedInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	before := m.inputs[m.focused].Value()

	var cmd tea.Cmd
	m.inputs[m.focused], cmd = m.inputs[m.focused].Update(msg)

	if m.inputs[m.focused].Value() != before {
		m.recompute()
	}
	return m, cmd
}

// setFocus moves keyboard focus to f
func (m *Model) setFocus(f Field) tea.Cmd {
	for i := range m.inputs {
		m.inputs[i].Blur()
	}
	m.focused = f
	return m.inputs[f].Focus()
}

// numericRunes reports whether every rune can appear in an amount
func numericRunes(runes []rune) bool {
	for _, r := range runes {
		switch {
		case r >= '0' && r <= '9':
		case r == '.', r == ',', r == '$', r == '-':
		default:
			return false
		}
	}
	return true
}
