package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/shopspring/decimal"

	"github.com/rgehrsitz/rrgo/internal/calculation"
	"github.com/rgehrsitz/rrgo/internal/clipboard"
	"github.com/rgehrsitz/rrgo/internal/domain"
	"github.com/rgehrsitz/rrgo/internal/output"
)

// Field identifies one text input on the form
type Field int

const (
	FieldYears Field = iota
	FieldLeaveHours
	FieldHoursPerWeek
	FieldSalary
	FieldMarginalRate
	FieldLoanAmount
	FieldLoanTerm
	FieldLoanRate

	fieldCount
)

// firstMortgageField is where the mortgage panel inputs start
const firstMortgageField = FieldLoanAmount

var fieldSpecs = [fieldCount]struct {
	label       string
	placeholder string
	charLimit   int
}{
	FieldYears:        {"Full years of service", "e.g. 4", 5},
	FieldLeaveHours:   {"Annual leave hours", "e.g. 76", 7},
	FieldHoursPerWeek: {"Standard hours per week", "38", 5},
	FieldSalary:       {"Annual salary", "e.g. 104000", 12},
	FieldMarginalRate: {"Marginal tax rate (%)", "32", 5},
	FieldLoanAmount:   {"Loan amount", "e.g. 400000", 12},
	FieldLoanTerm:     {"Loan term (years)", "30", 4},
	FieldLoanRate:     {"Interest rate (% p.a.)", "e.g. 6.1", 6},
}

// Label returns the form label of the field
func (f Field) Label() string {
	if f < 0 || f >= fieldCount {
		return ""
	}
	return fieldSpecs[f].label
}

// Model represents the entire application state
type Model struct {
	// Estimator
	engine    *calculation.Engine
	clipboard clipboard.Writer

	// Form state
	inputs       []textinput.Model
	focused      Field
	ageGroup     domain.AgeGroup
	interestOnly bool
	view         domain.View
	showMortgage bool

	// Latest recompute
	estimate *domain.Estimate
	display  output.Display

	// Copy indicator
	copied  bool
	copySeq int

	// Error state
	err error

	keys keyMap
	help help.Model

	// Terminal dimensions
	width  int
	height int
}

// NewModel creates the form model. A nil engine uses the default policy
// and a nil writer uses the system clipboard.
func NewModel(engine *calculation.Engine, w clipboard.Writer) Model {
	if engine == nil {
		engine = calculation.NewEngine()
	}
	if w == nil {
		w = clipboard.System{}
	}

	inputs := make([]textinput.Model, fieldCount)
	for i := range inputs {
		ti := textinput.New()
		ti.Placeholder = fieldSpecs[i].placeholder
		ti.CharLimit = fieldSpecs[i].charLimit
		ti.Width = 16
		ti.Prompt = ""
		inputs[i] = ti
	}
	inputs[FieldYears].Focus()

	m := Model{
		engine:    engine,
		clipboard: w,
		inputs:    inputs,
		focused:   FieldYears,
		ageGroup:  domain.AgeUnder60,
		view:      domain.ViewBeforeTax,
		keys:      newKeyMap(),
		help:      help.New(),
		width:     80,
		height:    24,
	}
	m.recompute()
	return m
}

// Init initializes the model (required by tea.Model interface)
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Snapshot reads the form into an estimator snapshot
func (m Model) Snapshot() domain.Snapshot {
	snap := domain.Snapshot{
		Policy: m.engine.Policy.Name,
		View:   m.view,
		Input: domain.EstimatorInput{
			YearsOfService:         m.amount(FieldYears),
			AnnualLeaveHours:       m.amount(FieldLeaveHours),
			StandardHoursPerWeek:   m.amount(FieldHoursPerWeek),
			AnnualSalary:           m.amount(FieldSalary),
			AgeGroup:               m.ageGroup,
			MarginalTaxRatePercent: m.amount(FieldMarginalRate),
		},
	}
	if m.showMortgage {
		snap.Mortgage = &domain.MortgageInput{
			LoanAmount:                m.amount(FieldLoanAmount),
			LoanTermYears:             m.amount(FieldLoanTerm),
			AnnualInterestRatePercent: m.amount(FieldLoanRate),
			InterestOnly:              m.interestOnly,
		}
	}
	return snap
}

// Estimate returns the result of the latest recompute
func (m Model) Estimate() *domain.Estimate {
	return m.estimate
}

// Display returns the formatted figures of the latest recompute
func (m Model) Display() output.Display {
	return m.display
}

// Focused returns the field that has keyboard focus
func (m Model) Focused() Field {
	return m.focused
}

// Copied reports whether the "Copied!" indicator is showing
func (m Model) Copied() bool {
	return m.copied
}

// SetValue sets a field's text and recomputes
func (m *Model) SetValue(f Field, value string) {
	m.inputs[f].SetValue(value)
	m.recompute()
}

func (m Model) amount(f Field) decimal.Decimal {
	return domain.ParseAmount(m.inputs[f].Value())
}

// recompute runs the estimator on the current form
func (m *Model) recompute() {
	m.estimate = m.engine.Estimate(m.Snapshot())
	m.display = output.NewDisplay(m.estimate)
}

// summaryText is the clipboard text. The summary always reports tax, so it
// is built from an after-tax estimate whatever the current view.
func (m Model) summaryText() string {
	snap := m.Snapshot()
	snap.View = domain.ViewAfterTax
	return output.Summary(m.engine.Estimate(snap))
}

// fieldCountShown is the number of focusable inputs for the current panel state
func (m Model) fieldCountShown() Field {
	if m.showMortgage {
		return fieldCount
	}
	return firstMortgageField
}

// keyMap defines the key bindings shown in the help line
type keyMap struct {
	Next         key.Binding
	Prev         key.Binding
	AgeGroup     key.Binding
	InterestOnly key.Binding
	AfterTax     key.Binding
	Mortgage     key.Binding
	Copy         key.Binding
	Quit         key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Next:         key.NewBinding(key.WithKeys("tab", "down", "enter"), key.WithHelp("tab", "next")),
		Prev:         key.NewBinding(key.WithKeys("shift+tab", "up"), key.WithHelp("shift+tab", "prev")),
		AgeGroup:     key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "age group")),
		InterestOnly: key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "interest only")),
		AfterTax:     key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "after tax")),
		Mortgage:     key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "mortgage")),
		Copy:         key.NewBinding(key.WithKeys("ctrl+y"), key.WithHelp("ctrl+y", "copy summary")),
		Quit:         key.NewBinding(key.WithKeys("ctrl+c", "esc"), key.WithHelp("esc", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.AgeGroup, k.AfterTax, k.Mortgage, k.InterestOnly, k.Copy, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Next, k.Prev},
		{k.AgeGroup, k.AfterTax, k.Mortgage, k.InterestOnly},
		{k.Copy, k.Quit},
	}
}
