package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/leminhai2007/term-playroom/internal/calc"
)

// calcHistorySize bounds the visible evaluation history.
const calcHistorySize = 10

// calcEntry is one evaluated expression with its result or error.
type calcEntry struct {
	expr   string
	result string
	failed bool
}

// CalcModel is the Bubble Tea model for the calculator view.
type CalcModel struct {
	input    textinput.Model
	history  []calcEntry
	width    int
	height   int
	quitting bool
}

// NewCalcModel creates a new calculator model.
func NewCalcModel(width, height int) CalcModel {
	ti := textinput.New()
	ti.Placeholder = "(1+2)*3"
	ti.Prompt = "> "
	ti.Focus()
	ti.CharLimit = 128

	return CalcModel{
		input:  ti,
		width:  width,
		height: height,
	}
}

// Init initializes the calculator model.
func (m CalcModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages for the calculator.
func (m CalcModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Quit
		case "enter":
			m.evaluate()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// evaluate runs the current expression and appends it to the history.
func (m *CalcModel) evaluate() {
	expr := strings.TrimSpace(m.input.Value())
	if expr == "" {
		return
	}

	entry := calcEntry{expr: expr}
	if result, err := calc.Eval(expr); err != nil {
		entry.result = err.Error()
		entry.failed = true
	} else {
		entry.result = calc.Format(result)
	}

	m.history = append(m.history, entry)
	if len(m.history) > calcHistorySize {
		m.history = m.history[len(m.history)-calcHistorySize:]
	}
	m.input.SetValue("")
}

// View renders the calculator.
func (m CalcModel) View() string {
	if m.quitting {
		return ""
	}

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	resultStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	errorStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("CALCULATOR"), m.width))
	b.WriteString("\n\n")

	for _, e := range m.history {
		line := fmt.Sprintf("  %s = ", e.expr)
		if e.failed {
			line += errorStyle.Render(e.result)
		} else {
			line += resultStyle.Render(e.result)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString("\n  ")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")
	b.WriteString(dimStyle.Render("  + - * / % ^ ( )  |  Enter: Evaluate  |  Esc: Back"))

	return b.String()
}

// RunCalculator runs the calculator view.
func RunCalculator(width, height int) error {
	model := NewCalcModel(width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
