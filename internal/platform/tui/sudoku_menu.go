package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/leminhai2007/term-playroom/internal/config"
	"github.com/leminhai2007/term-playroom/internal/core"
)

// sudokuDifficulties lists the selectable presets in menu order.
var sudokuDifficulties = []struct {
	Preset config.DifficultyPreset
	Label  string
}{
	{config.DifficultyEasy, "Easy   (30 holes)"},
	{config.DifficultyMedium, "Medium (40 holes)"},
	{config.DifficultyHard, "Hard   (50 holes)"},
}

// SudokuMenuModel lets users choose a difficulty before starting Sudoku.
type SudokuMenuModel struct {
	cursor    int
	width     int
	height    int
	keyMapper *KeyMapper
	selected  *config.DifficultyPreset
	quitting  bool
	back      bool
}

// NewSudokuMenuModel creates a new Sudoku difficulty selection model.
func NewSudokuMenuModel(width, height int) SudokuMenuModel {
	return SudokuMenuModel{
		width:     width,
		height:    height,
		keyMapper: NewKeyMapper(),
	}
}

// Init initializes the model.
func (m SudokuMenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m SudokuMenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}
	return m, nil
}

func (m SudokuMenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case MenuActionDown:
		if m.cursor < len(sudokuDifficulties)-1 {
			m.cursor++
		}
	case MenuActionSelect:
		preset := sudokuDifficulties[m.cursor].Preset
		m.selected = &preset
		return m, tea.Quit
	case MenuActionBack:
		m.back = true
		return m, tea.Quit
	}

	return m, nil
}

// View renders the difficulty selection.
func (m SudokuMenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText("S U D O K U", m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select difficulty:", m.width))
	b.WriteString("\n\n")

	for i, d := range sudokuDifficulties {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		b.WriteString(centerText(fmt.Sprintf("%s%s", cursor, d.Label), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText("Enter: Select  |  Esc: Back  |  Q: Quit", m.width))

	return b.String()
}

// Selected returns the chosen preset, or nil if none selected.
func (m SudokuMenuModel) Selected() *config.DifficultyPreset {
	return m.selected
}

// IsQuitting returns true if user wants to quit.
func (m SudokuMenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsBack returns true if user pressed back.
func (m SudokuMenuModel) WantsBack() bool {
	return m.back
}

// RunSudokuDifficultySelector runs the difficulty selection and returns
// the chosen preset, or nil when the user backed out.
func RunSudokuDifficultySelector(cfg core.RuntimeConfig) (*config.DifficultyPreset, error) {
	model := NewSudokuMenuModel(cfg.ScreenW, cfg.ScreenH)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return nil, err
	}

	m, ok := finalModel.(SudokuMenuModel)
	if !ok || m.IsQuitting() || m.WantsBack() {
		return nil, nil
	}

	return m.Selected(), nil
}
