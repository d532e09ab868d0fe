// Package ui provides the interactive terminal front-end for choosing
// between several applicable assists.
package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"rawfix/internal/assist"
)

var pickerTitleStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("6")).
	Bold(true)

type assistItem struct {
	a assist.Assist
}

func (i assistItem) Title() string       { return i.a.Title }
func (i assistItem) Description() string { return i.a.ID }
func (i assistItem) FilterValue() string { return i.a.Title }

type pickerModel struct {
	list   list.Model
	choice int
}

// NewPickerModel returns a Bubble Tea model listing the given assists.
func NewPickerModel(assists []assist.Assist) tea.Model {
	items := make([]list.Item, 0, len(assists))
	for _, a := range assists {
		items = append(items, assistItem{a: a})
	}

	l := list.New(items, list.NewDefaultDelegate(), 0, 0)
	l.Title = "select an assist"
	l.Styles.Title = pickerTitleStyle
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)

	return &pickerModel{list: l, choice: -1}
}

func (m *pickerModel) Init() tea.Cmd {
	return nil
}

func (m *pickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.list.SetSize(msg.Width, msg.Height)
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "enter":
			m.choice = m.list.Index()
			return m, tea.Quit
		case "q", "esc", "ctrl+c":
			m.choice = -1
			return m, tea.Quit
		}
	}
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m *pickerModel) View() string {
	return m.list.View()
}

// PickAssist runs the interactive picker and returns the index of the chosen
// assist, or -1 when the user dismissed the list.
func PickAssist(assists []assist.Assist) (int, error) {
	if len(assists) == 0 {
		return -1, nil
	}
	prog := tea.NewProgram(NewPickerModel(assists), tea.WithAltScreen())
	final, err := prog.Run()
	if err != nil {
		return -1, fmt.Errorf("ui: %w", err)
	}
	model, ok := final.(*pickerModel)
	if !ok {
		return -1, nil
	}
	return model.choice, nil
}
