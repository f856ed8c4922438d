package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/conswap/conswap/internal/layout"
)

// Action represents the action to take after picker selection
type Action int

const (
	ActionNone Action = iota
	ActionSwap
	ActionQuit
)

// PickerResult holds the result of the picker
type PickerResult struct {
	Action Action
	Config string
}

// configItem implements list.Item for config display
type configItem struct {
	name   string
	active bool
	size   int64
}

func (i configItem) Title() string {
	if i.active {
		return i.name + " (active)"
	}
	return i.name
}

func (i configItem) Description() string {
	marker := "○"
	if i.active {
		marker = "✓"
	}
	return fmt.Sprintf("%s %s", marker, layout.FormatSize(i.size))
}

func (i configItem) FilterValue() string {
	return i.name
}

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39")).
			MarginBottom(1)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			MarginTop(1)

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")).
			Bold(true)
)

// ConfigEntry is one stored config offered by the picker.
type ConfigEntry struct {
	Name   string
	Active bool
	Size   int64
}

// Model is the bubbletea model for the config picker
type Model struct {
	list     list.Model
	result   PickerResult
	quitting bool
}

// NewPicker creates a new config picker for a group
func NewPicker(group string, configs []ConfigEntry) Model {
	items := make([]list.Item, len(configs))
	for i, c := range configs {
		items[i] = configItem{name: c.Name, active: c.Active, size: c.Size}
	}

	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = selectedStyle
	delegate.Styles.SelectedDesc = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))

	l := list.New(items, delegate, 80, 20)
	l.Title = fmt.Sprintf("conswap - %s - Select Config", group)
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.Styles.Title = titleStyle

	return Model{list: l}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.list.SetSize(msg.Width, msg.Height-4)
		return m, nil

	case tea.KeyMsg:
		// Don't handle keys if filtering
		if m.list.FilterState() == list.Filtering {
			break
		}

		switch msg.String() {
		case "enter":
			if item, ok := m.list.SelectedItem().(configItem); ok {
				m.result = PickerResult{
					Action: ActionSwap,
					Config: item.name,
				}
				m.quitting = true
				return m, tea.Quit
			}

		case "q", "esc":
			m.result = PickerResult{Action: ActionQuit}
			m.quitting = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	help := helpStyle.Render("[enter] Swap  [/] Filter  [q] Quit")

	return m.list.View() + "\n" + help
}

// Result returns the picker result
func (m Model) Result() PickerResult {
	return m.result
}

// RunPicker runs the interactive config picker for a group
func RunPicker(group string, configs []ConfigEntry) (PickerResult, error) {
	if len(configs) == 0 {
		return PickerResult{Action: ActionQuit}, nil
	}

	m := NewPicker(group, configs)
	p := tea.NewProgram(m, tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return PickerResult{}, err
	}

	return finalModel.(Model).Result(), nil
}
