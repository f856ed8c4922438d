package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Field is one descriptor field offered by the configure wizard.
type Field struct {
	Name    string
	Current string
}

// WizardResult holds the values entered in the configure wizard.
type WizardResult struct {
	// Values maps field name to the new value for every field the user
	// changed. Unchanged fields are absent.
	Values map[string]string

	// Cancelled is set when the user aborted the wizard.
	Cancelled bool
}

// wizardModel steps through descriptor fields with a text input.
type wizardModel struct {
	group  string
	fields []Field
	index  int
	input  textinput.Model
	result WizardResult
	done   bool
}

// NewWizard creates a configure wizard for a group's descriptor fields.
func NewWizard(group string, fields []Field) wizardModel {
	ti := textinput.New()
	ti.Placeholder = fields[0].Current
	ti.Focus()
	ti.CharLimit = 512
	ti.Width = 60

	return wizardModel{
		group:  group,
		fields: fields,
		input:  ti,
		result: WizardResult{Values: map[string]string{}},
	}
}

func (m wizardModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m wizardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "ctrl+c":
			m.result.Cancelled = true
			m.done = true
			return m, tea.Quit

		case "enter":
			value := strings.TrimSpace(m.input.Value())
			if value != "" {
				m.result.Values[m.fields[m.index].Name] = value
			}
			m.index++
			if m.index >= len(m.fields) {
				m.done = true
				return m, tea.Quit
			}
			m.input.SetValue("")
			m.input.Placeholder = m.fields[m.index].Current
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m wizardModel) View() string {
	if m.done {
		return ""
	}

	field := m.fields[m.index]

	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("conswap - configure %s", m.group)))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%s (current: %q)\n", field.Name, field.Current))
	b.WriteString(m.input.View())
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("[enter] Accept (empty keeps current)  [esc] Cancel"))
	return b.String()
}

// Result returns the wizard result.
func (m wizardModel) Result() WizardResult {
	return m.result
}

// RunWizard steps the user through the group's descriptor fields.
func RunWizard(group string, fields []Field) (WizardResult, error) {
	if len(fields) == 0 {
		return WizardResult{Values: map[string]string{}}, nil
	}

	m := NewWizard(group, fields)
	p := tea.NewProgram(m)

	finalModel, err := p.Run()
	if err != nil {
		return WizardResult{}, err
	}

	return finalModel.(wizardModel).Result(), nil
}
