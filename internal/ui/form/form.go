// Package form renders a vertical stack of formatted fields with
// tab-cycling focus. It is the interactive surface behind the demo
// command.
package form

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/zjrosen/formatfield/internal/config"
	"github.com/zjrosen/formatfield/internal/ui/fieldinput"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#73F59F"))
	helpStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#666666"))
	boxStyle   = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#444444")).
			Padding(1, 2)
)

// Model is the form state.
type Model struct {
	title        string
	fields       []fieldinput.Model
	focusedIndex int
}

// New builds a form from the configured fields.
func New(title string, fieldConfigs []config.FieldConfig) Model {
	fields := make([]fieldinput.Model, len(fieldConfigs))
	for i, fc := range fieldConfigs {
		fields[i] = fieldinput.New(fieldinput.Config{
			Label:       fc.Label,
			Placeholder: fc.Placeholder,
			Format:      fc.FormatConfig(),
			Width:       fc.Width,
		})
	}

	m := Model{title: title, fields: fields}
	if len(m.fields) > 0 {
		m.fields[0], _ = m.fields[0].Focus()
	}
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	if len(m.fields) > 0 {
		return m.fields[0].Init()
	}
	return nil
}

// Update handles focus cycling and quitting; everything else goes to the
// focused field.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit

		case "tab", "enter":
			next, cmd := m.cycleFocus(1)
			return next, cmd

		case "shift+tab":
			prev, cmd := m.cycleFocus(-1)
			return prev, cmd
		}
	}

	updated, cmd := m.forwardToFocused(msg)
	return updated, cmd
}

// cycleFocus blurs the current field and focuses the one delta away,
// wrapping at both ends.
func (m Model) cycleFocus(delta int) (Model, tea.Cmd) {
	if len(m.fields) == 0 {
		return m, nil
	}

	m.fields[m.focusedIndex] = m.fields[m.focusedIndex].Blur()
	m.focusedIndex = (m.focusedIndex + delta + len(m.fields)) % len(m.fields)

	var cmd tea.Cmd
	m.fields[m.focusedIndex], cmd = m.fields[m.focusedIndex].Focus()
	return m, cmd
}

func (m Model) forwardToFocused(msg tea.Msg) (Model, tea.Cmd) {
	if len(m.fields) == 0 {
		return m, nil
	}
	var cmd tea.Cmd
	m.fields[m.focusedIndex], cmd = m.fields[m.focusedIndex].Update(msg)
	return m, cmd
}

// View renders the title, every field, and the key help line.
func (m Model) View() string {
	parts := make([]string, 0, len(m.fields)+2)
	parts = append(parts, titleStyle.Render(m.title))
	for _, f := range m.fields {
		parts = append(parts, "", f.View())
	}
	body := lipgloss.JoinVertical(lipgloss.Left, parts...)

	help := helpStyle.Render("tab: next field • ctrl+z/ctrl+y: undo/redo • ctrl+w: delete word • esc: quit")
	return boxStyle.Render(body) + "\n" + help + "\n"
}

// Values returns each field's committed value keyed by label.
func (m Model) Values() map[string]string {
	values := make(map[string]string, len(m.fields))
	for _, f := range m.fields {
		values[f.Label()] = f.Value()
	}
	return values
}

// Summary renders a plain listing of the final values, printed after the
// program exits.
func (m Model) Summary() string {
	var b strings.Builder
	maxLen := 0
	for _, f := range m.fields {
		if len(f.Label()) > maxLen {
			maxLen = len(f.Label())
		}
	}
	for _, f := range m.fields {
		b.WriteString("  ")
		b.WriteString(f.Label())
		b.WriteString(strings.Repeat(" ", maxLen-len(f.Label())))
		b.WriteString("  ")
		b.WriteString(f.Value())
		b.WriteString("\n")
	}
	return b.String()
}
