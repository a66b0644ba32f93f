// Package fieldinput provides a live-formatting text field component.
//
// It wraps a bubbles textinput as the host element and binds an edit
// controller to it: every keystroke is reformatted through the configured
// pipeline, pastes are formatted as fragments, and the modifier-held
// editing commands (undo, redo, select-all, delete-word-backward) are
// translated through the keymap.
package fieldinput

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/zjrosen/formatfield/internal/editor"
	"github.com/zjrosen/formatfield/internal/format"
)

const defaultWidth = 36

var (
	labelStyle        = lipgloss.NewStyle().Bold(true)
	focusedLabelStyle = labelStyle.Foreground(lipgloss.Color("#73F59F"))
	diagStyle         = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B"))
)

// Config defines one formatted field.
type Config struct {
	Label       string
	Placeholder string
	Format      format.RawConfig
	Width       int
}

// Model is the field component state.
type Model struct {
	label string

	// input is shared by all copies of the Model so the controller's host
	// binding stays valid across bubbletea's value-semantics updates.
	input *textinput.Model
	ctrl  *editor.Controller

	keys  KeyMap
	diags []error
}

// hostAdapter exposes a textinput as an editor.Host. The textinput has no
// range selection, so selection collapses to the caret; SetSelection with
// a range parks the caret at the range end.
type hostAdapter struct {
	input *textinput.Model
}

func (h hostAdapter) Value() string               { return h.input.Value() }
func (h hostAdapter) SetValue(v string)           { h.input.SetValue(v) }
func (h hostAdapter) Selection() (int, int)       { p := h.input.Position(); return p, p }
func (h hostAdapter) SetSelection(_, end int)     { h.input.SetCursor(end) }
func (h hostAdapter) FieldType() editor.FieldType { return editor.FieldTypeText }
func (h hostAdapter) Focused() bool               { return h.input.Focused() }

// New creates a formatted field from cfg. Configuration diagnostics are
// retained for display; editing proceeds with the valid remainder.
func New(cfg Config) Model {
	ti := textinput.New()
	ti.Placeholder = cfg.Placeholder
	ti.Prompt = ""
	ti.Width = cfg.Width
	if ti.Width <= 0 {
		ti.Width = defaultWidth
	}

	input := &ti
	fcfg, diags := format.Configure(cfg.Format)

	return Model{
		label: cfg.Label,
		input: input,
		ctrl:  editor.New(hostAdapter{input: input}, fcfg),
		keys:  DefaultKeyMap,
		diags: diags,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles key input. Editing commands are intercepted before the
// textinput sees them; bracketed pastes and multi-rune key messages go
// through the paste path; everything else is forwarded to the textinput
// and the resulting raw value is run through the controller.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m.forward(msg)
	}
	if !m.input.Focused() {
		return m, nil
	}

	if key.Matches(keyMsg, m.keys.Undo, m.keys.Redo, m.keys.SelectAll, m.keys.DeleteWordBack) {
		if cmd, ok := commandForKeyMsg(keyMsg); ok {
			m.ctrl.HandleCommand(cmd)
			return m, nil
		}
	}

	if keyMsg.Type == tea.KeyRunes && (keyMsg.Paste || len(keyMsg.Runes) > 1) {
		// Suppress the native insertion; the controller formats the
		// fragment and writes the merged value itself.
		m.ctrl.HandlePaste(string(keyMsg.Runes))
		return m, nil
	}

	return m.forward(msg)
}

// commandForKeyMsg translates a bound key message into an editing
// command. The terminal reports the held modifier as a "ctrl+" prefix on
// the key name.
func commandForKeyMsg(msg tea.KeyMsg) (editor.Command, bool) {
	name := msg.String()
	after, held := strings.CutPrefix(name, "ctrl+")
	if held {
		name = after
	}
	return editor.CommandForKey(name, held)
}

// forward hands msg to the textinput, then reformats if the raw value
// changed.
func (m Model) forward(msg tea.Msg) (Model, tea.Cmd) {
	prev := m.input.Value()
	updated, cmd := m.input.Update(msg)
	*m.input = updated

	if raw := m.input.Value(); raw != prev {
		m.ctrl.HandleInput(raw)
	}
	return m, cmd
}

// View renders the label, the input, and any configuration diagnostics.
func (m Model) View() string {
	label := labelStyle.Render(m.label)
	if m.input.Focused() {
		label = focusedLabelStyle.Render(m.label)
	}

	out := lipgloss.JoinVertical(lipgloss.Left, label, m.input.View())
	for _, d := range m.diags {
		out = lipgloss.JoinVertical(lipgloss.Left, out, diagStyle.Render("! "+d.Error()))
	}
	return out
}

// Focus gives the field focus and starts cursor blinking.
func (m Model) Focus() (Model, tea.Cmd) {
	cmd := m.input.Focus()
	m.ctrl.HandleFocus()
	return m, cmd
}

// Blur removes focus, which also signals touched on the controller.
func (m Model) Blur() Model {
	m.input.Blur()
	m.ctrl.HandleBlur()
	return m
}

// Focused reports whether the field has focus.
func (m Model) Focused() bool {
	return m.input.Focused()
}

// Value returns the current committed formatted value.
func (m Model) Value() string {
	return m.input.Value()
}

// Label returns the field's label.
func (m Model) Label() string {
	return m.label
}

// Controller exposes the edit controller for form wiring (value-changed
// and touched callbacks, forced writes, disabled state).
func (m Model) Controller() *editor.Controller {
	return m.ctrl
}

// Diagnostics returns the configuration diagnostics collected when the
// field was built.
func (m Model) Diagnostics() []error {
	return m.diags
}
