package fieldinput

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/zjrosen/formatfield/internal/editor"
	"github.com/zjrosen/formatfield/internal/format"
)

func typeRunes(m Model, s string) Model {
	for _, r := range s {
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return m
}

func focusedField(t *testing.T, cfg Config) Model {
	t.Helper()
	m := New(cfg)
	m, _ = m.Focus()
	require.True(t, m.Focused())
	return m
}

func TestNew_Defaults(t *testing.T) {
	m := New(Config{Label: "Name", Placeholder: "type here"})

	require.Equal(t, "Name", m.Label())
	require.Empty(t, m.Diagnostics())
	require.Equal(t, "", m.Value())
}

func TestNew_RetainsConfigDiagnostics(t *testing.T) {
	m := New(Config{Label: "Name", Format: format.RawConfig{Rules: "upper,bogus"}})

	require.Len(t, m.Diagnostics(), 1)

	// Editing still works with the valid remainder.
	m, _ = m.Focus()
	m = typeRunes(m, "hi")
	require.Equal(t, "HI", m.Value())
}

func TestUpdate_TypingIsReformatted(t *testing.T) {
	m := focusedField(t, Config{Label: "Name", Format: format.RawConfig{Rules: "upper"}})

	m = typeRunes(m, "hello")

	require.Equal(t, "HELLO", m.Value())
}

func TestUpdate_IgnoresKeysWhenBlurred(t *testing.T) {
	m := New(Config{Label: "Name", Format: format.RawConfig{Rules: "upper"}})

	m = typeRunes(m, "hello")

	require.Equal(t, "", m.Value())
}

func TestUpdate_PasteFormatsFragment(t *testing.T) {
	m := focusedField(t, Config{Label: "Code", Format: format.RawConfig{Rules: "nospaces"}})

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("a b c"), Paste: true})

	require.Equal(t, "abc", m.Value())
}

func TestUpdate_MultiRuneTreatedAsPaste(t *testing.T) {
	m := focusedField(t, Config{Label: "Code", Format: format.RawConfig{Rules: "upper"}})

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("abc")})

	require.Equal(t, "ABC", m.Value())
}

func TestUpdate_UndoRedoKeys(t *testing.T) {
	m := focusedField(t, Config{Label: "Name"})

	m = typeRunes(m, "ab")
	require.Equal(t, "ab", m.Value())

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlZ})
	require.Equal(t, "a", m.Value())

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlY})
	require.Equal(t, "ab", m.Value())
}

func TestUpdate_DeleteWordBackKey(t *testing.T) {
	m := focusedField(t, Config{Label: "Name"})

	m = typeRunes(m, "one two")
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlW})

	require.Equal(t, "one ", m.Value())
}

func TestUpdate_SelectAllKey(t *testing.T) {
	m := focusedField(t, Config{Label: "Name"})

	m = typeRunes(m, "héllo")
	m.input.SetCursor(0)

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlA})

	// The textinput has no range selection; selecting all parks the
	// caret at the range end.
	require.Equal(t, 5, m.input.Position())
}

func TestCommandForKeyMsg(t *testing.T) {
	tests := []struct {
		name string
		msg  tea.KeyMsg
		want editor.Command
		ok   bool
	}{
		{"ctrl+z", tea.KeyMsg{Type: tea.KeyCtrlZ}, editor.CommandUndo, true},
		{"ctrl+y", tea.KeyMsg{Type: tea.KeyCtrlY}, editor.CommandRedo, true},
		{"ctrl+a", tea.KeyMsg{Type: tea.KeyCtrlA}, editor.CommandSelectAll, true},
		{"ctrl+w", tea.KeyMsg{Type: tea.KeyCtrlW}, editor.CommandDeleteWordBack, true},
		{"bare rune", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'z'}}, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := commandForKeyMsg(tt.msg)
			require.Equal(t, tt.ok, ok)
			if ok {
				require.Equal(t, tt.want, got)
			}
		})
	}
}

func TestBlurSignalsTouched(t *testing.T) {
	m := focusedField(t, Config{Label: "Name"})

	var touched bool
	m.Controller().OnTouched(func() { touched = true })

	m = m.Blur()

	require.False(t, m.Focused())
	require.True(t, touched)
}

func TestFocusGatesSnakeTrimming(t *testing.T) {
	m := focusedField(t, Config{Label: "Slug", Format: format.RawConfig{Rules: "snake"}})

	m = typeRunes(m, "hello ")
	require.Equal(t, "hello_", m.Value(), "separator survives while focused")
}

func TestView_ShowsLabelAndDiagnostics(t *testing.T) {
	m := New(Config{Label: "Amount", Format: format.RawConfig{Rules: "bogus"}})

	view := m.View()
	require.Contains(t, view, "Amount")
	require.Contains(t, view, "unknown rule")
}

func TestControllerWriteValueBypassesPipeline(t *testing.T) {
	m := focusedField(t, Config{Label: "Name", Format: format.RawConfig{Rules: "upper"}})

	m.Controller().WriteValue("mixed Case")

	require.Equal(t, "mixed Case", m.Value())
}
