package editor

import (
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/zjrosen/formatfield/internal/format"
	"github.com/zjrosen/formatfield/internal/history"
	"github.com/zjrosen/formatfield/internal/log"
)

// Controller drives one text field: raw edits come in, formatted text
// goes back out, with caret restoration, undo history, and form
// notification around every committed edit.
type Controller struct {
	id       string
	host     Host
	pipeline format.Pipeline
	hist     *history.History
	memory   format.RegexMemory

	focused  bool
	disabled bool

	onChange  func(string)
	onTouched func()
	onPaste   func(string)
}

// New binds a controller to host under cfg. The host's current value is
// committed as the undo baseline.
func New(host Host, cfg format.Config) *Controller {
	c := &Controller{
		id:       uuid.NewString(),
		host:     host,
		pipeline: format.NewPipeline(cfg),
		hist:     history.New(),
		focused:  host.Focused(),
	}
	c.hist.Commit(host.Value())
	return c
}

// ID returns the controller's instance identity, carried in diagnostics.
func (c *Controller) ID() string {
	return c.id
}

// Reconfigure replaces the formatting configuration wholesale. The
// custom-regex memory is cleared since it belongs to the old pattern.
func (c *Controller) Reconfigure(cfg format.Config) {
	c.pipeline = format.NewPipeline(cfg)
	c.memory = format.RegexMemory{}
	log.Debug(log.CatEditor, "controller reconfigured", "controller", c.id, "rules", cfg.Rules)
}

// History exposes the undo/redo state, primarily for tests and status UI.
func (c *Controller) History() *history.History {
	return c.hist
}

func (c *Controller) ctx() format.Context {
	return format.Context{Focused: c.focused, Memory: &c.memory}
}

// rejectNumericHost reports (and logs) the unsupported-field condition:
// native numeric fields do not survive cursor-preserving rewrites, so the
// event is ignored and the value passes through unformatted.
func (c *Controller) rejectNumericHost(event string) bool {
	if c.host.FieldType() != FieldTypeNumber {
		return false
	}
	log.Warn(log.CatEditor, "native numeric field cannot be reformatted",
		"controller", c.id, "event", event)
	return true
}

// HandleInput processes one raw user edit: format, write back, restore
// the caret, commit, notify.
//
// The caret is restored to the numeric offset it held before the edit,
// clamped to the new length. This is an approximation — it does not track
// which characters moved relative to the caret, and can misplace the
// caret when a rule changes the text length far before the edit point.
// An exact mapping would need every rule to report positions alongside
// text; accepted as a known limitation.
func (c *Controller) HandleInput(raw string) {
	if c.disabled {
		return
	}
	if c.rejectNumericHost("input") {
		return
	}

	caret, _ := c.host.Selection()
	formatted := c.pipeline.Apply(raw, c.ctx())
	c.host.SetValue(formatted)
	c.placeCaret(caret, formatted)
	c.commit(formatted)
}

// HandlePaste formats the clipboard fragment alone and inserts it where
// the host's native paste would have: the current selection is replaced,
// the rest of the field is not re-run through the pipeline. The formatted
// fragment is returned (and handed to any registered paste listener) for
// custom post-paste handling. Callers must suppress the native insertion.
func (c *Controller) HandlePaste(clipboard string) string {
	if c.disabled {
		return ""
	}
	if c.rejectNumericHost("paste") {
		return ""
	}

	fragment := c.pipeline.Apply(clipboard, c.ctx())

	value := []rune(c.host.Value())
	start, end := c.clampedSelection(len(value))
	merged := string(value[:start]) + fragment + string(value[end:])

	c.host.SetValue(merged)
	caret := start + utf8.RuneCountInString(fragment)
	c.host.SetSelection(caret, caret)
	c.commit(merged)

	if c.onPaste != nil {
		c.onPaste(fragment)
	}
	return fragment
}

// HandleFocus records that the field gained focus. No reformatting
// happens here; the flag gates the snake/kebab boundary trimming.
func (c *Controller) HandleFocus() {
	c.focused = true
}

// HandleBlur records focus loss and signals touched to the bound form.
func (c *Controller) HandleBlur() {
	c.focused = false
	if c.onTouched != nil {
		c.onTouched()
	}
}

// Focused reports the controller's focus-tracking flag.
func (c *Controller) Focused() bool {
	return c.focused
}

// commit records a completed ordinary edit: redo history dies, the new
// state is pushed, the form is notified.
func (c *Controller) commit(value string) {
	c.hist.ClearRedo()
	c.hist.Commit(value)
	c.notifyChange(value)
}

func (c *Controller) notifyChange(value string) {
	if c.onChange != nil {
		c.onChange(value)
	}
}

// placeCaret pins the caret to offset, clamped to value's rune length.
func (c *Controller) placeCaret(offset int, value string) {
	n := utf8.RuneCountInString(value)
	if offset > n {
		offset = n
	}
	if offset < 0 {
		offset = 0
	}
	c.host.SetSelection(offset, offset)
}

// clampedSelection normalizes the host selection into [0, n] with
// start <= end.
func (c *Controller) clampedSelection(n int) (int, int) {
	start, end := c.host.Selection()
	if start > end {
		start, end = end, start
	}
	if start < 0 {
		start = 0
	}
	if end > n {
		end = n
	}
	if start > n {
		start = n
	}
	return start, end
}
