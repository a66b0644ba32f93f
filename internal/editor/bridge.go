package editor

import (
	"unicode/utf8"

	"github.com/zjrosen/formatfield/internal/log"
)

// bridge.go is the form-binding surface: two registration functions, one
// forced-write entry point, and the disabled switch. It is deliberately
// independent of any UI framework's binding mechanism — a surrounding
// form wires callbacks in, and pushes resets and disabled state down.

// WriteValue is the externally forced value reset. It bypasses the
// pipeline, writes directly, and re-initializes history with the new
// value as baseline. No change notification fires: the value came from
// the form side.
func (c *Controller) WriteValue(value string) {
	c.host.SetValue(value)
	c.placeCaret(utf8.RuneCountInString(value), value)
	c.hist.Reset()
	c.hist.Commit(value)
	log.Debug(log.CatEditor, "forced value reset", "controller", c.id)
}

// OnValueChanged registers fn to be invoked with each newly committed
// formatted value.
func (c *Controller) OnValueChanged(fn func(string)) {
	c.onChange = fn
}

// OnTouched registers fn to be invoked when the field blurs.
func (c *Controller) OnTouched(fn func()) {
	c.onTouched = fn
}

// OnPasteFormatted registers fn to receive the formatted paste fragment
// for custom post-paste handling.
func (c *Controller) OnPasteFormatted(fn func(string)) {
	c.onPaste = fn
}

// SetDisabled switches edit-event handling off. While disabled, input,
// paste and commands are ignored.
func (c *Controller) SetDisabled(disabled bool) {
	c.disabled = disabled
}

// Disabled reports the disabled state.
func (c *Controller) Disabled() bool {
	return c.disabled
}
