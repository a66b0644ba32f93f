// Package editor implements the interactive edit controller: it owns the
// active formatting configuration, binds to a text-field host, and
// orchestrates each edit — run the pipeline, write the result back,
// restore the caret, commit to history, notify the bound form.
//
// Processing is synchronous and never re-entered: the host delivers one
// event at a time and every handler runs to completion, so no locking is
// needed. One controller owns one field.
package editor

// FieldType classifies the host field. Native numeric fields cannot be
// reformatted because they do not support cursor-preserving writes.
type FieldType string

const (
	FieldTypeText   FieldType = "text"
	FieldTypeNumber FieldType = "number"
)

// Host is the text-field element capability the controller consumes.
// Offsets are rune offsets, always clamped by the controller to the
// current value's length.
type Host interface {
	// Value returns the field's current raw text.
	Value() string

	// SetValue writes text into the field.
	SetValue(value string)

	// Selection returns the current selection range. A collapsed caret
	// reports start == end.
	Selection() (start, end int)

	// SetSelection moves the selection. start == end collapses to a caret.
	SetSelection(start, end int)

	// FieldType reports the kind of field being edited.
	FieldType() FieldType

	// Focused reports whether the field currently has focus.
	Focused() bool
}
