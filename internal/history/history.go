// Package history implements linear undo/redo over committed text states.
//
// It is the classic two-stack memento arrangement: commits push onto the
// undo stack, undo moves the top entry to the redo stack and exposes the
// state one step back, redo moves it forward again. Commit deliberately
// never touches the redo stack — the undo/redo replay paths commit
// without losing pending redo history, so it is the caller's job to call
// ClearRedo on ordinary edits.
package history

// Memento is an immutable snapshot of one committed text state.
type Memento struct {
	Value string
}

// History holds the undo and redo stacks for a single field. It is not
// safe for concurrent use; one instance is owned by exactly one edit
// controller.
type History struct {
	undo []Memento // chronological commits, oldest first
	redo []Memento // undone states, most recently undone last
}

// New creates an empty history.
func New() *History {
	return &History{}
}

// Commit records value as the newest state. The redo stack is left
// untouched; ordinary edits must call ClearRedo first.
func (h *History) Commit(value string) {
	h.undo = append(h.undo, Memento{Value: value})
}

// ClearRedo discards all redo history. Called on every normal edit so
// that redo never replays states from an abandoned branch.
func (h *History) ClearRedo() {
	h.redo = h.redo[:0]
}

// Undo steps one state back. The bottom entry is the pre-edit baseline
// and is never popped, so undo reports false once fewer than two states
// remain.
func (h *History) Undo() (string, bool) {
	if len(h.undo) < 2 {
		return "", false
	}
	top := h.undo[len(h.undo)-1]
	h.undo = h.undo[:len(h.undo)-1]
	h.redo = append(h.redo, top)
	return h.undo[len(h.undo)-1].Value, true
}

// Redo replays the most recently undone state. Reports false when there
// is nothing to redo.
func (h *History) Redo() (string, bool) {
	if len(h.redo) == 0 {
		return "", false
	}
	top := h.redo[len(h.redo)-1]
	h.redo = h.redo[:len(h.redo)-1]
	h.undo = append(h.undo, top)
	return top.Value, true
}

// CanUndo reports whether Undo would succeed.
func (h *History) CanUndo() bool {
	return len(h.undo) >= 2
}

// CanRedo reports whether Redo would succeed.
func (h *History) CanRedo() bool {
	return len(h.redo) > 0
}

// Len returns the number of committed states on the undo stack.
func (h *History) Len() int {
	return len(h.undo)
}

// Reset discards all history. Used on explicit re-initialization of a
// field; history never persists across sessions.
func (h *History) Reset() {
	h.undo = h.undo[:0]
	h.redo = h.redo[:0]
}
