package history

import (
	"fmt"
	"testing"
)

func TestUndoRequiresBaseline(t *testing.T) {
	h := New()

	if _, ok := h.Undo(); ok {
		t.Error("Undo() on empty history should report false")
	}

	h.Commit("baseline")
	if _, ok := h.Undo(); ok {
		t.Error("Undo() with only the baseline should report false")
	}
}

func TestUndoStepsBack(t *testing.T) {
	h := New()
	h.Commit("a")
	h.Commit("ab")
	h.Commit("abc")

	v, ok := h.Undo()
	if !ok || v != "ab" {
		t.Errorf("Undo() = %q, %v, want %q, true", v, ok, "ab")
	}
	v, ok = h.Undo()
	if !ok || v != "a" {
		t.Errorf("Undo() = %q, %v, want %q, true", v, ok, "a")
	}
	if _, ok = h.Undo(); ok {
		t.Error("Undo() past the baseline should report false")
	}
}

func TestRedoReplaysForward(t *testing.T) {
	h := New()
	h.Commit("a")
	h.Commit("ab")
	h.Commit("abc")
	h.Undo() // -> ab
	h.Undo() // -> a

	v, ok := h.Redo()
	if !ok || v != "ab" {
		t.Errorf("Redo() = %q, %v, want %q, true", v, ok, "ab")
	}
	v, ok = h.Redo()
	if !ok || v != "abc" {
		t.Errorf("Redo() = %q, %v, want %q, true", v, ok, "abc")
	}
	if _, ok = h.Redo(); ok {
		t.Error("Redo() with nothing undone should report false")
	}
}

func TestRedoEmptyWithoutUndo(t *testing.T) {
	h := New()
	h.Commit("a")
	h.Commit("ab")

	if _, ok := h.Redo(); ok {
		t.Error("Redo() should report false before any Undo()")
	}
}

// After n commits, n-1 undos walk back to the baseline, the n-th reports
// false, and redo replays forward to the latest state.
func TestHistoryBounds(t *testing.T) {
	const n = 5
	h := New()
	for i := 1; i <= n; i++ {
		h.Commit(fmt.Sprintf("state-%d", i))
	}

	for i := n - 1; i >= 1; i-- {
		v, ok := h.Undo()
		if !ok || v != fmt.Sprintf("state-%d", i) {
			t.Fatalf("Undo() = %q, %v, want state-%d, true", v, ok, i)
		}
	}
	if _, ok := h.Undo(); ok {
		t.Error("Undo() at the baseline should report false")
	}

	for i := 2; i <= n; i++ {
		v, ok := h.Redo()
		if !ok || v != fmt.Sprintf("state-%d", i) {
			t.Fatalf("Redo() = %q, %v, want state-%d, true", v, ok, i)
		}
	}
	if _, ok := h.Redo(); ok {
		t.Error("Redo() at the newest state should report false")
	}
}

// Commit -> undo -> ClearRedo + commit must leave nothing to redo.
func TestClearRedoOnNewEdit(t *testing.T) {
	h := New()
	h.Commit("a")
	h.Commit("ab")
	h.Undo()

	if !h.CanRedo() {
		t.Fatal("expected redo available after Undo()")
	}

	// An ordinary edit clears redo before committing.
	h.ClearRedo()
	h.Commit("ax")

	if _, ok := h.Redo(); ok {
		t.Error("Redo() should report false after a new edit")
	}
}

// Commit alone must not clear redo: the redo replay path commits the
// replayed state without discarding what remains.
func TestCommitDoesNotClearRedo(t *testing.T) {
	h := New()
	h.Commit("a")
	h.Commit("ab")
	h.Commit("abc")
	h.Undo()
	h.Undo()

	h.Commit("replayed")
	if !h.CanRedo() {
		t.Error("Commit() must leave the redo stack untouched")
	}
}

func TestCanUndoCanRedo(t *testing.T) {
	h := New()
	if h.CanUndo() || h.CanRedo() {
		t.Error("empty history should report no undo/redo")
	}

	h.Commit("a")
	if h.CanUndo() {
		t.Error("baseline alone should not be undoable")
	}

	h.Commit("ab")
	if !h.CanUndo() {
		t.Error("expected CanUndo() after a second commit")
	}

	h.Undo()
	if !h.CanRedo() {
		t.Error("expected CanRedo() after Undo()")
	}
}

func TestReset(t *testing.T) {
	h := New()
	h.Commit("a")
	h.Commit("ab")
	h.Undo()

	h.Reset()

	if h.Len() != 0 {
		t.Errorf("Len() after Reset() = %d, want 0", h.Len())
	}
	if h.CanUndo() || h.CanRedo() {
		t.Error("Reset() should discard both stacks")
	}
}

func BenchmarkCommit(b *testing.B) {
	h := New()
	for i := 0; i < b.N; i++ {
		h.Commit("benchmark state")
	}
}

func BenchmarkUndoRedo(b *testing.B) {
	h := New()
	h.Commit("a")
	h.Commit("b")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		h.Undo()
		h.Redo()
	}
}
