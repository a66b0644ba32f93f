package editor

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Command is an editing command triggered by a modifier-held key.
type Command int

const (
	// CommandUndo steps the field one committed state back.
	CommandUndo Command = iota
	// CommandRedo replays the most recently undone state.
	CommandRedo
	// CommandSelectAll selects the whole field through the host's native
	// selection.
	CommandSelectAll
	// CommandDeleteWordBack deletes the active selection, or the word run
	// left of the caret.
	CommandDeleteWordBack
)

// CommandForKey maps a key name to an editing command. Commands are
// recognized only while the designated modifier is held; anything else is
// left to the host's default handling.
func CommandForKey(key string, modifierHeld bool) (Command, bool) {
	if !modifierHeld {
		return 0, false
	}
	switch strings.ToLower(key) {
	case "z":
		return CommandUndo, true
	case "y":
		return CommandRedo, true
	case "a":
		return CommandSelectAll, true
	case "w", "backspace":
		return CommandDeleteWordBack, true
	}
	return 0, false
}

// HandleCommand executes an editing command. It reports whether the
// command did anything; an exhausted undo/redo stack is a no-op.
func (c *Controller) HandleCommand(cmd Command) bool {
	if c.disabled {
		return false
	}

	switch cmd {
	case CommandUndo:
		value, ok := c.hist.Undo()
		if !ok {
			return false
		}
		c.writeHistoryState(value)
		return true

	case CommandRedo:
		value, ok := c.hist.Redo()
		if !ok {
			return false
		}
		c.writeHistoryState(value)
		return true

	case CommandSelectAll:
		c.host.SetSelection(0, utf8.RuneCountInString(c.host.Value()))
		return true

	case CommandDeleteWordBack:
		return c.deleteWordBack()
	}
	return false
}

// writeHistoryState writes an undo/redo result back to the host. The
// replay paths never clear redo and never re-commit; the history stacks
// already hold the right shape.
func (c *Controller) writeHistoryState(value string) {
	caret, _ := c.host.Selection()
	c.host.SetValue(value)
	c.placeCaret(caret, value)
	c.notifyChange(value)
}

// deleteWordBack removes the active selection if there is one; otherwise
// it scans left from the caret over non-whitespace and deletes up to the
// first whitespace boundary. A word is a maximal run of non-whitespace,
// so with the caret just right of a space there is nothing to delete.
func (c *Controller) deleteWordBack() bool {
	value := []rune(c.host.Value())
	start, end := c.clampedSelection(len(value))

	from, to := start, end
	if start == end {
		from = prevWordBoundary(value, start)
		to = start
	}
	if from == to {
		return false
	}

	result := string(value[:from]) + string(value[to:])
	c.host.SetValue(result)
	c.host.SetSelection(from, from)
	c.commit(result)
	return true
}

// prevWordBoundary scans left from pos over non-whitespace runes and
// returns the index of the first whitespace boundary.
func prevWordBoundary(value []rune, pos int) int {
	if pos > len(value) {
		pos = len(value)
	}
	for pos > 0 && !unicode.IsSpace(value[pos-1]) {
		pos--
	}
	return pos
}
