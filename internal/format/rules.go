package format

import (
	"strings"
	"unicode"
)

// Context carries the two stateful inputs a rule may depend on. Everything
// else a rule needs comes from the Config it was built with.
type Context struct {
	// Focused reports whether the field currently has focus. Snake and
	// kebab only trim boundary separators while unfocused, so a trailing
	// "_" survives mid-typing.
	Focused bool

	// Memory is the last value that satisfied the custom pattern. Nil is
	// valid when no customregex rule is configured.
	Memory *RegexMemory
}

// RegexMemory remembers the last text that matched the active custom
// pattern. It is only updated on a successful match and is never rolled
// back by undo or redo.
type RegexMemory struct {
	last string
}

// Last returns the most recent valid value, or "" if none yet.
func (m *RegexMemory) Last() string {
	if m == nil {
		return ""
	}
	return m.last
}

// Remember records a value that passed validation.
func (m *RegexMemory) Remember(value string) {
	m.last = value
}

// keepRunes returns s with every rune rejected by keep removed.
func keepRunes(s string, keep func(rune) bool) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if keep(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// upperCase converts the whole string to upper case.
func upperCase(s string) string {
	return strings.ToUpper(s)
}

// lowerCase converts the whole string to lower case.
func lowerCase(s string) string {
	return strings.ToLower(s)
}

// noSpaces removes all whitespace.
func noSpaces(s string) string {
	return keepRunes(s, func(r rune) bool { return !unicode.IsSpace(r) })
}

// alphanumeric keeps letters (accented included), digits and whitespace.
func alphanumeric(s string) string {
	return keepRunes(s, func(r rune) bool {
		return unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r)
	})
}

// onlyLetters keeps letters only.
func onlyLetters(s string) string {
	return keepRunes(s, unicode.IsLetter)
}

// onlyLettersAndSpaces keeps letters and whitespace only.
func onlyLettersAndSpaces(s string) string {
	return keepRunes(s, func(r rune) bool {
		return unicode.IsLetter(r) || unicode.IsSpace(r)
	})
}

// customRegex validates s against the configured full-match pattern.
// On a match the value is remembered and returned. On a mismatch the last
// known-good value is returned instead: keystroke-level rejection is
// expected and silent. A nil pattern passes text through unchanged.
func (c Config) customRegex(s string, mem *RegexMemory) string {
	if c.Pattern == nil {
		return s
	}
	if c.Pattern.MatchString(s) {
		mem.Remember(s)
		return s
	}
	return mem.Last()
}
