package format

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// markStripper decomposes to NFD, drops combining marks, and recomposes.
// "café" becomes "cafe" while unaccented text passes through untouched.
var markStripper = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// stripDiacritics removes accent marks from s. On a transform error the
// input is returned unchanged rather than partially converted.
func stripDiacritics(s string) string {
	out, _, err := transform.String(markStripper, s)
	if err != nil {
		return s
	}
	return out
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

// splitWords strips diacritics and splits on runs of non-alphanumeric
// characters.
func splitWords(s string) []string {
	return strings.FieldsFunc(stripDiacritics(s), func(r rune) bool {
		return !isWordRune(r)
	})
}

// capitalize uppercases the first rune and lowercases the tail.
func capitalize(word string) string {
	if word == "" {
		return ""
	}
	r := []rune(strings.ToLower(word))
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}

// toCamelCase joins the words of s with no separator, first word
// lowercased, the rest capitalized. A single trailing space in the input
// is preserved so the separator the user just typed is not eaten
// mid-entry.
func toCamelCase(s string) string {
	words := splitWords(s)
	if len(words) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString(strings.ToLower(words[0]))
	for _, w := range words[1:] {
		b.WriteString(capitalize(w))
	}
	if strings.HasSuffix(s, " ") {
		b.WriteString(" ")
	}
	return b.String()
}

// toPascalCase joins the words of s with no separator, every word
// capitalized. Trailing-space preservation matches toCamelCase.
func toPascalCase(s string) string {
	words := splitWords(s)
	if len(words) == 0 {
		return ""
	}
	var b strings.Builder
	for _, w := range words {
		b.WriteString(capitalize(w))
	}
	if strings.HasSuffix(s, " ") {
		b.WriteString(" ")
	}
	return b.String()
}

// toSnakeCase lowercases s, strips diacritics, and collapses every run of
// non-alphanumeric characters to a single underscore. Boundary
// underscores are trimmed only when the field is unfocused: while the
// user is still typing, a trailing separator is kept so a multi-word
// identifier can be continued.
func toSnakeCase(s string, focused bool) string {
	lowered := strings.ToLower(stripDiacritics(s))

	var b strings.Builder
	b.Grow(len(lowered))
	inSep := false
	for _, r := range lowered {
		if isWordRune(r) {
			b.WriteRune(r)
			inSep = false
		} else if !inSep {
			b.WriteRune('_')
			inSep = true
		}
	}

	out := b.String()
	if !focused {
		out = strings.Trim(out, "_")
	}
	return out
}

// toKebabCase is toSnakeCase with dashes for underscores.
func toKebabCase(s string, focused bool) string {
	return strings.ReplaceAll(toSnakeCase(s, focused), "_", "-")
}
