// Package format implements the text-transformation pipeline: a registry of
// named pure text→text rules, composed in configured order with a shared
// ignored-character filter, numeric bounds, and an optional custom pattern.
//
// # Architecture
//
// The pipeline has three layers:
//
//  1. Rules: pure functions keyed by Kind (case conversion, character
//     filtering, numeric clamping, custom-pattern validation)
//  2. Pipeline: folds the configured rules left to right, bracketing every
//     rule with the ignored-character filter
//  3. Configure: validates a raw, host-supplied configuration into a
//     Config plus non-fatal diagnostics
//
// Two rules depend on state that lives outside the pipeline: customregex
// falls back to the last value that matched the pattern, and snake/kebab
// only trim boundary separators while the field is unfocused. Both inputs
// are threaded in explicitly through Context so the rules stay testable in
// isolation.
package format

// Kind names a transformation rule.
type Kind string

// The supported rule kinds, matched case-insensitively when parsing a
// rule sequence.
const (
	KindDefault              Kind = "default"
	KindUpper                Kind = "upper"
	KindLower                Kind = "lower"
	KindCamel                Kind = "camel"
	KindPascal               Kind = "pascal"
	KindSnake                Kind = "snake"
	KindKebab                Kind = "kebab"
	KindNoSpaces             Kind = "nospaces"
	KindAlphanumeric         Kind = "alphanumeric"
	KindOnlyLetters          Kind = "onlyletters"
	KindOnlyLettersAndSpaces Kind = "onlylettersandspaces"
	KindOnlyNumbers          Kind = "onlynumbers"
	KindCustomRegex          Kind = "customregex"
)

// validKinds is the set of recognized rule kinds.
var validKinds = map[Kind]bool{
	KindDefault:              true,
	KindUpper:                true,
	KindLower:                true,
	KindCamel:                true,
	KindPascal:               true,
	KindSnake:                true,
	KindKebab:                true,
	KindNoSpaces:             true,
	KindAlphanumeric:         true,
	KindOnlyLetters:          true,
	KindOnlyLettersAndSpaces: true,
	KindOnlyNumbers:          true,
	KindCustomRegex:          true,
}

// kindDescriptions maps each kind to a one-line description for listings.
var kindDescriptions = map[Kind]string{
	KindDefault:              "identity, leaves text unchanged",
	KindUpper:                "uppercase the whole string",
	KindLower:                "lowercase the whole string",
	KindCamel:                "camelCase words, diacritics stripped",
	KindPascal:               "PascalCase words, diacritics stripped",
	KindSnake:                "snake_case words, diacritics stripped",
	KindKebab:                "kebab-case words, diacritics stripped",
	KindNoSpaces:             "remove all whitespace",
	KindAlphanumeric:         "keep letters, digits and whitespace",
	KindOnlyLetters:          "keep letters only",
	KindOnlyLettersAndSpaces: "keep letters and whitespace only",
	KindOnlyNumbers:          "digits with optional sign, decimals and clamping",
	KindCustomRegex:          "reject edits that do not match the configured pattern",
}

// KnownKinds returns all recognized rule kinds in a stable listing order.
func KnownKinds() []Kind {
	return []Kind{
		KindDefault,
		KindUpper,
		KindLower,
		KindCamel,
		KindPascal,
		KindSnake,
		KindKebab,
		KindNoSpaces,
		KindAlphanumeric,
		KindOnlyLetters,
		KindOnlyLettersAndSpaces,
		KindOnlyNumbers,
		KindCustomRegex,
	}
}

// Describe returns the one-line description for a kind, or "" if unknown.
func Describe(k Kind) string {
	return kindDescriptions[k]
}

// ValidKind reports whether k names a recognized rule.
func ValidKind(k Kind) bool {
	return validKinds[k]
}
