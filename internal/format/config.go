package format

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/zjrosen/formatfield/internal/log"
)

// RawConfig is the host-supplied configuration before validation. It is
// consumed wholesale by Configure; partial updates are not supported.
type RawConfig struct {
	// Rules is the ordered rule sequence, comma-delimited. Entries are
	// trimmed and matched case-insensitively.
	Rules string

	// Format and Formats are the deprecated dual configuration surface: a
	// single rule name in Format, or Format set to "join" with the ordered
	// list carried in Formats. Accepted for backward compatibility and
	// translated into Rules with a deprecation diagnostic.
	Format  string
	Formats []string

	// IgnoredChars is a literal character class of characters to remove
	// around every rule. Characters with special meaning inside a
	// character class must be escaped by the caller.
	IgnoredChars string

	// MaxDecimals limits decimal digits for onlynumbers. Nil or negative
	// means integers only.
	MaxDecimals *int

	// MinValue and MaxValue clamp onlynumbers output when set.
	MinValue *float64
	MaxValue *float64

	// Pattern is the custom pattern for customregex, tested in full-match
	// mode against the whole text.
	Pattern string
}

// ErrDeprecatedConfig reports use of the format+formats configuration
// surface, which is translated to the ordered rule sequence.
var ErrDeprecatedConfig = errors.New("deprecated configuration: use the ordered rule sequence instead of format + formats")

// ConfigError is a non-fatal configuration diagnostic. The offending
// entry is dropped and processing continues with the remaining valid
// configuration.
type ConfigError struct {
	Field  string
	Value  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid %s %q: %s", e.Field, e.Value, e.Reason)
}

// Configure validates raw into a Config plus a list of non-fatal
// diagnostics. It never fails outright: every invalid entry is dropped
// with a *ConfigError and editing continues with what remains. An empty
// or fully rejected rule sequence falls back to the default identity
// rule.
func Configure(raw RawConfig) (Config, []error) {
	var diags []error

	sequence := raw.Rules
	if sequence == "" && raw.Format != "" {
		sequence = normalizeLegacy(raw)
		diags = append(diags, ErrDeprecatedConfig)
		log.Warn(log.CatConfig, "deprecated format configuration translated",
			"format", raw.Format, "rules", sequence)
	}

	cfg := Config{
		Numeric: NumericBounds{MaxDecimals: -1},
	}

	var rules []Kind
	for _, entry := range strings.Split(sequence, ",") {
		name := strings.ToLower(strings.TrimSpace(entry))
		if name == "" {
			continue
		}
		k := Kind(name)
		if !ValidKind(k) {
			diags = append(diags, &ConfigError{Field: "rules", Value: entry, Reason: "unknown rule"})
			log.Warn(log.CatConfig, "unknown rule dropped", "rule", entry)
			continue
		}
		rules = append(rules, k)
	}
	if len(rules) == 0 {
		rules = []Kind{KindDefault}
	}
	cfg.Rules = rules

	if raw.IgnoredChars != "" {
		re, err := regexp.Compile("[" + raw.IgnoredChars + "]")
		if err != nil {
			diags = append(diags, &ConfigError{Field: "ignoredChars", Value: raw.IgnoredChars, Reason: err.Error()})
			log.Warn(log.CatConfig, "ignored-character class dropped", "chars", raw.IgnoredChars, "error", err)
		} else {
			cfg.Ignored = re
		}
	}

	if raw.MaxDecimals != nil {
		cfg.Numeric.MaxDecimals = *raw.MaxDecimals
	}
	cfg.Numeric.Min = raw.MinValue
	cfg.Numeric.Max = raw.MaxValue
	if raw.MinValue != nil && raw.MaxValue != nil && *raw.MaxValue < *raw.MinValue {
		// Kept, not dropped: the rule's inversion guard clamps to the
		// maximum in this case.
		diags = append(diags, &ConfigError{
			Field:  "minValue",
			Value:  fmt.Sprintf("%v > maxValue %v", *raw.MinValue, *raw.MaxValue),
			Reason: "inverted numeric bounds",
		})
		log.Warn(log.CatConfig, "inverted numeric bounds", "min", *raw.MinValue, "max", *raw.MaxValue)
	}

	if raw.Pattern != "" {
		re, err := regexp.Compile("^(?:" + raw.Pattern + ")$")
		if err != nil {
			diags = append(diags, &ConfigError{Field: "pattern", Value: raw.Pattern, Reason: err.Error()})
			log.Warn(log.CatConfig, "custom pattern dropped", "pattern", raw.Pattern, "error", err)
		} else {
			cfg.Pattern = re
		}
	}

	return cfg, diags
}

// normalizeLegacy translates the deprecated format+formats shape into a
// comma-delimited rule sequence. A "join" format selects the side list in
// order; any other value is taken as a single rule name.
func normalizeLegacy(raw RawConfig) string {
	if strings.EqualFold(strings.TrimSpace(raw.Format), "join") {
		return strings.Join(raw.Formats, ",")
	}
	return raw.Format
}
