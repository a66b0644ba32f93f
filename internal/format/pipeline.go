package format

import "regexp"

// Config is a validated formatting configuration: an ordered rule
// sequence plus the side parameters individual rules consume. Build one
// with Configure; a zero Config behaves as the identity pipeline.
//
// Configs are replaced wholesale on reconfiguration, never mutated.
type Config struct {
	// Rules are applied left to right; each rule's output feeds the next.
	// Order is significant and not commutative. Empty behaves as
	// [KindDefault].
	Rules []Kind

	// Ignored matches characters removed before and after every rule
	// application. Nil disables the filter.
	Ignored *regexp.Regexp

	// Numeric configures the onlynumbers rule.
	Numeric NumericBounds

	// Pattern is the compiled full-match custom pattern for customregex.
	// Nil passes text through.
	Pattern *regexp.Regexp
}

// filterIgnored removes every configured ignored character from s.
func (c Config) filterIgnored(s string) string {
	if c.Ignored == nil {
		return s
	}
	return c.Ignored.ReplaceAllString(s, "")
}

// applyRule runs a single rule. Unknown kinds act as identity; they are
// rejected at configuration time, so reaching one here means the caller
// bypassed Configure.
func (c Config) applyRule(k Kind, s string, ctx Context) string {
	switch k {
	case KindUpper:
		return upperCase(s)
	case KindLower:
		return lowerCase(s)
	case KindCamel:
		return toCamelCase(s)
	case KindPascal:
		return toPascalCase(s)
	case KindSnake:
		return toSnakeCase(s, ctx.Focused)
	case KindKebab:
		return toKebabCase(s, ctx.Focused)
	case KindNoSpaces:
		return noSpaces(s)
	case KindAlphanumeric:
		return alphanumeric(s)
	case KindOnlyLetters:
		return onlyLetters(s)
	case KindOnlyLettersAndSpaces:
		return onlyLettersAndSpaces(s)
	case KindOnlyNumbers:
		return onlyNumbers(s, c.Numeric)
	case KindCustomRegex:
		return c.customRegex(s, ctx.Memory)
	default:
		return s
	}
}

// Pipeline composes a Config into one deterministic text→text function.
// Identical (text, Context) inputs always yield identical output; the
// only state a run can observe is the Context it was handed.
type Pipeline struct {
	cfg Config
}

// NewPipeline builds a pipeline over cfg.
func NewPipeline(cfg Config) Pipeline {
	return Pipeline{cfg: cfg}
}

// Config returns the pipeline's configuration.
func (p Pipeline) Config() Config {
	return p.cfg
}

// Apply formats text: the ignored-character filter runs first, then each
// configured rule in order, each bracketed by the filter again so no rule
// can reintroduce an ignored character.
func (p Pipeline) Apply(text string, ctx Context) string {
	if ctx.Memory == nil {
		ctx.Memory = &RegexMemory{}
	}

	out := p.cfg.filterIgnored(text)
	rules := p.cfg.Rules
	if len(rules) == 0 {
		rules = []Kind{KindDefault}
	}
	for _, k := range rules {
		out = p.cfg.filterIgnored(out)
		out = p.cfg.applyRule(k, out, ctx)
		out = p.cfg.filterIgnored(out)
	}
	return out
}
