package format

import (
	"strconv"
	"strings"
)

// NumericBounds configures the onlynumbers rule. A negative MaxDecimals
// means decimal separators are stripped entirely (integers only). Nil Min
// or Max disables the corresponding clamp.
type NumericBounds struct {
	MaxDecimals int
	Min         *float64
	Max         *float64
}

// IntegersOnly reports whether decimal separators should be stripped.
func (b NumericBounds) IntegersOnly() bool {
	return b.MaxDecimals < 0
}

// onlyNumbers reduces s to a numeric string under the configured bounds.
//
// Everything except digits, '.', ',' and '-' is stripped, commas are
// normalized to dots, and '-' survives only as a single leading sign. A
// lone "-" is returned verbatim so a negative number can be typed. The
// decimal part is truncated to MaxDecimals digits; a trailing '.' the
// user just typed is preserved until a decimal digit follows.
//
// The truncated string is then parsed and clamped: below Min clamps to
// Min (or Max when the bounds are inverted), above Max clamps to Max.
// When no clamp fires the truncated string is returned verbatim so a
// pending "12." is not collapsed back to "12" mid-entry. Unparseable
// input falls back to Min, sign-adjusted so "-0" renders as "0".
func onlyNumbers(s string, b NumericBounds) string {
	var sb strings.Builder
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9', r == '.', r == ',', r == '-':
			sb.WriteRune(r)
		}
	}
	t := strings.ReplaceAll(sb.String(), ",", ".")

	neg := strings.HasPrefix(t, "-")
	t = strings.ReplaceAll(t, "-", "")
	if neg {
		t = "-" + t
	}
	if t == "" {
		return ""
	}
	if t == "-" {
		// Mid-typing a negative number.
		return "-"
	}

	var ts string
	if b.IntegersOnly() {
		ts = strings.ReplaceAll(t, ".", "")
	} else if idx := strings.Index(t, "."); idx >= 0 {
		intPart := t[:idx]
		rawDec := strings.ReplaceAll(t[idx+1:], ".", "")
		dec := rawDec
		if len(dec) > b.MaxDecimals {
			dec = dec[:b.MaxDecimals]
		}
		switch {
		case rawDec == "":
			// Pending decimal point, no digits typed yet.
			ts = intPart + "."
		case dec == "":
			ts = intPart
		default:
			ts = intPart + "." + dec
		}
	} else {
		ts = t
	}

	v, err := strconv.ParseFloat(ts, 64)
	if err != nil {
		if b.Min != nil {
			return formatNumber(*b.Min)
		}
		return ts
	}

	clamped := false
	if b.Min != nil && v < *b.Min {
		if b.Max != nil && *b.Max < *b.Min {
			// Inverted bounds: the configured maximum wins.
			v = *b.Max
		} else {
			v = *b.Min
		}
		clamped = true
	}
	if b.Max != nil && v > *b.Max {
		v = *b.Max
		clamped = true
	}
	if clamped {
		return formatNumber(v)
	}
	return ts
}

// formatNumber renders v without exponent notation, normalizing negative
// zero to "0".
func formatNumber(v float64) string {
	if v == 0 {
		return "0"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
