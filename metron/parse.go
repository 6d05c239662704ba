package metron

import (
	"fmt"
	"strconv"
	"strings"
)

// SyntaxError reports text that does not match the measurement grammar.
type SyntaxError struct {
	Input string
	Msg   string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("metron: cannot parse %q: %s", e.Input, e.Msg)
}

// ParseValue parses the text form of a single measurement.
//
// The input is trimmed, then matched in order: the whole string against
// the "auto" keyword, the tail against the ordered unit suffix table,
// and finally the tail against the density suffixes (which scale the
// number into pixels without changing the unit). Whatever remains must
// be a number in the culture's conventions, except that a bare
// non-default suffix implies an amount of exactly 1.
//
// Input containing the culture's list separator is rejected here; lists
// of measurements belong to ParseEdges.
func ParseValue(s string, c Culture) (Value, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return Value{}, &SyntaxError{Input: s, Msg: "empty input"}
	}
	if strings.ContainsRune(trimmed, c.ListSep) {
		return Value{}, &SyntaxError{Input: s, Msg: "expected a single measurement, not a list"}
	}

	lower := strings.ToLower(trimmed)
	if lower == autoKeyword {
		return Auto(), nil
	}

	unit := DefaultUnit
	factor := 1.0
	rest := lower
	matched := false
	for _, e := range suffixTable {
		if strings.HasSuffix(lower, e.suffix) {
			unit = e.unit
			rest = lower[:len(lower)-len(e.suffix)]
			matched = true
			break
		}
	}
	if !matched {
		for _, e := range densityTable {
			if strings.HasSuffix(lower, e.suffix) {
				factor = e.factor
				rest = lower[:len(lower)-len(e.suffix)]
				break
			}
		}
	}

	rest = strings.TrimSpace(rest)
	if rest == "" {
		if matched && unit != DefaultUnit {
			return Value{Amount: 1, Unit: unit}, nil
		}
		return Value{}, &SyntaxError{Input: s, Msg: "missing numeric amount"}
	}

	amount, err := parseAmount(rest, c)
	if err != nil {
		return Value{}, &SyntaxError{Input: s, Msg: err.Error()}
	}
	return Value{Amount: amount * factor, Unit: unit}, nil
}

// parseAmount parses a number written with the culture's decimal point.
// Cultures that use ',' as the decimal point do not accept '.' at all:
// digit grouping is never part of the grammar.
//
// The grammar is plain decimal with an optional exponent. ParseFloat
// alone is too permissive here: it also takes Go literal forms (hex
// floats, digit underscores, "inf"), so the characters are checked
// first.
func parseAmount(s string, c Culture) (float64, error) {
	if c.DecimalSep != '.' {
		if strings.ContainsRune(s, '.') {
			return 0, fmt.Errorf("unexpected '.' (decimal point is %q)", c.DecimalSep)
		}
		s = strings.ReplaceAll(s, string(c.DecimalSep), ".")
	}
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
		case r == '.' || r == 'e' || r == 'E' || r == '+' || r == '-':
		default:
			return 0, fmt.Errorf("invalid number %q", s)
		}
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid number %q", s)
	}
	return f, nil
}
