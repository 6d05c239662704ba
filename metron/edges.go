package metron

import (
	"fmt"
	"strings"
)

// Edges is a four-sided measurement, the multi-edge companion to Value
// used for thickness and corner-radius style properties.
type Edges struct {
	Left, Top, Right, Bottom Value
}

// UniformEdges returns Edges with the same value on all four sides.
func UniformEdges(v Value) Edges {
	return Edges{Left: v, Top: v, Right: v, Bottom: v}
}

// IsUniform reports whether all four sides are equal.
func (e Edges) IsUniform() bool {
	return e.Left == e.Top && e.Top == e.Right && e.Right == e.Bottom
}

// ParseEdges parses a four-sided measurement: either a single token
// applied to every side, or exactly four tokens separated by the
// culture's list separator. Any other token count is an error.
func ParseEdges(s string, c Culture) (Edges, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return Edges{}, &SyntaxError{Input: s, Msg: "empty input"}
	}

	tokens := strings.Split(trimmed, string(c.ListSep))
	switch len(tokens) {
	case 1:
		v, err := ParseValue(tokens[0], c)
		if err != nil {
			return Edges{}, err
		}
		return UniformEdges(v), nil
	case 4:
		var sides [4]Value
		for i, tok := range tokens {
			v, err := ParseValue(tok, c)
			if err != nil {
				return Edges{}, err
			}
			sides[i] = v
		}
		return Edges{Left: sides[0], Top: sides[1], Right: sides[2], Bottom: sides[3]}, nil
	default:
		return Edges{}, &SyntaxError{
			Input: s,
			Msg:   fmt.Sprintf("expected 1 or 4 measurements, got %d", len(tokens)),
		}
	}
}

// FormatEdges renders e in the form ParseEdges accepts. A uniform
// Edges collapses to a single token.
func FormatEdges(e Edges, c Culture) string {
	if e.IsUniform() {
		return FormatValue(e.Left, c)
	}
	parts := []string{
		FormatValue(e.Left, c),
		FormatValue(e.Top, c),
		FormatValue(e.Right, c),
		FormatValue(e.Bottom, c),
	}
	return strings.Join(parts, string(c.ListSep))
}

// AppendBinaryEdges appends the four encoded sides in left, top,
// right, bottom order.
func AppendBinaryEdges(dst []byte, e Edges) ([]byte, error) {
	var err error
	for _, v := range [4]Value{e.Left, e.Top, e.Right, e.Bottom} {
		if dst, err = AppendBinary(dst, v); err != nil {
			return dst, err
		}
	}
	return dst, nil
}

// DecodeBinaryEdges decodes four consecutive values and returns the
// Edges together with the number of bytes consumed.
func DecodeBinaryEdges(data []byte) (Edges, int, error) {
	var sides [4]Value
	off := 0
	for i := range sides {
		v, n, err := DecodeBinary(data[off:])
		if err != nil {
			return Edges{}, 0, err
		}
		sides[i] = v
		off += n
	}
	return Edges{Left: sides[0], Top: sides[1], Right: sides[2], Bottom: sides[3]}, off, nil
}
