package metron

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatValue(t *testing.T) {
	de := Culture{DecimalSep: ',', ListSep: ';'}

	tests := []struct {
		name string
		v    Value
		c    Culture
		want string
	}{
		{"pixel no suffix", Px(3), Invariant, "3"},
		{"pixel fractional", Px(0.5), Invariant, "0.5"},
		{"negative", Px(-42), Invariant, "-42"},
		{"column", Columns(2.5), Invariant, "2.5column"},
		{"column whole", Columns(2), Invariant, "2column"},
		{"auto is bare keyword", Auto(), Invariant, "auto"},
		{"content", Content(), Invariant, "1content"},
		{"page", Pages(0.25), Invariant, "0.25page"},
		{"german decimal point", Columns(2.5), de, "2,5column"},
		{"german integral unchanged", Px(42), de, "42"},
		{"large amount exponent form", Px(1e21), Invariant, "1e+21"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatValue(tt.v, tt.c))
		})
	}
}

func TestValueString(t *testing.T) {
	assert.Equal(t, "2.5column", Columns(2.5).String())
	assert.Equal(t, "auto", Auto().String())
}

// Formatting is the inverse of parsing for every representable finite
// amount the shortest-decimal form round-trips.
func TestFormatParse_Inverse(t *testing.T) {
	cultures := []Culture{
		Invariant,
		{DecimalSep: ',', ListSep: ';'},
		{DecimalSep: '.', ListSep: ','},
	}
	vals := []Value{
		Px(0), Px(127), Px(128), Px(-32769), Px(0.1),
		Columns(1), Columns(2.5), Columns(-0.125),
		Content(), Pages(3), Pages(1e300), Px(1e21),
		Auto(),
	}

	for _, c := range cultures {
		for _, want := range vals {
			text := FormatValue(want, c)
			got, err := ParseValue(text, c)
			require.NoError(t, err, "input %q", text)
			assert.Equal(t, want, got, "input %q", text)
		}
	}
}
