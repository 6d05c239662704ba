package metron

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValue_IsAbsolute(t *testing.T) {
	tests := []struct {
		v    Value
		want bool
	}{
		{Px(12), true},
		{Px(0), true},
		{Px(-3.5), true},
		{Auto(), false},
		{Columns(2.5), false},
		{Content(), false},
		{Pages(1), false},
	}

	for _, tt := range tests {
		t.Run(tt.v.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.v.IsAbsolute())
		})
	}
}

func TestConstructors(t *testing.T) {
	assert.Equal(t, Value{Amount: 3, Unit: UnitPixel}, Px(3))
	assert.Equal(t, Value{Amount: 1, Unit: UnitAuto}, Auto())
	assert.Equal(t, Value{Amount: 2.5, Unit: UnitColumn}, Columns(2.5))
	assert.Equal(t, Value{Amount: 1, Unit: UnitContent}, Content())
	assert.Equal(t, Value{Amount: 0.5, Unit: UnitPage}, Pages(0.5))
}
