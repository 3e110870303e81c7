package numtheory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtendedGCD(t *testing.T) {
	tests := []struct {
		name string
		a, b int
		want int
	}{
		{name: "small coprime", a: 5, b: 3, want: 1},
		{name: "common factor", a: 12, b: 18, want: 6},
		{name: "first divides second", a: 7, b: 49, want: 7},
		{name: "second divides first", a: 49, b: 7, want: 7},
		{name: "equal operands", a: 9, b: 9, want: 9},
		{name: "negative first", a: -12, b: 18, want: 6},
		{name: "negative second", a: 12, b: -18, want: 6},
		{name: "both negative", a: -12, b: -18, want: 6},
		{name: "large coprime", a: 1000003, b: 999983, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, x, y, err := ExtendedGCD(tt.a, tt.b)
			require.NoError(t, err)
			assert.Equal(t, tt.want, g)
			assert.Equal(t, g, x*tt.a+y*tt.b, "bezout identity with x=%d y=%d", x, y)
		})
	}
}

func TestExtendedGCD_ZeroOperand(t *testing.T) {
	_, _, _, err := ExtendedGCD(0, 5)
	assert.ErrorIs(t, err, ErrZeroOperand)

	_, _, _, err = ExtendedGCD(5, 0)
	assert.ErrorIs(t, err, ErrZeroOperand)
}

func TestGCD(t *testing.T) {
	g, err := GCD(int64(252), int64(105))
	require.NoError(t, err)
	assert.Equal(t, int64(21), g)
}
