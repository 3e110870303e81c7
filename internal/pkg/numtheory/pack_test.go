package numtheory

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPair(t *testing.T) {
	tests := []struct {
		name string
		x, y uint64
		want uint64
	}{
		{name: "origin", x: 0, y: 0, want: 0},
		{name: "first up", x: 0, y: 1, want: 1},
		{name: "first right", x: 1, y: 0, want: 2},
		{name: "second diagonal", x: 0, y: 2, want: 3},
		{name: "middle of diagonal", x: 1, y: 1, want: 4},
		{name: "end of diagonal", x: 2, y: 0, want: 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			z, err := Pair(tt.x, tt.y)
			require.NoError(t, err)
			assert.Equal(t, tt.want, z)
		})
	}
}

// Consecutive codes walk the diagonals x+y = 0, 1, 2, ... with x rising
// along each diagonal, and every code below a bound decodes to exactly one
// pair.
func TestPairUnpair_RoundTrip(t *testing.T) {
	for x := uint64(0); x < 40; x++ {
		for y := uint64(0); y < 40; y++ {
			z, err := Pair(x, y)
			require.NoError(t, err)

			gx, gy, err := Unpair(z)
			require.NoError(t, err)
			assert.Equal(t, x, gx)
			assert.Equal(t, y, gy)
		}
	}

	seen := make(map[uint64]bool)
	for z := uint64(0); z < 300; z++ {
		x, y, err := Unpair(z)
		require.NoError(t, err)

		back, err := Pair(x, y)
		require.NoError(t, err)
		assert.Equal(t, z, back)
		assert.False(t, seen[z])
		seen[z] = true
	}
}

func TestPair_Overflow(t *testing.T) {
	_, err := Pair(math.MaxUint64, 1)
	assert.ErrorIs(t, err, ErrPackOverflow)

	_, err = Pair(1<<33, 1<<33)
	assert.ErrorIs(t, err, ErrPackOverflow)
}

func TestUnpair_Range(t *testing.T) {
	_, _, err := Unpair(math.MaxUint64/2 + 1)
	assert.ErrorIs(t, err, ErrPackRange)

	x, y, err := Unpair(math.MaxUint64 / 2)
	require.NoError(t, err)

	z, err := Pair(x, y)
	require.NoError(t, err)
	assert.Equal(t, uint64(math.MaxUint64/2), z)
}
