package benford

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLeadingDigit(t *testing.T) {
	tests := []struct {
		name string
		x    float64
		want int
	}{
		{name: "integer", x: 42, want: 4},
		{name: "fraction", x: 0.0072, want: 7},
		{name: "negative", x: -815, want: 8},
		{name: "power of ten", x: 1000, want: 1},
		{name: "exact eight", x: 8, want: 8},
		{name: "nine point seven stays nine", x: 9.7, want: 9},
		{name: "nine nine nine", x: 0.999, want: 9},
		{name: "zero has no digit", x: 0, want: 0},
		{name: "nan has no digit", x: math.NaN(), want: 0},
		{name: "infinity has no digit", x: math.Inf(1), want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, LeadingDigit(tt.x))
		})
	}
}

func TestTabulate(t *testing.T) {
	input := "12 0.34 5 999 -14 7e3 0 128"

	table, err := Tabulate(strings.NewReader(input))
	require.NoError(t, err)

	assert.Equal(t, 7, table.Total)
	assert.Equal(t, 1, table.Skipped)
	assert.Equal(t, 3, table.Counts[1]) // 12, -14, 128
	assert.Equal(t, 1, table.Counts[3])
	assert.Equal(t, 1, table.Counts[5])
	assert.Equal(t, 1, table.Counts[7])
	assert.Equal(t, 1, table.Counts[9])

	assert.InDelta(t, 3.0/7.0, table.Observed(1), 1e-12)
	assert.Zero(t, table.Observed(2))
}

func TestTabulate_BadToken(t *testing.T) {
	_, err := Tabulate(strings.NewReader("12 pears"))
	assert.ErrorIs(t, err, ErrBadDatum)
}

func TestExpected(t *testing.T) {
	assert.InDelta(t, 0.301030, Expected(1), 1e-6)
	assert.InDelta(t, 0.176091, Expected(2), 1e-6)
	assert.InDelta(t, 0.045757, Expected(9), 1e-6)

	sum := 0.0
	for d := 1; d <= 9; d++ {
		sum += Expected(d)
	}
	assert.InDelta(t, 1.0, sum, 1e-12)
}
