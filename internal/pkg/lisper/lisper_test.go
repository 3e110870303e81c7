package lisper

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate_Balanced(t *testing.T) {
	seeds := []int64{1, 2, 3, 77, 1234567}

	for _, seed := range seeds {
		expr, err := Generate(4, DefaultBias, seed)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, Depth(expr), 4, "expression %q", expr)
	}
}

func TestGenerate_Reproducible(t *testing.T) {
	a, err := Generate(6, 0.2, 42)
	require.NoError(t, err)
	b, err := Generate(6, 0.2, 42)
	require.NoError(t, err)
	assert.Equal(t, a, b)

	c, err := Generate(6, 0.2, 43)
	require.NoError(t, err)
	assert.NotEqual(t, a, c, "different seeds should draw different expressions")
}

// Bias 0.5 makes every choice deterministic: push straight up to the
// minimum depth, then pop straight back down.
func TestGenerate_FullBias(t *testing.T) {
	expr, err := Generate(5, 0.5, 9)
	require.NoError(t, err)
	assert.Equal(t, strings.Repeat("(", 5)+strings.Repeat(")", 5), expr)
}

func TestGenerate_ZeroDepth(t *testing.T) {
	expr, err := Generate(0, DefaultBias, 1)
	require.NoError(t, err)
	assert.Empty(t, expr)
}

func TestGenerate_Errors(t *testing.T) {
	_, err := Generate(-1, DefaultBias, 1)
	assert.ErrorIs(t, err, ErrDepth)

	_, err = Generate(4, -0.01, 1)
	assert.ErrorIs(t, err, ErrBias)

	_, err = Generate(4, 0.51, 1)
	assert.ErrorIs(t, err, ErrBias)
}

func TestDepth(t *testing.T) {
	tests := []struct {
		expr string
		want int
	}{
		{"", 0},
		{"()", 1},
		{"(())", 2},
		{"()(()())", 2},
		{"((()))()", 3},
		{"(()", -1},
		{"())", -1},
		{")(", -1},
		{"(a)", -1},
	}

	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			assert.Equal(t, tt.want, Depth(tt.expr))
		})
	}
}
