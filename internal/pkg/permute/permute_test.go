package permute

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collect(t *testing.T, gen func(int, func([]int) bool) error, n int) []string {
	t.Helper()
	var out []string
	require.NoError(t, gen(n, func(p []int) bool {
		out = append(out, fmt.Sprint(p))
		return true
	}))
	return out
}

func TestByFactomialOrder(t *testing.T) {
	got := collect(t, ByFactomial, 3)
	want := []string{
		"[3 1 2]", "[3 2 1]", "[2 3 1]", "[1 3 2]", "[2 1 3]", "[1 2 3]",
	}
	assert.Equal(t, want, got)
}

func TestRecursiveOrder(t *testing.T) {
	got := collect(t, Recursive, 3)
	want := []string{
		"[1 2 3]", "[1 3 2]", "[2 1 3]", "[3 1 2]", "[2 3 1]", "[3 2 1]",
	}
	assert.Equal(t, want, got)
}

func TestAlg71Order(t *testing.T) {
	got := collect(t, Alg71, 3)
	want := []string{
		"[1 2 3]", "[1 3 2]", "[3 2 1]", "[2 1 3]", "[2 3 1]", "[3 1 2]",
	}
	assert.Equal(t, want, got)
}

// The three generators visit permutations in different orders but must
// produce the same set, each exactly once.
func TestMethodsAgree(t *testing.T) {
	for _, n := range []int{1, 2, 4, 5} {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			byFact := collect(t, ByFactomial, n)
			rec := collect(t, Recursive, n)
			alg := collect(t, Alg71, n)

			total := factorial(n)
			require.Len(t, byFact, total)
			require.Len(t, rec, total)
			require.Len(t, alg, total)

			seen := make(map[string]struct{}, total)
			for _, p := range byFact {
				seen[p] = struct{}{}
			}
			assert.Len(t, seen, total, "duplicate permutations")

			assert.ElementsMatch(t, byFact, rec)
			assert.ElementsMatch(t, byFact, alg)
		})
	}
}

func TestYieldStopsGeneration(t *testing.T) {
	gens := map[string]func(int, func([]int) bool) error{
		"ByFactomial": ByFactomial,
		"Recursive":   Recursive,
		"Alg71":       Alg71,
	}
	for name, gen := range gens {
		t.Run(name, func(t *testing.T) {
			var calls int
			require.NoError(t, gen(4, func([]int) bool {
				calls++
				return calls < 3
			}))
			assert.Equal(t, 3, calls)
		})
	}
}

func TestRangeErrors(t *testing.T) {
	gens := map[string]func(int, func([]int) bool) error{
		"ByFactomial": ByFactomial,
		"Recursive":   Recursive,
		"Alg71":       Alg71,
	}
	for name, gen := range gens {
		t.Run(name, func(t *testing.T) {
			discard := func([]int) bool { return true }
			assert.ErrorIs(t, gen(0, discard), ErrRange)
			assert.ErrorIs(t, gen(-2, discard), ErrRange)
			assert.ErrorIs(t, gen(MaxN+1, discard), ErrRange)
		})
	}
}

func TestFactomial(t *testing.T) {
	tests := []struct {
		name string
		x, n int
		want []int
	}{
		{name: "zero", x: 0, n: 4, want: []int{0, 0, 0}},
		{name: "five in three digits", x: 5, n: 3, want: []int{1, 2}},
		{name: "last rank of five", x: 119, n: 5, want: []int{1, 2, 3, 4}},
		{name: "mixed digits", x: 4, n: 3, want: []int{0, 2}},
		{name: "single element", x: 0, n: 1, want: []int{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Factomial(tt.x, tt.n)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("errors", func(t *testing.T) {
		_, err := Factomial(-1, 3)
		assert.ErrorIs(t, err, ErrRank)
		_, err = Factomial(6, 3)
		assert.ErrorIs(t, err, ErrRank)
		_, err = Factomial(0, 0)
		assert.ErrorIs(t, err, ErrRange)
	})
}

func TestNth(t *testing.T) {
	t.Run("known ranks", func(t *testing.T) {
		p, err := Nth(3, 0)
		require.NoError(t, err)
		assert.Equal(t, []int{3, 1, 2}, p)

		// The all-maximal digit string fixes every element.
		p, err = Nth(3, 5)
		require.NoError(t, err)
		assert.Equal(t, []int{1, 2, 3}, p)
	})

	t.Run("matches generation order", func(t *testing.T) {
		var rank int
		require.NoError(t, ByFactomial(4, func(p []int) bool {
			nth, err := Nth(4, rank)
			require.NoError(t, err)
			assert.Equal(t, nth, p, "rank %d", rank)
			rank++
			return true
		}))
		assert.Equal(t, 24, rank)
	})

	t.Run("rank out of range", func(t *testing.T) {
		_, err := Nth(3, 6)
		assert.ErrorIs(t, err, ErrRank)
		_, err = Nth(3, -1)
		assert.ErrorIs(t, err, ErrRank)
	})
}
