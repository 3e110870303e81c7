// Package permute generates all permutations of 1..n by three classic
// methods. The methods differ in the order they visit permutations but
// produce the same set, and each visits every permutation exactly once.
//
// ByFactomial walks ranks 0..n!-1 and decodes each rank's factorial-base
// digits into a product of transpositions. Recursive fills the slots of
// the permutation depth first. Alg71 is the iterative generator from
// Coveyou and Sullivan, Permutation (Algorithm 71), Communications of
// the ACM 4 (1961), p. 497. For a survey of this surprisingly deep
// topic see Sedgewick, Permutation Generation Methods, Computing
// Surveys 9 (1977), 137-164.
package permute

import "errors"

// MaxN is the largest supported n. 21! overflows int64, so ranks and
// counts stop being representable beyond this.
const MaxN = 20

var (
	// ErrRange is returned when n is outside 1..MaxN.
	ErrRange = errors.New("permute: n must be between 1 and 20")

	// ErrRank is returned when a permutation rank is outside 0..n!-1.
	ErrRank = errors.New("permute: rank out of range")
)

func factorial(n int) int {
	f := 1
	for i := 2; i <= n; i++ {
		f *= i
	}
	return f
}

// Factomial returns the factorial-base digits of x for permutations of
// 1..n, least significant first. Digit i ranges over 0..i+1, and
// x = sum of digit i times (i+1)!. Every x in 0..n!-1 has a unique such
// representation of n-1 digits.
func Factomial(x, n int) ([]int, error) {
	if n < 1 || n > MaxN {
		return nil, ErrRange
	}
	if x < 0 || x >= factorial(n) {
		return nil, ErrRank
	}
	digits := make([]int, n-1)
	for i := range digits {
		digits[i] = x % (i + 2)
		x /= i + 2
	}
	return digits, nil
}

// Nth returns the permutation of 1..n at the given rank in ByFactomial
// order. Every permutation of 1..n is a unique product of
// transpositions (1 s1)(2 s2)...(n sn) with 1 <= si <= i; the rank's
// factorial-base digits choose the si.
func Nth(n, rank int) ([]int, error) {
	digits, err := Factomial(rank, n)
	if err != nil {
		return nil, err
	}
	p := make([]int, n)
	applyDigits(p, digits)
	return p, nil
}

func applyDigits(p, digits []int) {
	for i := range p {
		p[i] = i + 1
	}
	for i := 1; i < len(p); i++ {
		p[i], p[digits[i-1]] = p[digits[i-1]], p[i]
	}
}

// ByFactomial calls yield with each permutation of 1..n in rank order.
// The slice passed to yield is reused between calls; copy it to retain.
// Returning false from yield stops the generation.
func ByFactomial(n int, yield func(p []int) bool) error {
	if n < 1 || n > MaxN {
		return ErrRange
	}
	digits := make([]int, n-1)
	p := make([]int, n)
	total := factorial(n)
	for rank := 0; rank < total; rank++ {
		x := rank
		for i := range digits {
			digits[i] = x % (i + 2)
			x /= i + 2
		}
		applyDigits(p, digits)
		if !yield(p) {
			return nil
		}
	}
	return nil
}

// Recursive calls yield with each permutation of 1..n, generated by
// placing the values 1, 2, ... into free slots depth first. The slice
// passed to yield is reused between calls; copy it to retain. Returning
// false from yield stops the generation.
func Recursive(n int, yield func(p []int) bool) error {
	if n < 1 || n > MaxN {
		return ErrRange
	}
	p := make([]int, n)
	var place func(value int) bool
	place = func(value int) bool {
		if value > n {
			return yield(p)
		}
		for slot := range p {
			if p[slot] != 0 {
				continue
			}
			p[slot] = value
			ok := place(value + 1)
			p[slot] = 0
			if !ok {
				return false
			}
		}
		return true
	}
	place(1)
	return nil
}

// Alg71 calls yield with each permutation of 1..n using Algorithm 71's
// iterative counter update. The counter array steps through
// 000 -> 001 -> 002 -> 010 -> ... and each state is expanded into a
// permutation by a pass of shifts. The slice passed to yield is reused
// between calls; copy it to retain. Returning false from yield stops
// the generation.
func Alg71(n int, yield func(p []int) bool) error {
	if n < 1 || n > MaxN {
		return ErrRange
	}
	if n == 1 {
		yield([]int{1})
		return nil
	}
	xx := make([]int, n)
	xx[n-1] = -1
	p := make([]int, n)
	for {
		i := n - 1
		for ; i > 0; i-- {
			if xx[i] != i {
				break
			}
			xx[i] = 0
		}
		if i == 0 {
			return nil
		}
		xx[i]++

		p[0] = 1
		for j := 1; j < n; j++ {
			p[j] = p[j-xx[j]]
			p[j-xx[j]] = j + 1
		}
		if !yield(p) {
			return nil
		}
	}
}
