package numtheory

import "math/bits"

// The packing function C(x,y) = ((x+y)^2 + (x+y) + 2x)/2 is a bijection
// from pairs of whole numbers onto the whole numbers. With v(n) = n^2 + n,
// 2*C(x,y) = v(x+y) + 2x < v(x+y+1), so decoding recovers x+y by inverting
// v and then reads x off the remainder.

// Pair packs x and y into a single number. Returns ErrPackOverflow when
// the encoding does not fit in 64 bits, detected by decode round-trip.
func Pair(x, y uint64) (uint64, error) {
	n := x + y
	z := (n*n + n + 2*x) / 2
	hx, hy, err := Unpair(z)
	if err != nil || hx != x || hy != y {
		return 0, ErrPackOverflow
	}
	return z, nil
}

// Unpair recovers the pair packed into z. Returns ErrPackRange for values
// above MaxUint64/2, whose doubled form is not representable.
func Unpair(z uint64) (x, y uint64, err error) {
	if z > (1<<63)-1 {
		return 0, 0, ErrPackRange
	}
	n := invV(2 * z)
	x = (2*z - v(n)) / 2
	y = n - x
	return x, y, nil
}

func v(n uint64) uint64 {
	return n*n + n
}

// invV returns the unique n with v(n) <= z < v(n+1), by bisection.
// Midpoint squares are checked through the 128-bit product so candidates
// near 2^32 cannot wrap around.
func invV(z uint64) uint64 {
	var bot, top uint64 = 0, z
	for {
		m := bot + (top-bot)/2
		if m == bot || m == top {
			return m
		}
		hi, lo := bits.Mul64(m, m)
		sum, carry := bits.Add64(lo, m, 0)
		if hi != 0 || carry != 0 || sum > z {
			top = m
		} else {
			bot = m
		}
	}
}
