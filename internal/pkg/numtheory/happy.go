package numtheory

// DigitSquareSum returns the sum of the squares of the digits of n written
// in the given radix.
func DigitSquareSum(n, radix int) int {
	sum := 0
	for n != 0 {
		d := n % radix
		n /= radix
		sum += d * d
	}
	return sum
}

// IsHappy reports whether n is happy in the given radix: whether iterating
// DigitSquareSum from n eventually reaches the fixed point 1. Iteration
// always falls into some cycle, which is detected by comparing against a
// periodically saved value over a growing window; once the window exceeds
// the cycle length the cycle is caught. Negative n is classified by its
// absolute value. Returns ErrZeroValue for 0 and ErrBadRadix for radix < 2.
func IsHappy(n, radix int) (bool, error) {
	if radix < 2 {
		return false, ErrBadRadix
	}
	if n == 0 {
		return false, ErrZeroValue
	}
	if n < 0 {
		n = -n
	}

	window := 10
	for {
		old := n
		for j := window; j > 0; j-- {
			n = DigitSquareSum(n, radix)
			if n == old {
				break
			}
		}
		if n == old {
			break
		}
		window += 10
	}
	return n == 1, nil
}

// IsEcstatic reports whether n is happy in every radix from 2 through
// maxRadix.
func IsEcstatic(n, maxRadix int) (bool, error) {
	if maxRadix < 2 {
		return false, ErrBadRadix
	}
	for r := 2; r <= maxRadix; r++ {
		happy, err := IsHappy(n, r)
		if err != nil {
			return false, err
		}
		if !happy {
			return false, nil
		}
	}
	return true, nil
}

// HappyUpTo returns all happy numbers from 1 through limit in the given
// radix.
func HappyUpTo(limit, radix int) ([]int, error) {
	if radix < 2 {
		return nil, ErrBadRadix
	}
	var out []int
	for n := 1; n <= limit; n++ {
		happy, err := IsHappy(n, radix)
		if err != nil {
			return nil, err
		}
		if happy {
			out = append(out, n)
		}
	}
	return out, nil
}

// EcstaticUpTo returns all numbers from 1 through limit that are happy in
// every radix from 2 through maxRadix.
func EcstaticUpTo(limit, maxRadix int) ([]int, error) {
	if maxRadix < 2 {
		return nil, ErrBadRadix
	}
	var out []int
	for n := 1; n <= limit; n++ {
		ok, err := IsEcstatic(n, maxRadix)
		if err != nil {
			return nil, err
		}
		if ok {
			out = append(out, n)
		}
	}
	return out, nil
}
