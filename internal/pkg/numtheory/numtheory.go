// Package numtheory collects small number-theoretic utilities: the
// extended Euclidean algorithm with Bezout coefficients, happy and
// ecstatic number classification in arbitrary radices, and the Minsky
// information-packing bijection on pairs of whole numbers.
package numtheory

import "errors"

var (
	// ErrZeroOperand is returned by the gcd functions when an operand is
	// zero; gcd(0, n) is left undefined here.
	ErrZeroOperand = errors.New("numtheory: gcd is not defined for zero operands")

	// ErrZeroValue is returned when a classification needs a nonzero number.
	ErrZeroValue = errors.New("numtheory: number must be nonzero")

	// ErrBadRadix is returned for radices below 2.
	ErrBadRadix = errors.New("numtheory: radix must be at least 2")

	// ErrPackOverflow is returned when a pair cannot be encoded in 64 bits.
	ErrPackOverflow = errors.New("numtheory: pair does not fit in 64 bits")

	// ErrPackRange is returned when a packed value is too large to decode.
	ErrPackRange = errors.New("numtheory: packed value too large to decode")
)
