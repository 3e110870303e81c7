// Package benford tabulates the leading significant digits of a stream of
// numbers against the frequencies predicted by Benford's law, the
// empirical observation that the most significant digit equals k with
// relative frequency log10((k+1)/k) in many naturally occurring data sets.
package benford

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
)

// ErrBadDatum is returned when the input contains a token that does not
// parse as a number.
var ErrBadDatum = errors.New("benford: input is not a number")

// Table holds leading-digit counts. Counts is indexed by digit 1..9;
// index 0 is unused. Skipped counts data with no significant digit
// (zeros, NaNs, infinities).
type Table struct {
	Counts  [10]int
	Total   int
	Skipped int
}

// LeadingDigit returns the most significant decimal digit of x, or 0 when
// x has none (zero, NaN or infinite). The digit is taken from the shortest
// scientific rendering of |x|; computing it through log10 misfires on
// exact powers near representation boundaries, and a fixed-precision
// rendering rounds 9.7 up into the wrong bucket.
func LeadingDigit(x float64) int {
	if x == 0 || math.IsNaN(x) || math.IsInf(x, 0) {
		return 0
	}
	s := strconv.FormatFloat(math.Abs(x), 'e', -1, 64)
	return int(s[0] - '0')
}

// Tabulate reads whitespace-delimited numbers from r and counts leading
// digits. Returns ErrBadDatum on the first malformed token.
func Tabulate(r io.Reader) (*Table, error) {
	t := &Table{}
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)
	for sc.Scan() {
		datum, err := strconv.ParseFloat(sc.Text(), 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrBadDatum, sc.Text())
		}
		t.Add(datum)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return t, nil
}

// Add records one datum in the table.
func (t *Table) Add(datum float64) {
	d := LeadingDigit(datum)
	if d == 0 {
		t.Skipped++
		return
	}
	t.Counts[d]++
	t.Total++
}

// Observed returns the observed relative frequency of digit d among the
// counted data. Zero when nothing was counted.
func (t *Table) Observed(d int) float64 {
	if t.Total == 0 {
		return 0
	}
	return float64(t.Counts[d]) / float64(t.Total)
}

// Expected returns the frequency Benford's law predicts for leading
// digit d.
func Expected(d int) float64 {
	return math.Log10(float64(d+1) / float64(d))
}
