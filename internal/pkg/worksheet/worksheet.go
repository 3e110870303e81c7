// Package worksheet generates pages of randomly drawn arithmetic
// problems with a matching answer key.
//
// A sheet is a fixed list of problems drawn from a seeded stream, so
// the same seed always yields the same problems, and every sheet is
// stamped with an id so a printed page can be matched to its key
// later. Sheets render either as plain text, operands stacked and
// right justified the way the problems are worked by hand, or as a
// LaTeX source file to be typeset. Division problems expect the
// integer quotient.
package worksheet

import (
	"errors"
	"math/rand"
	"time"

	"github.com/google/uuid"
)

const (
	// DefaultCount is the number of problems per sheet.
	DefaultCount = 12

	// DefaultDigits is the operand size in decimal digits. Dividends
	// run up to twice as long.
	DefaultDigits = 4

	// DefaultCols is the number of problem columns on a page.
	DefaultCols = 3

	// MaxDigits keeps products and dividends inside an int64.
	MaxDigits = 9
)

var (
	// ErrCount is returned for a negative problem count.
	ErrCount = errors.New("worksheet: count must be positive")

	// ErrDigits is returned for an operand size outside 1..MaxDigits.
	ErrDigits = errors.New("worksheet: digits must be between 1 and 9")

	// ErrOps is returned for an unknown operation.
	ErrOps = errors.New("worksheet: unknown operation")
)

// Op is a problem kind.
type Op uint8

const (
	Add Op = iota
	Sub
	Mul
	Div
)

// String returns the sign used on the printed page.
func (o Op) String() string {
	switch o {
	case Add:
		return "+"
	case Sub:
		return "-"
	case Mul:
		return "x"
	default:
		return "/"
	}
}

// ParseOps reads a set of operation signs such as "+-x/". The signs x
// and * both mean multiplication, and an empty string means all four
// kinds. Repeating a sign weights the draw toward it.
func ParseOps(s string) ([]Op, error) {
	if s == "" {
		return []Op{Add, Sub, Mul, Div}, nil
	}
	ops := make([]Op, 0, len(s))
	for _, r := range s {
		switch r {
		case '+':
			ops = append(ops, Add)
		case '-':
			ops = append(ops, Sub)
		case 'x', '*':
			ops = append(ops, Mul)
		case '/':
			ops = append(ops, Div)
		default:
			return nil, ErrOps
		}
	}
	return ops, nil
}

// Problem is one exercise. Top is the larger operand: the minuend, the
// upper factor, or the dividend.
type Problem struct {
	Op     Op
	Top    int
	Bottom int
}

// Answer returns the expected result. Division is integer division;
// the quotient alone is the answer.
func (p Problem) Answer() int {
	switch p.Op {
	case Add:
		return p.Top + p.Bottom
	case Sub:
		return p.Top - p.Bottom
	case Mul:
		return p.Top * p.Bottom
	default:
		return p.Top / p.Bottom
	}
}

// Options controls Generate. Zero values pick the defaults; a zero
// seed draws one from the clock.
type Options struct {
	Count  int
	Digits int
	Ops    []Op
	Seed   int64
}

// Sheet is a generated set of problems. The id distinguishes printed
// copies; the seed reproduces the content.
type Sheet struct {
	ID       uuid.UUID
	Seed     int64
	Digits   int
	Created  time.Time
	Problems []Problem
}

// Generate draws a sheet of problems.
func Generate(opts Options) (*Sheet, error) {
	if opts.Count == 0 {
		opts.Count = DefaultCount
	}
	if opts.Count < 0 {
		return nil, ErrCount
	}
	if opts.Digits == 0 {
		opts.Digits = DefaultDigits
	}
	if opts.Digits < 1 || opts.Digits > MaxDigits {
		return nil, ErrDigits
	}
	if len(opts.Ops) == 0 {
		opts.Ops = []Op{Add, Sub, Mul, Div}
	}
	for _, op := range opts.Ops {
		if op > Div {
			return nil, ErrOps
		}
	}
	if opts.Seed == 0 {
		opts.Seed = time.Now().UnixNano()
	}

	maxnum := 1
	for i := 0; i < opts.Digits; i++ {
		maxnum *= 10
	}
	maxnum--

	r := rand.New(rand.NewSource(opts.Seed))
	problems := make([]Problem, opts.Count)
	for i := range problems {
		op := opts.Ops[r.Intn(len(opts.Ops))]
		var top int
		if op == Div {
			top = r.Intn(maxnum*maxnum) + 1
		} else {
			top = r.Intn(maxnum) + 1
		}
		bottom := r.Intn(maxnum) + 1
		if bottom > top {
			top, bottom = bottom, top
		}
		problems[i] = Problem{Op: op, Top: top, Bottom: bottom}
	}

	return &Sheet{
		ID:       uuid.New(),
		Seed:     opts.Seed,
		Digits:   opts.Digits,
		Created:  time.Now(),
		Problems: problems,
	}, nil
}
