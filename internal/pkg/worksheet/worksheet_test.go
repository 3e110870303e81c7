package worksheet

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOps(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    []Op
		wantErr bool
	}{
		{name: "all four", in: "+-x/", want: []Op{Add, Sub, Mul, Div}},
		{name: "empty means all", in: "", want: []Op{Add, Sub, Mul, Div}},
		{name: "star is times", in: "*", want: []Op{Mul}},
		{name: "repeats weight the draw", in: "++/", want: []Op{Add, Add, Div}},
		{name: "unknown sign", in: "+q", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseOps(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrOps)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAnswer(t *testing.T) {
	tests := []struct {
		name string
		p    Problem
		want int
	}{
		{name: "sum", p: Problem{Op: Add, Top: 9841, Bottom: 1023}, want: 10864},
		{name: "difference", p: Problem{Op: Sub, Top: 9841, Bottom: 23}, want: 9818},
		{name: "product", p: Problem{Op: Mul, Top: 12, Bottom: 12}, want: 144},
		{name: "exact quotient", p: Problem{Op: Div, Top: 99980001, Bottom: 9999}, want: 9999},
		{name: "quotient truncates", p: Problem{Op: Div, Top: 10, Bottom: 3}, want: 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.p.Answer())
		})
	}
}

func TestGenerateDefaults(t *testing.T) {
	s, err := Generate(Options{Seed: 3445})
	require.NoError(t, err)

	assert.Len(t, s.Problems, DefaultCount)
	assert.Equal(t, DefaultDigits, s.Digits)
	assert.Equal(t, int64(3445), s.Seed)
	assert.NotEqual(t, uuid.Nil, s.ID)

	for _, p := range s.Problems {
		assert.LessOrEqual(t, p.Op, Div)
		assert.GreaterOrEqual(t, p.Bottom, 1)
		assert.GreaterOrEqual(t, p.Top, p.Bottom)
		if p.Op == Div {
			assert.LessOrEqual(t, p.Top, 9999*9999)
		} else {
			assert.LessOrEqual(t, p.Top, 9999)
		}
		assert.LessOrEqual(t, p.Bottom, 9999)
	}
}

func TestGenerateDeterministic(t *testing.T) {
	a, err := Generate(Options{Seed: 77})
	require.NoError(t, err)
	b, err := Generate(Options{Seed: 77})
	require.NoError(t, err)

	assert.Equal(t, a.Problems, b.Problems)
	assert.NotEqual(t, a.ID, b.ID, "printed copies get distinct ids")
}

func TestGenerateOpsSubset(t *testing.T) {
	s, err := Generate(Options{Count: 30, Seed: 5, Ops: []Op{Mul}})
	require.NoError(t, err)
	for _, p := range s.Problems {
		assert.Equal(t, Mul, p.Op)
	}
}

func TestGenerateClockSeed(t *testing.T) {
	s, err := Generate(Options{Count: 1})
	require.NoError(t, err)
	assert.NotZero(t, s.Seed)
	assert.False(t, s.Created.IsZero())
}

func TestGenerateErrors(t *testing.T) {
	_, err := Generate(Options{Count: -1})
	assert.ErrorIs(t, err, ErrCount)

	_, err = Generate(Options{Digits: MaxDigits + 1})
	assert.ErrorIs(t, err, ErrDigits)

	_, err = Generate(Options{Ops: []Op{Add, Op(9)}})
	assert.ErrorIs(t, err, ErrOps)
}

// fixedSheet pins id, seed, and date so rendered pages are exact.
func fixedSheet(problems ...Problem) *Sheet {
	return &Sheet{
		ID:       uuid.MustParse("123e4567-e89b-12d3-a456-426614174000"),
		Seed:     3445,
		Digits:   4,
		Created:  time.Date(2026, time.March, 14, 9, 26, 53, 0, time.UTC),
		Problems: problems,
	}
}

func TestTextLayout(t *testing.T) {
	s := fixedSheet(
		Problem{Op: Sub, Top: 9841, Bottom: 23},
		Problem{Op: Add, Top: 9841, Bottom: 1023},
		Problem{Op: Div, Top: 99980001, Bottom: 9999},
	)

	wantProblems := strings.Join([]string{
		"Sheet:   123e4567-e89b-12d3-a456-426614174000",
		"Date:    Sat Mar 14 09:26:53 2026",
		"Version: 3445",
		"",
		"Do the following arithmetic problems:",
		"(Answers on next page.)",
		"",
		"         9841                 9841",
		"         - 23                +1023             ________",
		"         ----                 ----        9999|99980001",
		"",
	}, "\n") + "\n"

	wantKey := strings.Join([]string{
		"Sheet:   123e4567-e89b-12d3-a456-426614174000",
		"Date:    Sat Mar 14 09:26:53 2026",
		"Version: 3445",
		"",
		"Solutions:",
		"",
		"         9841                 9841                 9999",
		"         - 23                +1023             ________",
		"         ----                 ----        9999|99980001",
		"         9818                10864",
	}, "\n") + "\n"

	assert.Equal(t, wantProblems, s.Text(3, false))
	assert.Equal(t, wantProblems+"\f"+wantKey, s.Text(3, true))
}

func TestTextDefaultCols(t *testing.T) {
	s := fixedSheet(
		Problem{Op: Add, Top: 11, Bottom: 7},
		Problem{Op: Add, Top: 22, Bottom: 7},
	)
	assert.Equal(t, s.Text(DefaultCols, false), s.Text(0, false))
}

func TestTextRowSpacing(t *testing.T) {
	s := fixedSheet(
		Problem{Op: Add, Top: 1111, Bottom: 111},
		Problem{Op: Add, Top: 2222, Bottom: 222},
		Problem{Op: Add, Top: 3333, Bottom: 333},
	)
	page := s.Text(2, false)

	// Two rows with twice the digit count of blank lines between: the
	// empty fourth box line plus eight gap lines.
	assert.Contains(t, page, strings.Repeat("\n", 10))
	assert.NotContains(t, page, strings.Repeat("\n", 11))
	assert.Less(t, strings.Index(page, "2222"), strings.Index(page, "3333"))
}

func TestTeX(t *testing.T) {
	s := fixedSheet(
		Problem{Op: Add, Top: 9841, Bottom: 1023},
		Problem{Op: Sub, Top: 9841, Bottom: 23},
		Problem{Op: Mul, Top: 111, Bottom: 11},
		Problem{Op: Div, Top: 99980001, Bottom: 9999},
	)
	doc := s.TeX(3, true)

	assert.True(t, strings.HasPrefix(doc, "\\documentclass{report}\n"))
	assert.True(t, strings.HasSuffix(doc, "\\end{document}\n"))
	assert.Contains(t, doc, "\\begin{tabular}{rrrrr}")
	assert.Contains(t, doc, "Sheet \\texttt{123e4567-e89b-12d3-a456-426614174000}")
	assert.Contains(t, doc, "(Version 3445.) See attached page for answers.")
	assert.Contains(t, doc, "(Version 3445.) Solutions.")
	assert.Contains(t, doc, "$\\times$\\ 11\\\\")
	assert.Contains(t, doc, "+\\ 1023\\\\")
	assert.Contains(t, doc, "9999 & \\multicolumn{1}{|l}{99980001}")
	assert.Contains(t, doc, "\\cline{2-2}")
	assert.Contains(t, doc, "\\hline\n10864")

	assert.Equal(t,
		strings.Count(doc, "\\begin{tabular}"),
		strings.Count(doc, "\\end{tabular}"))
	assert.Equal(t, 1, strings.Count(doc, "\\begin{document}"))
	assert.Equal(t, 1, strings.Count(doc, "\\pagebreak"))
}

func TestTeXWithoutKey(t *testing.T) {
	s := fixedSheet(Problem{Op: Add, Top: 12, Bottom: 5})
	doc := s.TeX(1, false)

	assert.NotContains(t, doc, "Solutions.")
	assert.NotContains(t, doc, "\\pagebreak")
	assert.NotContains(t, doc, "See attached page")
	assert.Contains(t, doc, "\\begin{tabular}{r}")
	assert.Contains(t, doc, "\\hline\n\\ \n")
}
