package worksheet

import (
	"fmt"
	"strings"
)

const texDocHeader = `\documentclass{report}
\pagestyle{empty}
\setlength{\oddsidemargin}{0in}
\setlength{\textwidth}{18 cm}
\setlength{\textheight}{22 cm}
\begin{document}
\large
`

// TeX renders the sheet as a standalone LaTeX source file. Stacked
// problems become right aligned tabulars with an \hline answer bar;
// division problems get a \cline overbar above the dividend. With the
// key, a solutions page follows the problems page.
func (s *Sheet) TeX(cols int, withKey bool) string {
	if cols < 1 {
		cols = DefaultCols
	}
	var b strings.Builder
	b.WriteString(texDocHeader)
	s.texPage(&b, cols, false, withKey)
	if withKey {
		b.WriteString("\n\\pagebreak\n\n")
		s.texPage(&b, cols, true, withKey)
	}
	b.WriteString("\\end{document}\n")
	return b.String()
}

func (s *Sheet) texPage(b *strings.Builder, cols int, answers, withKey bool) {
	fmt.Fprintf(b, "\\noindent Sheet \\texttt{%s}\\\\\n", s.ID)
	switch {
	case answers:
		fmt.Fprintf(b, "\\today \\ \\ (Version %d.) Solutions.\n", s.Seed)
	case withKey:
		fmt.Fprintf(b, "\\today \\ \\ (Version %d.) See attached page for answers.\n", s.Seed)
	default:
		fmt.Fprintf(b, "\\today \\ \\ (Version %d.)\n", s.Seed)
	}
	b.WriteString("\\nopagebreak\n\n")

	// Every other table column is a blank spacer problem.
	fmt.Fprintf(b, "\\begin{tabular}{%s}\n", strings.Repeat("r", 2*cols-1))
	for i, p := range s.Problems {
		s.texProblem(b, p, answers)
		if (i+1)%cols == 0 || i == len(s.Problems)-1 {
			b.WriteString("\\\\ [1.3 in]\n")
		} else {
			b.WriteString(" &\n")
			s.texSpacer(b)
			b.WriteString(" &\n")
		}
	}
	b.WriteString("\\end{tabular}\n")
}

func (s *Sheet) texProblem(b *strings.Builder, p Problem, answers bool) {
	if p.Op == Div {
		b.WriteString("\\begin{tabular}{rl}\n")
		left := strings.Repeat("\\ ", s.Digits)
		if answers {
			ans := fmt.Sprintf("%d", p.Answer())
			pad := 2*s.Digits + 1 - len(ans)
			if pad < 0 {
				pad = 0
			}
			fmt.Fprintf(b, "%s&%s%s \\\\ \\cline{2-2}\n", left, strings.Repeat("\\ ", pad), ans)
		} else {
			fmt.Fprintf(b, "%s&%s\\\\ \\cline{2-2}\n", left, strings.Repeat("\\ ", 2*s.Digits))
		}
		fmt.Fprintf(b, "%d & \\multicolumn{1}{|l}{%d}\n", p.Bottom, p.Top)
		b.WriteString("\\end{tabular}")
		return
	}

	sign := "+\\ "
	switch p.Op {
	case Sub:
		sign = "-\\ "
	case Mul:
		sign = "$\\times$\\ "
	}
	b.WriteString("\\begin{tabular}{r}\n")
	b.WriteString(s.texColumnRule())
	fmt.Fprintf(b, "%d\\\\\n", p.Top)
	fmt.Fprintf(b, "%s%d\\\\\n", sign, p.Bottom)
	if answers {
		fmt.Fprintf(b, "\\hline\n%d\n", p.Answer())
	} else {
		b.WriteString("\\hline\n\\ \n")
	}
	b.WriteString("\\end{tabular}")
}

// texSpacer is an empty problem box keeping row entries apart.
func (s *Sheet) texSpacer(b *strings.Builder) {
	b.WriteString("\\begin{tabular}{r}\n")
	b.WriteString(s.texColumnRule())
	b.WriteString("\\ \\\\\n\\ \\\\\n\\ \\\\\n\\\\\n")
	b.WriteString("\\end{tabular}")
}

// texColumnRule is a line of hard spaces fixing the box width.
func (s *Sheet) texColumnRule() string {
	return strings.Repeat("\\ ", 3*s.Digits+1) + "\\\\\n"
}
