// Package bisect implements the bisect command.
package bisect

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/quarrylane/pastime/internal/pkg/roots"
)

var (
	bisectPoly  string
	bisectLower float64
	bisectUpper float64
	bisectTol   float64
)

// BisectCmd is the bisect command.
var BisectCmd = &cobra.Command{
	Use:   "bisect",
	Short: "Find a polynomial root by bisection",
	Long: `Find a root of a polynomial on an interval by the bisection method,
printing each pass as the interval is halved.

The polynomial is given as comma-separated coefficients from the
constant term upward, so 3x^3 - x - 1 is --poly -1,-1,0,3. The
function must change sign between --lower and --upper. The search
stops when |f(midpoint)| dips below --tol.

Examples:
  pastime bisect
  pastime bisect --poly -2,0,1 --lower 1 --upper 2
  pastime bisect --poly -1,-1,0,3 --tol 1e-12`,
	Args: cobra.NoArgs,
	RunE: runBisect,
}

func init() {
	BisectCmd.Flags().StringVar(&bisectPoly, "poly", "-1,-1,0,3", "coefficients, constant term first")
	BisectCmd.Flags().Float64VarP(&bisectLower, "lower", "a", 0.0, "left endpoint of the initial interval")
	BisectCmd.Flags().Float64VarP(&bisectUpper, "upper", "b", 1.0, "right endpoint of the initial interval")
	BisectCmd.Flags().Float64VarP(&bisectTol, "tol", "t", 1e-8, "quit when |f(midpoint)| dips below this")
}

func runBisect(cmd *cobra.Command, args []string) error {
	coeffs, err := parseCoeffs(bisectPoly)
	if err != nil {
		return err
	}
	f := roots.Poly(coeffs...)
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "\n\nBisection method solution of %s = 0:\n\n", polyString(coeffs))
	x, err := roots.BisectTrace(f, bisectLower, bisectUpper, bisectTol, func(p roots.Pass) {
		fmt.Fprintf(out, "%2d. f[%10.8f,%10.8f]  =  [%10.8f,%10.8f]\n", p.N, p.A, p.B, p.FA, p.FB)
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "\nSolution is x = %10.8f at tolerance %9.8f.\n\n", x, bisectTol)
	return nil
}

func parseCoeffs(s string) ([]float64, error) {
	parts := strings.Split(s, ",")
	coeffs := make([]float64, 0, len(parts))
	for _, p := range parts {
		c, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid coefficient %q: %w", p, err)
		}
		coeffs = append(coeffs, c)
	}
	return coeffs, nil
}

// polyString renders coefficients in the usual descending notation,
// 3x^3 - x - 1 for [-1 -1 0 3].
func polyString(coeffs []float64) string {
	var b strings.Builder
	for i := len(coeffs) - 1; i >= 0; i-- {
		c := coeffs[i]
		if c == 0 {
			continue
		}
		abs := math.Abs(c)
		switch {
		case b.Len() == 0 && c < 0:
			b.WriteString("-")
		case b.Len() > 0 && c < 0:
			b.WriteString(" - ")
		case b.Len() > 0:
			b.WriteString(" + ")
		}
		if abs != 1 || i == 0 {
			b.WriteString(strconv.FormatFloat(abs, 'g', -1, 64))
		}
		if i == 1 {
			b.WriteString("x")
		} else if i > 1 {
			fmt.Fprintf(&b, "x^%d", i)
		}
	}
	if b.Len() == 0 {
		return "0"
	}
	return b.String()
}
