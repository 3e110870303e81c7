// Package gcd implements the gcd command.
package gcd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/quarrylane/pastime/internal/pkg/numtheory"
)

// GcdCmd is the gcd command.
var GcdCmd = &cobra.Command{
	Use:   "gcd A B",
	Short: "Greatest common divisor with Bezout coefficients",
	Long: `Compute the greatest common divisor of A and B by the extended
Euclidean algorithm, together with integers c and d such that

  gcd(a,b) = c*a + d*b

Both arguments may be negative; the gcd is always reported positive.
A zero operand is not allowed.

Examples:
  pastime gcd 1071 462
  pastime gcd -- -6 26`,
	Args: cobra.ExactArgs(2),
	RunE: runGcd,
}

func runGcd(cmd *cobra.Command, args []string) error {
	a, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid integer %q: %w", args[0], err)
	}
	b, err := strconv.ParseInt(args[1], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid integer %q: %w", args[1], err)
	}

	g, c, d, err := numtheory.ExtendedGCD(a, b)
	if err != nil {
		return fmt.Errorf("gcd(%d,%d) is not defined: %w", a, b, err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "gcd(%d,%d) = %d = (%d)*(%d)+(%d)*(%d).\n", a, b, g, c, a, d, b)
	return nil
}
