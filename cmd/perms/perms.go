// Package perms implements the perms command.
package perms

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/quarrylane/pastime/internal/pkg/permute"
	"github.com/quarrylane/pastime/internal/pkg/signals"
)

var (
	permsMethod string
	permsNth    int
)

// PermsCmd is the perms command.
var PermsCmd = &cobra.Command{
	Use:   "perms N",
	Short: "Generate all permutations of 1..N",
	Long: `Print every permutation of 1..N, one per line.

Three generators are available and produce the same set in different
orders: factomial counts in the factorial number system and applies
each numeral as transpositions, recursive fills positions
depth-first, and alg71 is the classic iterative Algorithm 71 from the
ACM collection. With --nth only the permutation at that rank in
factomial order is printed, computed directly without generating its
predecessors.

Examples:
  pastime perms 4
  pastime perms 4 --method alg71
  pastime perms 10 --nth 999999`,
	Args: cobra.ExactArgs(1),
	RunE: runPerms,
}

func init() {
	PermsCmd.Flags().StringVarP(&permsMethod, "method", "m", "factomial", "generator: factomial, recursive or alg71")
	PermsCmd.Flags().IntVar(&permsNth, "nth", -1, "print only the permutation of this rank, counting from 0")
}

func runPerms(cmd *cobra.Command, args []string) error {
	n, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid n %q: %w", args[0], err)
	}
	out := cmd.OutOrStdout()

	if permsNth >= 0 {
		p, err := permute.Nth(n, permsNth)
		if err != nil {
			return err
		}
		printPerm(out, p)
		return nil
	}

	// Runs of n! lines take a while; let an interrupt end the stream
	// at a line boundary.
	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()
	cleanup := signals.SetupHandler(ctx, cancel)
	defer cleanup()

	yield := func(p []int) bool {
		if ctx.Err() != nil {
			return false
		}
		printPerm(out, p)
		return true
	}
	switch permsMethod {
	case "factomial", "1":
		return permute.ByFactomial(n, yield)
	case "recursive", "2":
		return permute.Recursive(n, yield)
	case "alg71", "3":
		return permute.Alg71(n, yield)
	default:
		return fmt.Errorf("unknown method %q: want factomial, recursive or alg71", permsMethod)
	}
}

// printPerm writes digits run together for single-digit entries, and
// space-separated once 10 and up appear.
func printPerm(w io.Writer, p []int) {
	var b strings.Builder
	for i, v := range p {
		if i > 0 && len(p) > 9 {
			b.WriteByte(' ')
		}
		b.WriteString(strconv.Itoa(v))
	}
	fmt.Fprintln(w, b.String())
}
