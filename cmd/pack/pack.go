// Package pack implements the pack command.
package pack

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/quarrylane/pastime/internal/pkg/numtheory"
)

var packUnpack bool

// PackCmd is the pack command.
var PackCmd = &cobra.Command{
	Use:   "pack X Y",
	Short: "Pack two numbers into one, reversibly",
	Long: `Pack the pair (X, Y) of non-negative integers into a single number
by the diagonal enumeration of pairs, so that the pair can be
recovered again. With --unpack the single argument is unpacked back
into the pair it encodes.

Examples:
  pastime pack 3 5
  pastime pack --unpack 41`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runPack,
}

func init() {
	PackCmd.Flags().BoolVarP(&packUnpack, "unpack", "1", false, "unpack Z into the pair it encodes")
}

func runPack(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	if packUnpack {
		if len(args) != 1 {
			return fmt.Errorf("unpack takes exactly one argument")
		}
		z, err := strconv.ParseUint(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid number %q: %w", args[0], err)
		}
		x, y, err := numtheory.Unpair(z)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "%d %d\n", x, y)
		return nil
	}

	if len(args) != 2 {
		return fmt.Errorf("pack takes exactly two arguments")
	}
	x, err := strconv.ParseUint(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid number %q: %w", args[0], err)
	}
	y, err := strconv.ParseUint(args[1], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid number %q: %w", args[1], err)
	}
	z, err := numtheory.Pair(x, y)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "%d\n", z)
	return nil
}
