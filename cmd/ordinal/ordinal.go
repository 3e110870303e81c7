// Package ordinal implements the ordinal command.
package ordinal

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/quarrylane/pastime/internal/pkg/ordinal"
)

// OrdinalCmd is the ordinal command.
var OrdinalCmd = &cobra.Command{
	Use:   "ordinal N",
	Short: "Write N as a von Neumann ordinal",
	Long: `Print the number N in its set-theoretic form, where each ordinal is
the set of all smaller ordinals: 0 is the empty set, 1 is {0}, 2 is
{0,{0}}, and so on.

The numeral for N is 2^(N+1)-1 characters long, so N is capped at ` + strconv.Itoa(ordinal.MaxN) + `.

Examples:
  pastime ordinal 3
  pastime ordinal 0`,
	Args: cobra.ExactArgs(1),
	RunE: runOrdinal,
}

func runOrdinal(cmd *cobra.Command, args []string) error {
	n, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid number %q: %w", args[0], err)
	}
	s, err := ordinal.Format(n)
	if err != nil {
		return fmt.Errorf("value %d out of range (0-%d)", n, ordinal.MaxN)
	}
	fmt.Fprintln(cmd.OutOrStdout(), s)
	return nil
}
