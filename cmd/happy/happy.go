// Package happy implements the happy command.
package happy

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/quarrylane/pastime/internal/pkg/numtheory"
)

var (
	happyList     bool
	happyEcstatic bool
	happyRadix    int
)

// HappyCmd is the happy command.
var HappyCmd = &cobra.Command{
	Use:   "happy N",
	Short: "Test numbers for happiness",
	Long: `Decide whether N is a happy number: repeatedly replace the number
by the sum of the squares of its digits; it is happy if the process
reaches 1 rather than falling into a cycle.

Digits are taken in base 10 unless --radix says otherwise. With --list
every happy number up to N is printed instead. --ecstatic demands
happiness in every radix from 2 up to the given one.

Examples:
  pastime happy 7
  pastime happy --list 100
  pastime happy --list --ecstatic --radix 6 1000`,
	Args: cobra.ExactArgs(1),
	RunE: runHappy,
}

func init() {
	HappyCmd.Flags().BoolVarP(&happyList, "list", "l", false, "list all qualifying numbers up to N")
	HappyCmd.Flags().BoolVarP(&happyEcstatic, "ecstatic", "e", false, "require happiness in every radix from 2 up")
	HappyCmd.Flags().IntVarP(&happyRadix, "radix", "r", 10, "radix for reading off digits")
}

func runHappy(cmd *cobra.Command, args []string) error {
	num, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid number %q: %w", args[0], err)
	}
	if num < 0 {
		num = -num
	}
	if num == 0 {
		return fmt.Errorf("invalid number argument")
	}
	out := cmd.OutOrStdout()

	if happyList {
		if happyEcstatic {
			nums, err := numtheory.EcstaticUpTo(num, happyRadix)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "Ecstatic numbers (radix <= %d) <= %d:\n", happyRadix, num)
			for _, n := range nums {
				fmt.Fprintf(out, "%d\n", n)
			}
			return nil
		}
		nums, err := numtheory.HappyUpTo(num, happyRadix)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "Happy numbers (radix = %d) <= %d:\n", happyRadix, num)
		for _, n := range nums {
			fmt.Fprintf(out, "%d\n", n)
		}
		return nil
	}

	if happyEcstatic {
		ok, err := numtheory.IsEcstatic(num, happyRadix)
		if err != nil {
			return err
		}
		if ok {
			fmt.Fprintf(out, "%d is ecstatic.\n", num)
		} else {
			fmt.Fprintf(out, "%d is not ecstatic.\n", num)
		}
		return nil
	}

	ok, err := numtheory.IsHappy(num, happyRadix)
	if err != nil {
		return err
	}
	if ok {
		fmt.Fprintf(out, "%d is happy.\n", num)
	} else {
		fmt.Fprintf(out, "%d is not happy.\n", num)
	}
	return nil
}
