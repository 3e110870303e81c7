// Package benford implements the benford command.
package benford

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/quarrylane/pastime/internal/pkg/benford"
	"github.com/quarrylane/pastime/internal/pkg/cmdutil"
)

// BenfordCmd is the benford command.
var BenfordCmd = &cobra.Command{
	Use:   "benford [FILE...]",
	Short: "Tabulate leading digits against Benford's law",
	Long: `Read whitespace-delimited numbers from the named files, or from
standard input, and tabulate the relative frequency of each leading
significant digit next to the frequency Benford's law predicts,
log10((d+1)/d).

Naturally occurring data sets - prices, populations, physical
constants - tend to follow the law; uniformly invented numbers do not.

Examples:
  pastime benford prices.txt
  shuf -i 1-100000 -n 500 | pastime benford`,
	Args: cobra.ArbitraryArgs,
	RunE: runBenford,
}

func runBenford(cmd *cobra.Command, args []string) error {
	in, err := cmdutil.OpenInputs(args, cmd.InOrStdin())
	if err != nil {
		return err
	}
	defer in.Close()

	table, err := benford.Tabulate(in.Reader())
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "The number of items observed was: %d\n\n", table.Total)
	fmt.Fprintf(out, "Digit\tObserved\tBenford\n")
	for d := 1; d <= 9; d++ {
		fmt.Fprintf(out, "%d\t%f\t%f\n", d, table.Observed(d), benford.Expected(d))
	}
	if table.Skipped > 0 {
		fmt.Fprintf(out, "\n%d items had no significant digit and were skipped.\n", table.Skipped)
	}
	return nil
}
