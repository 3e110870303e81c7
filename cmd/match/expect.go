package match

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/quarrylane/pastime/internal/pkg/cmdutil"
	"github.com/quarrylane/pastime/internal/pkg/kmp"
)

var expectAlphabet int

var expectCmd = &cobra.Command{
	Use:   "expect PATTERN",
	Short: "Expected random draws until a pattern first appears",
	Long: `Compute the expected number of uniform random draws from an alphabet
of q symbols until PATTERN first appears as a run of consecutive draws.

Self-overlapping patterns take longer to show up than their length
suggests: over the binary alphabet, 11 is expected after 6 draws but
10 after only 4. The answer is exact, summed over the borders of the
pattern, and grows as q to the pattern length.`,
	Args: cobra.ExactArgs(1),
	RunE: runExpect,
}

func init() {
	expectCmd.Flags().IntVarP(&expectAlphabet, "alphabet", "q", 2, "alphabet size (config: match.alphabet)")
}

func runExpect(cmd *cobra.Command, args []string) error {
	pattern := args[0]
	q := cmdutil.GetIntConfig("match.alphabet", expectAlphabet)
	if q < 2 {
		return fmt.Errorf("alphabet size must be at least 2, got %d", q)
	}

	distinct := make(map[byte]struct{}, len(pattern))
	for i := 0; i < len(pattern); i++ {
		distinct[pattern[i]] = struct{}{}
	}
	if len(distinct) > q {
		return fmt.Errorf("pattern uses %d distinct symbols but the alphabet holds only %d", len(distinct), q)
	}

	wait, err := kmp.ExpectedWait([]byte(pattern), q)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "For string %s over %d symbols, expected draws until first appearance = %s.\n", pattern, q, wait)
	return nil
}
