package match

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/quarrylane/pastime/internal/pkg/kmp"
)

var failureCmd = &cobra.Command{
	Use:   "failure PATTERN",
	Short: "List the failure function of a pattern",
	Long: `Print the Knuth-Morris-Pratt failure function of PATTERN.

f[i] is the length of the longest proper prefix of the first i bytes
that is also a suffix of them. The matcher falls back along this table
on a mismatch instead of rescanning the input.`,
	Args: cobra.ExactArgs(1),
	RunE: runFailure,
}

func runFailure(cmd *cobra.Command, args []string) error {
	pattern := args[0]
	f, err := kmp.BuildFailureFunc([]byte(pattern))
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Failure function for %s:\n", pattern)
	for i := 1; i < len(f); i++ {
		fmt.Fprintf(out, "f[%d] = %d\n", i, f[i])
	}
	return nil
}
