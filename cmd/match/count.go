package match

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/quarrylane/pastime/internal/pkg/cmdutil"
	"github.com/quarrylane/pastime/internal/pkg/kmp"
)

var countCmd = &cobra.Command{
	Use:   "count PATTERN [FILE...]",
	Short: "Count occurrences of a pattern, overlaps included",
	Long: `Count every occurrence of PATTERN in the named files, or in
standard input when no file is given.

Occurrences are counted even when they overlap: the pattern aa occurs
three times in aaaa. The input is scanned as a stream in one pass, so
it never needs to fit in memory.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCount,
}

func runCount(cmd *cobra.Command, args []string) error {
	pattern := args[0]
	m, err := kmp.NewStringMatcher(pattern)
	if err != nil {
		return err
	}

	in, err := cmdutil.OpenInputs(args[1:], cmd.InOrStdin())
	if err != nil {
		return err
	}
	defer in.Close()

	n, err := kmp.CountReader(m, in.Reader())
	if err != nil {
		return fmt.Errorf("scanning input: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Target '%s' found %d times in source.\n", pattern, n)
	return nil
}
