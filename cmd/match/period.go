package match

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/quarrylane/pastime/internal/pkg/kmp"
)

var periodCmd = &cobra.Command{
	Use:   "period STRING",
	Short: "Print the shortest repeating prefix of a string",
	Long: `Print the shortest prefix of STRING whose repetition spells out the
whole string.

For abcabcabc that is abc; for a string that does not repeat, the
string itself. The prefix is read off the failure function of the
string, so no candidate lengths are tried one by one.`,
	Args: cobra.ExactArgs(1),
	RunE: runPeriod,
}

func runPeriod(cmd *cobra.Command, args []string) error {
	s := args[0]
	unit, err := kmp.ShortestRepeatingPrefixString(s)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s repeats \"%s\" %d times.\n", s, unit, len(s)/len(unit))
	return nil
}
