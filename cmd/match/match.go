// Package match implements the match command, the CLI face of the
// Knuth-Morris-Pratt matcher.
package match

import (
	"github.com/spf13/cobra"
)

// MatchCmd is the base match command for exact string searching.
var MatchCmd = &cobra.Command{
	Use:   "match",
	Short: "Exact string matching with the Knuth-Morris-Pratt automaton",
	Long: `Search text for a pattern using the Knuth-Morris-Pratt algorithm.

The matcher precomputes a failure function from the pattern and scans
the input in a single pass, never re-reading a character no matter how
the pattern overlaps itself.

Subcommands:
  find     - Find the first occurrence of a pattern in the input
  count    - Count occurrences of a pattern, overlaps included
  failure  - List the failure function of a pattern
  period   - Print the shortest repeating prefix of a string
  expect   - Expected random draws until a pattern first appears

Examples:
  echo 'hello world' | pastime match find world
  pastime match count aa poem.txt
  pastime match failure aabaaab
  pastime match period abcabcabc
  pastime match expect 110 --alphabet 2`,
	// No Run function - requires a subcommand
}

func init() {
	MatchCmd.AddCommand(findCmd)
	MatchCmd.AddCommand(countCmd)
	MatchCmd.AddCommand(failureCmd)
	MatchCmd.AddCommand(periodCmd)
	MatchCmd.AddCommand(expectCmd)
}
