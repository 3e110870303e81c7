// Package anagrams implements the anagrams command.
package anagrams

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/quarrylane/pastime/internal/pkg/anagram"
	"github.com/quarrylane/pastime/internal/pkg/cmdutil"
	"github.com/quarrylane/pastime/internal/pkg/logger"
)

var (
	anagramsFind string
	anagramsTags string
)

// AnagramsCmd is the anagrams command.
var AnagramsCmd = &cobra.Command{
	Use:   "anagrams [FILE...]",
	Short: "Group the words of a dictionary into anagram classes",
	Long: `Read a word list from the named files, or from standard input, and
print every class of two or more words that are rearrangements of each
other.

Each word is signed with its letters in sorted order, so anagrams and
only anagrams share a signature. With --find only the anagrams of the
given word are printed; --tags lists the signatures starting with a
prefix instead of the classes.

Examples:
  pastime anagrams /usr/share/dict/words
  pastime anagrams --find stop /usr/share/dict/words
  pastime anagrams --tags aben /usr/share/dict/words`,
	Args: cobra.ArbitraryArgs,
	RunE: runAnagrams,
}

func init() {
	AnagramsCmd.Flags().StringVarP(&anagramsFind, "find", "f", "", "print only the anagrams of this word")
	AnagramsCmd.Flags().StringVarP(&anagramsTags, "tags", "t", "", "list signatures starting with this prefix")
}

func runAnagrams(cmd *cobra.Command, args []string) error {
	in, err := cmdutil.OpenInputs(args, cmd.InOrStdin())
	if err != nil {
		return err
	}
	defer in.Close()

	ix := anagram.NewIndex()
	n, err := ix.AddFrom(in.Reader())
	if err != nil {
		return fmt.Errorf("reading word list: %w", err)
	}
	logger.Debug("dictionary indexed", "words", n)
	out := cmd.OutOrStdout()

	if anagramsTags != "" {
		for _, tag := range ix.TagsWithPrefix(anagramsTags) {
			fmt.Fprintln(out, tag)
		}
		return nil
	}

	if anagramsFind != "" {
		group := ix.Lookup(anagramsFind)
		fmt.Fprintf(out, "Anagrams for %s:\n", anagramsFind)
		fmt.Fprintln(out, strings.Join(group, " "))
		return nil
	}

	for _, group := range ix.Groups() {
		fmt.Fprintf(out, "\nAnagrams of %s:\n", group[0])
		fmt.Fprintln(out, strings.Join(group[1:], " "))
	}
	return nil
}
