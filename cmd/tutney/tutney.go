// Package tutney implements the tutney command.
package tutney

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/spf13/cobra"

	"github.com/quarrylane/pastime/internal/pkg/cmdutil"
	"github.com/quarrylane/pastime/internal/pkg/tutney"
)

var (
	tutneyReverse bool
	tutneyPad     string
)

// TutneyCmd is the tutney command.
var TutneyCmd = &cobra.Command{
	Use:   "tutney [TEXT...]",
	Short: "Translate text to and from Tutney",
	Long: `Translate text into Tutney, the spelling language where vowels stand
for themselves and a consonant c is spoken c-u-c, with h, j, q, w and
y going by their own names. The syllables of a word are joined with a
pad character, - unless --pad says otherwise.

Text is taken from the arguments, or from standard input as a filter.
--reverse translates Tutney back; beware that letters of the original
text equal to the pad cannot be told from inserted pads, so they do
not survive the round trip.

Examples:
  pastime tutney how are you
  pastime tutney --reverse hash-o-wac
  pastime tutney < letter.txt`,
	Args: cobra.ArbitraryArgs,
	RunE: runTutney,
}

func init() {
	TutneyCmd.Flags().BoolVarP(&tutneyReverse, "reverse", "i", false, "translate Tutney back to plain text")
	TutneyCmd.Flags().StringVarP(&tutneyPad, "pad", "p", "-", "pad character joining the syllables of a word")
}

func runTutney(cmd *cobra.Command, args []string) error {
	pad, size := utf8.DecodeRuneInString(tutneyPad)
	if size == 0 || size != len(tutneyPad) {
		return fmt.Errorf("pad must be a single character, got %q", tutneyPad)
	}
	coder, err := tutney.NewCoder(pad)
	if err != nil {
		return err
	}

	text := strings.Join(args, " ")
	if len(args) == 0 {
		in, err := cmdutil.OpenInputs(nil, cmd.InOrStdin())
		if err != nil {
			return err
		}
		defer in.Close()
		raw, err := io.ReadAll(in.Reader())
		if err != nil {
			return fmt.Errorf("reading input: %w", err)
		}
		text = string(raw)
	}

	out := cmd.OutOrStdout()
	if tutneyReverse {
		plain, err := coder.Contract(text)
		if err != nil {
			return err
		}
		fmt.Fprint(out, plain)
	} else {
		fmt.Fprint(out, coder.Expand(text))
	}
	if len(args) > 0 {
		fmt.Fprintln(out)
	}
	return nil
}
