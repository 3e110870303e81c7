// Package boxtext implements the boxtext command.
package boxtext

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/quarrylane/pastime/internal/pkg/boxtext"
	"github.com/quarrylane/pastime/internal/pkg/cmdutil"
)

var (
	boxOffset  int
	boxCols    int
	boxWrap    int
	boxCenter  bool
	boxRounded bool
)

// BoxtextCmd is the boxtext command.
var BoxtextCmd = &cobra.Command{
	Use:   "boxtext [TEXT...]",
	Short: "Print text to the screen in a box",
	Long: `Draw a box around text. The text is taken from the arguments, or
from standard input when none are given; overlong lines are
word-wrapped to fit the terminal.

--offset shifts the box right, clamped so it stays on screen;
--center centers each line; --rounded swaps the +/- frame for rounded
corners.

Examples:
  pastime boxtext hello world
  pastime boxtext --center --offset 10 "two households, both alike in dignity"
  fortune | pastime boxtext --rounded`,
	Args: cobra.ArbitraryArgs,
	RunE: runBoxtext,
}

func init() {
	BoxtextCmd.Flags().IntVarP(&boxOffset, "offset", "o", 0, "shift the box right this many columns")
	BoxtextCmd.Flags().IntVar(&boxCols, "cols", 0, "terminal width to fit inside (default 80)")
	BoxtextCmd.Flags().IntVarP(&boxWrap, "wrap", "w", 0, "wrap content at this width instead of what fits")
	BoxtextCmd.Flags().BoolVarP(&boxCenter, "center", "c", false, "center each line in the box")
	BoxtextCmd.Flags().BoolVarP(&boxRounded, "rounded", "r", false, "use rounded corners")
}

func runBoxtext(cmd *cobra.Command, args []string) error {
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
		text = strings.TrimRight(string(raw), "\n")
	}

	style := boxtext.StyleASCII
	if boxRounded {
		style = boxtext.StyleRounded
	}
	box := boxtext.Render(text, boxtext.Options{
		Cols:   boxCols,
		Offset: boxOffset,
		Wrap:   boxWrap,
		Center: boxCenter,
		Style:  style,
	})
	fmt.Fprintln(cmd.OutOrStdout(), box)
	return nil
}
