// Package roman implements the roman command.
package roman

import (
	"bufio"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/quarrylane/pastime/internal/pkg/cmdutil"
	"github.com/quarrylane/pastime/internal/pkg/roman"
)

// RomanCmd is the roman command.
var RomanCmd = &cobra.Command{
	Use:   "roman [VALUE...]",
	Short: "Convert between Roman numerals and numbers",
	Long: `Convert each VALUE between Roman numerals and decimal, whichever
way round it is given: MCMXCIX prints 1999 and 1999 prints MCMXCIX.

With no arguments, values are read one per line from standard input.
The supported range is 1 to 3999, after which the Romans ran out of
letters.

Examples:
  pastime roman MCMXCIX
  pastime roman 1999 44
  echo XIV | pastime roman`,
	Args: cobra.ArbitraryArgs,
	RunE: runRoman,
}

func runRoman(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	if len(args) > 0 {
		for _, arg := range args {
			s, err := convert(arg)
			if err != nil {
				return err
			}
			fmt.Fprintln(out, s)
		}
		return nil
	}

	in, err := cmdutil.OpenInputs(nil, cmd.InOrStdin())
	if err != nil {
		return err
	}
	defer in.Close()
	sc := bufio.NewScanner(in.Reader())
	for sc.Scan() {
		line := sc.Text()
		if line == "" {
			continue
		}
		s, err := convert(line)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, s)
	}
	return sc.Err()
}

// convert goes numeral to decimal or decimal to numeral, picking the
// direction by what the value parses as.
func convert(value string) (string, error) {
	if n, err := strconv.Atoi(value); err == nil {
		return roman.Format(n)
	}
	n, err := roman.Parse(value)
	if err != nil {
		return "", err
	}
	return strconv.Itoa(n), nil
}
