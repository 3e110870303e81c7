// Package leapyear implements the leapyear command.
package leapyear

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/quarrylane/pastime/internal/pkg/calendar"
)

// LeapyearCmd is the leapyear command.
var LeapyearCmd = &cobra.Command{
	Use:   "leapyear YEAR...",
	Short: "Decide whether years are leap years",
	Long: `Report whether each YEAR is a leap year.

Years from 1582 on follow the Gregorian rule, earlier years the Julian
rule, including the historical quirks: every third year was leap from
45 BC to 9 BC by a counting error, and none from then until AD 8.
Use negative numbers for years BC. There is no year 0.

Examples:
  pastime leapyear 2000 1900 2024
  pastime leapyear -- -45`,
	Args: cobra.MinimumNArgs(1),
	RunE: runLeapyear,
}

func runLeapyear(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	for _, arg := range args {
		year, err := strconv.Atoi(arg)
		if err != nil {
			return fmt.Errorf("invalid year %q: %w", arg, err)
		}
		leap, err := calendar.IsLeap(year)
		if errors.Is(err, calendar.ErrYearZero) {
			fmt.Fprintln(out, "There is no year 0.")
			continue
		}
		if err != nil {
			return err
		}
		if leap {
			fmt.Fprintf(out, "%s is a leap year.\n", arg)
		} else {
			fmt.Fprintf(out, "%s is not a leap year.\n", arg)
		}
	}
	return nil
}
