// Package easter implements the easter command, which computes the date
// of Easter by the ecclesiastical rules.
package easter

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/quarrylane/pastime/internal/pkg/calendar"
)

var (
	easterJulian    bool
	easterDayNumber bool
	easterFull      bool
)

// EasterCmd is the easter command.
var EasterCmd = &cobra.Command{
	Use:   "easter [YEAR]",
	Short: "Compute the date of Easter in a given year",
	Long: `Print the date of Easter in YEAR in mm/dd format. With no year,
the current year is used.

Easter is the first Sunday strictly after the Paschal full moon, an
official moon kept by the golden number and epact tables rather than
by astronomy. --full walks through those quantities; --julian applies
the Julian calendar rules used by Orthodox churches (the date is given
in the Julian calendar); --daynumber prints the day of the year
instead of mm/dd.

Examples:
  pastime easter 2026
  pastime easter --full 1997
  pastime easter --julian 2026
  pastime easter --daynumber 2026`,
	Args: cobra.MaximumNArgs(1),
	RunE: runEaster,
}

func init() {
	EasterCmd.Flags().BoolVarP(&easterJulian, "julian", "j", false, "use Julian calendar rules")
	EasterCmd.Flags().BoolVarP(&easterDayNumber, "daynumber", "n", false, "print the day number of the year instead of mm/dd")
	EasterCmd.Flags().BoolVarP(&easterFull, "full", "f", false, "report the golden number, epact and Paschal full moon too")
}

func runEaster(cmd *cobra.Command, args []string) error {
	year := time.Now().Year()
	if len(args) == 1 {
		y, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid year %q: %w", args[0], err)
		}
		year = y
	}
	if year == 0 {
		return calendar.ErrYearZero
	}

	cal := calendar.Gregorian
	if easterJulian {
		cal = calendar.Julian
	}
	out := cmd.OutOrStdout()

	if !easterFull {
		d := cal.Easter(year)
		if easterDayNumber {
			n, err := cal.DayNumber(year, d.Month, d.Day)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "%d\n", n)
			return nil
		}
		fmt.Fprintf(out, "%s\n", d)
		return nil
	}

	detail := cal.EasterDetail(year)
	fmt.Fprintf(out, "\nFor the year %d:\n", year)
	fmt.Fprintf(out, "The Golden Number is %d\n", detail.GoldenNumber)
	fmt.Fprintf(out, "The Epact is %d\n", detail.Epact)
	fmt.Fprintf(out, "The Paschal Full Moon is on %s, %s.\n", detail.MoonWeekday, detail.PaschalMoon)
	if easterDayNumber {
		n, err := cal.DayNumber(year, detail.Easter.Month, detail.Easter.Day)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "Easter is on %d.\n", n)
		return nil
	}
	fmt.Fprintf(out, "Easter is on %s.\n", detail.Easter)
	return nil
}
