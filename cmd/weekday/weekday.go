// Package weekday implements the weekday command.
package weekday

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/quarrylane/pastime/internal/pkg/calendar"
)

var weekdayJulian bool

// WeekdayCmd is the weekday command.
var WeekdayCmd = &cobra.Command{
	Use:   "weekday YEAR MONTH DAY",
	Short: "Name the day of the week a date falls on",
	Long: `Print the day of the week for the given date.

The date is taken in the Gregorian calendar, or in the Julian calendar
with --julian. What day of the week was 2 August 1953?

Examples:
  pastime weekday 1953 8 2
  pastime weekday --julian 1582 10 4`,
	Args: cobra.ExactArgs(3),
	RunE: runWeekday,
}

func init() {
	WeekdayCmd.Flags().BoolVarP(&weekdayJulian, "julian", "j", false, "use Julian calendar rules")
}

func runWeekday(cmd *cobra.Command, args []string) error {
	year, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid year %q: %w", args[0], err)
	}
	if year == 0 {
		return calendar.ErrYearZero
	}
	month, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("invalid month %q: %w", args[1], err)
	}
	if month < 1 || month > 12 {
		return calendar.ErrBadMonth
	}
	day, err := strconv.Atoi(args[2])
	if err != nil {
		return fmt.Errorf("invalid day %q: %w", args[2], err)
	}
	if day < 1 || day > 31 {
		return fmt.Errorf("no such day of the month: %d", day)
	}

	cal := calendar.Gregorian
	if weekdayJulian {
		cal = calendar.Julian
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s\n", cal.Weekday(year, time.Month(month), day))
	return nil
}
