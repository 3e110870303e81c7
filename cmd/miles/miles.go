// Package miles implements the miles command.
package miles

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/quarrylane/pastime/internal/pkg/miles"
)

var (
	milesLanes     int
	milesLaneWidth float64
	milesLapLength float64
)

// MilesCmd is the miles command.
var MilesCmd = &cobra.Command{
	Use:   "miles TOLERANCE_FEET",
	Short: "Lane and lap combinations that come out in whole miles",
	Long: `Print every lane and lap count on a running track whose total
distance lands within TOLERANCE_FEET of a whole number of miles.

Outer lanes run longer laps, so each lane reaches round distances at
different lap counts. The default track is a 200 meter indoor oval
with six lanes 36 inches wide; --lanes, --width and --lap change it.

Examples:
  pastime miles 30
  pastime miles --lanes 8 --lap 400 10`,
	Args: cobra.ExactArgs(1),
	RunE: runMiles,
}

func init() {
	MilesCmd.Flags().IntVarP(&milesLanes, "lanes", "l", 6, "number of lanes")
	MilesCmd.Flags().Float64VarP(&milesLaneWidth, "width", "w", 36, "lane width in inches")
	MilesCmd.Flags().Float64Var(&milesLapLength, "lap", 200, "lap length in lane 1, in meters")
}

func runMiles(cmd *cobra.Command, args []string) error {
	tolerance, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return fmt.Errorf("invalid tolerance %q: %w", args[0], err)
	}

	track := miles.Track{
		LapMeters:       milesLapLength,
		LaneWidthMeters: miles.LaneWidthFromInches(milesLaneWidth),
		Lanes:           milesLanes,
	}
	combos, err := track.Combinations(tolerance)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "lane\tlaps\tmiles")
	for _, c := range combos {
		fmt.Fprintf(out, "%d\t%d\t%g\n", c.Lane, c.Laps, c.Miles)
	}
	return nil
}
