// Package fsquad implements the fsquad command, a firing squad
// synchronization simulator.
package fsquad

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/quarrylane/pastime/internal/pkg/cmdutil"
	"github.com/quarrylane/pastime/internal/pkg/fsquad"
	"github.com/quarrylane/pastime/internal/pkg/signals"
	"github.com/quarrylane/pastime/internal/pkg/tui"
)

var (
	fsquadLen      int
	fsquadSteps    int
	fsquadLegend   bool
	fsquadWatch    bool
	fsquadInterval int
)

// FsquadCmd is the fsquad command.
var FsquadCmd = &cobra.Command{
	Use:   "fsquad",
	Short: "Run the firing squad synchronization problem",
	Long: `Simulate a row of identical finite automata that must all fire at
the same instant, though only the leftmost one hears the order and
each machine sees just its two neighbors.

Every generation of the row is printed until the volley. --watch
animates the row in the terminal instead, one generation per tick.

Examples:
  pastime fsquad
  pastime fsquad --length 12
  pastime fsquad --legend --length 4
  pastime fsquad --watch --length 16`,
	Args: cobra.NoArgs,
	RunE: runFsquad,
}

func init() {
	FsquadCmd.Flags().IntVarP(&fsquadLen, "length", "n", fsquad.DefaultLen, "number of machines in the row")
	FsquadCmd.Flags().IntVarP(&fsquadSteps, "steps", "t", 0, "stop after this many generations (0 means run to the volley)")
	FsquadCmd.Flags().BoolVarP(&fsquadLegend, "legend", "l", false, "print the cell notation first")
	FsquadCmd.Flags().BoolVarP(&fsquadWatch, "watch", "w", false, "animate the row in the terminal")
	FsquadCmd.Flags().IntVar(&fsquadInterval, "interval", 150, "tick interval in milliseconds for --watch (config: fsquad.interval_ms)")
}

func runFsquad(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	if fsquadLegend {
		fmt.Fprintln(out, fsquad.Legend())
	}

	if fsquadWatch {
		interval := cmdutil.GetIntConfig("fsquad.interval_ms", fsquadInterval)
		if interval < 1 {
			return fmt.Errorf("interval must be at least 1ms, got %d", interval)
		}
		return tui.Run(fsquadLen, time.Duration(interval)*time.Millisecond)
	}

	line, err := fsquad.New(fsquadLen)
	if err != nil {
		return err
	}

	// A row of n machines synchronizes in O(n^2) generations; the cap
	// only matters when --steps cuts the run short.
	limit := fsquadSteps
	if limit <= 0 {
		limit = 8*fsquadLen*fsquadLen + 64
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()
	cleanup := signals.SetupHandler(ctx, cancel)
	defer cleanup()

	fmt.Fprintln(out, line)
	for !line.Fired() && line.Generation() < limit && ctx.Err() == nil {
		line.Step()
		fmt.Fprintln(out, line)
	}
	if !line.Fired() {
		if fsquadSteps > 0 || ctx.Err() != nil {
			return nil
		}
		return fsquad.ErrNoSync
	}
	fmt.Fprint(out, "\n\n BANG!!! \n\n")
	fmt.Fprintf(out, "Length = %d. Synchronization in %d steps.\n\n", line.Len(), line.Generation())
	return nil
}
