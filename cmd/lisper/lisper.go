// Package lisper implements the lisper command.
package lisper

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/quarrylane/pastime/internal/pkg/cmdutil"
	"github.com/quarrylane/pastime/internal/pkg/lisper"
)

var (
	lisperMinDepth int
	lisperBias     float64
	lisperSeed     int64
	lisperDepth    bool
)

// LisperCmd is the lisper command.
var LisperCmd = &cobra.Command{
	Use:   "lisper",
	Short: "Generate a random balanced parenthesis expression",
	Long: `Print a random well-formed parenthesis expression, for admiring or
for testing parsers against.

The expression is grown by a biased random walk that keeps pushing
until the minimum nesting depth is reached, then drifts back toward
balance. Higher --bias closes sooner and keeps the output short;
--seed reproduces an expression exactly. With --depth the nesting
depth of the generated expression is reported too.

Examples:
  pastime lisper
  pastime lisper --min-depth 10 --bias 0.05
  pastime lisper --seed 7 --depth`,
	Args: cobra.NoArgs,
	RunE: runLisper,
}

func init() {
	LisperCmd.Flags().IntVarP(&lisperMinDepth, "min-depth", "d", lisper.DefaultMinDepth, "nesting depth the expression must reach")
	LisperCmd.Flags().Float64VarP(&lisperBias, "bias", "b", lisper.DefaultBias, "edge toward closing, between 0 and 0.5")
	LisperCmd.Flags().Int64Var(&lisperSeed, "seed", 0, "random seed (0 draws one from the clock)")
	LisperCmd.Flags().BoolVar(&lisperDepth, "depth", false, "report the depth actually reached")
}

func runLisper(cmd *cobra.Command, args []string) error {
	minDepth := cmdutil.GetIntConfig("lisper.min_depth", lisperMinDepth)
	bias := cmdutil.GetFloat64Config("lisper.bias", lisperBias)
	expr, err := lisper.Generate(minDepth, bias, lisperSeed)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, expr)
	if lisperDepth {
		fmt.Fprintf(out, "depth = %d\n", lisper.Depth(expr))
	}
	return nil
}
