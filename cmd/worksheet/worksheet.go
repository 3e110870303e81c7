// Package worksheet implements the worksheet command.
package worksheet

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/quarrylane/pastime/internal/pkg/cmdutil"
	"github.com/quarrylane/pastime/internal/pkg/logger"
	"github.com/quarrylane/pastime/internal/pkg/worksheet"
)

var (
	wsCount  int
	wsDigits int
	wsOps    string
	wsCols   int
	wsTeX    bool
	wsKey    bool
	wsSeed   int64
)

// WorksheetCmd is the worksheet command.
var WorksheetCmd = &cobra.Command{
	Use:   "worksheet",
	Short: "Generate an arithmetic practice worksheet",
	Long: `Generate a page of randomly drawn arithmetic problems, operands
stacked the way they are worked by hand, with a matching answer key.

Each sheet is stamped with an id so a printed page can be matched to
its key later, and --seed reproduces a sheet exactly. --tex emits
LaTeX source for typesetting instead of plain text. Division problems
expect the integer quotient.

Examples:
  pastime worksheet
  pastime worksheet --count 20 --digits 3 --ops +-
  pastime worksheet --tex --key --seed 42 > sheet.tex`,
	Args: cobra.NoArgs,
	RunE: runWorksheet,
}

func init() {
	WorksheetCmd.Flags().IntVarP(&wsCount, "count", "n", worksheet.DefaultCount, "number of problems (config: worksheet.count)")
	WorksheetCmd.Flags().IntVarP(&wsDigits, "digits", "d", worksheet.DefaultDigits, "operand size in digits (config: worksheet.digits)")
	WorksheetCmd.Flags().StringVar(&wsOps, "ops", "", "operations to draw from, e.g. +-x/ (default all; config: worksheet.ops)")
	WorksheetCmd.Flags().IntVar(&wsCols, "cols", worksheet.DefaultCols, "problem columns per page")
	WorksheetCmd.Flags().BoolVar(&wsTeX, "tex", false, "emit LaTeX source instead of plain text (config: worksheet.tex)")
	WorksheetCmd.Flags().BoolVarP(&wsKey, "key", "k", false, "append the answer key")
	WorksheetCmd.Flags().Int64Var(&wsSeed, "seed", 0, "random seed (0 draws one from the clock)")
}

func runWorksheet(cmd *cobra.Command, args []string) error {
	ops, err := worksheet.ParseOps(cmdutil.GetStringConfig("worksheet.ops", wsOps))
	if err != nil {
		return err
	}
	sheet, err := worksheet.Generate(worksheet.Options{
		Count:  cmdutil.GetIntConfig("worksheet.count", wsCount),
		Digits: cmdutil.GetIntConfig("worksheet.digits", wsDigits),
		Ops:    ops,
		Seed:   wsSeed,
	})
	if err != nil {
		return err
	}
	logger.Debug("worksheet generated", "id", sheet.ID, "seed", sheet.Seed, "problems", len(sheet.Problems))

	out := cmd.OutOrStdout()
	if cmdutil.GetBoolConfig("worksheet.tex", wsTeX) {
		fmt.Fprint(out, sheet.TeX(wsCols, wsKey))
		return nil
	}
	fmt.Fprint(out, sheet.Text(wsCols, wsKey))
	return nil
}
