package match

import (
	"bytes"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/quarrylane/pastime/internal/pkg/cmdutil"
	"github.com/quarrylane/pastime/internal/pkg/kmp"
	"github.com/quarrylane/pastime/internal/pkg/logger"
)

var findOffsetOnly bool

var findCmd = &cobra.Command{
	Use:   "find PATTERN [FILE...]",
	Short: "Find the first occurrence of a pattern",
	Long: `Find the first occurrence of PATTERN in the named files, or in
standard input when no file is given.

By default the matched line is echoed with a caret marking each byte of
the match. With --offset the input is scanned as a stream instead and
only the byte offset of the match is printed, so arbitrarily large
inputs never need to fit in memory.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runFind,
}

func init() {
	findCmd.Flags().BoolVar(&findOffsetOnly, "offset", false, "print the byte offset only, scanning the input as a stream")
}

func runFind(cmd *cobra.Command, args []string) error {
	pattern := args[0]
	m, err := kmp.NewStringMatcher(pattern)
	if err != nil {
		return err
	}

	in, err := cmdutil.OpenInputs(args[1:], cmd.InOrStdin())
	if err != nil {
		return err
	}
	defer in.Close()
	out := cmd.OutOrStdout()

	if findOffsetOnly {
		off, err := kmp.FindReader(m, in.Reader())
		if err != nil {
			return fmt.Errorf("scanning input: %w", err)
		}
		if off < 0 {
			fmt.Fprintln(out, "Not found in source")
			return nil
		}
		fmt.Fprintf(out, "Found at byte %d\n", off)
		return nil
	}

	source, err := io.ReadAll(in.Reader())
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}
	logger.Debug("match find", "pattern", pattern, "source_bytes", len(source))

	fmt.Fprintf(out, "target = %s\n", pattern)
	at := m.FindFirst(source)
	if at == kmp.NotFound {
		fmt.Fprintln(out, "Not found in source")
		return nil
	}

	// Echo the line holding the start of the match, with the line
	// number when it is not the first, then underline the match.
	lineStart := bytes.LastIndexByte(source[:at], '\n') + 1
	lineNo := 1 + bytes.Count(source[:at], []byte{'\n'})
	if lineNo > 1 {
		fmt.Fprintf(out, "...line %d:\n", lineNo)
	}
	lineEnd := bytes.IndexByte(source[lineStart:], '\n')
	if lineEnd < 0 {
		lineEnd = len(source)
	} else {
		lineEnd += lineStart
	}
	fmt.Fprintf(out, "%s\n", source[lineStart:lineEnd])
	underline := bytes.Repeat([]byte{' '}, at-lineStart)
	underline = append(underline, bytes.Repeat([]byte{'^'}, m.Len())...)
	fmt.Fprintf(out, "%s\n", underline)
	return nil
}
