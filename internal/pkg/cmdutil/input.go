package cmdutil

import (
	"fmt"
	"io"
	"os"
)

// Input is the data source of a command that reads files named on the
// command line, falling back to standard input when none are named.
type Input struct {
	readers []io.Reader
	files   []*os.File
}

// OpenInputs opens the named files in order. With no names, or for the
// name "-", the fallback reader (the command's standard input) is used
// instead. Close the Input when done.
func OpenInputs(names []string, stdin io.Reader) (*Input, error) {
	in := &Input{}
	if len(names) == 0 {
		in.readers = append(in.readers, stdin)
		return in, nil
	}
	for _, name := range names {
		if name == "-" {
			in.readers = append(in.readers, stdin)
			continue
		}
		f, err := os.Open(name)
		if err != nil {
			in.Close()
			return nil, fmt.Errorf("open input: %w", err)
		}
		in.files = append(in.files, f)
		in.readers = append(in.readers, f)
	}
	return in, nil
}

// Reader returns the concatenation of the sources, in the order named.
func (in *Input) Reader() io.Reader {
	return io.MultiReader(in.readers...)
}

// Close closes the opened files. The fallback reader is left alone.
func (in *Input) Close() error {
	var firstErr error
	for _, f := range in.files {
		if err := f.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
