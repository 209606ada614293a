package csvio

import (
	"fmt"
	"io"
	"os"

	"distio/domain/core"
	"distio/domain/dist"
)

// StdoutPath is the output path that selects standard output.
const StdoutPath = "stdout"

// Writer emits variable values as two CSV lines: the names, then the
// values in scientific notation.
type Writer[F dist.Real] struct {
	path string
}

// NewWriter creates a CSV writer for the given output path.
func NewWriter[F dist.Real](path string) *Writer[F] {
	return &Writer[F]{path: path}
}

// Write emits the names line and the values line. Standard output is
// left open; files are created fresh and closed.
func (w *Writer[F]) Write(names []string, values []F) error {
	var out io.Writer
	if w.path == StdoutPath {
		out = os.Stdout
	} else {
		f, err := os.Create(w.path)
		if err != nil {
			return core.NewInputError(core.ErrCannotOpen, "Cannot open the file %s.", w.path)
		}
		defer f.Close()
		out = f
	}

	return Emit(out, names, values)
}

// Emit writes the two CSV lines to out.
func Emit[F dist.Real](out io.Writer, names []string, values []F) error {
	for i, name := range names {
		if i > 0 {
			if _, err := fmt.Fprint(out, ", "); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprint(out, name); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(out); err != nil {
		return err
	}

	for i, v := range values {
		if i > 0 {
			if _, err := fmt.Fprint(out, ", "); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(out, "%e", float64(v)); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(out); err != nil {
		return err
	}

	return nil
}
