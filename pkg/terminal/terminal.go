// Package terminal provides console probes: interactive-terminal
// detection and terminal size queries for the diagnostic stream.
package terminal

import (
	"os"

	"github.com/mattn/go-isatty"
	"golang.org/x/term"
)

// Size is the shape of the console in character cells.
type Size struct {
	Cols uint16
	Rows uint16
}

// IsTerminal reports whether the file is attached to an interactive
// terminal, including Cygwin/MSYS pseudo terminals.
func IsTerminal(f *os.File) bool {
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// SizeOf queries the console size of the given file. The second return
// value is false when the query fails or reports a degenerate size,
// which callers should treat as "do not attempt to draw".
func SizeOf(f *os.File) (Size, bool) {
	cols, rows, err := term.GetSize(int(f.Fd()))
	if err != nil || cols <= 0 || rows <= 0 {
		return Size{}, false
	}
	return Size{Cols: uint16(cols), Rows: uint16(rows)}, true
}

// ConsoleSize queries the size of the terminal attached to stderr,
// where status lines are drawn.
func ConsoleSize() (Size, bool) {
	return SizeOf(os.Stderr)
}
