// Package statictext implements an erase-and-rewrite primitive for a
// fixed, non-scrolling region at the bottom of a terminal stream.
// Ordinary output written to the same stream keeps scrolling above the
// region because the writer only ever moves the cursor back over rows
// it wrote itself.
package statictext

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"

	"github.com/arthur-debert/statline/pkg/terminal"
)

// Writer rewrites a block of text in place. It remembers how many
// terminal rows the previous frame occupied, including rows consumed
// by line wrapping at the column count it was rendered with.
//
// Writer performs no locking of its own; callers must serialize
// Render and Clear externally.
type Writer struct {
	out      io.Writer
	term     *termenv.Output
	lastRows int
}

// New creates a Writer that draws to out.
func New(out io.Writer) *Writer {
	return &Writer{
		out:  out,
		term: termenv.NewOutput(out),
	}
}

// Render erases the previous frame and writes text in its place.
// An empty text behaves like Clear.
func (w *Writer) Render(text string, size terminal.Size) {
	w.term.HideCursor()
	defer w.term.ShowCursor()

	w.erase()
	if text == "" {
		return
	}
	fmt.Fprintln(w.out, text)
	w.lastRows = rowCount(text, size.Cols)
}

// Clear erases the previous frame, leaving the cursor where the
// frame began.
func (w *Writer) Clear() {
	if w.lastRows == 0 {
		return
	}
	w.term.HideCursor()
	defer w.term.ShowCursor()
	w.erase()
}

func (w *Writer) erase() {
	if w.lastRows == 0 {
		return
	}
	// The cursor sits on the line below the frame, so clearing the
	// current line plus lastRows above walks back to the frame start.
	w.term.ClearLines(w.lastRows)
	w.lastRows = 0
}

// rowCount returns the number of terminal rows text occupies when
// printed at the given column count. Display width is measured after
// stripping ANSI escape sequences so styled frames measure correctly.
func rowCount(text string, cols uint16) int {
	rows := 0
	for _, line := range strings.Split(text, "\n") {
		width := ansi.StringWidth(line)
		if cols == 0 || width <= int(cols) {
			rows++
			continue
		}
		rows += (width + int(cols) - 1) / int(cols)
	}
	return rows
}
