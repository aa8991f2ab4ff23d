package statictext

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/arthur-debert/statline/pkg/terminal"
)

var size80x24 = terminal.Size{Cols: 80, Rows: 24}

func TestRenderWritesText(t *testing.T) {
	var buf bytes.Buffer
	w := New(&buf)

	w.Render("10%\n20%", size80x24)

	out := buf.String()
	assert.Contains(t, out, "10%\n20%\n")
}

func TestRenderErasesPreviousFrame(t *testing.T) {
	var buf bytes.Buffer
	w := New(&buf)

	w.Render("10%\n20%", size80x24)
	buf.Reset()
	w.Render("done", size80x24)

	out := buf.String()
	// Two rows were written previously, so the rewrite must move up
	// over both before emitting the new frame.
	assert.Contains(t, out, "\x1b[1A", "expected cursor-up before rewrite")
	assert.Contains(t, out, "done\n")
}

func TestClearIsIdempotent(t *testing.T) {
	var buf bytes.Buffer
	w := New(&buf)

	w.Render("spinning", size80x24)
	buf.Reset()
	w.Clear()
	erased := buf.String()
	assert.NotEmpty(t, erased, "first clear should erase the frame")

	buf.Reset()
	w.Clear()
	assert.Empty(t, buf.String(), "second clear should write nothing")
}

func TestRenderEmptyTextClears(t *testing.T) {
	var buf bytes.Buffer
	w := New(&buf)

	w.Render("busy", size80x24)
	buf.Reset()
	w.Render("", size80x24)
	assert.Contains(t, buf.String(), "\x1b[2K", "empty render should erase the region")

	buf.Reset()
	w.Clear()
	assert.Empty(t, buf.String(), "region already cleared")
}

func TestRowCount(t *testing.T) {
	tests := []struct {
		name string
		text string
		cols uint16
		want int
	}{
		{"single line", "hello", 80, 1},
		{"two lines", "a\nb", 80, 2},
		{"wrapped line", strings.Repeat("x", 100), 40, 3},
		{"exact fit does not wrap", strings.Repeat("x", 80), 80, 1},
		{"empty line still occupies a row", "a\n\nb", 80, 3},
		{"zero cols treated as no wrapping", strings.Repeat("x", 500), 0, 1},
		{"ansi styling is not display width", "\x1b[31m10%\x1b[0m", 3, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, rowCount(tt.text, tt.cols))
		})
	}
}
