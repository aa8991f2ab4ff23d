package statline

import "github.com/arthur-debert/statline/pkg/terminal"

// Renderer produces the display text for one status line, given the
// current terminal size. Render is called from the drawer's background
// goroutine, possibly while the owning producer is releasing its Guard
// on another goroutine, so implementations must be safe for that.
// Returning an empty string means "nothing to show this tick" and
// contributes no blank line to the frame.
type Renderer interface {
	Render(size terminal.Size) string
}

// RendererFunc adapts a plain function to the Renderer interface.
type RendererFunc func(size terminal.Size) string

// Render implements Renderer.
func (f RendererFunc) Render(size terminal.Size) string {
	return f(size)
}
