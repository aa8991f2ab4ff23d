package statline

import (
	"math"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/arthur-debert/statline/pkg/logging"
	"github.com/arthur-debert/statline/pkg/statictext"
	"github.com/arthur-debert/statline/pkg/terminal"
)

const (
	// defaultTickInterval is the baseline delay between redraws.
	defaultTickInterval = 120 * time.Millisecond
	// defaultResizeDelay is used while the terminal is being resized.
	defaultResizeDelay = 200 * time.Millisecond
)

// Region is the display surface the drawer writes frames to. Render
// replaces the previous frame with text; Clear erases it. The drawer
// serializes all Region calls under its own lock, so implementations
// need no locking of their own.
type Region interface {
	Render(text string, size terminal.Size)
	Clear()
}

// Options configures a Drawer. The zero value is usable: it draws to
// stderr, probes the real terminal, and consults the global log level.
type Options struct {
	// Region is the display region writer. Defaults to a statictext
	// writer on stderr.
	Region Region
	// Size queries the terminal size each tick. Defaults to
	// terminal.ConsoleSize.
	Size func() (terminal.Size, bool)
	// TTY reports whether the diagnostic stream is an interactive
	// terminal. Defaults to probing stderr. Evaluated once.
	TTY func() bool
	// InfoEnabled reports whether informational logging is enabled.
	// Defaults to logging.InfoEnabled. Evaluated on every support
	// check because verbosity may change at runtime.
	InfoEnabled func() bool
	// TickInterval overrides the baseline redraw delay.
	TickInterval time.Duration
	// ResizeDelay overrides the post-resize debounce delay.
	ResizeDelay time.Duration
}

type entry struct {
	id       uint16
	renderer Renderer
}

// Drawer owns the status region and the single background render loop.
// Construct one per process and hand it to everything that reports
// progress; stderr is a process-wide resource, so two drawers writing
// to it would fight over the region.
type Drawer struct {
	region      Region
	size        func() (terminal.Size, bool)
	tty         func() bool
	infoEnabled func() bool
	tick        time.Duration
	resizeDelay time.Duration
	logger      zerolog.Logger

	probeOnce   sync.Once
	ttyWithSize bool

	mu         sync.Mutex
	generation uint64
	hideCount  int
	loopActive bool
	entries    []entry
	nextID     uint16
}

// New creates a Drawer. Zero fields in opts fall back to the real
// terminal environment.
func New(opts Options) *Drawer {
	d := &Drawer{
		region:      opts.Region,
		size:        opts.Size,
		tty:         opts.TTY,
		infoEnabled: opts.InfoEnabled,
		tick:        opts.TickInterval,
		resizeDelay: opts.ResizeDelay,
		logger:      logging.GetLogger("statline"),
	}
	if d.region == nil {
		d.region = statictext.New(os.Stderr)
	}
	if d.size == nil {
		d.size = terminal.ConsoleSize
	}
	if d.tty == nil {
		d.tty = func() bool { return terminal.IsTerminal(os.Stderr) }
	}
	if d.infoEnabled == nil {
		d.infoEnabled = logging.InfoEnabled
	}
	if d.tick <= 0 {
		d.tick = defaultTickInterval
	}
	if d.resizeDelay <= 0 {
		d.resizeDelay = defaultResizeDelay
	}
	return d
}

// IsSupported reports whether status lines can be drawn at all: the
// stream is an interactive terminal with a usable size (probed once,
// the terminal shape detection is assumed stable for process life) and
// informational logging is currently enabled (re-checked every call).
func (d *Drawer) IsSupported() bool {
	return d.infoEnabled() && d.ttyWithConsoleSize()
}

func (d *Drawer) ttyWithConsoleSize() bool {
	d.probeOnce.Do(func() {
		if !d.tty() {
			return
		}
		size, ok := d.size()
		d.ttyWithSize = ok && size.Cols > 0 && size.Rows > 0
	})
	return d.ttyWithSize
}

// AddEntry registers a renderer and returns the guard that keeps it on
// screen. In an unsupported environment the entry is still tracked and
// the guard is valid, but nothing is ever drawn. The returned guard
// must eventually be closed.
func (d *Drawer) AddEntry(renderer Renderer) *Guard {
	d.mu.Lock()
	defer d.mu.Unlock()

	id := d.nextID
	d.entries = append(d.entries, entry{id: id, renderer: renderer})

	// Wrapping allocator. With 65536 entries live at once an id could
	// collide with a still-live entry; that degenerate case is a known
	// limitation and not defended against.
	if d.nextID == math.MaxUint16 {
		d.nextID = 0
	} else {
		d.nextID++
	}

	d.maybeStartLoop()

	return &Guard{drawer: d, id: id}
}

// Hide suppresses the status region. Suppression is reference-counted:
// the region stays hidden until every Hide has a matching Show.
func (d *Drawer) Hide() {
	d.mu.Lock()
	defer d.mu.Unlock()

	wasShowing := d.loopActive && d.hideCount == 0
	d.hideCount++

	// Clear on the calling goroutine rather than waiting for the loop
	// to notice: the caller may need the region gone before its next
	// write to the stream, and the loop's schedule is not ours.
	if wasShowing {
		d.region.Clear()
	}
}

// Show undoes one Hide. Calling Show more times than Hide is safe and
// has no additional effect.
func (d *Drawer) Show() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.hideCount > 0 {
		d.hideCount--
	}
}

// finishEntry removes the entry with the given id, if it is still
// known. Removing the last entry stops the loop by bumping the
// generation and issues the final clear of the region.
func (d *Drawer) finishEntry(id uint16) {
	d.mu.Lock()
	defer d.mu.Unlock()

	for i, e := range d.entries {
		if e.id != id {
			continue
		}
		d.entries = append(d.entries[:i], d.entries[i+1:]...)

		if len(d.entries) == 0 && d.loopActive {
			d.generation++
			d.loopActive = false
			d.region.Clear()
		}
		return
	}
}

// maybeStartLoop starts the background loop when there is something to
// draw, no loop is running, and the environment supports drawing.
// Callers must hold d.mu.
func (d *Drawer) maybeStartLoop() {
	if d.loopActive || len(d.entries) == 0 || !d.IsSupported() {
		return
	}

	d.generation++
	d.loopActive = true
	go d.renderLoop(d.generation)
}

// shouldExit reports whether a loop started under gen is obsolete.
// Callers must hold d.mu. The generation is the sole stop signal: any
// bump, from emptying the entry list or from a newer loop starting,
// makes every older loop exit on its next check.
func (d *Drawer) shouldExit(gen uint64) bool {
	return d.generation != gen || len(d.entries) == 0
}

func (d *Drawer) renderLoop(gen uint64) {
	d.logger.Debug().Uint64("generation", gen).Msg("render loop started")
	defer d.logger.Debug().Uint64("generation", gen).Msg("render loop stopped")

	prevSize, prevOK := d.size()
	for {
		delay := d.tick

		d.mu.Lock()
		if d.shouldExit(gen) {
			d.mu.Unlock()
			return
		}
		var entries []entry
		if d.hideCount == 0 {
			entries = append([]entry(nil), d.entries...)
		}
		d.mu.Unlock()

		if entries != nil {
			size, ok := d.size()
			if size != prevSize || ok != prevOK {
				// The user is actively resizing the terminal; skip
				// this tick and wait a little longer for it to settle.
				prevSize, prevOK = size, ok
				delay = d.resizeDelay
			} else if ok {
				// Render outside the lock. A renderer may hold its own
				// lock while producing text, and its owner may be
				// releasing the guard (which needs d.mu) at the same
				// time; rendering under d.mu would close that cycle
				// into a deadlock.
				frame := renderFrame(entries, size)

				d.mu.Lock()
				if d.shouldExit(gen) {
					// The frame was computed against a dead
					// generation; discard it.
					d.mu.Unlock()
					return
				}
				d.region.Render(frame, size)
				d.mu.Unlock()
			}
		}

		time.Sleep(delay)
	}
}

// renderFrame concatenates entry renders in stacking order. A single
// newline separates two renders only when the preceding render and the
// current one are both non-empty, so empty renders never force a
// spurious blank line.
func renderFrame(entries []entry, size terminal.Size) string {
	var b strings.Builder
	newlineNext := false
	for _, e := range entries {
		text := e.renderer.Render(size)
		if newlineNext && text != "" {
			b.WriteByte('\n')
		}
		newlineNext = text != ""
		b.WriteString(text)
	}
	return b.String()
}
