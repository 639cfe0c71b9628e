// Package term owns the terminal lifecycle: TTY detection, raw-mode
// enter/exit, the ANSI feature toggles and their symmetric cleanup,
// and the signal wiring that turns SIGWINCH into a resize notice and
// SIGINT/SIGTERM/fatal signals into an idempotent exit path (spec
// 4.13).
package term

import (
	"io"
	"os"
	"sync"

	"cellscape/encode"
	"github.com/gravitational/trace"
	xterm "golang.org/x/term"
)

// Options selects which ANSI features Init enables.
type Options struct {
	AltScreen bool
	Mouse     bool
}

// enabled tracks which ANSI features were actually turned on, so
// Cleanup only emits the matching disable sequences (spec 4.13,
// "symmetric disables only for features actually enabled").
type enabled struct {
	cursorHidden bool
	mouse        bool
	altScreen    bool
}

// Terminal owns the raw-mode state, the enabled-feature bookkeeping,
// and the user-registered cleanup callbacks for a single process's
// terminal session.
type Terminal struct {
	in  *os.File
	out io.Writer

	isTTY    bool
	rawState *xterm.State

	enabled enabled

	mu        sync.Mutex
	closeOnce sync.Once
	cleanups  []func()
}

// New wraps in/out for a terminal session. out is typically the same
// *os.File as in (stdout) but accepted as io.Writer so tests can
// substitute a buffer.
func New(in *os.File, out io.Writer) *Terminal {
	return &Terminal{in: in, out: out, isTTY: xterm.IsTerminal(int(in.Fd()))}
}

// IsTTY reports whether the input file descriptor is a real terminal.
// Input decoding switches to poll-then-read when this is false (spec
// 4.10).
func (t *Terminal) IsTTY() bool { return t.isTTY }

// Size returns the terminal's current column/row count, falling back
// to 80x24 when the size can't be queried (e.g. not a TTY).
func (t *Terminal) Size() (width, height int) {
	if !t.isTTY {
		return 80, 24
	}
	w, h, err := xterm.GetSize(int(t.in.Fd()))
	if err != nil {
		return 80, 24
	}
	return w, h
}

// RegisterCleanup adds a callback to run, in registration order,
// before any ANSI/raw-mode teardown (spec §7, "user-registered
// cleanup callbacks run first").
func (t *Terminal) RegisterCleanup(fn func()) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.cleanups = append(t.cleanups, fn)
}

// Init enters raw mode (if stdin is a TTY) and emits the requested
// ANSI feature toggles. It is a no-op to call twice.
func (t *Terminal) Init(opts Options) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.enabled.cursorHidden {
		return nil
	}

	if t.isTTY {
		state, err := xterm.MakeRaw(int(t.in.Fd()))
		if err != nil {
			return trace.Wrap(err, "entering raw mode")
		}
		t.rawState = state
	}

	var out string
	out += CursorHide
	t.enabled.cursorHidden = true

	if opts.Mouse {
		out += MouseAllEnable
		t.enabled.mouse = true
	}
	if opts.AltScreen {
		out += AltScreenEnable
		t.enabled.altScreen = true
	}

	if _, err := io.WriteString(t.out, out); err != nil {
		return trace.Wrap(err, "writing terminal init sequence")
	}
	return nil
}

// Cleanup is idempotent and symmetric: it runs every registered
// cleanup callback, emits reset-SGR plus the disable sequence for
// each feature actually enabled, and restores the raw-mode terminal
// state. Safe to call multiple times or from a signal handler; only
// the first call does anything.
func (t *Terminal) Cleanup() {
	t.closeOnce.Do(func() {
		t.mu.Lock()
		cleanups := t.cleanups
		st := t.rawState
		en := t.enabled
		t.mu.Unlock()

		for _, fn := range cleanups {
			fn()
		}

		var out string
		out += encode.ResetSGR
		if en.altScreen {
			out += AltScreenDisable
		}
		if en.mouse {
			out += MouseAllDisable
		}
		if en.cursorHidden {
			out += CursorShow
		}
		_, _ = io.WriteString(t.out, out)

		if st != nil {
			_ = xterm.Restore(int(t.in.Fd()), st)
		}
	})
}
