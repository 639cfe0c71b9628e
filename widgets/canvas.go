package widgets

import (
	"cellscape/cell"
	"cellscape/element"
	"github.com/gravitational/trace"
)

// Canvas is the multi-frame sprite animator SPEC_FULL.md 12 calls out:
// a thin element holding N pre-rendered cell-grid frames and a current
// index, advanced once per event tick independent of the scroll list
// exemplar. It satisfies event.Advancer without this package importing
// event, keeping the dependency one-directional.
type Canvas struct {
	Host   *element.Element
	frames [][]cell.Cell
	index  int
}

// NewCanvas builds a Canvas sized w x h from frames, each of which must
// contain exactly w*h cells in row-major order. At least one frame is
// required; a single frame is a valid (static) canvas.
func NewCanvas(name string, w, h int, frames [][]cell.Cell) (*Canvas, error) {
	if len(frames) == 0 {
		return nil, trace.BadParameter("canvas %q needs at least one frame", name)
	}
	for i, f := range frames {
		if len(f) != w*h {
			return nil, trace.BadParameter("canvas %q frame %d has %d cells, want %d", name, i, len(f), w*h)
		}
	}

	host := newContentLeaf(name, w, h, cell.Default)
	copy(host.RenderBuffer, frames[0])

	return &Canvas{Host: host, frames: frames}, nil
}

// Advance swaps the host's render buffer to the next frame, wrapping
// around, and requests a repaint. This is the event.Advancer contract:
// the event loop calls it once per tick under the engine's pause lock.
func (c *Canvas) Advance() {
	if len(c.frames) <= 1 {
		return
	}
	c.index = (c.index + 1) % len(c.frames)
	c.Host.RenderBuffer = c.frames[c.index]
	requestRepaint(c.Host)
}

// FrameIndex reports the currently displayed frame, mostly useful for
// tests.
func (c *Canvas) FrameIndex() int { return c.index }
