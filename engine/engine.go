package engine

import (
	"context"
	"io"
	"sync"

	"cellscape/compose"
	"cellscape/element"
	"cellscape/encode"
	"github.com/gravitational/trace"
	"github.com/sirupsen/logrus"
)

// Engine owns the render thread's state machine, the pause mutex and
// condition variable every worker rendezvouses on (spec 5.: "parallel
// OS threads coordinated by a single mutex and a single condition
// variable"), and the encode cache the render loop reuses across
// frames.
type Engine struct {
	mu   sync.Mutex
	cond *sync.Cond

	state      State
	pauseCount int

	tree     *element.Tree
	cache    *encode.Cache
	out      io.Writer
	wordWrap bool
	log      *logrus.Entry
}

// New builds an Engine bound to tree, writing encoded frames to out.
// It wires tree.RequestRender to the engine's own ticket request so
// every tree mutation (AddChild, SetDimensions, ...) reaches the
// render thread the normal way.
func New(tree *element.Tree, out io.Writer, wordWrap bool, log *logrus.Entry) *Engine {
	e := &Engine{
		tree:     tree,
		out:      out,
		wordWrap: wordWrap,
		log:      log,
		cache:    encode.NewCache(tree.Root.Width, tree.Root.Height),
	}
	e.cond = sync.NewCond(&e.mu)
	tree.RequestRender = e.RequestRender
	return e
}

// Init transitions NOT_INITIALIZED -> PAUSED once the tree exists
// (spec 4.8). Calling it again is a no-op.
func (e *Engine) Init() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.state == NotInitialized {
		e.state = Paused
	}
}

// State returns the current render-thread state.
func (e *Engine) State() State {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state
}

// RequestRender is the public request entry point (updateFrame() in
// spec 4.8): a no-op while NOT_INITIALIZED or while any pause is held,
// otherwise it requests a render ticket.
func (e *Engine) RequestRender() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.state == NotInitialized || e.pauseCount > 0 || e.state == Terminated {
		return
	}
	e.state = RequestingRendering
	e.cond.Broadcast()
}

// Pause is pauseGGUI(): reentrant and counting. The first call blocks
// until the render thread reaches PAUSED; nested calls just bump the
// counter.
func (e *Engine) Pause() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.pauseCount == 0 {
		for e.state == Rendering || e.state == RequestingRendering {
			e.cond.Wait()
		}
	}
	e.pauseCount++
}

// Resume is resumeGGUI(): decrements the pause counter, and at zero
// re-requests a render ticket so any mutation made during the pause is
// picked up.
func (e *Engine) Resume() {
	e.mu.Lock()
	e.pauseCount--
	atZero := e.pauseCount == 0
	e.mu.Unlock()
	if atZero {
		e.RequestRender()
	}
}

// WithPause is pauseGGUI(fn): runs fn with the engine paused, and
// resumes even if fn panics — the event and input threads use this to
// wrap their critical sections.
func (e *Engine) WithPause(fn func()) {
	e.Pause()
	defer e.Resume()
	fn()
}

// Terminate sets the terminate carry-flag, observed by every worker on
// its next pause attempt or render tick (spec 5. "Cancellation").
func (e *Engine) Terminate() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.state = Terminated
	e.cond.Broadcast()
}

// RenderLoop is the render thread body: blocks for a render ticket,
// renders and writes a frame, returns to PAUSED, and repeats until
// Terminate is observed (spec 4.8) or ctx is cancelled.
func (e *Engine) RenderLoop(ctx context.Context) error {
	stop := make(chan struct{})
	defer close(stop)
	go func() {
		select {
		case <-ctx.Done():
			e.Terminate()
		case <-stop:
		}
	}()

	for {
		e.mu.Lock()
		for e.state != RequestingRendering && e.state != Terminated {
			e.cond.Wait()
		}
		if e.state == Terminated {
			e.cond.Broadcast()
			e.mu.Unlock()
			return nil
		}
		e.state = Rendering
		e.mu.Unlock()

		if err := e.renderOnce(); err != nil && e.log != nil {
			e.log.WithError(err).Warn("frame write failed, dropping frame")
		}

		e.mu.Lock()
		if e.state == Rendering {
			e.state = Paused
		}
		e.cond.Broadcast()
		e.mu.Unlock()
	}
}

func (e *Engine) renderOnce() error {
	buf := compose.Render(e.tree.Root)
	if e.tree.Root.IdenticalFrame() {
		return nil
	}
	out := e.cache.Encode(buf, e.tree.Root.Width, e.tree.Root.Height, e.wordWrap)

	if _, err := io.WriteString(e.out, encode.CursorHome); err != nil {
		return trace.Wrap(err, "writing cursor-home escape")
	}
	if _, err := e.out.Write(out); err != nil {
		return trace.Wrap(err, "writing encoded frame")
	}
	return nil
}
