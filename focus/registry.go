package focus

import "github.com/sirupsen/logrus"

// Registry is the process-wide ordered event-handler vector (spec
// 4.12); vector order is also tab-cycling order. It has no locking of
// its own — spec 5. places it among the shared state only ever
// touched under the engine's pause lock, which the input thread
// already holds while translating and dispatching (compare
// engine.Engine.WithPause).
type Registry struct {
	handlers []*Handler
	log      *logrus.Entry
}

// NewRegistry builds an empty handler registry.
func NewRegistry(log *logrus.Entry) *Registry {
	return &Registry{log: log}
}

// Register appends h to the end of the vector.
func (r *Registry) Register(h *Handler) {
	r.handlers = append(r.handlers, h)
}

// Unregister removes h, if present.
func (r *Registry) Unregister(h *Handler) {
	for i, x := range r.handlers {
		if x == h {
			r.handlers = append(r.handlers[:i], r.handlers[i+1:]...)
			return
		}
	}
}

// Handlers returns the registry's vector, in tab-cycling order.
func (r *Registry) Handlers() []*Handler { return r.handlers }

func (r *Registry) anyFocused() bool {
	for _, h := range r.handlers {
		if h.Host.Focused {
			return true
		}
	}
	return false
}

// cycleTab advances (forward) or steps back (!forward) the hovered
// handler in vector order, wrapping at either end (spec 4.12 /
// scenario S4). It only runs while no handler's host is focused.
func (r *Registry) cycleTab(forward bool) {
	n := len(r.handlers)
	if n == 0 {
		return
	}

	cur := -1
	for i, h := range r.handlers {
		if h.Host.Hovered {
			cur = i
			break
		}
	}

	var next int
	switch {
	case cur < 0 && forward:
		next = 0
	case cur < 0:
		next = n - 1
	case forward:
		next = (cur + 1) % n
	default:
		next = (cur - 1 + n) % n
	}

	for i, h := range r.handlers {
		h.Host.Hovered = i == next
	}
}
