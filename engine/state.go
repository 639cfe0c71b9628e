// Package engine implements the render thread's state machine and the
// reentrant pause/rendezvous protocol the event and input threads use
// to get exclusive access to the element tree (spec 4.8, 5.).
package engine

// State is the render thread's state machine (spec 4.8).
type State int

const (
	NotInitialized State = iota
	Paused
	RequestingRendering
	Rendering
	Terminated
)

func (s State) String() string {
	switch s {
	case NotInitialized:
		return "NOT_INITIALIZED"
	case Paused:
		return "PAUSED"
	case RequestingRendering:
		return "REQUESTING_RENDERING"
	case Rendering:
		return "RENDERING"
	case Terminated:
		return "TERMINATED"
	default:
		return "UNKNOWN"
	}
}
