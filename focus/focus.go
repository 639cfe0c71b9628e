// Package focus implements the process-wide event-handler registry,
// its hover/focus promotion and dispatch loop, and tab-cycling over
// handlers with no focus holder (spec 4.12).
package focus

import (
	"cellscape/element"
	"cellscape/input"
)

// Criteria is the set of input kinds a handler reacts to while its
// host is focused.
type Criteria []input.Kind

// Contains reports whether k is one of the criteria.
func (c Criteria) Contains(k input.Kind) bool {
	for _, x := range c {
		if x == k {
			return true
		}
	}
	return false
}

// JobFunc runs a handler's reaction to a matched input event. It
// returns true on success (consuming the input) or an error, per
// Design Notes §9's explicit result type in place of exceptions; a
// job returning false without an error is logged and the input is
// left for a later handler to match.
type JobFunc func(input.Event) (bool, error)

// Handler binds a host element to the input kinds it reacts to while
// focused, and the job that runs when one matches.
type Handler struct {
	Name     string
	Host     *element.Element
	Criteria Criteria
	Job      JobFunc
}

// Collides is a point-in-rect hit test: px/py fall inside the box
// whose top-left corner is (x,y) and whose size is w x h.
func Collides(x, y, w, h, px, py int) bool {
	return px >= x && px < x+w && py >= y && py < y+h
}
