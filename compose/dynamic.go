package compose

import (
	"cellscape/element"
	"cellscape/style"
)

// ComputeDynamicSize propagates dynamically-sized extents upward one
// generation at a time, post-order: every dynamically-sized child is
// resolved from its own children first, then e — if it is itself
// dynamically sized — is grown to cover the (now up to date) bounding
// box of its visible children, plus e's own border offset on each side
// (spec 4.4 step 3). Like AddChild's insertion-time growth it never
// shrinks e; it runs as an explicit pass so a child resize or
// reposition that happens without a fresh AddChild call still grows a
// dynamically-sized ancestor. STRETCH is set only when e actually grew.
func ComputeDynamicSize(e *element.Element) {
	for _, c := range e.Children() {
		ComputeDynamicSize(c)
	}
	if !e.Style.AllowDynamicSize {
		return
	}

	bo := e.Style.BorderOffset()
	maxRight, maxBottom := 0, 0
	for _, c := range e.Children() {
		if !c.EffectivelyVisible() {
			continue
		}
		lx, ly := c.LocalPosition()
		if right := lx + c.Width + 2*bo; right > maxRight {
			maxRight = right
		}
		if bottom := ly + c.Height + 2*bo; bottom > maxBottom {
			maxBottom = bottom
		}
	}

	grew := false
	if maxRight > e.Width {
		e.Width = maxRight
		e.Style.Width = style.Abs(float64(maxRight))
		grew = true
	}
	if maxBottom > e.Height {
		e.Height = maxBottom
		e.Style.Height = style.Abs(float64(maxBottom))
		grew = true
	}
	if grew {
		e.Stain.Set(element.StainStretch)
	}
}
