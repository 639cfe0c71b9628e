package focus

import "cellscape/input"

// Dispatch runs one pass of the spec 4.12 dispatch loop over inputs,
// given the current mouse coordinate, and returns whatever inputs
// went unmatched (callers drop these at tick end).
//
// Tab-cycling runs first, and only while no handler's host is
// focused: TAB/SHIFT+TAB advance or step back the hovered handler
// instead of being offered to the per-handler loop. Once some host is
// focused, TAB is an ordinary input like any other — it reaches the
// focused handler only if that handler's own Criteria names it.
//
// The per-handler loop then runs in vector order; for each handler it
// walks the still-unconsumed inputs, promoting a hovered host to
// focus on MOUSE_LEFT_CLICKED-while-overlapping or KeyEnter, else
// running the handler's job when its host is focused and its
// Criteria names the input's kind, and finally refreshes hover state
// from the mouse position for any host that isn't focused. On a pass
// where TAB/SHIFT+TAB moved the hover, that refresh is skipped so the
// mouse position does not undo the cycle.
func Dispatch(r *Registry, inputs []input.Event, mouseX, mouseY int) []input.Event {
	consumed := make([]bool, len(inputs))

	cycled := false
	if !r.anyFocused() {
		for i, in := range inputs {
			switch in.Kind {
			case input.KeyTab:
				r.cycleTab(true)
				consumed[i] = true
				cycled = true
			case input.KeyShiftTab:
				r.cycleTab(false)
				consumed[i] = true
				cycled = true
			}
		}
	}

	for _, h := range r.handlers {
		if !h.Host.EffectivelyVisible() {
			continue
		}
		bx, by, bw, bh := h.Host.Bounds()
		overlaps := Collides(bx, by, bw, bh, mouseX, mouseY)

		for i := range inputs {
			if consumed[i] {
				continue
			}
			in := inputs[i]

			if h.Host.Hovered && ((in.Kind == input.MouseLeftClicked && overlaps) || in.Kind == input.KeyEnter) {
				h.Host.Focused = true
				h.Host.Hovered = false
				consumed[i] = true
				continue
			}

			if h.Host.Focused && h.Criteria.Contains(in.Kind) {
				ok, err := h.Job(in)
				switch {
				case err != nil:
					if r.log != nil {
						r.log.WithError(err).WithField("handler", h.Name).Warn("handler job failed")
					}
				case ok:
					consumed[i] = true
				default:
					if r.log != nil {
						r.log.WithField("handler", h.Name).Warn("handler rejected input, leaving it for another handler")
					}
				}
			}
		}

		if !h.Host.Focused && !cycled {
			h.Host.Hovered = overlaps
		}
	}

	unmatched := make([]input.Event, 0, len(inputs))
	for i, c := range consumed {
		if !c {
			unmatched = append(unmatched, inputs[i])
		}
	}
	return unmatched
}
