package input

import "time"

// DefaultMousePressDownCooldown is the default hold duration before a
// held mouse button starts emitting PRESSED instead of CLICKED (spec
// 4.11).
const DefaultMousePressDownCooldown = 365 * time.Millisecond

type buttonState struct {
	down        bool
	captureTime time.Time
}

// ClickPressSynthesizer turns raw mouse-button down/up edges into
// click-vs-press events (spec 4.11). Each tick, per button: if the
// button is currently down and has been held for at least the
// cooldown, a PRESSED event fires — every tick it remains held past
// the cooldown, not just once. Otherwise, if the button was down on
// the previous tick and is up on this one, a CLICKED event fires.
// Scroll is one-shot: whichever of up/down arrived most recently wins
// and is consumed on the next Process call.
type ClickPressSynthesizer struct {
	cooldown            time.Duration
	left, middle, right buttonState
	scrollUp, scrollDown bool
}

// NewClickPressSynthesizer builds a synthesizer with the given
// cooldown; a non-positive cooldown falls back to
// DefaultMousePressDownCooldown.
func NewClickPressSynthesizer(cooldown time.Duration) *ClickPressSynthesizer {
	if cooldown <= 0 {
		cooldown = DefaultMousePressDownCooldown
	}
	return &ClickPressSynthesizer{cooldown: cooldown}
}

// Process consumes one tick's worth of raw decoded events, updates
// per-button hold state, and returns the events for this tick: every
// non-mouse-button event passed through unchanged, plus whatever
// CLICKED/PRESSED/scroll events this tick synthesizes.
func (s *ClickPressSynthesizer) Process(raw []Event, now time.Time) []Event {
	var out []Event
	var leftDown, leftUp, midDown, midUp, rightDown, rightUp bool

	for _, e := range raw {
		switch e.Kind {
		case MouseLeftDown:
			leftDown = true
		case MouseLeftUp, MouseReleaseAll:
			leftUp = true
		case MouseMiddleDown:
			midDown = true
		case MouseMiddleUp:
			midUp = true
		case MouseRightDown:
			rightDown = true
		case MouseRightUp:
			rightUp = true
		case ScrollUp:
			s.scrollUp, s.scrollDown = true, false
		case ScrollDown:
			s.scrollDown, s.scrollUp = true, false
		default:
			out = append(out, e)
		}
	}

	out = append(out, s.tickButton(&s.left, leftDown, leftUp, now, MouseLeftPressed, MouseLeftClicked)...)
	out = append(out, s.tickButton(&s.middle, midDown, midUp, now, MouseMiddlePressed, MouseMiddleClicked)...)
	out = append(out, s.tickButton(&s.right, rightDown, rightUp, now, MouseRightPressed, MouseRightClicked)...)

	if s.scrollUp {
		out = append(out, Event{Kind: ScrollUp})
		s.scrollUp = false
	}
	if s.scrollDown {
		out = append(out, Event{Kind: ScrollDown})
		s.scrollDown = false
	}
	return out
}

func (s *ClickPressSynthesizer) tickButton(b *buttonState, sawDown, sawUp bool, now time.Time, pressedKind, clickedKind Kind) []Event {
	wasDown := b.down

	if sawDown {
		if !b.down {
			b.captureTime = now
		}
		b.down = true
	}
	if sawUp {
		b.down = false
	}

	switch {
	case b.down && now.Sub(b.captureTime) >= s.cooldown:
		return []Event{{Kind: pressedKind}}
	case !b.down && wasDown:
		return []Event{{Kind: clickedKind}}
	}
	return nil
}
