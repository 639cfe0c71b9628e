// Package input decodes raw terminal bytes into keyboard and mouse
// events, and synthesizes click-vs-press mouse semantics from the raw
// button edges (spec 4.10-4.11).
package input

// Modifiers is the SHIFT/ALT/CONTROL/SUPER bitmask decoded from a CSI
// modifier parameter (spec 4.10: "m-1 bit-decodes SHIFT=1/ALT=2/
// CONTROL=4/SUPER=8").
type Modifiers uint8

const (
	ModShift Modifiers = 1 << iota
	ModAlt
	ModControl
	ModSuper
)

// Has reports whether every bit in mask is set.
func (m Modifiers) Has(mask Modifiers) bool { return m&mask == mask }

// Kind classifies a decoded or synthesized event. The raw mouse-button
// kinds (MouseLeftDown/Up, ...) are internal to the decode/synthesis
// pipeline; code outside this package should only see the synthesized
// Clicked/Pressed kinds, Move, and the keyboard kinds.
type Kind int

const (
	KeyPress Kind = iota
	KeyEscape
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyTab
	KeyShiftTab
	KeyEnter
	KeyBackspace
	KeyAltChar
	KeyCtrlLetter

	MouseMove
	MouseLeftDown
	MouseLeftUp
	MouseMiddleDown
	MouseMiddleUp
	MouseRightDown
	MouseRightUp
	MouseReleaseAll
	ScrollUp
	ScrollDown

	MouseLeftClicked
	MouseLeftPressed
	MouseMiddleClicked
	MouseMiddlePressed
	MouseRightClicked
	MouseRightPressed
)

// Event is a single decoded or synthesized input occurrence. Not every
// field is meaningful for every Kind: Rune only for KeyPress/KeyAltChar/
// KeyCtrlLetter, X/Y only for the Mouse* kinds.
type Event struct {
	Kind Kind
	Rune rune
	Mods Modifiers
	X, Y int
}
