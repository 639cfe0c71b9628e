package input

import (
	"bytes"
	"strconv"
)

// Decoder turns a batch of raw terminal bytes into Events (spec
// 4.10). It is stateless across calls other than the modifier/button
// bit-layout it shares with both X10 and SGR mouse reports; a
// malformed or truncated sequence is skipped one byte at a time and
// decoding resumes at the next boundary (spec §7, "input decode
// anomaly").
type Decoder struct{}

// NewDecoder returns a ready-to-use Decoder.
func NewDecoder() *Decoder { return &Decoder{} }

// Decode classifies every byte in b, returning the events produced.
func (d *Decoder) Decode(b []byte) []Event {
	var events []Event
	i, n := 0, len(b)
	for i < n {
		c := b[i]
		switch {
		case c == 0x1b:
			consumed, ev, ok := decodeEscape(b[i:])
			if !ok || consumed == 0 {
				consumed = 1
				ev = []Event{{Kind: KeyEscape}}
			}
			events = append(events, ev...)
			i += consumed
		case c == 0x7f:
			events = append(events, Event{Kind: KeyBackspace})
			i++
		case c == '\t':
			events = append(events, Event{Kind: KeyTab})
			i++
		case c == '\n' || c == '\r':
			events = append(events, Event{Kind: KeyEnter})
			i++
		case c >= 1 && c <= 26:
			events = append(events, Event{Kind: KeyCtrlLetter, Rune: rune('a' + c - 1), Mods: ModControl})
			i++
		case c >= 0x20 && c <= 0x7e:
			events = append(events, Event{Kind: KeyPress, Rune: rune(c)})
			i++
		default:
			i++
		}
	}
	return events
}

// decodeEscape decodes everything that can follow an ESC byte: a bare
// ESCAPE, ESC+char (ALT+char), or a CSI ("ESC[...") sequence. It
// returns how many bytes of seq (seq[0] is the ESC itself) were
// consumed.
func decodeEscape(seq []byte) (consumed int, events []Event, ok bool) {
	if len(seq) < 2 {
		return 1, []Event{{Kind: KeyEscape}}, true
	}
	if seq[1] != '[' {
		return 2, []Event{{Kind: KeyAltChar, Rune: rune(seq[1])}}, true
	}
	return decodeCSI(seq)
}

func decodeCSI(seq []byte) (consumed int, events []Event, ok bool) {
	if len(seq) < 3 {
		return 0, nil, false
	}
	switch seq[2] {
	case 'A':
		return 3, []Event{{Kind: KeyUp}}, true
	case 'B':
		return 3, []Event{{Kind: KeyDown}}, true
	case 'C':
		return 3, []Event{{Kind: KeyRight}}, true
	case 'D':
		return 3, []Event{{Kind: KeyLeft}}, true
	case 'Z':
		return 3, []Event{{Kind: KeyShiftTab}}, true
	case 'M':
		if len(seq) < 6 {
			return 0, nil, false
		}
		btn := int(seq[3]) - 32
		x := int(seq[4]) - 32 - 1
		y := int(seq[5]) - 32 - 1
		return 6, []Event{decodeX10Mouse(btn, x, y)}, true
	case '<':
		return decodeSGR(seq)
	case '1':
		return decodeModifiedArrow(seq)
	default:
		return 0, nil, false
	}
}

// decodeModifiedArrow handles "ESC[1;<mod><final>" (a modifier
// prefix in front of an arrow key).
func decodeModifiedArrow(seq []byte) (consumed int, events []Event, ok bool) {
	if len(seq) < 4 || seq[3] != ';' {
		return 0, nil, false
	}
	k := 4
	for k < len(seq) && seq[k] >= '0' && seq[k] <= '9' {
		k++
	}
	if k >= len(seq) || k == 4 {
		return 0, nil, false
	}
	code, _ := strconv.Atoi(string(seq[4:k]))
	mods := decodeModifier(code)
	kind, found := arrowKind(seq[k])
	if !found {
		return k + 1, nil, true
	}
	return k + 1, []Event{{Kind: kind, Mods: mods}}, true
}

func arrowKind(c byte) (Kind, bool) {
	switch c {
	case 'A':
		return KeyUp, true
	case 'B':
		return KeyDown, true
	case 'C':
		return KeyRight, true
	case 'D':
		return KeyLeft, true
	}
	return 0, false
}

// decodeModifier applies the spec 4.10 "m-1" bit-decode to a CSI
// modifier parameter.
func decodeModifier(code int) Modifiers {
	v := code - 1
	var m Modifiers
	if v&1 != 0 {
		m |= ModShift
	}
	if v&2 != 0 {
		m |= ModAlt
	}
	if v&4 != 0 {
		m |= ModControl
	}
	if v&8 != 0 {
		m |= ModSuper
	}
	return m
}

// decodeSGR handles "ESC[<b;x;y M" (press) / "...m" (release).
func decodeSGR(seq []byte) (consumed int, events []Event, ok bool) {
	j := 3
	for j < len(seq) && seq[j] != 'M' && seq[j] != 'm' {
		j++
	}
	if j >= len(seq) {
		return 0, nil, false
	}
	parts := bytes.Split(seq[3:j], []byte{';'})
	if len(parts) != 3 {
		return j + 1, nil, true
	}
	btn, errB := strconv.Atoi(string(parts[0]))
	x, errX := strconv.Atoi(string(parts[1]))
	y, errY := strconv.Atoi(string(parts[2]))
	if errB != nil || errX != nil || errY != nil {
		return j + 1, nil, true
	}
	press := seq[j] == 'M'
	return j + 1, []Event{decodeSGRMouse(btn, x-1, y-1, press)}, true
}

// buttonModifiers applies the X10/SGR shared bit layout: bit2=SHIFT,
// bit3=SUPER, bit4=CONTROL (spec 4.10).
func buttonModifiers(b int) Modifiers {
	var m Modifiers
	if b&0x04 != 0 {
		m |= ModShift
	}
	if b&0x08 != 0 {
		m |= ModSuper
	}
	if b&0x10 != 0 {
		m |= ModControl
	}
	return m
}

func decodeX10Mouse(b, x, y int) Event {
	mods := buttonModifiers(b)
	if b&0x40 != 0 {
		if b&0x01 != 0 {
			return Event{Kind: ScrollDown, X: x, Y: y, Mods: mods}
		}
		return Event{Kind: ScrollUp, X: x, Y: y, Mods: mods}
	}
	if b&0x20 != 0 {
		return Event{Kind: MouseMove, X: x, Y: y, Mods: mods}
	}
	switch b & 0x03 {
	case 0:
		return Event{Kind: MouseLeftDown, X: x, Y: y, Mods: mods}
	case 1:
		return Event{Kind: MouseMiddleDown, X: x, Y: y, Mods: mods}
	case 2:
		return Event{Kind: MouseRightDown, X: x, Y: y, Mods: mods}
	default:
		return Event{Kind: MouseReleaseAll, X: x, Y: y, Mods: mods}
	}
}

func decodeSGRMouse(b, x, y int, press bool) Event {
	mods := buttonModifiers(b)
	if b&0x40 != 0 {
		if b&0x01 != 0 {
			return Event{Kind: ScrollDown, X: x, Y: y, Mods: mods}
		}
		return Event{Kind: ScrollUp, X: x, Y: y, Mods: mods}
	}
	if b&0x20 != 0 {
		return Event{Kind: MouseMove, X: x, Y: y, Mods: mods}
	}
	var downKind, upKind Kind
	switch b & 0x03 {
	case 0:
		downKind, upKind = MouseLeftDown, MouseLeftUp
	case 1:
		downKind, upKind = MouseMiddleDown, MouseMiddleUp
	case 2:
		downKind, upKind = MouseRightDown, MouseRightUp
	default:
		downKind, upKind = MouseReleaseAll, MouseReleaseAll
	}
	if press {
		return Event{Kind: downKind, X: x, Y: y, Mods: mods}
	}
	return Event{Kind: upKind, X: x, Y: y, Mods: mods}
}
