package cell

import "cellscape/color"

// Flag is the per-cell bitset: ASCII/UTF-8 payload kind plus the
// encoder's START/END markers (spec 3. "Cell").
type Flag uint8

const (
	FlagASCII Flag = 1 << iota
	FlagUTF8
	FlagStart
	FlagEnd
)

// Cell is the smallest renderable unit: a payload (one byte or a 2-4
// byte UTF-8 sequence stored inline, never as a non-owning pointer —
// see DESIGN.md for why this module keeps an owning inline buffer
// instead of the source's aliasing payload pointer), a foreground and
// background color, and the encoding flags.
type Cell struct {
	Flags      Flag
	payload    [4]byte
	payloadLen uint8
	Foreground color.RGBA
	Background color.RGBA
}

// Default is the empty-cell value used to clear render buffers on
// RESET: a single space, opaque black background, default foreground.
var Default = New(' ')

// New builds a cell from a single rune. Runes that encode to more than
// 4 UTF-8 bytes cannot happen (UTF-8 max is 4), so this never drops
// data.
func New(r rune) Cell {
	var c Cell
	c.SetRune(r)
	c.Foreground = color.New(255, 255, 255)
	c.Background = color.NewA(0, 0, 0, 255)
	return c
}

// SetRune overwrites the payload, recomputing the ASCII/UTF-8 flag.
func (c *Cell) SetRune(r rune) {
	n := encodeRuneInline(&c.payload, r)
	c.payloadLen = uint8(n)
	c.Flags &^= FlagASCII | FlagUTF8
	if n <= 1 {
		c.Flags |= FlagASCII
	} else {
		c.Flags |= FlagUTF8
	}
}

// SetByte overwrites the payload with a single ASCII byte.
func (c *Cell) SetByte(b byte) {
	c.payload[0] = b
	c.payloadLen = 1
	c.Flags &^= FlagUTF8
	c.Flags |= FlagASCII
}

// Payload returns the cell's text payload as bytes.
func (c Cell) Payload() []byte { return c.payload[:c.payloadLen] }

// IsDefaultText reports whether the cell's payload is the default
// single space — used by compose's alpha nesting to decide whether a
// child's text should overwrite the destination's.
func (c Cell) IsDefaultText() bool {
	return c.payloadLen == 1 && c.payload[0] == ' '
}

// encodeRuneInline writes r's UTF-8 encoding into buf and returns the
// byte count (1-4).
func encodeRuneInline(buf *[4]byte, r rune) int {
	switch {
	case r < 0x80:
		buf[0] = byte(r)
		return 1
	case r < 0x800:
		buf[0] = 0xC0 | byte(r>>6)
		buf[1] = 0x80 | byte(r&0x3F)
		return 2
	case r < 0x10000:
		buf[0] = 0xE0 | byte(r>>12)
		buf[1] = 0x80 | byte((r>>6)&0x3F)
		buf[2] = 0x80 | byte(r&0x3F)
		return 3
	default:
		buf[0] = 0xF0 | byte(r>>18)
		buf[1] = 0x80 | byte((r>>12)&0x3F)
		buf[2] = 0x80 | byte((r>>6)&0x3F)
		buf[3] = 0x80 | byte(r&0x3F)
		return 4
	}
}

// CopyTextFrom overwrites c's payload (and ASCII/UTF-8 flag) with
// src's, leaving c's colors and START/END flags untouched — used by
// compose's alpha nesting when a child's cell overwrites a parent's
// text but the two colors are being additively blended rather than
// replaced outright.
func (c *Cell) CopyTextFrom(src Cell) {
	c.payload = src.payload
	c.payloadLen = src.payloadLen
	c.Flags &^= FlagASCII | FlagUTF8
	c.Flags |= src.Flags & (FlagASCII | FlagUTF8)
}

// SameColors reports whether two cells share the same foreground and
// background, the comparison the encoder uses to decide START/END.
func SameColors(a, b Cell) bool {
	return color.Equal(a.Foreground, b.Foreground) && color.Equal(a.Background, b.Background)
}

// MaxEncodedLen is the compile-time bound from spec 4.1, used as the
// part capacity of a one-cell SuperString: two color overheads (counted
// as 5 each), two color triplets (counted at their worst-case byte
// length, <=3 decimal bytes per channel, 3 channels, 2 separators = 11)
// plus an 'm' each, a <=4 byte payload, and a reset (counted as 4).
// RenderEncoded appends at most 27 parts per cell (11 per color block,
// up to 4 payload parts, 1 reset), so the bound covers it.
const MaxEncodedLen = 2*(5+11+1) + 4 + 4
