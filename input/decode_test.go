package input

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodePrintableRune(t *testing.T) {
	d := NewDecoder()
	events := d.Decode([]byte("a"))
	require.Len(t, events, 1)
	assert.Equal(t, KeyPress, events[0].Kind)
	assert.Equal(t, 'a', events[0].Rune)
}

func TestDecodeBareEscape(t *testing.T) {
	d := NewDecoder()
	events := d.Decode([]byte{0x1b})
	require.Len(t, events, 1)
	assert.Equal(t, KeyEscape, events[0].Kind)
}

func TestDecodeArrowKeys(t *testing.T) {
	d := NewDecoder()
	events := d.Decode([]byte("\x1b[A\x1b[B\x1b[C\x1b[D"))
	require.Len(t, events, 4)
	assert.Equal(t, []Kind{KeyUp, KeyDown, KeyRight, KeyLeft}, []Kind{events[0].Kind, events[1].Kind, events[2].Kind, events[3].Kind})
}

func TestDecodeShiftTab(t *testing.T) {
	d := NewDecoder()
	events := d.Decode([]byte("\x1b[Z"))
	require.Len(t, events, 1)
	assert.Equal(t, KeyShiftTab, events[0].Kind)
}

func TestDecodeModifiedArrowAppliesBitLayout(t *testing.T) {
	d := NewDecoder()
	// ESC[1;4A => modifier code 4 => v=3 => SHIFT|ALT, arrow up.
	events := d.Decode([]byte("\x1b[1;4A"))
	require.Len(t, events, 1)
	assert.Equal(t, KeyUp, events[0].Kind)
	assert.True(t, events[0].Mods.Has(ModShift))
	assert.True(t, events[0].Mods.Has(ModAlt))
	assert.False(t, events[0].Mods.Has(ModControl))
}

func TestDecodeAltChar(t *testing.T) {
	d := NewDecoder()
	events := d.Decode([]byte("\x1bx"))
	require.Len(t, events, 1)
	assert.Equal(t, KeyAltChar, events[0].Kind)
	assert.Equal(t, 'x', events[0].Rune)
}

func TestDecodeCtrlLetter(t *testing.T) {
	d := NewDecoder()
	events := d.Decode([]byte{1}) // ctrl+a
	require.Len(t, events, 1)
	assert.Equal(t, KeyCtrlLetter, events[0].Kind)
	assert.Equal(t, 'a', events[0].Rune)
	assert.True(t, events[0].Mods.Has(ModControl))
}

func TestDecodeTabAndEnterAndBackspace(t *testing.T) {
	d := NewDecoder()
	events := d.Decode([]byte{'\t', '\n', 0x7f})
	require.Len(t, events, 3)
	assert.Equal(t, KeyTab, events[0].Kind)
	assert.Equal(t, KeyEnter, events[1].Kind)
	assert.Equal(t, KeyBackspace, events[2].Kind)
}

func TestDecodeX10MouseLeftDown(t *testing.T) {
	d := NewDecoder()
	// button byte 32 (' ') => left button, no modifiers; x=10,y=5 => seq bytes 32+10+1, 32+5+1
	seq := []byte{0x1b, '[', 'M', byte(' '), byte(32 + 10 + 1), byte(32 + 5 + 1)}
	events := d.Decode(seq)
	require.Len(t, events, 1)
	assert.Equal(t, MouseLeftDown, events[0].Kind)
	assert.Equal(t, 10, events[0].X)
	assert.Equal(t, 5, events[0].Y)
}

func TestDecodeSGRMousePressAndRelease(t *testing.T) {
	d := NewDecoder()
	press := d.Decode([]byte("\x1b[<0;11;6M"))
	require.Len(t, press, 1)
	assert.Equal(t, MouseLeftDown, press[0].Kind)
	assert.Equal(t, 10, press[0].X)
	assert.Equal(t, 5, press[0].Y)

	release := d.Decode([]byte("\x1b[<0;11;6m"))
	require.Len(t, release, 1)
	assert.Equal(t, MouseLeftUp, release[0].Kind)
}

func TestDecodeX10ScrollWheel(t *testing.T) {
	d := NewDecoder()
	up := d.Decode([]byte{0x1b, '[', 'M', byte(0x40 + 32), byte(32 + 10 + 1), byte(32 + 5 + 1)})
	require.Len(t, up, 1)
	assert.Equal(t, ScrollUp, up[0].Kind)

	down := d.Decode([]byte{0x1b, '[', 'M', byte(0x41 + 32), byte(32 + 10 + 1), byte(32 + 5 + 1)})
	require.Len(t, down, 1)
	assert.Equal(t, ScrollDown, down[0].Kind)
}

func TestDecodeSGRScrollWheel(t *testing.T) {
	d := NewDecoder()
	up := d.Decode([]byte("\x1b[<64;11;6M"))
	require.Len(t, up, 1)
	assert.Equal(t, ScrollUp, up[0].Kind)

	down := d.Decode([]byte("\x1b[<65;11;6M"))
	require.Len(t, down, 1)
	assert.Equal(t, ScrollDown, down[0].Kind)
}

func TestDecodeSkipsMalformedSequenceAndResumes(t *testing.T) {
	d := NewDecoder()
	// A truncated CSI ("\x1b[" with nothing after) followed by a clean
	// printable byte: the malformed prefix is skipped one byte at a
	// time and decoding resumes at the next boundary.
	events := d.Decode([]byte{0x1b, '[', 'a'})
	require.NotEmpty(t, events)
	assert.Equal(t, KeyPress, events[len(events)-1].Kind)
	assert.Equal(t, 'a', events[len(events)-1].Rune)
}
