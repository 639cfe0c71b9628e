package cell

import (
	"testing"

	"cellscape/color"
	"github.com/stretchr/testify/assert"
)

func TestCompactStringLiquefy(t *testing.T) {
	ss := NewSuperString(MaxEncodedLen)
	ss.AddString("abc")
	ss.AddByte('!')
	got := ss.Liquefy(nil)
	assert.Equal(t, "abc!", string(got))
	assert.Equal(t, 4, ss.Len())
}

func TestFastVectorWindow(t *testing.T) {
	v := NewFastVector(4)
	w := v.Window(2)
	w[0] = FromByte('x')
	w[1] = FromByte('y')
	v.ReleaseWindow(2)
	assert.Equal(t, 2, v.Len())
	assert.Equal(t, []CompactString{FromByte('x'), FromByte('y')}, v.Entries())

	// Partial commit: reserve 3, only use 1.
	w2 := v.Window(3)
	w2[0] = FromByte('z')
	v.ReleaseWindow(1)
	assert.Equal(t, 3, v.Len())
}

func TestCellRuneEncoding(t *testing.T) {
	var c Cell
	c.SetRune('€') // 3-byte UTF-8
	assert.True(t, c.Flags&FlagUTF8 != 0)
	assert.Equal(t, []byte("€"), c.Payload())

	c.SetRune('a')
	assert.True(t, c.Flags&FlagASCII != 0)
}

func TestRenderEncodedOmitsColorsWithoutStart(t *testing.T) {
	c := New('a')
	c.Foreground = color.New(10, 10, 10)
	c.Background = color.NewA(0, 0, 0, 255)

	ss := NewSuperString(MaxEncodedLen)
	c.RenderEncoded(ss)
	out := string(ss.Liquefy(nil))
	assert.Equal(t, "a", out, "no START/END set means bare payload")

	c.Flags |= FlagStart | FlagEnd
	ss.Reset()
	c.RenderEncoded(ss)
	out = string(ss.Liquefy(nil))
	assert.Contains(t, out, "\x1b[38;2;10;10;10m")
	assert.Contains(t, out, "\x1b[0m")
}
