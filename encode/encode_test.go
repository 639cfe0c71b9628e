package encode

import (
	"bytes"
	"testing"

	"cellscape/cell"
	"cellscape/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarkStartEndSingleRun(t *testing.T) {
	buf := []cell.Cell{cell.New('a'), cell.New('b'), cell.New('c')}
	MarkStartEnd(buf)

	assert.NotZero(t, buf[0].Flags&cell.FlagStart)
	assert.Zero(t, buf[1].Flags&cell.FlagStart)
	assert.Zero(t, buf[1].Flags&cell.FlagEnd)
	assert.NotZero(t, buf[2].Flags&cell.FlagEnd)
}

func TestMarkStartEndEveryCellDiffers(t *testing.T) {
	buf := make([]cell.Cell, 3)
	for i := range buf {
		buf[i] = cell.New('x')
		buf[i].Foreground = color.New(uint8(i*50), 0, 0)
	}
	MarkStartEnd(buf)
	for i, c := range buf {
		assert.NotZerof(t, c.Flags&cell.FlagStart, "cell %d should have START", i)
		assert.NotZerof(t, c.Flags&cell.FlagEnd, "cell %d should have END", i)
	}
}

// TestEncodeHardOverwriteScenarioS1 mirrors spec scenario S1: a 3x1 row
// "a b a" where the middle cell's colors differ from both neighbors,
// so the encoded stream carries exactly three color blocks.
func TestEncodeHardOverwriteScenarioS1(t *testing.T) {
	a := cell.New('a')
	a.Foreground = color.New(10, 10, 10)
	a.Background = color.NewA(0, 0, 0, 255)

	b := cell.New('b')
	b.Foreground = color.New(0, 0, 0)
	b.Background = color.NewA(20, 20, 20, 255)

	buf := []cell.Cell{a, b, a}
	c := NewCache(3, 1)
	out := c.Encode(buf, 3, 1, true)

	require.NotEmpty(t, out)
	assert.Equal(t, 3, bytes.Count(out, []byte("\x1b[38;2;")), "one color block start per START cell")
	assert.Contains(t, string(out), "a")
	assert.Contains(t, string(out), "b")
}

func TestEncodeInsertsNewlinePerRowWhenWordWrapDisabled(t *testing.T) {
	buf := make([]cell.Cell, 4)
	for i := range buf {
		buf[i] = cell.New(' ')
	}
	c := NewCache(2, 2)
	out := c.Encode(buf, 2, 2, false)
	assert.Equal(t, 2, bytes.Count(out, []byte("\n")))
}

func TestEncodeOmitsNewlineWhenWordWrapEnabled(t *testing.T) {
	buf := make([]cell.Cell, 4)
	for i := range buf {
		buf[i] = cell.New(' ')
	}
	c := NewCache(2, 2)
	out := c.Encode(buf, 2, 2, true)
	assert.Equal(t, 0, bytes.Count(out, []byte("\n")))
}

func TestEncodeCacheReusesBackingArrayAcrossFrames(t *testing.T) {
	c := NewCache(2, 1)
	buf := []cell.Cell{cell.New('x'), cell.New('y')}

	first := c.Encode(buf, 2, 1, true)
	firstLen := len(first)

	second := c.Encode(buf, 2, 1, true)
	assert.Equal(t, firstLen, len(second))
	assert.Equal(t, first, second)
}
