// Package encode implements ANSI encoding and liquefaction of a
// composited cell buffer into the byte stream written to the terminal
// (spec 4.7).
package encode

import "cellscape/cell"

// CursorHome is the escape sequence prefixed to every frame before the
// encoded cell stream (spec 4.8/6.).
const CursorHome = "\x1b[H"

// ResetSGR is emitted once on exit to leave the terminal in a clean
// SGR state (spec 6.).
const ResetSGR = "\x1b[0m"

// maxPartsPerCell bounds the number of compact-string fragments a
// single cell's encoded form can expand to: two color blocks (5-part
// head + 5-part value + 1 terminator each = 22), a <=4-byte payload,
// and a reset — rounded up generously so FastVector.Window never has
// to be re-requested mid-cell.
const maxPartsPerCell = 32

// MarkStartEnd implements spec 4.7 steps 1-2 and the corresponding
// testable property (8.): cell i has START iff it is the first cell or
// its (fg,bg) differs from cell i-1's; it has END iff it is the last
// cell or its (fg,bg) differs from cell i+1's.
func MarkStartEnd(buf []cell.Cell) {
	n := len(buf)
	for i := 0; i < n; i++ {
		start := i == 0 || !cell.SameColors(buf[i], buf[i-1])
		end := i == n-1 || !cell.SameColors(buf[i], buf[i+1])

		if start {
			buf[i].Flags |= cell.FlagStart
		} else {
			buf[i].Flags &^= cell.FlagStart
		}
		if end {
			buf[i].Flags |= cell.FlagEnd
		} else {
			buf[i].Flags &^= cell.FlagEnd
		}
	}
}

// Cache is the render thread's reusable scratch buffer: a grow-only
// FastVector of compact-string fragments plus the liquefied byte
// buffer produced from it, both kept across frames so a frame that
// doesn't change the grid's dimensions allocates nothing (spec 4.7
// paragraph 2, 5.'s "encoder's scratch vector is owned by the render
// thread and reused across frames").
type Cache struct {
	scratch *cell.FastVector
	out     []byte
}

// NewCache preallocates a scratch vector sized for a width x height
// grid: worst case maxPartsPerCell fragments per cell, plus one
// optional newline fragment per row.
func NewCache(width, height int) *Cache {
	capacity := width*height*maxPartsPerCell + height
	if capacity < 0 {
		capacity = 0
	}
	return &Cache{scratch: cell.NewFastVector(capacity)}
}

// Encode runs the full spec 4.7 pipeline over buf (a width x height
// grid in row-major order) and returns the liquefied byte stream,
// reusing the cache's backing arrays whenever the resulting size
// matches the previous frame's.
func (c *Cache) Encode(buf []cell.Cell, width, height int, wordWrap bool) []byte {
	MarkStartEnd(buf)
	c.scratch.Reset()

	for row := 0; row < height; row++ {
		for col := 0; col < width; col++ {
			cl := buf[row*width+col]
			window := c.scratch.Window(maxPartsPerCell)
			ss := cell.NewSuperStringOverWindow(window)
			cl.RenderEncoded(ss)
			c.scratch.ReleaseWindow(ss.PartCount())
		}
		if !wordWrap {
			c.scratch.Append(cell.FromByte('\n'))
		}
	}

	c.out = c.scratch.Liquefy(c.out)
	return c.out
}
