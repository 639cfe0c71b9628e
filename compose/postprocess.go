package compose

import (
	"math"

	"cellscape/cell"
	"cellscape/element"
	"cellscape/style"
)

// ApplyPostProcess builds e.PostProcessBuffer from e.RenderBuffer per
// spec 4.5: a drop shadow (if enabled) grown to the left/right/up/down
// by a length proportional to the shadow's Z depth and decaying
// geometrically inward, followed by scaling every cell's alpha channel
// by the element's opacity. It returns the offset, in the element's own
// content-local coordinates, of where the original content buffer now
// sits inside PostProcessBuffer — the caller adds this to the element's
// local position before nesting into its parent.
func ApplyPostProcess(e *element.Element) (originX, originY int) {
	w, h := e.Width, e.Height
	sh := e.Style.Shadow
	dx, dy := 0, 0
	l := 0
	if sh.Enabled {
		dx, dy = sh.Direction.X, sh.Direction.Y
		l = int(math.Round(float64(sh.Direction.Z) * clamp01(sh.Opacity)))
	}

	minX := min(0, dx-l)
	maxX := max(w, dx+w+l)
	minY := min(0, dy-l)
	maxY := max(h, dy+h+l)
	originX, originY = -minX, -minY
	boxW, boxH := maxX-minX, maxY-minY

	buf := make([]cell.Cell, boxW*boxH)

	if sh.Enabled && l > 0 {
		paintShadowRing(buf, boxW, boxH, dx-minX, dy-minY, w, h, l, sh)
	}

	contentX, contentY := originX, originY
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			buf[(contentY+y)*boxW+(contentX+x)] = e.RenderBuffer[y*w+x]
		}
	}

	opacity := e.Style.Opacity
	if opacity < 1.0 {
		for i := range buf {
			buf[i].Foreground = buf[i].Foreground.ScaleAlpha(opacity)
			buf[i].Background = buf[i].Background.ScaleAlpha(opacity)
		}
	}

	e.PostProcessBuffer = buf
	e.PostProcessWidth, e.PostProcessHeight = boxW, boxH
	return originX, originY
}

// paintShadowRing fills an L-cell ring around the content rect (placed
// at (ringX, ringY) in buf, sized w x h) with the shadow color, its
// alpha decaying geometrically ring by ring, outermost ring first, by
// a factor capped at 0.9 (spec 4.5).
func paintShadowRing(buf []cell.Cell, boxW, boxH, ringX, ringY, w, h, l int, sh style.Shadow) {
	k := sh.Opacity
	if k > 0.9 {
		k = 0.9
	}
	base := clamp01(sh.Opacity) * 255.0

	for i := 0; i < l; i++ {
		// Ring i is the rectangle inset by i cells from the outermost
		// shadow boundary; alpha decays geometrically as i grows, so the
		// outermost ring is darkest and the rings fade toward the content.
		inset := i
		x0, y0 := ringX-l+inset, ringY-l+inset
		x1, y1 := ringX+w+l-1-inset, ringY+h+l-1-inset
		alpha := uint8(math.Round(base * math.Pow(k, float64(i))))
		if alpha == 0 {
			continue
		}
		shadowCell := cell.Default
		shadowCell.Background = sh.Color
		shadowCell.Background.A = alpha
		shadowCell.Foreground = sh.Color
		shadowCell.Foreground.A = alpha

		for x := x0; x <= x1; x++ {
			setShadowCell(buf, boxW, boxH, x, y0, shadowCell)
			setShadowCell(buf, boxW, boxH, x, y1, shadowCell)
		}
		for y := y0; y <= y1; y++ {
			setShadowCell(buf, boxW, boxH, x0, y, shadowCell)
			setShadowCell(buf, boxW, boxH, x1, y, shadowCell)
		}
	}
}

func setShadowCell(buf []cell.Cell, boxW, boxH, x, y int, c cell.Cell) {
	if x < 0 || x >= boxW || y < 0 || y >= boxH {
		return
	}
	buf[y*boxW+x] = c
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
