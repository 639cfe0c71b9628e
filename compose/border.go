package compose

import (
	"unicode/utf8"

	"cellscape/cell"
	"cellscape/color"
	"cellscape/element"
	"cellscape/style"
)

// paintBorder draws e's own border glyphs around its full buffer rect
// (spec 4.4 step EDGE), then overwrites the top row with a centered
// title if one is set.
func paintBorder(e *element.Element) {
	if !e.Style.Border || e.Width < 2 || e.Height < 2 {
		return
	}
	fg := e.Style.ComposeBorder(e.Focused, e.Hovered)
	bg := e.Style.ComposeBorderBackground(e.Focused, e.Hovered)
	w, h := e.Width, e.Height

	set := func(x, y int, mask style.Connection) {
		r, ok := e.Style.BorderGlyphs.Glyph(mask)
		if !ok {
			return
		}
		idx := y*w + x
		e.RenderBuffer[idx].SetRune(r)
		e.RenderBuffer[idx].Foreground = fg
		e.RenderBuffer[idx].Background = bg
	}

	set(0, 0, style.ConnDown|style.ConnRight)
	set(w-1, 0, style.ConnDown|style.ConnLeft)
	set(0, h-1, style.ConnUp|style.ConnRight)
	set(w-1, h-1, style.ConnUp|style.ConnLeft)
	for x := 1; x < w-1; x++ {
		set(x, 0, style.ConnLeft|style.ConnRight)
		set(x, h-1, style.ConnLeft|style.ConnRight)
	}
	for y := 1; y < h-1; y++ {
		set(0, y, style.ConnUp|style.ConnDown)
		set(w-1, y, style.ConnUp|style.ConnDown)
	}

	if e.Style.Title != "" {
		paintTitle(e, fg, bg)
	}
}

func paintTitle(e *element.Element, fg, bg color.RGBA) {
	title := []rune(e.Style.Title)
	avail := e.Width - 2
	if avail <= 0 {
		return
	}
	if len(title) > avail {
		title = title[:avail]
	}
	start := 1 + (avail-len(title))/2
	for i, r := range title {
		idx := start + i
		e.RenderBuffer[idx].SetRune(r)
		e.RenderBuffer[idx].Foreground = fg
		e.RenderBuffer[idx].Background = bg
	}
}

// stitchChildBorders runs border stitching (spec 4.6) between e's own
// border and each visible bordered child's border: wherever the two
// rectangles' edges cross, the crossing cell is replaced by the
// junction glyph the connection mask calls for, looked up in e's glyph
// table first and in the child's only when e's has none. The child's
// rectangle is taken at its local position with no border inset, which
// is where nesting draws a bordered child (ComputeFittingArea gives a
// bordered child no inset).
func stitchChildBorders(e *element.Element) {
	if !e.Style.Border {
		return
	}
	parentRect := Rect{X: 0, Y: 0, W: e.Width, H: e.Height}
	for _, c := range e.Children() {
		if !c.Style.Border || !c.EffectivelyVisible() {
			continue
		}
		lx, ly := c.LocalPosition()
		childRect := Rect{X: lx, Y: ly, W: c.Width, H: c.Height}
		Stitch(e.RenderBuffer, e.Width, e.Height, parentRect, childRect, e.Style.BorderGlyphs, c.Style.BorderGlyphs)
	}
}

// Stitch overwrites border-crossing cells between rectangles a and b in
// buf (width x height), per spec 4.6. Candidate crossing points are
// a's two x-extremes crossed with b's two y-extremes, and the
// symmetric pair — covering both "a's vertical edge meets b's
// horizontal edge" and "b's vertical edge meets a's horizontal edge".
// Calling Stitch(a, b) or Stitch(b, a) examines the same candidate set
// and the same neighbor glyphs, but the junction glyph is looked up in
// aStyle's table first and in bStyle's only when aStyle has none, so
// with two different glyph tables the written glyph depends on the
// argument order.
func Stitch(buf []cell.Cell, width, height int, a, b Rect, aStyle, bStyle style.BorderStyle) {
	type pt struct{ x, y int }
	var candidates []pt
	for _, x := range [2]int{a.X, a.X + a.W - 1} {
		for _, y := range [2]int{b.Y, b.Y + b.H - 1} {
			candidates = append(candidates, pt{x, y})
		}
	}
	for _, x := range [2]int{b.X, b.X + b.W - 1} {
		for _, y := range [2]int{a.Y, a.Y + a.H - 1} {
			candidates = append(candidates, pt{x, y})
		}
	}

	hasGlyph := func(x, y int) bool {
		if x < 0 || x >= width || y < 0 || y >= height {
			return false
		}
		r, _ := utf8.DecodeRune(buf[y*width+x].Payload())
		return aStyle.HasGlyph(r) || bStyle.HasGlyph(r)
	}

	for _, p := range candidates {
		if p.x < 0 || p.x >= width || p.y < 0 || p.y >= height {
			continue
		}
		var mask style.Connection
		if hasGlyph(p.x, p.y-1) {
			mask |= style.ConnUp
		}
		if hasGlyph(p.x, p.y+1) {
			mask |= style.ConnDown
		}
		if hasGlyph(p.x-1, p.y) {
			mask |= style.ConnLeft
		}
		if hasGlyph(p.x+1, p.y) {
			mask |= style.ConnRight
		}
		if mask == 0 {
			continue
		}
		r, ok := aStyle.Glyph(mask)
		if !ok {
			r, ok = bStyle.Glyph(mask)
		}
		if !ok {
			continue
		}
		buf[p.y*width+p.x].SetRune(r)
	}
}
