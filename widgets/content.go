// Package widgets implements the scroll-capable list view exemplar
// (spec 4.4's "list-view-like widgets" carve-out, C13) plus the
// supplemental animated canvas and syntax-highlighted code view
// (SPEC_FULL.md 12).
package widgets

import (
	"cellscape/cell"
	"cellscape/element"
	"cellscape/style"
)

// newContentLeaf builds a detached leaf element pre-sized to w x h and
// pre-filled with fill, with its render buffer already allocated and
// its stain left CLEAN. Widgets that manage their own pixels directly
// (the animated canvas, code view rows, list rows) use this instead of
// letting compose's ordinary RESET/COLOR steps own the buffer, since
// those steps would overwrite per-cell styling with a single uniform
// foreground/background.
func newContentLeaf(name string, w, h int, fill cell.Cell) *element.Element {
	e := element.New(name)
	e.Style.SetWidth(style.Abs(float64(w)))
	e.Style.SetHeight(style.Abs(float64(h)))
	e.Embed(style.Context{Width: w, Height: h})

	buf := make([]cell.Cell, w*h)
	for i := range buf {
		buf[i] = fill
	}
	e.RenderBuffer = buf
	e.Stain.Clear(element.StainReset | element.StainColor | element.StainEdge | element.StainDeep)
	return e
}

// requestRepaint marks every ancestor of e DEEP (so each level's
// render pass re-walks and re-nests its children, rather than only the
// one directly above e) and nudges e itself through its own exported
// SetPosition so the mutation reaches the render thread the normal way
// (element.requestRender bubbles parent-to-parent on every public
// mutator). Leaf widgets that overwrite their RenderBuffer directly,
// bypassing the stain-driven COLOR step, call this afterward.
func requestRepaint(e *element.Element) {
	for n := e; n != nil; n = n.Parent {
		n.Stain.Set(element.StainDeep)
	}
	x, y := e.LocalPosition()
	e.SetPosition(x, y)
}
