package compose

import (
	"cellscape/cell"
	"cellscape/element"
)

// Render runs the full compose pass starting at root: dynamic-size
// propagation, then the stain-driven per-element algorithm recursively,
// returning root's finished buffer. Call element.Tree's root through
// this after every render ticket (spec 4.4).
func Render(root *element.Element) []cell.Cell {
	ComputeDynamicSize(root)
	renderElement(root, false)
	detectIdenticalFrame(root)
	return root.RenderBuffer
}

// renderElement implements spec 4.4's per-element algorithm. forceStretch
// is set by a parent that just resized, so percentage/additive
// children re-resolve their own extents even though nothing directly
// marked them dirty.
func renderElement(e *element.Element, forceStretch bool) {
	// Step 1: re-resolve dynamic width/height/position against the
	// parent's current content context, so a percentage/additive child
	// tracks a resized parent instead of staying pinned to whatever it
	// resolved to at Embed time.
	e.Reresolve()

	if forceStretch {
		e.Stain.Set(element.StainStretch)
	}

	// Step 2: list-view-like widgets recompute their child hitboxes
	// every pass, independent of stain (spec 4.4).
	if e.RecomputeHitboxes != nil {
		e.RecomputeHitboxes()
	}

	if e.Stain.IsClean() && !e.ChildrenChanged() {
		return
	}

	if e.Stain.Has(element.StainMove) {
		e.Stain.Clear(element.StainMove)
		e.RecomputeAbsolutePosition()
	}

	wasStretched := e.Stain.Has(element.StainStretch)
	if wasStretched {
		e.Stain.Clear(element.StainStretch)
	}

	if e.Stain.Has(element.StainReset) {
		e.Stain.Clear(element.StainReset)
		resetBuffer(e)
	}

	if e.Stain.Has(element.StainColor) {
		e.Stain.Clear(element.StainColor)
		paintColors(e)
	}

	if e.Stain.Has(element.StainDeep) {
		e.Stain.Clear(element.StainDeep)
		renderChildren(e, wasStretched)
	}

	needsEdge := e.Stain.Has(element.StainEdge)
	if e.Style.Border && hasBorderedChild(e) {
		needsEdge = true
	}
	if needsEdge {
		e.Stain.Clear(element.StainEdge)
		paintBorder(e)
	}

	// Border stitching runs on every pass that gets past the clean check
	// above, whether or not EDGE was set (spec 4.4 step 11): a child
	// border can need its junction glyph refreshed even when e's own
	// border did not redraw. Only each bordered child is stitched against
	// e's own border; borders of sibling children are not stitched
	// against each other.
	stitchChildBorders(e)
}

func resetBuffer(e *element.Element) {
	n := e.Width * e.Height
	if n < 0 {
		n = 0
	}
	if len(e.RenderBuffer) != n {
		e.RenderBuffer = make([]cell.Cell, n)
	}
	for i := range e.RenderBuffer {
		e.RenderBuffer[i] = cell.Default
	}
}

func paintColors(e *element.Element) {
	fg := e.Style.ComposeText(e.Focused, e.Hovered)
	bg := e.Style.ComposeBackground(e.Focused, e.Hovered)
	for i := range e.RenderBuffer {
		e.RenderBuffer[i].Foreground = fg
		e.RenderBuffer[i].Background = bg
	}
}

func renderChildren(e *element.Element, parentStretched bool) {
	for _, child := range e.Children() {
		if !child.EffectivelyVisible() {
			continue
		}
		renderElement(child, parentStretched)
		nestInto(e, child)
	}
}

func nestInto(parent, child *element.Element) {
	localX, localY := child.LocalPosition()
	buf, bw, bh := child.RenderBuffer, child.Width, child.Height

	if child.Style.HasPostProcess() {
		originX, originY := ApplyPostProcess(child)
		buf, bw, bh = child.PostProcessBuffer, child.PostProcessWidth, child.PostProcessHeight
		localX -= originX
		localY -= originY
	}

	area := ComputeFittingArea(parent, child.Style.Border, localX, localY, bw, bh)
	bo := area.BorderOffset
	for y := area.Start[1]; y < area.End[1]; y++ {
		for x := area.Start[0]; x < area.End[0]; x++ {
			sx := x - localX - bo
			sy := y - localY - bo
			if sx < 0 || sx >= bw || sy < 0 || sy >= bh {
				continue
			}
			dstIdx := y*parent.Width + x
			parent.RenderBuffer[dstIdx] = ComputeAlphaToNesting(parent.RenderBuffer[dstIdx], buf[sy*bw+sx])
		}
	}
}

func hasBorderedChild(e *element.Element) bool {
	for _, c := range e.Children() {
		if c.Style.Border && c.EffectivelyVisible() {
			return true
		}
	}
	return false
}

func detectIdenticalFrame(root *element.Element) {
	identical := len(root.PrevFrame) == len(root.RenderBuffer)
	if identical {
		for i := range root.RenderBuffer {
			if root.RenderBuffer[i] != root.PrevFrame[i] {
				identical = false
				break
			}
		}
	}
	root.SetIdenticalFrame(identical)
	root.PrevFrame = append(root.PrevFrame[:0], root.RenderBuffer...)
}
