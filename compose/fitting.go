// Package compose implements the single-element render algorithm (spec
// 4.4): stain-driven buffer maintenance, child nesting with alpha
// compositing, shadow/opacity post-processing (4.5), and border
// stitching (4.6).
package compose

import "cellscape/element"

// Rect is a plain integer rectangle in some buffer's local coordinates.
type Rect struct {
	X, Y, W, H int
}

// FittingArea is the result of getFittingArea (spec 4.4): where, in the
// parent's own buffer, a child's (possibly post-processed) buffer
// should be sampled and drawn, after accounting for the parent's
// border inset and the child's own negative-position or overflow
// clipping.
type FittingArea struct {
	// BorderOffset is 1 when the parent draws a border the child's
	// content box must be inset from, 0 otherwise.
	BorderOffset int
	// Start/End bound the drawable intersection in parent-local
	// coordinates: [Start, End) on each axis.
	Start, End [2]int
	// NegOffset is how many cells of the child's top-left were clipped
	// off by a negative local position, before sampling its buffer.
	NegOffset [2]int
}

// ComputeFittingArea computes the drawable intersection of a child (or
// post-processed child) buffer of size bufW x bufH, placed at
// (localX, localY) in parent's local coordinates, against parent's own
// content box.
func ComputeFittingArea(parent *element.Element, childBordered bool, localX, localY, bufW, bufH int) FittingArea {
	bo := 0
	if parent.Style.Border && !childBordered {
		bo = 1
	}

	negX, negY := 0, 0
	if localX < 0 {
		negX = -localX
	}
	if localY < 0 {
		negY = -localY
	}

	startX := localX + bo
	if startX < bo {
		startX = bo
	}
	startY := localY + bo
	if startY < bo {
		startY = bo
	}

	endX := localX + bo + bufW
	endY := localY + bo + bufH

	maxX, maxY := parent.Width, parent.Height
	if !parent.Style.AllowOverflow {
		maxX -= bo
		maxY -= bo
	}
	if endX > maxX {
		endX = maxX
	}
	if endY > maxY {
		endY = maxY
	}
	if startX < 0 {
		startX = 0
	}
	if startY < 0 {
		startY = 0
	}

	return FittingArea{
		BorderOffset: bo,
		Start:        [2]int{startX, startY},
		End:          [2]int{endX, endY},
		NegOffset:    [2]int{negX, negY},
	}
}
