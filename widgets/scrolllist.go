package widgets

import (
	"cellscape/cell"
	"cellscape/element"
	"cellscape/style"
	"github.com/gravitational/trace"
)

// Hitbox is one row's hit-test rectangle in absolute terminal
// coordinates, recomputed every render pass by RecomputeHitboxes
// (spec 4.4 step 2) so it always matches the row's current on-screen
// position even while nothing else about the list redrew.
type Hitbox struct {
	Index      int
	X, Y, W, H int
}

// ScrollList is the C13 exemplar: a container that stacks children
// along a flow direction and exposes a scroll offset, cooperating with
// dirty-region propagation by touching only the rows whose position
// actually changed. Grounded on the original's listView/scrollView
// pair (src/elements/listView.cpp): addChild there walks the flow
// direction to append the new child immediately after the last one,
// growing the container when dynamic sizing is allowed, which is the
// same layout this type performs in Go.
type ScrollList struct {
	Host   *element.Element
	flow   style.Flow
	items  []*element.Element
	extent []int // each item's extent along the flow axis, parallel to items
	offset int

	hitboxes []Hitbox
}

// NewScrollList builds an empty list sized w x h, stacking children
// along flow inside host: top-to-bottom for FlowColumn, left-to-right
// otherwise.
func NewScrollList(name string, w, h int, flow style.Flow) *ScrollList {
	host := element.New(name)
	host.Style.SetWidth(style.Abs(float64(w)))
	host.Style.SetHeight(style.Abs(float64(h)))
	host.Style.Flow = flow
	// Embed against these fixed dimensions right away so Width/Height
	// (and so containerExtent/maxOffset) are correct even before the
	// list is attached to a parent tree; AddChild sees FINALIZE already
	// cleared and skips re-embedding.
	host.Embed(style.Context{Width: w, Height: h})

	l := &ScrollList{Host: host, flow: flow}
	host.RecomputeHitboxes = l.recomputeHitboxes
	return l
}

// AddItem appends child to the end of the flow, stacking it right
// after the previous last item, and attaches it to Host.
func (l *ScrollList) AddItem(child *element.Element, extent int) error {
	if extent <= 0 {
		return trace.BadParameter("list item %q needs a positive extent", child.Name)
	}

	pos := l.contentExtent()
	if l.flow == style.FlowColumn {
		child.SetPosition(0, pos-l.offset)
	} else {
		child.SetPosition(pos-l.offset, 0)
	}

	if err := l.Host.AddChild(child); err != nil {
		return trace.Wrap(err, "adding item %q to list %q", child.Name, l.Host.Name)
	}

	l.items = append(l.items, child)
	l.extent = append(l.extent, extent)
	return nil
}

func (l *ScrollList) contentExtent() int {
	total := 0
	for _, e := range l.extent {
		total += e
	}
	return total
}

func (l *ScrollList) containerExtent() int {
	if l.flow == style.FlowColumn {
		return l.Host.Height
	}
	return l.Host.Width
}

// maxOffset is the largest scroll offset that still leaves the last
// item's bottom/right edge flush with (not past) the container's far
// edge minus the border inset — "scrolling beyond container.extent -
// lastChild.extent - border_offset is a no-op" (spec 8.).
func (l *ScrollList) maxOffset() int {
	if len(l.items) == 0 {
		return 0
	}
	lastExtent := l.extent[len(l.extent)-1]
	base := l.contentExtent() - lastExtent
	bound := l.containerExtent() - lastExtent - l.Host.Style.BorderOffset()
	max := base - bound
	if max < 0 {
		return 0
	}
	return max
}

// ScrollBy adjusts the scroll offset by delta (positive scrolls the
// content up/left, revealing later items), clamped to [0, maxOffset].
// When the clamped offset equals the current one nothing is
// repositioned; otherwise every item moves to its new place.
func (l *ScrollList) ScrollBy(delta int) {
	next := l.offset + delta
	if next < 0 {
		next = 0
	}
	if max := l.maxOffset(); next > max {
		next = max
	}
	if next == l.offset {
		return
	}
	l.offset = next
	l.reflow()
}

func (l *ScrollList) reflow() {
	pos := -l.offset
	for i, item := range l.items {
		if l.flow == style.FlowColumn {
			item.SetPosition(0, pos)
		} else {
			item.SetPosition(pos, 0)
		}
		pos += l.extent[i]
	}
	requestRepaint(l.Host)
}

// recomputeHitboxes is wired to Host.RecomputeHitboxes and runs on
// every render pass regardless of stain (spec 4.4 step 2), keeping the
// index-to-rectangle mapping in sync with scroll offset and flow
// layout for HitTest callers (e.g. focus dispatch's click handling).
func (l *ScrollList) recomputeHitboxes() {
	l.hitboxes = l.hitboxes[:0]
	x, y, w, h := l.Host.Bounds()
	for i, item := range l.items {
		ix, iy, iw, ih := item.Bounds()
		if ix+iw <= x || ix >= x+w || iy+ih <= y || iy >= y+h {
			continue // entirely scrolled out of view
		}
		l.hitboxes = append(l.hitboxes, Hitbox{Index: i, X: ix, Y: iy, W: iw, H: ih})
	}
}

// HitTest returns the item index whose on-screen rectangle contains
// (x, y), or false if none does (including rows scrolled out of view).
func (l *ScrollList) HitTest(x, y int) (int, bool) {
	for _, hb := range l.hitboxes {
		if x >= hb.X && x < hb.X+hb.W && y >= hb.Y && y < hb.Y+hb.H {
			return hb.Index, true
		}
	}
	return 0, false
}

// Len reports the number of items currently in the list.
func (l *ScrollList) Len() int { return len(l.items) }

// appendRow is a convenience used by CodeView to add a single-height
// pre-rendered content row built from cells.
func (l *ScrollList) appendRow(name string, w, h int, cells []cell.Cell) error {
	row := newContentLeaf(name, w, h, cell.Default)
	copy(row.RenderBuffer, cells)
	return l.AddItem(row, h)
}
