package element

import (
	"cellscape/cell"
	"cellscape/style"
)

// Element is a retained tree node (spec 3.). The parent pointer is a
// non-owning navigation reference (Design Notes §9): ownership flows
// strictly parent -> children via the Children slice, and Parent is
// cleared when the element is destroyed.
type Element struct {
	Name   string
	Parent *Element

	children []*Element
	Style    style.Style
	Stain    Stain

	Visible bool
	Focused bool
	Hovered bool

	// AbsoluteX/Y is the cached absolute position, valid unless MOVE is
	// set (spec 3. "absolute-position cache").
	AbsoluteX, AbsoluteY int

	// Width/Height are the last-resolved content extents; RenderBuffer
	// is sized Width*Height whenever Stain is CLEAN (spec 8.).
	Width, Height int
	RenderBuffer  []cell.Cell

	// resolvedLocalX/Y cache the last value PosX/PosY resolved to
	// against the parent's content context, so Reresolve can tell a
	// percentage/additive position actually changed instead of
	// re-dirtying MOVE every pass.
	resolvedLocalX, resolvedLocalY int

	PostProcessBuffer                   []cell.Cell
	PostProcessWidth, PostProcessHeight int

	// PrevFrame is the last frame this element (the root, in practice)
	// produced, kept around only to let compose detect an identical
	// frame and skip the terminal write (spec 4.4 step 4).
	PrevFrame []cell.Cell

	OnInit    func(*Element)
	OnDestroy func(*Element)
	OnShow    func(*Element)
	OnHide    func(*Element)

	// RecomputeHitboxes, when set, is called by compose on every render
	// pass regardless of stain — the carve-out spec 4.4 step 2 makes
	// for list-view-like widgets that keep their own per-row hit
	// regions in sync with scroll offset and child layout. Left nil,
	// an ordinary element has nothing to do here.
	RecomputeHitboxes func()

	// identicalFrame is set by Render when the root element produced a
	// buffer identical to the previous frame, letting the render
	// thread skip the terminal write (spec 4.4 step 4).
	identicalFrame bool

	// index and notify are inherited from the root the moment an
	// element joins a live tree (see Tree in tree.go); they are nil for
	// a detached element.
	index  *NameIndex
	notify func()
}

// New builds a detached element with FINALIZE set (spec 3. invariant
// a: "a newly constructed element has FINALIZE set until its styles
// are embedded against a parent context").
func New(name string) *Element {
	e := &Element{
		Name:    name,
		Style:   style.Default(),
		Visible: true,
	}
	e.Stain.Set(StainFinalize)
	return e
}

// Children returns the live child slice (callers must not retain it
// across structural mutation).
func (e *Element) Children() []*Element { return e.children }

// IsFinalized reports whether the element has been embedded against a
// parent context at least once.
func (e *Element) IsFinalized() bool { return !e.Stain.Has(StainFinalize) }

// contentContext returns the style.Context this element's children
// resolve percentage/additive properties against: this element's own
// current content extents.
func (e *Element) contentContext() style.Context {
	return style.Context{Width: e.Width, Height: e.Height}
}

// RecomputeAbsolutePosition implements spec 4.4 step 5: "absolute
// position = parent.absolute_position + self.position".
func (e *Element) RecomputeAbsolutePosition() {
	localX := e.resolvedX()
	localY := e.resolvedY()
	if e.Parent != nil {
		e.AbsoluteX = e.Parent.AbsoluteX + localX
		e.AbsoluteY = e.Parent.AbsoluteY + localY
	} else {
		e.AbsoluteX = localX
		e.AbsoluteY = localY
	}
}

// Bounds returns the element's absolute-coordinate rectangle, used by
// focus/hover hit-testing (spec 4.12 "collides").
func (e *Element) Bounds() (x, y, w, h int) {
	return e.AbsoluteX, e.AbsoluteY, e.Width, e.Height
}
