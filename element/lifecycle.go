package element

import (
	"sort"

	"cellscape/style"
	"github.com/gravitational/trace"
)

// Embed evaluates the element's style against ctx (the parent's
// current content extents, or the terminal size for a parentless
// root) and clears FINALIZE. Re-embedding is idempotent (spec 4.2).
func (e *Element) Embed(ctx style.Context) {
	e.Width = e.Style.ResolvedWidth(ctx)
	e.Height = e.Style.ResolvedHeight(ctx)
	e.resolvedLocalX = e.Style.ResolvedX(ctx)
	e.resolvedLocalY = e.Style.ResolvedY(ctx)
	e.Stain.Clear(StainFinalize)
	e.Stain.Set(StainColor | StainEdge | StainDeep | StainReset)
}

// Reresolve implements spec 4.4 step 1: "re-evaluate dynamic
// dimensions, position, colors, borders; each that changed dirties the
// corresponding stain." Percentage/additive Width/Height/PosX/PosY are
// otherwise only ever resolved once, at Embed time — without this, a
// percentage-sized child never tracks a parent that later grows or
// shrinks (e.g. on SIGWINCH). Called once per render pass, before the
// element's own clean/dirty check, so a change surfaces even when
// nothing else marked the child dirty.
func (e *Element) Reresolve() {
	if e.Parent == nil || e.Stain.Has(StainFinalize) {
		return
	}
	ctx := e.Parent.contentContext()

	if w, h := e.Style.ResolvedWidth(ctx), e.Style.ResolvedHeight(ctx); w != e.Width || h != e.Height {
		e.Width, e.Height = w, h
		e.Stain.Set(StainStretch)
	}

	if x, y := e.Style.ResolvedX(ctx), e.Style.ResolvedY(ctx); x != e.resolvedLocalX || y != e.resolvedLocalY {
		e.resolvedLocalX, e.resolvedLocalY = x, y
		e.Stain.Set(StainMove)
	}
}

// AddChild links child under e per spec 4.3:
//  1. finalize the child against e's content context if it has never
//     been embedded;
//  2. grow e (if dynamic) or shrink-to-fit the child, aborting if
//     neither is possible;
//  3. mark e DEEP;
//  4. register the child's name;
//  5. append and stable-sort children by Z ascending (painter's order);
//  6. request a render ticket.
func (e *Element) AddChild(child *Element) error {
	if child == nil {
		return trace.BadParameter("cannot add a nil child")
	}
	if child == e {
		return trace.BadParameter("element cannot be added as its own child")
	}

	child.Parent = e
	child.index = e.index
	child.notify = e.notify

	if child.Stain.Has(StainFinalize) {
		child.Embed(e.contentContext())
	}

	childRight := child.resolvedX() + child.Width + 2*child.Style.BorderOffset()
	childBottom := child.resolvedY() + child.Height + 2*child.Style.BorderOffset()
	exceeds := childRight > e.Width || childBottom > e.Height

	if exceeds && e.Style.AllowDynamicSize {
		if childRight > e.Width {
			e.Width = childRight
		}
		if childBottom > e.Height {
			e.Height = childBottom
		}
		e.Style.Width = style.Abs(float64(e.Width))
		e.Style.Height = style.Abs(float64(e.Height))
		e.Stain.Set(StainStretch)
	} else if exceeds && !e.Style.AllowOverflow {
		if err := child.resizeTo(e); err != nil {
			return trace.Wrap(err, "child %q does not fit in parent %q", child.Name, e.Name)
		}
	}

	e.Stain.Set(StainDeep)

	if e.index != nil {
		if err := e.index.Insert(child.Name, child); err != nil {
			return trace.Wrap(err)
		}
	}

	e.children = append(e.children, child)
	sort.SliceStable(e.children, func(i, j int) bool {
		return e.children[i].resolvedZ() < e.children[j].resolvedZ()
	})

	e.requestRender()
	return nil
}

// resizeTo shrinks child to fit within parent's content box. It
// returns an error only when the child cannot be given any positive
// extent at all — a genuine invariant violation rather than ordinary
// clipping (clipping itself is compose's job, not addChild's).
func (child *Element) resizeTo(parent *Element) error {
	maxW := parent.Width - 2*parent.Style.BorderOffset()
	maxH := parent.Height - 2*parent.Style.BorderOffset()
	if maxW <= 0 || maxH <= 0 {
		return trace.BadParameter("parent has no content area to resize into")
	}
	if child.Width > maxW {
		child.Width = maxW
	}
	if child.Height > maxH {
		child.Height = maxH
	}
	child.Stain.Set(StainStretch)
	return nil
}

// Remove detaches child from e's children by pointer identity. The
// original (element.cpp's remove()) moves the global mouse cursor onto
// the parent's position when the removed element held focus, rather
// than granting the parent focus outright — focus itself just goes
// back to nobody, and the parent only becomes hovered once the next
// dispatch pass re-evaluates the (now relocated) mouse coordinate
// against it. cellscape has no global mouse singleton to relocate, so
// this sets the parent's Hovered flag directly as the nearest
// equivalent; focus is never auto-granted. The child and its
// descendants are destroyed.
func (e *Element) Remove(child *Element) bool {
	idx := -1
	for i, c := range e.children {
		if c == child {
			idx = i
			break
		}
	}
	if idx < 0 {
		return false
	}

	e.children = append(e.children[:idx], e.children[idx+1:]...)

	if child.Focused || child.Hovered {
		e.Hovered = true
	}

	child.destroy()

	e.Stain.Set(StainDeep | StainColor)
	e.requestRender()
	return true
}

// destroy cascades deletion to children, purges the name index, and
// clears focus/hover (spec 3. Element invariant iv).
func (e *Element) destroy() {
	for _, c := range e.children {
		c.destroy()
	}
	e.children = nil

	if e.index != nil {
		e.index.Remove(e.Name)
	}
	if e.OnDestroy != nil {
		e.OnDestroy(e)
	}
	e.Parent = nil
	e.Focused = false
	e.Hovered = false
}

// SetDimensions mutates width/height and marks STRETCH (spec 4.3).
func (e *Element) SetDimensions(w, h int) {
	e.Style.SetWidth(style.Abs(float64(w)))
	e.Style.SetHeight(style.Abs(float64(h)))
	e.Stain.Set(StainStretch)
	e.requestRender()
}

// SetPosition mutates the position style and marks MOVE.
func (e *Element) SetPosition(x, y int) {
	e.Style.PosX = style.Abs(float64(x))
	e.Style.PosY = style.Abs(float64(y))
	e.Stain.Set(StainMove)
	e.requestRender()
}

// Display sets visibility and marks STATE. It only cascades in the
// effective sense: descendants' own Visible field is never touched
// here, only what EffectivelyVisible reports for them by walking up
// through e. Event routing treats hidden descendants as not present,
// but their own Visible flag is left untouched by Display(true) —
// "after display(true) on E without visiting descendants explicitly,
// descendants' visible == true again" because Visible was never
// changed on them in the first place (spec 4.3, spec 8.).
func (e *Element) Display(show bool) {
	wasVisible := e.Visible
	e.Visible = show
	e.Stain.Set(StainState)
	if show && !wasVisible && e.OnShow != nil {
		e.OnShow(e)
	}
	if !show && wasVisible && e.OnHide != nil {
		e.OnHide(e)
	}
	e.requestRender()
}

// EffectivelyVisible reports whether e and every ancestor is visible —
// the "not present" test event routing and rendering use for hidden
// subtrees.
func (e *Element) EffectivelyVisible() bool {
	for n := e; n != nil; n = n.Parent {
		if !n.Visible {
			return false
		}
	}
	return true
}

// ChildrenChanged reports true if any descendant has a non-CLEAN
// stain, letting a render pass skip walking subtrees that have
// nothing to do (spec 4.3).
func (e *Element) ChildrenChanged() bool {
	for _, c := range e.children {
		if !c.Stain.IsClean() || c.ChildrenChanged() {
			return true
		}
	}
	return false
}

func (e *Element) requestRender() {
	if e.notify != nil {
		e.notify()
	} else if e.Parent != nil {
		e.Parent.requestRender()
	}
}

func (e *Element) parentContext() style.Context {
	if e.Parent != nil {
		return e.Parent.contentContext()
	}
	return style.Context{}
}

func (e *Element) resolvedX() int { return e.Style.ResolvedX(e.parentContext()) }
func (e *Element) resolvedY() int { return e.Style.ResolvedY(e.parentContext()) }
func (e *Element) resolvedZ() int { return e.Style.ResolvedZ(e.parentContext()) }

// LocalPosition returns the element's resolved (x, y) in its parent's
// coordinate space, before the absolute-position cache is applied.
// compose uses this to compute nesting fitting areas.
func (e *Element) LocalPosition() (int, int) { return e.resolvedX(), e.resolvedY() }

// ContentContext exports contentContext for compose's dynamic-size pass.
func (e *Element) ContentContext() style.Context { return e.contentContext() }
