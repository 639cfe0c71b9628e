package element

import "cellscape/style"

// Tree owns a root element plus the process-wide name index and the
// render-ticket notifier, matching Design Notes §9's suggestion to
// thread what the source treated as globals through an explicit
// struct instead of package-level singletons.
type Tree struct {
	Root          *Element
	Names         *NameIndex
	RequestRender func()
}

// NewTree builds a root element sized termWidth x termHeight and wires
// it (and every future descendant) to a shared name index and render
// notifier.
func NewTree(termWidth, termHeight int, requestRender func()) *Tree {
	root := New("root")
	t := &Tree{Root: root, Names: NewNameIndex(), RequestRender: requestRender}

	root.index = t.Names
	root.notify = requestRender
	root.Style.SetWidth(style.Abs(float64(termWidth)))
	root.Style.SetHeight(style.Abs(float64(termHeight)))
	root.Embed(style.Context{Width: termWidth, Height: termHeight})
	_ = t.Names.Insert(root.Name, root)

	if root.OnInit != nil {
		root.OnInit(root)
	}
	return t
}

// Resize updates the root's terminal extents (driven by SIGWINCH) and
// marks it STRETCH so the next render reallocates every buffer.
func (t *Tree) Resize(w, h int) {
	t.Root.Style.Width = style.Abs(float64(w))
	t.Root.Style.Height = style.Abs(float64(h))
	t.Root.Stain.Set(StainStretch)
	t.Root.Width = w
	t.Root.Height = h
	if t.RequestRender != nil {
		t.RequestRender()
	}
}

// IdenticalFrame reports whether the root's last render produced a
// byte-identical frame, set by compose.Render on the root element.
func (e *Element) IdenticalFrame() bool { return e.identicalFrame }

// SetIdenticalFrame is called by compose.Render after comparing the
// new root buffer against the previous one.
func (e *Element) SetIdenticalFrame(v bool) { e.identicalFrame = v }
