package widgets

import (
	"cellscape/cell"
	"cellscape/color"
	"cellscape/element"
)

// NewTextRow builds a single-height pre-rendered content leaf holding
// text in fg on the default background, clipped (not wrapped) to w
// cells. It is the plain-text counterpart to CodeView's tokenized
// rows, and is what logging.Reporter's auto-inserted popup stacks one
// per reported error inside a ScrollList.
func NewTextRow(name string, w int, text string, fg color.RGBA) *element.Element {
	row := blankRow(w)
	for i, r := range text {
		if i >= w {
			break
		}
		c := cell.New(r)
		c.Foreground = fg
		row[i] = c
	}

	leaf := newContentLeaf(name, w, 1, cell.Default)
	copy(leaf.RenderBuffer, row)
	return leaf
}
