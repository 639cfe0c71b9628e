package element

import (
	"testing"

	"cellscape/style"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddChildSetsParentAndFinalizes(t *testing.T) {
	tr := NewTree(20, 10, nil)
	child := New("child")
	child.Style.SetWidth(style.Abs(5))
	child.Style.SetHeight(style.Abs(3))

	err := tr.Root.AddChild(child)
	require.NoError(t, err)

	assert.Equal(t, tr.Root, child.Parent)
	assert.False(t, child.Stain.Has(StainFinalize))
	assert.True(t, tr.Root.Stain.Has(StainDeep))

	found, ok := tr.Names.Lookup("child")
	assert.True(t, ok)
	assert.Equal(t, child, found)
}

func TestRemoveTransfersHoverNotFocusToParent(t *testing.T) {
	tr := NewTree(20, 10, nil)
	child := New("child")
	require.NoError(t, tr.Root.AddChild(child))
	child.Focused = true

	ok := tr.Root.Remove(child)
	assert.True(t, ok)
	assert.True(t, tr.Root.Hovered, "the original relocates the mouse onto the parent rather than auto-focusing it")
	assert.False(t, tr.Root.Focused, "focus goes back to nobody, matching the original's Focused_On reset")
	assert.Nil(t, child.Parent)
	assert.Empty(t, tr.Root.Children())
}

func TestDisplayCascadesVisibilityOnlyOnTarget(t *testing.T) {
	tr := NewTree(20, 10, nil)
	child := New("child")
	require.NoError(t, tr.Root.AddChild(child))

	tr.Root.Display(false)
	assert.False(t, tr.Root.Visible)
	assert.True(t, child.Visible, "child's own flag is untouched by parent Display")
	assert.False(t, child.EffectivelyVisible(), "but it is not effectively visible while an ancestor is hidden")

	tr.Root.Display(true)
	assert.True(t, child.EffectivelyVisible())
}

func TestDynamicSizeGrowsParent(t *testing.T) {
	tr := NewTree(10, 10, nil)
	tr.Root.Style.AllowDynamicSize = true

	c1 := New("c1")
	c1.Style.SetWidth(style.Abs(15))
	c1.Style.SetHeight(style.Abs(12))
	require.NoError(t, tr.Root.AddChild(c1))
	assert.Equal(t, 15, tr.Root.Width)
	assert.Equal(t, 12, tr.Root.Height)

	c2 := New("c2")
	c2.Style.PosX = style.Abs(20)
	c2.Style.SetWidth(style.Abs(5))
	c2.Style.SetHeight(style.Abs(5))
	require.NoError(t, tr.Root.AddChild(c2))
	assert.Equal(t, 25, tr.Root.Width)
}

func TestAddChildRejectsSelf(t *testing.T) {
	tr := NewTree(10, 10, nil)
	err := tr.Root.AddChild(tr.Root)
	assert.Error(t, err)
}
