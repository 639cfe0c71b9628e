package compose

import (
	"testing"

	"cellscape/cell"
	"cellscape/color"
	"cellscape/element"
	"cellscape/style"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderPaintsColorsAcrossFullBuffer(t *testing.T) {
	tr := element.NewTree(6, 3, nil)
	tr.Root.Style.BackgroundColor = style.NewColorProperty(color.Red)

	buf := Render(tr.Root)
	require.Len(t, buf, 18)
	for _, c := range buf {
		assert.True(t, color.Equal(c.Background, color.Red))
	}
}

func TestRenderNestsChildOpaquely(t *testing.T) {
	tr := element.NewTree(10, 5, nil)
	child := element.New("child")
	child.Style.SetWidth(style.Abs(3))
	child.Style.SetHeight(style.Abs(2))
	child.Style.BackgroundColor = style.NewColorProperty(color.Blue)
	require.NoError(t, tr.Root.AddChild(child))

	Render(tr.Root)
	assert.True(t, color.Equal(tr.Root.RenderBuffer[0].Background, color.Blue))
}

func TestRenderIdenticalFrameDetection(t *testing.T) {
	tr := element.NewTree(4, 2, nil)
	Render(tr.Root)
	assert.False(t, tr.Root.IdenticalFrame(), "the very first frame has no predecessor to match")

	Render(tr.Root)
	assert.True(t, tr.Root.IdenticalFrame(), "nothing changed, so the second pass reproduces the first frame")

	tr.Root.Style.BackgroundColor = style.NewColorProperty(color.Green)
	tr.Root.Stain.Set(element.StainColor)
	Render(tr.Root)
	assert.False(t, tr.Root.IdenticalFrame())
}

func TestRenderDrawsBorderCorners(t *testing.T) {
	tr := element.NewTree(5, 4, nil)
	tr.Root.Style.Border = true
	Render(tr.Root)

	topLeft, ok := style.Single.Glyph(style.ConnDown | style.ConnRight)
	require.True(t, ok)
	assert.Equal(t, string(topLeft), string(tr.Root.RenderBuffer[0].Payload()))
}

func TestComputeAlphaToNestingBlendsPartialOpacity(t *testing.T) {
	dest := cell.New(' ')
	dest.Background = color.Black

	src := cell.New(' ')
	src.Background = color.White
	src.Background.A = 128

	blended := ComputeAlphaToNesting(dest, src)
	assert.Less(t, blended.Background.R, uint8(255))
	assert.Greater(t, blended.Background.R, uint8(0))
}

func TestComputeAlphaToNestingFullOpacityOverwrites(t *testing.T) {
	dest := cell.New(' ')
	dest.Background = color.Black
	src := cell.New('x')
	src.Background = color.White

	blended := ComputeAlphaToNesting(dest, src)
	assert.True(t, color.Equal(blended.Background, color.White))
	assert.Equal(t, "x", string(blended.Payload()))
}

func TestRenderReresolvesPercentageChildOnParentResize(t *testing.T) {
	tr := element.NewTree(80, 10, nil)
	child := element.New("child")
	child.Style.Width = style.Pct(0.5)
	child.Style.Height = style.Abs(2)
	require.NoError(t, tr.Root.AddChild(child))

	Render(tr.Root)
	assert.Equal(t, 40, child.Width)

	tr.Resize(100, 10)
	Render(tr.Root)
	assert.Equal(t, 50, child.Width, "a percentage width tracks the parent's new extent, not just its extent at Embed")
}

func TestRenderRunsRecomputeHitboxesEveryPassRegardlessOfStain(t *testing.T) {
	tr := element.NewTree(4, 2, nil)
	calls := 0
	tr.Root.RecomputeHitboxes = func() { calls++ }

	Render(tr.Root)
	assert.Equal(t, 1, calls)

	Render(tr.Root)
	assert.Equal(t, 2, calls, "hitbox recompute runs on a clean pass too")
}
