package widgets

import (
	"testing"

	"cellscape/cell"
	"cellscape/element"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func framesOf(colors ...cell.Cell) [][]cell.Cell {
	frames := make([][]cell.Cell, len(colors))
	for i, c := range colors {
		frames[i] = []cell.Cell{c}
	}
	return frames
}

func TestNewCanvasRejectsMismatchedFrameSize(t *testing.T) {
	_, err := NewCanvas("bad", 2, 2, [][]cell.Cell{{cell.Default}})
	require.Error(t, err)
}

func TestCanvasAdvanceCyclesFramesAndWraps(t *testing.T) {
	a, b := cell.New('a'), cell.New('b')
	canvas, err := NewCanvas("sprite", 1, 1, framesOf(a, b))
	require.NoError(t, err)

	assert.Equal(t, 0, canvas.FrameIndex())
	assert.Equal(t, "a", string(canvas.Host.RenderBuffer[0].Payload()))

	canvas.Advance()
	assert.Equal(t, 1, canvas.FrameIndex())
	assert.Equal(t, "b", string(canvas.Host.RenderBuffer[0].Payload()))

	canvas.Advance()
	assert.Equal(t, 0, canvas.FrameIndex())
	assert.Equal(t, "a", string(canvas.Host.RenderBuffer[0].Payload()))
}

func TestCanvasAdvanceIsNoOpForSingleFrame(t *testing.T) {
	canvas, err := NewCanvas("static", 1, 1, framesOf(cell.New('x')))
	require.NoError(t, err)

	canvas.Advance()
	assert.Equal(t, 0, canvas.FrameIndex())
}

func TestCanvasRequestsRepaintThroughParent(t *testing.T) {
	tr := element.NewTree(4, 2, nil)
	canvas, err := NewCanvas("sprite", 1, 1, framesOf(cell.New('a'), cell.New('b')))
	require.NoError(t, err)
	require.NoError(t, tr.Root.AddChild(canvas.Host))
	tr.Root.Stain.Clear(^element.Stain(0))

	canvas.Advance()
	assert.True(t, tr.Root.Stain.Has(element.StainDeep))
}
