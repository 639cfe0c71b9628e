package style

import (
	"testing"

	"cellscape/color"
	"github.com/stretchr/testify/assert"
)

func TestNumericResolve(t *testing.T) {
	assert.Equal(t, 10, Abs(10).Resolve(100))
	assert.Equal(t, 50, Pct(0.5).Resolve(100))
	assert.Equal(t, 60, Add(Abs(10), Pct(0.5)).Resolve(100))
}

func TestColorComposeFallsThrough(t *testing.T) {
	p := ColorProperty{Base: Set(mkColor(1))}
	assert.Equal(t, mkColor(1), p.Compose(true, false), "focused falls through empty focus/hover to base")

	p.Hover = Set(mkColor(2))
	assert.Equal(t, mkColor(2), p.Compose(false, true))
	assert.Equal(t, mkColor(1), p.Compose(false, false))

	p.Focus = Set(mkColor(3))
	assert.Equal(t, mkColor(3), p.Compose(true, true))
}

func TestDynamicSizeDisablesOnExplicitSize(t *testing.T) {
	s := Default()
	s.SetDynamicSize(true)
	assert.True(t, s.AllowDynamicSize)
	s.SetWidth(Abs(5))
	assert.False(t, s.AllowDynamicSize, "setting an explicit width must disable dynamic sizing")
}

func mkColor(n uint8) color.RGBA {
	return color.New(n, n, n)
}
