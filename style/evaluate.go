package style

import "cellscape/color"

// SetWidth sets the width and, per spec 4.2 ("percentage-sized and
// dynamic-sized are mutually exclusive"), turns off dynamic sizing
// whenever a concrete width is assigned.
func (s *Style) SetWidth(w Numeric) {
	s.Width = w
	s.AllowDynamicSize = false
}

// SetHeight mirrors SetWidth for height.
func (s *Style) SetHeight(h Numeric) {
	s.Height = h
	s.AllowDynamicSize = false
}

// SetDynamicSize enables dynamic sizing, which per the same invariant
// overrides any percentage/absolute width or height already set; the
// next layout pass grows Width/Height to fit the children.
func (s *Style) SetDynamicSize(enabled bool) {
	s.AllowDynamicSize = enabled
}

// Context is the resolved parent extents a child's percentage/additive
// properties resolve against (spec 4.2).
type Context struct {
	Width, Height int
}

// ResolvedWidth/ResolvedHeight/ResolvedX/ResolvedY/ResolvedZ evaluate
// the corresponding Numeric property against ctx.
func (s Style) ResolvedWidth(ctx Context) int  { return s.Width.Resolve(ctx.Width) }
func (s Style) ResolvedHeight(ctx Context) int { return s.Height.Resolve(ctx.Height) }
func (s Style) ResolvedX(ctx Context) int      { return s.PosX.Resolve(ctx.Width) }
func (s Style) ResolvedY(ctx Context) int      { return s.PosY.Resolve(ctx.Height) }
func (s Style) ResolvedZ(ctx Context) int      { return s.PosZ.Resolve(ctx.Height) }

// ComposeText/ComposeBackground/ComposeBorder/ComposeBorderBackground
// resolve the active color tier for the given focus/hover state (spec
// 4.2 "composition rule for all text RGB values", applied symmetrically
// to border values).
func (s Style) ComposeText(focused, hovered bool) color.RGBA {
	return s.TextColor.Compose(focused, hovered)
}

func (s Style) ComposeBackground(focused, hovered bool) color.RGBA {
	return s.BackgroundColor.Compose(focused, hovered)
}

func (s Style) ComposeBorder(focused, hovered bool) color.RGBA {
	return s.BorderColor.Compose(focused, hovered)
}

func (s Style) ComposeBorderBackground(focused, hovered bool) color.RGBA {
	return s.BorderBackground.Compose(focused, hovered)
}
