package style

import "cellscape/color"

// Flow selects whether children lay out left-to-right or top-to-bottom
// (spec 2. "flow direction").
type Flow int

const (
	FlowRow Flow = iota
	FlowColumn
)

// Anchor selects which corner a positive position offset is measured
// from.
type Anchor int

const (
	AnchorTopLeft Anchor = iota
	AnchorTopRight
	AnchorBottomLeft
	AnchorBottomRight
	AnchorCenter
)

// ShadowDirection is the {x,y,z} vector from spec 3.: x/y offset the
// combined buffer, z is the shadow length before opacity scaling.
type ShadowDirection struct {
	X, Y, Z int
}

// Shadow holds {color, direction, opacity, enabled} per spec 3.
type Shadow struct {
	Enabled   bool
	Color     color.RGBA
	Direction ShadowDirection
	Opacity   float64
}

// Style is the ordered bag of typed per-element properties (spec 3.).
// Numeric and color properties carry their own Status; the handful of
// plain bool/enum fields (Border, Flow, AllowOverflow, ...) are
// considered VALUE the moment the struct is constructed by a style
// builder — Go gives us value-type zero-initialization instead of the
// source's lazily-parsed string expressions, so there is no separate
// "unparsed expression" representation to embed (see DESIGN.md).
type Style struct {
	Width, Height      Numeric
	PosX, PosY, PosZ   Numeric
	TextColor          ColorProperty
	BackgroundColor    ColorProperty
	BorderColor        ColorProperty
	BorderBackground   ColorProperty
	Border             bool
	BorderGlyphs       BorderStyle
	Title              string
	Anchor             Anchor
	Flow               Flow
	AllowOverflow      bool
	AllowDynamicSize   bool
	Opacity            float64
	Shadow             Shadow
}

// Default returns a style with sensible zero-state defaults: opaque
// white-on-black text, full opacity, single-line border glyphs ready
// to use the moment Border is toggled on.
func Default() Style {
	return Style{
		Width:            Abs(1),
		Height:           Abs(1),
		TextColor:        NewColorProperty(color.White),
		BackgroundColor:  NewColorProperty(color.NewA(0, 0, 0, 255)),
		BorderColor:      NewColorProperty(color.White),
		BorderBackground: NewColorProperty(color.NewA(0, 0, 0, 255)),
		BorderGlyphs:     Single,
		Opacity:          1.0,
	}
}

// BorderOffset returns 1 when the style draws a border (the content
// box is inset by one cell on every side), else 0.
func (s Style) BorderOffset() int {
	if s.Border {
		return 1
	}
	return 0
}

// HasPostProcess reports whether the element needs the post-process
// pass (spec 4.5): shadow enabled or opacity below 1.0.
func (s Style) HasPostProcess() bool {
	return s.Shadow.Enabled || s.Opacity < 1.0
}
