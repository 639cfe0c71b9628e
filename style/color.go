package style

import "cellscape/color"

// ColorValue is one tier (base/hover/focus) of a color property.
type ColorValue struct {
	Status Status
	RGBA   color.RGBA
}

// Set builds an initialized color value.
func Set(c color.RGBA) ColorValue {
	return ColorValue{Status: Value, RGBA: c}
}

// ColorProperty is the base/hover/focus tier set described in spec 3.
// ("Colors have four variants (base, hover, focus, and their
// border/background counterparts)" — the fourth variant is modeled by
// having a separate ColorProperty per surface, e.g. Style.TextColor
// and Style.BorderColor each carry their own base/hover/focus).
type ColorProperty struct {
	Base, Hover, Focus ColorValue
}

// NewColorProperty builds a property with only the base tier set.
func NewColorProperty(base color.RGBA) ColorProperty {
	return ColorProperty{Base: Set(base)}
}

// Compose applies spec 4.2's composition rule: focused beats hovered
// beats base, and an uninitialized tier falls through to the next one
// in that priority order.
func (p ColorProperty) Compose(focused, hovered bool) color.RGBA {
	var order []ColorValue
	switch {
	case focused:
		order = []ColorValue{p.Focus, p.Hover, p.Base}
	case hovered:
		order = []ColorValue{p.Hover, p.Base}
	default:
		order = []ColorValue{p.Base}
	}
	for _, tier := range order {
		if tier.Status != Uninitialized {
			return tier.RGBA
		}
	}
	return p.Base.RGBA
}

// Equal reports whether two properties compose identically in every
// state, used by the no-op-dirty invariant.
func (p ColorProperty) Equal(o ColorProperty) bool {
	return p.Base == o.Base && p.Hover == o.Hover && p.Focus == o.Focus
}
