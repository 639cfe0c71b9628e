// Package color implements the 24-bit RGBA primitives used across the
// render pipeline: packed equality, additive/weighted blending, and the
// two interpolation modes (fast fixed-point and gamma-corrected LUT).
package color

// RGB is a packed 24-bit color.
type RGB struct {
	R, G, B uint8
}

// RGBA is an RGB value plus an alpha channel. The zero value has A == 0
// (fully transparent black); New sets A to 255, and NewA takes it
// explicitly.
type RGBA struct {
	RGB
	A uint8
}

// New builds a fully opaque RGBA.
func New(r, g, b uint8) RGBA {
	return RGBA{RGB: RGB{R: r, G: g, B: b}, A: 255}
}

// NewA builds an RGBA with an explicit alpha.
func NewA(r, g, b, a uint8) RGBA {
	return RGBA{RGB: RGB{R: r, G: g, B: b}, A: a}
}

// Pack3 returns the 3-byte packed representation used for RGB equality.
func (c RGB) Pack3() uint32 {
	return uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
}

// Pack4 returns the 4-byte packed representation used for RGBA equality.
func (c RGBA) Pack4() uint32 {
	return c.RGB.Pack3()<<8 | uint32(c.A)
}

// EqualRGB compares two colors ignoring alpha, per spec 3.: "equality
// compares the packed 3-byte ... representation".
func EqualRGB(a, b RGB) bool { return a.Pack3() == b.Pack3() }

// Equal compares two RGBA colors including alpha.
func Equal(a, b RGBA) bool { return a.Pack4() == b.Pack4() }

func satAdd(a, b uint8) uint8 {
	sum := int(a) + int(b)
	if sum > 255 {
		return 255
	}
	return uint8(sum)
}

// Add performs saturating per-channel addition, used by the additive
// alpha-nesting accumulation in compose.ComputeAlphaToNesting.
func (a RGBA) Add(b RGBA) RGBA {
	return RGBA{
		RGB: RGB{R: satAdd(a.R, b.R), G: satAdd(a.G, b.G), B: satAdd(a.B, b.B)},
		A:   a.A,
	}
}

// ScaleAlpha multiplies only the alpha channel by weight, leaving RGB
// untouched — the operator the post-process opacity pass uses (spec
// 4.5), as distinct from Scale which scales every channel for additive
// nesting contributions.
func (c RGBA) ScaleAlpha(weight float64) RGBA {
	if weight < 0 {
		weight = 0
	} else if weight > 1 {
		weight = 1
	}
	c.A = roundEven(float64(c.A) * weight)
	return c
}

// Scale multiplies every channel (including alpha) by weight, clamped
// to [0,1], with nearest-even rounding. This is the "additive blend
// with a weight in [0,1]" primitive from spec 3.
func (c RGBA) Scale(weight float64) RGBA {
	if weight < 0 {
		weight = 0
	} else if weight > 1 {
		weight = 1
	}
	return RGBA{
		RGB: RGB{
			R: roundEven(float64(c.R) * weight),
			G: roundEven(float64(c.G) * weight),
			B: roundEven(float64(c.B) * weight),
		},
		A: roundEven(float64(c.A) * weight),
	}
}

// roundEven rounds to the nearest integer, ties to even, matching the
// rounding rule called out in spec S2.
func roundEven(v float64) uint8 {
	floor := float64(int64(v))
	frac := v - floor
	var rounded float64
	switch {
	case frac < 0.5:
		rounded = floor
	case frac > 0.5:
		rounded = floor + 1
	default:
		if int64(floor)%2 == 0 {
			rounded = floor
		} else {
			rounded = floor + 1
		}
	}
	if rounded < 0 {
		rounded = 0
	}
	if rounded > 255 {
		rounded = 255
	}
	return uint8(rounded)
}
