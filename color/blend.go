package color

import "math"

// InterpolationMode selects how Lerp blends two channels.
type InterpolationMode int

const (
	// Linear does fixed-point 8-bit interpolation: fast, no allocation,
	// no gamma awareness.
	Linear InterpolationMode = iota
	// Gamma uses a precomputed sRGB LUT so that blending happens in
	// linear light before being re-encoded, matching how a real
	// compositor avoids the "muddy midtones" fixed-point blending
	// produces.
	Gamma
)

// gammaLUT[i] is the linear-light value of sRGB channel i, in [0,1];
// gammaInv[j] maps linear value j/255 back to an 8-bit sRGB channel.
// Built once at package init with stdlib math since no
// library in the retrieved corpus offers an 8-bit gamma LUT generator
// (see DESIGN.md).
var gammaLUT [256]float64
var gammaInv [256]uint8

func init() {
	for i := 0; i < 256; i++ {
		srgb := float64(i) / 255.0
		var linear float64
		if srgb <= 0.04045 {
			linear = srgb / 12.92
		} else {
			linear = math.Pow((srgb+0.055)/1.055, 2.4)
		}
		gammaLUT[i] = linear
	}
	for i := 0; i < 256; i++ {
		linear := float64(i) / 255.0
		var srgb float64
		if linear <= 0.0031308 {
			srgb = linear * 12.92
		} else {
			srgb = 1.055*math.Pow(linear, 1/2.4) - 0.055
		}
		gammaInv[i] = roundEven(srgb * 255.0)
	}
}

// Lerp interpolates channel-wise between a and b by t in [0,1] using
// the selected mode.
func Lerp(a, b RGBA, t float64, mode InterpolationMode) RGBA {
	if t <= 0 {
		return a
	}
	if t >= 1 {
		return b
	}
	switch mode {
	case Gamma:
		return RGBA{
			RGB: RGB{
				R: lerpGamma(a.R, b.R, t),
				G: lerpGamma(a.G, b.G, t),
				B: lerpGamma(a.B, b.B, t),
			},
			A: lerpFast(a.A, b.A, t),
		}
	default:
		return RGBA{
			RGB: RGB{
				R: lerpFast(a.R, b.R, t),
				G: lerpFast(a.G, b.G, t),
				B: lerpFast(a.B, b.B, t),
			},
			A: lerpFast(a.A, b.A, t),
		}
	}
}

func lerpFast(a, b uint8, t float64) uint8 {
	return roundEven(float64(a)*(1-t) + float64(b)*t)
}

func lerpGamma(a, b uint8, t float64) uint8 {
	la, lb := gammaLUT[a], gammaLUT[b]
	mixed := la*(1-t) + lb*t
	idx := roundEven(mixed * 255.0)
	return gammaInv[idx]
}
