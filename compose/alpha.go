package compose

import "cellscape/cell"

// ComputeAlphaToNesting blends a child cell into a parent (destination)
// cell using additive alpha accumulation, not multiplicative blending —
// the resolution spec picked for nesting (Design Notes' nesting Open
// Question): the child's background alpha is the blend weight for both
// channels, so a fully-opaque child (alpha 255) hard-overwrites the
// destination, a fully-transparent one (alpha 0) leaves it untouched,
// and anything in between accumulates additively and saturates. A
// child's opacity and any shadow ring alpha are expected to already be
// baked into its cells' alpha channel by the post-process pass, so this
// function needs no separate opacity parameter.
func ComputeAlphaToNesting(dest, src cell.Cell) cell.Cell {
	weight := float64(src.Background.A) / 255.0
	switch {
	case weight >= 1.0:
		return src
	case weight <= 0.0:
		return dest
	}

	out := dest
	contrib := src.Background.Scale(weight)
	out.Background = out.Background.Add(contrib)
	out.Foreground = out.Foreground.Add(contrib)

	if !src.IsDefaultText() {
		out.CopyTextFrom(src)
		out.Foreground = out.Foreground.Add(src.Foreground.Scale(weight))
	}
	return out
}
