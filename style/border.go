package style

// Connection is the 4-bit neighbor mask used by border stitching
// (spec 4.6): which of the four cardinal neighbors hold a recognized
// border glyph.
type Connection uint8

const (
	ConnUp Connection = 1 << iota
	ConnDown
	ConnLeft
	ConnRight
)

// BorderStyle holds a glyph table keyed by the connection mask plus
// the enable flag (spec 3. "Border style holds a glyph table...").
type BorderStyle struct {
	Glyphs  [16]rune
	Enabled bool
}

// Glyph looks up the rune for a connection mask; ok is false when no
// glyph is registered for that combination (spec 4.6: "if a glyph
// exists, overwrite the crossing point").
func (b BorderStyle) Glyph(mask Connection) (rune, bool) {
	r := b.Glyphs[mask]
	return r, r != 0
}

// HasGlyph reports whether r is any glyph registered in this style's
// table — used by border stitching to decide if an adjacent cell
// currently holds a border glyph at all.
func (b BorderStyle) HasGlyph(r rune) bool {
	for _, g := range b.Glyphs {
		if g != 0 && g == r {
			return true
		}
	}
	return false
}

// Single is the classic single-line box-drawing border preset,
// carried over from the original renderer's built-in table (SPEC_FULL
// §12).
var Single = buildBorder(
	'┌', '┐', '└', '┘', '─', '│',
	'┬', '┴', '├', '┤', '┼',
)

// Double is the double-line preset.
var Double = buildBorder(
	'╔', '╗', '╚', '╝', '═', '║',
	'╦', '╩', '╠', '╣', '╬',
)

// Rounded is the rounded-corner preset.
var Rounded = buildBorder(
	'╭', '╮', '╰', '╯', '─', '│',
	'┬', '┴', '├', '┤', '┼',
)

// buildBorder fills all 16 connection-mask slots from the eight named
// junction glyphs. Masks with zero or one bit set fall back to the
// straight edge glyphs; two-or-more-bit masks use the named corner/T/
// cross glyphs.
func buildBorder(topLeft, topRight, bottomLeft, bottomRight, horiz, vert,
	tDown, tUp, tRight, tLeft, cross rune) BorderStyle {
	var b BorderStyle
	b.Enabled = true
	b.Glyphs[ConnRight|ConnLeft] = horiz
	b.Glyphs[ConnRight] = horiz
	b.Glyphs[ConnLeft] = horiz
	b.Glyphs[ConnUp|ConnDown] = vert
	b.Glyphs[ConnUp] = vert
	b.Glyphs[ConnDown] = vert

	b.Glyphs[ConnDown|ConnRight] = topLeft
	b.Glyphs[ConnDown|ConnLeft] = topRight
	b.Glyphs[ConnUp|ConnRight] = bottomLeft
	b.Glyphs[ConnUp|ConnLeft] = bottomRight

	b.Glyphs[ConnDown|ConnLeft|ConnRight] = tDown
	b.Glyphs[ConnUp|ConnLeft|ConnRight] = tUp
	b.Glyphs[ConnUp|ConnDown|ConnRight] = tRight
	b.Glyphs[ConnUp|ConnDown|ConnLeft] = tLeft

	b.Glyphs[ConnUp|ConnDown|ConnLeft|ConnRight] = cross
	return b
}
