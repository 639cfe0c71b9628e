package widgets

import (
	"cellscape/cell"
	"cellscape/color"
	"cellscape/style"
	"strconv"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/gravitational/trace"
)

// defaultChromaStyle mirrors the teacher's highlight_chroma.go choice
// of Monokai as the safe default for dark terminal backgrounds.
const defaultChromaStyle = "monokai"

// categoryColor is the fallback used when a style entry carries no
// explicit colour (style.Get returns a zero Colour for categories the
// named theme doesn't override). It mirrors the teacher's token ->
// ANSI-16-color heuristic (tui/highlight_chroma.go), translated from
// ANSI escape strings to concrete RGB since cellscape's cell model
// carries full 24-bit color rather than raw escape bytes.
func categoryColor(cat chroma.TokenType) (color.RGBA, bool) {
	switch cat {
	case chroma.Keyword:
		return color.New(200, 80, 220), true // magenta
	case chroma.Name:
		return color.New(220, 220, 220), true // white
	case chroma.LiteralString:
		return color.New(100, 200, 100), true // green
	case chroma.LiteralNumber:
		return color.New(90, 200, 200), true // cyan
	case chroma.Comment:
		return color.New(120, 120, 120), true // grey
	case chroma.Operator, chroma.Punctuation:
		return color.New(220, 220, 220), true
	default:
		return color.RGBA{}, false
	}
}

// tokenColor prefers the theme's own RGB when the style entry sets
// one, and falls back to the category heuristic otherwise -- an
// improvement on the teacher's pure-heuristic approach, made possible
// because cellscape cells carry 24-bit RGB rather than the teacher's
// 16-color ANSI escape strings.
func tokenColor(entry chroma.StyleEntry, tt chroma.TokenType) color.RGBA {
	if entry.Colour.IsSet() {
		return color.New(entry.Colour.Red(), entry.Colour.Green(), entry.Colour.Blue())
	}
	if rgb, ok := categoryColor(tt); ok {
		return rgb
	}
	return color.New(220, 220, 220)
}

// CodeView is the supplemental syntax-highlighted code viewer
// (SPEC_FULL.md 12, domain stack row for cellscape/widgets): it
// tokenizes source text with chroma and feeds one pre-rendered row per
// source line into a ScrollList child, so the exemplar's scroll
// offset, hitbox recompute, and dirty-region cooperation all apply to
// highlighted code for free.
type CodeView struct {
	*ScrollList
}

// NewCodeView tokenizes code as lang (empty string uses chroma's
// fallback lexer) and builds a scrollable, syntax-highlighted view
// sized w x h. Tokenizer failures fall back to a single dim, unstyled
// block of text rather than an error, matching the teacher's
// fail-open behavior in highlight_chroma.go.
func NewCodeView(name string, w, h int, code, lang string) (*CodeView, error) {
	list := NewScrollList(name, w, h, style.FlowColumn)
	cv := &CodeView{ScrollList: list}

	rows, err := tokenizeToRows(code, lang, w)
	if err != nil {
		rows = [][]cell.Cell{dimRow(code, w)}
	}

	for i, row := range rows {
		if err := cv.appendRow(rowName(name, i), w, 1, row); err != nil {
			return nil, trace.Wrap(err, "building code view %q row %d", name, i)
		}
	}
	return cv, nil
}

func rowName(prefix string, i int) string {
	return prefix + "-row-" + strconv.Itoa(i)
}

// tokenizeToRows runs code through chroma and lays the styled runs out
// into one []cell.Cell per source line, each padded or truncated to w
// cells so every row is a uniform-width content leaf.
func tokenizeToRows(code, lang string, w int) ([][]cell.Cell, error) {
	var lexer chroma.Lexer
	if lang != "" {
		lexer = lexers.Get(lang)
	}
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)

	theme := styles.Get(defaultChromaStyle)
	if theme == nil {
		theme = styles.Fallback
	}

	iterator, err := lexer.Tokenise(nil, code)
	if err != nil {
		return nil, trace.Wrap(err, "tokenising code view source")
	}

	rows := [][]cell.Cell{blankRow(w)}
	col := 0

	for _, tok := range iterator.Tokens() {
		entry := theme.Get(tok.Type)
		fg := tokenColor(entry, tok.Type.Category())

		for _, r := range tok.Value {
			if r == '\n' {
				rows = append(rows, blankRow(w))
				col = 0
				continue
			}
			if col >= w {
				continue // line overflow is clipped, not wrapped (C13's container handles wrapping, not the source text)
			}
			c := cell.New(r)
			c.Foreground = fg
			if entry.Bold == chroma.Yes {
				// cellscape has no bold flag on the cell; bold keywords
				// get a brighter foreground instead, matching the
				// teacher's fallback comment about Basement lacking an
				// Italic slot either.
				c.Foreground = brighten(fg)
			}
			rows[len(rows)-1][col] = c
			col++
		}
	}

	return rows, nil
}

func brighten(c color.RGBA) color.RGBA {
	lighten := func(v uint8) uint8 {
		if v > 215 {
			return 255
		}
		return v + 40
	}
	return color.New(lighten(c.R), lighten(c.G), lighten(c.B))
}

func blankRow(w int) []cell.Cell {
	row := make([]cell.Cell, w)
	for i := range row {
		row[i] = cell.Default
	}
	return row
}

func dimRow(code string, w int) []cell.Cell {
	row := blankRow(w)
	for i, r := range code {
		if i >= w {
			break
		}
		c := cell.New(r)
		c.Foreground = color.New(120, 120, 120)
		row[i] = c
	}
	return row
}
