package widgets

import (
	"testing"

	"github.com/alecthomas/chroma/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCodeViewBuildsOneRowPerSourceLine(t *testing.T) {
	code := "package main\n\nfunc main() {}\n"
	cv, err := NewCodeView("src", 20, 10, code, "go")
	require.NoError(t, err)

	assert.Equal(t, 4, cv.Len(), "three newlines plus the trailing empty line")
}

func TestNewCodeViewUsesFallbackLexerForEmptyLanguage(t *testing.T) {
	cv, err := NewCodeView("src", 20, 10, "plain text, no lexer opinions", "")
	require.NoError(t, err)
	assert.Equal(t, 1, cv.Len())
}

func TestTokenColorPrefersThemeRGBOverHeuristic(t *testing.T) {
	entry := chroma.StyleEntry{Colour: chroma.NewColour(10, 20, 30)}
	rgb := tokenColor(entry, chroma.Keyword)
	assert.Equal(t, uint8(10), rgb.R)
	assert.Equal(t, uint8(20), rgb.G)
	assert.Equal(t, uint8(30), rgb.B)
}

func TestTokenColorFallsBackToCategoryHeuristicWhenUnset(t *testing.T) {
	rgb := tokenColor(chroma.StyleEntry{}, chroma.Keyword)
	fallback, ok := categoryColor(chroma.Keyword)
	require.True(t, ok)
	assert.Equal(t, fallback, rgb)
}
