package focus

import (
	"errors"
	"testing"

	"cellscape/element"
	"cellscape/input"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newHostAt(x, y, w, h int) *element.Element {
	e := element.New("host")
	e.Visible = true
	e.AbsoluteX, e.AbsoluteY = x, y
	e.Width, e.Height = w, h
	return e
}

func TestDispatchPromotesHoverToFocusOnClick(t *testing.T) {
	r := NewRegistry(nil)
	host := newHostAt(0, 0, 10, 10)
	host.Hovered = true
	h := &Handler{Name: "h", Host: host, Criteria: Criteria{input.KeyPress}, Job: func(input.Event) (bool, error) { return true, nil }}
	r.Register(h)

	unmatched := Dispatch(r, []input.Event{{Kind: input.MouseLeftClicked}}, 5, 5)

	assert.Empty(t, unmatched)
	assert.True(t, host.Focused)
	assert.False(t, host.Hovered)
}

func TestDispatchDoesNotPromoteWithoutOverlap(t *testing.T) {
	r := NewRegistry(nil)
	host := newHostAt(0, 0, 10, 10)
	host.Hovered = true
	h := &Handler{Name: "h", Host: host, Criteria: Criteria{}, Job: func(input.Event) (bool, error) { return true, nil }}
	r.Register(h)

	unmatched := Dispatch(r, []input.Event{{Kind: input.MouseLeftClicked}}, 50, 50)

	require.Len(t, unmatched, 1)
	assert.False(t, host.Focused)
	assert.False(t, host.Hovered, "mouse is outside the bounds, hover clears")
}

func TestDispatchRunsJobWhenFocusedAndCriteriaMatches(t *testing.T) {
	r := NewRegistry(nil)
	host := newHostAt(0, 0, 10, 10)
	host.Focused = true
	var gotRune rune
	h := &Handler{
		Name:     "h",
		Host:     host,
		Criteria: Criteria{input.KeyPress},
		Job: func(e input.Event) (bool, error) {
			gotRune = e.Rune
			return true, nil
		},
	}
	r.Register(h)

	unmatched := Dispatch(r, []input.Event{{Kind: input.KeyPress, Rune: 'q'}}, -1, -1)

	assert.Empty(t, unmatched)
	assert.Equal(t, 'q', gotRune)
}

func TestDispatchLeavesInputUnconsumedWhenJobReturnsFalseOrErrors(t *testing.T) {
	r := NewRegistry(nil)
	host := newHostAt(0, 0, 10, 10)
	host.Focused = true
	h := &Handler{Name: "h", Host: host, Criteria: Criteria{input.KeyPress}, Job: func(input.Event) (bool, error) { return false, nil }}
	r.Register(h)

	unmatched := Dispatch(r, []input.Event{{Kind: input.KeyPress}}, -1, -1)
	require.Len(t, unmatched, 1, "a job returning false leaves the input for another handler")

	h.Job = func(input.Event) (bool, error) { return false, errors.New("boom") }
	unmatched = Dispatch(r, []input.Event{{Kind: input.KeyPress}}, -1, -1)
	require.Len(t, unmatched, 1, "a job error also leaves the input unconsumed")
}

// TestTabCycleScenarioS4 mirrors spec scenario S4: four handlers in a
// row, none focused; TAB advances, SHIFT+TAB steps back, and TAB
// wraps at the end of the vector.
func TestTabCycleScenarioS4(t *testing.T) {
	r := NewRegistry(nil)
	hosts := make([]*element.Element, 4)
	for i := range hosts {
		hosts[i] = newHostAt(i*10, 0, 10, 10)
		r.Register(&Handler{Name: "h", Host: hosts[i]})
	}

	Dispatch(r, []input.Event{{Kind: input.KeyTab}}, -1, -1)
	assert.True(t, hosts[0].Hovered)

	Dispatch(r, []input.Event{{Kind: input.KeyTab}}, -1, -1)
	assert.True(t, hosts[1].Hovered)
	assert.False(t, hosts[0].Hovered)

	Dispatch(r, []input.Event{{Kind: input.KeyShiftTab}}, -1, -1)
	assert.True(t, hosts[0].Hovered)

	for i := 0; i < 3; i++ {
		Dispatch(r, []input.Event{{Kind: input.KeyTab}}, -1, -1)
	}
	assert.True(t, hosts[3].Hovered)

	Dispatch(r, []input.Event{{Kind: input.KeyTab}}, -1, -1)
	assert.True(t, hosts[0].Hovered, "TAB at the last handler wraps back to the first")
}

func TestTabDoesNotCycleWhileSomeHostIsFocused(t *testing.T) {
	r := NewRegistry(nil)
	a := newHostAt(0, 0, 10, 10)
	a.Focused = true
	b := newHostAt(10, 0, 10, 10)
	r.Register(&Handler{Name: "a", Host: a})
	r.Register(&Handler{Name: "b", Host: b})

	Dispatch(r, []input.Event{{Kind: input.KeyTab}}, -1, -1)

	assert.False(t, b.Hovered, "no cycling happens while a is focused")
}
