package input

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestClickPressScenarioS5 mirrors spec scenario S5 with a 200ms
// cooldown: a quick down/up produces only CLICKED; a down held past
// the cooldown produces PRESSED while held, then CLICKED on release.
func TestClickPressScenarioS5(t *testing.T) {
	s := NewClickPressSynthesizer(200 * time.Millisecond)
	t0 := time.Now()

	// Quick tap: down at t0, up at t0+100ms.
	out := s.Process([]Event{{Kind: MouseLeftDown}}, t0)
	assert.Empty(t, kindsOf(out))

	out = s.Process([]Event{{Kind: MouseLeftUp}}, t0.Add(100*time.Millisecond))
	require.Len(t, out, 1)
	assert.Equal(t, MouseLeftClicked, out[0].Kind)

	// Held past cooldown: down at t0+400ms, still held at t0+650ms,
	// released at t0+900ms.
	out = s.Process([]Event{{Kind: MouseLeftDown}}, t0.Add(400*time.Millisecond))
	assert.Empty(t, kindsOf(out))

	out = s.Process(nil, t0.Add(400*time.Millisecond+250*time.Millisecond))
	require.Len(t, out, 1)
	assert.Equal(t, MouseLeftPressed, out[0].Kind, "held past the cooldown emits PRESSED")

	out = s.Process([]Event{{Kind: MouseLeftUp}}, t0.Add(400*time.Millisecond+500*time.Millisecond))
	require.Len(t, out, 1)
	assert.Equal(t, MouseLeftClicked, out[0].Kind, "release after PRESSED still emits CLICKED")
}

func TestClickPressScrollIsOneShot(t *testing.T) {
	s := NewClickPressSynthesizer(0)
	now := time.Now()

	out := s.Process([]Event{{Kind: ScrollUp}}, now)
	require.Len(t, out, 1)
	assert.Equal(t, ScrollUp, out[0].Kind)

	out = s.Process(nil, now)
	assert.Empty(t, out, "scroll is consumed after one tick")
}

func TestClickPressNonMouseEventsPassThrough(t *testing.T) {
	s := NewClickPressSynthesizer(0)
	out := s.Process([]Event{{Kind: KeyPress, Rune: 'q'}}, time.Now())
	require.Len(t, out, 1)
	assert.Equal(t, KeyPress, out[0].Kind)
}

func kindsOf(events []Event) []Kind {
	out := make([]Kind, len(events))
	for i, e := range events {
		out[i] = e.Kind
	}
	return out
}
