package engine

import (
	"bytes"
	"context"
	"testing"
	"time"

	"cellscape/element"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEngine(t *testing.T) (*Engine, *element.Tree, *bytes.Buffer) {
	t.Helper()
	var out bytes.Buffer
	tr := element.NewTree(4, 2, nil)
	e := New(tr, &out, true, nil)
	return e, tr, &out
}

func TestRequestRenderNoopBeforeInit(t *testing.T) {
	e, _, _ := newTestEngine(t)
	e.RequestRender()
	assert.Equal(t, NotInitialized, e.State())
}

func TestInitThenRequestRenderTransitions(t *testing.T) {
	e, _, _ := newTestEngine(t)
	e.Init()
	assert.Equal(t, Paused, e.State())

	e.RequestRender()
	assert.Equal(t, RequestingRendering, e.State())
}

func TestPauseResumeIsReentrant(t *testing.T) {
	e, _, _ := newTestEngine(t)
	e.Init()

	e.Pause()
	e.Pause()
	e.RequestRender()
	assert.Equal(t, Paused, e.State(), "render ticket is suppressed while any pause is held")

	e.Resume()
	assert.Equal(t, Paused, e.State(), "counter still > 0 after one resume")

	e.Resume()
	assert.Equal(t, RequestingRendering, e.State(), "dropping to zero pauses re-requests a ticket")
}

func TestRenderLoopRendersAndReturnsToPaused(t *testing.T) {
	e, tr, out := newTestEngine(t)
	e.Init()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- e.RenderLoop(ctx) }()

	e.RequestRender()
	require.Eventually(t, func() bool { return out.Len() > 0 }, time.Second, time.Millisecond)
	require.Eventually(t, func() bool { return e.State() == Paused }, time.Second, time.Millisecond)

	_ = tr
	cancel()
	require.NoError(t, <-done)
}

func TestTerminateStopsRenderLoop(t *testing.T) {
	e, _, _ := newTestEngine(t)
	e.Init()

	ctx := context.Background()
	done := make(chan error, 1)
	go func() { done <- e.RenderLoop(ctx) }()

	e.Terminate()
	require.NoError(t, <-done)
	assert.Equal(t, Terminated, e.State())
}
