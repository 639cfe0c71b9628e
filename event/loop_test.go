package event

import (
	"bytes"
	"context"
	"sync/atomic"
	"testing"
	"time"

	"cellscape/element"
	"cellscape/engine"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingAdvancer struct{ calls int32 }

func (c *countingAdvancer) Advance() { atomic.AddInt32(&c.calls, 1) }

func TestLoopRunsAdvancerUnderPause(t *testing.T) {
	var out bytes.Buffer
	tr := element.NewTree(4, 2, nil)
	eng := engine.New(tr, &out, true, nil)
	eng.Init()

	loop := NewLoop(eng, nil)
	adv := &countingAdvancer{}
	loop.AddAdvancer(adv)

	ctx, cancel := context.WithTimeout(context.Background(), 150*time.Millisecond)
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- loop.Run(ctx) }()

	require.Eventually(t, func() bool { return atomic.LoadInt32(&adv.calls) > 0 }, time.Second, time.Millisecond)
	cancel()
	require.NoError(t, <-done)
}

func TestLerpDurationClampsFactor(t *testing.T) {
	assert.Equal(t, MinUpdateSpeed, lerpDuration(MinUpdateSpeed, MaxUpdateSpeed, -1))
	assert.Equal(t, MaxUpdateSpeed, lerpDuration(MinUpdateSpeed, MaxUpdateSpeed, 2))
	mid := lerpDuration(0, 100*time.Millisecond, 0.5)
	assert.Equal(t, 50*time.Millisecond, mid)
}
