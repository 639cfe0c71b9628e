package logging

import (
	"context"
	"errors"
	"testing"
	"time"

	"cellscape/element"
	"cellscape/event"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func syncPause(fn func()) { fn() }

func newTestReporter(t *testing.T) (*Reporter, *element.Tree, *event.MemoryRecall) {
	t.Helper()
	tr := element.NewTree(40, 20, nil)
	memory := event.NewMemoryRecall(nil)
	log := logrus.NewEntry(logrus.New())
	r := NewReporter(log, tr, memory, syncPause)
	r.SetLifetime(30 * time.Millisecond)
	return r, tr, memory
}

func TestReporterWithoutTreeFallsBackToStdoutAndNeverBlocks(t *testing.T) {
	log := logrus.NewEntry(logrus.New())
	r := NewReporter(log, nil, nil, nil)
	r.TerminalIOFailure(errors.New("short write"))

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	require.NoError(t, r.Run(ctx))
}

func TestReporterInsertsPopupOnFirstReport(t *testing.T) {
	r, tr, _ := newTestReporter(t)
	r.InvariantViolation("add child to self", errors.New("boom"))

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	go func() { _ = r.Run(ctx) }()
	defer cancel()

	require.Eventually(t, func() bool {
		_, ok := tr.Names.Lookup(popupWindowName)
		return ok
	}, time.Second, time.Millisecond)
}

func TestReporterBurstCoalescesIntoOneMemoryTask(t *testing.T) {
	r, _, memory := newTestReporter(t)

	r.handle(report{kind: HandlerJobFailure, fields: logrus.Fields{"handler": "h1"}})
	r.handle(report{kind: HandlerJobFailure, fields: logrus.Fields{"handler": "h2"}})
	memory.Tick(time.Now())

	assert.Equal(t, 1, memory.Len(), "PROLONG merge collapses the burst to one pending task")
	assert.Equal(t, 2, r.lines)
}

func TestReporterMemoryTaskRemovesPopupAfterLifetime(t *testing.T) {
	r, tr, memory := newTestReporter(t)
	r.handle(report{kind: TerminalIOFailure, err: errors.New("dropped frame")})

	time.Sleep(40 * time.Millisecond)
	memory.Tick(time.Now())

	_, ok := tr.Names.Lookup(popupWindowName)
	assert.False(t, ok, "popup removed once its lifetime elapses")
	assert.Equal(t, 0, r.lines)
}
