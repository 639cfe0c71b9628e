package event

import (
	"context"
	"time"

	"cellscape/engine"
	"github.com/sirupsen/logrus"
)

// MinUpdateSpeed and MaxUpdateSpeed bracket the event thread's
// load-adaptive sleep (spec 4.9): MinUpdateSpeed is the busy-loop
// floor (~30Hz), MaxUpdateSpeed the idle ceiling.
const (
	MinUpdateSpeed = 33 * time.Millisecond
	MaxUpdateSpeed = time.Second
)

// Advancer is anything the event loop drives forward once per tick
// (spec 4.9's "multi-frame canvas advance"). `widgets.Canvas`
// implements this; the loop only needs the advance call, not the
// frame storage behind it.
type Advancer interface {
	Advance()
}

// Loop is the event thread: each iteration pauses the engine for a
// critical section, runs the three order-independent jobs (memory
// recall, file-stream tick, canvas advance), unpauses, and sleeps for
// a duration that shortens as deadlines approach and lengthens when
// idle (spec 4.9).
type Loop struct {
	eng       *engine.Engine
	memory    *MemoryRecall
	streams   []*FileStream
	advancers []Advancer
	log       *logrus.Entry
}

// NewLoop builds an event loop bound to eng, logging memory-task
// failures through log (may be nil).
func NewLoop(eng *engine.Engine, log *logrus.Entry) *Loop {
	return &Loop{eng: eng, memory: NewMemoryRecall(log), log: log}
}

// Memory exposes the loop's memory-task vector so callers can Add
// tasks (e.g. the logging package's auto-expiring error popup).
func (l *Loop) Memory() *MemoryRecall { return l.memory }

// AddFileStream registers a file stream to be ticked every iteration.
func (l *Loop) AddFileStream(fs *FileStream) {
	l.streams = append(l.streams, fs)
}

// AddAdvancer registers something (e.g. a widgets.Canvas) to be
// advanced every iteration.
func (l *Loop) AddAdvancer(a Advancer) {
	l.advancers = append(l.advancers, a)
}

// Run blocks, driving the event loop until ctx is cancelled or the
// engine terminates.
func (l *Loop) Run(ctx context.Context) error {
	sleep := MinUpdateSpeed
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-time.After(sleep):
		}

		if l.eng.State() == engine.Terminated {
			return nil
		}

		start := time.Now()
		var load float64
		l.eng.WithPause(func() {
			load = l.memory.Tick(start)
			for _, fs := range l.streams {
				fs.Tick()
			}
			for _, a := range l.advancers {
				a.Advance()
			}
		})

		elapsed := time.Since(start)
		current := lerpDuration(MinUpdateSpeed, MaxUpdateSpeed, 1-load)
		sleep = current - elapsed
		if sleep < MinUpdateSpeed {
			sleep = MinUpdateSpeed
		}
	}
}

func lerpDuration(a, b time.Duration, t float64) time.Duration {
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	return a + time.Duration(float64(b-a)*t)
}
