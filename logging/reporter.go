// Package logging implements the error taxonomy and propagation policy
// from spec 7.: every internal failure becomes a queued report rather
// than an exception, drained by a dedicated logger goroutine so
// reporting never blocks the render or input paths, and surfaced to
// the user as an auto-expiring "log window" popup.
package logging

import (
	"context"
	"fmt"
	"os"
	"time"

	"cellscape/color"
	"cellscape/element"
	"cellscape/event"
	"cellscape/style"
	"cellscape/widgets"
	"github.com/gravitational/trace"
	"github.com/sirupsen/logrus"
)

// Kind is one of spec 7.'s named error categories.
type Kind int

const (
	InvariantViolation Kind = iota
	TerminalIOFailure
	InputDecodeAnomaly
	HandlerJobFailure
	MemoryTaskException
)

func (k Kind) String() string {
	switch k {
	case InvariantViolation:
		return "invariant_violation"
	case TerminalIOFailure:
		return "terminal_io_failure"
	case InputDecodeAnomaly:
		return "input_decode_anomaly"
	case HandlerJobFailure:
		return "handler_job_failure"
	case MemoryTaskException:
		return "memory_task_exception"
	default:
		return "unknown"
	}
}

// DefaultLifetime is the original's settings.cpp default for how long
// the auto-inserted log window survives after its last report (spec
// 7., SPEC_FULL.md 12's "Log window auto-lifetime").
const DefaultLifetime = 30 * time.Second

const queueDepth = 256

// report is one queued error, carrying enough context to both log it
// and render one line of the popup.
type report struct {
	kind   Kind
	err    error
	fields logrus.Fields
}

// popupWindowName is the auto-inserted element's name in the tree; a
// fixed name makes it safe to look up and remove without Reporter
// having to retain the tree's name index itself.
const popupWindowName = "log-window"

// Reporter is the logger queue spec 7. describes: Report enqueues and
// returns immediately (non-blocking, callers never stall on a full
// queue — a report that finds the queue full is dropped, neither logged
// nor shown), and Run is the dedicated logger thread that drains it.
type Reporter struct {
	log    *logrus.Entry
	queue  chan report
	tree   *element.Tree
	memory *event.MemoryRecall
	pause  func(func())

	lifetime time.Duration
	popup    *widgets.ScrollList
	lines    int
}

// NewReporter builds a Reporter. tree/memory/pause may all be nil, in
// which case reports are logged and written to stdout but never get a
// popup — the "root does not exist yet" fallback from spec 7.
func NewReporter(log *logrus.Entry, tree *element.Tree, memory *event.MemoryRecall, pause func(func())) *Reporter {
	return &Reporter{
		log:      log,
		queue:    make(chan report, queueDepth),
		tree:     tree,
		memory:   memory,
		pause:    pause,
		lifetime: DefaultLifetime,
	}
}

// SetLifetime overrides the default 30s log window lifetime (wired
// from cellscape/config's settings).
func (r *Reporter) SetLifetime(d time.Duration) { r.lifetime = d }

// Report enqueues an error for the logger thread, never blocking the
// caller: a full queue drops the report on the floor rather than
// stalling the render or input path it was called from.
func (r *Reporter) Report(kind Kind, err error, fields logrus.Fields) {
	select {
	case r.queue <- report{kind: kind, err: err, fields: fields}:
	default:
	}
}

// InvariantViolation reports spec 7.'s "child added to itself, null
// parent, render buffer size mismatch" category.
func (r *Reporter) InvariantViolation(context string, err error) {
	r.Report(InvariantViolation, err, logrus.Fields{"context": context})
}

// TerminalIOFailure reports a dropped frame or failed tcsetattr; the
// engine tolerates it and keeps going.
func (r *Reporter) TerminalIOFailure(err error) {
	r.Report(TerminalIOFailure, err, nil)
}

// InputDecodeAnomaly reports a malformed byte sequence the decoder
// skipped; decoding has already resumed by the time this is called.
func (r *Reporter) InputDecodeAnomaly(raw []byte) {
	r.Report(InputDecodeAnomaly, nil, logrus.Fields{"bytes": fmt.Sprintf("% x", raw)})
}

// HandlerJobFailure reports a focus handler job that returned false or
// an error; the input that triggered it was deliberately left
// unconsumed so other handlers may still match it.
func (r *Reporter) HandlerJobFailure(handlerName string, err error) {
	r.Report(HandlerJobFailure, err, logrus.Fields{"handler": handlerName})
}

// MemoryTaskException reports a memory task whose job errored; the
// task has already been erased by the time this is called (spec 7.:
// "erased, not retried, to prevent tight failure loops").
func (r *Reporter) MemoryTaskException(taskID string, err error) {
	r.Report(MemoryTaskException, err, logrus.Fields{"task": taskID})
}

// Run drains the report queue until ctx is cancelled. It is meant to
// run as its own goroutine (the "dedicated logger thread" of spec 7.),
// wired into the same errgroup as the render/event/input loops.
func (r *Reporter) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case rep := <-r.queue:
			r.handle(rep)
		}
	}
}

func (r *Reporter) handle(rep report) {
	entry := r.log
	if entry == nil {
		entry = logrus.NewEntry(logrus.StandardLogger())
	}
	entry = entry.WithField("kind", rep.kind.String())
	for k, v := range rep.fields {
		entry = entry.WithField(k, v)
	}

	level := logrus.WarnLevel
	if rep.kind == InvariantViolation {
		level = logrus.ErrorLevel
	}
	if rep.err != nil {
		entry = entry.WithError(trace.Wrap(rep.err))
	}
	entry.Log(level, rep.kind.String())

	if r.tree == nil || r.memory == nil || r.pause == nil {
		fmt.Fprintf(os.Stdout, "[%s] %s: %v\n", rep.kind, rep.kind.String(), rep.err)
		return
	}
	r.showPopup(rep)
}

// showPopup auto-inserts (or appends a line to) the log window and
// (re)schedules its removal as a PROLONG memory task, so a burst of
// errors in the same window coalesces into one timer instead of
// stacking up pop-ups (SPEC_FULL.md 12).
func (r *Reporter) showPopup(rep report) {
	r.pause(func() {
		if r.popup == nil {
			r.popup = newPopup(r.tree.Root)
			_ = r.tree.Root.AddChild(r.popup.Host)
		}
		line := fmt.Sprintf("%s: %v", rep.kind.String(), rep.err)
		_ = r.popup.AddItem(widgets.NewTextRow(fmt.Sprintf("log-line-%d", r.lines), r.popup.Host.Width, line, popupTextColor(rep.kind)), 1)
		r.lines++
	})

	r.memory.Add(&event.MemoryTask{
		ID:          popupWindowName,
		JobIdentity: popupWindowName,
		StartTime:   time.Now(),
		EndTime:     r.lifetime,
		Prolong:     true,
		Job: func() (bool, error) {
			r.pause(func() {
				if r.popup != nil {
					r.tree.Root.Remove(r.popup.Host)
					r.popup = nil
					r.lines = 0
				}
			})
			return true, nil
		},
	})
}

func newPopup(root *element.Element) *widgets.ScrollList {
	w, h := popupSize(root)
	list := widgets.NewScrollList(popupWindowName, w, h, style.FlowColumn)
	list.Host.Style.Border = true
	list.Host.Style.Title = "Errors"
	list.Host.SetPosition(root.Width-w, 0)
	return list
}

// popupTextColor tints invariant violations (the most severe category)
// red and everything else amber, so the popup reads at a glance.
func popupTextColor(kind Kind) color.RGBA {
	if kind == InvariantViolation {
		return color.Red
	}
	return color.New(230, 170, 60)
}

func popupSize(root *element.Element) (int, int) {
	w := root.Width / 2
	if w < 20 {
		w = min(20, root.Width)
	}
	h := root.Height / 3
	if h < 5 {
		h = min(5, root.Height)
	}
	return w, h
}
