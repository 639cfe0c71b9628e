// Package event implements the event thread: the memory-task recall
// vector, file-stream change detection, animated-canvas advance, and
// the load-adaptive tick loop that runs all three under the engine's
// pause lock (spec 4.9).
package event

import (
	"time"

	"github.com/sirupsen/logrus"
)

// JobFunc is a memory task's deferred action. It returns true on
// success, an error on failure; per Design Notes §9 this replaces the
// source's exception-catching job dispatch with an explicit result.
type JobFunc func() (bool, error)

// MemoryTask is a single deferred action scheduled to fire once
// EndTime has elapsed since StartTime (spec 4.9).
type MemoryTask struct {
	// ID identifies the task for logging.
	ID string
	// JobIdentity groups PROLONG tasks that represent the same
	// logical wait: when two PROLONG tasks share a non-empty
	// JobIdentity, only the one with the later StartTime survives a
	// merge pass.
	JobIdentity string
	StartTime   time.Time
	EndTime     time.Duration
	// Prolong marks this task as mergeable with same-identity tasks.
	Prolong bool
	// Retrigger re-arms the task (StartTime reset to now) instead of
	// erasing it after it fires.
	Retrigger bool
	Job       JobFunc
}

// MemoryRecall holds the event thread's memory-task vector (spec
// 4.9's "memory recall" job).
type MemoryRecall struct {
	tasks []*MemoryTask
	log   *logrus.Entry
}

// NewMemoryRecall builds an empty memory-task vector.
func NewMemoryRecall(log *logrus.Entry) *MemoryRecall {
	return &MemoryRecall{log: log}
}

// Add schedules a new memory task. Callers must hold the engine pause
// lock if the task vector may be concurrently ticked.
func (m *MemoryRecall) Add(t *MemoryTask) {
	m.tasks = append(m.tasks, t)
}

// Len reports how many tasks are currently pending.
func (m *MemoryRecall) Len() int { return len(m.tasks) }

// Tick runs one pass of the memory-recall job: merge PROLONG tasks
// sharing a job identity, fire every task whose deadline has elapsed,
// and report how loaded the event thread currently is based on how
// soon the next deadline falls (spec 4.9).
//
// Firing semantics: a job that returns an error is logged and erased
// unconditionally (spec §7, "memory-task exception ... erased, not
// retried, to prevent tight failure loops"). Otherwise, a RETRIGGER
// task is re-armed (StartTime reset to now) regardless of its result;
// a non-RETRIGGER task is erased only if its job reported success,
// and left pending for the next tick if it reported false without
// error.
func (m *MemoryRecall) Tick(now time.Time) float64 {
	m.tasks = mergeProlong(m.tasks)

	minRemaining := time.Duration(-1)
	kept := m.tasks[:0]
	for _, task := range m.tasks {
		if now.Sub(task.StartTime) > task.EndTime {
			ok, err := task.Job()
			switch {
			case err != nil:
				if m.log != nil {
					m.log.WithError(err).WithField("task", task.ID).Warn("memory task failed, erasing")
				}
				continue
			case task.Retrigger:
				task.StartTime = now
			case ok:
				continue
			}
		}

		remaining := task.EndTime - now.Sub(task.StartTime)
		if remaining < 0 {
			remaining = 0
		}
		if minRemaining < 0 || remaining < minRemaining {
			minRemaining = remaining
		}
		kept = append(kept, task)
	}
	m.tasks = kept

	if minRemaining < 0 {
		return 0
	}
	return clamp01(1 - float64(minRemaining)/float64(MaxUpdateSpeed))
}

// mergeProlong collapses PROLONG tasks that share a non-empty
// JobIdentity down to the one with the latest StartTime (spec 4.9,
// "PROLONG-flagged tasks sharing a job identity merge, taking the
// later start time and erasing the earlier one").
func mergeProlong(tasks []*MemoryTask) []*MemoryTask {
	latest := make(map[string]*MemoryTask)
	others := make([]*MemoryTask, 0, len(tasks))
	for _, t := range tasks {
		if t.Prolong && t.JobIdentity != "" {
			if cur, ok := latest[t.JobIdentity]; !ok || t.StartTime.After(cur.StartTime) {
				latest[t.JobIdentity] = t
			}
			continue
		}
		others = append(others, t)
	}
	for _, t := range latest {
		others = append(others, t)
	}
	return others
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
