// Package progress provides a lightweight tracker that keeps aggregated
// process counters (total, completed, allocated, failed, …) across the runs
// issued with one context. The tracker lives in the context; every component
// that receives the context can update the counters via UpdateCtx.

package progress

import (
	"context"
	"sync"
	"time"
)

// Delta represents an incremental counter change emitted by the dispatcher
// after a run.
type Delta struct {
	Runs       int
	Total      int
	Completed  int
	Allocated  int
	Failed     int
	Deadlocked int
	Safe       int
}

// Progress keeps aggregated process counters. It is safe for concurrent use.
type Progress struct {
	Session   string
	StartedAt time.Time

	Runs                int
	TotalProcesses      int
	CompletedProcesses  int
	AllocatedProcesses  int
	FailedProcesses     int
	DeadlockedProcesses int
	SafeProcesses       int

	sync.Mutex
	onChange func(Progress)
}

// Update applies the supplied delta. If an onChange callback has been
// registered it is invoked with a copy outside the critical section.
func (p *Progress) Update(d Delta) {
	if p == nil {
		return
	}

	p.Lock()

	p.Runs += d.Runs
	p.TotalProcesses += d.Total
	p.CompletedProcesses += d.Completed
	p.AllocatedProcesses += d.Allocated
	p.FailedProcesses += d.Failed
	p.DeadlockedProcesses += d.Deadlocked
	p.SafeProcesses += d.Safe

	snapshot := p.copy()
	cb := p.onChange

	p.Unlock()

	if cb != nil {
		cb(snapshot)
	}
}

func (p *Progress) copy() Progress {
	return Progress{
		Session:             p.Session,
		StartedAt:           p.StartedAt,
		Runs:                p.Runs,
		TotalProcesses:      p.TotalProcesses,
		CompletedProcesses:  p.CompletedProcesses,
		AllocatedProcesses:  p.AllocatedProcesses,
		FailedProcesses:     p.FailedProcesses,
		DeadlockedProcesses: p.DeadlockedProcesses,
		SafeProcesses:       p.SafeProcesses,
	}
}

// Snapshot returns a copy of the tracker suitable for read-only inspection.
func (p *Progress) Snapshot() Progress {
	if p == nil {
		return Progress{}
	}
	p.Lock()
	defer p.Unlock()
	return p.copy()
}

// OnChange registers a callback invoked after every Update. Passing nil
// disables the callback.
func (p *Progress) OnChange(cb func(Progress)) {
	if p == nil {
		return
	}
	p.Lock()
	p.onChange = cb
	p.Unlock()
}

// ----------------------------------------------------------------------------
// Context helpers
// ----------------------------------------------------------------------------

type trackerKeyT struct{}

var trackerKey trackerKeyT

// WithNewTracker creates a new Progress tracker, embeds it in a derived
// context and returns both.
func WithNewTracker(ctx context.Context, session string, onChange func(Progress)) (context.Context, *Progress) {
	if ctx == nil {
		ctx = context.Background()
	}
	tr := &Progress{
		Session:   session,
		StartedAt: time.Now(),
		onChange:  onChange,
	}
	return context.WithValue(ctx, trackerKey, tr), tr
}

// FromContext extracts the Progress tracker from ctx.
func FromContext(ctx context.Context) (*Progress, bool) {
	if ctx == nil {
		return nil, false
	}
	tr, ok := ctx.Value(trackerKey).(*Progress)
	return tr, ok
}

// GetSnapshot combines FromContext and Snapshot.
func GetSnapshot(ctx context.Context) (Progress, bool) {
	if tr, ok := FromContext(ctx); ok {
		return tr.Snapshot(), true
	}
	return Progress{}, false
}

// UpdateCtx looks up the tracker in ctx (if any) and applies the delta.
func UpdateCtx(ctx context.Context, d Delta) {
	if tr, ok := FromContext(ctx); ok {
		tr.Update(d)
	}
}
