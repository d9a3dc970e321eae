// Package progress defines primitives for aggregating process counters across
// simulation runs that share a context. Callers embed a tracker with
// WithNewTracker and read it back with GetSnapshot.
package progress
