// Package clock provides the time source for run durations and report
// timestamps.
package clock

import "time"

// NowFunc returns current time.
var NowFunc = time.Now

// Now returns the current time of the active source.
func Now() time.Time { return NowFunc() }

// Freeze pins Now to at and returns a function restoring the previous source.
func Freeze(at time.Time) (restore func()) {
	previous := NowFunc
	NowFunc = func() time.Time { return at }
	return func() { NowFunc = previous }
}
