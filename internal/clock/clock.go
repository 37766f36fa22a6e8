// Package clock provides an overridable time source for snapshot timestamps.
package clock

import "time"

// NowFunc returns current time. Override in tests for determinism.
var NowFunc = time.Now

// Now is a thin wrapper around NowFunc.
func Now() time.Time { return NowFunc() }

// Freeze makes Now return at until the returned restore function is called.
func Freeze(at time.Time) (restore func()) {
	previous := NowFunc
	NowFunc = func() time.Time { return at }
	return func() { NowFunc = previous }
}
