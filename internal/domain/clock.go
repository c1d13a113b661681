package domain

import (
	"math/rand"

	"github.com/jonboulle/clockwork"
)

// clock is a package-level time source so tests can freeze time via SetClock.
// Production code uses the real clock; tests inject a fake for deterministic
// GeneratedAt values.
var clock = clockwork.NewRealClock()

// SetClock swaps the time source for task completion. Pass nil to reset to
// real time.
func SetClock(c clockwork.Clock) {
	if c == nil {
		clock = clockwork.NewRealClock()
		return
	}
	clock = c
}

// seedSource produces the per-build random seed in [0, 2^31-1]. The seed
// only decorates the output; tests pin it via SetSeedSource.
var seedSource = func() int32 { return rand.Int31() }

// SetSeedSource swaps the seed generator. Pass nil to reset to the default.
func SetSeedSource(f func() int32) {
	if f == nil {
		seedSource = func() int32 { return rand.Int31() }
		return
	}
	seedSource = f
}
