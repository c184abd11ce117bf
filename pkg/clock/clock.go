package clock

import "time"

// Clock supplies the current instant. Every accrual computation takes its
// notion of "now" from here so tests can pin time.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now().UTC() }

// System returns a Clock backed by the wall clock (UTC).
func System() Clock { return systemClock{} }

// Fixed returns a Clock frozen at t. Intended for tests.
func Fixed(t time.Time) Clock { return fixedClock{t: t} }

type fixedClock struct{ t time.Time }

func (f fixedClock) Now() time.Time { return f.t }
