package clock

import "time"

// Clock stamps session creation and turn times
type Clock interface {
	Now() time.Time
}

// Func adapts a plain function to Clock
type Func func() time.Time

func (f Func) Now() time.Time { return f() }

// New returns the wall clock in UTC
func New() Clock {
	return Func(func() time.Time { return time.Now().UTC() })
}
