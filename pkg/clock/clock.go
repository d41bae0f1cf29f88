package clock

import "time"

// Timer is a pending callback registered with a Clock.
type Timer interface {
	// Stop cancels the timer. It returns false if the timer already fired or was stopped.
	Stop() bool
}

// Clock is the time source the store schedules against.
type Clock interface {
	Now() time.Time

	// AfterFunc runs f on its own goroutine (or the clock's driver) once d has elapsed.
	AfterFunc(d time.Duration, f func()) Timer
}

type realClock struct{}

// Real returns a Clock backed by the runtime timer.
// Pending timers never keep the process alive.
func Real() Clock {
	return realClock{}
}

func (realClock) Now() time.Time {
	return time.Now()
}

func (realClock) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}
