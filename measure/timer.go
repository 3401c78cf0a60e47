package measure

import (
	"fmt"
	"time"
)

// Timer measures the wall-clock time of one call. It is not safe for
// concurrent use; start one Timer per call.
type Timer struct {
	label   string
	now     func() time.Time
	started time.Time
	elapsed time.Duration
	stopped bool
}

// StartTimer returns a running Timer labelled for reporting.
func StartTimer(label string) *Timer {
	return startTimer(label, time.Now)
}

func startTimer(label string, now func() time.Time) *Timer {
	return &Timer{label: label, now: now, started: now()}
}

// Stop freezes the timer and returns the elapsed duration.
// Later calls return the same value.
func (t *Timer) Stop() time.Duration {
	if !t.stopped {
		t.elapsed = t.now().Sub(t.started)
		t.stopped = true
	}

	return t.elapsed
}

// Elapsed returns the running duration, or the final one once stopped.
func (t *Timer) Elapsed() time.Duration {
	if t.stopped {
		return t.elapsed
	}

	return t.now().Sub(t.started)
}

// Stopped reports whether Stop has been called.
func (t *Timer) Stopped() bool { return t.stopped }

// Measurement snapshots the timer under its label.
func (t *Timer) Measurement() Measurement {
	return Measurement{Label: t.label, Elapsed: t.Elapsed()}
}

// Measurement is one labelled elapsed duration.
type Measurement struct {
	Label   string
	Elapsed time.Duration
}

// String renders "<label> : <seconds> seconds" with millisecond precision.
func (m Measurement) String() string {
	return fmt.Sprintf("%s : %0.3f seconds", m.Label, m.Elapsed.Seconds())
}

// Time runs fn between a StartTimer and a Stop. The timer is stopped on
// every exit path, so the Measurement is valid even when fn fails; fn's
// error is returned unchanged.
func Time(label string, fn func() error) (m Measurement, err error) {
	t := StartTimer(label)
	defer func() {
		t.Stop()
		m = t.Measurement()
	}()

	return m, fn()
}
