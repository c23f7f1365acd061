package timex

import "time"

// Sleeper blocks the caller for a duration. Drivers take one so tests can
// account for delays without waiting.
type Sleeper interface {
	Sleep(d time.Duration)
}

// Real sleeps on the wall clock.
type Real struct{}

func (Real) Sleep(d time.Duration) { time.Sleep(d) }

// Recorder adds up requested delays instead of sleeping.
type Recorder struct {
	Elapsed time.Duration
	Calls   []time.Duration
}

func (r *Recorder) Sleep(d time.Duration) {
	r.Elapsed += d
	r.Calls = append(r.Calls, d)
}

// NowMs returns Unix milliseconds as int64.
func NowMs() int64 { return time.Now().UnixMilli() }
