package window

import "time"

// TimeSynchronizer paces a loop to a target frame rate.
type TimeSynchronizer struct {
	prevTime     time.Time
	timePerFrame time.Duration
	sleep        func(time.Duration)
	now          func() time.Time
}

func NewTimeSynchronizer(targetFPS float64) *TimeSynchronizer {
	return &TimeSynchronizer{
		prevTime:     time.Now(),
		timePerFrame: time.Duration(float64(time.Second) / targetFPS),
		sleep:        time.Sleep,
		now:          time.Now,
	}
}

// MaySleep waits out what is left of the current frame. A loop running
// late does not sleep; it catches up instead of drifting.
func (ts *TimeSynchronizer) MaySleep() {
	cur := ts.now()
	ts.prevTime = ts.prevTime.Add(ts.timePerFrame)
	diff := ts.prevTime.Sub(cur)
	if diff > time.Millisecond {
		ts.sleep(diff)
		return
	}
	if -diff > 10*ts.timePerFrame {
		ts.prevTime = cur
	}
}
