package timer

import "time"

// Measure runs f and returns how long it took.
func Measure(f func()) time.Duration {
	start := time.Now()
	f()
	return time.Since(start)
}

// MeasureErr is Measure for functions that can fail.
func MeasureErr(f func() error) (time.Duration, error) {
	start := time.Now()
	err := f()
	return time.Since(start), err
}
