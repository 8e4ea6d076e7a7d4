package util

import (
	"math"
	"time"
)

// Seconds converts a number of seconds to a time.Duration, rounding to the
// nearest nanosecond. Values too large for a Duration saturate.
func Seconds(s float64) time.Duration {
	ns := math.Round(s * float64(time.Second))
	switch {
	case ns >= math.MaxInt64:
		return time.Duration(math.MaxInt64)
	case ns <= math.MinInt64:
		return time.Duration(math.MinInt64)
	}
	return time.Duration(ns)
}
