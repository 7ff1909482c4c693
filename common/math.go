package common

// Clamp limits v to [lo, hi]. If lo > hi, lo wins.
func Clamp(v, lo, hi float64) float64 {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}

// Countdown decrements a timer by dt and never lets it go below zero.
// It reports whether the timer crossed from positive to zero on this call.
func Countdown(t *float64, dt float64) bool {
	if t == nil || *t <= 0 || dt <= 0 {
		return false
	}
	*t -= dt
	if *t <= 0 {
		*t = 0
		return true
	}
	return false
}
