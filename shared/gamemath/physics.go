package gamemath

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// WrapX returns restartX once an object of the given width has moved fully
// past the left edge at x=0, and x otherwise.
func WrapX(x, width, restartX float64) float64 {
	if x < -width {
		return restartX
	}
	return x
}
