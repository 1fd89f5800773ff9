package gamemath

// Clamp constrains value to [lo, hi]. When lo > hi the lower bound wins.
func Clamp(value, lo, hi float64) float64 {
	if value > hi {
		value = hi
	}
	if value < lo {
		value = lo
	}
	return value
}

// ClampInt is Clamp for ints.
func ClampInt(value, lo, hi int) int {
	if value > hi {
		value = hi
	}
	if value < lo {
		value = lo
	}
	return value
}

// ClampSpeed clamps a value to [-max, max].
func ClampSpeed(speed, max float64) float64 {
	if speed > max {
		return max
	}
	if speed < -max {
		return -max
	}
	return speed
}

// ClampToBounds keeps box horizontally inside [left, right]. The left edge
// wins when the box is wider than the bounds.
func ClampToBounds(box Rect, left, right float64) Rect {
	if box.Right() > right {
		box.X = right - box.W
	}
	if box.X < left {
		box.X = left
	}
	return box
}
