package input

import "math"

// StickFromDrag scales a pointer drag offset to stick axes, clamping the
// length to reach so the reading never exceeds 1.
func StickFromDrag(dx, dy, reach float32) (x, y float32) {
	if reach <= 0 {
		return 0, 0
	}
	l := float32(math.Hypot(float64(dx), float64(dy)))
	if l > reach {
		dx, dy = dx*reach/l, dy*reach/l
	}
	return dx / reach, dy / reach
}
