package world

import "math"

func dist2(a, b Vec2) float32 {
	d := a.Sub(b)

	return d.X*d.X + d.Y*d.Y
}

func dist(a, b Vec2) float32 {
	return a.Sub(b).Len()
}

// overlaps reports whether two circles touch (centre distance <= sum of radii).
func overlaps(a Vec2, ar float32, b Vec2, br float32) bool {
	rr := ar + br
	return dist2(a, b) <= rr*rr
}

func minf(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

func maxf(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}

func clamp(v, lo, hi float32) float32 {
	return float32(math.Max(float64(lo), math.Min(float64(hi), float64(v))))
}

func floorf(v float32) float32 {
	return float32(math.Floor(float64(v)))
}
