package world

import "math"

type Vec2 struct{ X, Y float32 }

func (v Vec2) Len() float32 {
	return float32(math.Sqrt(float64(v.X*v.X + v.Y*v.Y)))
}

// Norm returns the unit vector, or the zero vector for zero input.
func (v Vec2) Norm() Vec2 {
	l := v.Len()
	if l == 0 {
		return Vec2{}
	}
	return Vec2{X: v.X / l, Y: v.Y / l}
}

func (v Vec2) IsZero() bool { return v.X == 0 && v.Y == 0 }

func (v Vec2) Add(o Vec2) Vec2    { return Vec2{v.X + o.X, v.Y + o.Y} }
func (v Vec2) Sub(o Vec2) Vec2    { return Vec2{v.X - o.X, v.Y - o.Y} }
func (v Vec2) Mul(s float32) Vec2 { return Vec2{v.X * s, v.Y * s} }

// Angle is the heading of v in radians; zero for the zero vector.
func (v Vec2) Angle() float32 {
	if v.IsZero() {
		return 0
	}
	return float32(math.Atan2(float64(v.Y), float64(v.X)))
}

func fromAngle(a, length float32) Vec2 {
	return Vec2{
		X: float32(math.Cos(float64(a))) * length,
		Y: float32(math.Sin(float64(a))) * length,
	}
}
