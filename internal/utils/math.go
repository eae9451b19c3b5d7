// internal/utils/math.go
package utils

import "math"

// Vec2 is a point or direction in world or screen space.
type Vec2 struct {
	X, Y float64
}

func NewVec2(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

func (v Vec2) Scale(k float64) Vec2 {
	return Vec2{X: v.X * k, Y: v.Y * k}
}

func (v Vec2) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// Magnitude returns the euclidean length of v.
func Magnitude(v Vec2) float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// Normalize returns v scaled to unit length. The zero vector is returned unchanged.
func Normalize(v Vec2) Vec2 {
	m := Magnitude(v)
	if m > 0 {
		return Vec2{X: v.X / m, Y: v.Y / m}
	}
	return v
}

// Distance returns the euclidean distance between a and b.
func Distance(a, b Vec2) float64 {
	dx := b.X - a.X
	dy := b.Y - a.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// AngleDeg returns atan2(v.Y, v.X) in degrees.
func AngleDeg(v Vec2) float64 {
	return RadToDeg(math.Atan2(v.Y, v.X))
}

func RadToDeg(rad float64) float64 {
	return rad * 180 / math.Pi
}

func DegToRad(deg float64) float64 {
	return deg * math.Pi / 180
}
