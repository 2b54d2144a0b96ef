// Package vec2 provides a small 2D vector type for scene geometry.
//
// All operations are pure and return new values.
package vec2

import "math"

// Vec2 is a 2D vector or point.
type Vec2 struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

func V(x, y float64) Vec2 { return Vec2{X: x, Y: y} }

func (v Vec2) Add(o Vec2) Vec2      { return Vec2{v.X + o.X, v.Y + o.Y} }
func (v Vec2) Sub(o Vec2) Vec2      { return Vec2{v.X - o.X, v.Y - o.Y} }
func (v Vec2) Scale(k float64) Vec2 { return Vec2{v.X * k, v.Y * k} }
func (v Vec2) IsZero() bool         { return v.X == 0 && v.Y == 0 }
func (v Vec2) Trunc() (x, y int)    { return int(v.X), int(v.Y) }

func Add(a, b Vec2) Vec2           { return a.Add(b) }
func Sub(a, b Vec2) Vec2           { return a.Sub(b) }
func Scale(v Vec2, k float64) Vec2 { return v.Scale(k) }

func Dot(a, b Vec2) float64 { return a.X*b.X + a.Y*b.Y }

// Len returns the Euclidean norm of v.
func Len(v Vec2) float64 {
	return math.Sqrt(Dot(v, v))
}

// Normalize returns v scaled to unit length. The zero vector maps to itself.
func Normalize(v Vec2) Vec2 {
	l := Len(v)
	if l == 0 {
		return Vec2{}
	}
	return v.Scale(1 / l)
}

// Orbit rotates p around pivot by rad radians using the matrix
// [cos -sin; sin cos].
func Orbit(p, pivot Vec2, rad float64) Vec2 {
	s, c := math.Sincos(rad)
	q := p.Sub(pivot)
	return Vec2{
		X: q.X*c - q.Y*s + pivot.X,
		Y: q.X*s + q.Y*c + pivot.Y,
	}
}
