package geometry

import (
	"fmt"
	"math"
)

// Coordinate by index, 0 for X and 1 for Y.
func (p Point) Coord(i int) float64 {
	switch i {
	case 0:
		return p.X
	case 1:
		return p.Y
	}
	panic(fmt.Sprintf("point coordinate index out of range: %d", i))
}

func (p Point) Sub(other Point) Vector {
	return Vector{p.X - other.X, p.Y - other.Y}
}

func (p Point) Add(v Vector) Point {
	return Point{p.X + v.X, p.Y + v.Y}
}

// Squared euclidean distance to another point.
func (p Point) Dist2(other Point) float64 {
	return p.Sub(other).Norm2()
}

func (p Point) Equals(other Point) bool {
	return p.X == other.X && p.Y == other.Y
}

// Orientation of p relative to the directed line through a and b. The result
// is twice the signed area of the triangle (a, b, p): positive when p is
// strictly left of the line, negative when strictly right, and zero when the
// three points are collinear.
func (p Point) IsLeft(a, b Point) float64 {
	return (b.X-a.X)*(p.Y-a.Y) - (p.X-a.X)*(b.Y-a.Y)
}

func (p Point) IsFinite() bool {
	return !math.IsNaN(p.X) && !math.IsNaN(p.Y) && !math.IsInf(p.X, 0) && !math.IsInf(p.Y, 0)
}

func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}

func (v Vector) Add(other Vector) Vector {
	return Vector{v.X + other.X, v.Y + other.Y}
}

func (v Vector) Sub(other Vector) Vector {
	return Vector{v.X - other.X, v.Y - other.Y}
}

func (v Vector) Mul(s float64) Vector {
	return Vector{v.X * s, v.Y * s}
}

func (v Vector) Div(s float64) Vector {
	return Vector{v.X / s, v.Y / s}
}

// Sum of squared components. Never negative, and zero only for the zero
// vector.
func (v Vector) Norm2() float64 {
	return v.X*v.X + v.Y*v.Y
}

func (v Vector) Norm() float64 {
	return math.Sqrt(v.Norm2())
}
