package geometry

import (
	"fmt"
	"math"

	"github.com/logrusorgru/aurora"
)

// Fast approximation of the minimum bounding ball of the polygon's vertices,
// after Ritter (1990). Pick the wider of the x and y extents as an initial
// diameter, then sweep the vertices once, growing the ball just enough to
// swallow each vertex that falls outside it.
//
// The result always encloses every vertex, but it is not minimal, and it
// depends on vertex order: the same points in a different order can give a
// different (still enclosing) ball.
func FastBall(poly Polygon) Ball {
	if len(poly.Points) == 0 {
		fatalf("cannot bound empty polygon")
	}

	// Indices of the bounding box extremes. A vertex that sets a new minimum
	// is not also considered for the maximum, and ties keep the first vertex
	// seen.
	var minXIndex, maxXIndex, minYIndex, maxYIndex int
	minX, maxX := poly.Points[0].X, poly.Points[0].X
	minY, maxY := poly.Points[0].Y, poly.Points[0].Y
	for i := 1; i < len(poly.Points); i++ {
		p := poly.Points[i]
		if p.X < minX {
			minX, minXIndex = p.X, i
		} else if p.X > maxX {
			maxX, maxXIndex = p.X, i
		}
		if p.Y < minY {
			minY, minYIndex = p.Y, i
		} else if p.Y > maxY {
			maxY, maxYIndex = p.Y, i
		}
	}

	// Use the larger extent as the initial diameter
	dx := poly.Points[maxXIndex].Sub(poly.Points[minXIndex])
	dy := poly.Points[maxYIndex].Sub(poly.Points[minYIndex])
	var center Point
	var radius2 float64
	if dx.Norm2() >= dy.Norm2() {
		center = poly.Points[minXIndex].Add(dx.Div(2))
		radius2 = poly.Points[maxXIndex].Dist2(center)
	} else {
		center = poly.Points[minYIndex].Add(dy.Div(2))
		radius2 = poly.Points[maxYIndex].Dist2(center)
	}
	radius := math.Sqrt(radius2)

	for _, p := range poly.Points {
		d := p.Sub(center)
		dist2 := d.Norm2()
		if dist2 <= radius2 {
			continue
		}
		// Grow just enough to put p on the boundary, and slide the center
		// toward p by the same amount.
		dist := math.Sqrt(dist2)
		radius = (radius + dist) / 2
		radius2 = radius * radius
		center = center.Add(d.Mul((dist - radius) / dist))
	}

	return Ball{Center: center, Radius: radius}
}

func (b Ball) Radius2() float64 {
	return b.Radius * b.Radius
}

// Inclusive containment. The slack is a fraction Epsilon of the squared
// radius, so vertices FastBall placed exactly on the boundary are not lost to
// rounding, however small the ball. A zero radius ball holds only its center.
func (b Ball) Contains(p Point) bool {
	return p.Dist2(b.Center) <= b.Radius2()*(1+Epsilon)
}

func (b Ball) Bounds() Bounds {
	return Bounds{
		Min: Point{b.Center.X - b.Radius, b.Center.Y - b.Radius},
		Max: Point{b.Center.X + b.Radius, b.Center.Y + b.Radius},
	}
}

func (b Ball) String() string {
	return fmt.Sprintf("Ball{%s r=%g}", b.Center, b.Radius)
}

// Degenerate (zero radius) balls show up red.
func (b Ball) DbgString() string {
	if Equal(b.Radius, 0) {
		return aurora.Red(b.String()).String()
	}
	return aurora.Cyan(b.String()).String()
}
