package geometry

import (
	"fmt"
	"strings"

	"github.com/logrusorgru/aurora"
)

func (poly Polygon) Len() int {
	return len(poly.Points)
}

// Vertex i, with circular indexing: At(Len()) is At(0), and At(-1) is the last
// vertex. This is what makes the closing edge an ordinary edge for every
// algorithm that walks i -> i+1.
func (poly Polygon) At(i int) Point {
	if len(poly.Points) == 0 {
		fatalf("cannot index empty polygon")
	}
	return poly.Points[CircularIndex(i, len(poly.Points))]
}

// Directed edge from vertex i to vertex i+1.
func (poly Polygon) Edge(i int) Segment {
	return Segment{poly.At(i), poly.At(i + 1)}
}

func (poly Polygon) Reverse() Polygon {
	newPoly := Polygon{Points: make([]Point, 0, len(poly.Points))}
	for i := len(poly.Points) - 1; i >= 0; i-- {
		newPoly.Points = append(newPoly.Points, poly.Points[i])
	}
	return newPoly
}

// Shoelace area, positive for counterclockwise polygons.
func (poly Polygon) SignedArea() float64 {
	var area float64
	for i, p := range poly.Points {
		next := poly.At(i + 1)
		area += p.X*next.Y - next.X*p.Y
	}
	return area / 2
}

func (poly Polygon) IsCCW() bool {
	return poly.SignedArea() > 0
}

// Mean of the vertices. This is not the area centroid, which needs a simple
// polygon; the vertex mean is defined for any vertex list.
func (poly Polygon) Centroid() Point {
	if len(poly.Points) == 0 {
		fatalf("cannot compute centroid of empty polygon")
	}
	var sumX, sumY float64
	for _, p := range poly.Points {
		sumX += p.X
		sumY += p.Y
	}
	n := float64(len(poly.Points))
	return Point{sumX / n, sumY / n}
}

func (poly Polygon) Bounds() Bounds {
	b := NewBounds()
	for _, p := range poly.Points {
		b.Extend(p)
	}
	return b
}

func (poly Polygon) String() string {
	parts := make([]string, len(poly.Points))
	for i, p := range poly.Points {
		parts[i] = p.String()
	}
	return fmt.Sprintf("Polygon[%s]", strings.Join(parts, " "))
}

// Like String, but colors the polygon by orientation: green for
// counterclockwise, yellow for clockwise, red for degenerate.
func (poly Polygon) DbgString() string {
	s := poly.String()
	area := poly.SignedArea()
	if len(poly.Points) < 3 || Equal(area, 0) {
		return aurora.Red(s).String()
	} else if area > 0 {
		return aurora.Green(s).String()
	}
	return aurora.Yellow(s).String()
}
