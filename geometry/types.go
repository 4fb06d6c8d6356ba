package geometry

type Point struct {
	X float64
	Y float64
}

// A displacement between two points. It is kept distinct from Point so that
// the arithmetic reads the way the geometry does: point minus point is a
// vector, point plus vector is a point.
type Vector struct {
	X float64
	Y float64
}

// A closed loop of vertices. The edge from the last vertex back to the first
// is implicit; the last vertex should not repeat the first.
type Polygon struct {
	Points []Point
}

// Directed edge between two vertices.
type Segment struct {
	Start Point
	End   Point
}

// A circle given by its center and radius. Balls are plain values; FastBall
// returns a fresh one rather than filling in a caller's.
type Ball struct {
	Center Point
	Radius float64
}

// Axis-aligned extent of a set of points.
type Bounds struct {
	Min, Max Point
}
