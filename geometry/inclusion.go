package geometry

// Point-in-polygon tests after Franklin and Sunday. Both walk the edges
// i -> i+1 using circular indexing, so the closing edge needs no special case,
// and both compare coordinates exactly. A point lying exactly on an edge may
// land on either side, and the two tests need not agree about it.

type Rule int

const (
	// Parity of the crossing number.
	EvenOdd Rule = iota
	// Winding number is not zero.
	NonZero
)

func (r Rule) String() string {
	switch r {
	case EvenOdd:
		return "even-odd"
	case NonZero:
		return "non-zero"
	}
	return "unknown"
}

// Number of polygon edges crossed by the ray running from p toward +x.
//
// An edge counts when it straddles p's horizontal line, going upward with
// start.Y <= p.Y < end.Y or downward with start.Y > p.Y >= end.Y, and meets
// that line strictly to the right of p. Horizontal edges never straddle the
// line, so they are never counted.
func CrossingNumber(poly Polygon, p Point) int {
	crossingCount := 0
	for i := range poly.Points {
		start, end := poly.At(i), poly.At(i+1)
		if (start.Y <= p.Y && end.Y > p.Y) || (start.Y > p.Y && end.Y <= p.Y) {
			// The straddle test above guarantees start.Y != end.Y
			t := (p.Y - start.Y) / (end.Y - start.Y)
			if p.X < start.X+t*(end.X-start.X) {
				crossingCount++
			}
		}
	}
	return crossingCount
}

// Even-odd rule point-in-polygon.
func ContainsEvenOdd(poly Polygon, p Point) bool {
	return CrossingNumber(poly, p)&1 == 1
}

// Signed number of times the polygon winds around p. Zero means p is outside.
// Counterclockwise loops count positive. Unlike the crossing number, this
// stays meaningful for self-intersecting polygons.
func WindingNumber(poly Polygon, p Point) int {
	windingNumber := 0
	for i := range poly.Points {
		start, end := poly.At(i), poly.At(i+1)
		if start.Y <= p.Y {
			// Upward crossing with p left of the edge
			if end.Y > p.Y && p.IsLeft(start, end) > 0 {
				windingNumber++
			}
		} else {
			// Downward crossing with p right of the edge
			if end.Y <= p.Y && p.IsLeft(start, end) < 0 {
				windingNumber--
			}
		}
	}
	return windingNumber
}

// Non-zero rule point-in-polygon.
func ContainsNonZero(poly Polygon, p Point) bool {
	return WindingNumber(poly, p) != 0
}

func Contains(poly Polygon, p Point, rule Rule) bool {
	switch rule {
	case EvenOdd:
		return ContainsEvenOdd(poly, p)
	case NonZero:
		return ContainsNonZero(poly, p)
	}
	fatalf("unknown rule: %d", rule)
	return false
}
