package geometry

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertEncloses(t *testing.T, ball Ball, poly Polygon) {
	t.Helper()
	for _, p := range poly.Points {
		assert.True(t, ball.Contains(p), "%s is outside %s", p, ball)
	}
}

func TestFastBall_UnitSquare(t *testing.T) {
	// The y extent (0,0)-(1,1) is the longer candidate diameter, and it
	// already covers every vertex.
	ball := FastBall(UnitSquare())
	assert.InDelta(t, 0.5, ball.Center.X, Epsilon)
	assert.InDelta(t, 0.5, ball.Center.Y, Epsilon)
	assert.InDelta(t, math.Sqrt(0.5), ball.Radius, Epsilon)
	assertEncloses(t, ball, UnitSquare())
}

func TestFastBall_SingleVertex(t *testing.T) {
	ball := FastBall(Polygon{[]Point{{2, -3}}})
	assert.Equal(t, Point{2, -3}, ball.Center)
	assert.Zero(t, ball.Radius)
}

func TestFastBall_Degenerate(t *testing.T) {
	t.Run("coincident", func(t *testing.T) {
		ball := FastBall(Polygon{[]Point{{2, 2}, {2, 2}, {2, 2}}})
		assert.Equal(t, Point{2, 2}, ball.Center)
		assert.Zero(t, ball.Radius)
	})

	t.Run("collinear", func(t *testing.T) {
		poly := Polygon{[]Point{{0, 0}, {1, 0}, {3, 0}, {2, 0}}}
		ball := FastBall(poly)
		assert.InDelta(t, 1.5, ball.Center.X, Epsilon)
		assert.InDelta(t, 0, ball.Center.Y, Epsilon)
		assert.InDelta(t, 1.5, ball.Radius, Epsilon)
		assertEncloses(t, ball, poly)
	})

	t.Run("vertical", func(t *testing.T) {
		poly := Polygon{[]Point{{1, 4}, {1, -2}, {1, 0}}}
		ball := FastBall(poly)
		assert.InDelta(t, 1, ball.Center.X, Epsilon)
		assert.InDelta(t, 1, ball.Center.Y, Epsilon)
		assert.InDelta(t, 3, ball.Radius, Epsilon)
	})
}

func TestFastBall_Expands(t *testing.T) {
	// The y extent wins, but the ball around it misses (2, 0), so the ball
	// has to grow toward it.
	poly := Polygon{[]Point{{0, 0}, {2, 0}, {1, 5}}}
	ball := FastBall(poly)
	initialRadius := math.Sqrt(6.5)
	assert.Greater(t, ball.Radius, initialRadius)
	assertEncloses(t, ball, poly)
	// The vertex that forced the expansion sits on the new boundary
	assert.InDelta(t, ball.Radius, math.Sqrt(Point{2, 0}.Dist2(ball.Center)), 1e-6)
}

func TestFastBall_EmptyPanics(t *testing.T) {
	err := func() (err error) {
		defer func() {
			err = HandleGeometryPanicRecover(recover())
		}()
		FastBall(Polygon{})
		return nil
	}()
	assert.EqualError(t, err, "cannot bound empty polygon")
}

func TestFastBall_Fixtures(t *testing.T) {
	for _, name := range []string{"comb", "notch", "kotor"} {
		t.Run(name, func(t *testing.T) {
			poly := LoadFixture(name)
			ball := FastBall(poly)
			assertEncloses(t, ball, poly)

			// Never smaller than half the longest bounding box side
			b := poly.Bounds()
			halfSide := math.Max(b.Max.X-b.Min.X, b.Max.Y-b.Min.Y) / 2
			assert.GreaterOrEqual(t, ball.Radius+Epsilon, halfSide)
		})
	}
}

func TestFastBall_EveryPermutationEncloses(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	points := make([]Point, 6)
	for i := range points {
		points[i] = Point{rng.Float64()*200 - 100, rng.Float64()*200 - 100}
	}

	radii := map[float64]struct{}{}
	permute(points, 0, func(perm []Point) {
		poly := Polygon{append([]Point(nil), perm...)}
		ball := FastBall(poly)
		assertEncloses(t, ball, poly)
		radii[ball.Radius] = struct{}{}
	})
	// Order sensitivity is expected, so nothing is asserted about radii beyond
	// there being at least one.
	require.NotEmpty(t, radii)
}

func TestFastBall_RandomClouds(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 200; i++ {
		n := 1 + rng.Intn(50)
		points := make([]Point, n)
		scale := math.Pow(10, float64(rng.Intn(7)-3))
		for j := range points {
			points[j] = Point{rng.NormFloat64() * scale, rng.NormFloat64() * scale}
		}
		poly := Polygon{points}
		ball := FastBall(poly)
		assertEncloses(t, ball, poly)

		rng.Shuffle(n, func(a, b int) { points[a], points[b] = points[b], points[a] })
		assertEncloses(t, FastBall(poly), poly)
	}
}

func TestBall_Contains(t *testing.T) {
	ball := Ball{Center: Point{1, 1}, Radius: 2}
	assert.True(t, ball.Contains(Point{1, 1}))
	assert.True(t, ball.Contains(Point{3, 1}))
	assert.False(t, ball.Contains(Point{3.01, 1}))
	assert.Equal(t, 4.0, ball.Radius2())
	assert.Equal(t, Bounds{Min: Point{-1, -1}, Max: Point{3, 3}}, ball.Bounds())
}

func TestBall_ContainsTiny(t *testing.T) {
	ball := Ball{Center: Point{0, 0}, Radius: 1e-6}
	assert.True(t, ball.Contains(Point{1e-6, 0}))
	assert.True(t, ball.Contains(Point{0, -1e-6}))
	assert.False(t, ball.Contains(Point{1e-5, 0}))
	assert.False(t, ball.Contains(Point{1.01e-6, 0}))

	triangle := Polygon{[]Point{{0, 0}, {1e-6, 0}, {0, 1e-6}}}
	tiny := FastBall(triangle)
	assertEncloses(t, tiny, triangle)
	assert.False(t, tiny.Contains(Point{2e-5, 2e-5}), "%s", tiny)

	assert.True(t, Ball{Center: Point{3, 4}}.Contains(Point{3, 4}))
	assert.False(t, Ball{Center: Point{3, 4}}.Contains(Point{3, 4 + 1e-12}))
}

func TestBall_DbgString(t *testing.T) {
	assert.Contains(t, Ball{Center: Point{1, 2}, Radius: 3}.DbgString(), "Ball{(1, 2) r=3}")
	assert.Contains(t, Ball{}.DbgString(), "r=0")
}

// Helpers

// Calls fn with every ordering of points, rearranging the slice in place.
func permute(points []Point, k int, fn func([]Point)) {
	if k == len(points) {
		fn(points)
		return
	}
	for i := k; i < len(points); i++ {
		points[k], points[i] = points[i], points[k]
		permute(points, k+1, fn)
		points[k], points[i] = points[i], points[k]
	}
}
