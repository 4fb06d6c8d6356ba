package region

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/osuushi/basins/geometry"
)

func mustBasin(t *testing.T, abbrev, name string, points []geometry.Point, opts ...Option) *Basin {
	t.Helper()
	b, err := NewBasin(abbrev, name, points, opts...)
	require.NoError(t, err)
	return b
}

// The Ionian sub-basins, west to east, north then south.
func ionianBasins() []*Basin {
	return []*Basin{
		IonianNorthWest(), IonianNorthCentral(), IonianNorthEast(),
		IonianSouthWest(), IonianSouthCentral(), IonianSouthEast(),
	}
}

// Fresh copies of catalog outlines, safe to modify.

func kotorPoints() []geometry.Point {
	return append([]geometry.Point(nil), BayOfKotor().Polygon().Points...)
}

func gotlandPoints() []geometry.Point {
	return append([]geometry.Point(nil), Gotland().Polygon().Points...)
}

// A regular grid of points covering bounds padded by a quarter on each side.
func grid(b geometry.Bounds, n int) []geometry.Point {
	w, h := b.Max.X-b.Min.X, b.Max.Y-b.Min.Y
	var points []geometry.Point
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			points = append(points, geometry.Point{
				X: b.Min.X - w/4 + 1.5*w*(float64(i)+0.5)/float64(n),
				Y: b.Min.Y - h/4 + 1.5*h*(float64(j)+0.5)/float64(n),
			})
		}
	}
	return points
}
