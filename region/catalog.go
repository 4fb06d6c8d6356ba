package region

import (
	"sort"

	"github.com/pkg/errors"

	"github.com/osuushi/basins/geometry"
)

// Predefined basins, outlined in lon/lat degrees. Some outlines repeat a
// vertex; the membership tests don't mind.

func lonLat(coords ...[2]float64) []geometry.Point {
	points := make([]geometry.Point, len(coords))
	for i, c := range coords {
		points[i] = geometry.Point{X: c[0], Y: c[1]}
	}
	return points
}

// The outlines below are fixed and valid, so the only way to fail is an unknown
// rule passed through WithRule. The exported constructors panic on it; Lookup
// returns an error instead.
func catalogBasin(abbrev, name string, points []geometry.Point, opts []Option) *Basin {
	b, err := NewBasin(abbrev, name, points, opts...)
	if err != nil {
		panic(err)
	}
	return b
}

func catalogComposed(abbrev, name string, members []*Basin, opts []Option) *ComposedBasin {
	c, err := NewComposedBasin(abbrev, name, members, opts...)
	if err != nil {
		panic(err)
	}
	return c
}

func Mediterranean(opts ...Option) *Basin {
	return catalogBasin("med", "Mediterranean Sea", lonLat(
		[2]float64{-5.71, 36.10}, [2]float64{3.16, 45.03}, [2]float64{15.56, 46.98}, [2]float64{28.39, 41.24},
		[2]float64{33.49, 40.45}, [2]float64{37.53, 36.32}, [2]float64{35.77, 30.75}, [2]float64{29.79, 30.22},
		[2]float64{19.25, 29.38}, [2]float64{-3.78, 33.94}, [2]float64{-5.54, 34.45},
	), opts)
}

func WesternMediterranean(opts ...Option) *Basin {
	return catalogBasin("wmed", "Western Mediterranean", lonLat(
		[2]float64{-5.80, 36.14}, [2]float64{4.00, 44.50}, [2]float64{11.69, 44.56}, [2]float64{16.88, 39.02},
		[2]float64{14.50, 37.75}, [2]float64{14.94, 36.70}, [2]float64{15.07, 32.10}, [2]float64{-5.67, 34.89},
	), opts)
}

func EasternMediterranean(opts ...Option) *Basin {
	return catalogBasin("emed", "Eastern Mediterranean", lonLat(
		[2]float64{15.12, 36.91}, [2]float64{15.07, 32.29}, [2]float64{17.49, 30.07}, [2]float64{21.97, 30.60},
		[2]float64{37.88, 30.07}, [2]float64{36.91, 37.23}, [2]float64{31.82, 40.38}, [2]float64{29.27, 41.05},
		[2]float64{25.22, 42.03}, [2]float64{19.51, 43.77}, [2]float64{15.82, 45.71}, [2]float64{13.62, 45.77},
		[2]float64{12.30, 45.64}, [2]float64{11.51, 45.21},
	), opts)
}

// The Kerguelen sector of the Southern Ocean.
func SouthernOcean(opts ...Option) *Basin {
	return catalogBasin("so", "Southern Ocean", lonLat(
		[2]float64{60.64, -47.52}, [2]float64{79.01, -47.28}, [2]float64{78.50, -57.61}, [2]float64{61.70, -56.80},
	), opts)
}

func BayOfKotor(opts ...Option) *Basin {
	return catalogBasin("kotor", "Bay of Kotor", lonLat(
		[2]float64{18.48, 42.51}, [2]float64{18.48, 42.43}, [2]float64{18.52, 42.40}, [2]float64{18.58, 42.39},
		[2]float64{18.78, 42.39}, [2]float64{18.78, 42.49}, [2]float64{18.69, 42.52},
	), opts)
}

// Baltic

func Bornholm(opts ...Option) *Basin {
	return catalogBasin("born", "Bornholm", lonLat(
		[2]float64{15, 54.5}, [2]float64{17.8, 54.5}, [2]float64{17.8, 55.5}, [2]float64{15, 55.5},
	), opts)
}

// A triangle, closed explicitly.
func Gdansk(opts ...Option) *Basin {
	return catalogBasin("gdan", "Gdansk", lonLat(
		[2]float64{18.1, 53.8}, [2]float64{20, 53.8}, [2]float64{20, 55.15}, [2]float64{18.1, 53.8},
	), opts)
}

func Gotland(opts ...Option) *Basin {
	return catalogBasin("gotl", "Gotland", lonLat(
		[2]float64{18.1, 55.15}, [2]float64{22, 55.15}, [2]float64{22, 60}, [2]float64{18.1, 60},
	), opts)
}

// Ionian sub-basins. The northern ones are triangles written with a doubled
// apex at (19, 40).

func IonianNorthWest(opts ...Option) *Basin {
	return catalogBasin("ionNW", "North-western Ionian", lonLat(
		[2]float64{17, 40.5}, [2]float64{19, 40}, [2]float64{17.26, 36.6}, [2]float64{15, 36.6},
	), opts)
}

func IonianNorthCentral(opts ...Option) *Basin {
	return catalogBasin("ionN", "North-central Ionian", lonLat(
		[2]float64{19, 40}, [2]float64{19, 40}, [2]float64{17.26, 36.6}, [2]float64{19.53, 36.6},
	), opts)
}

func IonianNorthEast(opts ...Option) *Basin {
	return catalogBasin("ionNE", "North-eastern Ionian", lonLat(
		[2]float64{19, 40}, [2]float64{19, 40}, [2]float64{19.53, 36.6}, [2]float64{21.8, 36.6},
	), opts)
}

func IonianSouthWest(opts ...Option) *Basin {
	return catalogBasin("ionSW", "South-western Ionian", lonLat(
		[2]float64{15, 36.6}, [2]float64{17.26, 36.6}, [2]float64{17.26, 30}, [2]float64{15, 30},
	), opts)
}

func IonianSouthCentral(opts ...Option) *Basin {
	return catalogBasin("ionS", "South-central Ionian", lonLat(
		[2]float64{17.26, 36.6}, [2]float64{19.53, 36.6}, [2]float64{19.53, 30}, [2]float64{17.26, 30},
	), opts)
}

func IonianSouthEast(opts ...Option) *Basin {
	return catalogBasin("ionSE", "South-eastern Ionian", lonLat(
		[2]float64{19.53, 36.6}, [2]float64{21.8, 36.6}, [2]float64{21.8, 30}, [2]float64{19.53, 30},
	), opts)
}

// NorthernIonian and the other composed basins build fresh members. opts go
// to the members and to the composed basin alike.
func NorthernIonian(opts ...Option) *ComposedBasin {
	return catalogComposed("Nion", "Northern Ionian", []*Basin{
		IonianNorthEast(opts...), IonianNorthCentral(opts...), IonianNorthWest(opts...),
	}, opts)
}

func SouthernIonian(opts ...Option) *ComposedBasin {
	return catalogComposed("Sion", "Southern Ionian", []*Basin{
		IonianSouthEast(opts...), IonianSouthCentral(opts...), IonianSouthWest(opts...),
	}, opts)
}

func Ionian(opts ...Option) *ComposedBasin {
	return catalogComposed("ion", "Ionian", []*Basin{
		IonianNorthEast(opts...), IonianNorthCentral(opts...), IonianNorthWest(opts...),
		IonianSouthEast(opts...), IonianSouthCentral(opts...), IonianSouthWest(opts...),
	}, opts)
}

var catalog = map[string]func(...Option) Region{
	"med":   func(opts ...Option) Region { return Mediterranean(opts...) },
	"wmed":  func(opts ...Option) Region { return WesternMediterranean(opts...) },
	"emed":  func(opts ...Option) Region { return EasternMediterranean(opts...) },
	"so":    func(opts ...Option) Region { return SouthernOcean(opts...) },
	"kotor": func(opts ...Option) Region { return BayOfKotor(opts...) },
	"born":  func(opts ...Option) Region { return Bornholm(opts...) },
	"gdan":  func(opts ...Option) Region { return Gdansk(opts...) },
	"gotl":  func(opts ...Option) Region { return Gotland(opts...) },
	"ionNW": func(opts ...Option) Region { return IonianNorthWest(opts...) },
	"ionN":  func(opts ...Option) Region { return IonianNorthCentral(opts...) },
	"ionNE": func(opts ...Option) Region { return IonianNorthEast(opts...) },
	"ionSW": func(opts ...Option) Region { return IonianSouthWest(opts...) },
	"ionS":  func(opts ...Option) Region { return IonianSouthCentral(opts...) },
	"ionSE": func(opts ...Option) Region { return IonianSouthEast(opts...) },
	"Nion":  func(opts ...Option) Region { return NorthernIonian(opts...) },
	"Sion":  func(opts ...Option) Region { return SouthernIonian(opts...) },
	"ion":   func(opts ...Option) Region { return Ionian(opts...) },
}

// Lookup builds the predefined basin with the given abbreviation.
func Lookup(abbrev string, opts ...Option) (Region, error) {
	build, ok := catalog[abbrev]
	if !ok {
		return nil, errors.Errorf("unknown basin %q", abbrev)
	}
	if err := validateRule(buildOptions(opts).rule); err != nil {
		return nil, errors.Wrapf(err, "basin %q", abbrev)
	}
	return build(opts...), nil
}

// Abbrevs lists the predefined basins, sorted.
func Abbrevs() []string {
	abbrevs := make([]string, 0, len(catalog))
	for abbrev := range catalog {
		abbrevs = append(abbrevs, abbrev)
	}
	sort.Strings(abbrevs)
	return abbrevs
}
