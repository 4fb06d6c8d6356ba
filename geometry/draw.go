package geometry

import (
	"io"
	"math"
	"os"
	"path/filepath"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
)

// This is for debugging purposes only

// Padding around the drawing so balls poking past the polygons stay visible
const dbgDrawPadding = 50

// Render polygons, balls and query points to a PNG at path. Polygons are filled
// with the even-odd rule, balls are stroked, and points are green when inside
// at least one polygon by the even-odd rule and red otherwise.
func DbgDraw(path string, scale float64, polys []Polygon, balls []Ball, points []Point) error {
	bounds := NewBounds()
	for _, poly := range polys {
		for _, p := range poly.Points {
			bounds.Extend(p)
		}
	}
	for _, b := range balls {
		ballBounds := b.Bounds()
		bounds.Extend(ballBounds.Min)
		bounds.Extend(ballBounds.Max)
	}
	for _, p := range points {
		bounds.Extend(p)
	}
	if bounds.Empty() {
		bounds = Bounds{}
	}

	// Set up the context
	width := int(scale*(bounds.Max.X-bounds.Min.X)) + dbgDrawPadding*2
	height := int(scale*(bounds.Max.Y-bounds.Min.Y)) + dbgDrawPadding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()
	c.SetFillRuleEvenOdd()

	// Flip the context so the origin is at the bottom left
	c.Translate(0, float64(height))
	c.Scale(1, -1)

	// Translate for padding
	c.Translate(dbgDrawPadding, dbgDrawPadding)
	// Scale
	c.Scale(scale, scale)
	// Translate to min
	c.Translate(-bounds.Min.X, -bounds.Min.Y)

	c.SetLineWidth(2)
	for _, poly := range polys {
		if len(poly.Points) == 0 {
			continue
		}
		c.MoveTo(poly.Points[0].X, poly.Points[0].Y)
		for _, p := range poly.Points[1:] {
			c.LineTo(p.X, p.Y)
		}
		c.ClosePath()
	}
	c.SetRGB(0, 0.5, 0)
	c.FillPreserve()
	c.SetRGB(0, 1, 1)
	c.Stroke()

	c.SetRGB(1, 1, 0)
	for _, b := range balls {
		c.DrawCircle(b.Center.X, b.Center.Y, b.Radius)
		c.Stroke()
	}

	// Keep the point markers a constant size on screen
	markerRadius := 3 / math.Max(scale, Epsilon)
	for _, p := range points {
		inside := false
		for _, poly := range polys {
			if ContainsEvenOdd(poly, p) {
				inside = true
				break
			}
		}
		if inside {
			c.SetRGB(0, 1, 0)
		} else {
			c.SetRGB(1, 0, 0)
		}
		c.DrawCircle(p.X, p.Y, markerRadius)
		c.Fill()
	}

	return c.SavePNG(path)
}

// Draw to a temp file and print it to the terminal (iTerm only).
func DbgShow(scale float64, polys []Polygon, balls []Ball, points []Point) error {
	return dbgShow(os.Stdout, filepath.Join(os.TempDir(), "basins.png"), scale, polys, balls, points)
}

func dbgShow(w io.Writer, path string, scale float64, polys []Polygon, balls []Ball, points []Point) error {
	if err := DbgDraw(path, scale, polys, balls, points); err != nil {
		return err
	}
	return imgcat.CatFile(path, w)
}
