// Package geom provides the unit conversions and affine transforms shared by
// the preview and output compositing paths.
//
// Three length spaces are involved when placing a raster stamp on a PDF page:
// physical millimeters, PDF points (72 per inch), and pixel space at some
// density (pixels per inch). All conversions between them live here so that
// every caller agrees on the same arithmetic.
package geom

import "fmt"

// PointsPerInch is the PDF user-space unit density. PDF points are defined as
// exactly 72 per inch.
const PointsPerInch = 72.0

// MMPerInch converts between metric and imperial lengths.
const MMPerInch = 25.4

// MMToPoint converts millimeters to PDF points.
func MMToPoint(mm float64) float64 {
	return mm / MMPerInch * PointsPerInch
}

// PointToMM converts PDF points to millimeters.
func PointToMM(pt float64) float64 {
	return pt / PointsPerInch * MMPerInch
}

// MMToPixels converts millimeters to pixels at the given density.
// The density must be positive; a non-positive density is a programming
// error, not an input condition, and panics.
func MMToPixels(mm, dpi float64) float64 {
	checkDensity(dpi)
	return mm / MMPerInch * dpi
}

// PixelsToMM converts pixels at the given density to millimeters.
func PixelsToMM(px, dpi float64) float64 {
	checkDensity(dpi)
	return px / dpi * MMPerInch
}

func checkDensity(dpi float64) {
	if dpi <= 0 {
		panic(fmt.Sprintf("geom: non-positive density %v", dpi))
	}
}

// Point is a 2D coordinate or offset. Its unit depends on context.
type Point struct {
	X, Y float64
}

// Add returns the component-wise sum of p and q.
func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y}
}

// Scale returns p with both components multiplied by s.
func (p Point) Scale(s float64) Point {
	return Point{p.X * s, p.Y * s}
}
