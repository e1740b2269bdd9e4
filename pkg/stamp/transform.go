package stamp

import (
	"github.com/gardar/pdfstamp/pkg/geom"
)

// Target describes a canvas the stamp is drawn onto: its pixel density and
// the shift from page space to its own coordinate origin. The live preview
// raster and the final page-space overlay are both Targets; they differ only
// in these two fields, which is what keeps the preview and the saved output
// in agreement.
type Target struct {
	DPI    float64    // canvas pixels per inch; 72 for a page-space canvas
	Origin geom.Point // page-origin offset in canvas pixels
}

// ComputeTransform derives the affine transform mapping stamp-image pixel
// coordinates onto the target canvas. The stamp's native bitmap, drawn
// through this transform, lands at the placement's position with its
// physical size scaled by the placement's scale.
//
// The same derivation serves every canvas; only the target's density and
// origin vary. The target density must be positive (enforced by the unit
// conversions, which panic otherwise).
func ComputeTransform(snap PlacementSnapshot, t Target, res Resolution) geom.Matrix {
	drawScale := snap.Scale / res.DPI * t.DPI
	offset := geom.Point{
		X: geom.MMToPixels(snap.PositionMM.X, t.DPI),
		Y: geom.MMToPixels(snap.PositionMM.Y, t.DPI),
	}.Add(t.Origin)
	return geom.Translate(offset.X, offset.Y).Multiply(geom.Scale(drawScale, drawScale))
}
