package stamp

import (
	"math"
	"testing"

	"github.com/gardar/pdfstamp/pkg/geom"
)

func TestComputeTransformPlacement(t *testing.T) {
	snap := PlacementSnapshot{PositionMM: geom.Point{X: 25.4, Y: 50.8}, Scale: 2.0}
	res := Resolution{DPI: 144, Source: SourceMetadata}
	target := Target{DPI: 72} // page-space canvas

	m := ComputeTransform(snap, target, res)

	// Top-left corner: 25.4mm = 72pt, 50.8mm = 144pt.
	corner := m.Apply(geom.Point{})
	if math.Abs(corner.X-72) > 1e-9 || math.Abs(corner.Y-144) > 1e-9 {
		t.Errorf("corner = %+v, want {72 144}", corner)
	}

	// A 144px stamp edge is 1 inch at 144 DPI; doubled it spans 2 inches
	// = 144 page points.
	edge := m.Apply(geom.Point{X: 144}).X - corner.X
	if math.Abs(edge-144) > 1e-9 {
		t.Errorf("scaled edge = %v, want 144", edge)
	}
}

// The preview canvas and the final page-space canvas must place the stamp at
// the same physical point, whatever their densities and origins.
func TestTransformParityAcrossTargets(t *testing.T) {
	snap := PlacementSnapshot{PositionMM: geom.Point{X: 31.5, Y: 12.25}, Scale: 0.85}
	res := Resolution{DPI: 300, Source: SourceExplicit}

	previewTarget := Target{DPI: 110.5, Origin: geom.Point{X: 17, Y: -4}}
	finalTarget := Target{DPI: 72, Origin: geom.Point{X: 3, Y: 9}}

	mPreview := ComputeTransform(snap, previewTarget, res)
	mFinal := ComputeTransform(snap, finalTarget, res)

	// Map the stamp's center through both transforms, then back each
	// canvas point into page-space millimeters.
	center := geom.Point{X: 210, Y: 297}
	toMM := func(p geom.Point, tg Target) geom.Point {
		return geom.Point{
			X: geom.PixelsToMM(p.X-tg.Origin.X, tg.DPI),
			Y: geom.PixelsToMM(p.Y-tg.Origin.Y, tg.DPI),
		}
	}

	a := toMM(mPreview.Apply(center), previewTarget)
	b := toMM(mFinal.Apply(center), finalTarget)
	if math.Abs(a.X-b.X) > 1e-9 || math.Abs(a.Y-b.Y) > 1e-9 {
		t.Errorf("preview maps center to %+v mm, final to %+v mm", a, b)
	}
}
