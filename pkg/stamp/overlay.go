package stamp

import (
	"bytes"
	"fmt"

	"codeberg.org/go-pdf/fpdf"
	"golang.org/x/text/encoding/charmap"

	"github.com/gardar/pdfstamp/pkg/geom"
	"github.com/gardar/pdfstamp/pkg/pagedoc"
)

// BuildOverlay renders the stamp onto a blank single-page document matching
// the target page's geometry. The page itself is a 72 DPI canvas (one pixel
// per PDF point), so the placement transform computed here and the one used
// for the live preview differ only in target density and origin.
func BuildOverlay(g pagedoc.PageGeometry, img Image, snap PlacementSnapshot, cfg StampConfig) ([]byte, error) {
	target := Target{
		DPI:    geom.PointsPerInch,
		Origin: geom.Point{X: g.OriginXPt, Y: g.OriginYPt},
	}
	m := ComputeTransform(snap, target, img.Resolution)

	// fpdf places images by top-left corner and size, so evaluate the
	// transform at the stamp's corners rather than handing it the matrix.
	corner := m.Apply(geom.Point{})
	w := float64(img.WidthPx) * m.A
	h := float64(img.HeightPx) * m.E

	pdf := fpdf.New("P", "pt", "", "")
	pdf.AddPageFormat("P", fpdf.SizeType{Wd: g.WidthPt, Ht: g.HeightPt})

	if cfg.LayerName != "" {
		pdf.BeginLayer(pdf.AddLayer(cfg.LayerName, true))
	}

	opts := fpdf.ImageOptions{ImageType: img.Format, ReadDpi: false}
	pdf.RegisterImageOptionsReader("stamp", opts, bytes.NewReader(img.Data))
	pdf.ImageOptions("stamp", corner.X, corner.Y, w, h, false, opts, 0, "")

	if cfg.Debug {
		drawDebugMarks(pdf, corner, w, h, snap)
	}

	if cfg.LayerName != "" {
		pdf.EndLayer()
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render overlay: %w", err)
	}
	return buf.Bytes(), nil
}

// drawDebugMarks outlines the stamp and labels its placement so misplaced
// coordinates can be diagnosed on the output itself.
func drawDebugMarks(pdf *fpdf.Fpdf, corner geom.Point, w, h float64, snap PlacementSnapshot) {
	pdf.SetDrawColor(255, 0, 0)
	pdf.Rect(corner.X, corner.Y, w, h, "D")

	label := fmt.Sprintf("%.1f, %.1f mm @ %.2fx", snap.PositionMM.X, snap.PositionMM.Y, snap.Scale)
	// Convert to ISO-8859-1 to avoid PDF encoding issues.
	latin1, err := charmap.ISO8859_1.NewEncoder().String(label)
	if err != nil {
		latin1 = label
	}
	pdf.SetFont("Helvetica", "", 8)
	pdf.SetTextColor(255, 0, 0)
	pdf.Text(corner.X, corner.Y-3, latin1)
}
