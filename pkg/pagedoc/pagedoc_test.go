package pagedoc

import (
	"bytes"
	"math"
	"testing"

	"codeberg.org/go-pdf/fpdf"
)

func TestNewPageGeometryDerivedMM(t *testing.T) {
	g := NewPageGeometry(595.28, 841.89, 10, 20)
	if math.Abs(g.WidthMM-210) > 0.01 || math.Abs(g.HeightMM-297) > 0.01 {
		t.Errorf("A4 derived as %.2f x %.2f mm", g.WidthMM, g.HeightMM)
	}
	if g.OriginXPt != 10 || g.OriginYPt != 20 {
		t.Errorf("origin = %v,%v", g.OriginXPt, g.OriginYPt)
	}
}

// makeDoc builds a PDF with the given number of A4 pages.
func makeDoc(t *testing.T, pages int) []byte {
	t.Helper()
	pdf := fpdf.New("P", "pt", "A4", "")
	pdf.SetFont("Helvetica", "", 12)
	for i := 0; i < pages; i++ {
		pdf.AddPage()
		pdf.Text(72, 72, "page")
	}
	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func TestPDFEngineRangeOperations(t *testing.T) {
	eng := NewPDFEngine()
	doc := makeDoc(t, 5)

	n, err := eng.PageCount(doc)
	if err != nil {
		t.Fatal(err)
	}
	if n != 5 {
		t.Fatalf("PageCount = %d, want 5", n)
	}

	mid, err := eng.ExtractRange(doc, 2, 4)
	if err != nil {
		t.Fatal(err)
	}
	if n, _ := eng.PageCount(mid); n != 3 {
		t.Errorf("extracted range has %d pages, want 3", n)
	}

	single, err := eng.ExtractRange(doc, 1, 1)
	if err != nil {
		t.Fatal(err)
	}
	joined, err := eng.Concatenate(single, mid)
	if err != nil {
		t.Fatal(err)
	}
	if n, _ := eng.PageCount(joined); n != 4 {
		t.Errorf("concatenated document has %d pages, want 4", n)
	}

	if _, err := eng.ExtractRange(doc, 3, 2); err == nil {
		t.Error("inverted range accepted")
	}
}

func TestPDFEngineGeometry(t *testing.T) {
	eng := NewPDFEngine()
	doc := makeDoc(t, 1)

	g, err := eng.Geometry(doc, 1)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(g.WidthPt-595.28) > 0.5 || math.Abs(g.HeightPt-841.89) > 0.5 {
		t.Errorf("A4 geometry = %.2f x %.2f pt", g.WidthPt, g.HeightPt)
	}
}

func TestPDFEngineMergeOverlay(t *testing.T) {
	eng := NewPDFEngine()
	base := makeDoc(t, 1)
	overlay := makeDoc(t, 1)

	merged, err := eng.MergeOverlay(base, overlay)
	if err != nil {
		t.Fatal(err)
	}
	if n, _ := eng.PageCount(merged); n != 1 {
		t.Errorf("merged document has %d pages, want 1", n)
	}
}

func TestPDFEngineMalformedInput(t *testing.T) {
	eng := NewPDFEngine()
	if _, err := eng.PageCount([]byte("not a pdf")); err == nil {
		t.Error("PageCount accepted garbage")
	}
	if _, err := eng.Geometry([]byte("not a pdf"), 1); err == nil {
		t.Error("Geometry accepted garbage")
	}
}
