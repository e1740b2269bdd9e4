// Package pagedoc wraps the paged-document primitives the stamping core
// builds on: page counting, page-range extraction, concatenation, geometry
// probing, and overlay merging. Documents are passed as raw PDF bytes so
// callers never hold library-specific handles.
package pagedoc

import "github.com/gardar/pdfstamp/pkg/geom"

// PageGeometry describes one page: its size in PDF points and the offset of
// the page box relative to the document's coordinate origin (a cropped page
// may not start at 0,0). The millimeter dimensions are derived once at
// construction.
type PageGeometry struct {
	WidthPt   float64
	HeightPt  float64
	OriginXPt float64
	OriginYPt float64
	WidthMM   float64
	HeightMM  float64
}

// NewPageGeometry builds a PageGeometry with the derived millimeter
// dimensions filled in.
func NewPageGeometry(widthPt, heightPt, originXPt, originYPt float64) PageGeometry {
	return PageGeometry{
		WidthPt:   widthPt,
		HeightPt:  heightPt,
		OriginXPt: originXPt,
		OriginYPt: originYPt,
		WidthMM:   geom.PointToMM(widthPt),
		HeightMM:  geom.PointToMM(heightPt),
	}
}

// Engine is the paged-document collaborator contract. Page numbers are
// 1-based throughout. Implementations fail with an error on malformed
// input; they never return partial documents.
type Engine interface {
	// PageCount reports the number of pages in the document.
	PageCount(doc []byte) (int, error)

	// Geometry probes the media box of one page.
	Geometry(doc []byte, page int) (PageGeometry, error)

	// ExtractRange copies pages first..last (inclusive) into a standalone
	// document.
	ExtractRange(doc []byte, first, last int) ([]byte, error)

	// Concatenate joins the given documents, in order, into one.
	Concatenate(docs ...[]byte) ([]byte, error)

	// MergeOverlay draws the first page of overlay on top of the first
	// page of base, producing a single-page document.
	MergeOverlay(base, overlay []byte) ([]byte, error)
}
