package pagedoc

import (
	"bytes"
	"fmt"
	"io"

	"codeberg.org/go-pdf/fpdf"
	fpdfgofpdi "codeberg.org/go-pdf/fpdf/contrib/gofpdi"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/phpdave11/gofpdi"
)

// PDFEngine implements Engine for PDF documents. Range operations go through
// pdfcpu; geometry probing and overlay merging go through gofpdi page
// imports, the same mechanism used to rebuild pages when stamping.
type PDFEngine struct {
	conf *model.Configuration
}

// NewPDFEngine returns an engine with the default pdfcpu configuration.
func NewPDFEngine() *PDFEngine {
	return &PDFEngine{conf: model.NewDefaultConfiguration()}
}

// PageCount reports the number of pages in the document.
func (e *PDFEngine) PageCount(doc []byte) (int, error) {
	n, err := api.PageCount(bytes.NewReader(doc), e.conf)
	if err != nil {
		return 0, fmt.Errorf("page count: %w", err)
	}
	return n, nil
}

// Geometry probes the media box of one page.
func (e *PDFEngine) Geometry(doc []byte, page int) (geo PageGeometry, err error) {
	// gofpdi reports parse failures by panicking.
	defer recoverTo(&err, "page geometry")

	imp := gofpdi.NewImporter()
	rs := io.ReadSeeker(bytes.NewReader(doc))
	imp.SetSourceStream(&rs)
	imp.ImportPage(page, "/MediaBox")

	box, ok := imp.GetPageSizes()[page]["/MediaBox"]
	if !ok {
		return PageGeometry{}, fmt.Errorf("page geometry: no media box for page %d", page)
	}
	return NewPageGeometry(box["w"], box["h"], box["x"], box["y"]), nil
}

// ExtractRange copies pages first..last into a standalone document.
func (e *PDFEngine) ExtractRange(doc []byte, first, last int) ([]byte, error) {
	if first < 1 || last < first {
		return nil, fmt.Errorf("extract range: invalid range %d-%d", first, last)
	}
	var buf bytes.Buffer
	sel := []string{fmt.Sprintf("%d-%d", first, last)}
	if err := api.Trim(bytes.NewReader(doc), &buf, sel, e.conf); err != nil {
		return nil, fmt.Errorf("extract range %d-%d: %w", first, last, err)
	}
	return buf.Bytes(), nil
}

// Concatenate joins the given documents, in order, into one.
func (e *PDFEngine) Concatenate(docs ...[]byte) ([]byte, error) {
	if len(docs) == 0 {
		return nil, fmt.Errorf("concatenate: no documents")
	}
	if len(docs) == 1 {
		return docs[0], nil
	}
	readers := make([]io.ReadSeeker, len(docs))
	for i, d := range docs {
		readers[i] = bytes.NewReader(d)
	}
	var buf bytes.Buffer
	if err := api.MergeRaw(readers, &buf, false, e.conf); err != nil {
		return nil, fmt.Errorf("concatenate %d documents: %w", len(docs), err)
	}
	return buf.Bytes(), nil
}

// MergeOverlay draws the first page of overlay on top of the first page of
// base. Both pages are imported as templates onto a fresh canvas sized to
// the base page, base first so the overlay ends up on top.
func (e *PDFEngine) MergeOverlay(base, overlay []byte) (out []byte, err error) {
	defer recoverTo(&err, "merge overlay")

	geo, err := e.Geometry(base, 1)
	if err != nil {
		return nil, err
	}

	pdf := fpdf.New("P", "pt", "", "")
	pdf.AddPageFormat("P", fpdf.SizeType{Wd: geo.WidthPt, Ht: geo.HeightPt})

	baseRS := io.ReadSeeker(bytes.NewReader(base))
	baseImp := fpdfgofpdi.NewImporter()
	tpl := baseImp.ImportPageFromStream(pdf, &baseRS, 1, "/MediaBox")
	baseImp.UseImportedTemplate(pdf, tpl, 0, 0, geo.WidthPt, 0)

	ovlRS := io.ReadSeeker(bytes.NewReader(overlay))
	ovlImp := fpdfgofpdi.NewImporter()
	tpl = ovlImp.ImportPageFromStream(pdf, &ovlRS, 1, "/MediaBox")
	ovlImp.UseImportedTemplate(pdf, tpl, 0, 0, geo.WidthPt, 0)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("merge overlay: %w", err)
	}
	return buf.Bytes(), nil
}

func recoverTo(err *error, step string) {
	if r := recover(); r != nil {
		*err = fmt.Errorf("%s: %v", step, r)
	}
}
