package stamp

import (
	"fmt"

	"github.com/gardar/pdfstamp/pkg/pagedoc"
)

// ResolvePageIndex maps a user-supplied page index onto a concrete 1-based
// page number. Index 0 is rejected. A negative index counts from the end as
// numPages - |index|, so -1 names the second-to-last page. That arithmetic
// is pinned by tests; change it only together with them.
func ResolvePageIndex(page, numPages int) (int, error) {
	if page == 0 {
		return 0, &ConfigError{Param: "page", Reason: "page index 0 does not exist; pages are 1-based"}
	}
	resolved := page
	if page < 0 {
		resolved = numPages + page
	}
	if resolved < 1 || resolved > numPages {
		return 0, &ConfigError{Param: "page",
			Reason: fmt.Sprintf("page %d resolves to %d, outside 1..%d", page, resolved, numPages)}
	}
	return resolved, nil
}

// Splice builds the output document: the target page with the stamp
// composited on, re-stitched among the untouched pages. The placement is
// read as a single snapshot taken by the caller, so a drag arriving during
// the splice cannot shear the output.
//
// Every engine call that fails aborts the whole splice with a
// CollaboratorError naming the step; no partial document is returned.
func Splice(eng pagedoc.Engine, doc []byte, cfg StampConfig, snap PlacementSnapshot, img Image) ([]byte, error) {
	numPages, err := eng.PageCount(doc)
	if err != nil {
		return nil, &CollaboratorError{Step: "page count", Err: err}
	}

	page, err := ResolvePageIndex(cfg.Page, numPages)
	if err != nil {
		return nil, err
	}

	geo, err := eng.Geometry(doc, page)
	if err != nil {
		return nil, &CollaboratorError{Step: "page geometry", Err: err}
	}

	target, err := eng.ExtractRange(doc, page, page)
	if err != nil {
		return nil, &CollaboratorError{Step: "extract target page", Err: err}
	}

	overlay, err := BuildOverlay(geo, img, snap, cfg)
	if err != nil {
		return nil, &CollaboratorError{Step: "build overlay", Err: err}
	}

	stamped, err := eng.MergeOverlay(target, overlay)
	if err != nil {
		return nil, &CollaboratorError{Step: "merge overlay", Err: err}
	}

	if numPages == 1 {
		return stamped, nil
	}

	parts := make([][]byte, 0, 3)
	if page > 1 {
		pre, err := eng.ExtractRange(doc, 1, page-1)
		if err != nil {
			return nil, &CollaboratorError{Step: "extract leading pages", Err: err}
		}
		parts = append(parts, pre)
	}
	parts = append(parts, stamped)
	if page < numPages {
		post, err := eng.ExtractRange(doc, page+1, numPages)
		if err != nil {
			return nil, &CollaboratorError{Step: "extract trailing pages", Err: err}
		}
		parts = append(parts, post)
	}

	out, err := eng.Concatenate(parts...)
	if err != nil {
		return nil, &CollaboratorError{Step: "concatenate", Err: err}
	}
	return out, nil
}
