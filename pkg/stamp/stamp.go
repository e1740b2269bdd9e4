// Package stamp places a raster image onto one page of a PDF document.
//
// The package reconciles four coordinate spaces — PDF page space, physical
// millimeters, the stamp image's own pixel grid, and an interactive preview
// canvas — into a single placement transform, then assembles the output by
// compositing the stamp onto a copy of the target page and re-stitching that
// page among the untouched ones.
//
// Key properties:
//
// - The preview and the saved output use the identical transform derivation,
//   so what the user drags into place is what ends up in the file.
// - All other pages of the document pass through unmodified.
// - The stamp's physical size follows the image's resolution metadata, an
//   explicit density override, or a reported 72 DPI fallback.
//
// Main entry points:
//
// - ApplyStamp: batch placement with caller-supplied coordinates
// - Dragger: interactive placement driven by pointer events
// - Splice: page assembly from an already-positioned placement
package stamp

import (
	"fmt"

	"github.com/gardar/pdfstamp/pkg/pagedoc"
)

// ApplyStamp is the high-level batch entry point: it validates the
// configuration, loads and resolves the stamp image, and splices the stamped
// page into the document. The returned bytes are the complete output PDF.
//
// A stamp image without resolution metadata is still stamped, at an assumed
// 72 DPI; that changes its physical size, so a diagnostic is written to the
// configured logger.
func ApplyStamp(inputPDF, stampImage []byte, cfg StampConfig, eng pagedoc.Engine) ([]byte, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if len(inputPDF) == 0 {
		return nil, &ResourceError{Resource: "input PDF", Err: fmt.Errorf("empty document")}
	}

	img, err := LoadImage(stampImage, cfg.DPI)
	if err != nil {
		return nil, err
	}
	if img.Resolution.Source == SourceFallback {
		fmt.Fprintf(cfg.logger(),
			"Warning: stamp image carries no resolution metadata; assuming %.0f DPI (%.1f x %.1f mm at scale 1)\n",
			FallbackDPI, img.WidthMM(), img.HeightMM())
	}

	placement, err := NewPlacement(cfg.PosXMM, cfg.PosYMM, cfg.Scale)
	if err != nil {
		return nil, err
	}

	return Splice(eng, inputPDF, cfg, placement.Snapshot(), img)
}
