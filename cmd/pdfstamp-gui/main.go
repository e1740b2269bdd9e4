// pdfstamp-gui is the interactive front-end of pdfstamp: it renders a live
// preview of the target page, lets the user drag the stamp into place and
// adjust its size, then saves the stamped document. The window can also
// print the pdfstamp command line reproducing the chosen placement.
//
// Usage:
//
//	pdfstamp-gui -input document.pdf -stamp logo.png -output stamped.pdf [options]
//
// Options:
//
//	-page int          Target page, 1-based; negative counts from the end (default 1)
//	-x, -y float       Initial offset in millimeters
//	-scale float       Initial scale multiplier (default 1.0)
//	-dpi float         Override the stamp's pixel density instead of probing it
//	-layer string      Draw the stamp inside a named toggleable layer
//	-preview-dpi float Preview raster density (default 96)
//	-pdftoppm string   Path to the pdftoppm binary used for previews
package main

import (
	"bytes"
	"flag"
	"fmt"
	"image"
	"os"

	"github.com/gardar/pdfstamp/pkg/pagedoc"
	"github.com/gardar/pdfstamp/pkg/preview"
	"github.com/gardar/pdfstamp/pkg/stamp"
	"github.com/gardar/pdfstamp/pkg/stampui"
)

func main() {
	inputPath := flag.String("input", "", "Input PDF path")
	stampPath := flag.String("stamp", "", "Stamp image path (PNG or JPEG)")
	outputPath := flag.String("output", "", "Output PDF path")
	page := flag.Int("page", 1, "Target page, 1-based; negative counts from the end")
	posX := flag.Float64("x", 0, "Initial horizontal offset in millimeters")
	posY := flag.Float64("y", 0, "Initial vertical offset in millimeters")
	scale := flag.Float64("scale", 1.0, "Initial scale multiplier")
	dpi := flag.Float64("dpi", 0, "Override the stamp's pixel density instead of probing it")
	layerName := flag.String("layer", "", "Draw the stamp inside a named toggleable layer")
	previewDPI := flag.Float64("preview-dpi", 96, "Preview raster density")
	pdftoppm := flag.String("pdftoppm", "", "Path to the pdftoppm binary used for previews")
	flag.Parse()

	if *inputPath == "" || *stampPath == "" || *outputPath == "" {
		fmt.Fprintln(os.Stderr, "Error: Must provide -input, -stamp and -output paths")
		flag.PrintDefaults()
		os.Exit(1)
	}

	cfg := stamp.StampConfig{
		Page:      *page,
		PosXMM:    *posX,
		PosYMM:    *posY,
		Scale:     *scale,
		DPI:       *dpi,
		LayerName: *layerName,
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	doc, err := os.ReadFile(*inputPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to read input PDF: %v\n", err)
		os.Exit(1)
	}
	stampData, err := os.ReadFile(*stampPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to read stamp image: %v\n", err)
		os.Exit(1)
	}

	img, err := stamp.LoadImage(stampData, *dpi)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if img.Resolution.Source == stamp.SourceFallback {
		fmt.Printf("Warning: stamp image carries no resolution metadata; assuming %.0f DPI\n",
			stamp.FallbackDPI)
	}

	// The preview needs the decoded pixels, not just the header.
	stampRaster, _, err := image.Decode(bytes.NewReader(stampData))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to decode stamp image: %v\n", err)
		os.Exit(1)
	}

	session := &stampui.Session{
		InputPath:  *inputPath,
		StampPath:  *stampPath,
		OutputPath: *outputPath,
		Config:     cfg,
		PreviewDPI: *previewDPI,
		Engine:     pagedoc.NewPDFEngine(),
		Renderer:   &preview.PopplerRenderer{Binary: *pdftoppm},
	}
	if err := session.Run(doc, img, stampRaster); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
