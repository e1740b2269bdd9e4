// pdfstamp is a command-line tool for placing a raster image onto one page
// of a PDF document.
//
// The stamp's position and scale are given in physical units (millimeters
// from the page's top-left corner), so the same parameters produce the same
// physical placement regardless of the image's pixel density. All pages
// other than the target pass through unmodified.
//
// Usage:
//
//	pdfstamp -input document.pdf -stamp logo.png -output stamped.pdf [options]
//
// Required flags:
//
//	-input string    Input PDF path
//	-stamp string    Stamp image path (PNG or JPEG)
//	-output string   Output PDF path
//
// Placement options:
//
//	-page int        Target page, 1-based; negative counts from the end (default 1)
//	-x float         Horizontal offset in millimeters (default 0)
//	-y float         Vertical offset in millimeters (default 0)
//	-scale float     Scale multiplier on the stamp's physical size (default 1.0)
//	-dpi float       Override the stamp's pixel density instead of probing it
//
// Other options:
//
//	-layer string    Draw the stamp inside a named toggleable layer
//	-config string   YAML file supplying defaults for scale, dpi and layer
//	-debug           Outline the stamp and label its position on the page
//	-overwrite       Overwrite the output file if it exists
//	-print-command   Print the minimal command reproducing this run
//
// Examples:
//
// Stamp a logo 10mm from the top-left corner of page 1:
//
//	pdfstamp -input doc.pdf -stamp logo.png -x 10 -y 10 -output out.pdf
//
// Stamp the last-but-one page at half size:
//
//	pdfstamp -input doc.pdf -stamp sig.jpg -page -1 -scale 0.5 -output out.pdf
package main

import (
	"flag"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/gardar/pdfstamp/pkg/geom"
	"github.com/gardar/pdfstamp/pkg/pagedoc"
	"github.com/gardar/pdfstamp/pkg/stamp"
)

type yamlDefaults struct {
	Scale float64 `yaml:"scale"`
	DPI   float64 `yaml:"dpi"`
	Layer string  `yaml:"layer"`
}

// loadDefaults reads a YAML defaults file for parameters not given on the
// command line.
func loadDefaults(path string) (*yamlDefaults, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var yd yamlDefaults
	if err := yaml.Unmarshal(data, &yd); err != nil {
		return nil, err
	}
	return &yd, nil
}

func main() {
	inputPath := flag.String("input", "", "Input PDF path")
	stampPath := flag.String("stamp", "", "Stamp image path (PNG or JPEG)")
	outputPath := flag.String("output", "", "Output PDF path")
	page := flag.Int("page", 1, "Target page, 1-based; negative counts from the end")
	posX := flag.Float64("x", 0, "Horizontal offset in millimeters")
	posY := flag.Float64("y", 0, "Vertical offset in millimeters")
	scale := flag.Float64("scale", 1.0, "Scale multiplier on the stamp's physical size")
	dpi := flag.Float64("dpi", 0, "Override the stamp's pixel density instead of probing it")
	layerName := flag.String("layer", "", "Draw the stamp inside a named toggleable layer")
	configPath := flag.String("config", "", "YAML file supplying defaults for scale, dpi and layer")
	debug := flag.Bool("debug", false, "Outline the stamp and label its position on the page")
	overwrite := flag.Bool("overwrite", false, "Overwrite the output file if it exists")
	printCommand := flag.Bool("print-command", false, "Print the minimal command reproducing this run")
	flag.Parse()

	if *inputPath == "" || *stampPath == "" {
		fmt.Fprintln(os.Stderr, "Error: Must provide -input and -stamp paths")
		flag.PrintDefaults()
		os.Exit(1)
	}
	if *outputPath == "" {
		fmt.Fprintln(os.Stderr, "Error: Must provide -output path")
		os.Exit(1)
	}

	providedFlags := make(map[string]bool)
	flag.Visit(func(f *flag.Flag) {
		providedFlags[f.Name] = true
	})

	// YAML defaults fill in only what the command line left unset.
	if *configPath != "" {
		yd, err := loadDefaults(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to read config file: %v\n", err)
			os.Exit(1)
		}
		if !providedFlags["scale"] && yd.Scale > 0 {
			*scale = yd.Scale
		}
		if !providedFlags["dpi"] && yd.DPI > 0 {
			*dpi = yd.DPI
		}
		if !providedFlags["layer"] && yd.Layer != "" {
			*layerName = yd.Layer
		}
	}

	if _, err := os.Stat(*outputPath); err == nil && !*overwrite {
		fmt.Fprintf(os.Stderr, "Output file %s already exists. Use -overwrite to overwrite.\n", *outputPath)
		os.Exit(1)
	}

	cfg := stamp.StampConfig{
		Page:      *page,
		PosXMM:    *posX,
		PosYMM:    *posY,
		Scale:     *scale,
		DPI:       *dpi,
		LayerName: *layerName,
		Debug:     *debug,
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	inputData, err := os.ReadFile(*inputPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to read input PDF: %v\n", err)
		os.Exit(1)
	}
	stampData, err := os.ReadFile(*stampPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to read stamp image: %v\n", err)
		os.Exit(1)
	}

	finalPDF, err := stamp.ApplyStamp(inputData, stampData, cfg, pagedoc.NewPDFEngine())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error stamping PDF: %v\n", err)
		os.Exit(1)
	}

	// Write via a temp file and rename so a failure never leaves a
	// truncated document at the output path.
	tmp := *outputPath + ".tmp"
	if err := os.WriteFile(tmp, finalPDF, 0o666); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to write output PDF: %v\n", err)
		os.Exit(1)
	}
	if err := os.Rename(tmp, *outputPath); err != nil {
		os.Remove(tmp)
		fmt.Fprintf(os.Stderr, "Failed to write output PDF: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("Stamped PDF created:", *outputPath)

	if *printCommand {
		snap := stamp.PlacementSnapshot{
			PositionMM: geom.Point{X: *posX, Y: *posY},
			Scale:      *scale,
		}
		fmt.Println(stamp.NewInvocation(*inputPath, *stampPath, *outputPath, cfg, snap))
	}
}
