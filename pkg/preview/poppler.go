package preview

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
)

// PopplerRenderer renders pages by invoking poppler's pdftoppm. The call is
// synchronous and run-to-completion; every intermediate file lives in a
// per-call scratch directory that is removed on all exit paths.
type PopplerRenderer struct {
	Binary string // pdftoppm binary, "" means $PATH lookup of "pdftoppm"
}

func (r *PopplerRenderer) binary() string {
	if r.Binary != "" {
		return r.Binary
	}
	return "pdftoppm"
}

// RenderPage rasterizes one page (1-based) at the given density.
func (r *PopplerRenderer) RenderPage(doc []byte, page int, dpi float64) (image.Image, error) {
	if page < 1 {
		return nil, fmt.Errorf("render page: invalid page %d", page)
	}
	if dpi <= 0 {
		return nil, fmt.Errorf("render page: invalid density %v", dpi)
	}

	dir, err := os.MkdirTemp("", "pdfstamp-preview-")
	if err != nil {
		return nil, fmt.Errorf("render page: %w", err)
	}
	defer os.RemoveAll(dir)

	in := filepath.Join(dir, "doc.pdf")
	if err := os.WriteFile(in, doc, 0o600); err != nil {
		return nil, fmt.Errorf("render page: %w", err)
	}

	pageArg := strconv.Itoa(page)
	cmd := exec.Command(r.binary(),
		"-png",
		"-r", strconv.FormatFloat(dpi, 'f', -1, 64),
		"-f", pageArg, "-l", pageArg,
		in, filepath.Join(dir, "page"))
	var stderr strings.Builder
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("render page: %s: %w (%s)",
			r.binary(), err, strings.TrimSpace(stderr.String()))
	}

	// pdftoppm pads the page number in the output name depending on the
	// document's page count, so locate the file by glob.
	matches, err := filepath.Glob(filepath.Join(dir, "page-*.png"))
	if err != nil || len(matches) == 0 {
		return nil, fmt.Errorf("render page: %s produced no output", r.binary())
	}

	f, err := os.Open(matches[0])
	if err != nil {
		return nil, fmt.Errorf("render page: %w", err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("render page: decode raster: %w", err)
	}
	return img, nil
}
