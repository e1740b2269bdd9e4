// Package preview renders document pages to rasters for interactive
// placement and composites the stamp onto them with the same transform used
// for the final output.
package preview

import (
	"image"
	"image/draw"

	xdraw "golang.org/x/image/draw"

	"github.com/gardar/pdfstamp/pkg/geom"
)

// Renderer turns one page of a paged document into a raster at the given
// density.
type Renderer interface {
	RenderPage(doc []byte, page int, dpi float64) (image.Image, error)
}

// Compose draws the stamp over a copy of the page raster using the placement
// transform. The page raster is never modified, so redraws during a drag can
// reuse it.
func Compose(page image.Image, stampImg image.Image, m geom.Matrix) *image.RGBA {
	out := image.NewRGBA(page.Bounds())
	draw.Draw(out, out.Bounds(), page, page.Bounds().Min, draw.Src)
	xdraw.ApproxBiLinear.Transform(out, m.Aff3(), stampImg, stampImg.Bounds(), xdraw.Over, nil)
	return out
}
