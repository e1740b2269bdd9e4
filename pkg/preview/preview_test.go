package preview

import (
	"image"
	"image/color"
	"testing"

	"github.com/gardar/pdfstamp/pkg/geom"
)

func TestComposePlacesStamp(t *testing.T) {
	page := image.NewRGBA(image.Rect(0, 0, 100, 100))
	for y := 0; y < 100; y++ {
		for x := 0; x < 100; x++ {
			page.Set(x, y, color.RGBA{255, 255, 255, 255})
		}
	}

	stamp := image.NewRGBA(image.Rect(0, 0, 10, 10))
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			stamp.Set(x, y, color.RGBA{255, 0, 0, 255})
		}
	}

	m := geom.Translate(40, 40)
	out := Compose(page, stamp, m)

	if r, _, _, _ := out.At(45, 45).RGBA(); r>>8 != 255 {
		t.Error("stamp pixel missing at translated position")
	}
	if r, g, b, _ := out.At(45, 45).RGBA(); g>>8 > 10 || b>>8 > 10 {
		t.Errorf("stamp pixel not red: %v %v %v", r>>8, g>>8, b>>8)
	}
	if _, g, _, _ := out.At(10, 10).RGBA(); g>>8 != 255 {
		t.Error("page pixel outside the stamp was modified")
	}

	// The source page raster is untouched.
	if _, g, _, _ := page.At(45, 45).RGBA(); g>>8 != 255 {
		t.Error("Compose mutated the page raster")
	}
}

func TestComposeScaledStamp(t *testing.T) {
	page := image.NewRGBA(image.Rect(0, 0, 100, 100))
	stamp := image.NewRGBA(image.Rect(0, 0, 10, 10))
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			stamp.Set(x, y, color.RGBA{0, 0, 255, 255})
		}
	}

	// Scale x2: the stamp covers 20x20 pixels from the origin.
	m := geom.Translate(0, 0).Multiply(geom.Scale(2, 2))
	out := Compose(page, stamp, m)

	if _, _, b, _ := out.At(18, 18).RGBA(); b>>8 < 200 {
		t.Error("scaled stamp does not reach (18,18)")
	}
	if _, _, b, _ := out.At(25, 25).RGBA(); b>>8 > 10 {
		t.Error("scaled stamp bled past its bounds")
	}
}
