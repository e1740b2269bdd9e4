package stamp

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"image"
	"strings"

	// Stamp images are PNG or JPEG; register both decoders.
	_ "image/jpeg"
	_ "image/png"
)

// Source identifies where a stamp density came from.
type Source int

const (
	// SourceExplicit means the caller supplied the density directly.
	SourceExplicit Source = iota
	// SourceMetadata means the density was read from the image's own
	// resolution metadata (PNG pHYs chunk or JPEG JFIF header).
	SourceMetadata
	// SourceFallback means no usable metadata was found and the density
	// defaulted to 72 DPI. This changes the stamp's physical size and is
	// always reported as a diagnostic.
	SourceFallback
)

func (s Source) String() string {
	switch s {
	case SourceExplicit:
		return "explicit"
	case SourceMetadata:
		return "metadata"
	default:
		return "fallback"
	}
}

// FallbackDPI is the density assumed for stamp images that carry no
// resolution metadata.
const FallbackDPI = 72.0

// Resolution is the resolved pixel density of a stamp image.
type Resolution struct {
	DPI    float64
	Source Source
}

// Image is a decoded stamp: the raw bytes plus the native pixel size and
// resolved density. It is immutable once loaded.
type Image struct {
	Data       []byte
	Format     string // "PNG" or "JPEG", as registered with fpdf
	WidthPx    int
	HeightPx   int
	Resolution Resolution
}

// WidthMM and HeightMM report the stamp's physical size at scale 1.0.
func (img Image) WidthMM() float64 {
	return float64(img.WidthPx) / img.Resolution.DPI * 25.4
}

func (img Image) HeightMM() float64 {
	return float64(img.HeightPx) / img.Resolution.DPI * 25.4
}

// LoadImage decodes the stamp image header and resolves its density.
// An undecodable or zero-sized image is a ResourceError; missing density
// metadata is not an error (see ResolveDensity).
func LoadImage(data []byte, overrideDPI float64) (Image, error) {
	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return Image{}, &ResourceError{Resource: "stamp image", Err: err}
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return Image{}, &ResourceError{Resource: "stamp image",
			Err: fmt.Errorf("zero-sized image %dx%d", cfg.Width, cfg.Height)}
	}
	return Image{
		Data:       data,
		Format:     strings.ToUpper(format),
		WidthPx:    cfg.Width,
		HeightPx:   cfg.Height,
		Resolution: ResolveDensity(data, overrideDPI),
	}, nil
}

// ResolveDensity determines the stamp's pixel density. An explicit override
// (> 0) wins outright and skips metadata inspection. Otherwise the image's
// embedded resolution metadata is probed; absent or malformed metadata falls
// back to 72 DPI. Malformed metadata is deliberately treated the same as
// absent metadata and never surfaces as an error.
func ResolveDensity(data []byte, overrideDPI float64) Resolution {
	if overrideDPI > 0 {
		return Resolution{DPI: overrideDPI, Source: SourceExplicit}
	}
	if dpi, ok := probePNGDensity(data); ok {
		return Resolution{DPI: dpi, Source: SourceMetadata}
	}
	if dpi, ok := probeJPEGDensity(data); ok {
		return Resolution{DPI: dpi, Source: SourceMetadata}
	}
	return Resolution{DPI: FallbackDPI, Source: SourceFallback}
}

var pngSignature = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

// probePNGDensity reads the pHYs chunk if present. pHYs stores pixels per
// meter; only unit 1 (meters) gives an absolute density.
func probePNGDensity(data []byte) (float64, bool) {
	if !bytes.HasPrefix(data, pngSignature) {
		return 0, false
	}
	pos := len(pngSignature)
	for pos+8 <= len(data) {
		length := int(binary.BigEndian.Uint32(data[pos : pos+4]))
		ctype := string(data[pos+4 : pos+8])
		body := pos + 8
		if body+length > len(data) {
			return 0, false
		}
		switch ctype {
		case "pHYs":
			if length != 9 {
				return 0, false
			}
			ppuX := binary.BigEndian.Uint32(data[body : body+4])
			unit := data[body+8]
			if unit != 1 || ppuX == 0 {
				return 0, false
			}
			return float64(ppuX) * 0.0254, true
		case "IDAT", "IEND":
			// pHYs must precede the image data.
			return 0, false
		}
		pos = body + length + 4 // skip payload and CRC
	}
	return 0, false
}

// probeJPEGDensity reads the density fields of the JFIF APP0 segment.
func probeJPEGDensity(data []byte) (float64, bool) {
	if len(data) < 4 || data[0] != 0xff || data[1] != 0xd8 {
		return 0, false
	}
	pos := 2
	for pos+4 <= len(data) {
		if data[pos] != 0xff {
			return 0, false
		}
		marker := data[pos+1]
		if marker == 0xff { // padding
			pos++
			continue
		}
		// Standalone markers carry no length.
		if marker == 0xd8 || (marker >= 0xd0 && marker <= 0xd7) {
			pos += 2
			continue
		}
		if marker == 0xd9 || marker == 0xda { // EOI / start of scan
			return 0, false
		}
		length := int(binary.BigEndian.Uint16(data[pos+2 : pos+4]))
		if length < 2 || pos+2+length > len(data) {
			return 0, false
		}
		if marker == 0xe0 { // APP0
			seg := data[pos+4 : pos+2+length]
			if len(seg) >= 12 && bytes.HasPrefix(seg, []byte("JFIF\x00")) {
				units := seg[7]
				xDensity := binary.BigEndian.Uint16(seg[8:10])
				if xDensity == 0 {
					return 0, false
				}
				switch units {
				case 1: // dots per inch
					return float64(xDensity), true
				case 2: // dots per centimeter
					return float64(xDensity) * 2.54, true
				}
			}
			return 0, false
		}
		pos += 2 + length
	}
	return 0, false
}
