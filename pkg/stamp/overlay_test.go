package stamp

import (
	"bytes"
	"testing"

	"github.com/gardar/pdfstamp/pkg/pagedoc"
)

func TestBuildOverlay(t *testing.T) {
	geo := pagedoc.NewPageGeometry(595.28, 841.89, 0, 0)
	snap := PlacementSnapshot{Scale: 1.0}
	img := testStampImage(t)

	cases := []struct {
		name string
		cfg  StampConfig
	}{
		{"plain", DefaultConfig()},
		{"debug", func() StampConfig { c := DefaultConfig(); c.Debug = true; return c }()},
		{"layered", func() StampConfig { c := DefaultConfig(); c.LayerName = "Stamp"; return c }()},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			out, err := BuildOverlay(geo, img, snap, tc.cfg)
			if err != nil {
				t.Fatal(err)
			}
			if !bytes.HasPrefix(out, []byte("%PDF")) {
				t.Errorf("overlay does not start with a PDF header")
			}
		})
	}
}
