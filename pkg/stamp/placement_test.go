package stamp

import (
	"errors"
	"math"
	"testing"

	"github.com/gardar/pdfstamp/pkg/geom"
)

func TestPlacementDragFold(t *testing.T) {
	p, err := NewPlacement(10, 5, 1.0)
	if err != nil {
		t.Fatal(err)
	}

	p.BeginDrag()
	p.UpdateDrag(1, 1)
	p.UpdateDrag(3, -2) // offsets replace, they do not accumulate
	p.CommitDrag()

	got := p.Current()
	want := geom.Point{X: 13, Y: 3}
	if math.Abs(got.X-want.X) > 1e-9 || math.Abs(got.Y-want.Y) > 1e-9 {
		t.Errorf("position after commit = %+v, want %+v", got, want)
	}

	// A second commit with no drag in progress must not move anything.
	p.CommitDrag()
	if got := p.Current(); got != want {
		t.Errorf("position after double commit = %+v, want %+v", got, want)
	}
}

func TestPlacementDragVisibleBeforeCommit(t *testing.T) {
	p, _ := NewPlacement(0, 0, 1.0)
	p.BeginDrag()
	p.UpdateDrag(7, 9)

	if got := p.Current(); got != (geom.Point{X: 7, Y: 9}) {
		t.Errorf("Current during drag = %+v, want {7 9}", got)
	}
	if got := p.Snapshot().PositionMM; got != (geom.Point{X: 7, Y: 9}) {
		t.Errorf("Snapshot during drag = %+v, want {7 9}", got)
	}
}

func TestPlacementScaleValidation(t *testing.T) {
	p, _ := NewPlacement(0, 0, 1.0)
	for _, s := range []float64{0, -1, -0.001} {
		err := p.SetScale(s)
		var cfgErr *ConfigError
		if !errors.As(err, &cfgErr) {
			t.Errorf("SetScale(%v) = %v, want ConfigError", s, err)
		}
		if p.Scale() != 1.0 {
			t.Errorf("scale mutated to %v by rejected SetScale", p.Scale())
		}
	}

	if _, err := NewPlacement(0, 0, 0); err == nil {
		t.Error("NewPlacement accepted scale 0")
	}
}
