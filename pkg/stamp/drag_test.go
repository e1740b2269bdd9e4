package stamp

import (
	"math"
	"testing"
)

func TestDraggerGesture(t *testing.T) {
	p, _ := NewPlacement(0, 0, 1.0)
	redraws := 0
	d := NewDragger(p, 96, func() { redraws++ })

	d.PointerDown(100, 100)
	if !d.Dragging() {
		t.Fatal("not dragging after pointer down")
	}
	d.PointerMove(196, 148) // +96px, +48px at 96 dpi = +25.4mm, +12.7mm

	got := p.Current()
	if math.Abs(got.X-25.4) > 1e-9 || math.Abs(got.Y-12.7) > 1e-9 {
		t.Errorf("position during drag = %+v, want {25.4 12.7}", got)
	}

	d.PointerUp()
	if d.Dragging() {
		t.Error("still dragging after pointer up")
	}
	if got := p.Current(); math.Abs(got.X-25.4) > 1e-9 {
		t.Errorf("position after commit = %+v", got)
	}
	if redraws != 2 { // one per move, one on commit
		t.Errorf("redraws = %d, want 2", redraws)
	}
}

func TestDraggerIgnoresSecondPointerDown(t *testing.T) {
	p, _ := NewPlacement(0, 0, 1.0)
	d := NewDragger(p, 96, nil)

	d.PointerDown(0, 0)
	d.PointerMove(96, 0)
	d.PointerDown(500, 500) // must not re-anchor mid-drag
	d.PointerMove(96, 0)

	if got := p.Current(); math.Abs(got.X-25.4) > 1e-9 || got.Y != 0 {
		t.Errorf("position = %+v, want {25.4 0}", got)
	}
}

func TestDraggerIgnoresEventsWhileIdle(t *testing.T) {
	p, _ := NewPlacement(3, 4, 1.0)
	d := NewDragger(p, 96, nil)

	d.PointerMove(50, 50)
	d.PointerUp()

	if got := p.Current(); got.X != 3 || got.Y != 4 {
		t.Errorf("idle events mutated placement: %+v", got)
	}
}
