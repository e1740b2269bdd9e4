package stamp

import (
	"github.com/gardar/pdfstamp/pkg/geom"
)

type dragPhase int

const (
	dragIdle dragPhase = iota
	dragActive
)

// Dragger turns pointer events from a preview canvas into placement
// mutations. It is the only writer of the Placement during interactive use.
//
// Pointer coordinates are in preview-canvas pixels; the dragger converts
// deltas to millimeters at the preview density so the placement itself stays
// surface-independent. After every move it fires the redraw callback.
type Dragger struct {
	placement  *Placement
	previewDPI float64
	onChange   func()

	phase  dragPhase
	anchor geom.Point // pointer-down position, canvas pixels
}

// NewDragger wires a dragger to a placement. previewDPI is the density of
// the canvas whose pointer events will be forwarded; onChange is invoked
// after each state change that requires a redraw (may be nil).
func NewDragger(p *Placement, previewDPI float64, onChange func()) *Dragger {
	return &Dragger{placement: p, previewDPI: previewDPI, onChange: onChange}
}

// Dragging reports whether a gesture is in progress.
func (d *Dragger) Dragging() bool {
	return d.phase == dragActive
}

// PointerDown begins a gesture, recording the anchor in canvas pixels.
// A pointer-down while a gesture is already active is ignored so a stray
// second press cannot re-anchor mid-drag.
func (d *Dragger) PointerDown(x, y float64) {
	if d.phase == dragActive {
		return
	}
	d.phase = dragActive
	d.anchor = geom.Point{X: x, Y: y}
	d.placement.BeginDrag()
}

// PointerMove updates the transient drag offset from the delta between the
// current pointer position and the anchor. Ignored when no gesture is
// active.
func (d *Dragger) PointerMove(x, y float64) {
	if d.phase != dragActive {
		return
	}
	d.placement.UpdateDrag(
		geom.PixelsToMM(x-d.anchor.X, d.previewDPI),
		geom.PixelsToMM(y-d.anchor.Y, d.previewDPI),
	)
	d.redraw()
}

// PointerUp commits the gesture, folding the drag offset into the position.
func (d *Dragger) PointerUp() {
	if d.phase != dragActive {
		return
	}
	d.phase = dragIdle
	d.placement.CommitDrag()
	d.redraw()
}

func (d *Dragger) redraw() {
	if d.onChange != nil {
		d.onChange()
	}
}
