package stamp

import (
	"github.com/gardar/pdfstamp/pkg/geom"
)

// Placement is the logical position and scale of the stamp on the page,
// independent of any rendering surface. Position is the offset in
// millimeters from the page's physical origin to the stamp's top-left
// corner. A transient drag offset accumulates during an interactive drag
// gesture and is folded into the position when the gesture commits.
//
// Placement has a single writer (the drag state machine, or nobody in batch
// mode). Readers take value snapshots, never pointers, so a render call
// always sees a fully committed state.
type Placement struct {
	positionMM geom.Point
	scale      float64
	dragMM     geom.Point
}

// PlacementSnapshot is a point-in-time copy of a Placement, safe to hold
// across a render or splice.
type PlacementSnapshot struct {
	PositionMM geom.Point // drag offset already folded in
	Scale      float64
}

// NewPlacement creates a placement at (xMM, yMM) with the given scale.
// The scale must be positive.
func NewPlacement(xMM, yMM, scale float64) (*Placement, error) {
	p := &Placement{positionMM: geom.Point{X: xMM, Y: yMM}, scale: 1.0}
	if err := p.SetScale(scale); err != nil {
		return nil, err
	}
	return p, nil
}

// Current returns the effective position in millimeters, with any
// in-progress drag offset applied. Live previews read this so the stamp
// follows the pointer before the gesture commits.
func (p *Placement) Current() geom.Point {
	return p.positionMM.Add(p.dragMM)
}

// Scale returns the current scale multiplier.
func (p *Placement) Scale() float64 {
	return p.scale
}

// Snapshot returns a value copy of the effective placement.
func (p *Placement) Snapshot() PlacementSnapshot {
	return PlacementSnapshot{PositionMM: p.Current(), Scale: p.scale}
}

// SetPosition sets the absolute position in millimeters. Used for
// programmatic placement; interactive moves go through the drag methods.
func (p *Placement) SetPosition(xMM, yMM float64) {
	p.positionMM = geom.Point{X: xMM, Y: yMM}
}

// SetScale sets the scale multiplier. Non-positive scales are rejected.
func (p *Placement) SetScale(s float64) error {
	if s <= 0 {
		return &ConfigError{Param: "scale", Reason: "must be > 0"}
	}
	p.scale = s
	return nil
}

// BeginDrag starts a drag gesture. Any stale offset from an aborted gesture
// is discarded.
func (p *Placement) BeginDrag() {
	p.dragMM = geom.Point{}
}

// UpdateDrag sets the transient drag offset in millimeters.
func (p *Placement) UpdateDrag(dxMM, dyMM float64) {
	p.dragMM = geom.Point{X: dxMM, Y: dyMM}
}

// CommitDrag folds the drag offset into the position and zeroes it.
// Committing with no drag in progress is a no-op.
func (p *Placement) CommitDrag() {
	p.positionMM = p.positionMM.Add(p.dragMM)
	p.dragMM = geom.Point{}
}
