// Package stampui provides the interactive placement window: a live page
// preview the user drags the stamp across, plus controls to scale, save, and
// print a reproducible command line.
//
// The widget layer owns no placement state. Pointer events are forwarded to
// the drag state machine and redraw requests come back through a callback;
// the placement itself is only ever written by the state machine.
package stampui

import (
	"fmt"
	"image"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	fynecanvas "fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/gardar/pdfstamp/pkg/geom"
	"github.com/gardar/pdfstamp/pkg/pagedoc"
	"github.com/gardar/pdfstamp/pkg/preview"
	"github.com/gardar/pdfstamp/pkg/stamp"
)

const scaleStep = 1.25

// Session is one interactive placement run over a single document page.
type Session struct {
	InputPath  string
	StampPath  string
	OutputPath string
	Config     stamp.StampConfig
	PreviewDPI float64

	Engine   pagedoc.Engine
	Renderer preview.Renderer

	doc         []byte
	img         stamp.Image
	stampRaster image.Image
	placement   *stamp.Placement
	dragger     *stamp.Dragger
	page        int
	pageRaster  image.Image

	win      fyne.Window
	view     *placementView
	status   *widget.Label
	splicing bool
}

// Run opens the window and blocks until it is closed.
func (s *Session) Run(doc []byte, img stamp.Image, stampRaster image.Image) error {
	if s.PreviewDPI <= 0 {
		s.PreviewDPI = 96
	}
	s.doc = doc
	s.img = img
	s.stampRaster = stampRaster

	numPages, err := s.Engine.PageCount(doc)
	if err != nil {
		return fmt.Errorf("open document: %w", err)
	}
	s.page, err = stamp.ResolvePageIndex(s.Config.Page, numPages)
	if err != nil {
		return err
	}

	s.pageRaster, err = s.Renderer.RenderPage(doc, s.page, s.PreviewDPI)
	if err != nil {
		return fmt.Errorf("render preview: %w", err)
	}

	s.placement, err = stamp.NewPlacement(s.Config.PosXMM, s.Config.PosYMM, s.Config.Scale)
	if err != nil {
		return err
	}
	s.dragger = stamp.NewDragger(s.placement, s.PreviewDPI, s.redraw)

	a := app.New()
	s.win = a.NewWindow(fmt.Sprintf("pdfstamp - %s (page %d)", s.InputPath, s.page))

	s.view = newPlacementView(s.dragger)
	s.status = widget.NewLabel("")

	toolbar := container.NewHBox(
		widget.NewButton("Smaller", func() { s.rescale(1 / scaleStep) }),
		widget.NewButton("Larger", func() { s.rescale(scaleStep) }),
		widget.NewButton("Save", s.save),
		widget.NewButton("Print command", s.printInvocation),
	)

	s.win.SetContent(container.NewBorder(toolbar, s.status, nil, nil,
		container.NewScroll(s.view)))
	s.redraw()
	s.win.ShowAndRun()
	return nil
}

// redraw composes the stamp over the cached page raster at the current
// placement and refreshes the view.
func (s *Session) redraw() {
	m := stamp.ComputeTransform(s.placement.Snapshot(),
		stamp.Target{DPI: s.PreviewDPI}, s.img.Resolution)
	s.view.setImage(preview.Compose(s.pageRaster, s.stampRaster, m))

	pos := s.placement.Current()
	s.status.SetText(fmt.Sprintf("position %.1f, %.1f mm   scale %.2f",
		pos.X, pos.Y, s.placement.Scale()))
}

func (s *Session) rescale(factor float64) {
	if err := s.placement.SetScale(s.placement.Scale() * factor); err != nil {
		return
	}
	s.redraw()
}

// save splices the stamped page into the document and writes the output
// atomically. A save arriving while one is in flight is rejected; the
// placement snapshot is taken once, at splice start.
func (s *Session) save() {
	if s.splicing {
		return
	}
	s.splicing = true
	defer func() { s.splicing = false }()

	out, err := stamp.Splice(s.Engine, s.doc, s.Config, s.placement.Snapshot(), s.img)
	if err != nil {
		s.status.SetText(fmt.Sprintf("save failed: %v", err))
		return
	}
	if err := writeAtomic(s.OutputPath, out); err != nil {
		s.status.SetText(fmt.Sprintf("save failed: %v", err))
		return
	}
	s.status.SetText(fmt.Sprintf("saved %s", s.OutputPath))
}

// printInvocation writes the batch command reproducing the current placement
// to stdout.
func (s *Session) printInvocation() {
	cfg := s.Config
	cfg.Page = s.page
	fmt.Println(stamp.NewInvocation(s.InputPath, s.StampPath, s.OutputPath,
		cfg, s.placement.Snapshot()))
}

// writeAtomic writes via a temp file and rename so a failed splice never
// leaves a truncated file at the output path.
func writeAtomic(path string, data []byte) error {
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o666); err != nil {
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return err
	}
	return nil
}

// placementView shows the composed preview and forwards drag gestures.
type placementView struct {
	widget.BaseWidget
	raster  *fynecanvas.Image
	dragger *stamp.Dragger
}

func newPlacementView(d *stamp.Dragger) *placementView {
	v := &placementView{
		raster:  fynecanvas.NewImageFromImage(image.NewRGBA(image.Rect(0, 0, 1, 1))),
		dragger: d,
	}
	v.raster.FillMode = fynecanvas.ImageFillOriginal
	v.ExtendBaseWidget(v)
	return v
}

func (v *placementView) setImage(img image.Image) {
	v.raster.Image = img
	v.raster.Refresh()
}

func (v *placementView) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(v.raster)
}

func (v *placementView) MinSize() fyne.Size {
	return v.raster.MinSize()
}

// Dragged forwards pointer movement. Fyne reports no separate press event
// for drags, so the gesture's first event anchors at the position the drag
// started from, recovered by backing out the reported delta.
func (v *placementView) Dragged(ev *fyne.DragEvent) {
	if !v.dragger.Dragging() {
		start := geom.Point{
			X: float64(ev.Position.X - ev.Dragged.DX),
			Y: float64(ev.Position.Y - ev.Dragged.DY),
		}
		v.dragger.PointerDown(start.X, start.Y)
	}
	v.dragger.PointerMove(float64(ev.Position.X), float64(ev.Position.Y))
}

func (v *placementView) DragEnd() {
	v.dragger.PointerUp()
}
