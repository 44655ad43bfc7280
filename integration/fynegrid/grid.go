// Package fynegrid hosts a gridpane.Pane inside a Fyne widget.
//
// The widget owns the pane's lifecycle triggers: it resizes the pane in
// lock-step with its own pixel size, forwards wheel scrolling, and
// toggles pane visibility with Show/Hide. The pane's surface is exposed
// through a canvas.Raster, so Fyne blits the already-rendered pixels and
// the engine's blit-scroll optimization is preserved end to end.
package fynegrid

import (
	"image"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"

	"github.com/gogpu/gridpane"
)

var (
	_ fyne.Widget     = (*Grid)(nil)
	_ fyne.Scrollable = (*Grid)(nil)
)

// Grid is a Fyne widget rendering a gridpane.Pane.
//
// Grid must be used from the Fyne main goroutine, matching the pane's
// single-threaded driving model.
type Grid struct {
	widget.BaseWidget
	pane *gridpane.Pane
}

// New creates a widget around an existing pane. The widget takes over
// the pane's resize and visibility triggers; the caller keeps attaching
// the model, oracles, and renderers.
func New(pane *gridpane.Pane) *Grid {
	g := &Grid{pane: pane}
	g.ExtendBaseWidget(g)
	return g
}

// Pane returns the hosted pane.
func (g *Grid) Pane() *gridpane.Pane { return g.pane }

// CreateRenderer implements fyne.Widget.
func (g *Grid) CreateRenderer() fyne.WidgetRenderer {
	return &gridRenderer{
		grid:   g,
		raster: canvas.NewRaster(g.draw),
	}
}

// Scrolled implements fyne.Scrollable: wheel deltas move the viewport.
// Wheel up reports a positive DY but should reveal content above, so
// the deltas are negated.
func (g *Grid) Scrolled(ev *fyne.ScrollEvent) {
	g.pane.ScrollBy(float64(-ev.Scrolled.DX), float64(-ev.Scrolled.DY))
	g.Refresh()
}

// Show implements fyne.CanvasObject, re-enabling pixel work first.
func (g *Grid) Show() {
	g.pane.SetVisible(true)
	g.pane.Repaint()
	g.BaseWidget.Show()
}

// Hide implements fyne.CanvasObject. The pane keeps tracking scroll
// state while hidden but skips all pixel work.
func (g *Grid) Hide() {
	g.pane.SetVisible(false)
	g.BaseWidget.Hide()
}

// draw is the raster generator: it resizes the pane to the requested
// pixel dimensions (Fyne passes device pixels, so HiDPI comes for free)
// and hands back the shared surface image.
func (g *Grid) draw(w, h int) image.Image {
	surface := g.pane.Surface()
	if surface.Width() != w || surface.Height() != h {
		g.pane.ResizeTo(w, h)
	}
	return g.pane.Surface().Image()
}

// gridRenderer is the widget's renderer: a single raster object.
type gridRenderer struct {
	grid   *Grid
	raster *canvas.Raster
}

func (r *gridRenderer) Layout(size fyne.Size) {
	r.raster.Resize(size)
}

func (r *gridRenderer) MinSize() fyne.Size {
	return fyne.NewSize(32, 32)
}

func (r *gridRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.raster}
}

func (r *gridRenderer) Refresh() {
	r.raster.Refresh()
}

func (r *gridRenderer) Destroy() {
	_ = r.grid.pane.Close()
}
