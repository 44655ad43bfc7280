package gridpane

import "image"

// maxDamageRects is the threshold after which accumulated damage switches
// to a full repaint. Past this point one pass over the whole surface is
// cheaper than many small region resolutions.
const maxDamageRects = 16

// damageList accumulates dirty rectangles between paints.
type damageList struct {
	rects []image.Rectangle
	full  bool
}

// add records a dirty rectangle. Empty rects are ignored.
func (d *damageList) add(r image.Rectangle) {
	if d.full || r.Empty() {
		return
	}
	d.rects = append(d.rects, r)
	if len(d.rects) > maxDamageRects {
		d.full = true
		d.rects = d.rects[:0]
	}
}

// addAll switches to full-repaint mode.
func (d *damageList) addAll() {
	d.full = true
	d.rects = d.rects[:0]
}

// reset clears the list after a paint pass.
func (d *damageList) reset() {
	d.rects = d.rects[:0]
	d.full = false
}

// pending reports whether there is anything to repaint.
func (d *damageList) pending() bool {
	return d.full || len(d.rects) > 0
}

// Invalidate flags a surface-space rectangle as stale. The repaint runs
// on the next Validate call, so several invalidations can be batched.
// Past maxDamageRects accumulated rectangles the list collapses into a
// single full repaint.
func (p *Pane) Invalidate(r image.Rectangle) {
	p.damage.add(r.Intersect(p.surface.Bounds()))
}

// InvalidateAll flags the entire surface as stale.
func (p *Pane) InvalidateAll() {
	p.damage.addAll()
}

// Validate repaints all accumulated damage and clears the list.
func (p *Pane) Validate() {
	if !p.damage.pending() {
		return
	}
	if p.damage.full {
		p.damage.reset()
		p.Paint(0, 0, p.surface.Width(), p.surface.Height())
		return
	}
	rects := p.damage.rects
	p.damage.rects = nil
	p.damage.reset()
	for _, r := range rects {
		p.Paint(r.Min.X, r.Min.Y, r.Dx(), r.Dy())
	}
}

// Repaint repaints the whole surface immediately.
func (p *Pane) Repaint() {
	p.damage.reset()
	p.Paint(0, 0, p.surface.Width(), p.surface.Height())
}
