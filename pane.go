package gridpane

import (
	"image"

	"github.com/gogpu/gridpane/style"
)

// Pane is the incremental repaint and scroll-blit engine.
//
// A Pane owns a visible raster surface and an off-screen buffer of
// matching size, the current scroll offset, and the renderer registry.
// Row/column sizing comes from two SectionOracle values and cell content
// from a DataModel; both are borrowed references that the pane only
// reads.
//
// All operations are synchronous and complete before returning. A Pane
// is driven by a single-threaded host loop and is not safe for
// concurrent use.
type Pane struct {
	surface *Surface
	buffer  *Surface

	scrollX int
	scrollY int
	visible bool

	model        DataModel
	rowOracle    SectionOracle
	columnOracle SectionOracle
	rowSub       Subscription
	columnSub    Subscription

	registry *Registry
	theme    *style.Theme
	damage   damageList

	// Scratch records reused across all cells of a region.
	cellData   CellData
	cellConfig CellConfig
}

// New creates a pane. With no options the pane has a zero-area surface
// (resize it before painting), the default theme, and a registry seeded
// with the "default" renderer.
func New(opts ...Option) *Pane {
	p := &Pane{
		surface:  NewSurface(0, 0),
		buffer:   NewSurface(0, 0),
		visible:  true,
		registry: NewRegistry(),
		theme:    style.Default(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Surface returns the visible raster surface.
func (p *Pane) Surface() *Surface { return p.surface }

// Registry returns the pane's renderer registry.
func (p *Pane) Registry() *Registry { return p.registry }

// Theme returns the pane's theme.
func (p *Pane) Theme() *style.Theme { return p.theme }

// ScrollX returns the current horizontal scroll offset in pixels.
func (p *Pane) ScrollX() int { return p.scrollX }

// ScrollY returns the current vertical scroll offset in pixels.
func (p *Pane) ScrollY() int { return p.scrollY }

// Visible reports whether the pane performs pixel work on scroll.
func (p *Pane) Visible() bool { return p.visible }

// SetVisible toggles pixel work. The logical scroll offset keeps moving
// while hidden; the host is expected to repaint after showing the pane
// again.
func (p *Pane) SetVisible(visible bool) { p.visible = visible }

// SetModel assigns the data model. Pass nil to detach; the pane then
// degrades to background-only fills.
func (p *Pane) SetModel(m DataModel) {
	p.model = m
}

// SetRowOracle assigns the row sizing oracle, releasing the subscription
// on the previously assigned oracle. If the oracle announces section
// resizes, the pane subscribes and schedules a full repaint on each
// notification.
func (p *Pane) SetRowOracle(o SectionOracle) {
	p.rowOracle, p.rowSub = p.swapOracle(o, p.rowSub)
}

// SetColumnOracle assigns the column sizing oracle. Same subscription
// handling as SetRowOracle.
func (p *Pane) SetColumnOracle(o SectionOracle) {
	p.columnOracle, p.columnSub = p.swapOracle(o, p.columnSub)
}

func (p *Pane) swapOracle(o SectionOracle, old Subscription) (SectionOracle, Subscription) {
	if old != nil {
		old.Close()
	}
	var sub Subscription
	if n, ok := o.(SectionNotifier); ok {
		sub = n.OnSectionsResized(p.sectionsResized)
	}
	return o, sub
}

// sectionsResized runs when an assigned oracle changes section sizes.
// Any previously painted pixel may now be misaligned, so the whole
// surface is repainted.
func (p *Pane) sectionsResized() {
	if !p.visible {
		return
	}
	p.Repaint()
}

// ResizeTo sets both the off-screen buffer and the visible surface to
// the given pixel dimensions. Negative inputs are clamped to zero; equal
// dimensions are a no-op.
//
// When both the old and new dimensions are non-zero, content is
// preserved through a buffer round-trip: the old visible pixels are
// copied into the resized buffer, then back into the resized visible
// surface, so old content keeps its top-left-anchored position after a
// grow or shrink. Newly exposed right and bottom margins are flagged
// dirty and repainted; interior pixels are not.
//
// Like scrolling, a hidden pane only updates state: the margin damage
// stays pending until the pane is shown and repainted or validated.
func (p *Pane) ResizeTo(width, height int) {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	oldWidth, oldHeight := p.surface.Width(), p.surface.Height()
	if width == oldWidth && height == oldHeight {
		return
	}

	buffer := NewSurface(width, height)
	if oldWidth > 0 && oldHeight > 0 && width > 0 && height > 0 {
		buffer.CopyFrom(p.surface, p.surface.Bounds(), image.Point{})
	}
	visible := NewSurface(width, height)
	visible.CopyFrom(buffer, buffer.Bounds(), image.Point{})
	p.buffer = buffer
	p.surface = visible

	if width > oldWidth {
		p.damage.add(image.Rect(oldWidth, 0, width, height))
	}
	if height > oldHeight {
		right := min(oldWidth, width)
		p.damage.add(image.Rect(0, oldHeight, right, height))
	}
	if p.visible {
		p.Validate()
	}
}

// Close releases the oracle subscriptions. The pane must not be used
// afterwards. Close is idempotent.
func (p *Pane) Close() error {
	if p.rowSub != nil {
		p.rowSub.Close()
		p.rowSub = nil
	}
	if p.columnSub != nil {
		p.columnSub.Close()
		p.columnSub = nil
	}
	return nil
}
