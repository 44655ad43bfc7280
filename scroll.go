package gridpane

import (
	"image"
	"math"
)

// ScrollTo scrolls the viewport to the given content offset in pixels.
//
// Inputs are coerced rather than rejected: fractional values are rounded,
// negative values clamp to zero, and non-finite values coerce to zero.
// The stored offset is updated even when the pane is hidden or has a
// zero-area surface; only the pixel work is skipped then.
//
// A delta smaller than the surface in both axes is satisfied by blitting
// the still-valid pixels to their new position and repainting only the
// uncovered margin strips. A delta that meets or exceeds the surface
// size in either axis leaves no useful pixels to copy, so the whole
// surface is repainted instead.
func (p *Pane) ScrollTo(x, y float64) {
	nx := coerceScroll(x)
	ny := coerceScroll(y)

	dx := nx - p.scrollX
	dy := ny - p.scrollY
	if dx == 0 && dy == 0 {
		return
	}
	p.scrollX, p.scrollY = nx, ny

	width, height := p.surface.Width(), p.surface.Height()
	if width <= 0 || height <= 0 || !p.visible {
		return
	}

	if abs(dx) >= width || abs(dy) >= height {
		p.Paint(0, 0, width, height)
		return
	}
	p.blitScroll(dx, dy, width, height)
}

// ScrollBy scrolls relative to the current offset.
func (p *Pane) ScrollBy(dx, dy float64) {
	p.ScrollTo(float64(p.scrollX)+dx, float64(p.scrollY)+dy)
}

// blitScroll copies the still-valid sub-rectangle of the surface to its
// new position through the off-screen buffer, then repaints the up-to
// four uncovered margins. The margins are disjoint and their union is
// exactly the surface minus the blitted rectangle; they are painted
// left, right, top, bottom.
func (p *Pane) blitScroll(dx, dy, width, height int) {
	srcX, srcY := max(0, dx), max(0, dy)
	dstX, dstY := max(0, -dx), max(0, -dy)
	copyWidth := width - abs(dx)
	copyHeight := height - abs(dy)

	src := image.Rect(srcX, srcY, srcX+copyWidth, srcY+copyHeight)
	p.buffer.CopyFrom(p.surface, src, image.Pt(dstX, dstY))
	dst := image.Rect(dstX, dstY, dstX+copyWidth, dstY+copyHeight)
	p.surface.CopyFrom(p.buffer, dst, image.Pt(dstX, dstY))

	Logger().Debug("gridpane: blit scroll",
		"dx", dx, "dy", dy, "copied", dst.String())

	if dx < 0 {
		p.Paint(0, 0, -dx, height)
	}
	if dx > 0 {
		p.Paint(width-dx, 0, dx, height)
	}
	if dy < 0 {
		p.Paint(dstX, 0, copyWidth, -dy)
	}
	if dy > 0 {
		p.Paint(dstX, height-dy, copyWidth, dy)
	}
}

// coerceScroll rounds and clamps a requested scroll coordinate.
// Non-finite values coerce to zero: the offset domain has no meaningful
// image for NaN or infinity and the engine never fails on bad input.
func coerceScroll(v float64) int {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	r := math.Round(v)
	if r < 0 {
		return 0
	}
	// Values at or beyond MaxInt would overflow the conversion.
	if r >= float64(math.MaxInt) {
		return math.MaxInt
	}
	return int(r)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
