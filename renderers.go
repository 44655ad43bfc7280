package gridpane

import (
	"fmt"
	"image"
	"image/color"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// SolidRenderer fills the cell with a single color. It is the registry's
// "default" entry.
//
// When the cell value is a color.Color, that color wins; otherwise the
// renderer's Color is used, and a nil Color draws nothing (the region
// background shows through).
type SolidRenderer struct {
	Color color.Color
}

// Paint fills the cell box.
func (r *SolidRenderer) Paint(s *Surface, cfg *CellConfig) {
	c := r.Color
	if vc, ok := cfg.Value.(color.Color); ok {
		c = vc
	}
	if c == nil {
		return
	}
	s.FillRect(image.Rect(cfg.X, cfg.Y, cfg.X+cfg.Width, cfg.Y+cfg.Height), c)
}

// TextRenderer draws the cell value as a left-aligned single-line label.
//
// The zero value is usable: it falls back to basicfont.Face7x13 and an
// opaque dark gray. Text that overflows the cell is cut off by the cell
// box, not wrapped.
type TextRenderer struct {
	Face    font.Face
	Color   color.Color
	Padding int
}

// Paint draws the formatted value inside the cell box.
func (r *TextRenderer) Paint(s *Surface, cfg *CellConfig) {
	if cfg.Value == nil {
		return
	}
	text := fmt.Sprint(cfg.Value)
	if text == "" {
		return
	}

	face := r.Face
	if face == nil {
		face = basicfont.Face7x13
	}
	c := r.Color
	if c == nil {
		c = color.RGBA{R: 0x20, G: 0x20, B: 0x20, A: 0xff}
	}
	pad := r.Padding
	if pad < 0 {
		pad = 0
	}

	metrics := face.Metrics()
	ascent := metrics.Ascent.Ceil()
	lineHeight := ascent + metrics.Descent.Ceil()

	// Restrict drawing to the cell box on top of the pipeline clip.
	cell := image.Rect(cfg.X, cfg.Y, cfg.X+cfg.Width, cfg.Y+cfg.Height)
	prev := s.clip
	s.SetClip(prev.Intersect(cell))

	// Vertically centered baseline, clamped so short cells still show
	// the top of the glyphs.
	y := cfg.Y + (cfg.Height-lineHeight)/2 + ascent
	if y < cfg.Y+ascent {
		y = cfg.Y + ascent
	}
	s.DrawString(face, text, cfg.X+pad, y, c)

	s.clip = prev
}
