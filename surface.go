package gridpane

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// Surface is a rectangular raster buffer backed by an *image.RGBA.
//
// Drawing operations honor an optional rectangular clip set with SetClip.
// Rect-copy operations (CopyFrom) deliberately ignore the clip: they are
// the blit primitive, not part of the paint pipeline.
//
// A Surface is not safe for concurrent use.
type Surface struct {
	width  int
	height int
	img    *image.RGBA
	clip   image.Rectangle
}

// NewSurface creates a surface with the given dimensions.
// Negative dimensions are clamped to zero; a zero-area surface is valid
// and all drawing on it is a no-op.
func NewSurface(width, height int) *Surface {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &Surface{
		width:  width,
		height: height,
		img:    image.NewRGBA(image.Rect(0, 0, width, height)),
		clip:   image.Rect(0, 0, width, height),
	}
}

// Width returns the surface width in pixels.
func (s *Surface) Width() int { return s.width }

// Height returns the surface height in pixels.
func (s *Surface) Height() int { return s.height }

// Bounds returns the surface bounds anchored at the origin.
func (s *Surface) Bounds() image.Rectangle {
	return image.Rect(0, 0, s.width, s.height)
}

// Image returns the backing image. The pixels are shared, not copied;
// the caller must not resize or reslice it.
func (s *Surface) Image() *image.RGBA { return s.img }

// SetClip restricts subsequent drawing operations to r, intersected with
// the surface bounds.
func (s *Surface) SetClip(r image.Rectangle) {
	s.clip = r.Intersect(s.Bounds())
}

// ClearClip removes the drawing clip.
func (s *Surface) ClearClip() {
	s.clip = s.Bounds()
}

// FillRect fills r with c, honoring the current clip.
func (s *Surface) FillRect(r image.Rectangle, c color.Color) {
	r = r.Intersect(s.clip)
	if r.Empty() {
		return
	}
	draw.Draw(s.img, r, image.NewUniform(c), image.Point{}, draw.Src)
}

// HLine draws a 1px horizontal line of the given width starting at (x, y).
func (s *Surface) HLine(x, y, width int, c color.Color) {
	s.FillRect(image.Rect(x, y, x+width, y+1), c)
}

// VLine draws a 1px vertical line of the given height starting at (x, y).
func (s *Surface) VLine(x, y, height int, c color.Color) {
	s.FillRect(image.Rect(x, y, x+1, y+height), c)
}

// CopyFrom copies srcRect from src into this surface with its top-left at
// dst. Out-of-range areas are silently cropped. The clip does not apply.
//
// src may be the surface itself; image/draw handles overlapping copies.
func (s *Surface) CopyFrom(src *Surface, srcRect image.Rectangle, dst image.Point) {
	srcRect = srcRect.Intersect(src.Bounds())
	if srcRect.Empty() {
		return
	}
	r := image.Rectangle{Min: dst, Max: dst.Add(srcRect.Size())}.Intersect(s.Bounds())
	if r.Empty() {
		return
	}
	sp := srcRect.Min.Add(r.Min.Sub(dst))
	draw.Draw(s.img, r, src.img, sp, draw.Src)
}

// DrawString draws text with its baseline origin at (x, y), honoring the
// current clip.
func (s *Surface) DrawString(face font.Face, text string, x, y int, c color.Color) {
	if s.clip.Empty() {
		return
	}
	dst, ok := s.img.SubImage(s.clip).(*image.RGBA)
	if !ok {
		return
	}
	d := font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(c),
		Face: face,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(text)
}

// At returns the color of a single pixel. Out-of-bounds reads return the
// zero color.
func (s *Surface) At(x, y int) color.RGBA {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return color.RGBA{}
	}
	return s.img.RGBAAt(x, y)
}

// Snapshot returns a copy of the surface contents.
// Modifications to the returned image do not affect the surface.
func (s *Surface) Snapshot() *image.RGBA {
	img := image.NewRGBA(s.Bounds())
	copy(img.Pix, s.img.Pix)
	return img
}

// SavePNG saves the surface contents to a PNG file.
func (s *Surface) SavePNG(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()
	return png.Encode(f, s.img)
}
